package model

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Product is a catalog record. The authoritative copy lives behind the
// catalog API; products are immutable once fetched into a session.
type Product struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    string          `json:"image_url"`
}

const (
	MinQuantity = 1
	MaxQuantity = 99
)

// ClampQuantity forces q into [MinQuantity, MaxQuantity].
func ClampQuantity(q int) int {
	if q < MinQuantity {
		return MinQuantity
	}
	if q > MaxQuantity {
		return MaxQuantity
	}
	return q
}

// CartLine is one product in a cart. Quantity is always in
// [MinQuantity, MaxQuantity]; a line that would drop below the minimum is
// removed from the cart rather than retained.
type CartLine struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// Subtotal is unit price times quantity.
func (l CartLine) Subtotal() decimal.Decimal {
	return l.Product.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// User is the public identity carried by an active session.
type User struct {
	ID        string        `json:"id"`
	Username  string        `json:"username"`
	Email     string        `json:"email"`
	Role      Role          `json:"role"`
	CreatedAt time.Time     `json:"createdAt"`
	Address   *ShippingInfo `json:"address,omitempty"`
}

// RosterEntry is the stored form of a registered user. The distinguished
// admin identity is never part of the roster.
type RosterEntry struct {
	User
	PasswordHash string `json:"passwordHash"`
}

var (
	ErrMissingShippingField = errors.New("missing shipping field")
	ErrInvalidPhone         = errors.New("invalid phone number")
)

var phonePattern = regexp.MustCompile(`^[0-9]{9,10}$`)

type ShippingInfo struct {
	FullName   string `json:"fullName"`
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
	Phone      string `json:"phone"`
}

// Validate checks that every field is present and the phone number is 9 or
// 10 digits after stripping dashes and spaces.
func (s ShippingInfo) Validate() error {
	if s.FullName == "" || s.Address == "" || s.City == "" || s.PostalCode == "" || s.Phone == "" {
		return ErrMissingShippingField
	}
	phone := strings.NewReplacer("-", "", " ", "").Replace(s.Phone)
	if !phonePattern.MatchString(phone) {
		return ErrInvalidPhone
	}
	return nil
}

type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusProcessing OrderStatus = "processing"
	StatusShipped    OrderStatus = "shipped"
	StatusDelivered  OrderStatus = "delivered"
)

// Advance returns the next status in the forward-only chain. Delivered is
// terminal. Status advancement is an administrative action; no store in this
// module calls it.
func (s OrderStatus) Advance() OrderStatus {
	switch s {
	case StatusPending:
		return StatusProcessing
	case StatusProcessing:
		return StatusShipped
	case StatusShipped:
		return StatusDelivered
	default:
		return s
	}
}

// Order is an immutable record of a placed checkout. Items and shipping are
// snapshots copied at creation; Total is computed once and never recomputed.
type Order struct {
	ID        string          `json:"id"`
	UserID    string          `json:"userId"`
	Items     []CartLine      `json:"items"`
	Shipping  ShippingInfo    `json:"shippingInfo"`
	Total     decimal.Decimal `json:"total"`
	Status    OrderStatus     `json:"status"`
	CreatedAt time.Time       `json:"createdAt"`
}
