// Package order owns the append-only order history.
package order

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/eshoplabs/go-shop-state/internal/model"
	"github.com/eshoplabs/go-shop-state/internal/storage"
)

var ErrEmptyOrder = errors.New("order has no items")

type Store struct {
	kv  storage.KV
	log *slog.Logger
}

func New(kv storage.KV, log *slog.Logger) *Store {
	return &Store{kv: kv, log: log}
}

// CreateOrder snapshots the given cart lines and shipping info into a new
// pending order. The total is computed once here; later price or cart
// changes never touch a placed order.
func (s *Store) CreateOrder(userID string, lines []model.CartLine, shipping model.ShippingInfo) (*model.Order, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyOrder
	}
	if err := shipping.Validate(); err != nil {
		return nil, fmt.Errorf("shipping info: %w", err)
	}

	items := make([]model.CartLine, len(lines))
	copy(items, lines)

	total := decimal.Zero
	for _, line := range items {
		total = total.Add(line.Subtotal())
	}

	order := model.Order{
		ID:        newOrderID(),
		UserID:    userID,
		Items:     items,
		Shipping:  shipping,
		Total:     total,
		Status:    model.StatusPending,
		CreatedAt: time.Now(),
	}

	orders := s.load()
	orders = append(orders, order)
	s.save(orders)
	s.log.Info("order created", "order_id", order.ID, "user_id", userID, "total", total)
	return &order, nil
}

// UserOrders returns the given user's orders, most recent first. The result
// is a one-shot snapshot; call again to refresh.
func (s *Store) UserOrders(userID string) []model.Order {
	var out []model.Order
	for _, o := range s.load() {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

func (s *Store) OrderByID(orderID string) (*model.Order, bool) {
	for _, o := range s.load() {
		if o.ID == orderID {
			return &o, true
		}
	}
	return nil, false
}

// newOrderID is time-based with a random suffix. Not globally unique by
// construction, but collisions are negligible at this scope.
func newOrderID() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:9]
	return fmt.Sprintf("ORD-%d-%s", time.Now().UnixMilli(), suffix)
}

func (s *Store) load() []model.Order {
	raw, ok, err := s.kv.Get(storage.KeyOrders)
	if err != nil {
		s.log.Warn("load orders", "error", err)
		return nil
	}
	if !ok {
		return nil
	}
	var orders []model.Order
	if err := json.Unmarshal([]byte(raw), &orders); err != nil {
		s.log.Warn("decode orders", "error", err)
		return nil
	}
	return orders
}

func (s *Store) save(orders []model.Order) {
	data, err := json.Marshal(orders)
	if err != nil {
		s.log.Warn("encode orders", "error", err)
		return
	}
	if err := s.kv.Set(storage.KeyOrders, string(data)); err != nil {
		s.log.Warn("save orders", "error", err)
	}
}
