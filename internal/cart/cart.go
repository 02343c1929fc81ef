// Package cart owns the active shopping cart for the current browsing
// context. The cart is scoped per user: a logged-in user's lines persist
// under their own key and the anonymous session has its own.
package cart

import (
	"encoding/json"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/eshoplabs/go-shop-state/internal/model"
	"github.com/eshoplabs/go-shop-state/internal/pubsub"
	"github.com/eshoplabs/go-shop-state/internal/session"
	"github.com/eshoplabs/go-shop-state/internal/storage"
)

// Store mutates synchronously: every operation updates the line sequence,
// persists it in full and notifies subscribers before returning.
type Store struct {
	kv     storage.KV
	log    *slog.Logger
	key    string
	lines  []model.CartLine
	stream *pubsub.Broadcaster[[]model.CartLine]
}

// New loads the cart for the current session scope. When sessions is
// non-nil the store follows its change stream, swapping to the new user's
// cart namespace on every login and logout.
func New(kv storage.KV, log *slog.Logger, sessions *session.Store) *Store {
	c := &Store{
		kv:     kv,
		log:    log,
		key:    storage.CartKeyFor(""),
		stream: pubsub.New[[]model.CartLine](),
	}
	if sessions != nil {
		if user := sessions.CurrentUser(); user != nil {
			c.key = storage.CartKeyFor(user.ID)
		}
		sessions.Subscribe(c.rescope)
	}
	c.lines = c.load()
	return c
}

// Subscribe registers fn on the cart change stream; it fires with a copy of
// the full line sequence after every mutation.
func (c *Store) Subscribe(fn func([]model.CartLine)) (unsubscribe func()) {
	return c.stream.Subscribe(fn)
}

// Lines returns a copy of the current line sequence in insertion order.
func (c *Store) Lines() []model.CartLine {
	out := make([]model.CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

// Count is the sum of quantities across all lines, recomputed per call.
func (c *Store) Count() int {
	count := 0
	for _, line := range c.lines {
		count += line.Quantity
	}
	return count
}

// Total is the sum of unit price times quantity, recomputed per call.
func (c *Store) Total() decimal.Decimal {
	total := decimal.Zero
	for _, line := range c.lines {
		total = total.Add(line.Subtotal())
	}
	return total
}

// AddToCart merges quantity into an existing line for the same product id or
// appends a new line. The resulting quantity is clamped to [1, 99].
func (c *Store) AddToCart(product model.Product, quantity int) {
	for i := range c.lines {
		if c.lines[i].Product.ID == product.ID {
			c.lines[i].Quantity = model.ClampQuantity(c.lines[i].Quantity + quantity)
			c.commit()
			return
		}
	}
	c.lines = append(c.lines, model.CartLine{Product: product, Quantity: model.ClampQuantity(quantity)})
	c.commit()
}

// RemoveFromCart drops the line for productID; no-op when absent.
func (c *Store) RemoveFromCart(productID int) {
	for i := range c.lines {
		if c.lines[i].Product.ID == productID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			c.commit()
			return
		}
	}
}

// UpdateQuantity replaces the line's quantity. Below 1 removes the line;
// above 99 clamps.
func (c *Store) UpdateQuantity(productID, quantity int) {
	if quantity < model.MinQuantity {
		c.RemoveFromCart(productID)
		return
	}
	for i := range c.lines {
		if c.lines[i].Product.ID == productID {
			c.lines[i].Quantity = model.ClampQuantity(quantity)
			c.commit()
			return
		}
	}
}

// ClearCart empties the cart.
func (c *Store) ClearCart() {
	c.lines = nil
	c.commit()
}

func (c *Store) rescope(user *model.User) {
	key := storage.CartKeyFor("")
	if user != nil {
		key = storage.CartKeyFor(user.ID)
	}
	if key == c.key {
		return
	}
	c.key = key
	c.lines = c.load()
	c.stream.Publish(c.Lines())
}

func (c *Store) commit() {
	data, err := json.Marshal(c.lines)
	if err != nil {
		c.log.Warn("encode cart", "error", err)
	} else if err := c.kv.Set(c.key, string(data)); err != nil {
		c.log.Warn("save cart", "key", c.key, "error", err)
	}
	c.stream.Publish(c.Lines())
}

func (c *Store) load() []model.CartLine {
	raw, ok, err := c.kv.Get(c.key)
	if err != nil {
		c.log.Warn("load cart", "key", c.key, "error", err)
		return nil
	}
	if !ok {
		return nil
	}
	var lines []model.CartLine
	if err := json.Unmarshal([]byte(raw), &lines); err != nil {
		c.log.Warn("decode cart", "key", c.key, "error", err)
		return nil
	}
	return lines
}
