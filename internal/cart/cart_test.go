package cart

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eshoplabs/go-shop-state/internal/model"
	"github.com/eshoplabs/go-shop-state/internal/session"
	"github.com/eshoplabs/go-shop-state/internal/storage"
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func product(id int, price float64) model.Product {
	return model.Product{ID: id, Name: "P", Price: decimal.NewFromFloat(price)}
}

func TestAddToCart_MergesAndClamps(t *testing.T) {
	c := New(storage.NewMemory(), discard(), nil)

	c.AddToCart(product(1, 10), 2)
	c.AddToCart(product(1, 10), 3)

	lines := c.Lines()
	require.Len(t, lines, 1, "same product must not produce a duplicate line")
	assert.Equal(t, 5, lines[0].Quantity)

	c.AddToCart(product(1, 10), 200)
	assert.Equal(t, model.MaxQuantity, c.Lines()[0].Quantity)
}

func TestAddToCart_NewLineClamped(t *testing.T) {
	c := New(storage.NewMemory(), discard(), nil)
	c.AddToCart(product(1, 10), 150)
	assert.Equal(t, model.MaxQuantity, c.Lines()[0].Quantity)

	c.AddToCart(product(2, 5), 0)
	assert.Equal(t, model.MinQuantity, c.Lines()[1].Quantity)
}

func TestUpdateQuantity(t *testing.T) {
	c := New(storage.NewMemory(), discard(), nil)
	c.AddToCart(product(1, 10), 2)
	c.AddToCart(product(2, 5), 2)

	c.UpdateQuantity(1, 7)
	assert.Equal(t, 7, c.Lines()[0].Quantity)

	c.UpdateQuantity(1, 150)
	assert.Equal(t, 99, c.Lines()[0].Quantity)

	c.UpdateQuantity(1, 0)
	require.Len(t, c.Lines(), 1)
	assert.Equal(t, 2, c.Lines()[0].Product.ID)

	c.UpdateQuantity(2, -5)
	assert.Empty(t, c.Lines())
}

func TestRemoveFromCart_AbsentIsNoop(t *testing.T) {
	c := New(storage.NewMemory(), discard(), nil)
	c.AddToCart(product(1, 10), 1)
	c.RemoveFromCart(42)
	assert.Len(t, c.Lines(), 1)
}

func TestCountAndTotal(t *testing.T) {
	c := New(storage.NewMemory(), discard(), nil)
	c.AddToCart(product(1, 10), 2)
	c.AddToCart(product(2, 5), 1)

	assert.Equal(t, 3, c.Count())
	assert.True(t, c.Total().Equal(decimal.NewFromInt(25)), "total = %s", c.Total())

	c.ClearCart()
	assert.Equal(t, 0, c.Count())
	assert.True(t, c.Total().IsZero())
}

func TestCart_PersistsAcrossRestart(t *testing.T) {
	kv := storage.NewMemory()
	c := New(kv, discard(), nil)
	c.AddToCart(product(1, 10), 2)
	c.AddToCart(product(2, 5), 1)

	again := New(kv, discard(), nil)
	assert.Equal(t, c.Lines(), again.Lines())
	assert.Equal(t, 3, again.Count())
}

func TestCart_NotifiesOnEveryMutation(t *testing.T) {
	c := New(storage.NewMemory(), discard(), nil)
	var events int
	c.Subscribe(func([]model.CartLine) { events++ })

	c.AddToCart(product(1, 10), 1)
	c.UpdateQuantity(1, 5)
	c.RemoveFromCart(1)
	c.ClearCart()

	assert.Equal(t, 4, events)
}

func newSessions(kv storage.KV) *session.Store {
	return session.New(kv, discard(), session.Options{
		AdminUsername: "admin",
		AdminPassword: "admin123",
		AdminEmail:    "admin@eshop.com",
		TokenSecret:   "test-secret",
		AccessTTL:     time.Hour,
		RefreshTTL:    7 * 24 * time.Hour,
	})
}

func TestCart_RescopesWithSession(t *testing.T) {
	kv := storage.NewMemory()
	sessions := newSessions(kv)
	c := New(kv, discard(), sessions)

	// Anonymous cart.
	c.AddToCart(product(1, 10), 2)
	require.Equal(t, 2, c.Count())

	// Logging in switches to the user's own (empty) cart.
	require.True(t, sessions.Register("alice", "alice@example.com", "password123").Success)
	require.True(t, sessions.Login("alice", "password123"))
	assert.Empty(t, c.Lines())

	c.AddToCart(product(2, 5), 1)
	require.Equal(t, 1, c.Count())

	// Logout clears the user's cart entry and returns to the anonymous cart.
	sessions.Logout()
	assert.Equal(t, 2, c.Count())
	assert.Equal(t, 1, c.Lines()[0].Product.ID)

	// Logging back in finds the cleared cart, not the old line.
	require.True(t, sessions.Login("alice", "password123"))
	assert.Empty(t, c.Lines())
}

func TestCheckoutScenario(t *testing.T) {
	kv := storage.NewMemory()
	c := New(kv, discard(), nil)
	c.AddToCart(model.Product{ID: 1, Name: "ProductA", Price: decimal.NewFromInt(10)}, 2)
	c.AddToCart(model.Product{ID: 2, Name: "ProductB", Price: decimal.NewFromInt(5)}, 1)

	assert.True(t, c.Total().Equal(decimal.NewFromInt(25)))
	assert.Equal(t, 3, c.Count())
}
