package session

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eshoplabs/go-shop-state/internal/model"
	"github.com/eshoplabs/go-shop-state/internal/storage"
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testOptions() Options {
	return Options{
		AdminUsername: "admin",
		AdminPassword: "admin123",
		AdminEmail:    "admin@eshop.com",
		TokenSecret:   "test-secret",
		AccessTTL:     time.Hour,
		RefreshTTL:    7 * 24 * time.Hour,
	}
}

func newTestStore(kv storage.KV) *Store {
	return New(kv, discard(), testOptions())
}

func TestRegister(t *testing.T) {
	s := newTestStore(storage.NewMemory())

	res := s.Register("alice", "alice@example.com", "password123")
	assert.True(t, res.Success)
	assert.NoError(t, res.Err)
	assert.Equal(t, "auth.registered", res.MessageKey)
}

func TestRegister_DuplicateUsername(t *testing.T) {
	s := newTestStore(storage.NewMemory())
	require.True(t, s.Register("alice", "alice@example.com", "password123").Success)

	res := s.Register("alice", "other@example.com", "password123")
	assert.False(t, res.Success)
	assert.ErrorIs(t, res.Err, ErrDuplicateUsername)
	assert.Len(t, s.loadRoster(), 1)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	s := newTestStore(storage.NewMemory())
	require.True(t, s.Register("alice", "alice@example.com", "password123").Success)

	res := s.Register("bob", "alice@example.com", "password123")
	assert.False(t, res.Success)
	assert.ErrorIs(t, res.Err, ErrDuplicateEmail)
	assert.Len(t, s.loadRoster(), 1)
}

func TestLogin_Admin(t *testing.T) {
	s := newTestStore(storage.NewMemory())

	require.True(t, s.Login("admin", "admin123"))
	require.NotNil(t, s.CurrentUser())
	assert.Equal(t, model.RoleAdmin, s.CurrentUser().Role)
	assert.True(t, s.IsAdmin())
}

func TestLogin_RosterUser(t *testing.T) {
	kv := storage.NewMemory()
	s := newTestStore(kv)
	require.True(t, s.Register("alice", "alice@example.com", "password123").Success)

	require.True(t, s.Login("alice", "password123"))
	require.NotNil(t, s.CurrentUser())
	assert.Equal(t, model.RoleUser, s.CurrentUser().Role)
	assert.Equal(t, "alice", s.CurrentUser().Username)

	// Tokens were minted and persisted.
	_, ok, err := kv.Get(storage.KeyAccessToken)
	require.NoError(t, err)
	assert.True(t, ok)
	_, ok, err = kv.Get(storage.KeyRefreshToken)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestLogin_WrongPasswordKeepsSession(t *testing.T) {
	s := newTestStore(storage.NewMemory())
	require.True(t, s.Register("alice", "alice@example.com", "password123").Success)
	require.True(t, s.Login("alice", "password123"))

	assert.False(t, s.Login("alice", "wrong"))
	require.NotNil(t, s.CurrentUser())
	assert.Equal(t, "alice", s.CurrentUser().Username)
}

func TestLogin_EmitsOnStream(t *testing.T) {
	s := newTestStore(storage.NewMemory())
	var events []*model.User
	s.Subscribe(func(u *model.User) { events = append(events, u) })

	require.True(t, s.Login("admin", "admin123"))
	s.Logout()

	require.Len(t, events, 2)
	assert.Equal(t, "admin", events[0].Username)
	assert.Nil(t, events[1])
}

func TestLogout_ClearsUserCartKey(t *testing.T) {
	kv := storage.NewMemory()
	s := newTestStore(kv)
	require.True(t, s.Register("alice", "alice@example.com", "password123").Success)
	require.True(t, s.Login("alice", "password123"))

	cartKey := storage.CartKeyFor(s.CurrentUser().ID)
	require.NoError(t, kv.Set(cartKey, "[]"))

	s.Logout()

	assert.Nil(t, s.CurrentUser())
	_, ok, err := kv.Get(cartKey)
	require.NoError(t, err)
	assert.False(t, ok)
	_, ok, err = kv.Get(storage.KeyCurrentUser)
	require.NoError(t, err)
	assert.False(t, ok)
	_, ok, err = kv.Get(storage.KeyAccessToken)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSessionSurvivesRestart(t *testing.T) {
	kv := storage.NewMemory()
	s := newTestStore(kv)
	require.True(t, s.Register("alice", "alice@example.com", "password123").Success)
	require.True(t, s.Login("alice", "password123"))
	id := s.CurrentUser().ID

	again := newTestStore(kv)
	require.NotNil(t, again.CurrentUser())
	assert.Equal(t, id, again.CurrentUser().ID)
	assert.Equal(t, "alice", again.CurrentUser().Username)
}

func TestRefreshOnInit_ExpiredAccessToken(t *testing.T) {
	kv := storage.NewMemory()

	opts := testOptions()
	opts.AccessTTL = -time.Minute
	expiring := New(kv, discard(), opts)
	require.True(t, expiring.Login("admin", "admin123"))
	stale, ok, err := kv.Get(storage.KeyAccessToken)
	require.NoError(t, err)
	require.True(t, ok)

	// Fresh store over the same backing: the expired access token must be
	// replaced via the still-valid refresh token.
	s := newTestStore(kv)
	require.NotNil(t, s.CurrentUser())
	renewed, ok, err := kv.Get(storage.KeyAccessToken)
	require.NoError(t, err)
	require.True(t, ok)
	assert.NotEqual(t, stale, renewed)
	assert.False(t, tokenExpired(renewed, []byte(testOptions().TokenSecret)))
}

func TestRefreshOnInit_ExpiredRefreshTokenForcesLogout(t *testing.T) {
	kv := storage.NewMemory()

	opts := testOptions()
	opts.AccessTTL = -time.Minute
	opts.RefreshTTL = -time.Minute
	expiring := New(kv, discard(), opts)
	require.True(t, expiring.Login("admin", "admin123"))

	s := newTestStore(kv)
	assert.Nil(t, s.CurrentUser())
	_, ok, err := kv.Get(storage.KeyRefreshToken)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRefreshAccessToken_NoSession(t *testing.T) {
	s := newTestStore(storage.NewMemory())
	assert.False(t, s.RefreshAccessToken())
}

func TestSaveUserAddress(t *testing.T) {
	kv := storage.NewMemory()
	s := newTestStore(kv)

	addr := model.ShippingInfo{
		FullName:   "Alice Example",
		Address:    "1 Main Rd",
		City:       "Bangkok",
		PostalCode: "10110",
		Phone:      "081-234-5678",
	}
	assert.False(t, s.SaveUserAddress(addr), "no active session")

	require.True(t, s.Register("alice", "alice@example.com", "password123").Success)
	require.True(t, s.Login("alice", "password123"))
	require.True(t, s.SaveUserAddress(addr))

	got, ok := s.UserAddress()
	require.True(t, ok)
	assert.Equal(t, addr, got)

	// The roster entry carries the address too, so it outlives the session.
	s.Logout()
	require.True(t, s.Login("alice", "password123"))
	got, ok = s.UserAddress()
	require.True(t, ok)
	assert.Equal(t, addr, got)

	require.True(t, s.ClearUserAddress())
	_, ok = s.UserAddress()
	assert.False(t, ok)
}

func TestSaveUserAddress_InvalidPhone(t *testing.T) {
	s := newTestStore(storage.NewMemory())
	require.True(t, s.Login("admin", "admin123"))

	bad := model.ShippingInfo{
		FullName:   "Admin",
		Address:    "1 Main Rd",
		City:       "Bangkok",
		PostalCode: "10110",
		Phone:      "12345",
	}
	assert.False(t, s.SaveUserAddress(bad))
}

func TestTokenRoundTrip(t *testing.T) {
	secret := []byte("test-secret")
	user := &model.User{ID: "u1", Username: "alice", Role: model.RoleUser}

	raw, err := mintToken(user, secret, time.Hour)
	require.NoError(t, err)

	claims, err := verifyToken(raw, secret)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.Subject)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "user", claims.Role)
	assert.False(t, tokenExpired(raw, secret))

	_, err = verifyToken(raw, []byte("wrong-secret"))
	assert.ErrorIs(t, err, ErrInvalidToken)

	expired, err := mintToken(user, secret, -time.Minute)
	require.NoError(t, err)
	_, err = verifyToken(expired, secret)
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.True(t, tokenExpired(expired, secret))
}
