// Package session owns the current-user identity, the registered-user
// roster, the access/refresh token pair and the per-user saved shipping
// address.
package session

import (
	"crypto/subtle"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/eshoplabs/go-shop-state/internal/model"
	"github.com/eshoplabs/go-shop-state/internal/pubsub"
	"github.com/eshoplabs/go-shop-state/internal/storage"
)

var (
	ErrDuplicateUsername = errors.New("username already taken")
	ErrDuplicateEmail    = errors.New("email already registered")
)

// RegisterResult is the structured outcome of a registration attempt.
// MessageKey is an i18n key suitable for user display; Err is nil on success
// and one of the duplicate-identity sentinels otherwise.
type RegisterResult struct {
	Success    bool
	MessageKey string
	Err        error
}

// Options configures the session store. The admin credentials are a fixed
// identity outside the roster.
type Options struct {
	AdminUsername string
	AdminPassword string
	AdminEmail    string
	TokenSecret   string
	AccessTTL     time.Duration
	RefreshTTL    time.Duration
}

// Store holds at most one active user at a time. All operations are
// synchronous; subscribers are notified in-line with the mutating call.
type Store struct {
	kv      storage.KV
	log     *slog.Logger
	opts    Options
	secret  []byte
	current *model.User
	stream  *pubsub.Broadcaster[*model.User]
}

// New loads any persisted session from the backing. When a stored access
// token is present but already expired it eagerly refreshes; a failed refresh
// destroys the session.
func New(kv storage.KV, log *slog.Logger, opts Options) *Store {
	s := &Store{
		kv:     kv,
		log:    log,
		opts:   opts,
		secret: []byte(opts.TokenSecret),
		stream: pubsub.New[*model.User](),
	}
	s.current = s.loadCurrentUser()
	if s.current != nil {
		if access, ok := s.getRaw(storage.KeyAccessToken); ok && tokenExpired(access, s.secret) {
			s.RefreshAccessToken()
		}
	}
	return s
}

func (s *Store) CurrentUser() *model.User { return s.current }

func (s *Store) IsLoggedIn() bool { return s.current != nil }

func (s *Store) IsAdmin() bool {
	return s.current != nil && s.current.Role == model.RoleAdmin
}

// Subscribe registers fn on the session change stream. It fires with the new
// current user on login and nil on logout.
func (s *Store) Subscribe(fn func(*model.User)) (unsubscribe func()) {
	return s.stream.Subscribe(fn)
}

// Register appends a new roster entry with role user. Username and email
// collisions are checked case-sensitively against the existing roster.
func (s *Store) Register(username, email, password string) RegisterResult {
	roster := s.loadRoster()
	for _, entry := range roster {
		if entry.Username == username {
			return RegisterResult{MessageKey: "auth.usernameTaken", Err: ErrDuplicateUsername}
		}
	}
	for _, entry := range roster {
		if entry.Email == email {
			return RegisterResult{MessageKey: "auth.emailTaken", Err: ErrDuplicateEmail}
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return RegisterResult{MessageKey: "common.error", Err: err}
	}

	entry := model.RosterEntry{
		User: model.User{
			ID:        uuid.NewString(),
			Username:  username,
			Email:     email,
			Role:      model.RoleUser,
			CreatedAt: time.Now(),
		},
		PasswordHash: string(hash),
	}
	roster = append(roster, entry)
	s.saveRoster(roster)
	s.log.Info("user registered", "username", username)
	return RegisterResult{Success: true, MessageKey: "auth.registered"}
}

// Login authenticates against the fixed admin credentials first, then the
// roster. On success it mints a fresh token pair and emits the new user on
// the change stream; on failure any existing session is left untouched.
func (s *Store) Login(username, password string) bool {
	if s.isAdminCredential(username, password) {
		admin := &model.User{
			ID:        "admin",
			Username:  s.opts.AdminUsername,
			Email:     s.opts.AdminEmail,
			Role:      model.RoleAdmin,
			CreatedAt: time.Now(),
		}
		s.establish(admin)
		s.log.Info("admin logged in")
		return true
	}

	for _, entry := range s.loadRoster() {
		if entry.Username != username {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(entry.PasswordHash), []byte(password)) != nil {
			break
		}
		user := entry.User
		s.establish(&user)
		s.log.Info("user logged in", "username", username)
		return true
	}

	s.log.Warn("invalid credentials", "username", username)
	return false
}

// Logout clears the outgoing user's scoped cart entry, the persisted session
// and both tokens, then emits nil.
func (s *Store) Logout() {
	if s.current != nil {
		if err := s.kv.Remove(storage.CartKeyFor(s.current.ID)); err != nil {
			s.log.Warn("clear user cart", "error", err)
		}
	}
	s.removeKeys(storage.KeyCurrentUser, storage.KeyAccessToken, storage.KeyRefreshToken)
	s.current = nil
	s.stream.Publish(nil)
	s.log.Info("user logged out")
}

// RefreshAccessToken verifies the stored refresh token and, when valid,
// mints and persists a new token pair. A missing or invalid refresh token
// forces a logout.
func (s *Store) RefreshAccessToken() bool {
	refresh, ok := s.getRaw(storage.KeyRefreshToken)
	if !ok || s.current == nil {
		s.Logout()
		return false
	}
	if _, err := verifyToken(refresh, s.secret); err != nil {
		s.log.Warn("refresh token rejected", "error", err)
		s.Logout()
		return false
	}
	if !s.mintAndStore(s.current) {
		s.Logout()
		return false
	}
	s.log.Info("access token refreshed", "username", s.current.Username)
	return true
}

// SaveUserAddress stores addr on the current session user and, for roster
// users, on the matching roster entry. Returns false when no session is
// active or the address is invalid.
func (s *Store) SaveUserAddress(addr model.ShippingInfo) bool {
	if s.current == nil {
		return false
	}
	if err := addr.Validate(); err != nil {
		s.log.Warn("reject saved address", "error", err)
		return false
	}
	s.current.Address = &addr
	s.persistCurrentUser()
	if s.current.Role != model.RoleAdmin {
		s.updateRosterAddress(s.current.ID, &addr)
	}
	return true
}

// UserAddress returns the saved address of the current user, if any.
func (s *Store) UserAddress() (model.ShippingInfo, bool) {
	if s.current == nil || s.current.Address == nil {
		return model.ShippingInfo{}, false
	}
	return *s.current.Address, true
}

// ClearUserAddress removes the saved address; false when no session.
func (s *Store) ClearUserAddress() bool {
	if s.current == nil {
		return false
	}
	s.current.Address = nil
	s.persistCurrentUser()
	if s.current.Role != model.RoleAdmin {
		s.updateRosterAddress(s.current.ID, nil)
	}
	return true
}

func (s *Store) isAdminCredential(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.opts.AdminUsername)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.opts.AdminPassword)) == 1
	return userOK && passOK
}

func (s *Store) establish(user *model.User) {
	s.current = user
	s.persistCurrentUser()
	s.mintAndStore(user)
	s.stream.Publish(user)
}

func (s *Store) mintAndStore(user *model.User) bool {
	access, err := mintToken(user, s.secret, s.opts.AccessTTL)
	if err != nil {
		s.log.Warn("mint access token", "error", err)
		return false
	}
	refresh, err := mintToken(user, s.secret, s.opts.RefreshTTL)
	if err != nil {
		s.log.Warn("mint refresh token", "error", err)
		return false
	}
	s.setRaw(storage.KeyAccessToken, access)
	s.setRaw(storage.KeyRefreshToken, refresh)
	return true
}

func (s *Store) updateRosterAddress(userID string, addr *model.ShippingInfo) {
	roster := s.loadRoster()
	for i := range roster {
		if roster[i].ID == userID {
			roster[i].Address = addr
			s.saveRoster(roster)
			return
		}
	}
}

func (s *Store) loadCurrentUser() *model.User {
	raw, ok := s.getRaw(storage.KeyCurrentUser)
	if !ok {
		return nil
	}
	var user model.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		s.log.Warn("decode current user", "error", err)
		return nil
	}
	return &user
}

func (s *Store) persistCurrentUser() {
	data, err := json.Marshal(s.current)
	if err != nil {
		s.log.Warn("encode current user", "error", err)
		return
	}
	s.setRaw(storage.KeyCurrentUser, string(data))
}

func (s *Store) loadRoster() []model.RosterEntry {
	raw, ok := s.getRaw(storage.KeyRoster)
	if !ok {
		return nil
	}
	var roster []model.RosterEntry
	if err := json.Unmarshal([]byte(raw), &roster); err != nil {
		s.log.Warn("decode roster", "error", err)
		return nil
	}
	return roster
}

func (s *Store) saveRoster(roster []model.RosterEntry) {
	data, err := json.Marshal(roster)
	if err != nil {
		s.log.Warn("encode roster", "error", err)
		return
	}
	s.setRaw(storage.KeyRoster, string(data))
}

func (s *Store) getRaw(key string) (string, bool) {
	raw, ok, err := s.kv.Get(key)
	if err != nil {
		s.log.Warn("storage read failed", "key", key, "error", err)
		return "", false
	}
	return raw, ok
}

func (s *Store) setRaw(key, value string) {
	if err := s.kv.Set(key, value); err != nil {
		s.log.Warn("storage write failed", "key", key, "error", err)
	}
}

func (s *Store) removeKeys(keys ...string) {
	for _, key := range keys {
		if err := s.kv.Remove(key); err != nil {
			s.log.Warn("storage remove failed", "key", key, "error", err)
		}
	}
}
