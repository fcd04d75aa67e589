package auth

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Capability names a permission an admin session can hold. The settings save
// paths and the debug-tool dispatcher all require CapManageOptions.
type Capability string

const CapManageOptions Capability = "manage_options"

var ErrInvalidCredentials = errors.New("invalid credentials")

// Manager owns the single admin principal: it checks the bcrypt password on
// login and tracks issued session tokens with a TTL.
type Manager struct {
	passwordHash []byte
	ttl          time.Duration
	sessions     map[string]time.Time // token -> expiry
	mu           sync.RWMutex

	now func() time.Time
}

// NewManager builds a Manager around a bcrypt password hash.
func NewManager(passwordHash string, ttl time.Duration) *Manager {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Manager{
		passwordHash: []byte(passwordHash),
		ttl:          ttl,
		sessions:     make(map[string]time.Time),
		now:          time.Now,
	}
}

// HashPassword bcrypt-hashes a plain-text password for Manager construction.
func HashPassword(plain string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

// Login verifies the password and issues a session token.
func (m *Manager) Login(password string) (string, time.Time, error) {
	if len(m.passwordHash) == 0 {
		return "", time.Time{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(m.passwordHash, []byte(password)); err != nil {
		return "", time.Time{}, ErrInvalidCredentials
	}

	token := uuid.NewString()
	expires := m.now().Add(m.ttl)

	m.mu.Lock()
	m.sessions[token] = expires
	m.mu.Unlock()

	return token, expires, nil
}

// Logout drops a session token if it exists.
func (m *Manager) Logout(token string) {
	m.mu.Lock()
	delete(m.sessions, token)
	m.mu.Unlock()
}

// SessionValid reports whether token names a live session. Expired sessions
// are removed on the way out.
func (m *Manager) SessionValid(token string) bool {
	if token == "" {
		return false
	}

	m.mu.RLock()
	expires, ok := m.sessions[token]
	m.mu.RUnlock()

	if !ok {
		return false
	}
	if m.now().After(expires) {
		m.mu.Lock()
		delete(m.sessions, token)
		m.mu.Unlock()
		return false
	}
	return true
}

// Can reports whether the session behind token holds the capability. The
// single admin principal holds every capability while its session is live.
func (m *Manager) Can(token string, cap Capability) bool {
	return m.SessionValid(token)
}

// SessionCount returns the number of tracked sessions (including expired
// entries not yet swept).
func (m *Manager) SessionCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
