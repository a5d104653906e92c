package session

import (
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

// Session is the server-side state bound to a bearer token.
type Session struct {
	UserID    int64
	Email     string
	Role      string
	CreatedAt time.Time
}

// Manager issues opaque bearer tokens and resolves them back to sessions.
// Tokens expire after the configured TTL; eviction is handled by the cache.
type Manager struct {
	cache *expirable.LRU[string, Session]
}

// NewManager creates a Manager holding at most size sessions with the given TTL.
func NewManager(size int, ttl time.Duration) *Manager {
	if size <= 0 {
		size = 10000
	}
	return &Manager{
		cache: expirable.NewLRU[string, Session](size, nil, ttl),
	}
}

// Create stores a new session and returns its opaque token.
func (m *Manager) Create(s Session) string {
	token := uuid.NewString()
	s.CreatedAt = time.Now()
	m.cache.Add(token, s)
	return token
}

// Get resolves a token to its session. The second result is false for
// unknown or expired tokens.
func (m *Manager) Get(token string) (Session, bool) {
	return m.cache.Get(token)
}

// Delete invalidates a token. Deleting an unknown token is a no-op.
func (m *Manager) Delete(token string) {
	m.cache.Remove(token)
}
