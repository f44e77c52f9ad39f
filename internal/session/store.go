package session

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"time"
)

// TTL is the absolute session lifetime from creation. Sessions are not
// renewed on use.
const TTL = 30 * 24 * time.Hour

// Record is what a session id resolves to.
type Record struct {
	UserID    uint      `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Store is the session-store abstraction. Get returns ok=false for both
// missing and expired sessions; expired records are removed lazily on
// lookup. Delete is idempotent.
type Store interface {
	Put(ctx context.Context, id string, rec Record) error
	Get(ctx context.Context, id string) (Record, bool, error)
	Delete(ctx context.Context, id string) error
}

var active Store = NewMemoryStore()

// Use swaps the process-wide store. Called once at startup.
func Use(s Store) {
	active = s
}

// Create issues a new random session id for the given user.
func Create(ctx context.Context, userID uint) (string, error) {
	id := newSessionID()
	if err := active.Put(ctx, id, Record{UserID: userID, CreatedAt: time.Now()}); err != nil {
		return "", err
	}
	return id, nil
}

// Resolve returns the user id behind a session id, if the session exists
// and has not expired.
func Resolve(ctx context.Context, id string) (uint, bool) {
	rec, ok, err := active.Get(ctx, id)
	if err != nil || !ok {
		return 0, false
	}
	return rec.UserID, true
}

// Destroy removes a session unconditionally.
func Destroy(ctx context.Context, id string) {
	_ = active.Delete(ctx, id)
}

func newSessionID() string {
	bytes := make([]byte, 24)
	rand.Read(bytes)
	return hex.EncodeToString(bytes)
}
