package cache

import (
	"time"
)

// Store is the byte-level backend of the response cache
type Store interface {
	Get(key string) (*Entry, bool)
	Set(key string, entry *Entry)
	Delete(key string)
	Close() error
}

// Entry is a stored response. Entries are replaced wholesale, never mutated.
type Entry struct {
	Data      []byte    `json:"data"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// IsExpired reports whether the entry must be treated as absent at now
func (e *Entry) IsExpired(now time.Time) bool {
	return !now.Before(e.ExpiresAt)
}

// TTL returns the lifetime the entry was stored with
func (e *Entry) TTL() time.Duration {
	return e.ExpiresAt.Sub(e.CreatedAt)
}
