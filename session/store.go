package session

import (
	"time"

	"github.com/patrickmn/go-cache"
)

const currentKey = "current"

// Store holds the current session in memory until it expires or is cleared.
type Store struct {
	cache *cache.Cache
	now   func() time.Time
}

func NewStore() *Store {
	return &Store{cache: cache.New(cache.NoExpiration, 5*time.Minute), now: time.Now}
}

func (s *Store) Save(sess Session) {
	ttl := cache.NoExpiration

	if !sess.ExpiresAt.IsZero() {
		ttl = time.Until(sess.ExpiresAt)
		if ttl <= 0 {
			s.Clear()
			return
		}
	}

	s.cache.Set(currentKey, sess, ttl)
}

// Current returns the saved session. An expired session is cleared and
// reported as ErrNoSession even before the cache janitor evicts it.
func (s *Store) Current() (Session, error) {
	cached, found := s.cache.Get(currentKey)

	if !found {
		return Session{}, ErrNoSession
	}

	sess := cached.(Session)

	if sess.Expired(s.now()) {
		s.Clear()
		return Session{}, ErrNoSession
	}

	return sess, nil
}

func (s *Store) Clear() {
	s.cache.Delete(currentKey)
}
