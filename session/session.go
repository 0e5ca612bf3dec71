package session

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrNoSession = errors.New("no active session")

var ErrInvalidToken = errors.New("invalid session token")

// Session is the authenticated user on whose behalf bookings are submitted.
type Session struct {
	Token     string
	UserID    string
	ExpiresAt time.Time
}

// FromToken reads the user id and expiry out of a bearer JWT. The signature
// is not checked here, the bookings API does that on every request.
func FromToken(token string) (Session, error) {
	token = strings.TrimSpace(token)

	if len(token) == 0 {
		return Session{}, ErrNoSession
	}

	claims := jwt.RegisteredClaims{}
	_, _, err := jwt.NewParser().ParseUnverified(token, &claims)

	if err != nil {
		return Session{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	if len(claims.Subject) == 0 {
		return Session{}, fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}

	sess := Session{Token: token, UserID: claims.Subject}

	if claims.ExpiresAt != nil {
		sess.ExpiresAt = claims.ExpiresAt.Time
	}

	return sess, nil
}

func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}
