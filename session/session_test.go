package session_test

import (
	"testing"
	"time"

	"github.com/catalinarubies/field-booking/session"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, claims jwt.RegisteredClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	require.NoError(t, err)
	return token
}

func TestFromToken(t *testing.T) {

	t.Run("subject and expiry", func(t *testing.T) {
		exp := time.Now().Add(time.Hour).Truncate(time.Second)
		token := signedToken(t, jwt.RegisteredClaims{Subject: "u-7", ExpiresAt: jwt.NewNumericDate(exp)})

		sess, err := session.FromToken(token)

		require.NoError(t, err)
		assert.Equal(t, "u-7", sess.UserID)
		assert.Equal(t, token, sess.Token)
		assert.True(t, exp.Equal(sess.ExpiresAt))
		assert.False(t, sess.Expired(time.Now()))
		assert.True(t, sess.Expired(exp.Add(time.Second)))
	})

	t.Run("no expiry never expires", func(t *testing.T) {
		sess, err := session.FromToken(signedToken(t, jwt.RegisteredClaims{Subject: "u-7"}))

		require.NoError(t, err)
		assert.False(t, sess.Expired(time.Now().Add(24*time.Hour)))
	})

	t.Run("empty token", func(t *testing.T) {
		_, err := session.FromToken("  ")
		require.ErrorIs(t, err, session.ErrNoSession)
	})

	t.Run("missing subject", func(t *testing.T) {
		_, err := session.FromToken(signedToken(t, jwt.RegisteredClaims{Issuer: "fields-api"}))
		require.ErrorIs(t, err, session.ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := session.FromToken("not-a-jwt")
		require.ErrorIs(t, err, session.ErrInvalidToken)
	})
}

func TestStore(t *testing.T) {
	store := session.NewStore()

	_, err := store.Current()
	require.ErrorIs(t, err, session.ErrNoSession)

	sess := session.Session{Token: "t", UserID: "u-7", ExpiresAt: time.Now().Add(time.Hour)}
	store.Save(sess)

	got, err := store.Current()
	require.NoError(t, err)
	assert.Equal(t, sess, got)

	store.Clear()

	_, err = store.Current()
	require.ErrorIs(t, err, session.ErrNoSession)

	store.Save(session.Session{Token: "t", UserID: "u-7", ExpiresAt: time.Now().Add(-time.Minute)})

	_, err = store.Current()
	require.ErrorIs(t, err, session.ErrNoSession)
}
