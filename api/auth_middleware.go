package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// UserIDKey holds the authenticated user id (the token subject) in the gin context.
const UserIDKey = "userID"

func BearerAuth(secret []byte) gin.HandlerFunc {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	return func(c *gin.Context) {
		token, found := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")

		if !found || len(strings.TrimSpace(token)) == 0 {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "missing authentication"})
			c.Abort()
			return
		}

		claims := jwt.RegisteredClaims{}
		_, err := parser.ParseWithClaims(strings.TrimSpace(token), &claims, func(*jwt.Token) (any, error) {
			return secret, nil
		})

		if err != nil || len(claims.Subject) == 0 {
			if err != nil {
				c.Error(err)
			}
			c.JSON(http.StatusUnauthorized, gin.H{"message": "invalid authentication"})
			c.Abort()
			return
		}

		c.Set(UserIDKey, claims.Subject)
	}
}
