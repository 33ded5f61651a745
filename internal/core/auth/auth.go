// Package auth provides bearer-token API key authentication for the HTTP API.
package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Authenticator validates bearer API keys against the configured key set.
// Keys are pre-hashed at construction so every comparison is constant-time
// over fixed-length digests regardless of presented key length.
type Authenticator struct {
	keyDigests [][32]byte
}

// NewAuthenticator creates an authenticator from the configured keys.
// Multiple keys support rotation: old and new keys stay valid during
// migration.
func NewAuthenticator(keys []string) *Authenticator {
	digests := make([][32]byte, 0, len(keys))
	for _, k := range keys {
		digests = append(digests, DigestKey(k))
	}
	return &Authenticator{keyDigests: digests}
}

// Authenticate validates a presented API key.
func (a *Authenticator) Authenticate(key string) error {
	presented := DigestKey(key)
	for _, d := range a.keyDigests {
		if EqualDigests(d, presented) {
			return nil
		}
	}
	return ErrInvalidKey
}

// Middleware returns a gin middleware that authenticates every request via
// the Authorization header (Bearer scheme). Failures abort with 401 and the
// standard error envelope; the key itself is never logged or echoed.
func (a *Authenticator) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			unauthorized(c, ErrMissingKey)
			return
		}

		scheme, token, found := strings.Cut(header, " ")
		if !found || !strings.EqualFold(scheme, "Bearer") || token == "" {
			unauthorized(c, ErrMalformedHeader)
			return
		}

		if err := a.Authenticate(token); err != nil {
			unauthorized(c, err)
			return
		}

		c.Next()
	}
}

func unauthorized(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"message": err.Error(),
	})
}
