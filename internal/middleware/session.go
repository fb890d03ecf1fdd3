package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/propline/proppool/config"
	"github.com/propline/proppool/pkg/session"
)

const (
	// SecretHeader carries a participant or captain secret explicitly.
	// It always wins over the session cookie for the same pool.
	SecretHeader = "X-Pool-Secret"

	SessionClaimsKey = "session_claims"
)

// SessionLoader parses the session cookie once per request and stores the
// resulting claims in the request context. It never rejects a request:
// handlers that need a secret decide for themselves what a missing one means.
func SessionLoader(appConfig *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(SessionClaimsKey, session.Read(c, appConfig.Session.Secret))
		c.Next()
	}
}

// PoolSecret returns the secret presented for the given pool code, or the
// empty string when none was presented at all.
func PoolSecret(c *gin.Context, poolCode string) string {
	if secret := c.GetHeader(SecretHeader); secret != "" {
		return secret
	}

	claims, exists := c.Get(SessionClaimsKey)
	if !exists {
		return ""
	}

	sessionClaims, ok := claims.(*session.Claims)
	if !ok {
		return ""
	}

	return sessionClaims.SecretFor(poolCode)
}
