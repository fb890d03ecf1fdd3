package session

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// CookieName is the browser cookie carrying the signed session token.
const CookieName = "pool_session"

// Claims maps joined pool invite codes to the participant secret held for
// each. The cookie is a convenience carrier only: handlers always accept an
// explicit X-Pool-Secret header in preference to it, and domain operations
// receive the secret as a plain parameter.
type Claims struct {
	Pools map[string]string `json:"pools"`
	jwt.RegisteredClaims
}

// SecretFor returns the stored secret for a pool code, or "" when the
// session holds none.
func (cl *Claims) SecretFor(code string) string {
	if cl == nil || cl.Pools == nil {
		return ""
	}
	return cl.Pools[code]
}

// Generate signs a session token holding the given pool → secret map.
func Generate(pools map[string]string, secretKey string, ttlHours int) (string, error) {
	if secretKey == "" {
		return "", errors.New("session secret key is empty")
	}
	now := time.Now()
	claims := &Claims{
		Pools: pools,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(ttlHours) * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    "proppool",
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secretKey))
}

// Validate parses and verifies a session token string.
func Validate(tokenString string, secretKey string) (*Claims, error) {
	if tokenString == "" {
		return nil, errors.New("token string is empty")
	}
	if secretKey == "" {
		return nil, errors.New("session secret key is empty")
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secretKey), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, errors.New("session has expired")
		}
		if errors.Is(err, jwt.ErrSignatureInvalid) {
			return nil, errors.New("session signature is invalid")
		}
		return nil, fmt.Errorf("could not parse session token: %w", err)
	}
	if !token.Valid {
		return nil, errors.New("session token is invalid")
	}
	return claims, nil
}

// Read parses the session cookie on the request. A missing or invalid cookie
// yields empty claims, never an error: an unusable session is simply absent.
func Read(c *gin.Context, secretKey string) *Claims {
	raw, err := c.Cookie(CookieName)
	if err != nil {
		return &Claims{}
	}
	claims, err := Validate(raw, secretKey)
	if err != nil {
		return &Claims{}
	}
	return claims
}

// Grant re-issues the session cookie with the given pool's secret added,
// preserving secrets already held for other pools.
func Grant(c *gin.Context, secretKey string, ttlHours int, poolCode, secret string) error {
	claims := Read(c, secretKey)
	pools := claims.Pools
	if pools == nil {
		pools = make(map[string]string)
	}
	pools[poolCode] = secret

	token, err := Generate(pools, secretKey, ttlHours)
	if err != nil {
		return fmt.Errorf("sign session token: %w", err)
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, token, ttlHours*3600, "/", "", false, true)
	return nil
}
