package session

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

const testKey = "test-session-secret"

func TestGenerateAndValidate(t *testing.T) {
	pools := map[string]string{
		"AAAA1111": "secret-a",
		"BBBB2222": "secret-b",
	}

	token, err := Generate(pools, testKey, 1)
	if err != nil {
		t.Fatalf("Failed to generate token: %v", err)
	}
	if token == "" {
		t.Fatal("Expected a non-empty token")
	}

	claims, err := Validate(token, testKey)
	if err != nil {
		t.Fatalf("Failed to validate token: %v", err)
	}
	if claims.SecretFor("AAAA1111") != "secret-a" {
		t.Errorf("Expected secret-a, got %q", claims.SecretFor("AAAA1111"))
	}
	if claims.SecretFor("BBBB2222") != "secret-b" {
		t.Errorf("Expected secret-b, got %q", claims.SecretFor("BBBB2222"))
	}
	if claims.SecretFor("CCCC3333") != "" {
		t.Error("Expected no secret for an unknown pool")
	}
	if claims.Issuer != "proppool" {
		t.Errorf("Expected issuer proppool, got %q", claims.Issuer)
	}
}

func TestValidateRejectsWrongKey(t *testing.T) {
	token, err := Generate(map[string]string{"AAAA1111": "secret-a"}, testKey, 1)
	if err != nil {
		t.Fatalf("Failed to generate token: %v", err)
	}

	if _, err := Validate(token, "a-different-key"); err == nil {
		t.Error("Expected validation to fail with the wrong key")
	}
}

func TestValidateRejectsTamperedToken(t *testing.T) {
	token, err := Generate(map[string]string{"AAAA1111": "secret-a"}, testKey, 1)
	if err != nil {
		t.Fatalf("Failed to generate token: %v", err)
	}

	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("Expected a three-part JWT, got %d parts", len(parts))
	}
	tampered := parts[0] + "." + parts[1] + ".AAAA" + parts[2][4:]

	if _, err := Validate(tampered, testKey); err == nil {
		t.Error("Expected validation to fail for a tampered signature")
	}
}

func TestValidateExpiredToken(t *testing.T) {
	token, err := Generate(map[string]string{"AAAA1111": "secret-a"}, testKey, -1)
	if err != nil {
		t.Fatalf("Failed to generate token: %v", err)
	}

	_, err = Validate(token, testKey)
	if err == nil {
		t.Fatal("Expected an expired token to fail validation")
	}
	if !strings.Contains(err.Error(), "expired") {
		t.Errorf("Expected an expiry error, got %v", err)
	}
}

func TestValidateEmptyInputs(t *testing.T) {
	if _, err := Validate("", testKey); err == nil {
		t.Error("Expected an error for an empty token")
	}
	if _, err := Validate("some.token.here", ""); err == nil {
		t.Error("Expected an error for an empty key")
	}
	if _, err := Generate(nil, "", 1); err == nil {
		t.Error("Expected an error when signing with an empty key")
	}
}

func TestSecretForNilSafety(t *testing.T) {
	var claims *Claims
	if claims.SecretFor("AAAA1111") != "" {
		t.Error("Expected nil claims to yield no secret")
	}
	if (&Claims{}).SecretFor("AAAA1111") != "" {
		t.Error("Expected empty claims to yield no secret")
	}
}

func TestReadWithoutCookie(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/", nil)

	claims := Read(c, testKey)
	if claims == nil {
		t.Fatal("Read must never return nil claims")
	}
	if claims.SecretFor("AAAA1111") != "" {
		t.Error("Expected empty claims without a cookie")
	}
}

func TestReadWithGarbageCookie(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/", nil)
	c.Request.AddCookie(&http.Cookie{Name: CookieName, Value: "garbage"})

	claims := Read(c, testKey)
	if claims.SecretFor("AAAA1111") != "" {
		t.Error("Expected a garbage cookie to yield empty claims")
	}
}

func TestGrantAccumulatesPools(t *testing.T) {
	gin.SetMode(gin.TestMode)

	first := httptest.NewRecorder()
	c1, _ := gin.CreateTestContext(first)
	c1.Request = httptest.NewRequest("POST", "/", nil)
	if err := Grant(c1, testKey, 1, "AAAA1111", "secret-a"); err != nil {
		t.Fatalf("Failed to grant first session: %v", err)
	}

	var issued *http.Cookie
	for _, cookie := range first.Result().Cookies() {
		if cookie.Name == CookieName {
			issued = cookie
		}
	}
	if issued == nil {
		t.Fatal("Expected a session cookie to be set")
	}

	// A second grant on a request carrying the cookie keeps the first secret.
	second := httptest.NewRecorder()
	c2, _ := gin.CreateTestContext(second)
	c2.Request = httptest.NewRequest("POST", "/", nil)
	c2.Request.AddCookie(issued)
	if err := Grant(c2, testKey, 1, "BBBB2222", "secret-b"); err != nil {
		t.Fatalf("Failed to grant second session: %v", err)
	}

	var reissued *http.Cookie
	for _, cookie := range second.Result().Cookies() {
		if cookie.Name == CookieName {
			reissued = cookie
		}
	}
	if reissued == nil {
		t.Fatal("Expected the session cookie to be reissued")
	}

	claims, err := Validate(reissued.Value, testKey)
	if err != nil {
		t.Fatalf("Failed to validate reissued cookie: %v", err)
	}
	if claims.SecretFor("AAAA1111") != "secret-a" {
		t.Error("Expected the first pool's secret to survive the second grant")
	}
	if claims.SecretFor("BBBB2222") != "secret-b" {
		t.Error("Expected the second pool's secret to be added")
	}
}
