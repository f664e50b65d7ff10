package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"autocare/utils"

	"github.com/gin-gonic/gin"
)

type fakeTokenStore struct {
	hashes map[string]map[string]bool
}

func (s *fakeTokenStore) HasTokenHash(principalID, hash string) (bool, error) {
	return s.hashes[principalID][hash], nil
}

func gateRouter(namespace string, store TokenStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/guarded", RequireAuth(namespace, store), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"principal": c.GetString(namespace + "ID")})
	})
	return r
}

func doRequest(t *testing.T, r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireAuthPasses(t *testing.T) {
	token, err := utils.GenerateToken("u1", "user", time.Hour)
	if err != nil {
		t.Fatalf("generate error: %v", err)
	}
	store := &fakeTokenStore{hashes: map[string]map[string]bool{
		"u1": {utils.HashToken(token): true},
	}}

	w := doRequest(t, gateRouter("user", store), "Bearer "+token)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
}

func TestRequireAuthMissingHeader(t *testing.T) {
	store := &fakeTokenStore{hashes: map[string]map[string]bool{}}
	r := gateRouter("user", store)

	if w := doRequest(t, r, ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without header, got %d", w.Code)
	}
	if w := doRequest(t, r, "Token abc"); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for non-bearer scheme, got %d", w.Code)
	}
	if w := doRequest(t, r, "Bearer "); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for empty token, got %d", w.Code)
	}
}

func TestRequireAuthNamespaceMismatch(t *testing.T) {
	token, err := utils.GenerateToken("u1", "user", time.Hour)
	if err != nil {
		t.Fatalf("generate error: %v", err)
	}
	store := &fakeTokenStore{hashes: map[string]map[string]bool{
		"u1": {utils.HashToken(token): true},
	}}

	// A valid user token must not open the admin gate.
	w := doRequest(t, gateRouter("admin", store), "Bearer "+token)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for namespace mismatch, got %d", w.Code)
	}
}

func TestRequireAuthRevokedToken(t *testing.T) {
	token, err := utils.GenerateToken("u1", "user", time.Hour)
	if err != nil {
		t.Fatalf("generate error: %v", err)
	}

	// The token is cryptographically valid but its hash is not in the live
	// set anymore, as after a logout.
	store := &fakeTokenStore{hashes: map[string]map[string]bool{"u1": {}}}

	w := doRequest(t, gateRouter("user", store), "Bearer "+token)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for revoked token, got %d", w.Code)
	}
}

func TestRequireAuthExpiredToken(t *testing.T) {
	token, err := utils.GenerateToken("u1", "user", -time.Minute)
	if err != nil {
		t.Fatalf("generate error: %v", err)
	}
	store := &fakeTokenStore{hashes: map[string]map[string]bool{
		"u1": {utils.HashToken(token): true},
	}}

	w := doRequest(t, gateRouter("user", store), "Bearer "+token)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for expired token, got %d", w.Code)
	}
}
