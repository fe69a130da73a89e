package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/tripondo/tripondo-backend/internal/config"
	"github.com/tripondo/tripondo-backend/internal/utils"
)

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.ExpiresIn = 3600
	return cfg
}

func newProtectedRouter(cfg *config.Config, adminOnly bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	group := router.Group("/", JWTAuthMiddleware(cfg))
	if adminOnly {
		group.Use(AdminOnly())
	}
	group.GET("/whoami", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"id":   c.GetString("userID"),
			"role": c.GetString("userRole"),
		})
	})
	return router
}

func TestJWTAuthMiddlewareRejectsMissingHeader(t *testing.T) {
	router := newProtectedRouter(newTestConfig(), false)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", w.Code, http.StatusUnauthorized)
	}
}

func TestJWTAuthMiddlewareRejectsMalformedHeader(t *testing.T) {
	router := newProtectedRouter(newTestConfig(), false)

	for _, header := range []string{"token-without-scheme", "Basic abc123", "Bearer"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set("Authorization", header)
		router.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("header %q: status = %d, want %d", header, w.Code, http.StatusUnauthorized)
		}
	}
}

func TestJWTAuthMiddlewareRejectsBadSignature(t *testing.T) {
	cfg := newTestConfig()
	other := newTestConfig()
	other.JWT.Secret = "a-different-secret"

	token, err := utils.GenerateJWT("abc", "Eya", "eya@example.com", "user", other)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	router := newProtectedRouter(cfg, false)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", w.Code, http.StatusUnauthorized)
	}
}

func TestJWTAuthMiddlewareSetsIdentity(t *testing.T) {
	cfg := newTestConfig()
	token, err := utils.GenerateJWT("64f0c2e8a1b2c3d4e5f60718", "Eya", "eya@example.com", "user", cfg)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	gin.SetMode(gin.TestMode)
	router := gin.New()
	var gotID, gotName, gotEmail, gotRole string
	router.GET("/whoami", JWTAuthMiddleware(cfg), func(c *gin.Context) {
		gotID = c.GetString("userID")
		gotName = c.GetString("userName")
		gotEmail = c.GetString("userEmail")
		gotRole = c.GetString("userRole")
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if gotID != "64f0c2e8a1b2c3d4e5f60718" || gotName != "Eya" || gotEmail != "eya@example.com" || gotRole != "user" {
		t.Errorf("identity = %q/%q/%q/%q", gotID, gotName, gotEmail, gotRole)
	}
}

func TestAdminOnly(t *testing.T) {
	cfg := newTestConfig()
	router := newProtectedRouter(cfg, true)

	userToken, err := utils.GenerateJWT("abc", "Eya", "eya@example.com", "user", cfg)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+userToken)
	router.ServeHTTP(w, req)
	if w.Code != http.StatusForbidden {
		t.Errorf("user role status = %d, want %d", w.Code, http.StatusForbidden)
	}

	adminToken, err := utils.GenerateJWT("def", "Root", "root@example.com", "admin", cfg)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("admin role status = %d, want %d", w.Code, http.StatusOK)
	}
}
