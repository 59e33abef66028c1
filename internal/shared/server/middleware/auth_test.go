package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"resumebuilder-backend/internal/shared/auth"
)

func newAuthRouter(t *testing.T, signer *auth.Signer) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Auth(signer))
	r.GET("/protected", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userId": UserIDFromContext(c)})
	})
	return r
}

func mustSigner(t *testing.T, ttl time.Duration) *auth.Signer {
	t.Helper()
	signer, err := auth.NewSigner("test-secret", ttl)
	if err != nil {
		t.Fatalf("NewSigner: %v", err)
	}
	return signer
}

func TestAuthRejectsMissingToken(t *testing.T) {
	r := newAuthRouter(t, mustSigner(t, time.Hour))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.Code)
	}
}

func TestAuthRejectsMalformedHeader(t *testing.T) {
	r := newAuthRouter(t, mustSigner(t, time.Hour))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Basic abc123")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.Code)
	}
}

func TestAuthRejectsTamperedToken(t *testing.T) {
	signer := mustSigner(t, time.Hour)
	r := newAuthRouter(t, signer)

	token, _, err := signer.Issue("user-1")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token+"x")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.Code)
	}
}

func TestAuthRejectsExpiredToken(t *testing.T) {
	expired := mustSigner(t, -time.Minute)
	token, _, err := expired.Issue("user-1")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	r := newAuthRouter(t, mustSigner(t, time.Hour))
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.Code)
	}
}

func TestAuthAcceptsValidTokenAndSetsUserID(t *testing.T) {
	signer := mustSigner(t, time.Hour)
	r := newAuthRouter(t, signer)

	token, _, err := signer.Issue("user-1")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	if body := resp.Body.String(); !strings.Contains(body, "user-1") {
		t.Fatalf("expected user id in body, got %s", body)
	}
}
