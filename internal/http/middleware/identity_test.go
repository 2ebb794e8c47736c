package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/yungbote/discussions-backend/internal/domain"
	"github.com/yungbote/discussions-backend/internal/platform/logger"
	"github.com/yungbote/discussions-backend/internal/requestdata"
	"github.com/yungbote/discussions-backend/internal/services"
)

const testSecret = "test-secret"

func newTestLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	t.Cleanup(log.Sync)
	return log
}

func signToken(t *testing.T, sub, role string) string {
	t.Helper()
	claims := services.JWTClaims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sub,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func resolveIdentity(t *testing.T, decorate func(*http.Request)) *requestdata.Identity {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := newTestLogger(t)
	im := NewIdentityMiddleware(log, services.NewIdentityService(log, testSecret))

	var got *requestdata.Identity
	r := gin.New()
	r.Use(im.Resolve())
	r.GET("/probe", func(c *gin.Context) {
		got = requestdata.GetIdentity(c.Request.Context())
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	if decorate != nil {
		decorate(req)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
	if got == nil {
		t.Fatal("no identity attached to request context")
	}
	return got
}

func TestResolveNoCredentials(t *testing.T) {
	id := resolveIdentity(t, nil)
	if id.Authenticated || id.UserID != nil || id.Role != domain.RoleUnknown {
		t.Fatalf("expected anonymous identity, got %+v", id)
	}
}

func TestResolveBearerToken(t *testing.T) {
	token := signToken(t, "42", "staff")
	id := resolveIdentity(t, func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer "+token)
	})
	if !id.Authenticated {
		t.Fatal("expected authenticated identity")
	}
	if id.UserID == nil || *id.UserID != 42 {
		t.Fatalf("unexpected user id: %+v", id.UserID)
	}
	if id.Role != domain.RoleStaff {
		t.Fatalf("unexpected role: %s", id.Role)
	}
}

func TestResolveBadTokenFallsBackToHeader(t *testing.T) {
	id := resolveIdentity(t, func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer not-a-jwt")
		req.Header.Set("X-User-ID", "7")
	})
	if id.Authenticated {
		t.Fatal("bad token must not authenticate")
	}
	if id.UserID == nil || *id.UserID != 7 {
		t.Fatalf("expected delegated user id 7, got %+v", id.UserID)
	}
}

func TestResolveDelegatedHeader(t *testing.T) {
	id := resolveIdentity(t, func(req *http.Request) {
		req.Header.Set("X-User-ID", "15")
	})
	if id.Authenticated {
		t.Fatal("header identity must not be authenticated")
	}
	if id.UserID == nil || *id.UserID != 15 {
		t.Fatalf("unexpected user id: %+v", id.UserID)
	}
	if id.Role != domain.RoleUnknown {
		t.Fatalf("unexpected role: %s", id.Role)
	}
}

func TestResolveMalformedHeader(t *testing.T) {
	id := resolveIdentity(t, func(req *http.Request) {
		req.Header.Set("X-User-ID", "not-an-int")
	})
	if id.UserID != nil {
		t.Fatalf("malformed header must resolve to nil user id, got %d", *id.UserID)
	}
}

func TestRequireRoleDeniesAnonymous(t *testing.T) {
	gin.SetMode(gin.TestMode)

	log := newTestLogger(t)
	im := NewIdentityMiddleware(log, services.NewIdentityService(log, testSecret))

	r := gin.New()
	r.Use(im.Resolve())
	r.GET("/gated", RequireRole(domain.RoleStudent, domain.RoleStaff, domain.RoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/gated", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("anonymous caller: got %d want 403", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/gated", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "1", "STUDENT"))
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("student caller: got %d want 200", rec.Code)
	}
}
