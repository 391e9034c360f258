package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/gtsarchive/gts-backend/internal/config"
	"github.com/gtsarchive/gts-backend/internal/utils"
)

func runChain(t *testing.T, mw echo.MiddlewareFunc, prepare func(echo.Context)) (*httptest.ResponseRecorder, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if prepare != nil {
		prepare(c)
	}
	reached := false
	h := mw(func(c echo.Context) error {
		reached = true
		return c.NoContent(http.StatusOK)
	})
	if err := h(c); err != nil {
		t.Fatalf("handler chain returned error: %v", err)
	}
	return rec, reached
}

func TestRequireRole(t *testing.T) {
	cases := []struct {
		name       string
		role       any
		allowed    []string
		wantStatus int
		wantNext   bool
	}{
		{"author allowed", "AUTHOR", []string{"AUTHOR", "PROFESSOR"}, http.StatusOK, true},
		{"professor allowed", "PROFESSOR", []string{"AUTHOR", "PROFESSOR"}, http.StatusOK, true},
		{"unknown role rejected", "ADMIN", []string{"AUTHOR", "PROFESSOR"}, http.StatusForbidden, false},
		{"missing role rejected", nil, []string{"AUTHOR"}, http.StatusForbidden, false},
		{"non-string role rejected", 7, []string{"AUTHOR"}, http.StatusForbidden, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec, reached := runChain(t, RequireRole(tc.allowed...), func(c echo.Context) {
				if tc.role != nil {
					c.Set("role", tc.role)
				}
			})
			if rec.Code != tc.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tc.wantStatus)
			}
			if reached != tc.wantNext {
				t.Fatalf("next reached = %v, want %v", reached, tc.wantNext)
			}
		})
	}
}

func TestJWTAuthAcceptsIssuedToken(t *testing.T) {
	const secret = "mw-test-secret"
	at, err := utils.NewAccessToken(secret, 7, "AUTHOR", 5)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/theses", nil)
	req.Header.Set("Authorization", "Bearer "+at.Token)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var gotUID, gotRole any
	h := JWTAuth(secret)(func(c echo.Context) error {
		gotUID = c.Get("user_id")
		gotRole = c.Get("role")
		return c.NoContent(http.StatusOK)
	})
	if err := h(c); err != nil {
		t.Fatalf("chain error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if uid, _ := gotUID.(float64); uint64(uid) != 7 {
		t.Fatalf("user_id claim = %v, want 7", gotUID)
	}
	if role, _ := gotRole.(string); role != "AUTHOR" {
		t.Fatalf("role claim = %v, want AUTHOR", gotRole)
	}
}

func TestJWTAuthRejects(t *testing.T) {
	cases := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"not bearer", "Basic abc"},
		{"garbage token", "Bearer not.a.jwt"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			h := JWTAuth("secret")(func(c echo.Context) error {
				t.Fatal("next handler must not run")
				return nil
			})
			if err := h(c); err != nil {
				t.Fatalf("chain error: %v", err)
			}
			if rec.Code != http.StatusUnauthorized {
				t.Fatalf("status = %d, want 401", rec.Code)
			}
		})
	}
}

func TestDisabledCacheAndLimiterPassThrough(t *testing.T) {
	cache := NewRedisCache(config.CacheConfig{Enabled: false}, nil)
	rec, reached := runChain(t, cache, nil)
	if !reached || rec.Code != http.StatusOK {
		t.Fatalf("disabled cache must pass through (reached=%v status=%d)", reached, rec.Code)
	}

	rl := NewRateLimit(config.RateLimitConfig{Enabled: false}, nil)
	rec, reached = runChain(t, rl, nil)
	if !reached || rec.Code != http.StatusOK {
		t.Fatalf("disabled limiter must pass through (reached=%v status=%d)", reached, rec.Code)
	}
}
