package handlers

import (
	"crypto/tls"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"bookreview/internal/config"
)

func TestTokenCookieSecurity(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		cookieSecure   bool
		forwardedProto string
		tls            bool
		wantSecure     bool
	}{
		{
			name:           "HTTPS via X-Forwarded-Proto",
			forwardedProto: "https",
			wantSecure:     true,
		},
		{
			name:       "HTTP (no forwarded proto)",
			wantSecure: false,
		},
		{
			name:           "HTTP explicit",
			forwardedProto: "http",
			wantSecure:     false,
		},
		{
			name:       "direct TLS",
			tls:        true,
			wantSecure: true,
		},
		{
			name:         "forced by config",
			cookieSecure: true,
			wantSecure:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewAuthHandler(nil, config.AuthConfig{CookieName: "token", CookieSecure: tt.cookieSecure})

			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest("POST", "/api/auth/login", nil)
			if tt.forwardedProto != "" {
				c.Request.Header.Set("X-Forwarded-Proto", tt.forwardedProto)
			}
			if tt.tls {
				c.Request.TLS = &tls.ConnectionState{}
			}

			h.setTokenCookie(c, "test-token", 3600)

			cookies := w.Result().Cookies()
			if len(cookies) == 0 {
				t.Fatal("Expected cookie to be set")
			}

			cookie := cookies[0]
			if cookie.Name != "token" {
				t.Errorf("Cookie name = %q, want token", cookie.Name)
			}
			if cookie.Secure != tt.wantSecure {
				t.Errorf("Cookie Secure = %v, want %v", cookie.Secure, tt.wantSecure)
			}
			if !cookie.HttpOnly {
				t.Error("Cookie should have HttpOnly flag")
			}
			if cookie.SameSite != http.SameSiteLaxMode {
				t.Errorf("Cookie SameSite = %v, want SameSiteLaxMode", cookie.SameSite)
			}
		})
	}
}

func TestUploadSecurityHeaders(t *testing.T) {
	s := newTestServer(t)
	if err := os.WriteFile(filepath.Join(s.cfg.Uploads.Path, "cover.svg"), []byte("<svg/>"), 0o644); err != nil {
		t.Fatal(err)
	}

	requiredHeaders := map[string]string{
		"Content-Security-Policy": "default-src 'none'",
		"X-Content-Type-Options":  "nosniff",
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, httptest.NewRequest("GET", "/uploads/cover.svg", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	for header, expectedContains := range requiredHeaders {
		actual := w.Header().Get(header)
		if actual == "" {
			t.Errorf("Missing header: %s", header)
		}
		if !strings.Contains(actual, expectedContains) {
			t.Errorf("Header %s = %q, should contain %q", header, actual, expectedContains)
		}
	}
}

func TestUploadsAreReadOnly(t *testing.T) {
	s := newTestServer(t)

	for _, method := range []string{"POST", "PUT", "DELETE"} {
		w := httptest.NewRecorder()
		s.router.ServeHTTP(w, httptest.NewRequest(method, "/uploads/cover.svg", nil))
		if w.Code != http.StatusNotFound {
			t.Errorf("%s /uploads status = %d, want %d", method, w.Code, http.StatusNotFound)
		}
	}
}

func TestUploadsPathTraversal(t *testing.T) {
	s := newTestServer(t)

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, httptest.NewRequest("GET", "/uploads/../test.db", nil))
	if w.Code == http.StatusOK {
		t.Error("path traversal out of the uploads directory should not succeed")
	}
}
