package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestRequestIDMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Header().Get("X-Request-ID") == "" {
		t.Fatalf("missing generated request ID")
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "caller-supplied")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if got := w.Header().Get("X-Request-ID"); got != "caller-supplied" {
		t.Fatalf("caller request ID not echoed, got %q", got)
	}
}

func TestCORSMiddlewareAllowsConfiguredOrigin(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(CORSMiddleware([]string{"http://localhost:5173"}))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
		t.Fatalf("allowed origin not echoed, got %q", got)
	}

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "http://evil.example")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Fatalf("disallowed origin echoed: %q", got)
	}
}

func TestCORSMiddlewarePreflight(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(CORSMiddleware([]string{"http://localhost:5173"}))
	r.POST("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNoContent {
		t.Fatalf("preflight status = %d, want 204", w.Code)
	}
}

func TestValidateComponentID(t *testing.T) {
	v := NewInputValidator()

	valid := []string{"cpu-1a2b3c4d5e", "mb_board", "PSU-850"}
	for _, id := range valid {
		if !v.ValidateComponentID(id) {
			t.Fatalf("ValidateComponentID(%q) = false, want true", id)
		}
	}

	invalid := []string{"", "cpu;drop", "a b", "x/../y", string(make([]byte, 200))}
	for _, id := range invalid {
		if v.ValidateComponentID(id) {
			t.Fatalf("ValidateComponentID(%q) = true, want false", id)
		}
	}
}

func TestValidateToken(t *testing.T) {
	v := NewInputValidator()

	if !v.ValidateToken("aaaaaaaaaa.bbbbbbbbbb.cccccccccc") {
		t.Fatalf("JWT-shaped token rejected")
	}
	if v.ValidateToken("not-a-token") {
		t.Fatalf("short token accepted")
	}
	if v.ValidateToken("aaaaaaaaaa.bbbbbbbbbb.cccccccccc.dddddddddd") {
		t.Fatalf("four-part token accepted")
	}
}
