package router

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func newLoginRequestContext(t *testing.T, body string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/pos/auth/login", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Request.RemoteAddr = "1.2.3.4:5678"
	return c
}

func TestLoginRateLimitKey(t *testing.T) {
	keyFunc := KeyByIPAndJSONField("username")

	c := newLoginRequestContext(t, `{"username":" Counter1 ","password":"x"}`)
	if key := keyFunc(c); key != "counter1|1.2.3.4" {
		t.Fatalf("unexpected key %q", key)
	}

	// the body must survive key extraction for the login handler to bind
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		t.Fatalf("read body failed: %v", err)
	}
	if !strings.Contains(string(body), "Counter1") {
		t.Fatalf("body not restored: %s", string(body))
	}

	// missing field falls back to plain IP
	c = newLoginRequestContext(t, `{"password":"x"}`)
	if key := keyFunc(c); key != "1.2.3.4" {
		t.Fatalf("expected ip fallback, got %q", key)
	}

	// malformed body falls back to plain IP
	c = newLoginRequestContext(t, `{broken`)
	if key := keyFunc(c); key != "1.2.3.4" {
		t.Fatalf("expected ip fallback for bad json, got %q", key)
	}
}

func TestRateLimitDisabledPassThrough(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name string
		rule RateLimitRule
	}{
		{name: "nil_client", rule: RateLimitRule{WindowSeconds: 60, MaxRequests: 1}},
		{name: "zero_window", rule: RateLimitRule{WindowSeconds: 0, MaxRequests: 1}},
		{name: "zero_max", rule: RateLimitRule{WindowSeconds: 60, MaxRequests: 0}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := gin.New()
			r.Use(RateLimitMiddleware(nil, tc.rule, KeyByIP))
			r.GET("/ping", func(c *gin.Context) {
				c.JSON(http.StatusOK, gin.H{"ok": true})
			})

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

			if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"ok":true`) {
				t.Fatalf("expected pass-through, got code=%d body=%s", w.Code, w.Body.String())
			}
		})
	}
}

func TestToInt64(t *testing.T) {
	if got, ok := toInt64(int64(10)); !ok || got != 10 {
		t.Fatalf("int64: got=%d ok=%v", got, ok)
	}
	if got, ok := toInt64(7); !ok || got != 7 {
		t.Fatalf("int: got=%d ok=%v", got, ok)
	}
	if got, ok := toInt64(float64(13.9)); !ok || got != 13 {
		t.Fatalf("float64: got=%d ok=%v", got, ok)
	}
	if _, ok := toInt64("bad"); ok {
		t.Fatalf("string must not convert")
	}
	if _, ok := toInt64(nil); ok {
		t.Fatalf("nil must not convert")
	}
}
