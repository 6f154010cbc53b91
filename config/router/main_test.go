package router

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arroyodev/illumibot-waitlist/internal/log"
)

func newTestRouterService(t *testing.T) *RouterService {
	t.Helper()
	t.Setenv("GIN_MODE", "test")

	return CreateRouterService(log.NewLoggerWithJSONOutput(), nil, &RouterConfig{
		RateLimitRequests: 100,
		RateLimitWindow:   time.Minute,
		RequestTimeout:    5 * time.Second,
	})
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func TestServiceResultToJSON(t *testing.T) {
	t.Run("success without data", func(t *testing.T) {
		body := OKResult(nil).ToJSON()
		assert.Equal(t, true, body["success"])
		assert.NotContains(t, body, "data")
		assert.NotContains(t, body, "error")
	})

	t.Run("success with data", func(t *testing.T) {
		body := OKResult(map[string]string{"status": "ok"}).ToJSON()
		assert.Equal(t, true, body["success"])
		assert.Contains(t, body, "data")
	})

	t.Run("error carries only the message", func(t *testing.T) {
		body := BadRequestResult("All required fields must be filled.").ToJSON()
		assert.Equal(t, "All required fields must be filled.", body["error"])
		assert.NotContains(t, body, "success")
	})
}

func TestNormalizePath(t *testing.T) {
	cases := []struct {
		mount, relative, want string
	}{
		{"/api/waitlist", "", "/api/waitlist"},
		{"/api/waitlist", "extra", "/api/waitlist/extra"},
		{"/", "", "/"},
		{"/", "contact", "/contact"},
		{"/health", "", "/health"},
	}

	for _, tc := range cases {
		controller := NewRESTController("test", tc.mount, nil)
		assert.Equal(t, tc.want, normalizePath(controller, tc.relative), "mount %q relative %q", tc.mount, tc.relative)
	}
}

func TestParseTrustedProxiesEnv(t *testing.T) {
	assert.Nil(t, parseTrustedProxiesEnv(""))
	assert.Nil(t, parseTrustedProxiesEnv("  "))
	assert.Nil(t, parseTrustedProxiesEnv(" , ,"))
	assert.Equal(t, []string{"0.0.0.0/0", "::/0"}, parseTrustedProxiesEnv("*"))
	assert.Equal(t, []string{"10.0.0.0/8", "192.168.1.1"}, parseTrustedProxiesEnv("10.0.0.0/8, 192.168.1.1"))
}

func TestRouterWireShapes(t *testing.T) {
	rs := newTestRouterService(t)

	controller := NewRESTController("test", "/api/test", func(rs *RouterService, c *RESTController) {
		rs.AddPostHandler(c, nil, "ok", func(ctx *RequestContext) *ServiceResult {
			return OKResult(nil)
		})
		rs.AddPostHandler(c, nil, "bad", func(ctx *RequestContext) *ServiceResult {
			return BadRequestResult("Invalid email address.")
		})
		rs.AddGetHandler(c, nil, "boom", func(ctx *RequestContext) *ServiceResult {
			panic("handler exploded")
		})
	})
	rs.MountController(controller)

	server := httptest.NewServer(rs.GetEngine())
	defer server.Close()

	t.Run("success shape", func(t *testing.T) {
		resp, err := http.Post(server.URL+"/api/test/ok", "application/json", strings.NewReader("{}"))
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		body := decodeBody(t, resp)
		assert.Equal(t, true, body["success"])
		assert.NotContains(t, body, "error")
	})

	t.Run("client error shape", func(t *testing.T) {
		resp, err := http.Post(server.URL+"/api/test/bad", "application/json", strings.NewReader("{}"))
		require.NoError(t, err)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)

		body := decodeBody(t, resp)
		assert.Equal(t, "Invalid email address.", body["error"])
		assert.NotContains(t, body, "success")
	})

	t.Run("panic becomes generic 500", func(t *testing.T) {
		resp, err := http.Get(server.URL + "/api/test/boom")
		require.NoError(t, err)
		require.Equal(t, http.StatusInternalServerError, resp.StatusCode)

		body := decodeBody(t, resp)
		assert.Equal(t, "Internal server error", body["error"])
	})

	t.Run("unknown route", func(t *testing.T) {
		resp, err := http.Get(server.URL + "/api/nope")
		require.NoError(t, err)
		require.Equal(t, http.StatusNotFound, resp.StatusCode)

		body := decodeBody(t, resp)
		assert.Equal(t, "Route not found", body["error"])
	})

	t.Run("wrong method", func(t *testing.T) {
		resp, err := http.Get(server.URL + "/api/test/ok")
		require.NoError(t, err)
		require.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)

		body := decodeBody(t, resp)
		assert.Equal(t, "Method not allowed", body["error"])
	})

	t.Run("correlation id header is set", func(t *testing.T) {
		resp, err := http.Post(server.URL+"/api/test/ok", "application/json", strings.NewReader("{}"))
		require.NoError(t, err)
		resp.Body.Close()
		assert.NotEmpty(t, resp.Header.Get("X-Correlation-ID"))
	})

	t.Run("security headers are set", func(t *testing.T) {
		resp, err := http.Post(server.URL+"/api/test/ok", "application/json", strings.NewReader("{}"))
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, "nosniff", resp.Header.Get("X-Content-Type-Options"))
		assert.Equal(t, "DENY", resp.Header.Get("X-Frame-Options"))
	})
}

func TestRouterPerRouteRateLimit(t *testing.T) {
	rs := newTestRouterService(t)

	controller := NewRESTController("limited", "/api/limited", func(rs *RouterService, c *RESTController) {
		limit := &RateLimitOption{
			Limiter: rs.NewRateLimiter(2, time.Minute),
			Message: "Too many submissions. Please try again later.",
		}
		rs.AddPostHandler(c, limit, "", func(ctx *RequestContext) *ServiceResult {
			return OKResult(nil)
		})
	})
	rs.MountController(controller)

	server := httptest.NewServer(rs.GetEngine())
	defer server.Close()

	for i := 0; i < 2; i++ {
		resp, err := http.Post(server.URL+"/api/limited", "application/json", strings.NewReader("{}"))
		require.NoError(t, err)
		resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode, "request %d should pass", i+1)
	}

	resp, err := http.Post(server.URL+"/api/limited", "application/json", strings.NewReader("{}"))
	require.NoError(t, err)
	require.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("Retry-After"))

	body := decodeBody(t, resp)
	assert.Equal(t, "Too many submissions. Please try again later.", body["error"])
}

func TestRouterBodySizeLimit(t *testing.T) {
	t.Setenv("MAX_REQUEST_BODY_BYTES", "128")
	rs := newTestRouterService(t)

	controller := NewRESTController("sized", "/api/sized", func(rs *RouterService, c *RESTController) {
		rs.AddPostHandler(c, nil, "", func(ctx *RequestContext) *ServiceResult {
			return OKResult(nil)
		})
	})
	rs.MountController(controller)

	server := httptest.NewServer(rs.GetEngine())
	defer server.Close()

	small := strings.NewReader(`{"ok":true}`)
	resp, err := http.Post(server.URL+"/api/sized", "application/json", small)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	big := bytes.NewReader(bytes.Repeat([]byte("a"), 4096))
	resp, err = http.Post(server.URL+"/api/sized", "application/json", big)
	require.NoError(t, err)
	require.Equal(t, http.StatusRequestEntityTooLarge, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "Request payload too large", body["error"])
}

func TestMetricsEndpoint(t *testing.T) {
	rs := newTestRouterService(t)

	server := httptest.NewServer(rs.GetEngine())
	defer server.Close()

	resp, err := http.Get(server.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	buf := new(bytes.Buffer)
	_, err = buf.ReadFrom(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "go_goroutines")
}

func TestDuplicateHandlerRegistrationPanics(t *testing.T) {
	rs := newTestRouterService(t)

	first := NewRESTController("first", "/api/dup", func(rs *RouterService, c *RESTController) {
		rs.AddPostHandler(c, nil, "", func(ctx *RequestContext) *ServiceResult { return OKResult(nil) })
	})
	rs.MountController(first)

	second := NewRESTController("second", "/api/dup", func(rs *RouterService, c *RESTController) {
		rs.AddPostHandler(c, nil, "", func(ctx *RequestContext) *ServiceResult { return OKResult(nil) })
	})

	assert.Panics(t, func() { rs.MountController(second) })
}

func TestGetDefaultRateLimitConfig(t *testing.T) {
	rs := newTestRouterService(t)

	requests, window := rs.GetDefaultRateLimitConfig()
	assert.Equal(t, 100, requests)
	assert.Equal(t, time.Minute, window)
}

func TestPageHandlerRendersHTML(t *testing.T) {
	rs := newTestRouterService(t)

	controller := NewRESTController("page", "/pages", func(rs *RouterService, c *RESTController) {
		rs.AddGetPageHandler(c, nil, "hello", func(ctx *RequestContext) *PageResult {
			return HTMLResult([]byte("<html><body>hello</body></html>"))
		})
	})
	rs.MountController(controller)

	server := httptest.NewServer(rs.GetEngine())
	defer server.Close()

	resp, err := http.Get(server.URL + "/pages/hello")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, strings.HasPrefix(resp.Header.Get("Content-Type"), "text/html"))

	buf := new(bytes.Buffer)
	_, err = buf.ReadFrom(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "hello")
}

func TestKeyForPathAndMethod(t *testing.T) {
	rs := newTestRouterService(t)
	assert.Equal(t, "POST-/api/waitlist", rs.keyForPathAndMethod("/api/waitlist", "POST"))
	assert.Equal(t, fmt.Sprintf("%s-%s", "GET", "/qr"), rs.keyForPathAndMethod("/qr", "GET"))
}
