package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/usuarios-api/pkg/helpers"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func serve(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuth(t *testing.T) {
	jwt := helpers.NewJWTManager("segredo", time.Hour, "")
	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/p", Auth(jwt, nil), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"login": c.GetString(CtxLoginKey), "role": c.GetString(CtxRoleKey)})
	})

	tok, _, err := jwt.Issue("ana", "admin")
	require.NoError(t, err)

	cases := []struct {
		name   string
		header string
		status int
		msg    string
	}{
		{"valid", "Bearer " + tok, http.StatusOK, ""},
		{"missing", "", http.StatusUnauthorized, "Token não fornecido."},
		{"wrong scheme", "Token " + tok, http.StatusUnauthorized, "Token inválido."},
		{"garbage", "Bearer abc", http.StatusUnauthorized, "Token inválido."},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/p", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := serve(r, req)
			require.Equal(t, tc.status, w.Code)

			var body map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			if tc.status == http.StatusOK {
				assert.Equal(t, "ana", body["login"])
				assert.Equal(t, "admin", body["role"])
				return
			}
			assert.Equal(t, tc.msg, body["message"])
			assert.Equal(t, w.Header().Get(HeaderRequestID), body["request_id"])
		})
	}
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, c.GetString(CtxRequestIDKey)) })

	w1 := serve(r, httptest.NewRequest(http.MethodGet, "/", nil))
	w2 := serve(r, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, w1.Body.String(), w1.Header().Get(HeaderRequestID))
	assert.NotEqual(t, w1.Body.String(), w2.Body.String())
}

func newIPEngine(t *testing.T, proxies []string) *gin.Engine {
	t.Helper()
	r := gin.New()
	require.NoError(t, ConfigureClientIP(r, proxies))
	r.Use(RealIP())
	return r
}

func requestFrom(remote string, headers map[string]string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = remote
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	return req
}

func TestRealIP(t *testing.T) {
	r := newIPEngine(t, []string{"192.0.2.1"})
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, c.GetString(CtxRealIPKey)) })

	t.Run("trusted proxy cloudflare header", func(t *testing.T) {
		req := requestFrom("192.0.2.1:443", map[string]string{"CF-Connecting-IP": "203.0.113.7", "X-Forwarded-For": "198.51.100.1"})
		assert.Equal(t, "203.0.113.7", serve(r, req).Body.String())
	})
	t.Run("trusted proxy forwarded for", func(t *testing.T) {
		req := requestFrom("192.0.2.1:443", map[string]string{"X-Forwarded-For": "198.51.100.1"})
		assert.Equal(t, "198.51.100.1", serve(r, req).Body.String())
	})
	t.Run("untrusted peer headers ignored", func(t *testing.T) {
		req := requestFrom("203.0.113.9:1234", map[string]string{"CF-Connecting-IP": "10.0.0.1", "X-Forwarded-For": "127.0.0.1"})
		assert.Equal(t, "203.0.113.9", serve(r, req).Body.String())
	})
	t.Run("no proxies configured", func(t *testing.T) {
		none := newIPEngine(t, nil)
		none.GET("/", func(c *gin.Context) { c.String(http.StatusOK, c.GetString(CtxRealIPKey)) })
		req := requestFrom("192.0.2.1:443", map[string]string{"X-Forwarded-For": "198.51.100.1"})
		assert.Equal(t, "192.0.2.1", serve(none, req).Body.String())
	})
}

func TestForgedHeadersDoNotChangeLimiterIdentity(t *testing.T) {
	r := newIPEngine(t, nil)
	key := KeyByIPAndPath()
	allow := AllowPrivateIP()
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"key": key(c), "allow": allow(c)})
	})

	var keys []string
	for _, forged := range []string{"127.0.0.1", "10.0.0.1", "198.51.100.1"} {
		req := requestFrom("203.0.113.9:1234", map[string]string{"X-Forwarded-For": forged, "CF-Connecting-IP": forged})
		var body struct {
			Key   string `json:"key"`
			Allow bool   `json:"allow"`
		}
		require.NoError(t, json.Unmarshal(serve(r, req).Body.Bytes(), &body))
		assert.False(t, body.Allow, forged)
		keys = append(keys, body.Key)
	}
	assert.Equal(t, "rl:path:/:ip:203.0.113.9", keys[0])
	assert.Equal(t, keys[0], keys[1])
	assert.Equal(t, keys[0], keys[2])
}

func TestAllowPrivateIP(t *testing.T) {
	r := newIPEngine(t, nil)
	allow := AllowPrivateIP()
	r.GET("/", func(c *gin.Context) {
		if allow(c) {
			c.Status(http.StatusNoContent)
			return
		}
		c.Status(http.StatusOK)
	})
	for remote, want := range map[string]int{
		"127.0.0.1:1":   http.StatusNoContent,
		"10.1.2.3:1":    http.StatusNoContent,
		"192.168.0.9:1": http.StatusNoContent,
		"8.8.8.8:1":     http.StatusOK,
	} {
		assert.Equal(t, want, serve(r, requestFrom(remote, nil)).Code, remote)
	}
}

func TestRateLimitWithoutRedisPassesThrough(t *testing.T) {
	r := gin.New()
	r.POST("/login", RateLimit(nil, 1, time.Minute, KeyByIPAndPath(), nil, nil), func(c *gin.Context) { c.Status(http.StatusNoContent) })
	for i := 0; i < 3; i++ {
		w := serve(r, httptest.NewRequest(http.MethodPost, "/login", nil))
		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Header().Get("X-RateLimit-Limit"))
	}
}

func TestMetricsAndLoggerDoNotAlterResponse(t *testing.T) {
	r := gin.New()
	r.Use(RequestIDMiddleware(), RealIP(), Metrics(), RequestLogger(helpers.NewLogger("test", "test")))
	r.GET("/ok", func(c *gin.Context) { c.String(http.StatusTeapot, "x") })

	w := serve(r, httptest.NewRequest(http.MethodGet, "/ok", nil))
	assert.Equal(t, http.StatusTeapot, w.Code)
	assert.Equal(t, "x", w.Body.String())

	w = serve(r, httptest.NewRequest(http.MethodGet, "/missing", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
