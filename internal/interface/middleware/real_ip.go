package middleware

import (
	"github.com/gin-gonic/gin"
)

const CtxRealIPKey = "real_ip"

// ConfigureClientIP makes c.ClientIP() honour CF-Connecting-IP, X-Forwarded-For
// and X-Real-IP only when the peer is one of proxies. An empty list trusts no
// proxy, so the TCP peer address is used.
func ConfigureClientIP(engine *gin.Engine, proxies []string) error {
	engine.RemoteIPHeaders = []string{"CF-Connecting-IP", "X-Forwarded-For", "X-Real-IP"}
	if len(proxies) == 0 {
		proxies = nil
	}
	return engine.SetTrustedProxies(proxies)
}

// RealIP stores the resolved client address under "real_ip" for logging.
func RealIP() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(CtxRealIPKey, clientIP(c))
		c.Next()
	}
}

// clientIP is the address the limiter and allowlist key on. Proxy headers
// only count through ConfigureClientIP's trusted list.
func clientIP(c *gin.Context) string {
	if ip := c.ClientIP(); ip != "" {
		return ip
	}
	return "unknown"
}
