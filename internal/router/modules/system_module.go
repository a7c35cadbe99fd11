package modules

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	handlers "github.com/oksasatya/usuarios-api/internal/interface/http"
)

// SystemModule serves the banner and, when enabled, the Prometheus scrape endpoint.
type SystemModule struct {
	MetricsEnabled bool
}

func NewSystemModule(metricsEnabled bool) *SystemModule {
	return &SystemModule{MetricsEnabled: metricsEnabled}
}

func (m *SystemModule) Register(rg *gin.RouterGroup) {
	rg.GET("/", handlers.Index)
	if m.MetricsEnabled {
		rg.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}
}
