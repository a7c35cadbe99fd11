package router

import "github.com/gin-gonic/gin"

type Registry struct {
	Engine  *gin.Engine
	API     *gin.RouterGroup
	modules []Module
}

// NewRegistry mounts modules under basePath ("" for the engine root).
func NewRegistry(engine *gin.Engine, basePath string) *Registry {
	api := engine.Group(basePath)
	return &Registry{Engine: engine, API: api}
}

func (r *Registry) Add(mod Module) {
	r.modules = append(r.modules, mod)
}

func (r *Registry) RegisterAll() {
	for _, m := range r.modules {
		m.Register(r.API)
	}
}
