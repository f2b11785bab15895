package handlers

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	intconfig "marketplace/internal/config"
	"marketplace/internal/repositories"
)

var (
	routerMu sync.RWMutex
	router   *gin.Engine
)

// SetRouter stores the active gin engine for later inspection (/api/routes).
func SetRouter(r *gin.Engine) {
	routerMu.Lock()
	defer routerMu.Unlock()
	router = r
}

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "marketplace api running"})
}

func DBCheck(c *gin.Context) {
	if err := intconfig.EnsureDB(c.Request.Context()); err != nil {
		respondError(c, http.StatusServiceUnavailable, "db_unavailable", "database unreachable: "+err.Error(), nil)
		return
	}
	missing, err := repositories.SchemaRepository{}.MissingTables(c.Request.Context(), repositories.RequiredTables...)
	if err != nil {
		respondError(c, http.StatusServiceUnavailable, "db_unavailable", "schema check failed: "+err.Error(), nil)
		return
	}
	if len(missing) > 0 {
		respondError(c, http.StatusServiceUnavailable, "schema_incomplete", "database is missing tables", gin.H{"missing": missing})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "database connection ok"})
}

func Routes(c *gin.Context) {
	routerMu.RLock()
	r := router
	routerMu.RUnlock()
	if r == nil {
		respondError(c, http.StatusServiceUnavailable, "not_ready", "router not ready", nil)
		return
	}

	routes := r.Routes()
	out := make([]gin.H, 0, len(routes))
	for _, rt := range routes {
		out = append(out, gin.H{
			"method":  rt.Method,
			"path":    rt.Path,
			"handler": rt.Handler,
		})
	}
	c.JSON(http.StatusOK, gin.H{"routes": out})
}
