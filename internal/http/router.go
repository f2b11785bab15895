package api

import (
	stdhttp "net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	intconfig "marketplace/internal/config"
	h "marketplace/internal/http/handlers"
	"marketplace/internal/http/middleware"
	"marketplace/internal/metrics"
)

// Deps is everything the router wires into handlers and middleware.
type Deps struct {
	Env      intconfig.Env
	Log      *zap.Logger
	Handler  *h.Handler
	Metrics  *metrics.Collector
	Gatherer prometheus.Gatherer
}

func NewRouter(d Deps) *gin.Engine {
	log := d.Log
	if log == nil {
		log = zap.NewNop()
	}

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(log), gin.Recovery(), middleware.CORS(d.Env.CORSOrigins))
	if d.Metrics != nil {
		r.Use(d.Metrics.Middleware())
	}

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Warn("failed to set trusted proxies", zap.Error(err))
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	if d.Gatherer != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(d.Gatherer, promhttp.HandlerOpts{})))
	}

	hd := d.Handler
	requireAuth := middleware.AuthRequired(hd.Auth)

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)
		api.GET("/routes", h.Routes)
		api.GET("/categories", hd.ListCategories)

		api.POST("/auth/login", hd.Login)

		// Storefront
		products := api.Group("/products")
		products.GET("", hd.ListProducts)
		products.GET("/category/:link", hd.ListCategoryProducts)

		// Admin dashboard
		admin := api.Group("/admin")
		admin.GET("/sellers", hd.ListSellers)
		admin.DELETE("/sellers/:id", hd.DeleteSeller)

		// Seller dashboard; the seller is whoever the token names.
		seller := api.Group("/seller", requireAuth)
		seller.GET("/products/deleted", hd.ListDeletedProducts)
		seller.POST("/products/restore", hd.RestoreProducts)
		seller.POST("/products/:id/restore", hd.RestoreProduct)
		seller.GET("/orders", hd.ListSellerOrders)
		seller.GET("/orders/export", hd.ExportSellerOrders)
	}

	h.SetRouter(r)
	return r
}
