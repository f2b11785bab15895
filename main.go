package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"marketplace/internal/catalog"
	intconfig "marketplace/internal/config"
	router "marketplace/internal/http"
	"marketplace/internal/http/handlers"
	"marketplace/internal/metrics"
	"marketplace/internal/repositories"
	"marketplace/internal/services"
	"marketplace/internal/utils"
)

func main() {
	env := intconfig.LoadEnv()
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	log, err := utils.NewLogger(env.AppEnv, env.LogLevel)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()
	utils.SetLogger(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := intconfig.ConnectDB(ctx, env, log)
	if err != nil {
		log.Fatal("database connection failed", zap.Error(err))
	}
	defer intconfig.CloseDB()

	cat, err := loadCatalog(env.CatalogPath)
	if err != nil {
		log.Fatal("category catalog invalid", zap.String("path", env.CatalogPath), zap.Error(err))
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	products := repositories.ProductRepository{DB: db}
	r := router.NewRouter(router.Deps{
		Env:      env,
		Log:      log,
		Metrics:  m,
		Gatherer: reg,
		Handler: &handlers.Handler{
			Listing: services.ListingService{
				ProductRepo: products,
				Restorer:    products,
				SellerRepo:  repositories.SellerRepository{DB: db},
				OrderRepo:   repositories.OrderRepository{DB: db},
				Catalog:     cat,
				Metrics:     m,
			},
			Auth: services.AuthService{
				Accounts: repositories.AccountRepository{DB: db},
				Secret:   []byte(env.JWTSecret),
			},
			Catalog: cat,
		},
	})

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Info("server listening", zap.String("addr", env.AppAddr), zap.String("env", env.AppEnv))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown failed", zap.Error(err))
		return
	}
	log.Info("server stopped")
}

func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Default()
	}
	return catalog.Load(path)
}
