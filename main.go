// @title Modeva Storefront API
// @version 1.0
// @description Catalog browser and cart over the fake store catalog.
// @host localhost:8081
// @BasePath /
// @schemes http
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Modeva-Ecommerce/modeva-storefront/cache"
	"github.com/Modeva-Ecommerce/modeva-storefront/cart"
	"github.com/Modeva-Ecommerce/modeva-storefront/config"
	"github.com/Modeva-Ecommerce/modeva-storefront/middleware"
	"github.com/Modeva-Ecommerce/modeva-storefront/routes"
	"github.com/Modeva-Ecommerce/modeva-storefront/services"
	"github.com/Modeva-Ecommerce/modeva-storefront/views"
)

func main() {
	cfg, err := config.LoadAppConfig()
	if err != nil {
		log.Fatalf("❌ Invalid configuration: %v", err)
	}

	logger, err := config.NewLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("❌ Failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Redis is optional: it backs the cart when CART_BACKEND=redis and shares rate limits when set
	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		redisClient, err = config.ConnectRedis(ctx, cfg.RedisURL)
		if err != nil {
			if cfg.CartBackend == config.CartBackendRedis {
				log.Fatalf("❌ %v", err)
			}
			logger.Warn("⚠️ Redis unavailable, using in-memory rate limiting", zap.Error(err))
			redisClient = nil
		} else {
			defer redisClient.Close()
		}
	}

	renderer, err := views.NewRenderer()
	if err != nil {
		log.Fatalf("❌ Failed to parse templates: %v", err)
	}

	tokens := cache.NewDetailTokens(cache.DefaultTokenTTL)
	deps := routes.Deps{
		Config:   cfg,
		Catalog:  services.NewCatalogClient(cfg.UpstreamBaseURL, cfg.UpstreamTimeout, logger),
		Renderer: renderer,
		Tokens:   tokens,
		Logger:   logger,
	}

	sweepers := []cache.Sweeper{tokens}
	if redisClient != nil {
		deps.RateStore = middleware.NewRedisRateStore(redisClient)
		deps.Redis = redisClient
		log.Println("✅ Rate limiting backed by Redis")
	} else {
		memory := middleware.NewMemoryRateStore(cache.NewWindowCounter())
		deps.RateStore = memory
		sweepers = append(sweepers, memory.Counter())
		log.Println("✅ Rate limiting in memory")
	}
	go cache.RunJanitor(ctx, time.Minute, sweepers...)
	if cfg.CartBackend == cart.BackendRedis {
		log.Println("✅ Cart stored in Redis")
	} else {
		log.Println("✅ Cart stored in browser cookie")
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           routes.NewRouter(deps),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		fmt.Printf("🚀 Server is running on http://localhost:%s\n", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("❌ Server failed: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("🛑 Shutting down")

	shutdownCtx, cancel := config.WithTimeout()
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("❌ Graceful shutdown failed", zap.Error(err))
	}
}
