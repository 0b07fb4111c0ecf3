package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/rafaelleal24/catalog/docs"
	"github.com/rafaelleal24/catalog/internal/adapters/config"
	"github.com/rafaelleal24/catalog/internal/adapters/http"
	"github.com/rafaelleal24/catalog/internal/adapters/http/controllers"
	"github.com/rafaelleal24/catalog/internal/adapters/http/middleware"
	"github.com/rafaelleal24/catalog/internal/adapters/outbox"
	"github.com/rafaelleal24/catalog/internal/adapters/rabbitmq"
	"github.com/rafaelleal24/catalog/internal/adapters/redis"
	"github.com/rafaelleal24/catalog/internal/core/logger"
	"github.com/rafaelleal24/catalog/internal/core/service"
)

// @title       Catalog API
// @version     1.0
// @description Product catalog API

// @host     localhost:8080
// @BasePath /

//go:generate swag init -d ../.. -g cmd/http/main.go -o ../../docs --parseInternal

func main() {
	// initialize config and logger
	cfg := config.NewConfig()
	if err := cfg.Validate(); err != nil {
		fmt.Println("invalid configuration: " + err.Error())
		os.Exit(1)
	}
	if err := logger.Initialize(logger.Options{
		ServiceName:       cfg.Logger.ServiceName,
		CollectorEndpoint: cfg.Logger.Endpoint,
		Production:        cfg.Logger.IsProduction,
		Verbose:           cfg.Logger.Verbose,
	}); err != nil {
		// logger not available yet, fall back to stderr
		fmt.Println("failed to initialize logger: " + err.Error())
		os.Exit(1)
	}

	// cancellable context for background goroutines
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// product store selected by STORE_DRIVER
	st, err := openStore(ctx, cfg)
	if err != nil {
		logger.Fatal(ctx, "Failed to open product store", err, map[string]any{"driver": string(cfg.Store.Driver)})
	}
	defer st.close()

	checkers := []controllers.HealthChecker{{Name: string(cfg.Store.Driver), Check: st.ping}}

	// rate limiter, disabled without redis
	var rateLimiter middleware.RateLimiter
	if cfg.Redis.Enabled {
		redisClient, err := redis.NewConnection(cfg.Redis)
		if err != nil {
			logger.Fatal(ctx, "Failed to connect to Redis", err, nil)
		}
		defer redisClient.Close()
		logger.Info(ctx, "Connected to Redis", nil)
		rateLimiter = redis.NewRateLimiter(redisClient)
		checkers = append(checkers, controllers.HealthChecker{Name: "redis", Check: redisClient.Ping})
	}

	// outbox relay to rabbitmq; entries accumulate while it is disabled
	if cfg.RabbitMQ.Enabled {
		broker, err := rabbitmq.NewRabbitMQAdapter(cfg.RabbitMQ)
		if err != nil {
			logger.Fatal(ctx, "Failed to connect to RabbitMQ", err, nil)
		}
		defer broker.Close()
		logger.Info(ctx, "Connected to RabbitMQ", nil)
		checkers = append(checkers, controllers.HealthChecker{Name: "rabbitmq", Check: broker.HealthCheck})

		outboxHandler := outbox.NewHandler(st.outbox, broker, cfg.Outbox)
		go outboxHandler.Start(ctx)
		logger.Info(ctx, "Outbox handler started", map[string]any{"interval": cfg.Outbox.Interval.String(), "batch_size": cfg.Outbox.BatchSize})
	}

	// services and controllers
	productService := service.NewProductService(st.products, st.txManager, outbox.NewRecorder(st.outbox))
	productController := controllers.NewProductController(productService)
	healthController := controllers.NewHealthController(checkers)

	router := http.NewRouter(healthController, productController, rateLimiter, cfg.RateLimit)

	// graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info(ctx, "Received shutdown signal", map[string]any{"signal": sig.String()})
		cancel()
	}()

	logger.Info(ctx, "Starting HTTP server", map[string]any{
		"addr":  cfg.HTTP.BindInterface + ":" + cfg.HTTP.Port,
		"store": string(cfg.Store.Driver),
	})
	if err := router.ListenAndServe(ctx, cfg.HTTP); err != nil {
		logger.Error(ctx, "HTTP server failed", err, nil)
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := logger.Shutdown(shutdownCtx); err != nil {
		fmt.Println("logger shutdown error: " + err.Error())
	}
}
