package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rafaelleal24/catalog/internal/adapters/config"
	"github.com/rafaelleal24/catalog/internal/adapters/http/controllers"
	"github.com/rafaelleal24/catalog/internal/adapters/http/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	healthController  *controllers.HealthController
	productController *controllers.ProductController
	rateLimiter       middleware.RateLimiter
	rateLimit         config.RateLimitConfig
}

// NewRouter wires the controllers. rateLimiter may be nil, which disables write limits.
func NewRouter(
	healthController *controllers.HealthController,
	productController *controllers.ProductController,
	rateLimiter middleware.RateLimiter,
	rateLimit config.RateLimitConfig,
) *Router {
	return &Router{
		healthController:  healthController,
		productController: productController,
		rateLimiter:       rateLimiter,
		rateLimit:         rateLimit,
	}
}

func (r *Router) SetupRoutes(router *gin.Engine) {
	writeLimit := middleware.RateLimit(r.rateLimiter, r.rateLimit.Limit, r.rateLimit.Window)

	router.GET("/swagger/*any", gin.WrapH(httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json"))))

	group := router.Group("/")
	{
		group.Use(middleware.LogRequest())
		group.GET("/health", r.healthController.Health)

		products := group.Group("/products")
		products.POST("", writeLimit, r.productController.CreateProduct)
		products.GET("", r.productController.GetAll)
		products.GET("/by-price", r.productController.GetByPrice)
		products.GET("/:id", r.productController.GetProductByID)
		products.PUT("/:id", writeLimit, r.productController.UpdateProduct)
		products.DELETE("/:id", writeLimit, r.productController.DeleteProduct)
	}
}

// Handler returns a gin engine with every route registered.
func (r *Router) Handler() http.Handler {
	engine := gin.New()
	engine.Use(gin.Recovery())
	r.SetupRoutes(engine)
	return engine
}

func (r *Router) ListenAndServe(ctx context.Context, config config.HTTPConfig) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", config.BindInterface, config.Port),
		Handler:           r.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
