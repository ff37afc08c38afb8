package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/yassirrachad97/DepotSmart/internal/server/handlers"
)

const requestIDHeader = "X-Request-ID"

// Handlers groups the HTTP adapters mounted on the engine.
type Handlers struct {
	Catalog    *handlers.CatalogHandler
	Auth       *handlers.AuthHandler
	Statistics *handlers.StatisticsHandler
}

// New wires the Gin engine with required routes and middlewares.
func New(h Handlers, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestIDMiddleware())
	r.Use(zapLoggerMiddleware(logger))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	r.POST("/auth/login", h.Auth.Login)
	r.GET("/warehousemans/:id", h.Auth.Profile)

	products := r.Group("/products")
	products.GET("", h.Catalog.ListProducts)
	products.POST("", h.Catalog.CreateProduct)
	products.POST("/scan", h.Catalog.CreateScannedProduct)
	products.GET("/barcode/:barcode", h.Catalog.LookupBarcode)
	products.GET("/:id", h.Catalog.GetProduct)
	products.DELETE("/:id", h.Catalog.DeleteProduct)
	products.PATCH("/:id/stocks/:stockId", h.Catalog.UpdateStockQuantity)

	r.GET("/warehouses", h.Catalog.Warehouses)

	r.GET("/statistics", h.Statistics.Current)
	r.GET("/statistics/history", h.Statistics.History)

	if logger != nil {
		logger.Info("router initialized")
	}

	return r
}

// requestIDMiddleware keeps a caller-supplied request id or mints one.
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("request completed",
			zap.String("request_id", c.GetString("request_id")),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("client_ip", c.ClientIP()))
	}
}
