package storefront

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/murkotick/b2b-catalog-service/internal/config"
	"github.com/murkotick/b2b-catalog-service/internal/pkg/auth"
)

// NewRouter builds the storefront engine. Everything under /api requires a
// client token.
func NewRouter(h *Handler, verifier *auth.Verifier, cfg *config.Config, logger *zap.Logger) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestLogger(logger))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", h.Health)

	api := r.Group("/api", Authenticate(verifier))
	{
		products := api.Group("/products")
		products.GET("", h.ListProducts)
		products.GET("/search", h.SearchProducts)
		products.GET("/:id", h.GetProduct)
		products.GET("/:id/price", h.GetPrice)

		cart := api.Group("/cart")
		cart.GET("", h.GetCart)
		cart.DELETE("", h.ClearCart)
		cart.POST("/items", h.AddItem)
		cart.PATCH("/items/:productId", h.UpdateQuantity)
		cart.DELETE("/items/:productId", h.RemoveItem)
		cart.POST("/toggle", h.ToggleCart)
		cart.POST("/close", h.CloseCart)
	}

	r.NoRoute(func(c *gin.Context) {
		fail(c, 404, "NOT_FOUND", "route not found", false)
	})
	return r
}
