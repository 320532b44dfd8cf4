package api

import (
	"github.com/gin-gonic/gin"
	"github.com/hypernova-labs/ventas-service/internal/config"
	"github.com/sirupsen/logrus"
)

// NewRouter configura el router principal. counter puede ser nil para
// desactivar el rate limiting.
func NewRouter(apiHandler *API, cfg *config.Config, counter WindowCounter, logger logrus.FieldLogger) *gin.Engine {
	router := gin.New()

	// Middleware global
	router.Use(gin.Recovery())
	router.Use(RequestLoggerMiddleware(logger))
	router.Use(CORSMiddleware(cfg.CORS.AllowedOrigins))
	router.Use(RateLimitMiddleware(counter, cfg.RateLimitPerMinute(), logger))
	router.Use(JSONFieldsMiddleware())

	router.GET("/health", apiHandler.Health)

	api := router.Group("/api")
	{
		apiHandler.clientes.Register(api)
		apiHandler.vendedores.Register(api)

		api.GET("/ventas", apiHandler.ListVentas)
		api.GET("/ventas/:id", apiHandler.GetVenta)
		api.POST("/ventas", apiHandler.CreateVenta)
		api.PUT("/ventas/:id", apiHandler.UpdateVenta)
		api.DELETE("/ventas/:id", apiHandler.DeleteVenta)
	}

	return router
}
