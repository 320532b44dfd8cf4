package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hypernova-labs/ventas-service/internal/api"
	"github.com/hypernova-labs/ventas-service/internal/config"
	"github.com/hypernova-labs/ventas-service/internal/database"
	"github.com/hypernova-labs/ventas-service/internal/models"
	"github.com/hypernova-labs/ventas-service/internal/services"
	"github.com/hypernova-labs/ventas-service/internal/workflows"
	"github.com/sirupsen/logrus"
)

func main() {
	// Cargar configuración
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	logger := setupLogger(cfg)
	logger.Info("Starting ventas service...")

	if cfg.IsDevelopment() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Conectar a la base de datos
	db, err := database.Connect(cfg)
	if err != nil {
		logger.Fatalf("Error connecting to database: %v", err)
	}
	defer db.Close()
	db.LogStats(logger)

	// El esquema se crea antes de aceptar conexiones; un fallo no es fatal
	initCtx, cancelInit := context.WithTimeout(context.Background(), 30*time.Second)
	if err := db.InitSchema(initCtx); err != nil {
		logger.WithError(err).Error("Error initializing database schema")
	} else {
		logger.Info("Database schema initialized")
	}
	cancelInit()

	// Redis es opcional: sin él no hay rate limiting
	var counter api.WindowCounter
	if cfg.Redis.URL != "" {
		redis, err := database.ConnectRedis(cfg)
		if err != nil {
			logger.Warnf("Error connecting to Redis: %v", err)
		} else {
			defer redis.Close()
			counter = redis
			logger.Info("Rate limiting enabled")
		}
	} else {
		logger.Warn("REDIS_URL not provided, rate limiting disabled")
	}

	// Inngest es opcional: sin él no se publican eventos
	var publisher services.EventPublisher
	if cfg.InngestEnabled() {
		inngestClient, err := workflows.NewInngestClient(cfg, logger)
		if err != nil {
			logger.Warnf("Error initializing Inngest client: %v", err)
		} else {
			publisher = inngestClient
		}
	} else {
		logger.Warn("Inngest credentials not provided, events will not be published")
	}

	clienteRepo := database.NewPersonaRepository(db, models.Clientes, logger)
	vendedorRepo := database.NewPersonaRepository(db, models.Vendedores, logger)
	ventaRepo := database.NewVentaRepository(db, logger)

	apiHandler := api.NewAPI(
		services.NewPersonaService(clienteRepo, models.Clientes, publisher, logger),
		services.NewPersonaService(vendedorRepo, models.Vendedores, publisher, logger),
		services.NewVentaService(ventaRepo, clienteRepo, vendedorRepo, publisher, logger),
		db,
		logger,
	)

	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      api.NewRouter(apiHandler, cfg, counter, logger),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		logger.Infof("Server starting on %s", cfg.Addr())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("Error starting server: %v", err)
		}
	}()

	<-quit
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Errorf("Server forced to shutdown: %v", err)
	}

	logger.Info("Server exited")
}

// setupLogger configura el logger según la configuración
func setupLogger(cfg *config.Config) *logrus.Logger {
	logger := logrus.New()

	level, err := logrus.ParseLevel(cfg.Logging.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	if cfg.Logging.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return logger
}
