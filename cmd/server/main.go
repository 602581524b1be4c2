package main

import (
	"context"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/CesarJOtizM/didactic-succotash/internal/catalog"
	"github.com/CesarJOtizM/didactic-succotash/internal/config"
	"github.com/CesarJOtizM/didactic-succotash/internal/database"
	"github.com/CesarJOtizM/didactic-succotash/internal/handler"
	"github.com/CesarJOtizM/didactic-succotash/internal/middleware"
	"github.com/CesarJOtizM/didactic-succotash/internal/repository"
	"github.com/CesarJOtizM/didactic-succotash/internal/routing"
	"github.com/CesarJOtizM/didactic-succotash/internal/service"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Caller().Logger()

	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	var repo repository.OrderRepository
	var healthHandler *handler.HealthHandler

	switch cfg.Store {
	case "memory":
		log.Info().Msg("using in-memory order store")
		repo = repository.NewMemoryOrderRepository()
		healthHandler = handler.NewHealthHandler(nil)
	default:
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		pool, err := database.NewPool(ctx, cfg.DatabaseURL())
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to database")
		}
		defer pool.Close()

		if cfg.AutoMigrate {
			if err := database.RunMigrations(cfg.DatabaseURL()); err != nil {
				log.Fatal().Err(err).Msg("failed to run migrations")
			}
		}

		repo = repository.NewPostgresOrderRepository(pool)
		healthHandler = handler.NewHealthHandler(pool)
	}

	reliability := routing.DefaultTable()
	if cfg.ReliabilityFile != "" {
		table, err := routing.LoadTable(cfg.ReliabilityFile)
		if err != nil {
			log.Fatal().Err(err).Str("file", cfg.ReliabilityFile).Msg("failed to load reliability table")
		}
		reliability = table
		log.Info().Str("file", cfg.ReliabilityFile).Msg("reliability overrides loaded")
	}

	cat := catalog.Default()
	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
	gateway := routing.NewSimulatedGateway(reliability, rnd, nil)
	router := routing.NewRouter(gateway, reliability)

	orderService := service.NewOrderService(repo, cat, router)
	methodService := service.NewMethodService(cat)
	statsService := service.NewStatsService(repo, cat, reliability)

	engine := gin.New()
	engine.Use(middleware.Logger())
	engine.Use(middleware.ErrorHandler())
	engine.Use(gin.Recovery())

	orderHandler := handler.NewOrderHandler(orderService)
	methodHandler := handler.NewMethodHandler(methodService)
	statsHandler := handler.NewStatsHandler(statsService)

	api := engine.Group("/api")
	{
		api.GET("/health", healthHandler.Health)
		api.POST("/payment_order", orderHandler.Create)
		api.GET("/payment_order", orderHandler.List)
		api.GET("/payment_order/:uuid", orderHandler.Get)
		api.POST("/payment_order/:uuid/process", orderHandler.Process)
		api.GET("/payment_methods/:country", methodHandler.ListByCountry)
		api.GET("/stats/orders", statsHandler.Overview)
	}
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      engine,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited")
}
