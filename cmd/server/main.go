package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"roster-service/internal/infrastructure/config"
	"roster-service/internal/infrastructure/persistence"
	"roster-service/internal/interface/handler"
	"roster-service/internal/interface/repository"
	"roster-service/internal/usecase"
	"roster-service/pkg/logger"
	"roster-service/pkg/metrics"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// Create logger
	log := logger.NewLogger()
	log.Info("Starting Roster Service")

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config", "error", err)
	}

	// Set up context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Set up MongoDB connection
	log.Info("Connecting to MongoDB")
	mongoClient, mongoDB, err := persistence.NewMongoClient(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB", "error", err)
	}

	// Set up relational connection
	log.Info("Connecting to relational store", "driver", cfg.DBDriver)
	gormDB, err := persistence.NewGormDB(cfg.DBDriver, cfg.PostgresDSN, cfg.SQLitePath)
	if err != nil {
		log.Fatal("Failed to connect to relational store", "error", err)
	}

	// Set up storage repositories
	sqlRosterRepo, err := repository.NewGormRosterRepository(gormDB, log)
	if err != nil {
		log.Fatal("Failed to prepare roster table", "error", err)
	}
	mongoRosterRepo := repository.NewMongoRosterRepository(mongoDB)

	// Set up upstream service clients
	flightRepo := repository.NewHTTPFlightRepository(
		cfg.FlightAPIBase, cfg.FlightAPIFallback,
		cfg.UpstreamUser, cfg.UpstreamPassword, cfg.UpstreamTimeout, log)
	pilotRepo := repository.NewHTTPPilotRepository(
		cfg.PilotAPIBase, cfg.UpstreamUser, cfg.UpstreamPassword, cfg.UpstreamTimeout)
	crewRepo := repository.NewHTTPCrewRepository(
		cfg.CrewAPIBase, cfg.UpstreamUser, cfg.UpstreamPassword, cfg.UpstreamTimeout)
	passengerRepo := repository.NewHTTPPassengerRepository(
		cfg.PassengerAPIBase, cfg.UpstreamUser, cfg.UpstreamPassword, cfg.UpstreamTimeout)

	// Set up usecases
	m := metrics.NewMetrics("roster")
	allocator := usecase.NewSeatAllocator(log)
	generator := usecase.NewRosterGenerator(
		sqlRosterRepo, mongoRosterRepo,
		flightRepo, pilotRepo, crewRepo, passengerRepo,
		allocator, m, log)
	saver := usecase.NewRosterSaver(sqlRosterRepo, mongoRosterRepo, m, log)
	catalog := usecase.NewFlightCatalog(flightRepo, sqlRosterRepo, log)

	// Set up HTTP server
	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"*"},
	}))

	rosterHandler := handler.NewRosterHandler(generator, saver, catalog, pilotRepo, crewRepo, log)
	rosterHandler.RegisterRoutes(r, cfg.AdminAccounts, cfg.ReaderAccounts)

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "Healthy")
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	// Start HTTP server in a goroutine
	go func() {
		log.Info("Starting HTTP server", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", "error", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	log.Info("Received signal", "signal", sig)

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", "error", err)
	}

	cancel()

	// Disconnect from MongoDB
	if err := mongoClient.Disconnect(context.Background()); err != nil {
		log.Error("MongoDB disconnect error", "error", err)
	}

	log.Info("Roster Service stopped")
}
