package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/intercityline/booking-backend/internal/config"
	"github.com/intercityline/booking-backend/internal/database"
	"github.com/intercityline/booking-backend/internal/handlers"
	"github.com/intercityline/booking-backend/internal/middleware"
	"github.com/intercityline/booking-backend/internal/services"
	"github.com/intercityline/booking-backend/pkg/validator"
)

var (
	version   = "1.0.0"
	buildTime = "unknown"
)

func main() {
	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)

	logger.Info("Starting Intercity Line Booking Backend")
	logger.Infof("Version: %s, Build Time: %s", version, buildTime)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load configuration: %v", err)
	}

	// Set log level
	logLevel, err := logrus.ParseLevel(cfg.Server.LogLevel)
	if err != nil {
		logger.Warn("Invalid log level, using INFO")
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	// Set Gin mode
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	// Initialize database connection
	logger.Info("Connecting to database...")
	db, err := database.NewConnection(cfg.Database)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()
	logger.Info("Database connection established")

	// Optional Redis response cache for search and lookup endpoints
	rdb := database.NewRedisClient(cfg.Redis)
	if rdb != nil {
		logger.Info("Redis response cache enabled")
		defer rdb.Close()
	} else {
		logger.Info("Redis response cache disabled")
	}

	// Initialize repositories
	stopRepo := database.NewStopRepository(db)
	routeRepo := database.NewRouteRepository(db)
	pricelistRepo := database.NewPricelistRepository(db)
	departureRepo := database.NewDepartureRepository(db)
	seatRepo := database.NewSeatRepository(db)
	availabilityRepo := database.NewAvailabilityRepository(db)
	ticketRepo := database.NewTicketRepository(db)
	passengerRepo := database.NewPassengerRepository(db)
	searchRepo := database.NewSearchRepository(db)
	reportRepo := database.NewReportRepository(db)

	// Initialize services
	phoneValidator := validator.NewPhoneValidator()
	departureService := services.NewDepartureService(
		db, departureRepo, routeRepo, pricelistRepo,
		seatRepo, availabilityRepo, ticketRepo, logger,
	)
	bookingService := services.NewBookingService(
		db, departureRepo, routeRepo, seatRepo,
		availabilityRepo, ticketRepo, passengerRepo, phoneValidator, logger,
	)
	logger.Info("Services initialized")

	// Initialize handlers
	stopHandler := handlers.NewStopHandler(stopRepo, logger)
	routeHandler := handlers.NewRouteHandler(routeRepo, logger)
	pricelistHandler := handlers.NewPricelistHandler(pricelistRepo, logger)
	passengerHandler := handlers.NewPassengerHandler(passengerRepo, logger)
	departureHandler := handlers.NewDepartureHandler(
		departureService, bookingService, departureRepo, availabilityRepo, logger)
	bookingHandler := handlers.NewBookingHandler(bookingService, ticketRepo, logger)
	searchHandler := handlers.NewSearchHandler(searchRepo, logger)
	reportHandler := handlers.NewReportHandler(reportRepo, logger)

	// Initialize Gin router
	router := gin.New()

	// Middleware
	router.Use(gin.Recovery())
	router.Use(requestLogger(logger))

	// CORS configuration
	corsConfig := cors.Config{
		AllowOrigins:     cfg.CORS.AllowedOrigins,
		AllowMethods:     cfg.CORS.AllowedMethods,
		AllowHeaders:     cfg.CORS.AllowedHeaders,
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	router.Use(cors.New(corsConfig))

	// Health check endpoint
	router.GET("/health", healthCheckHandler(db))

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Stops
		stops := v1.Group("/stops")
		{
			stops.GET("", stopHandler.List)
			stops.GET("/:id", stopHandler.Get)
			stops.POST("", stopHandler.Create)
			stops.PUT("/:id", stopHandler.Update)
			stops.DELETE("/:id", stopHandler.Delete)
		}

		// Routes and their ordered stop lists
		routes := v1.Group("/routes")
		{
			routes.GET("", routeHandler.List)
			routes.GET("/:id", routeHandler.Get)
			routes.POST("", routeHandler.Create)
			routes.DELETE("/:id", routeHandler.Delete)
			routes.POST("/:id/stops", routeHandler.AddStop)
			routes.PUT("/:id/stops/:stopId", routeHandler.UpdateStop)
			routes.DELETE("/:id/stops/:stopId", routeHandler.DeleteStop)
		}

		// Price lists and prices
		pricelists := v1.Group("/pricelists")
		{
			pricelists.GET("", pricelistHandler.List)
			pricelists.GET("/:id", pricelistHandler.Get)
			pricelists.POST("", pricelistHandler.Create)
			pricelists.DELETE("/:id", pricelistHandler.Delete)
			pricelists.GET("/:id/prices", pricelistHandler.ListPrices)
		}
		prices := v1.Group("/prices")
		{
			prices.POST("", pricelistHandler.CreatePrice)
			prices.PUT("/:id", pricelistHandler.UpdatePrice)
			prices.DELETE("/:id", pricelistHandler.DeletePrice)
		}

		// Passengers
		passengers := v1.Group("/passengers")
		{
			passengers.GET("", passengerHandler.List)
			passengers.GET("/:id", passengerHandler.Get)
			passengers.POST("", passengerHandler.Create)
		}

		// Departures: lifecycle, seat layout, availability and ticket sales
		departures := v1.Group("/departures")
		{
			departures.GET("", departureHandler.List)
			departures.GET("/:id", departureHandler.Get)
			departures.POST("", departureHandler.Create)
			departures.PUT("/:id", departureHandler.Update)
			departures.DELETE("/:id", departureHandler.Delete)
			departures.GET("/:id/seats", departureHandler.SeatLayout)
			departures.GET("/:id/availability", departureHandler.Availability)
			departures.POST("/:id/tickets", bookingHandler.Book)
			departures.GET("/:id/tickets", bookingHandler.ListByDeparture)
		}

		// Tickets
		v1.GET("/tickets/:id", bookingHandler.Get)

		// Public trip search, served from the availability aggregates.
		// Short-TTL cached: bookings change the answers, but staleness here
		// only costs an extra conflict on checkout.
		search := v1.Group("/search")
		search.Use(middleware.ResponseCache(rdb, cfg.Redis.TTL))
		{
			search.GET("/departure-stops", searchHandler.DepartureStops)
			search.GET("/arrival-stops", searchHandler.ArrivalStops)
			search.GET("/dates", searchHandler.Dates)
		}

		// Sales report
		v1.GET("/reports/sales", reportHandler.Build)
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Infof("Server starting on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Errorf("Server forced to shutdown: %v", err)
	}

	logger.Info("Server exited successfully")
}

// requestLogger middleware for logging HTTP requests
func requestLogger(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)

		entry := logger.WithFields(logrus.Fields{
			"status":     c.Writer.Status(),
			"method":     c.Request.Method,
			"path":       path,
			"query":      query,
			"ip":         c.ClientIP(),
			"latency_ms": latency.Milliseconds(),
			"user_agent": c.Request.UserAgent(),
		})

		status := c.Writer.Status()
		switch {
		case status >= 500:
			entry.Error("Request completed with server error")
		case status >= 400:
			entry.Warn("Request completed with client error")
		default:
			entry.Info("Request completed successfully")
		}
	}
}

// healthCheckHandler returns a health check endpoint
func healthCheckHandler(db interface{ Ping() error }) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"database": "unhealthy",
				"error":    err.Error(),
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"database":  "healthy",
			"version":   version,
			"timestamp": time.Now().Unix(),
		})
	}
}
