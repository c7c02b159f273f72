// Package api provides HTTP adapters for the hexagonal architecture
// These adapters handle incoming HTTP requests and translate them to use cases
package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"weathernow.app/internal/core/dashboard"
	"weathernow.app/internal/core/weather"
	"weathernow.app/internal/ports"
	"weathernow.app/pkg/errors"
)

// ServerConfig represents HTTP server configuration
type ServerConfig struct {
	Port int
}

// HTTPServerAdapter implements HTTP server using Gin framework
type HTTPServerAdapter struct {
	router           *gin.Engine
	config           ServerConfig
	weatherUseCase   WeatherUseCase
	session          DashboardSession
	metricsCollector MetricsCollector
	healthChecker    ports.SystemHealthChecker
	logger           ports.Logger
}

// Use case interfaces that the HTTP adapter depends on
type WeatherUseCase interface {
	Geocode(ctx context.Context, query string) ([]weather.LocationMatch, error)
	FetchForecast(ctx context.Context, location weather.LocationMatch, system weather.MeasurementSystem) (*weather.WeatherData, error)
}

type DashboardSession interface {
	Snapshot() dashboard.Snapshot
	Search(ctx context.Context, query string) dashboard.Snapshot
	SelectLocation(ctx context.Context, loc weather.LocationMatch) (dashboard.Snapshot, error)
	SetUnits(ctx context.Context, system weather.MeasurementSystem) (dashboard.Snapshot, error)
	Refresh(ctx context.Context) dashboard.Snapshot
	SelectDay(day string) (dashboard.Snapshot, error)
}

type MetricsCollector interface {
	GetMetrics(ctx context.Context) (map[string]interface{}, error)
}

// ServerOptions represents options for creating the HTTP server
type ServerOptions struct {
	Config           ServerConfig
	WeatherUseCase   WeatherUseCase
	Session          DashboardSession
	MetricsCollector MetricsCollector
	HealthChecker    ports.SystemHealthChecker
	Logger           ports.Logger
}

// NewHTTPServerAdapter creates a new HTTP server adapter
func NewHTTPServerAdapter(opts ServerOptions) (*HTTPServerAdapter, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid server options: %w", err)
	}

	router := gin.New()

	server := &HTTPServerAdapter{
		router:           router,
		config:           opts.Config,
		weatherUseCase:   opts.WeatherUseCase,
		session:          opts.Session,
		metricsCollector: opts.MetricsCollector,
		healthChecker:    opts.HealthChecker,
		logger:           opts.Logger,
	}

	router.Use(gin.Recovery(), requestIDMiddleware(), requestLogMiddleware(opts.Logger))
	server.setupRoutes()
	return server, nil
}

// Validate checks if all required dependencies are provided
func (opts *ServerOptions) Validate() error {
	if opts.WeatherUseCase == nil {
		return errors.NewValidationError("weather use case is required")
	}
	if opts.Session == nil {
		return errors.NewValidationError("dashboard session is required")
	}
	if opts.MetricsCollector == nil {
		return errors.NewValidationError("metrics collector is required")
	}
	if opts.HealthChecker == nil {
		return errors.NewValidationError("health checker is required")
	}
	if opts.Logger == nil {
		return errors.NewValidationError("logger is required")
	}
	return nil
}

// setupRoutes configures all HTTP routes
func (s *HTTPServerAdapter) setupRoutes() {
	api := s.router.Group("/api")
	{
		api.GET("/geocode", s.geocode)
		api.GET("/forecast", s.getForecast)
		api.GET("/health", s.getHealth)
		api.GET("/metrics", s.getMetrics)

		board := api.Group("/dashboard")
		board.GET("", s.getDashboard)
		board.POST("/search", s.search)
		board.POST("/location", s.selectLocation)
		board.PUT("/units", s.setUnits)
		board.PUT("/day", s.selectDay)
		board.POST("/refresh", s.refresh)
	}

	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// NewHTTPServer wraps the router in an http.Server with the application's timeouts
func (s *HTTPServerAdapter) NewHTTPServer() *http.Server {
	return &http.Server{
		Addr:         fmt.Sprintf(":%d", s.config.Port),
		Handler:      s.router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

// GetRouter returns the router for testing purposes
func (s *HTTPServerAdapter) GetRouter() *gin.Engine {
	return s.router
}
