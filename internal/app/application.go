package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"weathernow.app/internal/adapters/api"
	"weathernow.app/internal/adapters/infrastructure"
	"weathernow.app/internal/config"
	"weathernow.app/internal/core/dashboard"
	"weathernow.app/internal/core/weather"
	"weathernow.app/internal/ports"
)

type Application struct {
	config *config.Config

	// Use Cases
	weatherUseCase *weather.UseCase
	session        *dashboard.Session

	// Adapters
	httpServer *http.Server
	router     *gin.Engine

	// Infrastructure
	deps  *DependencyContainer
	ports *ports.ApplicationPorts
}

func NewApplication() (*Application, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	deps, err := NewDependencyContainer(cfg)
	if err != nil {
		return nil, fmt.Errorf("create dependency container: %w", err)
	}

	app, err := NewApplicationWithDependencies(cfg, deps)
	if err != nil {
		if cerr := deps.Cleanup(); cerr != nil {
			slog.Warn("Error releasing dependencies", "error", cerr)
		}
		return nil, err
	}
	return app, nil
}

// NewApplicationWithDependencies creates an application with provided dependencies (for testing)
func NewApplicationWithDependencies(cfg *config.Config, depContainer *DependencyContainer) (*Application, error) {
	app := &Application{
		config: cfg,
		deps:   depContainer,
		ports:  depContainer.ApplicationPorts(),
	}

	if err := app.initializeUseCases(); err != nil {
		return nil, fmt.Errorf("initialize use cases: %w", err)
	}

	if err := app.initializeAdapters(); err != nil {
		return nil, fmt.Errorf("initialize adapters: %w", err)
	}

	return app, nil
}

func (a *Application) initializeUseCases() error {
	slog.Info("Initializing use cases...")

	weatherUseCase, err := weather.NewUseCase(weather.UseCaseDependencies{
		Geocoder:   a.ports.GeocodingProvider,
		Forecaster: a.ports.ForecastProvider,
		Logger:     a.ports.Logger,
	})
	if err != nil {
		return fmt.Errorf("create weather use case: %w", err)
	}
	a.weatherUseCase = weatherUseCase

	dashCfg := a.ports.ConfigProvider.GetDashboardConfig()
	units, err := weather.ParseMeasurementSystem(dashCfg.DefaultUnits)
	if err != nil {
		return fmt.Errorf("default units: %w", err)
	}

	loc := dashCfg.DefaultLocation
	defaultLocation := weather.LocationMatch{
		ID:        loc.ID,
		Name:      loc.Name,
		Country:   loc.Country,
		Admin1:    loc.Admin1,
		Latitude:  loc.Latitude,
		Longitude: loc.Longitude,
		Timezone:  loc.Timezone,
	}
	if defaultLocation.ID == "" {
		defaultLocation.ID = weather.CoordinateID(loc.Latitude, loc.Longitude)
	}

	session, err := dashboard.NewSession(dashboard.SessionDependencies{
		Weather:         weatherUseCase,
		Logger:          a.ports.Logger,
		DefaultLocation: defaultLocation,
		DefaultUnits:    units,
	})
	if err != nil {
		return fmt.Errorf("create dashboard session: %w", err)
	}
	a.session = session

	slog.Info("Use cases initialized successfully")
	return nil
}

func (a *Application) initializeAdapters() error {
	slog.Info("Initializing adapters...")

	if err := api.RegisterValidators(); err != nil {
		slog.Warn("Failed to register request validators", "error", err)
	}

	metricsCollector := infrastructure.NewMetricsCollectorAdapter(infrastructure.MetricsCollectorConfig{
		UpstreamMetrics: a.ports.UpstreamMetrics,
		CacheMetrics:    a.ports.CacheMetrics,
		CacheConfig:     a.ports.ConfigProvider.GetCacheConfig(),
	})

	httpAdapter, err := api.NewHTTPServerAdapter(api.ServerOptions{
		Config: api.ServerConfig{
			Port: a.config.Server.Port,
		},
		WeatherUseCase:   a.weatherUseCase,
		Session:          a.session,
		MetricsCollector: metricsCollector,
		HealthChecker:    a.deps.HealthChecker(),
		Logger:           a.ports.Logger,
	})
	if err != nil {
		return fmt.Errorf("create HTTP adapter: %w", err)
	}

	a.router = httpAdapter.GetRouter()
	a.httpServer = httpAdapter.NewHTTPServer()

	slog.Info("Adapters initialized successfully")
	return nil
}

// Start loads the default location in the background and serves HTTP
// until the server is shut down
func (a *Application) Start(ctx context.Context) error {
	slog.Info("Starting application...")

	go a.loadInitialForecast(ctx)

	slog.Info("Starting HTTP server", "port", a.config.Server.Port)
	if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("HTTP server error: %w", err)
	}

	return nil
}

func (a *Application) loadInitialForecast(ctx context.Context) {
	snap := a.session.Refresh(ctx)
	if snap.ForecastStatus == dashboard.ForecastError {
		slog.Warn("Initial forecast failed",
			"location", snap.Location.Name,
			"error", snap.ForecastError)
		return
	}
	slog.Info("Initial forecast loaded", "location", snap.Location.Name)
}

func (a *Application) Shutdown(ctx context.Context) error {
	slog.Info("Shutting down application...")

	if err := a.httpServer.Shutdown(ctx); err != nil {
		slog.Error("Error shutting down HTTP server", "error", err)
		return fmt.Errorf("shutdown HTTP server: %w", err)
	}

	if a.deps != nil {
		if err := a.deps.Cleanup(); err != nil {
			slog.Warn("Error releasing dependencies", "error", err)
		}
	}

	slog.Info("Application shutdown complete")
	return nil
}

// Config returns the application configuration
func (a *Application) Config() *config.Config {
	return a.config
}

// GetRouter returns the Gin router for testing
func (a *Application) GetRouter() *gin.Engine {
	return a.router
}

// GetWeatherUseCase returns the weather use case for testing
func (a *Application) GetWeatherUseCase() *weather.UseCase {
	return a.weatherUseCase
}

// GetSession returns the dashboard session for testing
func (a *Application) GetSession() *dashboard.Session {
	return a.session
}
