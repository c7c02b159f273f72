package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"weathernow.app/internal/core/weather"
	"weathernow.app/internal/ports"
)

// GeocodeQuery is the query string of GET /api/geocode
type GeocodeQuery struct {
	Name string `form:"name" binding:"required"`
}

// ForecastQuery is the query string of GET /api/forecast
type ForecastQuery struct {
	Latitude  *float64 `form:"latitude" binding:"required,min=-90,max=90"`
	Longitude *float64 `form:"longitude" binding:"required,min=-180,max=180"`
	Name      string   `form:"name"`
	ID        string   `form:"id"`
	Country   string   `form:"country"`
	Admin1    string   `form:"admin1"`
	Timezone  string   `form:"timezone"`
	Units     string   `form:"units" binding:"omitempty,units"`
}

// geocode handles GET /api/geocode requests
func (s *HTTPServerAdapter) geocode(c *gin.Context) {
	var query GeocodeQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		s.handleError(c, bindingError(err))
		return
	}

	matches, err := s.weatherUseCase.Geocode(c.Request.Context(), query.Name)
	if err != nil {
		s.logger.Warn("Geocode request failed",
			ports.F("query", query.Name),
			ports.F("error", err))
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, matches)
}

// getForecast handles GET /api/forecast requests. Units default to metric.
func (s *HTTPServerAdapter) getForecast(c *gin.Context) {
	var query ForecastQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		s.handleError(c, bindingError(err))
		return
	}

	units := weather.Metric
	if query.Units != "" {
		units = weather.MeasurementSystem(query.Units)
	}

	location := weather.LocationMatch{
		ID:        query.ID,
		Name:      query.Name,
		Country:   query.Country,
		Admin1:    query.Admin1,
		Latitude:  *query.Latitude,
		Longitude: *query.Longitude,
		Timezone:  query.Timezone,
	}
	if location.ID == "" {
		location.ID = weather.CoordinateID(location.Latitude, location.Longitude)
	}

	data, err := s.weatherUseCase.FetchForecast(c.Request.Context(), location, units)
	if err != nil {
		s.logger.Warn("Forecast request failed",
			ports.F("latitude", location.Latitude),
			ports.F("longitude", location.Longitude),
			ports.F("error", err))
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, data)
}

// getHealth handles GET /api/health requests
func (s *HTTPServerAdapter) getHealth(c *gin.Context) {
	results := s.healthChecker.CheckAll(c.Request.Context())

	status := http.StatusOK
	for _, r := range results {
		if r.Status == "unhealthy" {
			status = http.StatusServiceUnavailable
			break
		}
	}
	c.JSON(status, results)
}
