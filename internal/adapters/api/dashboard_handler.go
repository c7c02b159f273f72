package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"weathernow.app/internal/core/weather"
)

type SearchRequest struct {
	Query string `json:"query"`
}

type LocationPayload struct {
	ID        string   `json:"id"`
	Name      string   `json:"name" binding:"required"`
	Country   string   `json:"country"`
	Admin1    string   `json:"admin1"`
	Latitude  *float64 `json:"latitude" binding:"required"`
	Longitude *float64 `json:"longitude" binding:"required"`
	Timezone  string   `json:"timezone"`
}

type SelectLocationRequest struct {
	Location *LocationPayload `json:"location" binding:"required"`
}

type UnitsRequest struct {
	Units string `json:"units" binding:"required,units"`
}

type DayRequest struct {
	Day string `json:"day" binding:"required"`
}

// getDashboard handles GET /api/dashboard requests
func (s *HTTPServerAdapter) getDashboard(c *gin.Context) {
	c.JSON(http.StatusOK, s.session.Snapshot())
}

// search handles POST /api/dashboard/search. A blank query is accepted and
// yields the no-results state.
func (s *HTTPServerAdapter) search(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.handleError(c, bindingError(err))
		return
	}

	c.JSON(http.StatusOK, s.session.Search(c.Request.Context(), req.Query))
}

// selectLocation handles POST /api/dashboard/location
func (s *HTTPServerAdapter) selectLocation(c *gin.Context) {
	var req SelectLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.handleError(c, bindingError(err))
		return
	}

	loc := weather.LocationMatch{
		ID:        req.Location.ID,
		Name:      req.Location.Name,
		Country:   req.Location.Country,
		Admin1:    req.Location.Admin1,
		Latitude:  *req.Location.Latitude,
		Longitude: *req.Location.Longitude,
		Timezone:  req.Location.Timezone,
	}

	snap, err := s.session.SelectLocation(c.Request.Context(), loc)
	if err != nil {
		s.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

// setUnits handles PUT /api/dashboard/units
func (s *HTTPServerAdapter) setUnits(c *gin.Context) {
	var req UnitsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.handleError(c, bindingError(err))
		return
	}

	snap, err := s.session.SetUnits(c.Request.Context(), weather.MeasurementSystem(req.Units))
	if err != nil {
		s.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

// selectDay handles PUT /api/dashboard/day
func (s *HTTPServerAdapter) selectDay(c *gin.Context) {
	var req DayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.handleError(c, bindingError(err))
		return
	}

	snap, err := s.session.SelectDay(req.Day)
	if err != nil {
		s.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

// refresh handles POST /api/dashboard/refresh, the retry action after a failed fetch
func (s *HTTPServerAdapter) refresh(c *gin.Context) {
	c.JSON(http.StatusOK, s.session.Refresh(c.Request.Context()))
}
