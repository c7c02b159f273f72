package dashboard

import (
	"context"
	"slices"
	"sync"

	"weathernow.app/internal/core/weather"
	"weathernow.app/internal/ports"
	"weathernow.app/pkg/errors"
	"weathernow.app/pkg/validation"
)

// WeatherService is the slice of the weather use case the session drives
type WeatherService interface {
	Geocode(ctx context.Context, query string) ([]weather.LocationMatch, error)
	FetchForecast(ctx context.Context, location weather.LocationMatch, system weather.MeasurementSystem) (*weather.WeatherData, error)
}

// Session holds the single dashboard of this process. Every forecast fetch
// takes a new generation; a result commits only while its generation is
// still the latest, so a slow response never overwrites a newer one.
// Searches are sequenced the same way.
type Session struct {
	weather   WeatherService
	formatter weather.LabelFormatter
	logger    ports.Logger

	mu               sync.Mutex
	generation       uint64
	searchGeneration uint64
	state            State
}

type SessionDependencies struct {
	Weather         WeatherService
	Formatter       weather.LabelFormatter
	Logger          ports.Logger
	DefaultLocation weather.LocationMatch
	DefaultUnits    weather.MeasurementSystem
}

func NewSession(deps SessionDependencies) (*Session, error) {
	if deps.Weather == nil {
		return nil, errors.NewValidationError("weather service is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}
	if !deps.DefaultUnits.IsValid() {
		return nil, errors.NewValidationError("default units must be one of: metric, imperial")
	}
	if err := deps.DefaultLocation.Validate(); err != nil {
		return nil, err
	}

	formatter := deps.Formatter
	if formatter == nil {
		formatter = weather.NewEnglishFormatter()
	}

	return &Session{
		weather:   deps.Weather,
		formatter: formatter,
		logger:    deps.Logger,
		state: State{
			Query:          searchTerm(deps.DefaultLocation),
			SearchStatus:   SearchIdle,
			SearchResults:  []weather.LocationMatch{},
			Location:       deps.DefaultLocation,
			Units:          deps.DefaultUnits,
			ForecastStatus: ForecastIdle,
		},
	}, nil
}

// Search geocodes the query and selects the first match. A blank query or
// an empty match list leaves the session in the no-results state with the
// forecast cleared. Geocoding failures are recorded in the state.
// Cancelling ctx does not abort the lookup; the session outlives the caller.
func (s *Session) Search(ctx context.Context, query string) Snapshot {
	ctx = context.WithoutCancel(ctx)

	s.mu.Lock()
	s.state.Query = query
	trimmed, ok := validation.TrimAndValidate(query)
	if !ok {
		s.searchGeneration++
		s.clearResultsLocked()
		snap := s.snapshotLocked()
		s.mu.Unlock()
		return snap
	}
	s.searchGeneration++
	gen := s.searchGeneration
	s.state.SearchStatus = SearchLoading
	s.state.SearchError = ""
	s.mu.Unlock()

	matches, err := s.weather.Geocode(ctx, trimmed)

	s.mu.Lock()
	if gen != s.searchGeneration {
		s.logger.Debug("Discarding stale search result",
			ports.F("query", trimmed),
			ports.F("generation", gen))
		snap := s.snapshotLocked()
		s.mu.Unlock()
		return snap
	}

	if err != nil {
		s.state.SearchStatus = SearchError
		s.state.SearchError = errors.Reason(err)
		s.logger.Warn("Search failed",
			ports.F("query", trimmed),
			ports.F("error", err))
		snap := s.snapshotLocked()
		s.mu.Unlock()
		return snap
	}

	if len(matches) == 0 {
		s.clearResultsLocked()
		snap := s.snapshotLocked()
		s.mu.Unlock()
		return snap
	}

	s.state.SearchResults = matches
	s.selectLocationLocked(matches[0])
	s.mu.Unlock()

	return s.fetch(ctx)
}

// SelectLocation makes loc the current location and fetches its forecast
func (s *Session) SelectLocation(ctx context.Context, loc weather.LocationMatch) (Snapshot, error) {
	if err := loc.Validate(); err != nil {
		return Snapshot{}, err
	}
	if !validation.IsNotEmpty(loc.Name) {
		return Snapshot{}, errors.NewValidationError("location name cannot be empty")
	}
	if loc.ID == "" {
		loc.ID = weather.CoordinateID(loc.Latitude, loc.Longitude)
	}

	s.mu.Lock()
	s.selectLocationLocked(loc)
	s.mu.Unlock()

	return s.fetch(ctx), nil
}

// SetUnits switches the measurement system and refetches, since the units
// change the upstream request, not only the labels
func (s *Session) SetUnits(ctx context.Context, system weather.MeasurementSystem) (Snapshot, error) {
	if !system.IsValid() {
		return Snapshot{}, errors.NewValidationError("units must be one of: metric, imperial")
	}

	s.mu.Lock()
	s.state.Units = system
	s.mu.Unlock()

	return s.fetch(ctx), nil
}

// Refresh refetches the forecast for the current location and units
func (s *Session) Refresh(ctx context.Context) Snapshot {
	return s.fetch(ctx)
}

// SelectDay picks the day shown in the hourly panel
func (s *Session) SelectDay(day string) (Snapshot, error) {
	if !validation.IsValidDayKey(day) {
		return Snapshot{}, errors.NewValidationError("day must be formatted as YYYY-MM-DD: " + day)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Weather == nil || !s.state.Weather.HasDay(day) {
		return Snapshot{}, errors.NewValidationError("day is not part of the current forecast: " + day)
	}
	s.state.SelectedDay = day
	return s.snapshotLocked(), nil
}

// Snapshot returns a copy of the current state
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// fetch runs detached from ctx cancellation: only a newer generation may
// supersede a result, a departed caller may not.
func (s *Session) fetch(ctx context.Context) Snapshot {
	ctx = context.WithoutCancel(ctx)

	s.mu.Lock()
	s.generation++
	gen := s.generation
	location := s.state.Location
	units := s.state.Units
	s.state.ForecastStatus = ForecastLoading
	s.state.ForecastError = ""
	s.mu.Unlock()

	data, err := s.weather.FetchForecast(ctx, location, units)

	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.generation {
		s.logger.Debug("Discarding stale forecast",
			ports.F("location", location.DisplayName()),
			ports.F("generation", gen),
			ports.F("latest", s.generation))
		return s.snapshotLocked()
	}

	if err != nil {
		s.state.ForecastStatus = ForecastError
		s.state.ForecastError = errors.Reason(err)
		s.logger.Warn("Forecast fetch failed",
			ports.F("location", location.DisplayName()),
			ports.F("error", err))
		return s.snapshotLocked()
	}

	s.state.Weather = data
	s.state.ForecastStatus = ForecastReady
	s.state.SelectedDay = ""
	if len(data.DayOrder) > 0 {
		s.state.SelectedDay = data.DayOrder[0]
	}
	s.logger.Info("Forecast committed",
		ports.F("location", location.DisplayName()),
		ports.F("units", units.String()),
		ports.F("generation", gen))
	return s.snapshotLocked()
}

func (s *Session) selectLocationLocked(loc weather.LocationMatch) {
	s.state.Location = loc
	s.state.Query = searchTerm(loc)
	s.state.SearchStatus = SearchIdle
}

func (s *Session) clearResultsLocked() {
	s.state.SearchStatus = SearchNoResults
	s.state.SearchResults = []weather.LocationMatch{}
	s.state.Weather = nil
	s.state.SelectedDay = ""
}

func (s *Session) snapshotLocked() Snapshot {
	state := s.state
	state.SearchResults = slices.Clone(s.state.SearchResults)

	snap := Snapshot{
		State:         state,
		DayOptions:    []DayOption{},
		SelectedHours: []weather.HourlyForecastPoint{},
		Generation:    s.generation,
	}
	if state.Weather != nil {
		for _, key := range state.Weather.DayOrder {
			snap.DayOptions = append(snap.DayOptions, DayOption{
				Key:   key,
				Label: s.formatter.LongDayLabel(key),
			})
		}
		if hours := state.Weather.HoursFor(state.SelectedDay); hours != nil {
			snap.SelectedHours = slices.Clone(hours)
		}
	}
	return snap
}
