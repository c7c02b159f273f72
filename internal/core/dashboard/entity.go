package dashboard

import "weathernow.app/internal/core/weather"

type SearchStatus string

const (
	SearchIdle      SearchStatus = "idle"
	SearchLoading   SearchStatus = "loading"
	SearchError     SearchStatus = "error"
	SearchNoResults SearchStatus = "no-results"
)

type ForecastStatus string

const (
	ForecastIdle    ForecastStatus = "idle"
	ForecastLoading ForecastStatus = "loading"
	ForecastReady   ForecastStatus = "ready"
	ForecastError   ForecastStatus = "error"
)

// State is everything the dashboard view renders from. Weather is replaced
// wholesale on every committed fetch and never mutated afterwards.
type State struct {
	Query          string                    `json:"query"`
	SearchStatus   SearchStatus              `json:"searchStatus"`
	SearchResults  []weather.LocationMatch   `json:"searchResults"`
	SearchError    string                    `json:"searchError,omitempty"`
	Location       weather.LocationMatch     `json:"location"`
	Units          weather.MeasurementSystem `json:"units"`
	ForecastStatus ForecastStatus            `json:"forecastStatus"`
	Weather        *weather.WeatherData      `json:"weather,omitempty"`
	ForecastError  string                    `json:"forecastError,omitempty"`
	SelectedDay    string                    `json:"selectedDay,omitempty"`
}

// DayOption is one entry of the hourly day picker
type DayOption struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// Snapshot is a point-in-time copy of the session
type Snapshot struct {
	State
	DayOptions    []DayOption                   `json:"dayOptions"`
	SelectedHours []weather.HourlyForecastPoint `json:"selectedHours"`
	Generation    uint64                        `json:"generation"`
}

// searchTerm is what the search box shows for a selected location
func searchTerm(loc weather.LocationMatch) string {
	if loc.Country == "" {
		return loc.Name
	}
	return loc.Name + ", " + loc.Country
}
