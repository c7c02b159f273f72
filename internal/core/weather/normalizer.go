package weather

import (
	"slices"
	"strings"
	"time"

	"weathernow.app/internal/ports"
)

// MaxForecastDays bounds both the daily list and the hourly day order
const MaxForecastDays = 7

// Normalizer reshapes a raw forecast payload into WeatherData. Missing or
// short blocks degrade to zero values and empty lists; it never fails.
type Normalizer struct {
	formatter LabelFormatter
	now       func() time.Time
}

// NewNormalizer creates a normalizer. A nil clock means time.Now.
func NewNormalizer(formatter LabelFormatter, now func() time.Time) *Normalizer {
	if formatter == nil {
		formatter = NewEnglishFormatter()
	}
	if now == nil {
		now = time.Now
	}
	return &Normalizer{formatter: formatter, now: now}
}

func (n *Normalizer) Normalize(location LocationMatch, system MeasurementSystem, payload *ports.ForecastPayload) *WeatherData {
	if payload == nil {
		payload = &ports.ForecastPayload{}
	}

	hourlyByDay, dayOrder := n.hourly(payload.Hourly)

	return &WeatherData{
		Location:    location,
		Current:     n.current(payload.Current),
		Daily:       n.daily(payload.Daily),
		HourlyByDay: hourlyByDay,
		DayOrder:    dayOrder,
		System:      system,
		Units:       system.Labels(),
		UpdatedAt:   n.now(),
	}
}

func (n *Normalizer) current(c *ports.ForecastCurrent) CurrentConditions {
	if c == nil {
		return CurrentConditions{WeatherMeta: Classify(UnknownWeatherCode)}
	}

	return CurrentConditions{
		WeatherMeta:         Classify(codeOrUnknown(c.WeatherCode)),
		Temperature:         c.Temperature2m,
		ApparentTemperature: c.ApparentTemperature,
		Humidity:            c.RelativeHumidity2m,
		WindSpeed:           c.WindSpeed10m,
		Precipitation:       valueOrZero(c.Precipitation),
		IsDay:               c.IsDay != 0,
		ObservationTime:     c.Time,
	}
}

func (n *Normalizer) daily(d *ports.ForecastDaily) []DailyForecastDay {
	if d == nil {
		return []DailyForecastDay{}
	}

	count := min(len(d.Time), MaxForecastDays)
	days := make([]DailyForecastDay, 0, count)
	for i := 0; i < count; i++ {
		code, _ := at(d.WeatherCode, i)
		maxTemp, _ := at(d.Temperature2mMax, i)
		minTemp, _ := at(d.Temperature2mMin, i)

		days = append(days, DailyForecastDay{
			WeatherMeta: Classify(codeOrUnknown(code)),
			Date:        d.Time[i],
			DayLabel:    n.formatter.DayLabel(d.Time[i], i),
			Max:         maxTemp,
			Min:         minTemp,
		})
	}
	return days
}

func (n *Normalizer) hourly(h *ports.ForecastHourly) (map[string][]HourlyForecastPoint, []string) {
	byDay := make(map[string][]HourlyForecastPoint)
	if h == nil {
		return byDay, []string{}
	}

	for i, ts := range h.Time {
		key := DayKey(ts)
		if key == "" {
			continue
		}

		code, _ := at(h.WeatherCode, i)
		temp, _ := at(h.Temperature2m, i)
		apparent, _ := at(h.ApparentTemperature, i)
		probability, _ := at(h.PrecipitationProbability, i)

		byDay[key] = append(byDay[key], HourlyForecastPoint{
			WeatherMeta:              Classify(codeOrUnknown(code)),
			Time:                     ts,
			HourLabel:                n.formatter.HourLabel(ts),
			Temperature:              temp,
			ApparentTemperature:      apparent,
			PrecipitationProbability: valueOrZero(probability),
		})
	}

	return byDay, SortDayKeys(byDay)
}

// DayKey returns the date part of a timestamp
func DayKey(timestamp string) string {
	key, _, _ := strings.Cut(strings.TrimSpace(timestamp), "T")
	return key
}

// SortDayKeys orders the keys by calendar date and keeps the first seven.
// Keys that do not parse as dates sort after those that do, by string value.
func SortDayKeys(byDay map[string][]HourlyForecastPoint) []string {
	keys := make([]string, 0, len(byDay))
	for k := range byDay {
		keys = append(keys, k)
	}

	slices.SortFunc(keys, compareDayKeys)

	if len(keys) > MaxForecastDays {
		keys = keys[:MaxForecastDays]
	}
	return keys
}

func compareDayKeys(a, b string) int {
	da, okA := parseDate(a)
	db, okB := parseDate(b)
	switch {
	case okA && okB:
		return da.Compare(db)
	case okA:
		return -1
	case okB:
		return 1
	default:
		return strings.Compare(a, b)
	}
}

func at[T any](values []T, i int) (T, bool) {
	var zero T
	if i < 0 || i >= len(values) {
		return zero, false
	}
	return values[i], true
}

func codeOrUnknown(code *int) int {
	if code == nil {
		return UnknownWeatherCode
	}
	return *code
}

func valueOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
