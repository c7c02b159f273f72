package weather

import (
	"github.com/stretchr/testify/mock"
	mocks "weathernow.app/internal/mocks"
	"weathernow.app/internal/ports"
)

// allowLogging accepts any log call with up to six fields
func allowLogging(l *mocks.Logger) {
	for n := 0; n <= 6; n++ {
		fields := make([]interface{}, n)
		for i := range fields {
			fields[i] = mock.Anything
		}
		l.EXPECT().Debug(mock.Anything, fields...).Maybe()
		l.EXPECT().Info(mock.Anything, fields...).Maybe()
		l.EXPECT().Warn(mock.Anything, fields...).Maybe()
		l.EXPECT().Error(mock.Anything, fields...).Maybe()
	}
}

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

// parisPayload is a trimmed forecast response for Paris in metric units
func parisPayload() *ports.ForecastPayload {
	return &ports.ForecastPayload{
		Latitude:  48.86,
		Longitude: 2.35,
		Timezone:  "Europe/Paris",
		Current: &ports.ForecastCurrent{
			Time:                "2025-03-14T13:00",
			Temperature2m:       12.4,
			ApparentTemperature: 10.1,
			IsDay:               1,
			RelativeHumidity2m:  71,
			WindSpeed10m:        14.8,
			Precipitation:       floatPtr(0.2),
			WeatherCode:         intPtr(61),
		},
		Hourly: &ports.ForecastHourly{
			Time:                     []string{"2025-03-14T00:00", "2025-03-14T13:00", "2025-03-15T00:00"},
			Temperature2m:            []float64{8.1, 12.4, 7.0},
			ApparentTemperature:      []float64{6.0, 10.1, 5.2},
			PrecipitationProbability: []*float64{floatPtr(10), floatPtr(80), nil},
			WeatherCode:              []*int{intPtr(3), intPtr(61), intPtr(0)},
		},
		Daily: &ports.ForecastDaily{
			Time:             []string{"2025-03-14", "2025-03-15"},
			WeatherCode:      []*int{intPtr(61), intPtr(0)},
			Temperature2mMax: []float64{13.0, 15.5},
			Temperature2mMin: []float64{6.2, 5.1},
		},
	}
}
