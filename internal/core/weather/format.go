package weather

import (
	"fmt"
	"time"

	"weathernow.app/pkg/errors"
)

// Locale names a supported label language
type Locale string

const LocaleEnglish Locale = "en"

// LabelFormatter turns upstream date and timestamp strings into display
// labels. Unparseable input yields an empty label.
type LabelFormatter interface {
	// DayLabel labels the index-th entry of the daily list
	DayLabel(date string, index int) string
	// HourLabel labels an hourly timestamp, e.g. "1 PM"
	HourLabel(timestamp string) string
	// LongDayLabel labels a day key for the day picker, e.g. "Tuesday"
	LongDayLabel(date string) string
}

type localeNames struct {
	today      string
	shortDays  [7]string
	longDays   [7]string
	am, pm     string
	hourFormat string
}

var locales = map[Locale]localeNames{
	LocaleEnglish: {
		today:      "Today",
		shortDays:  [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
		longDays:   [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"},
		am:         "AM",
		pm:         "PM",
		hourFormat: "%d %s",
	},
}

const (
	dateLayout   = "2006-01-02"
	minuteLayout = "2006-01-02T15:04"
	secondLayout = "2006-01-02T15:04:05"
)

// LocaleFormatter implements LabelFormatter for a fixed locale
type LocaleFormatter struct {
	names localeNames
}

// NewLocaleFormatter creates a formatter for a supported locale
func NewLocaleFormatter(locale Locale) (*LocaleFormatter, error) {
	names, ok := locales[locale]
	if !ok {
		return nil, errors.NewValidationError(fmt.Sprintf("unsupported locale: %s", locale))
	}
	return &LocaleFormatter{names: names}, nil
}

// NewEnglishFormatter returns the English formatter
func NewEnglishFormatter() *LocaleFormatter {
	return &LocaleFormatter{names: locales[LocaleEnglish]}
}

func (f *LocaleFormatter) DayLabel(date string, index int) string {
	if index == 0 {
		return f.names.today
	}
	d, ok := parseDate(date)
	if !ok {
		return ""
	}
	return f.names.shortDays[d.Weekday()]
}

func (f *LocaleFormatter) HourLabel(timestamp string) string {
	t, ok := parseTimestamp(timestamp)
	if !ok {
		return ""
	}

	hour := t.Hour()
	suffix := f.names.am
	if hour >= 12 {
		suffix = f.names.pm
	}
	hour %= 12
	if hour == 0 {
		hour = 12
	}
	return fmt.Sprintf(f.names.hourFormat, hour, suffix)
}

func (f *LocaleFormatter) LongDayLabel(date string) string {
	d, ok := parseDate(date)
	if !ok {
		return ""
	}
	return f.names.longDays[d.Weekday()]
}

// Dates and timestamps are local to the forecast location (timezone=auto),
// so they are parsed without a zone and never converted.
func parseDate(s string) (time.Time, bool) {
	t, err := time.Parse(dateLayout, s)
	return t, err == nil
}

func parseTimestamp(s string) (time.Time, bool) {
	if t, err := time.Parse(minuteLayout, s); err == nil {
		return t, true
	}
	if t, err := time.Parse(secondLayout, s); err == nil {
		return t, true
	}
	return time.Time{}, false
}
