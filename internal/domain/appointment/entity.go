package appointment

import (
	"strings"
	"time"

	"github.com/podoclinic/booking/internal/httperr"
	"github.com/podoclinic/booking/internal/models"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// DefaultTime is used when a booking names a day but no hour.
const DefaultTime = "09:00"

var isoLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	DateLayout,
}

// ===============================
// Domain Actions
// ===============================

// SetStatus moves an appointment to next. Any status may follow any other.
func SetStatus(ap *models.Appointment, next string) error {
	s, err := ParseStatus(next)
	if err != nil {
		return err
	}
	ap.Status = string(s)
	return nil
}

// RequestedTime resolves the booking moment from the request fields. A
// non-empty datetime wins over date+time; a missing time means DefaultTime.
func RequestedTime(date, clock, datetime string, loc *time.Location) (time.Time, error) {
	if datetime = strings.TrimSpace(datetime); datetime != "" {
		for _, layout := range isoLayouts {
			if t, err := time.ParseInLocation(layout, datetime, loc); err == nil {
				return t.In(loc), nil
			}
		}
		return time.Time{}, httperr.Business("invalid_datetime", "Nieprawidłowy format pola datetime")
	}

	day, err := time.ParseInLocation(DateLayout, strings.TrimSpace(date), loc)
	if err != nil {
		return time.Time{}, httperr.Business("invalid_date", "Nieprawidłowy format daty. Użyj YYYY-MM-DD")
	}

	clock = strings.TrimSpace(clock)
	if clock == "" {
		clock = DefaultTime
	}
	hm, err := time.Parse(TimeLayout, clock)
	if err != nil {
		return time.Time{}, httperr.Business("invalid_time", "Nieprawidłowy format czasu. Użyj HH:MM")
	}

	return time.Date(day.Year(), day.Month(), day.Day(), hm.Hour(), hm.Minute(), 0, 0, loc), nil
}

func AssertNotPast(start, now time.Time) error {
	if start.Before(now) {
		return httperr.Business("date_in_past", "Nie można umówić wizyty w przeszłości")
	}
	return nil
}
