package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/podoclinic/booking/internal/httperr"
	"github.com/podoclinic/booking/internal/timezone"
)

func TestRequestedTime(t *testing.T) {
	loc := timezone.Location("Europe/Warsaw")

	tests := []struct {
		name     string
		date     string
		clock    string
		datetime string
		want     time.Time
		code     string
	}{
		{name: "date only uses default hour", date: "2030-05-01", want: time.Date(2030, 5, 1, 9, 0, 0, 0, loc)},
		{name: "date and time", date: "2030-05-01", clock: "14:30", want: time.Date(2030, 5, 1, 14, 30, 0, 0, loc)},
		{name: "datetime wins", date: "2030-05-01", clock: "10:00", datetime: "2030-06-02T11:15", want: time.Date(2030, 6, 2, 11, 15, 0, 0, loc)},
		{name: "datetime with offset", date: "2030-05-01", datetime: "2030-06-02T09:00:00Z", want: time.Date(2030, 6, 2, 11, 0, 0, 0, loc)},
		{name: "bad date", date: "01.05.2030", code: "invalid_date"},
		{name: "bad time", date: "2030-05-01", clock: "9am", code: "invalid_time"},
		{name: "bad datetime", date: "2030-05-01", datetime: "tomorrow", code: "invalid_datetime"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RequestedTime(tt.date, tt.clock, tt.datetime, loc)
			if tt.code != "" {
				assert.True(t, httperr.IsBusiness(err, tt.code), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "want %s got %s", tt.want, got)
		})
	}
}

func TestAssertNotPast(t *testing.T) {
	now := time.Date(2030, 5, 1, 12, 0, 0, 0, time.UTC)

	assert.NoError(t, AssertNotPast(now, now))
	assert.NoError(t, AssertNotPast(now.Add(time.Minute), now))

	err := AssertNotPast(now.Add(-time.Minute), now)
	be, ok := httperr.AsBusiness(err)
	require.True(t, ok)
	assert.Equal(t, "Nie można umówić wizyty w przeszłości", be.Message)
}
