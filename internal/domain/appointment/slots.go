package appointment

import (
	"time"

	"github.com/podoclinic/booking/internal/models"
)

// Opening hours used by the slot generator. Slots start on the hour.
const (
	SlotLength       = time.Hour
	SlotHorizonDays  = 30
	FirstHour        = 9
	LastHour         = 17
	SaturdayLastHour = 14
)

type Slot struct {
	Start time.Time
}

// SlotWindow returns [start of tomorrow, start of tomorrow + horizon) in now's location.
func SlotWindow(now time.Time) (time.Time, time.Time) {
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).AddDate(0, 0, 1)
	return start, start.AddDate(0, 0, SlotHorizonDays)
}

// FreeSlots lists hourly slots between tomorrow and the horizon that no
// booked appointment overlaps. Sundays are closed and Saturdays end early.
func FreeSlots(now time.Time, booked []models.Appointment) []Slot {
	from, _ := SlotWindow(now)
	loc := now.Location()

	slots := make([]Slot, 0, SlotHorizonDays*(LastHour-FirstHour+1))
	for d := 0; d < SlotHorizonDays; d++ {
		day := from.AddDate(0, 0, d)
		if day.Weekday() == time.Sunday {
			continue
		}

		last := LastHour
		if day.Weekday() == time.Saturday {
			last = SaturdayLastHour
		}

		for h := FirstHour; h <= last; h++ {
			start := time.Date(day.Year(), day.Month(), day.Day(), h, 0, 0, 0, loc)
			if taken(start, booked) {
				continue
			}
			slots = append(slots, Slot{Start: start})
		}
	}
	return slots
}

func taken(start time.Time, booked []models.Appointment) bool {
	end := start.Add(SlotLength)
	for _, ap := range booked {
		if !Status(ap.Status).blocks() {
			continue
		}
		if !ap.AppointmentDate.Before(start) && ap.AppointmentDate.Before(end) {
			return true
		}
	}
	return false
}

func (s Status) blocks() bool {
	return s == StatusPending || s == StatusConfirmed
}
