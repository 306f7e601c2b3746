package appointment

import "github.com/podoclinic/booking/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

var labels = map[Status]string{
	StatusPending:   "W oczekiwaniu",
	StatusConfirmed: "Potwierdzona",
	StatusCancelled: "Anulowana",
}

// ===============================
// Validations
// ===============================

func (s Status) Valid() bool {
	_, ok := labels[s]
	return ok
}

// Label is the Polish display text. Unknown values have no label.
func (s Status) Label() string {
	return labels[s]
}

func ParseStatus(raw string) (Status, error) {
	s := Status(raw)
	if !s.Valid() {
		return "", httperr.Business("invalid_status", "Nieprawidłowy status")
	}
	return s, nil
}

// InitialStatus is the status every new booking starts in.
func InitialStatus() Status {
	return StatusPending
}

// Blocking are the statuses that occupy a slot and count as upcoming.
func Blocking() []Status {
	return []Status{StatusPending, StatusConfirmed}
}

func All() []Status {
	return []Status{StatusPending, StatusConfirmed, StatusCancelled}
}
