package dashboard

import domain "github.com/podoclinic/booking/internal/domain/appointment"

// StatusLabel returns the Polish label of a status. Unknown values have
// none and are not rendered.
func StatusLabel(status string) (string, bool) {
	s := domain.Status(status)
	if !s.Valid() {
		return "", false
	}
	return s.Label(), true
}

// Statuses lists the values an operator may pick.
func Statuses() []string {
	all := domain.All()
	out := make([]string, 0, len(all))
	for _, s := range all {
		out = append(out, string(s))
	}
	return out
}
