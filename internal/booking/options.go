package booking

import (
	"github.com/podoclinic/booking/internal/dto"
	"github.com/podoclinic/booking/internal/showcase"
)

// Option is one entry of the service selector. Price and duration are shown
// only; the booking sends just Value.
type Option struct {
	Value           string
	Label           string
	Price           float64
	DurationMinutes int
}

type OptionGroup struct {
	Label   string
	Options []Option
}

// ServiceOptions lists active services grouped by category. Groups left
// without active services are omitted.
func ServiceOptions(categories []dto.Category, services []dto.Service) []OptionGroup {
	var out []OptionGroup
	for _, g := range showcase.GroupByCategory(categories, showcase.Active(services)) {
		if len(g.Services) == 0 {
			continue
		}

		group := OptionGroup{Label: g.Category.Name}
		for _, s := range g.Services {
			group.Options = append(group.Options, Option{
				Value:           s.Name,
				Label:           showcase.OptionLabel(s),
				Price:           s.Price,
				DurationMinutes: s.DurationMinutes,
			})
		}
		out = append(out, group)
	}
	return out
}
