package showcase

import (
	"fmt"
	"sort"

	"github.com/podoclinic/booking/internal/dto"
)

const (
	IndividualPrice       = "CENA INDYW."
	IndividualPriceOption = "cena indywidualna"
)

// Group is one category with the services that belong to it.
type Group struct {
	Category dto.Category
	Services []dto.Service
}

// GroupByCategory keeps the category order. Every category gets a group,
// possibly empty; services whose category is not listed are left out.
func GroupByCategory(categories []dto.Category, services []dto.Service) []Group {
	groups := make([]Group, len(categories))
	index := make(map[uint]int, len(categories))

	for i, c := range categories {
		groups[i] = Group{Category: c, Services: []dto.Service{}}
		index[c.ID] = i
	}

	for _, s := range services {
		if i, ok := index[s.CategoryID]; ok {
			groups[i].Services = append(groups[i].Services, s)
		}
	}
	return groups
}

// SortByPrice returns a copy ordered by ascending price. Equal prices keep
// their input order.
func SortByPrice(services []dto.Service) []dto.Service {
	out := append([]dto.Service(nil), services...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	return out
}

// Active drops inactive services.
func Active(services []dto.Service) []dto.Service {
	out := make([]dto.Service, 0, len(services))
	for _, s := range services {
		if s.IsActive {
			out = append(out, s)
		}
	}
	return out
}

// FormatPrice renders a pricing-grid label. Zero means individually priced.
func FormatPrice(price float64) string {
	if price == 0 {
		return IndividualPrice
	}
	return fmt.Sprintf("%d zł", int64(price))
}

// OptionLabel renders a service for the booking selector.
func OptionLabel(s dto.Service) string {
	if s.Price == 0 {
		return fmt.Sprintf("%s (%s)", s.Name, IndividualPriceOption)
	}
	return fmt.Sprintf("%s - %s", s.Name, FormatPrice(s.Price))
}
