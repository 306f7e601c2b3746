package catalog

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/podoclinic/booking/internal/httperr"
	"github.com/podoclinic/booking/internal/models"
)

type CategoryInput struct {
	Name        string
	Description string
}

type ServiceInput struct {
	Name        string
	Description string

	// Price is the decimal text as received; blank means 0.
	Price           string
	DurationMinutes int
	IsActive        bool
	CategoryID      uint
}

// ===============================
// Validations
// ===============================

func ApplyCategory(in CategoryInput, c *models.ServiceCategory) error {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return httperr.Business("category_name_required", "Nazwa kategorii jest wymagana")
	}

	c.Name = name
	c.Description = optional(in.Description)
	return nil
}

// ApplyService validates in and copies it onto s. Category existence is
// checked by the caller.
func ApplyService(in ServiceInput, s *models.Service) error {
	name := strings.TrimSpace(in.Name)
	if name == "" || in.CategoryID == 0 {
		return httperr.Business("service_fields_required", "Nazwa usługi i kategoria są wymagane")
	}

	if in.DurationMinutes <= 0 {
		return httperr.Business("invalid_duration", "Czas trwania musi być dodatni")
	}

	price, err := ParsePrice(in.Price)
	if err != nil {
		return err
	}

	s.Name = name
	s.Description = optional(in.Description)
	s.Price = price.InexactFloat64()
	s.DurationMinutes = in.DurationMinutes
	s.IsActive = in.IsActive
	s.CategoryID = in.CategoryID
	return nil
}

// ParsePrice reads a non-negative decimal rounded to grosze. Blank is 0.
func ParsePrice(raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, nil
	}

	price, err := decimal.NewFromString(raw)
	if err != nil || price.IsNegative() {
		return decimal.Zero, httperr.Business("invalid_price", "Nieprawidłowa cena")
	}
	return price.Round(2), nil
}

// CategoryNotFound is reported when a service references an unknown category.
func CategoryNotFound() error {
	return httperr.Business("category_not_found", "Wybrana kategoria nie istnieje")
}

func CategoryMissing() error {
	return httperr.Business("category_not_found", "Nie znaleziono kategorii")
}

func ServiceNotFound() error {
	return httperr.Business("service_not_found", "Nie znaleziono usługi")
}

func CategoryExists(message string) error {
	return httperr.Business("category_exists", message)
}

func CategoryNotEmpty() error {
	return httperr.Business("category_not_empty", "Usuń lub przenieś usługi przed usunięciem kategorii")
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
