package dashboard

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/podoclinic/booking/internal/dto"
	"github.com/podoclinic/booking/internal/webclient"
)

const (
	MsgServiceFieldsRequired = "Uzupełnij nazwę usługi oraz wybierz kategorię"
	MsgInvalidPrice          = "Nieprawidłowa cena"
	MsgInvalidDuration       = "Czas trwania musi być liczbą całkowitą"
	MsgSaveService           = "Nie udało się zapisać usługi"
	MsgDeleteService         = "Nie udało się usunąć usługi"

	MsgCategoryNameRequired = "Nazwa kategorii jest wymagana"
	MsgCreateCategory       = "Nie udało się utworzyć kategorii"

	ConfirmDeleteService = "Czy na pewno chcesz usunąć tę usługę?"

	DefaultDuration = "60"
)

// ErrSaving is returned while another save of the same form is running.
var ErrSaving = errors.New("save already in progress")

// ServiceForm keeps the raw text the operator typed.
type ServiceForm struct {
	Name            string
	Description     string
	Price           string
	DurationMinutes string
	CategoryID      string
	IsActive        bool
}

func InitialServiceForm() ServiceForm {
	return ServiceForm{DurationMinutes: DefaultDuration, IsActive: true}
}

type CategoryForm struct {
	Name        string
	Description string
}

// ======================================================
// SERVICES
// ======================================================

func (d *Dashboard) Services() []dto.Service {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]dto.Service(nil), d.services...)
}

func (d *Dashboard) Categories() []dto.Category {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]dto.Category(nil), d.categories...)
}

func (d *Dashboard) ServiceForm() ServiceForm {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.serviceForm
}

func (d *Dashboard) SetServiceForm(f ServiceForm) {
	d.mu.Lock()
	d.serviceForm = f
	d.mu.Unlock()
}

// EditingID is the service being edited, or 0 when the form creates.
func (d *Dashboard) EditingID() uint {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.editingID
}

func (d *Dashboard) Saving() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.savingService
}

// EditService loads s into the form and switches it to update mode.
func (d *Dashboard) EditService(s dto.Service) {
	duration := DefaultDuration
	if s.DurationMinutes > 0 {
		duration = strconv.Itoa(s.DurationMinutes)
	}

	description := ""
	if s.Description != nil {
		description = *s.Description
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	d.editingID = s.ID
	d.serviceForm = ServiceForm{
		Name:            s.Name,
		Description:     description,
		Price:           decimal.NewFromFloat(s.Price).StringFixed(2),
		DurationMinutes: duration,
		CategoryID:      strconv.FormatUint(uint64(s.CategoryID), 10),
		IsActive:        s.IsActive,
	}
}

// ResetServiceForm leaves edit mode and restores the initial form.
func (d *Dashboard) ResetServiceForm() {
	d.mu.Lock()
	d.editingID = 0
	d.serviceForm = InitialServiceForm()
	d.mu.Unlock()
}

func (f ServiceForm) payload() (webclient.ServicePayload, string) {
	name := strings.TrimSpace(f.Name)
	categoryID, err := strconv.ParseUint(strings.TrimSpace(f.CategoryID), 10, 64)
	if name == "" || err != nil || categoryID == 0 {
		return webclient.ServicePayload{}, MsgServiceFieldsRequired
	}

	price := decimal.Zero
	if raw := strings.TrimSpace(f.Price); raw != "" {
		p, err := decimal.NewFromString(strings.ReplaceAll(raw, ",", "."))
		if err != nil {
			return webclient.ServicePayload{}, MsgInvalidPrice
		}
		price = p
	}

	duration := 0
	if raw := strings.TrimSpace(f.DurationMinutes); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return webclient.ServicePayload{}, MsgInvalidDuration
		}
		duration = n
	}

	return webclient.ServicePayload{
		Name:            name,
		Description:     f.Description,
		Price:           price.InexactFloat64(),
		DurationMinutes: duration,
		IsActive:        f.IsActive,
		CategoryID:      uint(categoryID),
	}, ""
}

// SubmitService creates or updates the service in the form. On success the
// form is reset and services and the summary are reloaded; on failure the
// form keeps its input.
func (d *Dashboard) SubmitService(ctx context.Context) error {
	d.mu.Lock()
	if d.savingService {
		d.mu.Unlock()
		return ErrSaving
	}
	form, editingID := d.serviceForm, d.editingID

	p, problem := form.payload()
	if problem != "" {
		d.banner = problem
		d.mu.Unlock()
		return errors.New(problem)
	}

	d.savingService = true
	d.banner = ""
	d.mu.Unlock()

	defer func() {
		d.mu.Lock()
		d.savingService = false
		d.mu.Unlock()
	}()

	var err error
	if editingID != 0 {
		_, err = d.api.UpdateService(ctx, editingID, p)
	} else {
		_, err = d.api.CreateService(ctx, p)
	}
	if err != nil {
		return d.failWith(err, MsgSaveService)
	}

	d.ResetServiceForm()
	return d.refetch(ctx, d.fetchServices, d.fetchSummary)
}

// DeleteService asks for confirmation first. A declined prompt sends
// nothing and returns false.
func (d *Dashboard) DeleteService(ctx context.Context, id uint) (bool, error) {
	if d.confirm == nil || !d.confirm.Confirm(ConfirmDeleteService) {
		return false, nil
	}
	d.setBanner("")

	if err := d.api.DeleteService(ctx, id); err != nil {
		return true, d.failWith(err, MsgDeleteService)
	}
	return true, d.refetch(ctx, d.fetchServices, d.fetchSummary)
}

// ======================================================
// CATEGORIES
// ======================================================

func (d *Dashboard) CategoryForm() CategoryForm {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.categoryForm
}

func (d *Dashboard) SetCategoryForm(f CategoryForm) {
	d.mu.Lock()
	d.categoryForm = f
	d.mu.Unlock()
}

func (d *Dashboard) SubmitCategory(ctx context.Context) error {
	d.mu.Lock()
	if d.savingCategory {
		d.mu.Unlock()
		return ErrSaving
	}
	form := d.categoryForm
	if strings.TrimSpace(form.Name) == "" {
		d.banner = MsgCategoryNameRequired
		d.mu.Unlock()
		return errors.New(MsgCategoryNameRequired)
	}
	d.savingCategory = true
	d.banner = ""
	d.mu.Unlock()

	defer func() {
		d.mu.Lock()
		d.savingCategory = false
		d.mu.Unlock()
	}()

	if _, err := d.api.CreateCategory(ctx, webclient.CategoryPayload{
		Name:        form.Name,
		Description: form.Description,
	}); err != nil {
		return d.failWith(err, MsgCreateCategory)
	}

	d.SetCategoryForm(CategoryForm{})
	return d.refetch(ctx, d.fetchCategories)
}
