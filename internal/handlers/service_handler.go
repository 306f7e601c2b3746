package handlers

import (
	"encoding/json"
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/podoclinic/booking/internal/domain/catalog"
	"github.com/podoclinic/booking/internal/dto"
	"github.com/podoclinic/booking/internal/httperr"
	"github.com/podoclinic/booking/internal/httpresp"
	ucCatalog "github.com/podoclinic/booking/internal/usecase/catalog"
)

type ServiceHandler struct {
	list   *ucCatalog.ListServices
	save   *ucCatalog.SaveService
	remove *ucCatalog.DeleteService
}

func NewServiceHandler(
	list *ucCatalog.ListServices,
	save *ucCatalog.SaveService,
	remove *ucCatalog.DeleteService,
) *ServiceHandler {
	return &ServiceHandler{
		list:   list,
		save:   save,
		remove: remove,
	}
}

// ServiceRequest accepts price and duration as JSON numbers or strings.
// A missing is_active means active.
type ServiceRequest struct {
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	Price           json.RawMessage `json:"price"`
	DurationMinutes json.RawMessage `json:"duration_minutes"`
	IsActive        *bool           `json:"is_active"`
	CategoryID      uint            `json:"category_id"`
}

func (r ServiceRequest) input() (domain.ServiceInput, error) {
	in := domain.ServiceInput{
		Name:        r.Name,
		Description: r.Description,
		Price:       rawText(r.Price),
		IsActive:    r.IsActive == nil || *r.IsActive,
		CategoryID:  r.CategoryID,
	}

	if d := rawText(r.DurationMinutes); d != "" {
		n, err := strconv.ParseFloat(d, 64)
		if err != nil {
			return in, httperr.Business("invalid_duration", "Czas trwania musi być dodatni")
		}
		in.DurationMinutes = int(n)
	}
	return in, nil
}

func (h *ServiceHandler) List(c *gin.Context) {
	services, err := h.list.Execute(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err, "Nie udało się pobrać listy usług")
		return
	}
	httpresp.OK(c, dto.FromServices(services))
}

func (h *ServiceHandler) Create(c *gin.Context) {
	var req ServiceRequest
	if !bindJSON(c, &req) {
		return
	}

	in, err := req.input()
	if err != nil {
		httperr.Respond(c, err, "")
		return
	}

	s, err := h.save.Create(c.Request.Context(), in)
	if err != nil {
		httperr.Respond(c, err, "Nie udało się zapisać usługi")
		return
	}
	httpresp.Created(c, dto.FromService(*s))
}

func (h *ServiceHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req ServiceRequest
	if !bindJSON(c, &req) {
		return
	}

	in, err := req.input()
	if err != nil {
		httperr.Respond(c, err, "")
		return
	}

	s, err := h.save.Update(c.Request.Context(), id, in)
	if err != nil {
		httperr.Respond(c, err, "Nie udało się zapisać usługi")
		return
	}
	httpresp.OK(c, dto.FromService(*s))
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.remove.Execute(c.Request.Context(), id); err != nil {
		httperr.Respond(c, err, "Nie udało się usunąć usługi")
		return
	}
	httpresp.Message(c, "Usługa została usunięta")
}
