package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/podoclinic/booking/internal/dto"
	"github.com/podoclinic/booking/internal/httperr"
	"github.com/podoclinic/booking/internal/httpresp"
	ucAppointment "github.com/podoclinic/booking/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	create       *ucAppointment.CreateAppointment
	updateStatus *ucAppointment.UpdateAppointmentStatus
	remove       *ucAppointment.DeleteAppointment
	list         *ucAppointment.ListAppointments
	get          *ucAppointment.GetAppointment
	slots        *ucAppointment.ListAvailableSlots
	loc          *time.Location
}

func NewAppointmentHandler(
	create *ucAppointment.CreateAppointment,
	updateStatus *ucAppointment.UpdateAppointmentStatus,
	remove *ucAppointment.DeleteAppointment,
	list *ucAppointment.ListAppointments,
	get *ucAppointment.GetAppointment,
	slots *ucAppointment.ListAvailableSlots,
	loc *time.Location,
) *AppointmentHandler {
	return &AppointmentHandler{
		create:       create,
		updateStatus: updateStatus,
		remove:       remove,
		list:         list,
		get:          get,
		slots:        slots,
		loc:          loc,
	}
}

// ======================================================
// READ
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	aps, err := h.list.Execute(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err, "Nie udało się pobrać rezerwacji")
		return
	}
	httpresp.OK(c, dto.FromAppointments(aps, h.loc))
}

func (h *AppointmentHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	ap, err := h.get.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err, "")
		return
	}
	httpresp.OK(c, dto.FromAppointment(*ap, h.loc))
}

func (h *AppointmentHandler) AvailableSlots(c *gin.Context) {
	slots, err := h.slots.Execute(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err, "")
		return
	}

	out := make([]dto.Slot, 0, len(slots))
	for _, s := range slots {
		out = append(out, dto.Slot{
			Date:     s.Start.Format("2006-01-02"),
			Time:     s.Start.Format("15:04"),
			DateTime: s.Start.Format(dto.DateTimeLayout),
		})
	}
	httpresp.OK(c, out)
}

// ======================================================
// WRITE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req dto.AppointmentRequest
	if !bindJSON(c, &req) {
		return
	}

	ap, err := h.create.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Service:  req.Service,
		Date:     req.Date,
		Time:     req.Time,
		DateTime: req.DateTime,
		Message:  req.Message,
	})
	if err != nil {
		httperr.Respond(c, err, "Wystąpił błąd podczas tworzenia rezerwacji")
		return
	}

	httpresp.Created(c, dto.FromAppointment(*ap, h.loc))
}

func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.StatusUpdate
	if !bindJSON(c, &req) {
		return
	}

	ap, err := h.updateStatus.Execute(c.Request.Context(), id, req.Status)
	if err != nil {
		httperr.Respond(c, err, "Nie udało się zaktualizować statusu rezerwacji")
		return
	}

	httpresp.OK(c, dto.FromAppointment(*ap, h.loc))
}

func (h *AppointmentHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.remove.Execute(c.Request.Context(), id); err != nil {
		httperr.Respond(c, err, "Nie udało się usunąć rezerwacji")
		return
	}

	httpresp.Message(c, "Rezerwacja została usunięta")
}
