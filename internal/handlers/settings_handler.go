package handlers

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/podoclinic/booking/internal/httperr"
	"github.com/podoclinic/booking/internal/httpresp"
	"github.com/podoclinic/booking/internal/models"
	ucSettings "github.com/podoclinic/booking/internal/usecase/settings"
)

type SettingsHandler struct {
	settings *ucSettings.Settings
}

func NewSettingsHandler(settings *ucSettings.Settings) *SettingsHandler {
	return &SettingsHandler{settings: settings}
}

type SettingRequest struct {
	Key         string  `json:"key"`
	Value       *string `json:"value"`
	Description string  `json:"description"`
}

func (r SettingRequest) entry() ucSettings.Entry {
	return ucSettings.Entry{
		Key:         r.Key,
		Value:       r.Value,
		Description: r.Description,
	}
}

type BulkSettingsRequest struct {
	Settings *[]SettingRequest `json:"settings"`
}

type BulkSettingsResponse struct {
	Message  string           `json:"message"`
	Settings []models.Setting `json:"settings"`
}

func (h *SettingsHandler) List(c *gin.Context) {
	out, err := h.settings.List(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err, "")
		return
	}
	if out == nil {
		out = []models.Setting{}
	}
	httpresp.OK(c, out)
}

func (h *SettingsHandler) Get(c *gin.Context) {
	s, err := h.settings.Get(c.Request.Context(), c.Param("key"))
	if err != nil {
		httperr.Respond(c, err, "")
		return
	}
	httpresp.OK(c, s)
}

func (h *SettingsHandler) Upsert(c *gin.Context) {
	var req SettingRequest
	if !bindJSON(c, &req) {
		return
	}

	s, err := h.settings.Set(c.Request.Context(), req.entry())
	if err != nil {
		httperr.Respond(c, err, "Nie udało się zapisać ustawienia")
		return
	}
	httpresp.OK(c, s)
}

func (h *SettingsHandler) Bulk(c *gin.Context) {
	var req BulkSettingsRequest
	if !bindJSON(c, &req) {
		return
	}
	if req.Settings == nil {
		httperr.BadRequest(c, "invalid_request", "Pole 'settings' musi być tablicą")
		return
	}

	entries := make([]ucSettings.Entry, 0, len(*req.Settings))
	for _, r := range *req.Settings {
		entries = append(entries, r.entry())
	}

	saved, err := h.settings.SetMany(c.Request.Context(), entries)
	if err != nil {
		httperr.Respond(c, err, "Nie udało się zapisać ustawienia")
		return
	}

	httpresp.OK(c, BulkSettingsResponse{
		Message:  fmt.Sprintf("Zaktualizowano %d ustawień", len(saved)),
		Settings: saved,
	})
}

func (h *SettingsHandler) Delete(c *gin.Context) {
	if err := h.settings.Delete(c.Request.Context(), c.Param("key")); err != nil {
		httperr.Respond(c, err, "")
		return
	}
	httpresp.Message(c, "Ustawienie zostało usunięte")
}
