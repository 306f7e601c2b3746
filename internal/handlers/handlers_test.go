package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/podoclinic/booking/internal/audit"
	"github.com/podoclinic/booking/internal/models"
	"github.com/podoclinic/booking/internal/routes"
	"github.com/podoclinic/booking/internal/testutil"
	"github.com/podoclinic/booking/internal/timezone"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var warsaw = timezone.Location("Europe/Warsaw")

type fakeAuditReader struct {
	filter audit.Filter
	logs   []models.AuditLog
}

func (f *fakeAuditReader) List(_ context.Context, filter audit.Filter) ([]models.AuditLog, int64, error) {
	f.filter = filter
	return f.logs, int64(len(f.logs)), nil
}

type env struct {
	router       *gin.Engine
	appointments *testutil.Appointments
	catalog      *testutil.Catalog
	settings     *testutil.Settings
	audit        *fakeAuditReader
}

func newEnv(t *testing.T, seed ...models.Appointment) *env {
	t.Helper()

	e := &env{
		router:       gin.New(),
		appointments: testutil.NewAppointments(seed...),
		catalog:      testutil.NewCatalog(),
		settings:     testutil.NewSettings(),
		audit:        &fakeAuditReader{},
	}

	routes.RegisterRoutes(e.router, routes.Deps{
		Log:          zerolog.Nop(),
		Location:     warsaw,
		Appointments: e.appointments,
		Catalog:      e.catalog,
		Settings:     e.settings,
		Cache:        testutil.Cache{},
		AuditReader:  e.audit,
	})
	return e
}

func (e *env) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(b))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder) []map[string]any {
	t.Helper()
	var out []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

// ======================================================
// LIVENESS / CORS
// ======================================================

func TestHealth(t *testing.T) {
	e := newEnv(t)

	w := e.do(t, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", decode(t, w)["status"])
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestPreflight(t *testing.T) {
	e := newEnv(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/appointments", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
}

// ======================================================
// APPOINTMENTS
// ======================================================

func TestCreateAppointment(t *testing.T) {
	e := newEnv(t)

	w := e.do(t, http.MethodPost, "/api/appointments", map[string]string{
		"name":    "Anna Kowalska",
		"email":   "a@example.com",
		"phone":   "",
		"service": "Peeling",
		"date":    "2099-05-01",
		"message": "",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	body := decode(t, w)
	assert.Equal(t, "pending", body["status"])
	assert.Equal(t, "2099-05-01T09:00:00", body["appointment_date"])
	assert.Nil(t, body["phone"])

	list := decodeList(t, e.do(t, http.MethodGet, "/api/appointments", nil))
	assert.Len(t, list, 1)
}

func TestCreateAppointment_WithTime(t *testing.T) {
	e := newEnv(t)

	w := e.do(t, http.MethodPost, "/api/appointments", map[string]string{
		"name":    "Jan Nowak",
		"email":   "jan@example.com",
		"service": "Pedicure leczniczy",
		"date":    "2099-05-01",
		"time":    "14:30",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, "2099-05-01T14:30:00", decode(t, w)["appointment_date"])
}

func TestCreateAppointment_Rejected(t *testing.T) {
	tests := []struct {
		name string
		body any
		code string
	}{
		{
			name: "malformed json",
			body: "{not json",
			code: "invalid_request",
		},
		{
			name: "missing fields",
			body: map[string]string{"name": "Anna"},
			code: "missing_fields",
		},
		{
			name: "bad date",
			body: map[string]string{"name": "A", "email": "a@example.com", "service": "S", "date": "01.05.2099"},
			code: "invalid_date",
		},
		{
			name: "past date",
			body: map[string]string{"name": "A", "email": "a@example.com", "service": "S", "date": "2001-05-01"},
			code: "date_in_past",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEnv(t)

			w := e.do(t, http.MethodPost, "/api/appointments", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)

			body := decode(t, w)
			assert.Equal(t, tt.code, body["error_code"])
			assert.NotEmpty(t, body["error"])
		})
	}
}

func TestCreateAppointment_MissingFieldsListed(t *testing.T) {
	e := newEnv(t)

	w := e.do(t, http.MethodPost, "/api/appointments", map[string]string{"name": "Anna"})
	require.Equal(t, http.StatusBadRequest, w.Code)

	assert.ElementsMatch(t, []any{"email", "service", "date"}, decode(t, w)["fields"])
}

func TestAppointmentLifecycle(t *testing.T) {
	e := newEnv(t, models.Appointment{
		Name:            "Anna",
		Email:           "a@example.com",
		Service:         "Peeling",
		AppointmentDate: time.Date(2099, 5, 1, 10, 0, 0, 0, warsaw),
		Status:          "pending",
	})

	w := e.do(t, http.MethodGet, "/api/appointments/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "2099-05-01T10:00:00", decode(t, w)["appointment_date"])

	w = e.do(t, http.MethodPut, "/api/appointments/1", map[string]string{"status": "done"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_status", decode(t, w)["error_code"])

	w = e.do(t, http.MethodPut, "/api/appointments/1", map[string]string{"status": "confirmed"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "confirmed", decode(t, w)["status"])

	w = e.do(t, http.MethodDelete, "/api/appointments/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Rezerwacja została usunięta", decode(t, w)["message"])

	w = e.do(t, http.MethodDelete, "/api/appointments/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "appointment_not_found", decode(t, w)["error_code"])
}

func TestAppointment_BadID(t *testing.T) {
	e := newEnv(t)

	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
		w := e.do(t, method, "/api/appointments/abc", map[string]string{"status": "confirmed"})
		assert.Equal(t, http.StatusNotFound, w.Code, method)
	}
}

func TestAvailableSlots(t *testing.T) {
	e := newEnv(t)

	w := e.do(t, http.MethodGet, "/api/available-slots", nil)
	require.Equal(t, http.StatusOK, w.Code)

	slots := decodeList(t, w)
	require.NotEmpty(t, slots)
	assert.Equal(t, "09:00", slots[0]["time"])
	assert.Equal(t, slots[0]["date"].(string)+"T09:00:00", slots[0]["datetime"])
}

// ======================================================
// CATALOG
// ======================================================

func createCategory(t *testing.T, e *env, name string) uint {
	t.Helper()
	w := e.do(t, http.MethodPost, "/api/service-categories", map[string]string{"name": name})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return uint(decode(t, w)["id"].(float64))
}

func TestCategories(t *testing.T) {
	e := newEnv(t)

	id := createCategory(t, e, "Pedicure")

	w := e.do(t, http.MethodPost, "/api/service-categories", map[string]string{"name": "pedicure"})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = e.do(t, http.MethodPost, "/api/service-categories", map[string]string{"name": "  "})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Nazwa kategorii jest wymagana", decode(t, w)["error"])

	w = e.do(t, http.MethodPut, "/api/service-categories/1", map[string]string{"name": "Pedicure leczniczy"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Pedicure leczniczy", decode(t, w)["name"])

	w = e.do(t, http.MethodPost, "/api/services", map[string]any{
		"name": "Peeling", "price": 100, "duration_minutes": 30, "category_id": id,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = e.do(t, http.MethodDelete, "/api/service-categories/1", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "category_not_empty", decode(t, w)["error_code"])

	w = e.do(t, http.MethodDelete, "/api/service-categories/99", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	list := decodeList(t, e.do(t, http.MethodGet, "/api/service-categories", nil))
	assert.Len(t, list, 1)
}

func TestServices(t *testing.T) {
	e := newEnv(t)
	catID := createCategory(t, e, "Podologia")

	w := e.do(t, http.MethodPost, "/api/services", map[string]any{
		"name":             "Rekonstrukcja paznokcia",
		"price":            "150.505",
		"duration_minutes": "45",
		"category_id":      catID,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	created := decode(t, w)
	svcPath := fmt.Sprintf("/api/services/%d", uint(created["id"].(float64)))
	assert.Equal(t, 150.51, created["price"])
	assert.Equal(t, float64(45), created["duration_minutes"])
	assert.Equal(t, true, created["is_active"])

	w = e.do(t, http.MethodPut, svcPath, map[string]any{
		"name":             "Rekonstrukcja paznokcia",
		"price":            0,
		"duration_minutes": 60,
		"is_active":        false,
		"category_id":      catID,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, false, decode(t, w)["is_active"])

	w = e.do(t, http.MethodPost, "/api/services", map[string]any{
		"name": "X", "price": 10, "duration_minutes": 30, "category_id": 42,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Wybrana kategoria nie istnieje", decode(t, w)["error"])

	w = e.do(t, http.MethodPost, "/api/services", map[string]any{
		"name": "X", "price": "abc", "duration_minutes": 30, "category_id": catID,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_price", decode(t, w)["error_code"])

	w = e.do(t, http.MethodDelete, svcPath, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Usługa została usunięta", decode(t, w)["message"])

	w = e.do(t, http.MethodPut, svcPath, map[string]any{
		"name": "X", "price": 10, "duration_minutes": 30, "category_id": catID,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

// ======================================================
// ADMIN
// ======================================================

func TestAdminSummary(t *testing.T) {
	e := newEnv(t,
		models.Appointment{Name: "A", Email: "a@x.pl", Service: "S", AppointmentDate: time.Date(2099, 1, 1, 9, 0, 0, 0, warsaw), Status: "pending"},
		models.Appointment{Name: "B", Email: "b@x.pl", Service: "S", AppointmentDate: time.Date(2099, 1, 2, 9, 0, 0, 0, warsaw), Status: "cancelled"},
	)

	w := e.do(t, http.MethodGet, "/api/admin/summary", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	counts := body["appointments"].(map[string]any)
	assert.Equal(t, float64(2), counts["total"])
	assert.Equal(t, float64(1), counts["pending"])
	assert.Equal(t, float64(1), counts["cancelled"])
	assert.Equal(t, float64(1), counts["upcoming"])
	assert.Contains(t, body, "financials")
}

func TestAdminHealth(t *testing.T) {
	e := newEnv(t)

	w := e.do(t, http.MethodGet, "/api/admin/health", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", decode(t, w)["status"])
}

func TestAdminAuditLogs(t *testing.T) {
	e := newEnv(t)
	e.audit.logs = []models.AuditLog{{ID: 1, Action: "appointment_created", Entity: "appointment"}}

	w := e.do(t, http.MethodGet, "/api/admin/audit-logs?action=appointment_created&from=2030-05-01&to=2030-05-01&limit=500", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	assert.Equal(t, float64(1), body["page"])
	assert.Equal(t, float64(50), body["limit"])
	assert.Len(t, body["items"], 1)

	f := e.audit.filter
	assert.Equal(t, "appointment_created", f.Action)
	require.NotNil(t, f.From)
	require.NotNil(t, f.To)
	assert.Equal(t, 24*time.Hour, f.To.Sub(*f.From))
}

// ======================================================
// SETTINGS
// ======================================================

func TestSettings(t *testing.T) {
	e := newEnv(t)

	w := e.do(t, http.MethodPost, "/api/settings", map[string]string{"key": ""})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Klucz ustawienia jest wymagany", decode(t, w)["error"])

	w = e.do(t, http.MethodPost, "/api/settings", map[string]string{
		"key": "clinic_name", "value": "Gabinet Stopa",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = e.do(t, http.MethodGet, "/api/settings/clinic_name", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Gabinet Stopa", decode(t, w)["value"])

	w = e.do(t, http.MethodPost, "/api/settings/bulk", map[string]any{"settings": "nope"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = e.do(t, http.MethodPost, "/api/settings/bulk", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Pole 'settings' musi być tablicą", decode(t, w)["error"])

	w = e.do(t, http.MethodPost, "/api/settings/bulk", map[string]any{
		"settings": []map[string]string{
			{"key": "notification_email", "value": "gabinet@example.com"},
			{"key": "mail_from", "value": "rezerwacje@example.com"},
			{"key": ""},
		},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	body := decode(t, w)
	assert.Equal(t, "Zaktualizowano 2 ustawień", body["message"])
	assert.Len(t, body["settings"], 2)

	list := decodeList(t, e.do(t, http.MethodGet, "/api/settings", nil))
	assert.Len(t, list, 3)

	w = e.do(t, http.MethodDelete, "/api/settings/mail_from", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Ustawienie zostało usunięte", decode(t, w)["message"])

	w = e.do(t, http.MethodDelete, "/api/settings/mail_from", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Ustawienie nie zostało znalezione", decode(t, w)["error"])
}
