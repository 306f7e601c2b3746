package cli

import (
	"bytes"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/podoclinic/booking/internal/dashboard"
	"github.com/podoclinic/booking/internal/dto"
	"github.com/podoclinic/booking/internal/testutil"
)

func catalogHandlers() map[string]http.HandlerFunc {
	return map[string]http.HandlerFunc{
		"GET /api/service-categories": testutil.WithJSONResponse(http.StatusOK, []dto.Category{
			{ID: 1, Name: "Podstawowe zabiegi"},
			{ID: 2, Name: "Korekcja i ortopedia"},
		}),
		"GET /api/services": testutil.WithJSONResponse(http.StatusOK, []dto.Service{
			{ID: 1, Name: "Podstawowy zabieg podologiczny", Price: 170, DurationMinutes: 60, CategoryID: 1, IsActive: true},
			{ID: 2, Name: "Konsultacja podologiczna", Price: 100, DurationMinutes: 30, CategoryID: 1, IsActive: true},
			{ID: 3, Name: "Orteza", Price: 0, DurationMinutes: 30, CategoryID: 2, IsActive: true},
			{ID: 4, Name: "Wycofana", Price: 10, DurationMinutes: 30, CategoryID: 2, IsActive: false},
		}),
	}
}

func run(t *testing.T, srvURL, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := NewRootCommand(strings.NewReader(stdin), &out)
	root.SetArgs(append([]string{"--server", srvURL}, args...))
	err := root.Execute()
	return out.String(), err
}

func TestBook(t *testing.T) {
	srv, rec := testutil.NewMockServer(map[string]http.HandlerFunc{
		"POST /api/appointments": testutil.WithJSONResponse(http.StatusCreated, dto.Appointment{ID: 1}),
	})
	defer srv.Close()

	out, err := run(t, srv.URL, "", "book",
		"--name", "Anna Kowalska", "--email", "a@example.com",
		"--service", "Peeling", "--date", "2024-05-01")
	require.NoError(t, err)
	assert.Contains(t, out, "Dziękujemy za zgłoszenie!")

	require.Len(t, rec.Requests(), 1)
	assert.JSONEq(t,
		`{"name":"Anna Kowalska","email":"a@example.com","phone":"","service":"Peeling","date":"2024-05-01","message":""}`,
		string(rec.Requests()[0].Body),
	)
}

func TestBook_ServerError(t *testing.T) {
	srv, _ := testutil.NewMockServer(map[string]http.HandlerFunc{
		"POST /api/appointments": testutil.WithJSONResponse(http.StatusBadRequest, map[string]string{"error": "Invalid date"}),
	})
	defer srv.Close()

	out, err := run(t, srv.URL, "", "book", "--name", "Anna", "--email", "a@example.com")
	require.Error(t, err)
	assert.Contains(t, out, "Błąd: Invalid date")
}

func TestServerFromEnv(t *testing.T) {
	srv, rec := testutil.NewMockServer(catalogHandlers())
	defer srv.Close()
	t.Setenv("CLINIC_API_URL", srv.URL)

	var out bytes.Buffer
	root := NewRootCommand(strings.NewReader(""), &out)
	root.SetArgs([]string{"categories", "list"})
	require.NoError(t, root.Execute())

	assert.Contains(t, out.String(), "Podstawowe zabiegi")
	assert.Equal(t, 1, rec.Count(http.MethodGet, "/api/service-categories"))
}

func TestPricing(t *testing.T) {
	srv, _ := testutil.NewMockServer(catalogHandlers())
	defer srv.Close()

	out, err := run(t, srv.URL, "", "services", "pricing")
	require.NoError(t, err)

	assert.Contains(t, out, "CENA INDYW.")
	assert.Contains(t, out, "170 zł")
	assert.NotContains(t, out, "Wycofana")
	assert.Less(t, strings.Index(out, "Konsultacja podologiczna"), strings.Index(out, "Podstawowy zabieg podologiczny"))
}

func TestAppointmentsList_Filter(t *testing.T) {
	handlers := catalogHandlers()
	handlers["GET /api/appointments"] = testutil.WithJSONResponse(http.StatusOK, []dto.Appointment{
		{ID: 1, Name: "Anna", Status: "pending", AppointmentDate: "2030-05-01T09:00:00"},
		{ID: 2, Name: "Jan", Status: "confirmed", AppointmentDate: "2030-05-02T09:00:00"},
	})
	handlers["GET /api/admin/summary"] = testutil.WithJSONResponse(http.StatusOK, dto.Summary{})
	srv, _ := testutil.NewMockServer(handlers)
	defer srv.Close()

	out, err := run(t, srv.URL, "", "appointments", "list", "--status", "confirmed")
	require.NoError(t, err)
	assert.Contains(t, out, "Jan")
	assert.Contains(t, out, "Potwierdzona")
	assert.NotContains(t, out, "Anna")
}

func TestAppointmentsDelete_Prompt(t *testing.T) {
	srv, rec := testutil.NewMockServer(map[string]http.HandlerFunc{
		"DELETE /api/appointments/3": testutil.WithJSONResponse(http.StatusOK, dto.Message{Message: "Rezerwacja została usunięta"}),
		"GET /api/appointments":      testutil.WithJSONResponse(http.StatusOK, []dto.Appointment{}),
		"GET /api/admin/summary":     testutil.WithJSONResponse(http.StatusOK, dto.Summary{}),
	})
	defer srv.Close()

	out, err := run(t, srv.URL, "n\n", "appointments", "delete", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "Czy chcesz usunąć tę rezerwację?")
	assert.Contains(t, out, "Anulowano")
	assert.Equal(t, 0, rec.Count(http.MethodDelete, "/api/appointments/3"))

	out, err = run(t, srv.URL, "tak\n", "appointments", "delete", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "Rezerwacja została usunięta")
	assert.Equal(t, 1, rec.Count(http.MethodDelete, "/api/appointments/3"))

	_, err = run(t, srv.URL, "", "appointments", "delete", "3", "--yes")
	require.NoError(t, err)
	assert.Equal(t, 2, rec.Count(http.MethodDelete, "/api/appointments/3"))
}

func TestSetStatus_Error(t *testing.T) {
	srv, _ := testutil.NewMockServer(map[string]http.HandlerFunc{
		"PUT /api/appointments/3": testutil.WithRawResponse(http.StatusInternalServerError, "oops"),
	})
	defer srv.Close()

	_, err := run(t, srv.URL, "", "appointments", "set-status", "3", "confirmed")
	require.Error(t, err)
	assert.Equal(t, "Nie udało się zaktualizować statusu rezerwacji", err.Error())

	_, err = run(t, srv.URL, "", "appointments", "set-status", "abc", "confirmed")
	require.Error(t, err)
}

func TestServicesSave_Update(t *testing.T) {
	handlers := catalogHandlers()
	handlers["GET /api/appointments"] = testutil.WithJSONResponse(http.StatusOK, []dto.Appointment{})
	handlers["GET /api/admin/summary"] = testutil.WithJSONResponse(http.StatusOK, dto.Summary{})
	handlers["PUT /api/services/2"] = testutil.WithJSONResponse(http.StatusOK, dto.Service{ID: 2})
	srv, rec := testutil.NewMockServer(handlers)
	defer srv.Close()

	out, err := run(t, srv.URL, "", "services", "save", "--id", "2", "--price", "120")
	require.NoError(t, err)
	assert.Contains(t, out, "Usługa została zapisana")

	var body string
	for _, r := range rec.Requests() {
		if r.Method == http.MethodPut {
			body = string(r.Body)
		}
	}
	assert.JSONEq(t,
		`{"name":"Konsultacja podologiczna","description":"","price":120,"duration_minutes":30,"is_active":true,"category_id":1}`,
		body,
	)
}

func TestServicesSave_ReloadFailureIsWarning(t *testing.T) {
	srv, rec := testutil.NewMockServer(map[string]http.HandlerFunc{
		"POST /api/services": testutil.WithJSONResponse(http.StatusCreated, dto.Service{ID: 5}),
		"GET /api/services":  testutil.WithRawResponse(http.StatusInternalServerError, "oops"),
	})
	defer srv.Close()

	out, err := run(t, srv.URL, "", "services", "save",
		"--name", "Taping", "--price", "80", "--duration", "30", "--category", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Usługa została zapisana")
	assert.Contains(t, out, "nie udało się odświeżyć danych: "+dashboard.MsgFetchServices)
	assert.Equal(t, 1, rec.Count(http.MethodPost, "/api/services"))
}

func TestCategoriesCreate_RequiresName(t *testing.T) {
	srv, rec := testutil.NewMockServer(nil)
	defer srv.Close()

	_, err := run(t, srv.URL, "", "categories", "create")
	require.Error(t, err)
	assert.Equal(t, "Nazwa kategorii jest wymagana", err.Error())
	assert.Empty(t, rec.Requests())
}

func TestCarousel(t *testing.T) {
	srv, _ := testutil.NewMockServer(catalogHandlers())
	defer srv.Close()

	out, err := run(t, srv.URL, "", "carousel", "--cycles", "3", "--interval", "5ms")
	require.NoError(t, err)

	assert.Equal(t, 2, strings.Count(out, "[1/2] Podstawowe zabiegi"))
	assert.Equal(t, 1, strings.Count(out, "[2/2] Korekcja i ortopedia"))
}

func TestSummary(t *testing.T) {
	srv, _ := testutil.NewMockServer(map[string]http.HandlerFunc{
		"GET /api/admin/summary": testutil.WithJSONResponse(http.StatusOK, dto.Summary{
			Appointments: dto.AppointmentCounts{Total: 7},
			Financials:   dto.Financials{PotentialRevenue: 340},
		}),
	})
	defer srv.Close()

	out, err := run(t, srv.URL, "", "summary")
	require.NoError(t, err)
	assert.Contains(t, out, "340.00 zł")
}
