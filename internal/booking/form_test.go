package booking

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/podoclinic/booking/internal/dto"
	"github.com/podoclinic/booking/internal/testutil"
	"github.com/podoclinic/booking/internal/webclient"
)

func anna() Fields {
	return Fields{
		Name:    "Anna Kowalska",
		Email:   "a@example.com",
		Service: "Peeling",
		Date:    "2024-05-01",
	}
}

func newForm(t *testing.T, h http.HandlerFunc) (*Form, *testutil.Recorder) {
	t.Helper()
	srv, rec := testutil.NewMockServer(map[string]http.HandlerFunc{
		"POST /api/appointments": h,
	})
	t.Cleanup(srv.Close)

	f := NewForm(webclient.New(srv.URL))
	f.SetFields(anna())
	return f, rec
}

func TestSubmit_Success(t *testing.T) {
	f, rec := newForm(t, testutil.WithJSONResponse(http.StatusCreated, dto.Appointment{ID: 1, Status: "pending"}))

	n, err := f.Submit(context.Background())
	require.NoError(t, err)

	assert.Equal(t, Notice{Kind: NoticeSuccess, Text: MsgThanks}, n)
	assert.Equal(t, Fields{}, f.Fields())

	reqs := rec.Requests()
	require.Len(t, reqs, 1)
	assert.JSONEq(t,
		`{"name":"Anna Kowalska","email":"a@example.com","phone":"","service":"Peeling","date":"2024-05-01","message":""}`,
		string(reqs[0].Body),
	)
}

func TestSubmit_ServerError(t *testing.T) {
	f, _ := newForm(t, testutil.WithJSONResponse(http.StatusBadRequest, map[string]string{"error": "Invalid date"}))

	n, err := f.Submit(context.Background())
	require.Error(t, err)

	assert.Equal(t, Notice{Kind: NoticeError, Text: "Błąd: Invalid date"}, n)
	assert.Equal(t, anna(), f.Fields())

	got, ok := f.Notice()
	require.True(t, ok)
	assert.Equal(t, n, got)
}

func TestSubmit_UnparseableError(t *testing.T) {
	f, _ := newForm(t, testutil.WithRawResponse(http.StatusInternalServerError, "Internal Server Error"))

	n, err := f.Submit(context.Background())
	require.Error(t, err)
	assert.Equal(t, "Błąd: Wystąpił problem podczas wysyłania formularza", n.Text)
	assert.Equal(t, anna(), f.Fields())
}

func TestSubmit_Transport(t *testing.T) {
	srv, _ := testutil.NewMockServer(nil)
	url := srv.URL
	srv.Close()

	f := NewForm(webclient.New(url))
	f.SetFields(anna())

	n, err := f.Submit(context.Background())
	require.Error(t, err)
	assert.Equal(t, MsgTransport, n.Text)
	assert.Equal(t, anna(), f.Fields())
}

func TestFailureText(t *testing.T) {
	assert.Equal(t, "Błąd: Termin zajęty", FailureText(&webclient.APIError{Status: 400, Message: "Termin zajęty"}))
	assert.Equal(t, MsgErrorPrefix+MsgUnknownFailure, FailureText(&webclient.APIError{Status: 500}))
	assert.Equal(t, MsgTransport, FailureText(&webclient.TransportError{Err: errors.New("refused")}))
	assert.Equal(t, MsgErrorPrefix+MsgUnknownFailure, FailureText(errors.New("decode failed")))
}

func TestSubmit_LocalValidationBlocksRequest(t *testing.T) {
	tests := []struct {
		name   string
		edit   func(*Fields)
		field  string
		strict bool
	}{
		{name: "blank name", edit: func(v *Fields) { v.Name = "  " }, field: "name"},
		{name: "bad email", edit: func(v *Fields) { v.Email = "anna.example.com" }, field: "email"},
		{name: "missing service", edit: func(v *Fields) { v.Service = "" }, field: "service", strict: true},
		{name: "bad date", edit: func(v *Fields) { v.Date = "01/05/2024" }, field: "date"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, rec := newForm(t, testutil.WithJSONResponse(http.StatusCreated, dto.Appointment{}))
			f.RequireService = tt.strict

			v := anna()
			tt.edit(&v)
			f.SetFields(v)

			n, err := f.Submit(context.Background())
			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.field, ve.Field)
			assert.Equal(t, NoticeError, n.Kind)
			assert.Empty(t, rec.Requests())
		})
	}
}

func TestSubmit_FreeTextServiceOptional(t *testing.T) {
	f, rec := newForm(t, testutil.WithJSONResponse(http.StatusCreated, dto.Appointment{}))
	v := anna()
	v.Service = ""
	f.SetFields(v)

	_, err := f.Submit(context.Background())
	require.NoError(t, err)
	assert.Len(t, rec.Requests(), 1)
}

func TestServiceOptions(t *testing.T) {
	categories := []dto.Category{{ID: 1, Name: "Podstawowe zabiegi"}, {ID: 2, Name: "Korekcja i ortopedia"}, {ID: 3, Name: "Nieaktywne"}}
	services := []dto.Service{
		{ID: 1, Name: "Konsultacja podologiczna", Price: 100, DurationMinutes: 30, CategoryID: 1, IsActive: true},
		{ID: 2, Name: "Orteza", Price: 0, CategoryID: 2, IsActive: true},
		{ID: 3, Name: "Wycofana", Price: 50, CategoryID: 3, IsActive: false},
	}

	groups := ServiceOptions(categories, services)
	require.Len(t, groups, 2)

	assert.Equal(t, "Podstawowe zabiegi", groups[0].Label)
	assert.Equal(t, Option{
		Value:           "Konsultacja podologiczna",
		Label:           "Konsultacja podologiczna - 100 zł",
		Price:           100,
		DurationMinutes: 30,
	}, groups[0].Options[0])
	assert.Equal(t, "Orteza (cena indywidualna)", groups[1].Options[0].Label)
}
