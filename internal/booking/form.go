package booking

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/podoclinic/booking/internal/dto"
	"github.com/podoclinic/booking/internal/validators"
	"github.com/podoclinic/booking/internal/webclient"
)

const (
	MsgThanks         = "Dziękujemy za zgłoszenie! Skontaktujemy się z Państwem w ciągu 24 godzin."
	MsgErrorPrefix    = "Błąd: "
	MsgUnknownFailure = "Wystąpił problem podczas wysyłania formularza"
	MsgTransport      = "Wystąpił błąd podczas wysyłania formularza. Spróbuj ponownie."

	MsgNameRequired    = "Podaj imię i nazwisko"
	MsgEmailInvalid    = "Podaj poprawny adres e-mail"
	MsgServiceRequired = "Wybierz usługę"
	MsgDateInvalid     = "Nieprawidłowy format daty. Użyj YYYY-MM-DD"
)

// ErrSubmitting is returned when a submit is already in flight.
var ErrSubmitting = errors.New("submit already in progress")

// Submitter is the part of the API client the form needs.
type Submitter interface {
	CreateAppointment(ctx context.Context, req dto.AppointmentRequest) (*dto.Appointment, error)
}

type Fields struct {
	Name    string
	Email   string
	Phone   string
	Service string
	Date    string
	Message string
}

type NoticeKind string

const (
	NoticeSuccess NoticeKind = "success"
	NoticeError   NoticeKind = "error"
)

type Notice struct {
	Kind NoticeKind
	Text string
}

// ValidationError names the first field that failed local checks.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Field + ": " + e.Message }

// ======================================================
// FORM
// ======================================================

// Form holds one booking form. The zero Fields value is its initial state.
type Form struct {
	mu         sync.Mutex
	client     Submitter
	fields     Fields
	notice     *Notice
	submitting bool

	// RequireService is set when the service comes from the catalog selector.
	RequireService bool
}

func NewForm(client Submitter) *Form {
	return &Form{client: client}
}

func (f *Form) Fields() Fields {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fields
}

func (f *Form) SetFields(v Fields) {
	f.mu.Lock()
	f.fields = v
	f.mu.Unlock()
}

// Notice returns the last submit outcome, if any.
func (f *Form) Notice() (Notice, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.notice == nil {
		return Notice{}, false
	}
	return *f.notice, true
}

func (f *Form) Validate() error {
	return validate(f.Fields(), f.RequireService)
}

func validate(v Fields, requireService bool) error {
	switch {
	case strings.TrimSpace(v.Name) == "":
		return &ValidationError{Field: "name", Message: MsgNameRequired}
	case !validators.IsEmail(v.Email):
		return &ValidationError{Field: "email", Message: MsgEmailInvalid}
	case requireService && strings.TrimSpace(v.Service) == "":
		return &ValidationError{Field: "service", Message: MsgServiceRequired}
	case !validators.IsISODate(strings.TrimSpace(v.Date)):
		return &ValidationError{Field: "date", Message: MsgDateInvalid}
	}
	return nil
}

// Submit validates locally and sends the booking. Local failures never
// reach the network. The returned notice is also kept on the form.
func (f *Form) Submit(ctx context.Context) (Notice, error) {
	f.mu.Lock()
	if f.submitting {
		f.mu.Unlock()
		return Notice{}, ErrSubmitting
	}
	v, requireService := f.fields, f.RequireService
	f.submitting = true
	f.mu.Unlock()

	defer func() {
		f.mu.Lock()
		f.submitting = false
		f.mu.Unlock()
	}()

	// 1️⃣ Local validation
	if err := validate(v, requireService); err != nil {
		var ve *ValidationError
		errors.As(err, &ve)
		return f.finish(Notice{Kind: NoticeError, Text: ve.Message}, false), err
	}

	// 2️⃣ Request
	_, err := f.client.CreateAppointment(ctx, dto.AppointmentRequest{
		Name:    v.Name,
		Email:   v.Email,
		Phone:   v.Phone,
		Service: v.Service,
		Date:    v.Date,
		Message: v.Message,
	})

	// 3️⃣ Outcome
	if err != nil {
		return f.finish(Notice{Kind: NoticeError, Text: FailureText(err)}, false), err
	}
	return f.finish(Notice{Kind: NoticeSuccess, Text: MsgThanks}, true), nil
}

func (f *Form) finish(n Notice, reset bool) Notice {
	f.mu.Lock()
	defer f.mu.Unlock()
	if reset {
		f.fields = Fields{}
	}
	f.notice = &n
	return n
}

// FailureText turns a submit error into the text shown to the patient.
func FailureText(err error) string {
	if ae, ok := webclient.AsAPIError(err); ok {
		if ae.Message != "" {
			return MsgErrorPrefix + ae.Message
		}
		return MsgErrorPrefix + MsgUnknownFailure
	}
	if webclient.IsTransport(err) {
		return MsgTransport
	}
	return MsgErrorPrefix + MsgUnknownFailure
}
