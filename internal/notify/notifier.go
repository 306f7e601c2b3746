package notify

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	domain "github.com/podoclinic/booking/internal/domain/appointment"
	"github.com/podoclinic/booking/internal/domain/settings"
	"github.com/podoclinic/booking/internal/httperr"
	"github.com/podoclinic/booking/internal/models"
)

const (
	DefaultClinicName = "Gabinet Podologiczny"
	displayLayout     = "02.01.2006 15:04"
	queueSize         = 50
)

var (
	ErrMailDisabled = errors.New("mail delivery is not configured")
	ErrNoRecipient  = errors.New("notification_email setting is empty")
)

// SettingsReader is the part of the settings store the notifier reads.
type SettingsReader interface {
	Get(ctx context.Context, key string) (*models.Setting, error)
}

// Notifier e-mails the clinic about new bookings and sends the daily digest.
// Booking notices are queued and sent by a background worker.
type Notifier struct {
	mailer      Mailer
	settings    SettingsReader
	loc         *time.Location
	defaultFrom string
	log         zerolog.Logger

	queue  chan models.Appointment
	mu     sync.RWMutex
	closed bool
	done   chan struct{}
}

// NewNotifier starts the delivery worker. A nil mailer keeps the notifier
// usable but every send reports ErrMailDisabled.
func NewNotifier(
	mailer Mailer,
	settings SettingsReader,
	loc *time.Location,
	defaultFrom string,
	log zerolog.Logger,
) *Notifier {
	n := &Notifier{
		mailer:      mailer,
		settings:    settings,
		loc:         loc,
		defaultFrom: defaultFrom,
		log:         log.With().Str("component", "notify").Logger(),
		queue:       make(chan models.Appointment, queueSize),
		done:        make(chan struct{}),
	}
	go n.worker()
	return n
}

func (n *Notifier) worker() {
	defer close(n.done)
	for ap := range n.queue {
		err := n.SendBookingNotice(context.Background(), ap)
		switch {
		case err == nil:
		case errors.Is(err, ErrMailDisabled), errors.Is(err, ErrNoRecipient):
			n.log.Warn().Err(err).Uint("appointment_id", ap.ID).Msg("booking notice skipped")
		default:
			n.log.Error().Err(err).Uint("appointment_id", ap.ID).Msg("booking notice failed")
		}
	}
}

// AppointmentCreated queues a booking notice without blocking.
func (n *Notifier) AppointmentCreated(ap models.Appointment) {
	if n == nil {
		return
	}
	n.mu.RLock()
	defer n.mu.RUnlock()
	if n.closed {
		n.log.Warn().Uint("appointment_id", ap.ID).Msg("notifier closed, dropping booking notice")
		return
	}
	select {
	case n.queue <- ap:
	default:
		n.log.Warn().Uint("appointment_id", ap.ID).Msg("notify queue full, dropping booking notice")
	}
}

func (n *Notifier) Close(ctx context.Context) {
	n.mu.Lock()
	if !n.closed {
		n.closed = true
		close(n.queue)
	}
	n.mu.Unlock()

	select {
	case <-n.done:
	case <-ctx.Done():
	}
}

// SendBookingNotice e-mails the clinic about one new appointment.
func (n *Notifier) SendBookingNotice(ctx context.Context, ap models.Appointment) error {
	env, err := n.envelope(ctx)
	if err != nil {
		return err
	}

	data := map[string]any{
		"clinicName": env.clinicName,
		"name":       ap.Name,
		"email":      ap.Email,
		"phone":      deref(ap.Phone),
		"service":    ap.Service,
		"when":       ap.AppointmentDate.In(n.loc).Format(displayLayout),
		"message":    deref(ap.Message),
	}

	service := ap.Service
	if service == "" {
		service = "Usługa"
	}

	return n.send(ctx, env, "Nowa rezerwacja: "+service, "booking", data)
}

// SendDigest e-mails the list of appointments booked for day.
func (n *Notifier) SendDigest(ctx context.Context, day time.Time, aps []models.Appointment) error {
	env, err := n.envelope(ctx)
	if err != nil {
		return err
	}

	rows := make([]map[string]any, 0, len(aps))
	for _, ap := range aps {
		rows = append(rows, map[string]any{
			"time":    ap.AppointmentDate.In(n.loc).Format("15:04"),
			"name":    ap.Name,
			"service": ap.Service,
			"status":  domain.Status(ap.Status).Label(),
		})
	}

	label := day.In(n.loc).Format("02.01.2006")
	data := map[string]any{
		"clinicName":   env.clinicName,
		"day":          label,
		"count":        len(aps),
		"appointments": rows,
	}

	return n.send(ctx, env, fmt.Sprintf("Wizyty na %s: %d", label, len(aps)), "digest", data)
}

type envelope struct {
	from       string
	to         string
	clinicName string
}

func (n *Notifier) envelope(ctx context.Context) (envelope, error) {
	if n.mailer == nil {
		return envelope{}, ErrMailDisabled
	}

	to, err := n.value(ctx, models.SettingNotificationEmail, "")
	if err != nil {
		return envelope{}, err
	}
	if to == "" {
		return envelope{}, ErrNoRecipient
	}

	clinic, err := n.value(ctx, models.SettingClinicName, DefaultClinicName)
	if err != nil {
		return envelope{}, err
	}

	from, err := n.value(ctx, models.SettingMailFrom, n.defaultFrom)
	if err != nil {
		return envelope{}, err
	}

	return envelope{
		from:       fmt.Sprintf("%s <%s>", clinic, from),
		to:         to,
		clinicName: clinic,
	}, nil
}

func (n *Notifier) send(ctx context.Context, env envelope, subject, tmpl string, data map[string]any) error {
	html, err := render(tmpl+".html", data)
	if err != nil {
		return err
	}
	text, err := render(tmpl+".txt", data)
	if err != nil {
		return err
	}

	if err := n.mailer.Send(ctx, Message{
		From:    env.from,
		To:      env.to,
		Subject: subject,
		Text:    text,
		HTML:    html,
	}); err != nil {
		return err
	}

	n.log.Info().Str("to", env.to).Str("subject", subject).Msg("e-mail sent")
	return nil
}

func (n *Notifier) value(ctx context.Context, key, def string) (string, error) {
	s, err := n.settings.Get(ctx, key)
	if httperr.IsBusiness(err, settings.CodeNotFound) {
		return def, nil
	}
	if err != nil {
		return "", fmt.Errorf("read setting %s: %w", key, err)
	}
	if v := strings.TrimSpace(deref(s.Value)); v != "" {
		return v, nil
	}
	return def, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
