package settings

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/podoclinic/booking/internal/audit"
	"github.com/podoclinic/booking/internal/httperr"
	"github.com/podoclinic/booking/internal/testutil"
)

func ptr(s string) *string { return &s }

func TestSettings_SetAndGetCaseInsensitive(t *testing.T) {
	ctx := context.Background()
	uc := NewSettings(testutil.NewSettings(), nil)

	_, err := uc.Set(ctx, Entry{Key: " clinic_name ", Value: ptr("Podo Studio"), Description: "Nazwa"})
	require.NoError(t, err)

	got, err := uc.Get(ctx, "CLINIC_NAME")
	require.NoError(t, err)
	assert.Equal(t, "clinic_name", got.Key)
	assert.Equal(t, "Podo Studio", *got.Value)
	assert.Equal(t, "Nazwa", *got.Description)

	_, err = uc.Set(ctx, Entry{Key: "clinic_name", Value: ptr("Nowa nazwa")})
	require.NoError(t, err)
	got, _ = uc.Get(ctx, "clinic_name")
	assert.Equal(t, "Nowa nazwa", *got.Value)
	assert.Equal(t, "Nazwa", *got.Description)
}

func TestSettings_KeyRequired(t *testing.T) {
	_, err := NewSettings(testutil.NewSettings(), nil).Set(context.Background(), Entry{Key: "  "})
	assert.True(t, httperr.IsBusiness(err, "setting_key_required"))
}

func TestSettings_SetManySkipsBlankKeys(t *testing.T) {
	ctx := context.Background()
	uc := NewSettings(testutil.NewSettings(), nil)

	out, err := uc.SetMany(ctx, []Entry{
		{Key: "notification_email", Value: ptr("gabinet@example.com")},
		{Key: ""},
		{Key: "mail_from", Value: ptr("rezerwacje@example.com")},
	})
	require.NoError(t, err)
	assert.Len(t, out, 2)

	all, _ := uc.List(ctx)
	assert.Len(t, all, 2)
}

func TestSettings_Delete(t *testing.T) {
	ctx := context.Background()
	uc := NewSettings(testutil.NewSettings(), nil)
	_, _ = uc.Set(ctx, Entry{Key: "clinic_name", Value: ptr("x")})

	require.NoError(t, uc.Delete(ctx, "Clinic_Name"))
	assert.True(t, httperr.IsBusiness(uc.Delete(ctx, "clinic_name"), "setting_not_found"))
}

type countingSink struct {
	mu sync.Mutex
	n  int
}

func (s *countingSink) Log(context.Context, audit.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.n++
	return nil
}

func TestSettings_SetManyIsAllOrNothing(t *testing.T) {
	ctx := context.Background()
	repo := testutil.NewSettings()
	sink := &countingSink{}
	d := audit.NewDispatcher(sink, zerolog.Nop())
	uc := NewSettings(repo, d)

	_, err := uc.Set(ctx, Entry{Key: "clinic_name", Value: ptr("Podo Studio")})
	require.NoError(t, err)

	repo.FailKey = "mail_from"
	repo.FailErr = errors.New("write failed")

	_, err = uc.SetMany(ctx, []Entry{
		{Key: "clinic_name", Value: ptr("Nowa nazwa")},
		{Key: "mail_from", Value: ptr("rezerwacje@example.com")},
		{Key: "notification_email", Value: ptr("gabinet@example.com")},
	})
	require.Error(t, err)

	closeCtx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()
	d.Close(closeCtx)

	all, _ := uc.List(ctx)
	require.Len(t, all, 1)
	assert.Equal(t, "Podo Studio", *all[0].Value)
	assert.Equal(t, 1, sink.n)
}
