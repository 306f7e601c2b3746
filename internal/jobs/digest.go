package jobs

import (
	"context"
	"time"

	domain "github.com/podoclinic/booking/internal/domain/appointment"
	"github.com/podoclinic/booking/internal/models"
	"github.com/podoclinic/booking/internal/timezone"
)

const DailyDigestTask = "daily_digest"

type DigestSender interface {
	SendDigest(ctx context.Context, day time.Time, aps []models.Appointment) error
}

// DailyDigest mails the clinic today's pending and confirmed visits.
type DailyDigest struct {
	repo   domain.Repository
	sender DigestSender
	loc    *time.Location
	now    func() time.Time
}

func NewDailyDigest(repo domain.Repository, sender DigestSender, loc *time.Location) *DailyDigest {
	return &DailyDigest{repo: repo, sender: sender, loc: loc, now: time.Now}
}

func (j *DailyDigest) Run(ctx context.Context) error {
	start, end := timezone.DayBounds(j.now().In(j.loc))

	aps, err := j.repo.ListBetween(ctx, start, end, domain.Blocking())
	if err != nil {
		return err
	}

	return j.sender.SendDigest(ctx, start, aps)
}
