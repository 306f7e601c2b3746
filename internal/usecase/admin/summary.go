package admin

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	apptDomain "github.com/podoclinic/booking/internal/domain/appointment"
	catalogDomain "github.com/podoclinic/booking/internal/domain/catalog"
	"github.com/podoclinic/booking/internal/dto"
	"github.com/podoclinic/booking/internal/timezone"
)

// ======================================================
// SUMMARY
// ======================================================

type GetSummary struct {
	appointments apptDomain.Repository
	catalog      catalogDomain.Repository
	loc          *time.Location
	now          func() time.Time
}

func NewGetSummary(
	appointments apptDomain.Repository,
	catalog catalogDomain.Repository,
	loc *time.Location,
) *GetSummary {
	return &GetSummary{
		appointments: appointments,
		catalog:      catalog,
		loc:          loc,
		now:          time.Now,
	}
}

func (uc *GetSummary) Execute(ctx context.Context) (*dto.Summary, error) {
	now := uc.now().In(uc.loc)

	// --------------------------------------------------
	// 1️⃣ Appointment counters
	// --------------------------------------------------
	byStatus, err := uc.appointments.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}

	var total int64
	for _, n := range byStatus {
		total += n
	}

	upcoming, err := uc.appointments.CountFrom(ctx, now, apptDomain.Blocking())
	if err != nil {
		return nil, err
	}

	dayStart, dayEnd := timezone.DayBounds(now)
	today, err := uc.appointments.CountBetween(ctx, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 2️⃣ Services and prices
	// --------------------------------------------------
	services, err := uc.catalog.ListServices(ctx)
	if err != nil {
		return nil, err
	}

	var active int64
	sum := decimal.Zero
	activePrices := make(map[string]decimal.Decimal, len(services))
	for _, s := range services {
		price := decimal.NewFromFloat(s.Price)
		sum = sum.Add(price)
		if s.IsActive {
			active++
			activePrices[strings.ToLower(s.Name)] = price
		}
	}

	average := decimal.Zero
	if len(services) > 0 {
		average = sum.Div(decimal.NewFromInt(int64(len(services))))
	}

	// --------------------------------------------------
	// 3️⃣ Potential revenue of confirmed visits
	// --------------------------------------------------
	confirmed, err := uc.appointments.ListByStatus(ctx, apptDomain.StatusConfirmed)
	if err != nil {
		return nil, err
	}

	revenue := decimal.Zero
	for _, ap := range confirmed {
		revenue = revenue.Add(activePrices[strings.ToLower(ap.Service)])
	}

	return &dto.Summary{
		Appointments: dto.AppointmentCounts{
			Total:     total,
			Pending:   byStatus[apptDomain.StatusPending],
			Confirmed: byStatus[apptDomain.StatusConfirmed],
			Cancelled: byStatus[apptDomain.StatusCancelled],
			Upcoming:  upcoming,
			Today:     today,
		},
		Services: dto.ServiceCounts{
			Total:        int64(len(services)),
			Active:       active,
			AveragePrice: average.Round(2).InexactFloat64(),
		},
		Financials: dto.Financials{
			PotentialRevenue: revenue.Round(2).InexactFloat64(),
		},
	}, nil
}

// ======================================================
// HEALTH
// ======================================================

type GetHealth struct {
	appointments apptDomain.Repository
	catalog      catalogDomain.Repository
	now          func() time.Time
}

func NewGetHealth(
	appointments apptDomain.Repository,
	catalog catalogDomain.Repository,
) *GetHealth {
	return &GetHealth{
		appointments: appointments,
		catalog:      catalog,
		now:          time.Now,
	}
}

func (uc *GetHealth) Execute(ctx context.Context) (*dto.Health, error) {
	categories, err := uc.catalog.ListCategories(ctx)
	if err != nil {
		return nil, err
	}

	services, err := uc.catalog.ListServices(ctx)
	if err != nil {
		return nil, err
	}

	byStatus, err := uc.appointments.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	var appointments int64
	for _, n := range byStatus {
		appointments += n
	}

	return &dto.Health{
		Status:    "ok",
		Timestamp: uc.now().UTC().Format(time.RFC3339),
		Counts: dto.HealthCounts{
			Categories:   int64(len(categories)),
			Services:     int64(len(services)),
			Appointments: appointments,
		},
	}, nil
}
