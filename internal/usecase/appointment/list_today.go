package appointment

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/dto"
	"github.com/BruksfildServices01/clinic-scheduler/internal/timezone"
)

type ListTodayAppointments struct {
	repo     domain.Repository
	timezone string
	now      func() time.Time
}

func NewListTodayAppointments(
	repo domain.Repository,
	tz string,
	now func() time.Time,
) *ListTodayAppointments {
	if now == nil {
		now = time.Now
	}
	return &ListTodayAppointments{
		repo:     repo,
		timezone: tz,
		now:      now,
	}
}

func (uc *ListTodayAppointments) Execute(
	ctx context.Context,
	clinicID string,
) ([]dto.TodayAppointmentDTO, error) {

	today := timezone.DateIn(uc.now(), uc.timezone)

	appointments, err := uc.repo.ListAppointmentsForDate(ctx, clinicID, today)
	if err != nil {
		return nil, err
	}

	out := make([]dto.TodayAppointmentDTO, 0, len(appointments))
	for _, ap := range appointments {
		item := dto.TodayAppointmentDTO{
			ID:        ap.ID,
			ClinicID:  ap.ClinicID,
			ClientID:  ap.ClientID,
			Date:      ap.Date,
			Time:      ap.Time,
			Status:    ap.Status,
			CreatedAt: ap.CreatedAt,
		}
		if ap.Client != nil {
			item.Client = &dto.ClientSummary{
				Name:  ap.Client.Name,
				Phone: ap.Client.Phone,
			}
		}
		out = append(out, item)
	}

	return out, nil
}
