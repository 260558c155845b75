package appointment

import (
	"context"

	"github.com/BruksfildServices01/clinic-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

type ConfirmAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewConfirmAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *ConfirmAppointment {
	return &ConfirmAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *ConfirmAppointment) Execute(
	ctx context.Context,
	appointmentID uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.UpdateAppointment(ctx, appointmentID, domain.ConfirmChanges())
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ClinicID: clinicOf(ap),
		Action:   audit.ActionAppointmentConfirmed,
		Entity:   "turno",
		EntityID: &ap.ID,
	})

	return ap, nil
}

func clinicOf(ap *models.Appointment) uint {
	if ap.ClinicID == nil {
		return 0
	}
	return *ap.ClinicID
}
