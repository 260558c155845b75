package appointment

import (
	"context"

	"github.com/BruksfildServices01/clinic-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

type RescheduleAppointmentInput struct {
	AppointmentID uint
	// nil = campo ausente, a coluna fica como está
	Date *string
	Time *string
}

// RescheduleAppointment move o turno sem olhar a disponibilidade: o horário
// antigo continua ocupado e o novo não é reservado.
type RescheduleAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewRescheduleAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *RescheduleAppointment {
	return &RescheduleAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *RescheduleAppointment) Execute(
	ctx context.Context,
	in RescheduleAppointmentInput,
) (*models.Appointment, error) {

	ap, err := uc.repo.UpdateAppointment(
		ctx,
		in.AppointmentID,
		domain.RescheduleChanges(in.Date, in.Time),
	)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ClinicID: clinicOf(ap),
		Action:   audit.ActionAppointmentRescheduled,
		Entity:   "turno",
		EntityID: &ap.ID,
		Metadata: map[string]any{
			"fecha": ap.Date,
			"hora":  ap.Time,
		},
	})

	return ap, nil
}
