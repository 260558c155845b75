package appointment

import (
	"context"

	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

type BookingInput struct {
	ClinicID *uint

	ClientName  *string
	ClientPhone *string
	ClientEmail *string

	Date models.Date
	Time models.ClockTime
}

type Outcome string

const (
	OutcomeBooked Outcome = "booked"
	// o turno existe mas o horário continua marcado como livre
	OutcomeBookedSlotNotMarked Outcome = "booked_slot_not_marked"
)

type BookingResult struct {
	Appointment *models.Appointment
	Client      *models.Client
	Outcome     Outcome

	// SlotErr é o erro do passo que marca o horário, quando Outcome é
	// OutcomeBookedSlotNotMarked.
	SlotErr error
}

func (r *BookingResult) SlotMarked() bool {
	return r.Outcome == OutcomeBooked
}

// Booker agenda um turno como uma operação lógica: upsert do cliente,
// checagem do horário, insert do turno, marcação do horário.
type Booker interface {
	Book(ctx context.Context, in BookingInput) (*BookingResult, error)
}
