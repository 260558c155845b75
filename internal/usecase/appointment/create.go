package appointment

import (
	"context"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/clinic-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/metrics"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

// ======================================================
// USE CASE
// ======================================================

// CreateAppointment roda os passos em sequência, sem transação: dois
// requests para o mesmo horário não marcado podem passar pela checagem e
// os dois agendarem.
type CreateAppointment struct {
	repo    domain.Repository
	audit   *audit.Dispatcher
	metrics *metrics.Metrics
	log     *zap.Logger
}

func NewCreateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	metrics *metrics.Metrics,
	log *zap.Logger,
) *CreateAppointment {
	return &CreateAppointment{
		repo:    repo,
		audit:   audit,
		metrics: metrics,
		log:     log,
	}
}

// ======================================================
// BOOK
// ======================================================

func (uc *CreateAppointment) Book(
	ctx context.Context,
	in domain.BookingInput,
) (*domain.BookingResult, error) {

	// --------------------------------------------------
	// 1️⃣ Cliente (upsert por telefone)
	// --------------------------------------------------
	client := &models.Client{
		ClinicID: in.ClinicID,
		Name:     in.ClientName,
		Phone:    in.ClientPhone,
		Email:    in.ClientEmail,
	}
	if err := uc.repo.UpsertClient(ctx, client); err != nil {
		uc.metrics.ObserveBooking(metrics.OutcomeFailed)
		return nil, err
	}

	// --------------------------------------------------
	// 2️⃣ + 3️⃣ Disponibilidade: sem registro = sem conflito
	// --------------------------------------------------
	if in.ClinicID != nil {
		slot, err := uc.repo.FindSlot(ctx, *in.ClinicID, in.Date, in.Time)
		if err != nil {
			uc.log.Warn("slot lookup failed, booking anyway",
				zap.Uint("clinica_id", *in.ClinicID),
				zap.String("fecha", string(in.Date)),
				zap.String("hora", string(in.Time)),
				zap.Error(err),
			)
		}

		if slot != nil && !slot.Available {
			uc.metrics.ObserveBooking(metrics.OutcomeConflict)
			uc.audit.Dispatch(audit.Event{
				ClinicID: *in.ClinicID,
				Action:   audit.ActionAppointmentConflict,
				Entity:   "disponibilidad",
				Metadata: map[string]string{
					"fecha": string(in.Date),
					"hora":  string(in.Time),
				},
			})
			return nil, httperr.ErrBusiness(httperr.CodeSlotUnavailable)
		}
	}

	// --------------------------------------------------
	// 4️⃣ Turno
	// --------------------------------------------------
	ap := &models.Appointment{
		ClinicID: in.ClinicID,
		ClientID: client.ID,
		Date:     in.Date,
		Time:     in.Time,
	}
	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		uc.metrics.ObserveBooking(metrics.OutcomeFailed)
		return nil, err
	}

	// --------------------------------------------------
	// 5️⃣ Marca o horário como ocupado (best effort)
	// --------------------------------------------------
	result := &domain.BookingResult{
		Appointment: ap,
		Client:      client,
		Outcome:     domain.OutcomeBooked,
	}

	// o turno já existe: cliente que desconecta não pode deixar o horário
	// aberto
	markCtx := context.WithoutCancel(ctx)
	if err := uc.repo.UpsertSlots(markCtx, []models.Availability{{
		ClinicID:  clinicOf(ap),
		Date:      in.Date,
		Time:      in.Time,
		Available: false,
	}}); err != nil {
		result.Outcome = domain.OutcomeBookedSlotNotMarked
		result.SlotErr = err

		uc.log.Warn("appointment booked but slot still open",
			zap.Uint("turno_id", ap.ID),
			zap.Error(err),
		)
	}

	uc.metrics.ObserveBooking(string(result.Outcome))

	// --------------------------------------------------
	// 6️⃣ Evento
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		ClinicID: clinicOf(ap),
		Action:   audit.ActionAppointmentCreated,
		Entity:   "turno",
		EntityID: &ap.ID,
		Metadata: map[string]any{
			"cliente_id":   client.ID,
			"fecha":        ap.Date,
			"hora":         ap.Time,
			"slot_marcado": result.SlotMarked(),
		},
	})

	return result, nil
}

// Compile-time check
var _ domain.Booker = (*CreateAppointment)(nil)
