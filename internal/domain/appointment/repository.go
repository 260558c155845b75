package appointment

import (
	"context"

	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

// Repository é o contrato com o banco, por tabela. Filtros que vêm direto
// do request (query ou path) passam como texto e o banco valida.
type Repository interface {
	// -------- Clinic --------
	CreateClinic(
		ctx context.Context,
		clinic *models.Clinic,
	) error

	// -------- Client --------
	// UpsertClient insere ou atualiza o cliente pelo telefono e preenche a
	// struct com a linha gravada. Email nil não sobrescreve o salvo.
	UpsertClient(
		ctx context.Context,
		client *models.Client,
	) error

	// -------- Availability --------
	ListAvailableSlots(
		ctx context.Context,
		clinicID string,
		date string,
	) ([]models.Availability, error)

	// FindSlot devolve nil, nil quando o horário não tem linha.
	FindSlot(
		ctx context.Context,
		clinicID uint,
		date models.Date,
		clock models.ClockTime,
	) (*models.Availability, error)

	UpsertSlots(
		ctx context.Context,
		slots []models.Availability,
	) error

	// -------- Appointment --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// UpdateAppointment aplica changes na linha do id e devolve a linha.
	// Id sem linha é erro.
	UpdateAppointment(
		ctx context.Context,
		id uint,
		changes map[string]any,
	) (*models.Appointment, error)

	// ListAppointmentsForDate faz preload de Client (nombre, telefono) e
	// ordena por hora.
	ListAppointmentsForDate(
		ctx context.Context,
		clinicID string,
		date string,
	) ([]models.Appointment, error)
}
