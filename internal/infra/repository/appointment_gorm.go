package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Clinic
// --------------------------------------------------

func (r *AppointmentGormRepository) CreateClinic(
	ctx context.Context,
	clinic *models.Clinic,
) error {
	if err := r.db.WithContext(ctx).
		Clauses(clause.Returning{}).
		Create(clinic).Error; err != nil {
		return fmt.Errorf("insert clinica: %w", err)
	}
	return nil
}

// --------------------------------------------------
// Client
// --------------------------------------------------

func (r *AppointmentGormRepository) UpsertClient(
	ctx context.Context,
	client *models.Client,
) error {
	if err := r.db.WithContext(ctx).
		Clauses(
			clause.OnConflict{
				Columns:   []clause.Column{{Name: "telefono"}},
				DoUpdates: clause.AssignmentColumns(clientUpdateColumns(client)),
			},
			clause.Returning{},
		).
		Create(client).Error; err != nil {
		return fmt.Errorf("upsert cliente: %w", err)
	}
	return nil
}

// clientUpdateColumns devolve as colunas do update no conflito. email só
// entra quando veio no body, senão o email salvo se perde.
func clientUpdateColumns(client *models.Client) []string {
	cols := []string{"clinica_id", "nombre"}
	if client.Email != nil {
		cols = append(cols, "email")
	}
	return cols
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

func (r *AppointmentGormRepository) ListAvailableSlots(
	ctx context.Context,
	clinicID string,
	date string,
) ([]models.Availability, error) {

	var slots []models.Availability
	if err := r.db.WithContext(ctx).
		Where("clinica_id = ? AND fecha = ? AND disponible = ?", clinicID, date, true).
		Order("hora ASC").
		Find(&slots).Error; err != nil {
		return nil, fmt.Errorf("select disponibilidad: %w", err)
	}

	return slots, nil
}

func (r *AppointmentGormRepository) FindSlot(
	ctx context.Context,
	clinicID uint,
	date models.Date,
	clock models.ClockTime,
) (*models.Availability, error) {

	var slot models.Availability
	err := r.db.WithContext(ctx).
		Where("clinica_id = ? AND fecha = ? AND hora = ?", clinicID, date, clock).
		Limit(1).
		Take(&slot).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select slot: %w", err)
	}

	return &slot, nil
}

func (r *AppointmentGormRepository) UpsertSlots(
	ctx context.Context,
	slots []models.Availability,
) error {
	if len(slots) == 0 {
		return nil
	}

	if err := r.db.WithContext(ctx).
		Clauses(
			clause.OnConflict{
				Columns: []clause.Column{
					{Name: "clinica_id"},
					{Name: "fecha"},
					{Name: "hora"},
				},
				DoUpdates: clause.AssignmentColumns([]string{"disponible"}),
			},
			clause.Returning{},
		).
		Create(&slots).Error; err != nil {
		return fmt.Errorf("upsert disponibilidad: %w", err)
	}

	return nil
}

// --------------------------------------------------
// Appointment
// --------------------------------------------------

func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	if err := r.db.WithContext(ctx).
		Clauses(clause.Returning{}).
		Create(ap).Error; err != nil {
		return fmt.Errorf("insert turno: %w", err)
	}
	return nil
}

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	id uint,
	changes map[string]any,
) (*models.Appointment, error) {

	var ap models.Appointment
	res := r.db.WithContext(ctx).
		Model(&ap).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		Updates(changes)

	if res.Error != nil {
		return nil, fmt.Errorf("update turno: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, fmt.Errorf("update turno %d: %w", id, gorm.ErrRecordNotFound)
	}

	return &ap, nil
}

func (r *AppointmentGormRepository) ListAppointmentsForDate(
	ctx context.Context,
	clinicID string,
	date string,
) ([]models.Appointment, error) {

	var apps []models.Appointment

	err := r.db.WithContext(ctx).
		Preload("Client", func(tx *gorm.DB) *gorm.DB {
			return tx.Select("id", "nombre", "telefono")
		}).
		Where("clinica_id = ? AND fecha = ?", clinicID, date).
		Order("hora ASC").
		Find(&apps).Error

	if err != nil {
		return nil, fmt.Errorf("select turnos: %w", err)
	}

	return apps, nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
