// Package appointmenttest tem um appointment.Repository em memória que
// imita as constraints do banco (NOT NULL, FKs, chaves de upsert, ordem)
// para os testes de handlers e use cases.
package appointmenttest

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

type slotKey struct {
	clinicID uint
	date     models.Date
	clock    models.ClockTime
}

type FakeRepository struct {
	mu sync.Mutex

	clinics      map[uint]models.Clinic
	clients      map[uint]models.Client
	slots        map[slotKey]models.Availability
	appointments map[uint]models.Appointment
	nextID       uint

	// UpsertSlotsErr faz UpsertSlots falhar.
	UpsertSlotsErr error
	// FindSlotErr faz FindSlot falhar.
	FindSlotErr error
	// AfterFindSlot roda depois da consulta, fora do lock.
	AfterFindSlot func()

	Now func() time.Time
}

func NewFakeRepository() *FakeRepository {
	return &FakeRepository{
		clinics:      map[uint]models.Clinic{},
		clients:      map[uint]models.Client{},
		slots:        map[slotKey]models.Availability{},
		appointments: map[uint]models.Appointment{},
		Now:          time.Now,
	}
}

// --------------------------------------------------
// Seeding / inspection
// --------------------------------------------------

func (r *FakeRepository) SeedClinic(name string) models.Clinic {
	phone := "+5491100000000"
	c := models.Clinic{Name: &name, WhatsAppPhone: &phone}
	if err := r.CreateClinic(context.Background(), &c); err != nil {
		panic(err)
	}
	return c
}

func (r *FakeRepository) SeedSlot(clinicID uint, date, clock string, available bool) {
	err := r.UpsertSlots(context.Background(), []models.Availability{{
		ClinicID:  clinicID,
		Date:      models.Date(date),
		Time:      models.ClockTime(clock),
		Available: available,
	}})
	if err != nil {
		panic(err)
	}
}

func (r *FakeRepository) SeedAppointment(clinicID, clientID uint, date, clock string) models.Appointment {
	ap := models.Appointment{
		ClinicID: &clinicID,
		ClientID: clientID,
		Date:     models.Date(date),
		Time:     models.ClockTime(clock),
	}
	if err := r.CreateAppointment(context.Background(), &ap); err != nil {
		panic(err)
	}
	return ap
}

func (r *FakeRepository) Clients() []models.Client {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]models.Client, 0, len(r.clients))
	for _, c := range r.clients {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (r *FakeRepository) Appointments() []models.Appointment {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]models.Appointment, 0, len(r.appointments))
	for _, ap := range r.appointments {
		out = append(out, ap)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (r *FakeRepository) Slot(clinicID uint, date, clock string) (models.Availability, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.slots[slotKey{clinicID, models.Date(date), normalizeClock(models.ClockTime(clock))}]
	return s, ok
}

// --------------------------------------------------
// Repository
// --------------------------------------------------

func (r *FakeRepository) CreateClinic(_ context.Context, clinic *models.Clinic) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if clinic.Name == nil {
		return notNull("clinicas", "nombre")
	}
	if clinic.WhatsAppPhone == nil {
		return notNull("clinicas", "telefono_whatsapp")
	}

	clinic.ID = r.id()
	clinic.CreatedAt = r.Now()
	r.clinics[clinic.ID] = *clinic
	return nil
}

func (r *FakeRepository) UpsertClient(_ context.Context, client *models.Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	switch {
	case client.ClinicID == nil:
		return notNull("clientes", "clinica_id")
	case client.Name == nil:
		return notNull("clientes", "nombre")
	case client.Phone == nil:
		return notNull("clientes", "telefono")
	}
	if _, ok := r.clinics[*client.ClinicID]; !ok {
		return foreignKey("clientes", "clinica_id")
	}

	for id, existing := range r.clients {
		if *existing.Phone == *client.Phone {
			existing.ClinicID = client.ClinicID
			existing.Name = client.Name
			if client.Email != nil {
				existing.Email = client.Email
			}
			r.clients[id] = existing
			*client = existing
			return nil
		}
	}

	client.ID = r.id()
	client.CreatedAt = r.Now()
	r.clients[client.ID] = *client
	return nil
}

func (r *FakeRepository) ListAvailableSlots(_ context.Context, clinicID string, date string) ([]models.Availability, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id, err := parseID(clinicID)
	if err != nil {
		return nil, err
	}
	if err := checkDate(models.Date(date)); err != nil {
		return nil, err
	}

	var out []models.Availability
	for _, s := range r.slots {
		if s.ClinicID == id && s.Date == models.Date(date) && s.Available {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Time < out[j].Time })
	return out, nil
}

func (r *FakeRepository) FindSlot(_ context.Context, clinicID uint, date models.Date, clock models.ClockTime) (*models.Availability, error) {
	r.mu.Lock()
	s, ok := r.slots[slotKey{clinicID, date, normalizeClock(clock)}]
	err := r.FindSlotErr
	hook := r.AfterFindSlot
	r.mu.Unlock()

	if hook != nil {
		hook()
	}
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (r *FakeRepository) UpsertSlots(_ context.Context, slots []models.Availability) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.UpsertSlotsErr != nil {
		return r.UpsertSlotsErr
	}

	seen := make(map[slotKey]bool, len(slots))
	for _, s := range slots {
		key := slotKey{s.ClinicID, s.Date, normalizeClock(s.Time)}
		if seen[key] {
			return cardinality()
		}
		seen[key] = true

		if _, ok := r.clinics[s.ClinicID]; !ok {
			return foreignKey("disponibilidad", "clinica_id")
		}
		if s.Date == "" {
			return notNull("disponibilidad", "fecha")
		}
		if s.Time == "" {
			return notNull("disponibilidad", "hora")
		}
		if err := checkDate(s.Date); err != nil {
			return err
		}
		if err := checkClock(s.Time); err != nil {
			return err
		}
	}

	for i := range slots {
		slots[i].Time = normalizeClock(slots[i].Time)
		s := slots[i]
		r.slots[slotKey{s.ClinicID, s.Date, s.Time}] = s
	}
	return nil
}

func (r *FakeRepository) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	switch {
	case ap.ClinicID == nil:
		return notNull("turnos", "clinica_id")
	case ap.Date == "":
		return notNull("turnos", "fecha")
	case ap.Time == "":
		return notNull("turnos", "hora")
	}
	if _, ok := r.clinics[*ap.ClinicID]; !ok {
		return foreignKey("turnos", "clinica_id")
	}
	if _, ok := r.clients[ap.ClientID]; !ok {
		return foreignKey("turnos", "cliente_id")
	}
	if err := checkDate(ap.Date); err != nil {
		return err
	}
	if err := checkClock(ap.Time); err != nil {
		return err
	}

	ap.ID = r.id()
	ap.Time = normalizeClock(ap.Time)
	if ap.Status == "" {
		ap.Status = string(domain.StatusPending)
	}
	ap.CreatedAt = r.Now()
	ap.Client = nil
	r.appointments[ap.ID] = *ap
	return nil
}

func (r *FakeRepository) UpdateAppointment(_ context.Context, id uint, changes map[string]any) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ap, ok := r.appointments[id]
	if !ok {
		return nil, fmt.Errorf("update turno %d: %w", id, gorm.ErrRecordNotFound)
	}

	for col, v := range changes {
		if v == nil {
			return nil, notNull("turnos", col)
		}
		s := fmt.Sprint(v)
		switch col {
		case "estado":
			ap.Status = s
		case "fecha":
			if err := checkDate(models.Date(s)); err != nil {
				return nil, err
			}
			ap.Date = models.Date(s)
		case "hora":
			if err := checkClock(models.ClockTime(s)); err != nil {
				return nil, err
			}
			ap.Time = normalizeClock(models.ClockTime(s))
		default:
			return nil, &pgconn.PgError{Code: "42703", Message: fmt.Sprintf(`column "%s" of relation "turnos" does not exist`, col)}
		}
	}

	r.appointments[id] = ap
	return &ap, nil
}

func (r *FakeRepository) ListAppointmentsForDate(_ context.Context, clinicID string, date string) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id, err := parseID(clinicID)
	if err != nil {
		return nil, err
	}
	if err := checkDate(models.Date(date)); err != nil {
		return nil, err
	}

	var out []models.Appointment
	for _, ap := range r.appointments {
		if *ap.ClinicID != id || ap.Date != models.Date(date) {
			continue
		}
		if c, ok := r.clients[ap.ClientID]; ok {
			ap.Client = &models.Client{ID: c.ID, Name: c.Name, Phone: c.Phone}
		}
		out = append(out, ap)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Time < out[j].Time })
	return out, nil
}

// --------------------------------------------------
// helpers
// --------------------------------------------------

func (r *FakeRepository) id() uint {
	r.nextID++
	return r.nextID
}

func notNull(table, column string) error {
	return &pgconn.PgError{
		Code:      "23502",
		Message:   fmt.Sprintf(`null value in column "%s" of relation "%s" violates not-null constraint`, column, table),
		TableName: table,
	}
}

func foreignKey(table, column string) error {
	return &pgconn.PgError{
		Code:      "23503",
		Message:   fmt.Sprintf(`insert or update on table "%s" violates foreign key constraint on "%s"`, table, column),
		TableName: table,
	}
}

func cardinality() error {
	return &pgconn.PgError{
		Code:    "21000",
		Message: "ON CONFLICT DO UPDATE command cannot affect row a second time",
		Hint:    "Ensure that no rows proposed for insertion within the same command have duplicate constrained values.",
	}
}

func parseID(s string) (uint, error) {
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, &pgconn.PgError{Code: "22P02", Message: fmt.Sprintf(`invalid input syntax for type bigint: "%s"`, s)}
	}
	return uint(id), nil
}

func checkDate(d models.Date) error {
	if _, err := time.Parse(models.DateLayout, string(d)); err != nil {
		return &pgconn.PgError{Code: "22007", Message: fmt.Sprintf(`invalid input syntax for type date: "%s"`, d)}
	}
	return nil
}

func checkClock(c models.ClockTime) error {
	if _, err := time.Parse(models.ClockLayout, string(normalizeClock(c))); err != nil {
		return &pgconn.PgError{Code: "22007", Message: fmt.Sprintf(`invalid input syntax for type time: "%s"`, c)}
	}
	return nil
}

func normalizeClock(c models.ClockTime) models.ClockTime {
	if len(c) == len("15:04") {
		return c + ":00"
	}
	return c
}

var _ domain.Repository = (*FakeRepository)(nil)
