package repository

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	dbpkg "github.com/BruksfildServices01/clinic-scheduler/internal/db"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

// Roda contra um PostgreSQL real quando TEST_DATABASE_URL existe (make
// test-integration); as quatro tabelas são truncadas antes de cada teste.
func newTestRepo(t *testing.T) *AppointmentGormRepository {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = dbpkg.Close(db) })

	require.NoError(t, dbpkg.Migrate(db))
	require.NoError(t, db.Exec(
		"TRUNCATE turnos, disponibilidad, clientes, clinicas RESTART IDENTITY CASCADE",
	).Error)

	return NewAppointmentGormRepository(db)
}

func strPtr(s string) *string { return &s }

func seedClinic(t *testing.T, r *AppointmentGormRepository) models.Clinic {
	t.Helper()
	c := models.Clinic{Name: strPtr("Centro"), WhatsAppPhone: strPtr("+5491100000000")}
	require.NoError(t, r.CreateClinic(context.Background(), &c))
	require.NotZero(t, c.ID)
	return c
}

func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

func TestGormCreateClinicNotNull(t *testing.T) {
	r := newTestRepo(t)

	err := r.CreateClinic(context.Background(), &models.Clinic{WhatsAppPhone: strPtr("+54911")})

	assert.Equal(t, "23502", pgCode(err))
}

func TestGormUpsertClientByPhone(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()
	clinic := seedClinic(t, r)

	first := models.Client{ClinicID: &clinic.ID, Name: strPtr("Ana"), Phone: strPtr("+5491100001111")}
	require.NoError(t, r.UpsertClient(ctx, &first))

	second := models.Client{
		ClinicID: &clinic.ID,
		Name:     strPtr("Ana María"),
		Phone:    strPtr("+5491100001111"),
		Email:    strPtr("ana@example.com"),
	}
	require.NoError(t, r.UpsertClient(ctx, &second))

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "Ana María", *second.Name)
}

func TestGormSlotsUpsertFindAndList(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()
	clinic := seedClinic(t, r)

	slots := []models.Availability{
		{ClinicID: clinic.ID, Date: "2026-10-20", Time: "11:00", Available: true},
		{ClinicID: clinic.ID, Date: "2026-10-20", Time: "09:00", Available: true},
		{ClinicID: clinic.ID, Date: "2026-10-20", Time: "10:00", Available: false},
	}
	require.NoError(t, r.UpsertSlots(ctx, slots))

	open, err := r.ListAvailableSlots(ctx, "1", "2026-10-20")
	require.NoError(t, err)
	require.Len(t, open, 2)
	assert.Equal(t, models.ClockTime("09:00:00"), open[0].Time)
	assert.Equal(t, models.ClockTime("11:00:00"), open[1].Time)

	taken, err := r.FindSlot(ctx, clinic.ID, "2026-10-20", "10:00")
	require.NoError(t, err)
	require.NotNil(t, taken)
	assert.False(t, taken.Available)

	missing, err := r.FindSlot(ctx, clinic.ID, "2026-10-20", "18:00")
	require.NoError(t, err)
	assert.Nil(t, missing)

	// fecha o horário das 09:00
	require.NoError(t, r.UpsertSlots(ctx, []models.Availability{
		{ClinicID: clinic.ID, Date: "2026-10-20", Time: "09:00", Available: false},
	}))
	open, err = r.ListAvailableSlots(ctx, "1", "2026-10-20")
	require.NoError(t, err)
	assert.Len(t, open, 1)

	_, err = r.ListAvailableSlots(ctx, "abc", "2026-10-20")
	assert.Equal(t, "22P02", pgCode(err))
}

func TestGormAppointmentLifecycle(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()
	clinic := seedClinic(t, r)

	client := models.Client{ClinicID: &clinic.ID, Name: strPtr("Ana"), Phone: strPtr("+5491100001111")}
	require.NoError(t, r.UpsertClient(ctx, &client))

	ap := models.Appointment{ClinicID: &clinic.ID, ClientID: client.ID, Date: "2026-10-18", Time: "10:00"}
	require.NoError(t, r.CreateAppointment(ctx, &ap))
	assert.Equal(t, "pendiente", ap.Status)

	updated, err := r.UpdateAppointment(ctx, ap.ID, map[string]any{"estado": "confirmado"})
	require.NoError(t, err)
	assert.Equal(t, "confirmado", updated.Status)
	assert.Equal(t, ap.ID, updated.ID)

	_, err = r.UpdateAppointment(ctx, ap.ID+100, map[string]any{"estado": "confirmado"})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	list, err := r.ListAppointmentsForDate(ctx, "1", "2026-10-18")
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.NotNil(t, list[0].Client)
	assert.Equal(t, "Ana", *list[0].Client.Name)
}

func TestGormUpsertClientWithoutEmailKeepsEmail(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()
	clinic := seedClinic(t, r)

	first := models.Client{
		ClinicID: &clinic.ID,
		Name:     strPtr("Ana"),
		Phone:    strPtr("+5491100001111"),
		Email:    strPtr("ana@example.com"),
	}
	require.NoError(t, r.UpsertClient(ctx, &first))

	second := models.Client{ClinicID: &clinic.ID, Name: strPtr("Ana"), Phone: strPtr("+5491100001111")}
	require.NoError(t, r.UpsertClient(ctx, &second))

	require.NotNil(t, second.Email)
	assert.Equal(t, "ana@example.com", *second.Email)
}

func TestGormUpsertSlotsDuplicateInBatch(t *testing.T) {
	r := newTestRepo(t)
	clinic := seedClinic(t, r)

	err := r.UpsertSlots(context.Background(), []models.Availability{
		{ClinicID: clinic.ID, Date: "2026-10-20", Time: "09:00", Available: true},
		{ClinicID: clinic.ID, Date: "2026-10-20", Time: "09:00", Available: false},
	})

	assert.Equal(t, "21000", pgCode(err))
}

func TestGormUpdateWithoutDateKeepsDate(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()
	clinic := seedClinic(t, r)

	client := models.Client{ClinicID: &clinic.ID, Name: strPtr("Ana"), Phone: strPtr("+5491100001111")}
	require.NoError(t, r.UpsertClient(ctx, &client))
	ap := models.Appointment{ClinicID: &clinic.ID, ClientID: client.ID, Date: "2026-10-18", Time: "10:00"}
	require.NoError(t, r.CreateAppointment(ctx, &ap))

	updated, err := r.UpdateAppointment(ctx, ap.ID, map[string]any{"estado": "reagendado"})
	require.NoError(t, err)
	assert.Equal(t, models.Date("2026-10-18"), updated.Date)
	assert.Equal(t, "reagendado", updated.Status)
}
