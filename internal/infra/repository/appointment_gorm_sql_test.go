package repository

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

// sqlRecorder guarda o SQL que o gorm montou (DryRun não executa nada).
type sqlRecorder struct {
	mu  sync.Mutex
	sql []string
}

func (r *sqlRecorder) LogMode(gormlogger.LogLevel) gormlogger.Interface { return r }
func (r *sqlRecorder) Info(context.Context, string, ...any)             {}
func (r *sqlRecorder) Warn(context.Context, string, ...any)             {}
func (r *sqlRecorder) Error(context.Context, string, ...any)            {}

func (r *sqlRecorder) Trace(_ context.Context, _ time.Time, fc func() (string, int64), _ error) {
	sql, _ := fc()
	r.mu.Lock()
	r.sql = append(r.sql, sql)
	r.mu.Unlock()
}

func (r *sqlRecorder) last(t *testing.T) string {
	t.Helper()
	r.mu.Lock()
	defer r.mu.Unlock()
	require.NotEmpty(t, r.sql)
	return r.sql[len(r.sql)-1]
}

func newDryRunRepo(t *testing.T) (*AppointmentGormRepository, *sqlRecorder) {
	t.Helper()

	rec := &sqlRecorder{}
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN: "host=localhost user=clinicas dbname=clinicas sslmode=disable",
	}), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
		Logger:               rec,
	})
	require.NoError(t, err)

	return NewAppointmentGormRepository(db), rec
}

func TestUpsertClientSQLSkipsAbsentEmail(t *testing.T) {
	repo, rec := newDryRunRepo(t)
	clinicID := uint(1)

	require.NoError(t, repo.UpsertClient(context.Background(), &models.Client{
		ClinicID: &clinicID,
		Name:     strPtr("Ana"),
		Phone:    strPtr("+5491100001111"),
	}))

	sql := rec.last(t)
	assert.Contains(t, sql, `ON CONFLICT ("telefono") DO UPDATE SET`)
	assert.Contains(t, sql, `"nombre"="excluded"."nombre"`)
	assert.NotContains(t, sql, `"email"="excluded"."email"`)
	assert.Contains(t, sql, "RETURNING")
}

func TestUpsertClientSQLUpdatesGivenEmail(t *testing.T) {
	repo, rec := newDryRunRepo(t)
	clinicID := uint(1)

	require.NoError(t, repo.UpsertClient(context.Background(), &models.Client{
		ClinicID: &clinicID,
		Name:     strPtr("Ana"),
		Phone:    strPtr("+5491100001111"),
		Email:    strPtr("ana@example.com"),
	}))

	assert.Contains(t, rec.last(t), `"email"="excluded"."email"`)
}

func TestUpsertSlotsSQLConflictsOnCompositeKey(t *testing.T) {
	repo, rec := newDryRunRepo(t)

	require.NoError(t, repo.UpsertSlots(context.Background(), []models.Availability{
		{ClinicID: 1, Date: "2026-10-20", Time: "09:00", Available: false},
	}))

	sql := rec.last(t)
	assert.Contains(t, sql, `ON CONFLICT ("clinica_id","fecha","hora") DO UPDATE SET "disponible"="excluded"."disponible"`)
	assert.Contains(t, sql, "false")
	assert.Contains(t, sql, "RETURNING")
}

func TestUpdateAppointmentSQLOnlyTouchesGivenColumns(t *testing.T) {
	repo, rec := newDryRunRepo(t)

	// DryRun não afeta linhas: o retorno é not found, o SQL é o que importa.
	_, err := repo.UpdateAppointment(context.Background(), 7, map[string]any{"estado": "reagendado", "hora": "09:00"})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	sql := rec.last(t)
	assert.Contains(t, sql, `UPDATE "turnos" SET`)
	assert.Contains(t, sql, `"estado"='reagendado'`)
	assert.Contains(t, sql, `"hora"='09:00'`)
	assert.NotContains(t, sql, `"fecha"`)
	assert.Contains(t, sql, "id = 7")
	assert.Contains(t, sql, "RETURNING")
}
