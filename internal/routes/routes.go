package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/clinic-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/handlers"
	"github.com/BruksfildServices01/clinic-scheduler/internal/metrics"
	"github.com/BruksfildServices01/clinic-scheduler/internal/middleware"
	ucAppointment "github.com/BruksfildServices01/clinic-scheduler/internal/usecase/appointment"
)

// Deps são os singletons compartilhados pelas rotas.
type Deps struct {
	Repo     domain.Repository
	Audit    *audit.Dispatcher
	Metrics  *metrics.Metrics
	Log      *zap.Logger
	Timezone string
	// Now troca o relógio de "hoje"; nil = time.Now.
	Now func() time.Time
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	if d.Log == nil {
		d.Log = zap.NewNop()
	}

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(d.Log))
	if d.Metrics != nil {
		r.Use(d.Metrics.Middleware())
	}

	// ======================================================
	// 🧠 USE CASES
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(
		d.Repo,
		d.Audit,
		d.Metrics,
		d.Log,
	)

	confirmAppointmentUC := ucAppointment.NewConfirmAppointment(
		d.Repo,
		d.Audit,
	)

	rescheduleAppointmentUC := ucAppointment.NewRescheduleAppointment(
		d.Repo,
		d.Audit,
	)

	listTodayUC := ucAppointment.NewListTodayAppointments(
		d.Repo,
		d.Timezone,
		d.Now,
	)

	getAvailabilityUC := ucAppointment.NewGetAvailability(d.Repo)
	loadAvailabilityUC := ucAppointment.NewLoadAvailability(d.Repo)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	clinicHandler := handlers.NewClinicHandler(d.Repo, d.Audit)
	clientHandler := handlers.NewClientHandler(d.Repo)
	availabilityHandler := handlers.NewAvailabilityHandler(
		getAvailabilityUC,
		loadAvailabilityUC,
	)
	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		confirmAppointmentUC,
		rescheduleAppointmentUC,
		listTodayUC,
	)

	// ======================================================
	// 🩺 HEALTH / METRICS
	// ======================================================
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	if d.Metrics != nil {
		r.GET("/metrics", gin.WrapH(d.Metrics.Handler()))
	}

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	r.POST("/clinicas/crear", clinicHandler.Create)
	r.POST("/clientes/registrar", clientHandler.Register)

	r.GET("/disponibilidad", availabilityHandler.List)
	r.POST("/disponibilidad/cargar", availabilityHandler.Load)

	turnos := r.Group("/turnos")
	{
		turnos.POST("/crear", appointmentHandler.Create)
		turnos.POST("/confirmar", appointmentHandler.Confirm)
		turnos.POST("/reagendar", appointmentHandler.Reschedule)
		turnos.GET("/hoy/:clinica_id", appointmentHandler.ListToday)
	}
}
