package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
	ucAppointment "github.com/BruksfildServices01/clinic-scheduler/internal/usecase/appointment"
)

const HeaderSlotMarked = "X-Slot-Marked"

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	booker     domain.Booker
	confirm    *ucAppointment.ConfirmAppointment
	reschedule *ucAppointment.RescheduleAppointment
	listToday  *ucAppointment.ListTodayAppointments
}

func NewAppointmentHandler(
	booker domain.Booker,
	confirm *ucAppointment.ConfirmAppointment,
	reschedule *ucAppointment.RescheduleAppointment,
	listToday *ucAppointment.ListTodayAppointments,
) *AppointmentHandler {
	return &AppointmentHandler{
		booker:     booker,
		confirm:    confirm,
		reschedule: reschedule,
		listToday:  listToday,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	ClinicID *ID     `json:"clinica_id"`
	Name     *string `json:"nombre"`
	Phone    *string `json:"telefono"`
	Email    *string `json:"email"`
	Date     string  `json:"fecha"`
	Time     string  `json:"hora"`
}

type ConfirmAppointmentRequest struct {
	AppointmentID *ID `json:"turno_id"`
}

type RescheduleAppointmentRequest struct {
	AppointmentID *ID     `json:"turno_id"`
	Date          *string `json:"fecha"`
	Time          *string `json:"hora"`
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.InvalidBody(c, err)
		return
	}

	res, err := h.booker.Book(c.Request.Context(), domain.BookingInput{
		ClinicID:    req.ClinicID.Ptr(),
		ClientName:  req.Name,
		ClientPhone: req.Phone,
		ClientEmail: req.Email,
		Date:        models.Date(req.Date),
		Time:        models.ClockTime(req.Time),
	})
	if err != nil {
		if httperr.Business(c, err) {
			return
		}
		httperr.Store(c, err)
		return
	}

	if !res.SlotMarked() {
		c.Header(HeaderSlotMarked, "false")
	}

	httpresp.OK(c, res.Appointment)
}

// ======================================================
// CONFIRM
// ======================================================

func (h *AppointmentHandler) Confirm(c *gin.Context) {
	var req ConfirmAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.InvalidBody(c, err)
		return
	}

	ap, err := h.confirm.Execute(c.Request.Context(), value(req.AppointmentID.Ptr()))
	if err != nil {
		httperr.Store(c, err)
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// RESCHEDULE
// ======================================================

func (h *AppointmentHandler) Reschedule(c *gin.Context) {
	var req RescheduleAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.InvalidBody(c, err)
		return
	}

	ap, err := h.reschedule.Execute(c.Request.Context(), ucAppointment.RescheduleAppointmentInput{
		AppointmentID: value(req.AppointmentID.Ptr()),
		Date:          req.Date,
		Time:          req.Time,
	})
	if err != nil {
		httperr.Store(c, err)
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// TODAY
// ======================================================

func (h *AppointmentHandler) ListToday(c *gin.Context) {
	list, err := h.listToday.Execute(c.Request.Context(), c.Param("clinica_id"))
	if err != nil {
		httperr.Store(c, err)
		return
	}

	httpresp.List(c, list)
}

// value devolve o zero para campo ausente; id 0 não casa com nenhuma linha.
func value[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
