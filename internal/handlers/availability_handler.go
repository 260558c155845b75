package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
	ucAppointment "github.com/BruksfildServices01/clinic-scheduler/internal/usecase/appointment"
)

type AvailabilityHandler struct {
	get  *ucAppointment.GetAvailability
	load *ucAppointment.LoadAvailability
}

func NewAvailabilityHandler(
	get *ucAppointment.GetAvailability,
	load *ucAppointment.LoadAvailability,
) *AvailabilityHandler {
	return &AvailabilityHandler{get: get, load: load}
}

type SlotConfig struct {
	Time      string `json:"hora"`
	Available *bool  `json:"disponible"`
}

type LoadAvailabilityRequest struct {
	ClinicID *ID          `json:"clinica_id"`
	Date     string       `json:"fecha"`
	Slots    []SlotConfig `json:"slots"`
}

// List devolve os horários livres de ?clinica_id= em ?fecha=, por hora.
func (h *AvailabilityHandler) List(c *gin.Context) {
	slots, err := h.get.Execute(
		c.Request.Context(),
		c.Query("clinica_id"),
		c.Query("fecha"),
	)
	if err != nil {
		httperr.Store(c, err)
		return
	}

	httpresp.List(c, slots)
}

func (h *AvailabilityHandler) Load(c *gin.Context) {
	var req LoadAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.InvalidBody(c, err)
		return
	}

	in := domain.LoadSlotsInput{
		ClinicID: req.ClinicID.Ptr(),
		Date:     models.Date(req.Date),
		Slots:    make([]domain.SlotInput, 0, len(req.Slots)),
	}
	for _, s := range req.Slots {
		in.Slots = append(in.Slots, domain.SlotInput{
			Time:      models.ClockTime(s.Time),
			Available: s.Available,
		})
	}

	slots, err := h.load.Execute(c.Request.Context(), in)
	if err != nil {
		httperr.Store(c, err)
		return
	}

	httpresp.List(c, slots)
}
