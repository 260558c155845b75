package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/clinic-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

type ClinicHandler struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewClinicHandler(repo domain.Repository, audit *audit.Dispatcher) *ClinicHandler {
	return &ClinicHandler{repo: repo, audit: audit}
}

type CreateClinicRequest struct {
	Name          *string `json:"nombre"`
	WhatsAppPhone *string `json:"telefono_whatsapp"`
}

func (h *ClinicHandler) Create(c *gin.Context) {
	var req CreateClinicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.InvalidBody(c, err)
		return
	}

	clinic := models.Clinic{
		Name:          req.Name,
		WhatsAppPhone: req.WhatsAppPhone,
	}

	if err := h.repo.CreateClinic(c.Request.Context(), &clinic); err != nil {
		httperr.Store(c, err)
		return
	}

	h.audit.Dispatch(audit.Event{
		ClinicID: clinic.ID,
		Action:   audit.ActionClinicCreated,
		Entity:   "clinica",
		EntityID: &clinic.ID,
	})

	httpresp.OK(c, clinic)
}
