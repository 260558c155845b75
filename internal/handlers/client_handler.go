package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

type ClientHandler struct {
	repo domain.Repository
}

func NewClientHandler(repo domain.Repository) *ClientHandler {
	return &ClientHandler{repo: repo}
}

type RegisterClientRequest struct {
	ClinicID *ID     `json:"clinica_id"`
	Name     *string `json:"nombre"`
	Phone    *string `json:"telefono"`
	Email    *string `json:"email"`
}

// ======================================================
// REGISTER (upsert por telefone)
// ======================================================
func (h *ClientHandler) Register(c *gin.Context) {
	var req RegisterClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.InvalidBody(c, err)
		return
	}

	client := models.Client{
		ClinicID: req.ClinicID.Ptr(),
		Name:     req.Name,
		Phone:    req.Phone,
		Email:    req.Email,
	}

	if err := h.repo.UpsertClient(c.Request.Context(), &client); err != nil {
		httperr.Store(c, err)
		return
	}

	httpresp.OK(c, client)
}
