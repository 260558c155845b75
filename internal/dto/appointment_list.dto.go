package dto

import (
	"time"

	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

type ClientSummary struct {
	Name  *string `json:"nombre"`
	Phone *string `json:"telefono"`
}

// TodayAppointmentDTO é uma linha de turnos com o cliente embutido em
// "clientes".
type TodayAppointmentDTO struct {
	ID        uint             `json:"id"`
	ClinicID  *uint            `json:"clinica_id"`
	ClientID  uint             `json:"cliente_id"`
	Date      models.Date      `json:"fecha"`
	Time      models.ClockTime `json:"hora"`
	Status    string           `json:"estado"`
	CreatedAt time.Time        `json:"created_at"`
	Client    *ClientSummary   `json:"clientes"`
}
