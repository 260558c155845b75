package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClinicID *uint   `gorm:"column:clinica_id;not null;index:idx_turnos_clinica_fecha,priority:1" json:"clinica_id"`
	Clinic   *Clinic `gorm:"foreignKey:ClinicID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	ClientID uint    `gorm:"column:cliente_id;not null" json:"cliente_id"`
	Client   *Client `gorm:"foreignKey:ClientID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Date Date      `gorm:"column:fecha;not null;index:idx_turnos_clinica_fecha,priority:2" json:"fecha"`
	Time ClockTime `gorm:"column:hora;not null" json:"hora"`

	Status string `gorm:"column:estado;size:20;default:'pendiente'" json:"estado"`

	CreatedAt time.Time `json:"created_at"`
}

func (Appointment) TableName() string {
	return "turnos"
}
