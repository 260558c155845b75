package models

import "time"

// Cliente da clínica, sem login. O telefone identifica o cliente no upsert
// e o índice único é global, não por clínica.
type Client struct {
	ID       uint    `gorm:"primaryKey" json:"id"`
	ClinicID *uint   `gorm:"column:clinica_id;not null" json:"clinica_id"`
	Clinic   *Clinic `gorm:"foreignKey:ClinicID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Name  *string `gorm:"column:nombre;size:100;not null" json:"nombre"`
	Phone *string `gorm:"column:telefono;size:20;uniqueIndex;not null" json:"telefono"`
	Email *string `gorm:"column:email;size:100" json:"email"`

	CreatedAt time.Time `json:"created_at"`
}

func (Client) TableName() string {
	return "clientes"
}
