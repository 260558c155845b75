package models

import "time"

type Clinic struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Name          *string   `gorm:"column:nombre;size:100;not null" json:"nombre"`
	WhatsAppPhone *string   `gorm:"column:telefono_whatsapp;size:20;not null" json:"telefono_whatsapp"`
	CreatedAt     time.Time `json:"created_at"`
}

func (Clinic) TableName() string {
	return "clinicas"
}
