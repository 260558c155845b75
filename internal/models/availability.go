package models

// Availability é um horário agendável da clínica. Chave:
// (clinica_id, fecha, hora).
type Availability struct {
	ClinicID uint    `gorm:"column:clinica_id;primaryKey;autoIncrement:false" json:"clinica_id"`
	Clinic   *Clinic `gorm:"foreignKey:ClinicID;constraint:OnDelete:CASCADE;" json:"-"`

	Date Date      `gorm:"column:fecha;primaryKey" json:"fecha"`
	Time ClockTime `gorm:"column:hora;primaryKey" json:"hora"`

	// sem tag default: o gorm pularia o false explícito no insert
	Available bool `gorm:"column:disponible;not null" json:"disponible"`
}

func (Availability) TableName() string {
	return "disponibilidad"
}
