package appointment

import "github.com/BruksfildServices01/clinic-scheduler/internal/models"

type SlotInput struct {
	Time      models.ClockTime
	Available *bool
}

type LoadSlotsInput struct {
	ClinicID *uint
	Date     models.Date
	Slots    []SlotInput
}

// Rows monta as linhas do upsert. Horário sem flag explícita fica
// disponível.
func (in LoadSlotsInput) Rows() []models.Availability {
	var clinicID uint
	if in.ClinicID != nil {
		clinicID = *in.ClinicID
	}

	rows := make([]models.Availability, 0, len(in.Slots))
	for _, s := range in.Slots {
		available := true
		if s.Available != nil {
			available = *s.Available
		}
		rows = append(rows, models.Availability{
			ClinicID:  clinicID,
			Date:      in.Date,
			Time:      s.Time,
			Available: available,
		})
	}
	return rows
}
