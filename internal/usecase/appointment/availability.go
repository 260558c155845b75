package appointment

import (
	"context"
	"sort"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

type GetAvailability struct {
	repo domain.Repository
}

func NewGetAvailability(repo domain.Repository) *GetAvailability {
	return &GetAvailability{repo: repo}
}

// Execute lista os horários livres da clínica na data, do mais cedo ao mais tarde.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	clinicID string,
	date string,
) ([]models.Availability, error) {
	return uc.repo.ListAvailableSlots(ctx, clinicID, date)
}

type LoadAvailability struct {
	repo domain.Repository
}

func NewLoadAvailability(repo domain.Repository) *LoadAvailability {
	return &LoadAvailability{repo: repo}
}

// Execute abre ou fecha os horários de uma clínica/data e devolve as
// linhas gravadas, por hora.
func (uc *LoadAvailability) Execute(
	ctx context.Context,
	in domain.LoadSlotsInput,
) ([]models.Availability, error) {

	rows := in.Rows()
	if err := uc.repo.UpsertSlots(ctx, rows); err != nil {
		return nil, err
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Time < rows[j].Time
	})

	return rows, nil
}
