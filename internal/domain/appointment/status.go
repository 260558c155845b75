package appointment

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	// StatusPending é o default da coluna estado; o serviço nunca o grava.
	StatusPending     Status = "pendiente"
	StatusConfirmed   Status = "confirmado"
	StatusRescheduled Status = "reagendado"
)

// ===============================
// Changes
// ===============================

// Sem máquina de estados: qualquer turno pode ser confirmado ou reagendado,
// o último write vence.

func ConfirmChanges() map[string]any {
	return map[string]any{
		"estado": string(StatusConfirmed),
	}
}

// RescheduleChanges só inclui fecha/hora quando vieram no body; campo
// ausente não toca a coluna. estado vai sempre.
func RescheduleChanges(date, clock *string) map[string]any {
	changes := map[string]any{
		"estado": string(StatusRescheduled),
	}
	if date != nil {
		changes["fecha"] = *date
	}
	if clock != nil {
		changes["hora"] = *clock
	}
	return changes
}
