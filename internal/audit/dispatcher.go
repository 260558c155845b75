package audit

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

const (
	ActionClinicCreated          = "clinica_creada"
	ActionAppointmentCreated     = "turno_creado"
	ActionAppointmentConflict    = "turno_conflicto"
	ActionAppointmentConfirmed   = "turno_confirmado"
	ActionAppointmentRescheduled = "turno_reagendado"
)

type Event struct {
	ClinicID   uint      `json:"clinica_id"`
	Action     string    `json:"action"`
	Entity     string    `json:"entity"`
	EntityID   *uint     `json:"entity_id,omitempty"`
	Metadata   any       `json:"metadata,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

type Publisher interface {
	Publish(ctx context.Context, ev Event) error
}

type Dispatcher struct {
	publisher Publisher
	log       *zap.Logger
	queue     chan Event
	done      chan struct{}
	closeOnce sync.Once
}

func NewDispatcher(publisher Publisher, log *zap.Logger, size int) *Dispatcher {
	if size <= 0 {
		size = 100
	}

	d := &Dispatcher{
		publisher: publisher,
		log:       log,
		queue:     make(chan Event, size),
		done:      make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)

	for ev := range d.queue {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := d.publisher.Publish(ctx, ev); err != nil {
			d.log.Warn("event publish failed",
				zap.String("action", ev.Action),
				zap.Error(err),
			)
		}
		cancel()
	}
}

// Dispatch nunca bloqueia: fila cheia → evento descartado (nunca quebrar
// API). Dispatcher nil descarta tudo.
func (d *Dispatcher) Dispatch(ev Event) {
	if d == nil {
		return
	}
	if ev.OccurredAt.IsZero() {
		ev.OccurredAt = time.Now().UTC()
	}

	select {
	case d.queue <- ev:
	default:
		d.log.Warn("event queue full, dropping event", zap.String("action", ev.Action))
	}
}

// Close fecha a fila e espera esvaziar. Não chamar Dispatch depois de
// Close.
func (d *Dispatcher) Close() {
	d.closeOnce.Do(func() {
		close(d.queue)
	})
	<-d.done
}
