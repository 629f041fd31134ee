package inmemory

import (
	"context"
	"mollie_checkout/internal/domain/entities"
	"mollie_checkout/internal/usecase/interfaces"
	"slices"
	"sync"
)

type PaymentEventRepository struct {
	mu         sync.RWMutex
	eventTypes map[string]entities.PaymentEventType
	events     []entities.PaymentEvent
	quantities []entities.PaymentEventQuantity
}

var _ interfaces.IPaymentEventRepository = (*PaymentEventRepository)(nil)

func NewPaymentEventRepository() *PaymentEventRepository {
	return &PaymentEventRepository{eventTypes: make(map[string]entities.PaymentEventType)}
}

func (r *PaymentEventRepository) GetOrCreateEventType(_ context.Context, name string) (entities.PaymentEventType, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if et, ok := r.eventTypes[name]; ok {
		return et, nil
	}
	et := entities.PaymentEventType{Name: name}
	r.eventTypes[name] = et
	return et, nil
}

func (r *PaymentEventRepository) CreateEvent(_ context.Context, e entities.PaymentEvent) (entities.PaymentEvent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.events = append(r.events, e)
	return e, nil
}

func (r *PaymentEventRepository) CreateEventQuantity(_ context.Context, q entities.PaymentEventQuantity) (entities.PaymentEventQuantity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.quantities = append(r.quantities, q)
	return q, nil
}

func (r *PaymentEventRepository) ExistsForReference(_ context.Context, reference, eventType string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, e := range r.events {
		if e.Reference == reference && e.EventType == eventType {
			return true, nil
		}
	}
	return false, nil
}

// Events returns the recorded events in insertion order.
func (r *PaymentEventRepository) Events() []entities.PaymentEvent {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.events)
}

// Quantities returns the recorded quantity rows in insertion order.
func (r *PaymentEventRepository) Quantities() []entities.PaymentEventQuantity {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.quantities)
}
