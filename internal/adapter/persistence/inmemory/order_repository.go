package inmemory

import (
	"context"
	"errors"
	"mollie_checkout/internal/domain/entities"
	"mollie_checkout/internal/usecase/interfaces"
	"slices"
	"sync"
	"time"
)

var ErrOrderAlreadyExists = errors.New("order already exists")

// OrderRepository keeps orders in memory. It backs the service with STORE_BACKEND=memory
// and in tests.
type OrderRepository struct {
	mu     sync.RWMutex
	orders map[string]entities.Order
}

var _ interfaces.IOrderRepository = (*OrderRepository)(nil)

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{orders: make(map[string]entities.Order)}
}

func (r *OrderRepository) Create(_ context.Context, o entities.Order) (entities.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.orders[o.Number]; exists {
		return entities.Order{}, ErrOrderAlreadyExists
	}
	r.orders[o.Number] = cloneOrder(o)
	return o, nil
}

func (r *OrderRepository) GetByNumber(_ context.Context, number string) (entities.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	o, ok := r.orders[number]
	if !ok {
		return entities.Order{}, nil
	}
	return cloneOrder(o), nil
}

func (r *OrderRepository) UpdateStatus(_ context.Context, number string, status string, note entities.OrderNote) (entities.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	o, ok := r.orders[number]
	if !ok {
		return entities.Order{}, nil
	}
	o.Status = status
	o.Notes = append(slices.Clone(o.Notes), note)
	o.UpdatedAt = time.Now().UTC()
	r.orders[number] = o
	return cloneOrder(o), nil
}

func cloneOrder(o entities.Order) entities.Order {
	o.Lines = slices.Clone(o.Lines)
	o.Notes = slices.Clone(o.Notes)
	return o
}
