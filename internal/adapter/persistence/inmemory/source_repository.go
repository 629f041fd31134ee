package inmemory

import (
	"context"
	"errors"
	"mollie_checkout/internal/domain/entities"
	"mollie_checkout/internal/usecase/interfaces"
	"slices"
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

var ErrSourceNotFound = errors.New("source not found")

type SourceRepository struct {
	mu      sync.RWMutex
	sources map[string]entities.Source
	order   []string
}

var _ interfaces.ISourceRepository = (*SourceRepository)(nil)

func NewSourceRepository() *SourceRepository {
	return &SourceRepository{sources: make(map[string]entities.Source)}
}

func (r *SourceRepository) Create(_ context.Context, s entities.Source) (entities.Source, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.sources[s.ID]; !exists {
		r.order = append(r.order, s.ID)
	}
	r.sources[s.ID] = cloneSource(s)
	return s, nil
}

func (r *SourceRepository) ListByTypeAndReference(_ context.Context, sourceTypeCode, reference string) ([]entities.Source, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []entities.Source
	for _, id := range r.order {
		s := r.sources[id]
		if s.SourceTypeCode == sourceTypeCode && s.Reference == reference {
			out = append(out, cloneSource(s))
		}
	}
	return out, nil
}

func (r *SourceRepository) GetForOrder(_ context.Context, orderNumber, sourceTypeCode, reference string) (entities.Source, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.order {
		s := r.sources[id]
		if s.OrderNumber == orderNumber && s.SourceTypeCode == sourceTypeCode && s.Reference == reference {
			return cloneSource(s), nil
		}
	}
	return entities.Source{}, nil
}

func (r *SourceRepository) Debit(_ context.Context, sourceID string, amount decimal.Decimal, reference, status string) (entities.Source, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sources[sourceID]
	if !ok {
		return entities.Source{}, ErrSourceNotFound
	}
	s.AmountDebited = s.AmountDebited.Add(amount)
	s.Transactions = append(slices.Clone(s.Transactions), entities.SourceTransaction{
		Type:      entities.TransactionTypeDebit,
		Amount:    amount,
		Reference: reference,
		Status:    status,
		CreatedAt: time.Now().UTC(),
	})
	r.sources[sourceID] = s
	return cloneSource(s), nil
}

func cloneSource(s entities.Source) entities.Source {
	s.Transactions = slices.Clone(s.Transactions)
	return s
}
