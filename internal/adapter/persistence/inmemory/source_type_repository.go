package inmemory

import (
	"context"
	"mollie_checkout/internal/domain/entities"
	"mollie_checkout/internal/usecase/interfaces"
	"sync"
)

type SourceTypeRepository struct {
	mu    sync.Mutex
	types map[string]entities.SourceType
}

var _ interfaces.ISourceTypeRepository = (*SourceTypeRepository)(nil)

func NewSourceTypeRepository() *SourceTypeRepository {
	return &SourceTypeRepository{types: make(map[string]entities.SourceType)}
}

func (r *SourceTypeRepository) GetOrCreate(_ context.Context, code, name string) (entities.SourceType, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if st, ok := r.types[code]; ok {
		return st, nil
	}
	st := entities.SourceType{Code: code, Name: name}
	r.types[code] = st
	return st, nil
}

func (r *SourceTypeRepository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.types)
}
