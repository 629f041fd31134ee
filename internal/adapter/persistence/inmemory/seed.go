package inmemory

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mollie_checkout/internal/domain/entities"
	"mollie_checkout/internal/usecase/interfaces"
	"os"
	"time"

	"github.com/google/uuid"
)

// Seed is the STORE_SEED_FILE document: the orders and payment sources the
// in-memory stores start with.
//
//	{
//	  "orders":  [{"number": "100023", "status": "Pending", "currency": "EUR",
//	               "lines": [{"id": "1", "title": "Mug", "quantity": 2}]}],
//	  "sources": [{"order_number": "100023", "source_type_code": "mollie[ideal]",
//	               "reference": "tr_mock1", "currency": "EUR"}]
//	}
type Seed struct {
	Orders  []entities.Order  `json:"orders"`
	Sources []entities.Source `json:"sources"`
}

func LoadSeedFile(path string) (Seed, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Seed{}, fmt.Errorf("read seed file: %w", err)
	}
	var seed Seed
	if err := json.Unmarshal(raw, &seed); err != nil {
		return Seed{}, fmt.Errorf("decode seed file %s: %w", path, err)
	}
	return seed, nil
}

// Apply creates every order, then every source. Sources must reference a
// seeded order; sources without an id get a generated one.
func (s Seed) Apply(ctx context.Context, orders interfaces.IOrderRepository, sources interfaces.ISourceRepository) error {
	now := time.Now().UTC()
	known := make(map[string]struct{}, len(s.Orders))

	for _, o := range s.Orders {
		if o.Number == "" {
			return errors.New("seed order without number")
		}
		if o.CreatedAt.IsZero() {
			o.CreatedAt = now
		}
		if o.UpdatedAt.IsZero() {
			o.UpdatedAt = o.CreatedAt
		}
		if _, err := orders.Create(ctx, o); err != nil {
			return fmt.Errorf("seed order %s: %w", o.Number, err)
		}
		known[o.Number] = struct{}{}
	}

	for _, src := range s.Sources {
		if _, ok := known[src.OrderNumber]; !ok {
			return fmt.Errorf("seed source %s: unknown order %q", src.Reference, src.OrderNumber)
		}
		if src.ID == "" {
			src.ID = uuid.NewString()
		}
		if _, err := sources.Create(ctx, src); err != nil {
			return fmt.Errorf("seed source %s: %w", src.Reference, err)
		}
	}
	return nil
}
