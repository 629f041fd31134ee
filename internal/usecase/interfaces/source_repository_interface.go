package interfaces

import (
	"context"
	"mollie_checkout/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// ISourceRepository abstracts persistence of payment sources attached to orders.
type ISourceRepository interface {
	Create(ctx context.Context, s entities.Source) (entities.Source, error)
	// ListByTypeAndReference returns every source matching (source type, reference), across orders.
	ListByTypeAndReference(ctx context.Context, sourceTypeCode, reference string) ([]entities.Source, error)
	// GetForOrder returns a zero Source when the order has no matching source.
	GetForOrder(ctx context.Context, orderNumber, sourceTypeCode, reference string) (entities.Source, error)
	// Debit adds amount to amount_debited and appends a debit transaction. It does not
	// guard against debiting the same reference twice.
	Debit(ctx context.Context, sourceID string, amount decimal.Decimal, reference, status string) (entities.Source, error)
}

// ISourceTypeRepository get-or-creates source types keyed by code.
type ISourceTypeRepository interface {
	// GetOrCreate only uses name when the code does not exist yet.
	GetOrCreate(ctx context.Context, code, name string) (entities.SourceType, error)
}
