package interfaces

import (
	"context"

	"cotizador3d/internal/domain/entities"
)

// IQuotationRepository abstracts DynamoDB persistence for quotations.
//
// Contract:
//   - Create writes the header and its breakdown atomically; neither row may
//     exist without the other.
//   - GetByID returns zero values (no error) when the id is unknown.
//   - List is ordered by creation time, newest first.
//   - Delete removes the breakdown row before the header row, atomically.
type IQuotationRepository interface {
	Create(ctx context.Context, q entities.Quotation, b entities.CostBreakdown) error
	GetByID(ctx context.Context, id string) (entities.Quotation, entities.CostBreakdown, error)
	List(ctx context.Context) ([]entities.QuotationSummary, error)
	Delete(ctx context.Context, id string) error
}
