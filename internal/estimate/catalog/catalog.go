// Package catalog provides the strict price/labor accessors. Neither
// lookup ever returns a not-found sentinel or a zero value: absence of
// data and non-positive data are both errors, which makes a zero-cost
// line structurally unrepresentable downstream.
package catalog

import (
	"context"

	"renovation-core/internal/models"
)

// Catalog resolves material prices and labor rates. Implementations must
// uphold the strict contract: a returned result always carries positive
// values.
type Catalog interface {
	MaterialPrice(ctx context.Context, req models.MaterialRequest) (models.MaterialPriceResult, error)
	LaborRate(ctx context.Context, req models.LaborRequest) (models.LaborRateResult, error)
}
