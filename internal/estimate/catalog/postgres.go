// internal/estimate/catalog/postgres.go
package catalog

import (
	"context"
	"database/sql"
	stderrors "errors"
	"fmt"

	"renovation-core/internal/common/database"
	"renovation-core/internal/common/errors"
	"renovation-core/internal/common/metrics"
	"renovation-core/internal/models"
)

// PostgresCatalog resolves prices and rates from the pricing database.
// Every failure path returns an EstimateError classified as
// MATERIAL_OR_LABOR_VALIDATION; there is no sql.ErrNoRows leak and no
// zero-value return.
type PostgresCatalog struct {
	client *database.PostgresClient
}

func NewPostgresCatalog(client *database.PostgresClient) *PostgresCatalog {
	return &PostgresCatalog{client: client}
}

const materialPriceQuery = `
SELECT unit_price, unit
FROM material_prices
WHERE category_path = $1 AND is_active = true AND is_standard = true`

// MaterialPrice resolves the active standard price for a category path.
func (c *PostgresCatalog) MaterialPrice(ctx context.Context, req models.MaterialRequest) (models.MaterialPriceResult, error) {
	var price float64
	var unit string

	err := c.client.QueryRow(ctx, materialPriceQuery, req.CategoryPath).Scan(&price, &unit)
	if err != nil {
		metrics.CatalogLookups.WithLabelValues("material", "miss").Inc()
		if stderrors.Is(err, sql.ErrNoRows) {
			return models.MaterialPriceResult{}, errors.NewMaterialOrLaborError(
				errors.ErrCodeMaterialNotFound, "",
				fmt.Sprintf("no active standard price for category %q", req.CategoryPath))
		}
		return models.MaterialPriceResult{}, errors.NewMaterialOrLaborError(
			errors.ErrCodeCatalogQueryFailed, "",
			fmt.Sprintf("material price query for %q: %v", req.CategoryPath, err))
	}

	if price <= 0 {
		metrics.CatalogLookups.WithLabelValues("material", "invalid").Inc()
		return models.MaterialPriceResult{}, errors.NewMaterialOrLaborError(
			errors.ErrCodeMaterialNonPositive, "",
			fmt.Sprintf("price for category %q resolved to %v", req.CategoryPath, price))
	}

	metrics.CatalogLookups.WithLabelValues("material", "hit").Inc()
	return models.MaterialPriceResult{
		CategoryPath: req.CategoryPath,
		UnitPrice:    price,
		Unit:         unit,
	}, nil
}

const laborProductivityQuery = `
SELECT daily_output, crew_size
FROM labor_productivity
WHERE trade = $1 AND process_id = $2`

const laborRateQuery = `
SELECT rate_per_person_day
FROM labor_rates
WHERE trade = $1`

// LaborRate resolves productivity and cost records for a trade on a
// process.
func (c *PostgresCatalog) LaborRate(ctx context.Context, req models.LaborRequest) (models.LaborRateResult, error) {
	var dailyOutput float64
	var crewSize int

	err := c.client.QueryRow(ctx, laborProductivityQuery, req.Trade, string(req.ProcessID)).Scan(&dailyOutput, &crewSize)
	if err != nil {
		metrics.CatalogLookups.WithLabelValues("labor", "miss").Inc()
		if stderrors.Is(err, sql.ErrNoRows) {
			return models.LaborRateResult{}, errors.NewMaterialOrLaborError(
				errors.ErrCodeLaborNotFound, string(req.ProcessID),
				fmt.Sprintf("no productivity record for trade %q on process %q", req.Trade, req.ProcessID))
		}
		return models.LaborRateResult{}, errors.NewMaterialOrLaborError(
			errors.ErrCodeCatalogQueryFailed, string(req.ProcessID),
			fmt.Sprintf("labor productivity query for trade %q: %v", req.Trade, err))
	}

	var rate float64
	err = c.client.QueryRow(ctx, laborRateQuery, req.Trade).Scan(&rate)
	if err != nil {
		metrics.CatalogLookups.WithLabelValues("labor", "miss").Inc()
		if stderrors.Is(err, sql.ErrNoRows) {
			return models.LaborRateResult{}, errors.NewMaterialOrLaborError(
				errors.ErrCodeLaborNotFound, string(req.ProcessID),
				fmt.Sprintf("no cost record for trade %q", req.Trade))
		}
		return models.LaborRateResult{}, errors.NewMaterialOrLaborError(
			errors.ErrCodeCatalogQueryFailed, string(req.ProcessID),
			fmt.Sprintf("labor rate query for trade %q: %v", req.Trade, err))
	}

	if dailyOutput <= 0 || crewSize <= 0 || rate <= 0 {
		metrics.CatalogLookups.WithLabelValues("labor", "invalid").Inc()
		return models.LaborRateResult{}, errors.NewMaterialOrLaborError(
			errors.ErrCodeLaborNonPositive, string(req.ProcessID),
			fmt.Sprintf("labor record for trade %q has non-positive values (dailyOutput=%v crewSize=%d rate=%v)",
				req.Trade, dailyOutput, crewSize, rate))
	}

	metrics.CatalogLookups.WithLabelValues("labor", "hit").Inc()
	return models.LaborRateResult{
		Trade:            req.Trade,
		DailyOutput:      dailyOutput,
		CrewSize:         crewSize,
		RatePerPersonDay: rate,
	}, nil
}
