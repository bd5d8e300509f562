// Package estimate computes concrete material and labor costs for the
// resolved required processes. The engine is strict end to end: the first
// missing or non-positive catalog value aborts the whole computation and
// no partial estimate is ever returned. Calculate is the only exported
// operation; the strict per-line resolvers are package-private so nothing
// outside the engine can reach them.
package estimate

import (
	"context"
	"math"
	"time"

	"renovation-core/internal/audit"
	"renovation-core/internal/common/errors"
	"renovation-core/internal/common/logger"
	"renovation-core/internal/common/metrics"
	"renovation-core/internal/estimate/catalog"
	"renovation-core/internal/models"
	"renovation-core/internal/repro"
)

// Options carries everything one estimate computation needs.
type Options struct {
	AreaPyeong float64               `json:"areaPyeong"`
	Changes    models.ProcessChanges `json:"changes"`
	RequestID  string                `json:"requestId,omitempty"`
}

// Engine aggregates strict catalog lookups into a final estimate.
type Engine struct {
	catalog         catalog.Catalog
	vatRate         float64
	contingencyRate float64
	audit           *audit.Logger
	log             logger.Logger
}

// New wires an engine from its collaborators.
func New(cat catalog.Catalog, vatRate, contingencyRate float64, auditLog *audit.Logger, log logger.Logger) *Engine {
	return &Engine{
		catalog:         cat,
		vatRate:         vatRate,
		contingencyRate: contingencyRate,
		audit:           auditLog,
		log:             log.WithFields(map[string]interface{}{"component": "estimate"}),
	}
}

// estimateInput is the hashed payload. RequestID is correlation identity,
// not input: two calls with the same area and changes must hash
// identically regardless of who asked.
type estimateInput struct {
	AreaPyeong float64               `json:"areaPyeong"`
	Changes    models.ProcessChanges `json:"changes"`
}

// Calculate resolves required processes into priced blocks and totals.
// Fail-fast: the first lookup failure aborts and is classified for the
// boundary via the error's FailedAt stage.
func (e *Engine) Calculate(ctx context.Context, opts Options) (*models.FinalEstimate, error) {
	start := time.Now()

	inputHash, err := repro.Hash(estimateInput{AreaPyeong: opts.AreaPyeong, Changes: opts.Changes})
	if err != nil {
		return nil, err
	}

	requested := e.audit.Log(audit.EventEstimateRequested, inputHash,
		audit.WithRequestID(opts.RequestID))
	requestID := requested.RequestID

	result, err := e.calculate(ctx, opts)
	if err != nil {
		failedAt := string(errors.FailedAtEngine)
		if est, ok := errors.IsEstimate(err); ok {
			failedAt = string(est.FailedAt)
		}
		e.audit.Log(audit.EventEstimateFailed, inputHash,
			audit.WithRequestID(requestID),
			audit.WithErrorMessage(err.Error()),
		)
		metrics.EstimatesFailed.WithLabelValues(failedAt).Inc()
		e.log.Error("estimate failed", map[string]interface{}{
			"requestId": requestID,
			"failedAt":  failedAt,
			"error":     err.Error(),
		})
		return nil, err
	}

	outputHash, err := repro.Hash(result)
	if err != nil {
		return nil, err
	}
	e.audit.Log(audit.EventEstimateCompleted, inputHash,
		audit.WithRequestID(requestID),
		audit.WithOutputHash(outputHash),
	)
	metrics.EstimatesCompleted.Inc()
	metrics.EstimateDuration.Observe(time.Since(start).Seconds())
	e.log.Info("estimate completed", map[string]interface{}{
		"requestId":  requestID,
		"grandTotal": result.GrandTotal,
		"blocks":     len(result.Blocks),
	})

	return result, nil
}

func (e *Engine) calculate(ctx context.Context, opts Options) (*models.FinalEstimate, error) {
	if opts.AreaPyeong <= 0 {
		return nil, errors.NewEngineValidationError(errors.ErrCodeInvalidArea, "",
			"area must be positive")
	}

	required := resolveRequired(opts.Changes.ProcessActions)
	if len(required) == 0 {
		return nil, errors.NewEngineValidationError(errors.ErrCodeNoRequiredProcesses, "",
			"no required process survived resolution")
	}

	tiers := tierByProcess(opts.Changes.TierRecommendations)

	var blocks []models.ProcessEstimateBlock
	var materialTotal, laborTotal float64

	for _, processID := range required {
		spec, ok := boq[processID]
		if !ok {
			return nil, errors.NewEngineValidationError(errors.ErrCodeUnknownProcess, string(processID),
				"process has no bill of quantities")
		}

		block, err := e.priceBlock(ctx, processID, spec, opts.AreaPyeong, tiers[processID])
		if err != nil {
			return nil, err
		}

		blocks = append(blocks, block)
		materialTotal += block.MaterialSubtotal
		laborTotal += block.LaborSubtotal
	}

	subtotal := materialTotal + laborTotal
	contingency := subtotal * e.contingencyRate
	vat := (subtotal + contingency) * e.vatRate
	grandTotal := subtotal + contingency + vat

	// Round exactly once, at assembly.
	return &models.FinalEstimate{
		Blocks:        blocks,
		MaterialTotal: round(materialTotal),
		LaborTotal:    round(laborTotal),
		Contingency:   round(contingency),
		VAT:           round(vat),
		GrandTotal:    round(grandTotal),
		PerPyeong:     round(grandTotal / opts.AreaPyeong),
	}, nil
}

// priceBlock resolves one process's bill of quantities against the
// catalog via the strict lookups.
func (e *Engine) priceBlock(ctx context.Context, processID models.ProcessID, spec processSpec, area float64, tier models.Tier) (models.ProcessEstimateBlock, error) {
	grade := gradeSegment[models.TierStandard]
	if seg, ok := gradeSegment[tier]; ok {
		grade = seg
	}

	block := models.ProcessEstimateBlock{ProcessID: processID}

	for _, mat := range spec.materials {
		quantity := mat.qtyPerPyeong * area
		line, err := e.materialLineStrict(ctx, processID, mat.categoryBase+"/"+grade, quantity, mat.unit)
		if err != nil {
			return models.ProcessEstimateBlock{}, err
		}
		block.MaterialLines = append(block.MaterialLines, line)
		block.MaterialSubtotal += line.Amount
	}

	laborLine, err := e.laborLineStrict(ctx, processID, spec.trade, spec.laborQtyPerPyeong*area)
	if err != nil {
		return models.ProcessEstimateBlock{}, err
	}
	block.LaborLine = laborLine
	block.LaborSubtotal = laborLine.Amount

	block.BlockTotal = block.MaterialSubtotal + block.LaborSubtotal
	return block, nil
}

// materialLineStrict resolves one priced material line. Absence and
// non-positive prices surface as errors from the catalog; the engine only
// attributes them to the failing process.
func (e *Engine) materialLineStrict(ctx context.Context, processID models.ProcessID, categoryPath string, quantity float64, unit string) (models.MaterialLine, error) {
	result, err := e.catalog.MaterialPrice(ctx, models.MaterialRequest{
		CategoryPath: categoryPath,
		Quantity:     quantity,
		Unit:         unit,
	})
	if err != nil {
		if est, ok := errors.IsEstimate(err); ok && est.ProcessID == "" {
			return models.MaterialLine{}, est.WithProcess(string(processID))
		}
		return models.MaterialLine{}, err
	}
	if result.UnitPrice <= 0 {
		// A custom catalog broke the strict contract.
		return models.MaterialLine{}, errors.NewMaterialOrLaborError(
			errors.ErrCodeMaterialNonPositive, string(processID),
			"catalog returned a non-positive price without erroring")
	}

	return models.MaterialLine{
		CategoryPath: categoryPath,
		Quantity:     quantity,
		Unit:         unit,
		UnitPrice:    result.UnitPrice,
		Amount:       quantity * result.UnitPrice,
	}, nil
}

// laborLineStrict resolves the labor line for one process. The difficulty
// multiplier comes from the engine's rule table; its absence means one.
func (e *Engine) laborLineStrict(ctx context.Context, processID models.ProcessID, trade string, quantity float64) (models.LaborLine, error) {
	result, err := e.catalog.LaborRate(ctx, models.LaborRequest{
		Trade:     trade,
		ProcessID: processID,
		Quantity:  quantity,
	})
	if err != nil {
		if est, ok := errors.IsEstimate(err); ok && est.ProcessID == "" {
			return models.LaborLine{}, est.WithProcess(string(processID))
		}
		return models.LaborLine{}, err
	}
	if result.DailyOutput <= 0 || result.CrewSize <= 0 || result.RatePerPersonDay <= 0 {
		return models.LaborLine{}, errors.NewMaterialOrLaborError(
			errors.ErrCodeLaborNonPositive, string(processID),
			"catalog returned non-positive labor values without erroring")
	}

	multiplier := 1.0
	if m, ok := difficultyMultipliers[processID]; ok {
		multiplier = m
	}

	laborDays := quantity / result.DailyOutput
	personDays := laborDays * float64(result.CrewSize)
	amount := personDays * result.RatePerPersonDay * multiplier

	return models.LaborLine{
		Trade:      trade,
		PersonDays: personDays,
		Rate:       result.RatePerPersonDay,
		Multiplier: multiplier,
		Amount:     amount,
	}, nil
}

// resolveRequired collapses process actions into the ordered required
// list: required dominates recommend and disable; recommend-only and
// disabled processes are not estimated. Order is first appearance, which
// keeps identical input producing identical block order.
func resolveRequired(actions []models.ProcessAction) []models.ProcessID {
	seen := make(map[models.ProcessID]bool)
	var required []models.ProcessID

	for _, action := range actions {
		if action.Action != models.ActionRequired || seen[action.ProcessID] {
			continue
		}
		seen[action.ProcessID] = true
		required = append(required, action.ProcessID)
	}
	return required
}

func tierByProcess(recs []models.TierRecommendation) map[models.ProcessID]models.Tier {
	tiers := make(map[models.ProcessID]models.Tier, len(recs))
	for _, rec := range recs {
		tiers[rec.ProcessID] = rec.Tier
	}
	return tiers
}

func round(v float64) float64 {
	return math.Round(v)
}
