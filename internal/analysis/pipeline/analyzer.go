// Package pipeline orchestrates the decision pipeline: input guard, tag
// confirmation, priority resolution, fan-out to process/policy/dna
// mapping, explanation, hashing and audit. All collaborators arrive by
// dependency injection; the pipeline holds no global state.
package pipeline

import (
	"context"
	"time"

	"renovation-core/internal/analysis/dna"
	"renovation-core/internal/analysis/explain"
	"renovation-core/internal/analysis/inputguard"
	"renovation-core/internal/analysis/policy"
	"renovation-core/internal/analysis/processmap"
	"renovation-core/internal/analysis/tagconfirm"
	"renovation-core/internal/analysis/tagpriority"
	"renovation-core/internal/audit"
	"renovation-core/internal/common/errors"
	"renovation-core/internal/common/logger"
	"renovation-core/internal/common/metrics"
	"renovation-core/internal/guards"
	"renovation-core/internal/models"
	"renovation-core/internal/questionbank"
	"renovation-core/internal/repro"
)

// Analyzer runs the full analysis for one request. Safe for concurrent
// use: per-request state lives on the stack and the audit log is
// append-only.
type Analyzer struct {
	confirmer *tagconfirm.Confirmer
	bank      questionbank.Bank
	audit     *audit.Logger
	log       logger.Logger
}

// New wires an analyzer from its collaborators.
func New(confirmer *tagconfirm.Confirmer, bank questionbank.Bank, auditLog *audit.Logger, log logger.Logger) *Analyzer {
	return &Analyzer{
		confirmer: confirmer,
		bank:      bank,
		audit:     auditLog,
		log:       log.WithFields(map[string]interface{}{"component": "pipeline"}),
	}
}

// analysisInput is the canonical hashed payload. Field order does not
// matter; hashing canonicalizes keys.
type analysisInput struct {
	BasicInfo models.BasicInfo `json:"basicInfo"`
	Answers   models.Answers   `json:"answers"`
}

// Analyze runs the pipeline. On any failure an ANALYSIS_FAILED audit entry
// is written and no partial result is returned.
func (a *Analyzer) Analyze(ctx context.Context, basicInfo models.BasicInfo, answers models.Answers) (*models.AnalysisResult, error) {
	start := time.Now()

	inputHash, err := repro.Hash(analysisInput{BasicInfo: basicInfo, Answers: answers})
	if err != nil {
		return nil, err
	}

	requested := a.audit.Log(audit.EventAnalysisRequested, inputHash)
	requestID := requested.RequestID

	result, err := a.run(ctx, basicInfo, answers, requestID, inputHash)
	if err != nil {
		a.audit.Log(audit.EventAnalysisFailed, inputHash,
			audit.WithRequestID(requestID),
			audit.WithErrorMessage(err.Error()),
		)
		metrics.AnalysesFailed.WithLabelValues(string(errors.CodeOf(err))).Inc()
		a.log.Error("analysis failed", map[string]interface{}{
			"requestId": requestID,
			"inputHash": inputHash,
			"error":     err.Error(),
		})
		return nil, err
	}

	a.audit.Log(audit.EventAnalysisCompleted, inputHash,
		audit.WithRequestID(requestID),
		audit.WithOutputHash(result.OutputHash),
	)
	metrics.AnalysesCompleted.Inc()
	metrics.AnalysisDuration.Observe(time.Since(start).Seconds())
	a.log.Info("analysis completed", map[string]interface{}{
		"requestId":  requestID,
		"inputHash":  inputHash,
		"outputHash": result.OutputHash,
		"tagCount":   len(result.Tags.Tags),
	})

	return result, nil
}

func (a *Analyzer) run(ctx context.Context, basicInfo models.BasicInfo, answers models.Answers, requestID, inputHash string) (*models.AnalysisResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := inputguard.AssertIntegrity(basicInfo, answers, a.bank); err != nil {
		return nil, err
	}

	confirmed, err := a.confirmer.Confirm(answers, basicInfo)
	if err != nil {
		return nil, err
	}

	resolved := tagpriority.Resolve(confirmed)

	if len(resolved.Tags) == 0 {
		// Unreachable by construction: the confirmer rejects empty sets
		// and the resolver keeps one member per group. The guard keeps it
		// unshippable if either ever changes.
		return nil, guards.TagsRequiredForPolicy(a.audit, requestID, inputHash,
			"priority resolution produced an empty tag set")
	}

	changes := processmap.Map(resolved)

	policies := models.PolicySet{
		Material:    policy.MaterialPolicies(resolved),
		Grade:       policy.GradePolicies(resolved),
		Contingency: policy.ContingencyPolicies(resolved),
	}

	profile := dna.Determine(resolved)

	explanation := explain.Build(resolved, changes, basicInfo)
	if len(explanation.TagReasons) == 0 {
		return nil, guards.ExplainRequiredForDNA(a.audit, requestID, inputHash,
			"no tag produced an explanation, profile cannot ship unexplained")
	}

	result := &models.AnalysisResult{
		Tags:        resolved,
		Changes:     changes,
		Policies:    policies,
		DNA:         profile,
		Explanation: explanation,
		InputHash:   inputHash,
	}

	outputHash, err := repro.Hash(struct {
		Tags        models.PersonalityTags `json:"tags"`
		Changes     models.ProcessChanges  `json:"changes"`
		Policies    models.PolicySet       `json:"policies"`
		DNA         models.DNAType         `json:"dna"`
		Explanation models.Explanation     `json:"explanation"`
	}{result.Tags, result.Changes, result.Policies, result.DNA, result.Explanation})
	if err != nil {
		return nil, err
	}
	result.OutputHash = outputHash

	return result, nil
}
