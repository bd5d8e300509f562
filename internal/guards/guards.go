// Package guards holds the operational assertions that make specific
// anti-patterns unshippable: silent fallbacks, synthesized defaults,
// policy generation without tags and DNA without explanation. Every guard
// writes an ANALYSIS_FAILED audit entry first and then fails
// unconditionally; there is no code path on which a guard returns nil.
package guards

import (
	"renovation-core/internal/audit"
	"renovation-core/internal/common/errors"
)

// NoFallback fails the request: some component was about to substitute a
// fallback value for missing data.
func NoFallback(log *audit.Logger, requestID, inputHash, component, detail string) error {
	violation := errors.NewGuardViolation(errors.ErrCodeGuardFallback, component, detail)
	log.Log(audit.EventAnalysisFailed, inputHash,
		audit.WithRequestID(requestID),
		audit.WithErrorMessage(violation.Error()),
	)
	return violation
}

// NoDefaultValue fails the request: some component was about to synthesize
// a default where the pipeline requires confirmed data.
func NoDefaultValue(log *audit.Logger, requestID, inputHash, component, detail string) error {
	violation := errors.NewGuardViolation(errors.ErrCodeGuardDefaultValue, component, detail)
	log.Log(audit.EventAnalysisFailed, inputHash,
		audit.WithRequestID(requestID),
		audit.WithErrorMessage(violation.Error()),
	)
	return violation
}

// TagsRequiredForPolicy fails the request: policy generation was attempted
// with an empty tag set.
func TagsRequiredForPolicy(log *audit.Logger, requestID, inputHash, detail string) error {
	violation := errors.NewGuardViolation(errors.ErrCodeGuardPolicyNoTags, "policy", detail)
	log.Log(audit.EventAnalysisFailed, inputHash,
		audit.WithRequestID(requestID),
		audit.WithErrorMessage(violation.Error()),
	)
	return violation
}

// ExplainRequiredForDNA fails the request: a DNA type was about to ship
// without an explanation.
func ExplainRequiredForDNA(log *audit.Logger, requestID, inputHash, detail string) error {
	violation := errors.NewGuardViolation(errors.ErrCodeGuardDNANoExplain, "dna", detail)
	log.Log(audit.EventAnalysisFailed, inputHash,
		audit.WithRequestID(requestID),
		audit.WithErrorMessage(violation.Error()),
	)
	return violation
}
