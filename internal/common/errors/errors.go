// Package errors provides the structured error taxonomy of the decision
// pipeline: validation failures, estimate failures and operational guard
// violations. Strict services never translate absence into sentinels; they
// return one of these types and callers only add context and rethrow.
package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeBasicInfoMissing    ErrorCode = "BASIC_INFO_MISSING"
	ErrCodeAnswersMissing      ErrorCode = "ANSWERS_MISSING"
	ErrCodeFieldMissing        ErrorCode = "FIELD_MISSING"
	ErrCodeFieldInvalid        ErrorCode = "FIELD_INVALID"
	ErrCodeUnknownQuestion     ErrorCode = "UNKNOWN_QUESTION"
	ErrCodeNoTagsConfirmed     ErrorCode = "NO_TAGS_CONFIRMED"
	ErrCodeSchemaViolation     ErrorCode = "SCHEMA_VIOLATION"
	ErrCodeMaterialNotFound    ErrorCode = "MATERIAL_PRICE_NOT_FOUND"
	ErrCodeMaterialNonPositive ErrorCode = "MATERIAL_PRICE_NON_POSITIVE"
	ErrCodeLaborNotFound       ErrorCode = "LABOR_RATE_NOT_FOUND"
	ErrCodeLaborNonPositive    ErrorCode = "LABOR_RATE_NON_POSITIVE"
	ErrCodeNoRequiredProcesses ErrorCode = "NO_REQUIRED_PROCESSES"
	ErrCodeInvalidArea         ErrorCode = "INVALID_AREA"
	ErrCodeUnknownProcess      ErrorCode = "UNKNOWN_PROCESS"
	ErrCodeCatalogQueryFailed  ErrorCode = "CATALOG_QUERY_FAILED"
	ErrCodeGuardFallback       ErrorCode = "GUARD_FALLBACK_ATTEMPTED"
	ErrCodeGuardDefaultValue   ErrorCode = "GUARD_DEFAULT_VALUE_SYNTHESIZED"
	ErrCodeGuardPolicyNoTags   ErrorCode = "GUARD_POLICY_WITHOUT_TAGS"
	ErrCodeGuardDNANoExplain   ErrorCode = "GUARD_DNA_WITHOUT_EXPLAIN"
)

// FailureStage classifies where an estimate failure happened. The boundary
// uses it to produce a uniform external message for data-quality failures
// while logs keep the detailed reason.
type FailureStage string

const (
	FailedAtMaterialOrLabor FailureStage = "MATERIAL_OR_LABOR_VALIDATION"
	FailedAtEngine          FailureStage = "ENGINE_VALIDATION"
)

// ValidationError reports a malformed or incomplete request. Never retried.
type ValidationError struct {
	Code    ErrorCode `json:"code"`
	Field   string    `json:"field,omitempty"`
	Message string    `json:"message"`
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("ValidationError[%s] %s: %s", e.Code, e.Field, e.Message)
	}
	return fmt.Sprintf("ValidationError[%s]: %s", e.Code, e.Message)
}

// NewValidationError creates a request validation error.
func NewValidationError(code ErrorCode, field, message string) *ValidationError {
	return &ValidationError{Code: code, Field: field, Message: message}
}

// EstimateError reports a failure while resolving or aggregating an
// estimate. FailedAt carries the boundary classification.
type EstimateError struct {
	Code      ErrorCode    `json:"code"`
	ProcessID string       `json:"processId,omitempty"`
	Reason    string       `json:"reason"`
	FailedAt  FailureStage `json:"failedAt"`
}

func (e *EstimateError) Error() string {
	if e.ProcessID != "" {
		return fmt.Sprintf("EstimateError[%s] process=%s failedAt=%s: %s", e.Code, e.ProcessID, e.FailedAt, e.Reason)
	}
	return fmt.Sprintf("EstimateError[%s] failedAt=%s: %s", e.Code, e.FailedAt, e.Reason)
}

// NewMaterialOrLaborError creates an estimate error classified as a
// catalog data-quality failure.
func NewMaterialOrLaborError(code ErrorCode, processID, reason string) *EstimateError {
	return &EstimateError{Code: code, ProcessID: processID, Reason: reason, FailedAt: FailedAtMaterialOrLabor}
}

// NewEngineValidationError creates an estimate error for failures outside
// the price/labor lookups.
func NewEngineValidationError(code ErrorCode, processID, reason string) *EstimateError {
	return &EstimateError{Code: code, ProcessID: processID, Reason: reason, FailedAt: FailedAtEngine}
}

// WithProcess returns a copy of the error attributed to processID. The
// engine uses it to add context while rethrowing lookup failures.
func (e *EstimateError) WithProcess(processID string) *EstimateError {
	clone := *e
	clone.ProcessID = processID
	return &clone
}

// GuardViolation reports that an operational guard fired: a fallback was
// attempted, a default was synthesized, or a prerequisite was missing.
// Always fatal, always logged to the audit trail before being returned.
type GuardViolation struct {
	Code      ErrorCode `json:"code"`
	Component string    `json:"component"`
	Detail    string    `json:"detail"`
}

func (e *GuardViolation) Error() string {
	return fmt.Sprintf("GuardViolation[%s] %s: %s", e.Code, e.Component, e.Detail)
}

// NewGuardViolation creates a guard violation error.
func NewGuardViolation(code ErrorCode, component, detail string) *GuardViolation {
	return &GuardViolation{Code: code, Component: component, Detail: detail}
}

// IsValidation reports whether err (or anything it wraps) is a
// ValidationError.
func IsValidation(err error) bool {
	var v *ValidationError
	return stderrors.As(err, &v)
}

// IsEstimate reports whether err is an EstimateError, returning it.
func IsEstimate(err error) (*EstimateError, bool) {
	var e *EstimateError
	if stderrors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// IsGuardViolation reports whether err is a GuardViolation.
func IsGuardViolation(err error) bool {
	var g *GuardViolation
	return stderrors.As(err, &g)
}

// CodeOf extracts the internal code from any taxonomy error, or
// "INTERNAL_ERROR" for foreign errors.
func CodeOf(err error) ErrorCode {
	var v *ValidationError
	if stderrors.As(err, &v) {
		return v.Code
	}
	var e *EstimateError
	if stderrors.As(err, &e) {
		return e.Code
	}
	var g *GuardViolation
	if stderrors.As(err, &g) {
		return g.Code
	}
	return "INTERNAL_ERROR"
}
