// Package contract defines the result envelopes an external boundary must
// honor. The core exposes no HTTP itself; this package is the shape an
// out-of-process HTTP layer maps onto status codes.
package contract

import (
	"renovation-core/internal/common/errors"
)

// Status values of the external envelope.
const (
	StatusSuccess        = "SUCCESS"
	StatusEstimateFailed = "ESTIMATE_FAILED"
	StatusInvalidRequest = "INVALID_REQUEST"
	StatusInternalError  = "INTERNAL_ERROR"
)

// Envelope is the uniform external result shape.
type Envelope struct {
	Status          string      `json:"status"`
	Result          interface{} `json:"result,omitempty"`
	FailedAt        string      `json:"failedAt,omitempty"`
	Reason          string      `json:"reason,omitempty"`
	FailedProcesses []string    `json:"failedProcesses,omitempty"`
}

// uniformDataMessage is what customers see for catalog data-quality
// failures; the detailed reason stays in internal logs only.
const uniformDataMessage = "required pricing/labor data is not available"

// Success wraps a result.
func Success(result interface{}) Envelope {
	return Envelope{Status: StatusSuccess, Result: result}
}

// FromError maps a pipeline error onto the failure envelope.
func FromError(err error) Envelope {
	if est, ok := errors.IsEstimate(err); ok {
		reason := est.Reason
		if est.FailedAt == errors.FailedAtMaterialOrLabor {
			reason = uniformDataMessage
		}
		env := Envelope{
			Status:   StatusEstimateFailed,
			FailedAt: string(est.FailedAt),
			Reason:   reason,
		}
		if est.ProcessID != "" {
			env.FailedProcesses = []string{est.ProcessID}
		}
		return env
	}

	if errors.IsValidation(err) {
		return Envelope{Status: StatusInvalidRequest, Reason: err.Error()}
	}

	// Guard violations and everything unexpected: no internals leak out.
	return Envelope{Status: StatusInternalError, Reason: "internal error"}
}

// StatusClass is the HTTP status class the boundary should use.
type StatusClass int

const (
	ClassBadRequest    StatusClass = 400
	ClassUnprocessable StatusClass = 422
	ClassInternal      StatusClass = 500
)

// ClassOf maps a pipeline error to its status class.
func ClassOf(err error) StatusClass {
	switch {
	case errors.IsValidation(err):
		return ClassBadRequest
	default:
		if _, ok := errors.IsEstimate(err); ok {
			return ClassUnprocessable
		}
		return ClassInternal
	}
}
