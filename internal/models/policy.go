// internal/models/policy.go
package models

// Policy is prose-only guidance for downstream numeric engines. The
// description never contains digits or currency symbols; amounts are
// computed elsewhere. Policies are append-only evidence, not a set:
// duplicate input tags yield duplicate policies.
type Policy struct {
	ID          string `json:"id"`
	Description string `json:"description"`
}

// PolicySet groups the three independent policy dimensions.
type PolicySet struct {
	Material    []Policy `json:"material"`
	Grade       []Policy `json:"grade"`
	Contingency []Policy `json:"contingency"`
}
