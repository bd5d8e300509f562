// internal/models/analysis.go
package models

// TagReason is one human-readable rationale entry for a confirmed tag.
type TagReason struct {
	Key         Tag    `json:"key"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// ProcessReason explains one process action. Only required, recommend and
// enable actions are explained; disable is intentionally silent.
type ProcessReason struct {
	ProcessID   ProcessID         `json:"processId"`
	Action      ProcessActionKind `json:"action"`
	Description string            `json:"description"`
}

// Explanation is the full output of the explain layer. It is a pure
// translation of upstream decisions and never alters them.
type Explanation struct {
	TagReasons     []TagReason     `json:"tagReasons"`
	ProcessReasons []ProcessReason `json:"processReasons"`
	Summary        string          `json:"summary"`
}

// AnalysisResult is the assembled output of the decision pipeline for one
// request, before any estimate is computed.
type AnalysisResult struct {
	Tags        PersonalityTags `json:"tags"`
	Changes     ProcessChanges  `json:"changes"`
	Policies    PolicySet       `json:"policies"`
	DNA         DNAType         `json:"dna"`
	Explanation Explanation     `json:"explanation"`
	InputHash   string          `json:"inputHash"`
	OutputHash  string          `json:"outputHash"`
}
