// internal/models/process.go
package models

// ProcessID names a construction process.
type ProcessID string

const (
	ProcessDemolition     ProcessID = "DEMOLITION"
	ProcessWaterproofing  ProcessID = "WATERPROOFING"
	ProcessPlumbing       ProcessID = "PLUMBING"
	ProcessElectrical     ProcessID = "ELECTRICAL"
	ProcessVentilation    ProcessID = "VENTILATION"
	ProcessStorageBuiltin ProcessID = "STORAGE_BUILTIN"
	ProcessSoundproofing  ProcessID = "SOUNDPROOFING"
	ProcessWindows        ProcessID = "WINDOWS"
	ProcessFlooring       ProcessID = "FLOORING"
	ProcessBathroom       ProcessID = "BATHROOM"
	ProcessKitchen        ProcessID = "KITCHEN"
	ProcessLighting       ProcessID = "LIGHTING"
	ProcessFilm           ProcessID = "FILM"
	ProcessPainting       ProcessID = "PAINTING"
)

// ProcessActionKind is what a tag asks of a process.
type ProcessActionKind string

const (
	ActionRequired  ProcessActionKind = "required"
	ActionRecommend ProcessActionKind = "recommend"
	ActionEnable    ProcessActionKind = "enable"
	ActionDisable   ProcessActionKind = "disable"
)

// ProcessAction is one instruction applied to a named process. Multiple
// tags may target the same process with different actions; resolving those
// is the estimate engine's job, not the mapper's.
type ProcessAction struct {
	ProcessID ProcessID         `json:"processId"`
	Action    ProcessActionKind `json:"action"`
	Reason    string            `json:"reason"`
}

// OptionActionKind is what a tag asks of a product option.
type OptionActionKind string

const (
	OptionPrioritize OptionActionKind = "prioritize"
	OptionLimit      OptionActionKind = "limit"
	OptionHide       OptionActionKind = "hide"
)

// OptionChange adjusts visibility or ranking of a product option.
type OptionChange struct {
	OptionID string           `json:"optionId"`
	Action   OptionActionKind `json:"action"`
	Reason   string           `json:"reason"`
}

// Tier is a material/finish grade hint for a process.
type Tier string

const (
	TierBasic    Tier = "BASIC"
	TierStandard Tier = "STANDARD"
	TierPremium  Tier = "PREMIUM"
)

// TierRecommendation hints a tier for a single process.
type TierRecommendation struct {
	ProcessID ProcessID `json:"processId"`
	Tier      Tier      `json:"tier"`
}

// ProcessChanges is the fan-out result of mapping tags onto processes.
type ProcessChanges struct {
	ProcessActions      []ProcessAction      `json:"processActions"`
	OptionChanges       []OptionChange       `json:"optionChanges"`
	TierRecommendations []TierRecommendation `json:"tierRecommendations"`
}
