// internal/models/tags.go
package models

// Tag is a confirmed risk/preference signal from the closed vocabulary.
// Tags are only ever produced by matched rules; there is no default tag.
type Tag string

const (
	TagOldRiskHigh       Tag = "OLD_RISK_HIGH"
	TagOldRiskMedium     Tag = "OLD_RISK_MEDIUM"
	TagMoistureRisk      Tag = "MOISTURE_RISK"
	TagStorageRiskHigh   Tag = "STORAGE_RISK_HIGH"
	TagStorageRiskMedium Tag = "STORAGE_RISK_MEDIUM"
	TagNoiseSensitive    Tag = "NOISE_SENSITIVE"
	TagChildSafety       Tag = "CHILD_SAFETY"
	TagPetCare           Tag = "PET_CARE"
	TagSeniorCare        Tag = "SENIOR_CARE"
	TagKitchenPriority   Tag = "KITCHEN_PRIORITY"
	TagDesignFocus       Tag = "DESIGN_FOCUS"
	TagBudgetTight       Tag = "BUDGET_TIGHT"
	TagLongStay          Tag = "LONG_STAY"
	TagShortStay         Tag = "SHORT_STAY"
)

// AllTags lists the closed vocabulary in rule-evaluation order.
var AllTags = []Tag{
	TagOldRiskHigh,
	TagOldRiskMedium,
	TagMoistureRisk,
	TagStorageRiskHigh,
	TagStorageRiskMedium,
	TagNoiseSensitive,
	TagChildSafety,
	TagPetCare,
	TagSeniorCare,
	TagKitchenPriority,
	TagDesignFocus,
	TagBudgetTight,
	TagLongStay,
	TagShortStay,
}

func (t Tag) Valid() bool {
	for _, known := range AllTags {
		if t == known {
			return true
		}
	}
	return false
}

// PersonalityTags is the ordered confirmation result. Order follows the
// rule table and is stable for identical input. TriggeredBy records the
// question ids whose answers satisfied each tag's rule, for the explain
// layer.
type PersonalityTags struct {
	Tags        []Tag                `json:"tags"`
	TriggeredBy map[Tag][]QuestionID `json:"triggeredBy"`
}

// Has reports whether tag is present.
func (p PersonalityTags) Has(tag Tag) bool {
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
