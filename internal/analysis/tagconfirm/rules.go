// internal/analysis/tagconfirm/rules.go
package tagconfirm

import "renovation-core/internal/models"

// Answer vocabulary the rules match against. Raw answers arrive in the
// customer's language; the vocabulary is closed.
const (
	answerLeak       = "누수" // water leak
	answerCrack      = "균열" // structural crack
	answerOften      = "자주"
	answerSometimes  = "가끔"
	answerYes        = "예"
	answerNoise      = "소음"
	answerDaily      = "매일"
	answerDesign     = "디자인"
	answerAtmosphere = "분위기"
)

// rule is one independently testable tag predicate. Consults lists the
// question ids a rule reads so provenance can be recorded without
// re-evaluating the predicate.
type rule struct {
	tag      models.Tag
	consults []models.QuestionID
	match    func(in ruleInput) bool
}

type ruleInput struct {
	answers   models.Answers
	basicInfo models.BasicInfo
	age       int
}

func hasHazardAnswer(in ruleInput) bool {
	return in.answers.Contains("Q02", answerLeak) || in.answers.Contains("Q02", answerCrack)
}

// rules is the fixed evaluation order. The confirmed tag list preserves
// this order, which makes identical input produce identical output.
var rules = []rule{
	{
		tag:      models.TagOldRiskHigh,
		consults: []models.QuestionID{"Q02"},
		match: func(in ruleInput) bool {
			return hasHazardAnswer(in) && in.age >= 20
		},
	},
	{
		tag:      models.TagOldRiskMedium,
		consults: []models.QuestionID{"Q02"},
		match: func(in ruleInput) bool {
			return hasHazardAnswer(in) && in.age >= 10 && in.age < 20
		},
	},
	{
		tag:      models.TagMoistureRisk,
		consults: []models.QuestionID{"Q03"},
		match: func(in ruleInput) bool {
			return in.answers.Equals("Q03", answerOften)
		},
	},
	{
		tag:      models.TagStorageRiskHigh,
		consults: []models.QuestionID{"Q04", "Q05"},
		match: func(in ruleInput) bool {
			return in.answers.Equals("Q04", answerOften) && in.answers.Equals("Q05", answerYes)
		},
	},
	{
		tag:      models.TagStorageRiskMedium,
		consults: []models.QuestionID{"Q04", "Q05"},
		match: func(in ruleInput) bool {
			clutter := in.answers.Equals("Q04", answerOften)
			lost := in.answers.Equals("Q05", answerYes)
			return clutter != lost && (clutter || lost)
		},
	},
	{
		tag:      models.TagNoiseSensitive,
		consults: []models.QuestionID{"Q06"},
		match: func(in ruleInput) bool {
			return in.answers.Contains("Q06", answerNoise)
		},
	},
	{
		tag:      models.TagChildSafety,
		consults: nil,
		match: func(in ruleInput) bool {
			return in.basicInfo.HasFamily(models.FamilyInfant) || in.basicInfo.HasFamily(models.FamilyChild)
		},
	},
	{
		tag:      models.TagPetCare,
		consults: nil,
		match: func(in ruleInput) bool {
			return in.basicInfo.HasFamily(models.FamilyPet)
		},
	},
	{
		tag:      models.TagSeniorCare,
		consults: nil,
		match: func(in ruleInput) bool {
			return in.basicInfo.HasFamily(models.FamilySenior)
		},
	},
	{
		tag:      models.TagKitchenPriority,
		consults: []models.QuestionID{"Q08"},
		match: func(in ruleInput) bool {
			return in.answers.Equals("Q08", answerDaily)
		},
	},
	{
		tag:      models.TagDesignFocus,
		consults: []models.QuestionID{"Q07"},
		match: func(in ruleInput) bool {
			return in.answers.Contains("Q07", answerDesign) || in.answers.Contains("Q07", answerAtmosphere)
		},
	},
	{
		tag:      models.TagBudgetTight,
		consults: nil,
		match: func(in ruleInput) bool {
			return in.basicInfo.BudgetRange == models.BudgetUnder10M
		},
	},
	{
		tag:      models.TagLongStay,
		consults: nil,
		match: func(in ruleInput) bool {
			return in.basicInfo.StayDuration == models.StayOver5Y
		},
	},
	{
		tag:      models.TagShortStay,
		consults: nil,
		match: func(in ruleInput) bool {
			return in.basicInfo.StayDuration == models.StayUnder2Y
		},
	},
}
