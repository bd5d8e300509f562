// internal/analysis/processmap/table.go
package processmap

import "renovation-core/internal/models"

// mapping is everything one tag contributes to the construction plan.
type mapping struct {
	processes []models.ProcessAction
	options   []models.OptionChange
	tiers     []models.TierRecommendation
}

// table is the closed tag-to-plan table. A tag absent from this table
// contributes nothing; there is no default action.
var table = map[models.Tag]mapping{
	models.TagOldRiskHigh: {
		processes: []models.ProcessAction{
			{ProcessID: models.ProcessWaterproofing, Action: models.ActionRequired, Reason: "aged building with reported leak or crack"},
			{ProcessID: models.ProcessPlumbing, Action: models.ActionRequired, Reason: "pipework past replacement age"},
			{ProcessID: models.ProcessElectrical, Action: models.ActionRequired, Reason: "wiring past inspection age"},
		},
		tiers: []models.TierRecommendation{
			{ProcessID: models.ProcessWaterproofing, Tier: models.TierPremium},
		},
	},
	models.TagOldRiskMedium: {
		processes: []models.ProcessAction{
			{ProcessID: models.ProcessPlumbing, Action: models.ActionRecommend, Reason: "pipework approaching replacement age"},
			{ProcessID: models.ProcessElectrical, Action: models.ActionRecommend, Reason: "wiring approaching inspection age"},
		},
	},
	models.TagMoistureRisk: {
		processes: []models.ProcessAction{
			{ProcessID: models.ProcessWaterproofing, Action: models.ActionRequired, Reason: "recurring condensation or mold"},
			{ProcessID: models.ProcessVentilation, Action: models.ActionRecommend, Reason: "airflow needed to keep moisture down"},
		},
	},
	models.TagStorageRiskHigh: {
		processes: []models.ProcessAction{
			{ProcessID: models.ProcessStorageBuiltin, Action: models.ActionRequired, Reason: "chronic clutter and lost items"},
		},
		options: []models.OptionChange{
			{OptionID: "BUILTIN_CLOSET", Action: models.OptionPrioritize, Reason: "storage pressure is the dominant complaint"},
		},
		tiers: []models.TierRecommendation{
			{ProcessID: models.ProcessStorageBuiltin, Tier: models.TierStandard},
		},
	},
	models.TagStorageRiskMedium: {
		processes: []models.ProcessAction{
			{ProcessID: models.ProcessStorageBuiltin, Action: models.ActionRecommend, Reason: "intermittent storage pressure"},
		},
	},
	models.TagNoiseSensitive: {
		processes: []models.ProcessAction{
			{ProcessID: models.ProcessSoundproofing, Action: models.ActionRecommend, Reason: "noise named as the main irritation"},
			{ProcessID: models.ProcessWindows, Action: models.ActionRecommend, Reason: "window insulation cuts outside noise"},
		},
	},
	models.TagChildSafety: {
		processes: []models.ProcessAction{
			{ProcessID: models.ProcessFlooring, Action: models.ActionRecommend, Reason: "non-slip flooring for young children"},
		},
		options: []models.OptionChange{
			{OptionID: "SAFETY_FILM", Action: models.OptionPrioritize, Reason: "household includes young children"},
			{OptionID: "GLASS_PARTITION", Action: models.OptionHide, Reason: "household includes young children"},
		},
	},
	models.TagPetCare: {
		processes: []models.ProcessAction{
			{ProcessID: models.ProcessFlooring, Action: models.ActionRecommend, Reason: "scratch-resistant flooring for pets"},
		},
		tiers: []models.TierRecommendation{
			{ProcessID: models.ProcessFlooring, Tier: models.TierStandard},
		},
	},
	models.TagSeniorCare: {
		processes: []models.ProcessAction{
			{ProcessID: models.ProcessBathroom, Action: models.ActionRecommend, Reason: "bathroom safety fittings for seniors"},
			{ProcessID: models.ProcessLighting, Action: models.ActionEnable, Reason: "brighter circulation lighting for seniors"},
		},
	},
	models.TagKitchenPriority: {
		processes: []models.ProcessAction{
			{ProcessID: models.ProcessKitchen, Action: models.ActionRequired, Reason: "daily cooking makes the kitchen the primary workspace"},
		},
		tiers: []models.TierRecommendation{
			{ProcessID: models.ProcessKitchen, Tier: models.TierPremium},
		},
	},
	models.TagDesignFocus: {
		processes: []models.ProcessAction{
			{ProcessID: models.ProcessFilm, Action: models.ActionRecommend, Reason: "surface finishes carry the design change"},
			{ProcessID: models.ProcessLighting, Action: models.ActionRecommend, Reason: "lighting carries the atmosphere change"},
		},
	},
	models.TagBudgetTight: {
		processes: []models.ProcessAction{
			{ProcessID: models.ProcessDemolition, Action: models.ActionDisable, Reason: "full demolition exceeds the stated budget"},
		},
		options: []models.OptionChange{
			{OptionID: "IMPORTED_MATERIALS", Action: models.OptionLimit, Reason: "budget rules out imported lines"},
		},
		tiers: []models.TierRecommendation{
			{ProcessID: models.ProcessFlooring, Tier: models.TierBasic},
			{ProcessID: models.ProcessKitchen, Tier: models.TierBasic},
		},
	},
	models.TagLongStay: {
		tiers: []models.TierRecommendation{
			{ProcessID: models.ProcessFlooring, Tier: models.TierPremium},
			{ProcessID: models.ProcessWindows, Tier: models.TierPremium},
		},
	},
	models.TagShortStay: {
		options: []models.OptionChange{
			{OptionID: "PREMIUM_FINISH", Action: models.OptionLimit, Reason: "short stay limits payback on premium finishes"},
		},
		tiers: []models.TierRecommendation{
			{ProcessID: models.ProcessFlooring, Tier: models.TierBasic},
		},
	},
}
