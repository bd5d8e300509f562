// internal/analysis/explain/templates.go
package explain

import "renovation-core/internal/models"

// tagTemplates maps tags to their rationale text. A tag without a template
// is skipped silently; no generic filler is ever emitted.
var tagTemplates = map[models.Tag]struct {
	Title       string
	Description string
}{
	models.TagOldRiskHigh: {
		Title:       "Aged building, confirmed defects",
		Description: "The building's age combined with the defects you reported points to concealed systems at the end of their life.",
	},
	models.TagOldRiskMedium: {
		Title:       "Aging building, early warning signs",
		Description: "The building is entering the age band where reported defects usually indicate wider wear behind the finishes.",
	},
	models.TagMoistureRisk: {
		Title:       "Recurring moisture",
		Description: "Frequent condensation or mold means the moisture source itself needs treating, not only the stains.",
	},
	models.TagStorageRiskHigh: {
		Title:       "Storage under chronic pressure",
		Description: "Frequent clutter together with losing track of belongings shows the current storage does not fit how you live.",
	},
	models.TagStorageRiskMedium: {
		Title:       "Storage under occasional pressure",
		Description: "Your answers show storage friction that better-placed storage would remove.",
	},
	models.TagNoiseSensitive: {
		Title:       "Noise is the main irritation",
		Description: "You named noise as the thing that bothers you most at home.",
	},
	models.TagChildSafety: {
		Title:       "Young children at home",
		Description: "Your household includes young children, which constrains materials and layout choices.",
	},
	models.TagPetCare: {
		Title:       "Pets at home",
		Description: "Your household includes pets, which favors resilient and washable surfaces.",
	},
	models.TagSeniorCare: {
		Title:       "Senior household member",
		Description: "Your household includes a senior member, which favors safety fittings and brighter circulation.",
	},
	models.TagKitchenPriority: {
		Title:       "The kitchen works hardest",
		Description: "Daily cooking makes the kitchen the most used workspace in your home.",
	},
	models.TagDesignFocus: {
		Title:       "Design drives this project",
		Description: "The change you most look forward to is how the home looks and feels.",
	},
	models.TagBudgetTight: {
		Title:       "Budget sets the frame",
		Description: "The stated budget calls for concentrating spend where it changes daily life most.",
	},
	models.TagLongStay: {
		Title:       "Staying for the long haul",
		Description: "A long planned stay shifts value toward durable, lower-maintenance choices.",
	},
	models.TagShortStay: {
		Title:       "A shorter chapter",
		Description: "A shorter planned stay favors improvements that pay back quickly.",
	},
}

// actionPhrases renders the explained action kinds. disable has no entry:
// removed processes are intentionally not narrated to the customer.
var actionPhrases = map[models.ProcessActionKind]string{
	models.ActionRequired:  "is required for this project",
	models.ActionRecommend: "is recommended for this project",
	models.ActionEnable:    "has been enabled for this project",
}

// processNames renders process ids for prose.
var processNames = map[models.ProcessID]string{
	models.ProcessDemolition:     "demolition",
	models.ProcessWaterproofing:  "waterproofing",
	models.ProcessPlumbing:       "plumbing replacement",
	models.ProcessElectrical:     "electrical rework",
	models.ProcessVentilation:    "ventilation",
	models.ProcessStorageBuiltin: "built-in storage",
	models.ProcessSoundproofing:  "soundproofing",
	models.ProcessWindows:        "window replacement",
	models.ProcessFlooring:       "flooring",
	models.ProcessBathroom:       "bathroom renovation",
	models.ProcessKitchen:        "kitchen renovation",
	models.ProcessLighting:       "lighting",
	models.ProcessFilm:           "interior film",
	models.ProcessPainting:       "painting",
}
