// Package policy derives prose cost-policy guidance from tags. The
// descriptions are interpretation hints for downstream numeric engines and
// deliberately contain no digits and no currency symbols. Duplicate input
// tags yield duplicate policies: the output is append-only evidence, never
// a deduplicated set.
package policy

import "renovation-core/internal/models"

var materialTable = map[models.Tag]models.Policy{
	models.TagOldRiskHigh: {
		ID:          "MATERIAL_DURABILITY_FIRST",
		Description: "Select materials assuming full replacement of aged pipework and wiring; favor certified waterproofing systems over surface treatments.",
	},
	models.TagOldRiskMedium: {
		ID:          "MATERIAL_INSPECT_BEFORE_FINISH",
		Description: "Select finish materials that tolerate partial rework, so hidden defects found during the work do not force a restart.",
	},
	models.TagMoistureRisk: {
		ID:          "MATERIAL_MOISTURE_RESISTANT",
		Description: "Prefer moisture-resistant boards and anti-mold coatings in wet zones and on exterior-facing walls.",
	},
	models.TagStorageRiskHigh: {
		ID:          "MATERIAL_BUILTIN_GRADE",
		Description: "Specify built-in storage carcasses in moisture-stable board rather than freestanding furniture-grade panels.",
	},
	models.TagChildSafety: {
		ID:          "MATERIAL_LOW_EMISSION",
		Description: "Restrict adhesives and boards to low-emission grades suitable for rooms used by young children.",
	},
	models.TagPetCare: {
		ID:          "MATERIAL_SCRATCH_RESISTANT",
		Description: "Prefer scratch-resistant floor surfaces and washable wall finishes in circulation areas.",
	},
	models.TagBudgetTight: {
		ID:          "MATERIAL_DOMESTIC_STANDARD",
		Description: "Source domestic standard lines throughout; reserve spending for concealed work over visible finishes.",
	},
	models.TagDesignFocus: {
		ID:          "MATERIAL_FINISH_FORWARD",
		Description: "Allow a wider finish palette where it changes the perceived quality of main living surfaces.",
	},
}

var gradeTable = map[models.Tag]models.Policy{
	models.TagOldRiskHigh: {
		ID:          "GRADE_CONCEALED_WORK_HIGH",
		Description: "Grade concealed work above visible work: waterproofing, plumbing and wiring take the highest available grade.",
	},
	models.TagLongStay: {
		ID:          "GRADE_WEAR_SURFACES_HIGH",
		Description: "Grade wear surfaces for a long occupancy: flooring and window systems a grade above the baseline.",
	},
	models.TagShortStay: {
		ID:          "GRADE_COSMETIC_SUFFICIENT",
		Description: "Cosmetic-sufficient grades are acceptable; durability beyond the planned stay adds no value.",
	},
	models.TagKitchenPriority: {
		ID:          "GRADE_KITCHEN_ABOVE_BASELINE",
		Description: "Grade kitchen worktops and hardware above the baseline; that room carries daily use.",
	},
	models.TagBudgetTight: {
		ID:          "GRADE_BASELINE_THROUGHOUT",
		Description: "Hold the baseline grade throughout and upgrade only where a defect is already confirmed.",
	},
}

var contingencyTable = map[models.Tag]models.Policy{
	models.TagOldRiskHigh: {
		ID:          "CONTINGENCY_HIDDEN_DEFECTS",
		Description: "Carry an elevated contingency for defects that only demolition will reveal in an aged building.",
	},
	models.TagOldRiskMedium: {
		ID:          "CONTINGENCY_MODERATE_AGE",
		Description: "Carry a moderate contingency for age-related surprises behind finished surfaces.",
	},
	models.TagMoistureRisk: {
		ID:          "CONTINGENCY_MOISTURE_SOURCE",
		Description: "Reserve contingency for tracing and correcting the moisture source, not only its visible symptoms.",
	},
	models.TagBudgetTight: {
		ID:          "CONTINGENCY_PROTECT_SCOPE",
		Description: "Protect the contingency reserve from scope additions; it exists for defects, not upgrades.",
	},
}

// MaterialPolicies maps tags to material selection guidance, in tag order.
func MaterialPolicies(tags models.PersonalityTags) []models.Policy {
	return collect(tags, materialTable)
}

// GradePolicies maps tags to grade guidance, in tag order.
func GradePolicies(tags models.PersonalityTags) []models.Policy {
	return collect(tags, gradeTable)
}

// ContingencyPolicies maps tags to contingency guidance, in tag order.
func ContingencyPolicies(tags models.PersonalityTags) []models.Policy {
	return collect(tags, contingencyTable)
}

func collect(tags models.PersonalityTags, table map[models.Tag]models.Policy) []models.Policy {
	var out []models.Policy
	for _, tag := range tags.Tags {
		if p, ok := table[tag]; ok {
			out = append(out, p)
		}
	}
	return out
}
