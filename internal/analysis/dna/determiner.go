// Package dna classifies the customer into a single profile type by
// walking a priority-ordered tag table and returning the first match.
package dna

import "renovation-core/internal/models"

// association pairs a tag with the type it selects.
type association struct {
	tag models.Tag
	dna models.DNAType
}

// priorityTable is walked top to bottom; the first tag present wins.
var priorityTable = []association{
	{models.TagOldRiskHigh, models.DNAType{
		Type:        "SAFETY_FIRST",
		Name:        "Safety-First Renovator",
		Description: "Puts the building's structural health before everything else.",
		Keywords:    []string{"durability", "inspection", "replacement"},
	}},
	{models.TagStorageRiskHigh, models.DNAType{
		Type:        "STORAGE_OPTIMIZER",
		Name:        "Storage Optimizer",
		Description: "Wants every corner of the home to earn its keep.",
		Keywords:    []string{"built-in", "organization", "space"},
	}},
	{models.TagKitchenPriority, models.DNAType{
		Type:        "HOME_CHEF",
		Name:        "Home Chef",
		Description: "Lives in the kitchen and plans the home around it.",
		Keywords:    []string{"kitchen", "worktop", "appliances"},
	}},
	{models.TagChildSafety, models.DNAType{
		Type:        "FAMILY_GUARDIAN",
		Name:        "Family Guardian",
		Description: "Chooses every material and corner with the kids in mind.",
		Keywords:    []string{"safety", "low-emission", "family"},
	}},
	{models.TagDesignFocus, models.DNAType{
		Type:        "AESTHETIC_SEEKER",
		Name:        "Aesthetic Seeker",
		Description: "Renovates for the way the home feels and photographs.",
		Keywords:    []string{"design", "finish", "lighting"},
	}},
	{models.TagBudgetTight, models.DNAType{
		Type:        "VALUE_MAXIMIZER",
		Name:        "Value Maximizer",
		Description: "Wants the largest livable improvement per unit of budget.",
		Keywords:    []string{"priorities", "essentials", "value"},
	}},
	{models.TagLongStay, models.DNAType{
		Type:        "LONG_HAUL_PLANNER",
		Name:        "Long-Haul Planner",
		Description: "Builds for the next decade, not the next viewing.",
		Keywords:    []string{"longevity", "wear", "maintenance"},
	}},
}

// defaultType is the single permitted default in the whole pipeline: when
// no tag matches the priority table the customer still receives a profile.
// Everywhere else in the pipeline "no match" is an error; this exception
// is deliberate product policy and is confined to this table.
var defaultType = models.DNAType{
	Type:        "BALANCED_IMPROVER",
	Name:        "Balanced Improver",
	Description: "Improves the home evenly without a single dominating concern.",
	Keywords:    []string{"balance", "general", "comfort"},
}

// Determine returns the first priority-table match, or the documented
// default when nothing matches. Referentially transparent: the same tag
// set always yields the same type.
func Determine(tags models.PersonalityTags) models.DNAType {
	for _, assoc := range priorityTable {
		if tags.Has(assoc.tag) {
			return assoc.dna
		}
	}
	return defaultType
}
