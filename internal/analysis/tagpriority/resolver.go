// Package tagpriority collapses conflicting tags. Each conflict group is a
// strict override table: the highest-ranked member present survives, the
// rest are dropped. No scoring, no accumulation.
package tagpriority

import "renovation-core/internal/models"

// Group is one documented conflict group, members ranked highest first.
type Group struct {
	Name    string
	Ranking []models.Tag
}

// Groups is the explicit conflict table. Whether this covers every
// possible conflict is an open product question; keeping it as exported
// package data makes additions a data edit.
var Groups = []Group{
	{
		Name:    "durability",
		Ranking: []models.Tag{models.TagOldRiskHigh, models.TagOldRiskMedium, models.TagLongStay},
	},
	{
		Name:    "storage",
		Ranking: []models.Tag{models.TagStorageRiskHigh, models.TagStorageRiskMedium},
	},
	{
		Name:    "spend",
		Ranking: []models.Tag{models.TagBudgetTight, models.TagDesignFocus},
	},
}

// Resolve keeps only the highest-ranked member of each conflict group and
// passes everything else through. The surviving set is independent of
// input ordering; the output preserves the input's relative order. The
// TriggeredBy provenance of dropped tags is removed with them.
func Resolve(tags models.PersonalityTags) models.PersonalityTags {
	drop := make(map[models.Tag]bool)

	for _, group := range Groups {
		winnerSeen := false
		for _, member := range group.Ranking {
			if !tags.Has(member) {
				continue
			}
			if winnerSeen {
				drop[member] = true
				continue
			}
			winnerSeen = true
		}
	}

	resolved := models.PersonalityTags{
		TriggeredBy: make(map[models.Tag][]models.QuestionID),
	}
	for _, t := range tags.Tags {
		if drop[t] {
			continue
		}
		resolved.Tags = append(resolved.Tags, t)
		if sources, ok := tags.TriggeredBy[t]; ok {
			resolved.TriggeredBy[t] = append([]models.QuestionID(nil), sources...)
		}
	}

	return resolved
}
