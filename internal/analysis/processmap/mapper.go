// Package processmap maps confirmed tags onto process actions, option
// changes and tier hints. The mapper performs no conflict resolution:
// multiple tags may target the same process with different actions, and
// the estimate engine is the consumer that treats required as dominant
// over recommend.
package processmap

import "renovation-core/internal/models"

// Map walks the resolved tag list in order and collects each tag's table
// entries. Tags without a table entry contribute nothing.
func Map(tags models.PersonalityTags) models.ProcessChanges {
	var changes models.ProcessChanges

	for _, tag := range tags.Tags {
		m, ok := table[tag]
		if !ok {
			continue
		}
		changes.ProcessActions = append(changes.ProcessActions, m.processes...)
		changes.OptionChanges = append(changes.OptionChanges, m.options...)
		changes.TierRecommendations = append(changes.TierRecommendations, m.tiers...)
	}

	return changes
}
