package tagpriority

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"renovation-core/internal/models"
)

func tagsOf(tags ...models.Tag) models.PersonalityTags {
	return models.PersonalityTags{
		Tags:        tags,
		TriggeredBy: map[models.Tag][]models.QuestionID{},
	}
}

func TestResolve_DurabilityGroup(t *testing.T) {
	tests := []struct {
		name  string
		input []models.Tag
		want  []models.Tag
	}{
		{
			name:  "medium risk suppresses long stay",
			input: []models.Tag{models.TagOldRiskMedium, models.TagLongStay},
			want:  []models.Tag{models.TagOldRiskMedium},
		},
		{
			name:  "high risk suppresses both lower members",
			input: []models.Tag{models.TagOldRiskHigh, models.TagOldRiskMedium, models.TagLongStay},
			want:  []models.Tag{models.TagOldRiskHigh},
		},
		{
			name:  "long stay alone survives",
			input: []models.Tag{models.TagLongStay},
			want:  []models.Tag{models.TagLongStay},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolved := Resolve(tagsOf(tt.input...))
			assert.Equal(t, tt.want, resolved.Tags)
		})
	}
}

func TestResolve_AllGroupsCollapseIndependently(t *testing.T) {
	input := tagsOf(
		models.TagOldRiskHigh,
		models.TagStorageRiskHigh,
		models.TagStorageRiskMedium,
		models.TagBudgetTight,
		models.TagDesignFocus,
		models.TagLongStay,
	)

	resolved := Resolve(input)

	want := []models.Tag{
		models.TagOldRiskHigh,
		models.TagStorageRiskHigh,
		models.TagBudgetTight,
	}
	assert.Equal(t, want, resolved.Tags)
}

func TestResolve_SurvivingSetIndependentOfInputOrder(t *testing.T) {
	a := Resolve(tagsOf(models.TagLongStay, models.TagOldRiskMedium, models.TagPetCare))
	b := Resolve(tagsOf(models.TagPetCare, models.TagOldRiskMedium, models.TagLongStay))

	assert.ElementsMatch(t, a.Tags, b.Tags)
	// Relative order of survivors follows each input's order.
	assert.Equal(t, []models.Tag{models.TagOldRiskMedium, models.TagPetCare}, a.Tags)
	assert.Equal(t, []models.Tag{models.TagPetCare, models.TagOldRiskMedium}, b.Tags)
}

func TestResolve_UngroupedTagsPassThrough(t *testing.T) {
	input := tagsOf(
		models.TagMoistureRisk,
		models.TagNoiseSensitive,
		models.TagChildSafety,
		models.TagKitchenPriority,
	)

	resolved := Resolve(input)
	assert.Equal(t, input.Tags, resolved.Tags)
}

func TestResolve_DroppedTagsLoseProvenance(t *testing.T) {
	input := models.PersonalityTags{
		Tags: []models.Tag{models.TagStorageRiskHigh, models.TagStorageRiskMedium},
		TriggeredBy: map[models.Tag][]models.QuestionID{
			models.TagStorageRiskHigh:   {"Q04", "Q05"},
			models.TagStorageRiskMedium: {"Q04", "Q05"},
		},
	}

	resolved := Resolve(input)

	assert.Equal(t, []models.Tag{models.TagStorageRiskHigh}, resolved.Tags)
	assert.Contains(t, resolved.TriggeredBy, models.TagStorageRiskHigh)
	assert.NotContains(t, resolved.TriggeredBy, models.TagStorageRiskMedium)
}

func TestGroups_RankingsOnlyContainKnownTags(t *testing.T) {
	for _, group := range Groups {
		for _, member := range group.Ranking {
			assert.True(t, member.Valid(), "group %s lists unknown tag %s", group.Name, member)
		}
	}
}
