package dna

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"renovation-core/internal/models"
)

func tagsOf(tags ...models.Tag) models.PersonalityTags {
	return models.PersonalityTags{Tags: tags}
}

func TestDetermine_FirstPriorityMatchWins(t *testing.T) {
	tests := []struct {
		name     string
		tags     []models.Tag
		wantType string
	}{
		{
			name:     "old risk outranks everything",
			tags:     []models.Tag{models.TagDesignFocus, models.TagOldRiskHigh, models.TagKitchenPriority},
			wantType: "SAFETY_FIRST",
		},
		{
			name:     "storage outranks kitchen",
			tags:     []models.Tag{models.TagKitchenPriority, models.TagStorageRiskHigh},
			wantType: "STORAGE_OPTIMIZER",
		},
		{
			name:     "kitchen alone",
			tags:     []models.Tag{models.TagKitchenPriority},
			wantType: "HOME_CHEF",
		},
		{
			name:     "budget outranks long stay",
			tags:     []models.Tag{models.TagLongStay, models.TagBudgetTight},
			wantType: "VALUE_MAXIMIZER",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := Determine(tagsOf(tt.tags...))
			assert.Equal(t, tt.wantType, profile.Type)
			assert.NotEmpty(t, profile.Name)
			assert.NotEmpty(t, profile.Description)
			assert.NotEmpty(t, profile.Keywords)
		})
	}
}

func TestDetermine_DefaultWhenNoPriorityTagPresent(t *testing.T) {
	// Tags that never appear in the priority table fall through to the
	// documented default profile.
	profile := Determine(tagsOf(models.TagMoistureRisk, models.TagNoiseSensitive))

	assert.Equal(t, "BALANCED_IMPROVER", profile.Type)
}

func TestDetermine_EmptyTagsStillYieldProfile(t *testing.T) {
	profile := Determine(tagsOf())
	assert.Equal(t, "BALANCED_IMPROVER", profile.Type)
}

func TestDetermine_SameInputSameOutput(t *testing.T) {
	tags := tagsOf(models.TagChildSafety, models.TagPetCare)

	first := Determine(tags)
	second := Determine(tags)
	assert.Equal(t, first, second)
}
