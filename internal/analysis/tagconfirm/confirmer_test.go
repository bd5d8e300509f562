package tagconfirm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"renovation-core/internal/common/errors"
	"renovation-core/internal/models"
)

const testReferenceYear = 2024

func validBasicInfo() models.BasicInfo {
	return models.BasicInfo{
		HousingType:  models.HousingApartment,
		PyeongRange:  models.Pyeong20To30,
		BuildingYear: 2018,
		StayDuration: models.Stay2To5Y,
		Family:       []models.FamilyTag{models.FamilyCouple},
		BudgetRange:  models.Budget10To30M,
	}
}

func TestConfirm_AgeBands(t *testing.T) {
	tests := []struct {
		name         string
		buildingYear int
		answer       string
		wantTag      models.Tag
		absentTag    models.Tag
	}{
		{
			name:         "hazard answer on old building confirms high risk",
			buildingYear: 2000,
			answer:       "누수, 균열",
			wantTag:      models.TagOldRiskHigh,
			absentTag:    models.TagOldRiskMedium,
		},
		{
			name:         "hazard answer on mid-age building confirms medium risk",
			buildingYear: 2010,
			answer:       "누수, 균열",
			wantTag:      models.TagOldRiskMedium,
			absentTag:    models.TagOldRiskHigh,
		},
		{
			name:         "leak alone is enough for the hazard predicate",
			buildingYear: 1995,
			answer:       "누수",
			wantTag:      models.TagOldRiskHigh,
			absentTag:    models.TagOldRiskMedium,
		},
	}

	confirmer := New(testReferenceYear)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			basicInfo := validBasicInfo()
			basicInfo.BuildingYear = tt.buildingYear
			answers := models.Answers{"Q02": tt.answer}

			result, err := confirmer.Confirm(answers, basicInfo)
			require.NoError(t, err)

			assert.True(t, result.Has(tt.wantTag))
			assert.False(t, result.Has(tt.absentTag))
		})
	}
}

func TestConfirm_HazardWithoutAgeConfirmsNothingOld(t *testing.T) {
	basicInfo := validBasicInfo()
	basicInfo.BuildingYear = 2020 // age 4, below both bands
	basicInfo.Family = []models.FamilyTag{models.FamilyPet}

	confirmer := New(testReferenceYear)
	result, err := confirmer.Confirm(models.Answers{"Q02": "누수"}, basicInfo)
	require.NoError(t, err)

	assert.False(t, result.Has(models.TagOldRiskHigh))
	assert.False(t, result.Has(models.TagOldRiskMedium))
	assert.True(t, result.Has(models.TagPetCare))
}

func TestConfirm_StorageRules(t *testing.T) {
	tests := []struct {
		name       string
		q04, q05   string
		wantHigh   bool
		wantMedium bool
	}{
		{name: "both signals confirm high", q04: "자주", q05: "예", wantHigh: true, wantMedium: false},
		{name: "clutter only confirms medium", q04: "자주", q05: "아니오", wantHigh: false, wantMedium: true},
		{name: "lost items only confirms medium", q04: "가끔", q05: "예", wantHigh: false, wantMedium: true},
		{name: "neither signal confirms nothing", q04: "가끔", q05: "아니오", wantHigh: false, wantMedium: false},
	}

	confirmer := New(testReferenceYear)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			basicInfo := validBasicInfo()
			basicInfo.Family = []models.FamilyTag{models.FamilyPet} // guarantees one match
			answers := models.Answers{"Q04": tt.q04, "Q05": tt.q05}

			result, err := confirmer.Confirm(answers, basicInfo)
			require.NoError(t, err)

			assert.Equal(t, tt.wantHigh, result.Has(models.TagStorageRiskHigh))
			assert.Equal(t, tt.wantMedium, result.Has(models.TagStorageRiskMedium))
		})
	}
}

func TestConfirm_ZeroMatchesIsAnError(t *testing.T) {
	confirmer := New(testReferenceYear)

	result, err := confirmer.Confirm(models.Answers{}, validBasicInfo())

	require.Error(t, err)
	var vErr *errors.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, errors.ErrCodeNoTagsConfirmed, vErr.Code)
	assert.Empty(t, result.Tags)
}

func TestConfirm_OrderFollowsRuleTable(t *testing.T) {
	basicInfo := validBasicInfo()
	basicInfo.BuildingYear = 1999
	basicInfo.Family = []models.FamilyTag{models.FamilyChild, models.FamilyPet}
	basicInfo.StayDuration = models.StayOver5Y
	answers := models.Answers{
		"Q02": "누수",
		"Q03": "자주",
		"Q08": "매일",
	}

	confirmer := New(testReferenceYear)
	result, err := confirmer.Confirm(answers, basicInfo)
	require.NoError(t, err)

	want := []models.Tag{
		models.TagOldRiskHigh,
		models.TagMoistureRisk,
		models.TagChildSafety,
		models.TagPetCare,
		models.TagKitchenPriority,
		models.TagLongStay,
	}
	assert.Equal(t, want, result.Tags)

	// Same input, same output, run after run.
	again, err := confirmer.Confirm(answers, basicInfo)
	require.NoError(t, err)
	assert.Equal(t, result, again)
}

func TestConfirm_ProvenanceRecordsConsultedQuestions(t *testing.T) {
	basicInfo := validBasicInfo()
	basicInfo.BuildingYear = 1999
	answers := models.Answers{
		"Q02": "균열",
		"Q04": "자주",
		"Q05": "예",
	}

	confirmer := New(testReferenceYear)
	result, err := confirmer.Confirm(answers, basicInfo)
	require.NoError(t, err)

	assert.Equal(t, []models.QuestionID{"Q02"}, result.TriggeredBy[models.TagOldRiskHigh])
	assert.Equal(t, []models.QuestionID{"Q04", "Q05"}, result.TriggeredBy[models.TagStorageRiskHigh])

	// Fact-derived tags carry no question provenance.
	basicInfo.Family = []models.FamilyTag{models.FamilyPet}
	result, err = confirmer.Confirm(answers, basicInfo)
	require.NoError(t, err)
	assert.True(t, result.Has(models.TagPetCare))
	_, recorded := result.TriggeredBy[models.TagPetCare]
	assert.False(t, recorded)
}

func TestConfirm_DesignAndBudgetSignals(t *testing.T) {
	basicInfo := validBasicInfo()
	basicInfo.BudgetRange = models.BudgetUnder10M
	answers := models.Answers{"Q07": "디자인, 수납"}

	confirmer := New(testReferenceYear)
	result, err := confirmer.Confirm(answers, basicInfo)
	require.NoError(t, err)

	assert.True(t, result.Has(models.TagDesignFocus))
	assert.True(t, result.Has(models.TagBudgetTight))
}
