package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnswers_Contains(t *testing.T) {
	answers := Answers{"Q02": "누수, 균열"}

	assert.True(t, answers.Contains("Q02", "누수"))
	assert.True(t, answers.Contains("Q02", "균열"))
	assert.False(t, answers.Contains("Q02", "곰팡이"))
	assert.False(t, answers.Contains("Q03", "누수"))
}

func TestAnswers_EqualsTrims(t *testing.T) {
	answers := Answers{"Q03": " 자주 "}

	assert.True(t, answers.Equals("Q03", "자주"))
	assert.False(t, answers.Equals("Q03", "가끔"))
	assert.False(t, answers.Equals("Q04", "자주"))
}

func TestBasicInfo_BuildingAge(t *testing.T) {
	info := BasicInfo{BuildingYear: 2000}

	assert.Equal(t, 24, info.BuildingAge(2024))
	assert.Equal(t, 30, info.BuildingAge(2030))
}

func TestBasicInfo_HasFamily(t *testing.T) {
	info := BasicInfo{Family: []FamilyTag{FamilyCouple, FamilyPet}}

	assert.True(t, info.HasFamily(FamilyPet))
	assert.False(t, info.HasFamily(FamilyChild))
}

func TestPersonalityTags_Has(t *testing.T) {
	tags := PersonalityTags{Tags: []Tag{TagOldRiskHigh, TagPetCare}}

	assert.True(t, tags.Has(TagOldRiskHigh))
	assert.False(t, tags.Has(TagShortStay))
}

func TestEnums_Valid(t *testing.T) {
	assert.True(t, HousingApartment.Valid())
	assert.False(t, HousingType("CASTLE").Valid())
	assert.True(t, StayOver5Y.Valid())
	assert.False(t, StayDuration("FOREVER").Valid())
	assert.True(t, BudgetUnder10M.Valid())
	assert.False(t, BudgetRange("INFINITE").Valid())
	assert.True(t, TagPetCare.Valid())
	assert.False(t, Tag("UNKNOWN").Valid())
}
