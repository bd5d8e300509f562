// internal/models/basicinfo.go
package models

// HousingType classifies the dwelling being renovated.
type HousingType string

const (
	HousingApartment HousingType = "APARTMENT"
	HousingVilla     HousingType = "VILLA"
	HousingOfficetel HousingType = "OFFICETEL"
	HousingHouse     HousingType = "HOUSE"
)

func (h HousingType) Valid() bool {
	switch h {
	case HousingApartment, HousingVilla, HousingOfficetel, HousingHouse:
		return true
	}
	return false
}

// PyeongRange buckets the floor area of the unit.
type PyeongRange string

const (
	PyeongUnder10 PyeongRange = "UNDER_10"
	Pyeong10To20  PyeongRange = "P10_20"
	Pyeong20To30  PyeongRange = "P20_30"
	Pyeong30To40  PyeongRange = "P30_40"
	PyeongOver40  PyeongRange = "OVER_40"
)

func (p PyeongRange) Valid() bool {
	switch p {
	case PyeongUnder10, Pyeong10To20, Pyeong20To30, Pyeong30To40, PyeongOver40:
		return true
	}
	return false
}

// StayDuration is how long the customer plans to live in the unit.
type StayDuration string

const (
	StayUnder2Y StayDuration = "UNDER_2Y"
	Stay2To5Y   StayDuration = "Y2_5"
	StayOver5Y  StayDuration = "OVER_5Y"
)

func (s StayDuration) Valid() bool {
	switch s {
	case StayUnder2Y, Stay2To5Y, StayOver5Y:
		return true
	}
	return false
}

// FamilyTag marks a member of the household composition set.
type FamilyTag string

const (
	FamilySingle FamilyTag = "SINGLE"
	FamilyCouple FamilyTag = "COUPLE"
	FamilyInfant FamilyTag = "INFANT"
	FamilyChild  FamilyTag = "CHILD"
	FamilyTeen   FamilyTag = "TEEN"
	FamilySenior FamilyTag = "SENIOR"
	FamilyPet    FamilyTag = "PET"
)

func (f FamilyTag) Valid() bool {
	switch f {
	case FamilySingle, FamilyCouple, FamilyInfant, FamilyChild, FamilyTeen, FamilySenior, FamilyPet:
		return true
	}
	return false
}

// BudgetRange buckets the customer's stated budget.
type BudgetRange string

const (
	BudgetUnder10M BudgetRange = "UNDER_10M"
	Budget10To30M  BudgetRange = "B10_30M"
	Budget30To50M  BudgetRange = "B30_50M"
	BudgetOver50M  BudgetRange = "OVER_50M"
)

func (b BudgetRange) Valid() bool {
	switch b {
	case BudgetUnder10M, Budget10To30M, Budget30To50M, BudgetOver50M:
		return true
	}
	return false
}

// BasicInfo holds the basic housing facts for one request. Immutable once
// built by the normalizer.
type BasicInfo struct {
	HousingType  HousingType  `json:"housingType"`
	PyeongRange  PyeongRange  `json:"pyeongRange"`
	BuildingYear int          `json:"buildingYear"`
	StayDuration StayDuration `json:"stayDuration"`
	Family       []FamilyTag  `json:"family"`
	BudgetRange  BudgetRange  `json:"budgetRange"`
}

// BuildingAge returns the building age relative to a fixed reference year.
// The reference year comes from configuration, never from the wall clock,
// so identical input always ages identically.
func (b BasicInfo) BuildingAge(referenceYear int) int {
	return referenceYear - b.BuildingYear
}

// HasFamily reports whether the household composition contains tag.
func (b BasicInfo) HasFamily(tag FamilyTag) bool {
	for _, f := range b.Family {
		if f == tag {
			return true
		}
	}
	return false
}
