// Package inputguard validates request integrity before any rule runs. No
// downstream component may be invoked with input that has not passed
// AssertIntegrity.
package inputguard

import (
	"fmt"
	"sort"

	"renovation-core/internal/common/errors"
	"renovation-core/internal/models"
	"renovation-core/internal/questionbank"
)

// AssertIntegrity checks presence and shape of the required fields. Pure;
// returns a ValidationError on the first problem found.
func AssertIntegrity(basicInfo models.BasicInfo, answers models.Answers, bank questionbank.Bank) error {
	if !basicInfo.HousingType.Valid() {
		return errors.NewValidationError(errors.ErrCodeFieldInvalid, "housingType",
			fmt.Sprintf("unknown housing type %q", basicInfo.HousingType))
	}
	if !basicInfo.PyeongRange.Valid() {
		return errors.NewValidationError(errors.ErrCodeFieldInvalid, "pyeongRange",
			fmt.Sprintf("unknown pyeong range %q", basicInfo.PyeongRange))
	}
	if basicInfo.BuildingYear == 0 {
		return errors.NewValidationError(errors.ErrCodeFieldMissing, "buildingYear", "building year is missing")
	}
	if !basicInfo.StayDuration.Valid() {
		return errors.NewValidationError(errors.ErrCodeFieldInvalid, "stayDuration",
			fmt.Sprintf("unknown stay duration %q", basicInfo.StayDuration))
	}
	if !basicInfo.BudgetRange.Valid() {
		return errors.NewValidationError(errors.ErrCodeFieldInvalid, "budgetRange",
			fmt.Sprintf("unknown budget range %q", basicInfo.BudgetRange))
	}
	for _, f := range basicInfo.Family {
		if !f.Valid() {
			return errors.NewValidationError(errors.ErrCodeFieldInvalid, "family",
				fmt.Sprintf("unknown family tag %q", f))
		}
	}

	if answers == nil {
		return errors.NewValidationError(errors.ErrCodeAnswersMissing, "answers", "answers map is absent")
	}
	ids := make([]string, 0, len(answers))
	for id := range answers {
		ids = append(ids, string(id))
	}
	sort.Strings(ids)
	for _, id := range ids {
		if _, ok := bank.Question(models.QuestionID(id)); !ok {
			return errors.NewValidationError(errors.ErrCodeUnknownQuestion, id,
				fmt.Sprintf("question %q is not in the question bank", id))
		}
	}

	return nil
}
