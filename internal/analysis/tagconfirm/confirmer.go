// Package tagconfirm evaluates the tag rule table over answers and basic
// facts. Tags come only from matched rules; a request that matches nothing
// is an error, not a neutral result.
package tagconfirm

import (
	"renovation-core/internal/common/errors"
	"renovation-core/internal/models"
)

// Confirmer evaluates the rule table against a fixed reference year.
type Confirmer struct {
	referenceYear int
}

// New creates a confirmer anchored at referenceYear.
func New(referenceYear int) *Confirmer {
	return &Confirmer{referenceYear: referenceYear}
}

// Confirm returns the ordered tag list with provenance. Evaluation order
// is the rule table order; the result preserves it. Zero matches yield a
// ValidationError (NO_TAGS_CONFIRMED).
func (c *Confirmer) Confirm(answers models.Answers, basicInfo models.BasicInfo) (models.PersonalityTags, error) {
	in := ruleInput{
		answers:   answers,
		basicInfo: basicInfo,
		age:       basicInfo.BuildingAge(c.referenceYear),
	}

	result := models.PersonalityTags{
		TriggeredBy: make(map[models.Tag][]models.QuestionID),
	}

	for _, r := range rules {
		if !r.match(in) {
			continue
		}
		result.Tags = append(result.Tags, r.tag)
		if len(r.consults) > 0 {
			result.TriggeredBy[r.tag] = append([]models.QuestionID(nil), r.consults...)
		}
	}

	if len(result.Tags) == 0 {
		return models.PersonalityTags{}, errors.NewValidationError(
			errors.ErrCodeNoTagsConfirmed, "answers",
			"no rule matched: the request carries no usable signal")
	}

	return result, nil
}
