// Package normalize converts the external request shape into typed domain
// input. The raw document is schema-validated before any field is read;
// the pipeline itself never sees untyped maps.
package normalize

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"renovation-core/internal/common/errors"
	"renovation-core/internal/models"
)

const basicInfoSchema = `{
  "type": "object",
  "required": ["housingType", "pyeongRange", "buildingYear", "stayDuration", "family", "budgetRange"],
  "additionalProperties": false,
  "properties": {
    "housingType": {"type": "string", "enum": ["APARTMENT", "VILLA", "OFFICETEL", "HOUSE"]},
    "pyeongRange": {"type": "string", "enum": ["UNDER_10", "P10_20", "P20_30", "P30_40", "OVER_40"]},
    "buildingYear": {"type": "integer", "minimum": 1950, "maximum": 2100},
    "stayDuration": {"type": "string", "enum": ["UNDER_2Y", "Y2_5", "OVER_5Y"]},
    "family": {
      "type": "array",
      "items": {"type": "string", "enum": ["SINGLE", "COUPLE", "INFANT", "CHILD", "TEEN", "SENIOR", "PET"]}
    },
    "budgetRange": {"type": "string", "enum": ["UNDER_10M", "B10_30M", "B30_50M", "OVER_50M"]}
  }
}`

// BasicInfo validates raw against the basic-info schema and maps it to the
// typed model. Schema violations surface as ValidationError with every
// failed field listed.
func BasicInfo(raw map[string]interface{}) (models.BasicInfo, error) {
	var zero models.BasicInfo
	if raw == nil {
		return zero, errors.NewValidationError(errors.ErrCodeBasicInfoMissing, "basicInfo", "basic info document is absent")
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(basicInfoSchema),
		gojsonschema.NewGoLoader(raw),
	)
	if err != nil {
		return zero, fmt.Errorf("schema validation: %w", err)
	}
	if !result.Valid() {
		details := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			details = append(details, desc.String())
		}
		return zero, errors.NewValidationError(errors.ErrCodeSchemaViolation, "basicInfo", strings.Join(details, "; "))
	}

	// Round-trip through JSON: the schema already pinned every shape.
	encoded, err := json.Marshal(raw)
	if err != nil {
		return zero, fmt.Errorf("encode basic info: %w", err)
	}
	var info models.BasicInfo
	if err := json.Unmarshal(encoded, &info); err != nil {
		return zero, fmt.Errorf("decode basic info: %w", err)
	}

	return info, nil
}

// Answers converts a raw string map into the typed answers map, rejecting
// blank question ids.
func Answers(raw map[string]string) (models.Answers, error) {
	if raw == nil {
		return nil, errors.NewValidationError(errors.ErrCodeAnswersMissing, "answers", "answers document is absent")
	}
	answers := make(models.Answers, len(raw))
	for id, value := range raw {
		trimmed := strings.TrimSpace(id)
		if trimmed == "" {
			return nil, errors.NewValidationError(errors.ErrCodeFieldInvalid, "answers", "blank question id")
		}
		answers[models.QuestionID(trimmed)] = value
	}
	return answers, nil
}
