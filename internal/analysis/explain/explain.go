// Package explain translates confirmed tags and process actions into
// human-readable rationale. It is a pure template lookup: it never
// re-derives, reorders or alters what upstream components decided.
package explain

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"renovation-core/internal/models"
)

// Build emits rationale entries in the exact order decisions arrived. Tags
// without a registered template are skipped; disable actions are not
// explained.
func Build(tags models.PersonalityTags, changes models.ProcessChanges, basicInfo models.BasicInfo) models.Explanation {
	var out models.Explanation

	for _, tag := range tags.Tags {
		tpl, ok := tagTemplates[tag]
		if !ok {
			continue
		}
		out.TagReasons = append(out.TagReasons, models.TagReason{
			Key:         tag,
			Title:       tpl.Title,
			Description: tpl.Description,
		})
	}

	for _, action := range changes.ProcessActions {
		phrase, ok := actionPhrases[action.Action]
		if !ok {
			continue
		}
		name, ok := processNames[action.ProcessID]
		if !ok {
			continue
		}
		out.ProcessReasons = append(out.ProcessReasons, models.ProcessReason{
			ProcessID:   action.ProcessID,
			Action:      action.Action,
			Description: fmt.Sprintf("%s %s: %s", capitalize(name), phrase, action.Reason),
		})
	}

	out.Summary = summarize(out, basicInfo)
	return out
}

func summarize(e models.Explanation, basicInfo models.BasicInfo) string {
	if len(e.TagReasons) == 0 {
		return ""
	}
	lead := e.TagReasons[0].Title
	return fmt.Sprintf("%s. We confirmed %d signal(s) from your answers and derived %d process decision(s) for your %s.",
		lead, len(e.TagReasons), len(e.ProcessReasons), housingPhrase(basicInfo.HousingType))
}

func housingPhrase(t models.HousingType) string {
	switch t {
	case models.HousingApartment:
		return "apartment"
	case models.HousingVilla:
		return "villa"
	case models.HousingOfficetel:
		return "officetel"
	case models.HousingHouse:
		return "house"
	}
	return "home"
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError && size <= 1 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
