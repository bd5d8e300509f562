// Package questionbank resolves question ids to their metadata. The
// pipeline consumes it as an interface only; the core never owns question
// persistence.
package questionbank

import "renovation-core/internal/models"

// Question is the metadata behind one questionnaire entry.
type Question struct {
	ID          models.QuestionID `json:"id"`
	Text        string            `json:"text"`
	Category    string            `json:"category"`
	MultiSelect bool              `json:"multiSelect"`
}

// Bank looks up question metadata.
type Bank interface {
	Question(id models.QuestionID) (Question, bool)
	Questions() []Question
}

// StaticBank is the in-memory bank used in tests and as the default
// runner wiring.
type StaticBank struct {
	byID  map[models.QuestionID]Question
	order []models.QuestionID
}

// NewStaticBank builds a bank from a fixed question list.
func NewStaticBank(questions []Question) *StaticBank {
	b := &StaticBank{byID: make(map[models.QuestionID]Question, len(questions))}
	for _, q := range questions {
		if _, dup := b.byID[q.ID]; dup {
			continue
		}
		b.byID[q.ID] = q
		b.order = append(b.order, q.ID)
	}
	return b
}

func (b *StaticBank) Question(id models.QuestionID) (Question, bool) {
	q, ok := b.byID[id]
	return q, ok
}

func (b *StaticBank) Questions() []Question {
	out := make([]Question, 0, len(b.order))
	for _, id := range b.order {
		out = append(out, b.byID[id])
	}
	return out
}

// DefaultQuestions is the questionnaire the rule table is written against.
var DefaultQuestions = []Question{
	{ID: "Q01", Text: "현재 집에서 가장 불편한 점은 무엇인가요?", Category: "general", MultiSelect: true},
	{ID: "Q02", Text: "집에서 발견한 하자가 있나요?", Category: "condition", MultiSelect: true},
	{ID: "Q03", Text: "결로나 곰팡이가 얼마나 자주 생기나요?", Category: "condition"},
	{ID: "Q04", Text: "물건이 어질러져 있는 일이 얼마나 잦은가요?", Category: "storage"},
	{ID: "Q05", Text: "필요한 물건을 못 찾는 일이 있나요?", Category: "storage"},
	{ID: "Q06", Text: "생활 중 가장 거슬리는 것은 무엇인가요?", Category: "comfort", MultiSelect: true},
	{ID: "Q07", Text: "이번 공사에서 가장 기대하는 변화는 무엇인가요?", Category: "preference", MultiSelect: true},
	{ID: "Q08", Text: "집에서 요리를 얼마나 자주 하나요?", Category: "lifestyle"},
	{ID: "Q09", Text: "집에서 보내는 시간이 가장 긴 공간은 어디인가요?", Category: "lifestyle"},
	{ID: "Q10", Text: "손님 방문이 잦은 편인가요?", Category: "lifestyle"},
}

// NewDefaultBank returns the static bank over DefaultQuestions.
func NewDefaultBank() *StaticBank {
	return NewStaticBank(DefaultQuestions)
}
