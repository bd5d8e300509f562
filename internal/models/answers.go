// internal/models/answers.go
package models

import "strings"

// QuestionID identifies a question in the question bank (Q01..Q10).
type QuestionID string

// Answers maps question ids to raw answer values. A value may encode
// multiple sub-answers separated by commas ("누수, 균열"). Immutable per
// request.
type Answers map[QuestionID]string

// Get returns the trimmed answer for id, or "" when absent.
func (a Answers) Get(id QuestionID) string {
	return strings.TrimSpace(a[id])
}

// Contains reports whether the answer for id contains the given sub-answer
// as one of its comma-separated parts.
func (a Answers) Contains(id QuestionID, sub string) bool {
	raw, ok := a[id]
	if !ok {
		return false
	}
	for _, part := range strings.Split(raw, ",") {
		if strings.TrimSpace(part) == sub {
			return true
		}
	}
	return false
}

// Equals reports whether the answer for id equals value after trimming.
func (a Answers) Equals(id QuestionID, value string) bool {
	return a.Get(id) == value
}
