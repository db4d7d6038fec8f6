package answerui

import (
	"strings"

	"github.com/google/uuid"
)

// DataPointSeparator separates the label of a data point from its content.
const DataPointSeparator = ": "

// Answer is one assistant answer as returned by the ask endpoint of the chat
// backend. Answers are immutable once created; the ID is the answer's
// identity for caching purposes.
type Answer struct {
	// ID identifies this answer. Two answers with identical text but
	// different IDs are different answers.
	ID uuid.UUID `json:"id"`

	// Text is the raw model output with citation and follow-up markers.
	Text string `json:"answer"`

	// Thoughts is the optional thought process (HTML with <br> line breaks).
	Thoughts string `json:"thoughts,omitempty"`

	// DataPoints are the retrieved snippets, each "<label>: <content>".
	DataPoints []string `json:"data_points"`

	// SupportingContentAvailable is reported by the backend. The supporting
	// content trigger is driven by DataPoints, not by this flag.
	SupportingContentAvailable bool `json:"supporting_content_available,omitempty"`
}

// NewAnswer creates an answer with a fresh identity.
func NewAnswer(text, thoughts string, dataPoints []string) *Answer {
	dp := make([]string, len(dataPoints))
	copy(dp, dataPoints)
	return &Answer{
		ID:         uuid.New(),
		Text:       text,
		Thoughts:   thoughts,
		DataPoints: dp,
	}
}

// HasThoughts reports whether the answer carries a thought process.
func (a *Answer) HasThoughts() bool {
	return a != nil && strings.TrimSpace(a.Thoughts) != ""
}

// HasSupportingContent reports whether the answer has any data points.
func (a *Answer) HasSupportingContent() bool {
	return a != nil && len(a.DataPoints) > 0
}

// ParsedAnswer is the render data derived from an Answer's text.
type ParsedAnswer struct {
	// HTML is the answer body with citation markers replaced by numbered
	// references and follow-up markers removed. It is NOT sanitized.
	HTML string `json:"answer_html"`

	// Citations holds the cited labels, unique, in first-seen order.
	Citations []string `json:"citations"`

	// FollowupQuestions holds the suggested next questions in order.
	FollowupQuestions []string `json:"followup_questions"`
}

// DataPoint is a data point split into its label and content.
type DataPoint struct {
	Label   string `json:"label"`
	Content string `json:"content"`
}

// ParseDataPoint splits s at the first DataPointSeparator. Without a
// separator the whole string is the label.
func ParseDataPoint(s string) DataPoint {
	label, content, found := strings.Cut(s, DataPointSeparator)
	if !found {
		return DataPoint{Label: s}
	}
	return DataPoint{Label: label, Content: content}
}

// ParseDataPoints splits every data point of an answer.
func ParseDataPoints(dataPoints []string) []DataPoint {
	out := make([]DataPoint, 0, len(dataPoints))
	for _, dp := range dataPoints {
		out = append(out, ParseDataPoint(dp))
	}
	return out
}
