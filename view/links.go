package view

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/youssefsiam38/answerui/citation"
)

// Links builds the URLs the rendered answer uses for its clickable parts.
type Links interface {
	ThoughtProcess(answerID uuid.UUID) string
	SupportingContent(answerID uuid.UUID) string
	Citation(answerID uuid.UUID, chip citation.Chip) string
	Followup(answerID uuid.UUID, index int) string
}

// RouteLinks points every clickable part at the frontend routes mounted
// under BasePath.
type RouteLinks struct {
	BasePath string
}

func (l RouteLinks) answer(id uuid.UUID) string {
	return strings.TrimRight(l.BasePath, "/") + "/answers/" + id.String()
}

// ThoughtProcess implements Links.
func (l RouteLinks) ThoughtProcess(id uuid.UUID) string {
	return l.answer(id) + "/thoughts"
}

// SupportingContent implements Links.
func (l RouteLinks) SupportingContent(id uuid.UUID) string {
	return l.answer(id) + "/supporting-content"
}

// Citation implements Links.
func (l RouteLinks) Citation(id uuid.UUID, chip citation.Chip) string {
	return l.answer(id) + "/citations/" + strconv.Itoa(chip.Index)
}

// Followup implements Links.
func (l RouteLinks) Followup(id uuid.UUID, index int) string {
	return l.answer(id) + "/followups/" + strconv.Itoa(index)
}
