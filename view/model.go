package view

import (
	"html/template"

	"github.com/google/uuid"
	"github.com/youssefsiam38/answerui/citation"
)

// Callbacks receive the user's interactions with a rendered answer.
type Callbacks struct {
	// OnCitationClicked receives the resolved path of the clicked citation.
	OnCitationClicked func(path string)

	OnThoughtProcessClicked    func()
	OnSupportingContentClicked func()

	// OnFollowupQuestionClicked is optional. Without it the follow-up row
	// is never shown.
	OnFollowupQuestionClicked func(question string)
}

// Props are the per-render inputs of an answer view besides the answer.
type Props struct {
	IsSelected            bool
	ShowFollowupQuestions bool
	Callbacks             Callbacks
}

// Model is a built answer view, ready to render or to receive clicks.
type Model struct {
	AnswerID   uuid.UUID
	IsSelected bool

	ThoughtProcessEnabled    bool
	SupportingContentEnabled bool

	// Body is the sanitized answer HTML.
	Body template.HTML

	// Citations is the numbered citation row. Empty means no row.
	Citations []citation.Chip

	FollowupQuestions []string
	// ShowFollowups is set when there are follow-up questions, the caller
	// opted in, and a handler exists.
	ShowFollowups bool

	callbacks Callbacks
	links     Links
}

// ClickCitation handles a click on the chip numbered index (1-based, as
// displayed). OnCitationClicked is invoked once with the chip's path.
func (m *Model) ClickCitation(index int) error {
	if index < 1 || index > len(m.Citations) {
		return ErrIndexOutOfRange
	}
	chip := m.Citations[index-1]
	if m.callbacks.OnCitationClicked != nil {
		m.callbacks.OnCitationClicked(chip.Path)
	}
	return nil
}

// Citation returns the chip numbered index (1-based).
func (m *Model) Citation(index int) (citation.Chip, bool) {
	if index < 1 || index > len(m.Citations) {
		return citation.Chip{}, false
	}
	return m.Citations[index-1], true
}

// ClickThoughtProcess handles a click on the thought process trigger.
func (m *Model) ClickThoughtProcess() error {
	if !m.ThoughtProcessEnabled {
		return ErrTriggerDisabled
	}
	if m.callbacks.OnThoughtProcessClicked != nil {
		m.callbacks.OnThoughtProcessClicked()
	}
	return nil
}

// ClickSupportingContent handles a click on the supporting content trigger.
func (m *Model) ClickSupportingContent() error {
	if !m.SupportingContentEnabled {
		return ErrTriggerDisabled
	}
	if m.callbacks.OnSupportingContentClicked != nil {
		m.callbacks.OnSupportingContentClicked()
	}
	return nil
}

// ClickFollowup handles a click on follow-up question i (0-based).
func (m *Model) ClickFollowup(i int) error {
	if !m.ShowFollowups {
		return ErrFollowupsHidden
	}
	if i < 0 || i >= len(m.FollowupQuestions) {
		return ErrIndexOutOfRange
	}
	m.callbacks.OnFollowupQuestionClicked(m.FollowupQuestions[i])
	return nil
}

// Template helpers. Empty strings render no link.

func (m *Model) ThoughtProcessHref() string {
	if m.links == nil {
		return ""
	}
	return m.links.ThoughtProcess(m.AnswerID)
}

func (m *Model) SupportingContentHref() string {
	if m.links == nil {
		return ""
	}
	return m.links.SupportingContent(m.AnswerID)
}

func (m *Model) CitationHref(chip citation.Chip) string {
	if m.links == nil {
		return chip.Path
	}
	return m.links.Citation(m.AnswerID, chip)
}

func (m *Model) FollowupHref(i int) string {
	if m.links == nil {
		return ""
	}
	return m.links.Followup(m.AnswerID, i)
}
