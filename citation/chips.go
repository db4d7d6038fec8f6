// Package citation numbers the citations shown under an answer and resolves
// citation labels to the paths of the cited documents.
package citation

import (
	"strconv"
	"strings"

	"github.com/youssefsiam38/answerui"
)

// Chip is one numbered entry of the citation row.
type Chip struct {
	// Index is the 1-based display number.
	Index int `json:"index"`
	// Label is the document label shown after the number.
	Label string `json:"label"`
	// Path is the resolved path of the cited document.
	Path string `json:"path"`
}

// Text returns the display text "{index}. {label}".
func (c Chip) Text() string {
	return strconv.Itoa(c.Index) + ". " + c.Label
}

// Number builds the citation row. Parser-detected citations come first, in
// their order. Each data point whose label is not a prefix of any parser
// citation follows, in data point order; a label is emitted at most once.
func Number(citations, dataPoints []string, r Resolver) []Chip {
	chips := make([]Chip, 0, len(citations)+len(dataPoints))
	count := 0

	for _, c := range citations {
		count++
		chips = append(chips, Chip{Index: count, Label: c, Path: resolve(r, c)})
	}

	emitted := make(map[string]bool, len(dataPoints))
	for _, dp := range dataPoints {
		label := answerui.ParseDataPoint(dp).Label
		if emitted[label] || covered(citations, label) {
			continue
		}
		emitted[label] = true
		count++
		chips = append(chips, Chip{Index: count, Label: label, Path: resolve(r, label)})
	}

	return chips
}

// covered reports whether any citation starts with label.
func covered(citations []string, label string) bool {
	for _, c := range citations {
		if strings.HasPrefix(c, label) {
			return true
		}
	}
	return false
}

func resolve(r Resolver, label string) string {
	if r == nil {
		return ContentResolver{}.Resolve(label)
	}
	return r.Resolve(label)
}
