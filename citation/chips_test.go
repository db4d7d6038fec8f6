package citation

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNumber(t *testing.T) {
	r := ContentResolver{}

	tests := []struct {
		name       string
		citations  []string
		dataPoints []string
		want       []string
	}{
		{
			name: "empty",
			want: []string{},
		},
		{
			name:      "parser citations only",
			citations: []string{"L1", "L2"},
			want:      []string{"1. L1", "2. L2"},
		},
		{
			name:       "unmatched data point appended",
			citations:  []string{"DocA"},
			dataPoints: []string{"DocA: text1", "DocB: text2"},
			want:       []string{"1. DocA", "2. DocB"},
		},
		{
			name:       "data points only",
			dataPoints: []string{"DocA: text1", "DocB: text2"},
			want:       []string{"1. DocA", "2. DocB"},
		},
		{
			name:       "prefix match counts as covered",
			citations:  []string{"handbook.pdf#page=3"},
			dataPoints: []string{"handbook.pdf: some text"},
			want:       []string{"1. handbook.pdf#page=3"},
		},
		{
			name:       "duplicate data point labels emitted once",
			dataPoints: []string{"DocA: one", "DocB: two", "DocA: three"},
			want:       []string{"1. DocA", "2. DocB"},
		},
		{
			name:       "data point without separator uses whole string",
			citations:  []string{"x.txt"},
			dataPoints: []string{"plain snippet"},
			want:       []string{"1. x.txt", "2. plain snippet"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chips := Number(tt.citations, tt.dataPoints, r)

			got := make([]string, 0, len(chips))
			for i, c := range chips {
				if c.Index != i+1 {
					t.Errorf("chip %d has index %d", i, c.Index)
				}
				got = append(got, c.Text())
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Number() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestNumber_ResolvesPaths(t *testing.T) {
	var resolved []string
	r := ResolverFunc(func(label string) string {
		resolved = append(resolved, label)
		return "/docs/" + label
	})

	chips := Number([]string{"a.pdf"}, []string{"b.pdf: text"}, r)

	want := []Chip{
		{Index: 1, Label: "a.pdf", Path: "/docs/a.pdf"},
		{Index: 2, Label: "b.pdf", Path: "/docs/b.pdf"},
	}
	if diff := cmp.Diff(want, chips); diff != "" {
		t.Errorf("Number() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"a.pdf", "b.pdf"}, resolved); diff != "" {
		t.Errorf("resolver calls mismatch (-want +got):\n%s", diff)
	}
}

func TestContentResolver(t *testing.T) {
	tests := []struct {
		name     string
		basePath string
		label    string
		want     string
	}{
		{"root mount", "", "info1.txt", "/content/info1.txt"},
		{"base path", "/ui", "info1.txt", "/ui/content/info1.txt"},
		{"trailing slash trimmed", "/ui/", "a.pdf", "/ui/content/a.pdf"},
		{"spaces escaped", "", "annual report.pdf", "/content/annual%20report.pdf"},
		{"slash escaped", "", "a/b.pdf", "/content/a%2Fb.pdf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ContentResolver{BasePath: tt.basePath}.Resolve(tt.label)
			if got != tt.want {
				t.Errorf("Resolve(%q) = %q, want %q", tt.label, got, tt.want)
			}
		})
	}
}
