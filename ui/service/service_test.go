package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/youssefsiam38/answerui"
)

func TestMemoryStore_AddGet(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(0)
	a := answerui.NewAnswer("hello", "", nil)

	if err := s.AddAnswer(ctx, a); err != nil {
		t.Fatalf("AddAnswer() error = %v", err)
	}
	got, err := s.GetAnswer(ctx, a.ID)
	if err != nil {
		t.Fatalf("GetAnswer() error = %v", err)
	}
	if got.Answer != a {
		t.Error("GetAnswer() returned a different answer")
	}

	if err := s.AddAnswer(ctx, a); !errors.Is(err, ErrDuplicate) {
		t.Errorf("AddAnswer() duplicate error = %v, want ErrDuplicate", err)
	}
	if _, err := s.GetAnswer(ctx, uuid.New()); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetAnswer() error = %v, want ErrNotFound", err)
	}
	if err := s.AddAnswer(ctx, nil); !errors.Is(err, ErrNilAnswer) {
		t.Errorf("AddAnswer(nil) error = %v, want ErrNilAnswer", err)
	}
}

func TestMemoryStore_AssignsID(t *testing.T) {
	s := NewMemoryStore(0)
	a := &answerui.Answer{Text: "x"}
	if err := s.AddAnswer(context.Background(), a); err != nil {
		t.Fatalf("AddAnswer() error = %v", err)
	}
	if a.ID == uuid.Nil {
		t.Error("expected an ID to be assigned")
	}
}

func TestMemoryStore_DropsOldest(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(2)
	first := answerui.NewAnswer("1", "", nil)
	for _, a := range []*answerui.Answer{first, answerui.NewAnswer("2", "", nil), answerui.NewAnswer("3", "", nil)} {
		if err := s.AddAnswer(ctx, a); err != nil {
			t.Fatalf("AddAnswer() error = %v", err)
		}
	}

	if n, _ := s.CountAnswers(ctx); n != 2 {
		t.Errorf("CountAnswers() = %d, want 2", n)
	}
	if _, err := s.GetAnswer(ctx, first.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("oldest answer still present, err = %v", err)
	}
}

func TestService_ListAnswers(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(0)
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	n := 0
	store.now = func() time.Time {
		n++
		return base.Add(time.Duration(n) * time.Minute)
	}
	svc := New(store)

	for _, text := range []string{"one", "two", "three"} {
		if err := svc.AddAnswer(ctx, answerui.NewAnswer(text, "", []string{"a: b"})); err != nil {
			t.Fatalf("AddAnswer() error = %v", err)
		}
	}

	tests := []struct {
		name        string
		params      AnswerListParams
		wantPreview []string
		wantHasMore bool
	}{
		{"first page", AnswerListParams{Limit: 2}, []string{"three", "two"}, true},
		{"second page", AnswerListParams{Limit: 2, Offset: 2}, []string{"one"}, false},
		{"limit clamped up", AnswerListParams{Limit: 0}, []string{"three"}, true},
		{"negative offset", AnswerListParams{Limit: 5, Offset: -3}, []string{"three", "two", "one"}, false},
		{"offset past end", AnswerListParams{Limit: 5, Offset: 10}, []string{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list, err := svc.ListAnswers(ctx, tt.params)
			if err != nil {
				t.Fatalf("ListAnswers() error = %v", err)
			}
			got := make([]string, 0, len(list.Answers))
			for _, a := range list.Answers {
				got = append(got, a.Preview)
			}
			if strings.Join(got, ",") != strings.Join(tt.wantPreview, ",") {
				t.Errorf("previews = %v, want %v", got, tt.wantPreview)
			}
			if list.HasMore != tt.wantHasMore {
				t.Errorf("HasMore = %v, want %v", list.HasMore, tt.wantHasMore)
			}
			if list.TotalCount != 3 {
				t.Errorf("TotalCount = %d, want 3", list.TotalCount)
			}
		})
	}
}

func TestService_Conversation(t *testing.T) {
	ctx := context.Background()
	svc := New(NewMemoryStore(0))
	for _, text := range []string{"one", "two", "three"} {
		if err := svc.AddAnswer(ctx, answerui.NewAnswer(text, "", nil)); err != nil {
			t.Fatalf("AddAnswer() error = %v", err)
		}
	}

	got, err := svc.Conversation(ctx, 10)
	if err != nil {
		t.Fatalf("Conversation() error = %v", err)
	}
	if len(got) != 3 || got[0].Text != "one" || got[2].Text != "three" {
		t.Errorf("Conversation() order wrong: %v", got)
	}
}

func TestPreview(t *testing.T) {
	long := strings.Repeat("ก", previewLength+10)
	got := preview(long)
	if len([]rune(got)) != previewLength || !strings.HasSuffix(got, "...") {
		t.Errorf("preview() = %q (%d runes)", got, len([]rune(got)))
	}
	if preview("short") != "short" {
		t.Error("short text should be unchanged")
	}
}
