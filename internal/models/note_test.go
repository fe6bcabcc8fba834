package models

import (
	"reflect"
	"testing"
)

func mustNote(t *testing.T, title, content string, tags []string) *Note {
	t.Helper()
	note, err := NewNote(title, content, tags)
	if err != nil {
		t.Fatalf("Failed to create note: %v", err)
	}
	return note
}

func TestNewNoteValidation(t *testing.T) {
	if _, err := NewNote("  ", "content", nil); !IsKind(err, ErrInvalidFormat) {
		t.Errorf("Expected ErrInvalidFormat for blank title, got %v", err)
	}
	if _, err := NewNote("title", "   ", nil); !IsKind(err, ErrInvalidFormat) {
		t.Errorf("Expected ErrInvalidFormat for blank content, got %v", err)
	}

	note := mustNote(t, "  Groceries  ", "  milk, eggs  ", nil)
	if note.Title() != "Groceries" {
		t.Errorf("Expected trimmed title, got %q", note.Title())
	}
	if note.Content() != "milk, eggs" {
		t.Errorf("Expected trimmed content, got %q", note.Content())
	}
}

func TestNewNoteNormalizesTags(t *testing.T) {
	note := mustNote(t, "t", "c", []string{" #Work ", "WORK", "#home", ""})

	want := []string{"work", "home"}
	if !reflect.DeepEqual(note.Tags(), want) {
		t.Errorf("Expected %v, got %v", want, note.Tags())
	}
}

func TestNoteAddTagsCountsNewOnly(t *testing.T) {
	note := mustNote(t, "t", "c", []string{"a", "b"})

	if added := note.AddTags([]string{"b", "c"}); added != 1 {
		t.Errorf("Expected 1 added, got %d", added)
	}
	want := []string{"a", "b", "c"}
	if !reflect.DeepEqual(note.Tags(), want) {
		t.Errorf("Expected %v, got %v", want, note.Tags())
	}
}

func TestNoteRemoveTags(t *testing.T) {
	note := mustNote(t, "t", "c", []string{"a", "b", "c"})

	if removed := note.RemoveTags([]string{"#B"}); removed != 1 {
		t.Errorf("Expected 1 removed, got %d", removed)
	}
	want := []string{"a", "c"}
	if !reflect.DeepEqual(note.Tags(), want) {
		t.Errorf("Expected %v, got %v", want, note.Tags())
	}

	if removed := note.RemoveTags([]string{"missing"}); removed != 0 {
		t.Errorf("Expected 0 removed for absent tag, got %d", removed)
	}
}

func TestNoteHasTagNormalizes(t *testing.T) {
	note := mustNote(t, "t", "c", []string{"work"})

	if !note.HasTag(" #WORK ") {
		t.Error("Expected HasTag to normalize its argument")
	}
	if note.HasTag("home") {
		t.Error("Expected HasTag to miss absent tag")
	}
}

func TestNoteTagsReturnsCopy(t *testing.T) {
	note := mustNote(t, "t", "c", []string{"a"})

	tags := note.Tags()
	tags[0] = "mutated"
	if note.Tags()[0] != "a" {
		t.Error("Expected Tags to return a defensive copy")
	}
}

func TestNoteRoundTrip(t *testing.T) {
	note := mustNote(t, "Plan", "quarterly review", []string{"work", "q3"})

	restored, err := NoteFromData(note.Data())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if restored.Title() != "Plan" || restored.Content() != "quarterly review" {
		t.Errorf("Expected fields preserved, got %q / %q", restored.Title(), restored.Content())
	}
	if !reflect.DeepEqual(restored.Tags(), []string{"work", "q3"}) {
		t.Errorf("Expected tags preserved, got %v", restored.Tags())
	}
}

func TestNoteString(t *testing.T) {
	tagged := mustNote(t, "Plan", "review", []string{"work", "q3"})
	if got := tagged.String(); got != "Plan\n  review\n  [work, q3]" {
		t.Errorf("Unexpected render: %q", got)
	}

	bare := mustNote(t, "Plan", "review", nil)
	if got := bare.String(); got != "Plan\n  review\n  [no tags]" {
		t.Errorf("Unexpected render: %q", got)
	}
}
