package models

import (
	"fmt"
	"strings"
)

// Note is one notebook record: a title, free-text content and a list of
// normalized tags. Tags behave as a set on add (duplicates collapse)
// but keep their insertion order.
type Note struct {
	title   string
	content string
	tags    []string
}

// NoteData is the persisted form of a Note.
type NoteData struct {
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Tags    []string `json:"tags"`
}

func NewNote(title, content string, tags []string) (*Note, error) {
	if strings.TrimSpace(title) == "" {
		return nil, NewInvalidFormatError("Note title cannot be empty.")
	}
	if strings.TrimSpace(content) == "" {
		return nil, NewInvalidFormatError("Note content cannot be empty.")
	}

	note := &Note{
		title:   strings.TrimSpace(title),
		content: strings.TrimSpace(content),
	}
	note.AddTags(tags)
	return note, nil
}

func (n *Note) Title() string {
	return n.title
}

func (n *Note) Content() string {
	return n.content
}

// Tags returns a copy of the tag list in insertion order.
func (n *Note) Tags() []string {
	out := make([]string, len(n.tags))
	copy(out, n.tags)
	return out
}

// HasTag reports whether the note carries the normalized form of tag.
func (n *Note) HasTag(tag string) bool {
	normalized := NormalizeTag(tag)
	for _, t := range n.tags {
		if t == normalized {
			return true
		}
	}
	return false
}

// AddTags normalizes and merges tags into the note's tag set, returning
// how many were newly added. Tags already present do not count.
func (n *Note) AddTags(tags []string) int {
	added := 0
	for _, raw := range tags {
		tag := NormalizeTag(raw)
		if tag == "" || n.HasTag(tag) {
			continue
		}
		n.tags = append(n.tags, tag)
		added++
	}
	return added
}

// RemoveTags removes the normalized forms of tags, returning how many
// were actually removed. A tag that was never present is not an error.
func (n *Note) RemoveTags(tags []string) int {
	remove := make(map[string]bool, len(tags))
	for _, raw := range tags {
		if tag := NormalizeTag(raw); tag != "" {
			remove[tag] = true
		}
	}

	kept := n.tags[:0]
	removed := 0
	for _, tag := range n.tags {
		if remove[tag] {
			removed++
			continue
		}
		kept = append(kept, tag)
	}
	n.tags = kept
	return removed
}

// setTitle is used by Notebook.Edit when re-keying a renamed note.
func (n *Note) setTitle(title string) {
	n.title = strings.TrimSpace(title)
}

func (n *Note) setContent(content string) {
	n.content = strings.TrimSpace(content)
}

// setTags replaces the tag set wholesale with the normalized forms.
func (n *Note) setTags(tags []string) {
	n.tags = nil
	n.AddTags(tags)
}

// Data converts the note to its persisted form.
func (n *Note) Data() NoteData {
	return NoteData{
		Title:   n.title,
		Content: n.content,
		Tags:    n.Tags(),
	}
}

// NoteFromData rebuilds a note from its persisted form, re-running the
// same validation as live input.
func NoteFromData(data NoteData) (*Note, error) {
	return NewNote(data.Title, data.Content, data.Tags)
}

// String renders the note as a multi-line display block.
func (n *Note) String() string {
	tagsStr := "[no tags]"
	if len(n.tags) > 0 {
		tagsStr = fmt.Sprintf("[%s]", strings.Join(n.tags, ", "))
	}
	return fmt.Sprintf("%s\n  %s\n  %s", n.title, n.content, tagsStr)
}
