package models

import (
	"sort"
	"strings"
)

// untaggedSortKey sorts notes without tags after every tagged note.
const untaggedSortKey = "zzz"

// Notebook maps note titles to records. Iteration order is insertion
// order; renaming a note re-keys it to the end of the order.
type Notebook struct {
	notes map[string]*Note
	order []string
}

func NewNotebook() *Notebook {
	return &Notebook{
		notes: make(map[string]*Note),
	}
}

// Add inserts the note under its title, overwriting any existing note
// with the same title.
func (nb *Notebook) Add(note *Note) {
	title := note.Title()
	if _, exists := nb.notes[title]; !exists {
		nb.order = append(nb.order, title)
	}
	nb.notes[title] = note
}

// Find returns the note stored under title, or nil.
func (nb *Notebook) Find(title string) *Note {
	return nb.notes[title]
}

// Delete removes the note stored under title.
func (nb *Notebook) Delete(title string) error {
	if _, exists := nb.notes[title]; !exists {
		return NewNotFoundError("Note", title)
	}
	delete(nb.notes, title)
	for i, key := range nb.order {
		if key == title {
			nb.order = append(nb.order[:i], nb.order[i+1:]...)
			break
		}
	}
	return nil
}

// All returns every note in insertion order.
func (nb *Notebook) All() []*Note {
	out := make([]*Note, 0, len(nb.order))
	for _, title := range nb.order {
		out = append(out, nb.notes[title])
	}
	return out
}

func (nb *Notebook) Len() int {
	return len(nb.notes)
}

// Edit updates the note stored under title. A non-empty newTitle
// re-keys the note (the old key is removed, the new one inserted); a
// non-empty newContent replaces the content wholesale. newTags replaces
// the tag set whenever it is non-nil — an empty non-nil slice clears
// every tag, which is distinct from "not provided".
func (nb *Notebook) Edit(title, newTitle, newContent string, newTags []string) error {
	note := nb.Find(title)
	if note == nil {
		return NewNotFoundError("Note", title)
	}

	if strings.TrimSpace(newTitle) != "" {
		if err := nb.Delete(title); err != nil {
			return err
		}
		note.setTitle(newTitle)
		nb.Add(note)
	}

	if strings.TrimSpace(newContent) != "" {
		note.setContent(newContent)
	}

	if newTags != nil {
		note.setTags(newTags)
	}
	return nil
}

// AddTags merges tags into the note stored under title and returns how
// many were newly added.
func (nb *Notebook) AddTags(title string, tags []string) (int, error) {
	note := nb.Find(title)
	if note == nil {
		return 0, NewNotFoundError("Note", title)
	}
	return note.AddTags(tags), nil
}

// RemoveTags removes tags from the note stored under title and returns
// how many were actually removed. Zero matches is not an error.
func (nb *Notebook) RemoveTags(title string, tags []string) (int, error) {
	note := nb.Find(title)
	if note == nil {
		return 0, NewNotFoundError("Note", title)
	}
	return note.RemoveTags(tags), nil
}

// Search returns every note with a case-insensitive substring match in
// its title, content, or any tag, checked in that order. Each note
// appears at most once and results follow insertion order.
func (nb *Notebook) Search(query string) []*Note {
	queryLower := strings.ToLower(query)

	var found []*Note
	for _, note := range nb.All() {
		switch {
		case strings.Contains(strings.ToLower(note.Title()), queryLower):
			found = append(found, note)
		case strings.Contains(strings.ToLower(note.Content()), queryLower):
			found = append(found, note)
		default:
			for _, tag := range note.Tags() {
				if strings.Contains(tag, queryLower) {
					found = append(found, note)
					break
				}
			}
		}
	}
	return found
}

// FindByTag returns every note carrying the normalized form of tag.
func (nb *Notebook) FindByTag(tag string) []*Note {
	var found []*Note
	for _, note := range nb.All() {
		if note.HasTag(tag) {
			found = append(found, note)
		}
	}
	return found
}

// SortedByPrimaryTag returns the notes stably sorted by their first
// tag; untagged notes sort after all tagged ones, ties keep collection
// order.
func (nb *Notebook) SortedByPrimaryTag() []*Note {
	notes := nb.All()
	sort.SliceStable(notes, func(i, j int) bool {
		return primaryTag(notes[i]) < primaryTag(notes[j])
	})
	return notes
}

func primaryTag(n *Note) string {
	tags := n.Tags()
	if len(tags) == 0 {
		return untaggedSortKey
	}
	return tags[0]
}
