package commands

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddNote(t *testing.T) {
	ctx := newTestContext()

	out := run(ctx, "add note Shopping List, buy milk and eggs #errands #urgent")
	assert.Equal(t, "Note added: 'Shopping List' with 2 tag(s).", out)

	note := ctx.Notebook.Find("Shopping List")
	require.NotNil(t, note)
	assert.Equal(t, "buy milk and eggs", note.Content())
	assert.Equal(t, []string{"errands", "urgent"}, note.Tags())
}

func TestAddNoteArgumentErrors(t *testing.T) {
	ctx := newTestContext()

	out := run(ctx, "add note")
	assert.True(t, strings.HasPrefix(out, "Error: Not enough arguments.\n"))
	assert.Contains(t, out, "Usage: add note [title], [content]")

	out = run(ctx, "add note title without comma")
	assert.True(t, strings.HasPrefix(out, "Error: Missing comma separator!\n"))

	out = run(ctx, "add note Shopping List,")
	assert.Equal(t, "Error: Note content cannot be empty.", out)
}

func TestViewNotes(t *testing.T) {
	ctx := newTestContext()
	assert.Equal(t, "No notes saved.", run(ctx, "view notes"))

	run(ctx, "add note First, alpha #one")
	run(ctx, "add note Second, beta")

	out := run(ctx, "view notes")
	assert.True(t, strings.HasPrefix(out, "All notes:\n"+strings.Repeat("=", 50)))
	assert.Contains(t, out, "1. First\n  alpha\n  [one]")
	assert.Contains(t, out, "2. Second\n  beta\n  [no tags]")
	assert.Contains(t, out, strings.Repeat("-", 50))
}

func TestSearchNotes(t *testing.T) {
	ctx := newTestContext()
	run(ctx, "add note Shopping, buy milk #errands")
	run(ctx, "add note Plan, quarterly review #work")

	out := run(ctx, "search note milk")
	assert.True(t, strings.HasPrefix(out, "Search results for 'milk':\n"))
	assert.Contains(t, out, "• Shopping")
	assert.NotContains(t, out, "Plan")

	// A leading '#' searches by tag.
	out = run(ctx, "search note #work")
	assert.Contains(t, out, "• Plan")

	assert.Equal(t, "No notes found matching 'zzz'.", run(ctx, "search note zzz"))

	out = run(ctx, "search note")
	assert.True(t, strings.HasPrefix(out, "Error: Please provide a search term."))
}

func TestEditNote(t *testing.T) {
	ctx := newTestContext()
	run(ctx, "add note Plan, first draft #work")

	out := run(ctx, "edit note Plan, second draft")
	assert.Equal(t, "Note updated: 'Plan'", out)

	note := ctx.Notebook.Find("Plan")
	require.NotNil(t, note)
	assert.Equal(t, "second draft", note.Content())
	// No tags in the edit leaves the existing ones alone.
	assert.Equal(t, []string{"work"}, note.Tags())

	run(ctx, "edit note Plan, third draft #urgent")
	assert.Equal(t, []string{"urgent"}, note.Tags())

	out = run(ctx, "edit note Ghost, anything")
	assert.Equal(t, "Error: Note 'Ghost' not found", out)
}

func TestDeleteNote(t *testing.T) {
	ctx := newTestContext()
	run(ctx, "add note Shopping List, buy milk")

	// Multi-word titles need no comma when deleting.
	assert.Equal(t, "Note 'Shopping List' deleted.", run(ctx, "delete note Shopping List"))
	assert.Equal(t, "Error: Note 'Shopping List' not found", run(ctx, "delete note Shopping List"))
}

func TestSortNotes(t *testing.T) {
	ctx := newTestContext()
	assert.Equal(t, "No notes saved.", run(ctx, "sort notes"))

	run(ctx, "add note Untagged, plain")
	run(ctx, "add note Work, busy #work")
	run(ctx, "add note Home, chores #home")

	out := run(ctx, "sort notes")
	require.True(t, strings.HasPrefix(out, "Notes sorted by tag:\n"))
	assert.Less(t, strings.Index(out, "Home"), strings.Index(out, "Work"))
	assert.Less(t, strings.Index(out, "Work"), strings.Index(out, "Untagged"))
}

func TestAddTag(t *testing.T) {
	ctx := newTestContext()
	run(ctx, "add note Plan, review #work")

	out := run(ctx, "add tag Plan, #urgent #work")
	assert.Equal(t, "Added 1 tag(s) to 'Plan'. Total tags: 2", out)

	out = run(ctx, "add tag Plan,")
	assert.Equal(t, "Error: Please provide at least one tag.", out)

	out = run(ctx, "add tag Ghost, #x")
	assert.Equal(t, "Error: Note 'Ghost' not found", out)
}

func TestRemoveTag(t *testing.T) {
	ctx := newTestContext()
	run(ctx, "add note Plan, review #work #urgent")

	out := run(ctx, "remove tag Plan, #work")
	assert.Equal(t, "Removed 1 tag(s) from 'Plan'. Remaining tags: 1", out)

	out = run(ctx, "remove tag Plan, #missing")
	assert.Equal(t, "No tags were removed from 'Plan'.", out)

	out = run(ctx, "remove tag Plan,")
	assert.Equal(t, "Error: Please provide at least one tag to remove.", out)
}
