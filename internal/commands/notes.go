package commands

import (
	"fmt"
	"strings"

	"satchel/internal/audit"
	"satchel/internal/models"
)

// splitTitleRest parses the "TITLE, REST" argument grammar used by the
// note commands, where the comma separates the (possibly multi-word)
// title from the rest of the input.
func splitTitleRest(args []string, usage string) (title, rest string, err error) {
	joined := strings.TrimSpace(strings.Join(args, " "))
	if joined == "" {
		return "", "", models.NewInvalidArgumentError("Not enough arguments.\n" + usage)
	}
	if !strings.Contains(joined, ",") {
		return "", "", models.NewInvalidArgumentError("Missing comma separator!\n" + usage)
	}

	parts := strings.SplitN(joined, ",", 2)
	title = strings.TrimSpace(parts[0])
	rest = strings.TrimSpace(parts[1])

	if title == "" {
		return "", "", models.NewInvalidFormatError("Note title cannot be empty.")
	}
	return title, rest, nil
}

// splitContentTags separates #-prefixed tag words from plain content
// words.
func splitContentTags(rest string) (content string, tags []string) {
	var contentParts []string
	for _, word := range strings.Fields(rest) {
		if strings.HasPrefix(word, "#") {
			tags = append(tags, word)
		} else {
			contentParts = append(contentParts, word)
		}
	}
	return strings.Join(contentParts, " "), tags
}

func addNote(ctx *Context, args []string) (string, error) {
	usage := "Usage: add note [title], [content] [#tag1 #tag2 ...]\n" +
		"Example: add note To Do, Complete project #important"
	title, rest, err := splitTitleRest(args, usage)
	if err != nil {
		return "", err
	}
	if rest == "" {
		return "", models.NewInvalidFormatError("Note content cannot be empty.")
	}

	content, tags := splitContentTags(rest)
	note, err := models.NewNote(title, content, tags)
	if err != nil {
		return "", err
	}
	ctx.Notebook.Add(note)

	_ = ctx.Auditor.Log(audit.KindNote, audit.ActionCreate, note.Title(),
		map[string]interface{}{"tags": note.Tags()})
	return fmt.Sprintf("Note added: '%s' with %d tag(s).", note.Title(), len(note.Tags())), nil
}

func viewNotes(ctx *Context, args []string) (string, error) {
	if ctx.Notebook.Len() == 0 {
		return "No notes saved.", nil
	}

	var b strings.Builder
	b.WriteString("All notes:\n")
	b.WriteString(strings.Repeat("=", 50) + "\n")
	for i, note := range ctx.Notebook.All() {
		fmt.Fprintf(&b, "%d. %s\n", i+1, note)
		b.WriteString(strings.Repeat("-", 50) + "\n")
	}
	return strings.TrimSpace(b.String()), nil
}

func searchNotes(ctx *Context, args []string) (string, error) {
	query := strings.TrimSpace(strings.Join(args, " "))
	if query == "" {
		return "", models.NewInvalidArgumentError("Please provide a search term.\n" +
			"Usage: search note [keyword or #tag]\n" +
			"Example: search note #todo")
	}

	results := ctx.Notebook.Search(strings.ToLower(strings.TrimLeft(query, "#")))
	if len(results) == 0 {
		return fmt.Sprintf("No notes found matching '%s'.", query), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Search results for '%s':\n", query)
	for _, note := range results {
		fmt.Fprintf(&b, "  • %s\n", note)
	}
	return strings.TrimSpace(b.String()), nil
}

func editNote(ctx *Context, args []string) (string, error) {
	usage := "Usage: edit note [title], [new_content] [#tag1 #tag2 ...]\n" +
		"Example: edit note To Do, Complete project and prepare #urgent"
	title, rest, err := splitTitleRest(args, usage)
	if err != nil {
		return "", err
	}
	if rest == "" {
		return "", models.NewInvalidFormatError("Note content cannot be empty.")
	}

	content, tags := splitContentTags(rest)
	// Tags replace the note's set only when at least one was given.
	if err := ctx.Notebook.Edit(title, "", content, tags); err != nil {
		return "", err
	}

	_ = ctx.Auditor.Log(audit.KindNote, audit.ActionUpdate, title, nil)
	return fmt.Sprintf("Note updated: '%s'", title), nil
}

func deleteNote(ctx *Context, args []string) (string, error) {
	if len(args) < 1 {
		return "", models.NewInvalidArgumentError("Not enough arguments. Usage: delete note [title]")
	}
	title := strings.Join(args, " ")

	if err := ctx.Notebook.Delete(title); err != nil {
		return "", err
	}

	_ = ctx.Auditor.Log(audit.KindNote, audit.ActionDelete, title, nil)
	return fmt.Sprintf("Note '%s' deleted.", title), nil
}

func sortNotes(ctx *Context, args []string) (string, error) {
	if ctx.Notebook.Len() == 0 {
		return "No notes saved.", nil
	}

	var b strings.Builder
	b.WriteString("Notes sorted by tag:\n")
	for i, note := range ctx.Notebook.SortedByPrimaryTag() {
		fmt.Fprintf(&b, "%d. %s\n", i+1, note)
	}
	return strings.TrimSpace(b.String()), nil
}

func addTag(ctx *Context, args []string) (string, error) {
	usage := "Usage: add tag [title], [#tag1 #tag2 ...]\n" +
		"Example: add tag To Do, #urgent #important"
	title, rest, err := splitTitleRest(args, usage)
	if err != nil {
		return "", err
	}
	if rest == "" {
		return "", models.NewInvalidArgumentError("Please provide at least one tag.")
	}

	added, err := ctx.Notebook.AddTags(title, strings.Fields(rest))
	if err != nil {
		return "", err
	}
	note := ctx.Notebook.Find(title)

	_ = ctx.Auditor.Log(audit.KindNote, audit.ActionUpdate, title,
		map[string]interface{}{"added_tags": added})
	return fmt.Sprintf("Added %d tag(s) to '%s'. Total tags: %d", added, title, len(note.Tags())), nil
}

func removeTag(ctx *Context, args []string) (string, error) {
	usage := "Usage: remove tag [title], [#tag1 #tag2 ...]\n" +
		"Example: remove tag To Do, #urgent"
	title, rest, err := splitTitleRest(args, usage)
	if err != nil {
		return "", err
	}
	if rest == "" {
		return "", models.NewInvalidArgumentError("Please provide at least one tag to remove.")
	}

	removed, err := ctx.Notebook.RemoveTags(title, strings.Fields(rest))
	if err != nil {
		return "", err
	}
	if removed == 0 {
		return fmt.Sprintf("No tags were removed from '%s'.", title), nil
	}
	note := ctx.Notebook.Find(title)

	_ = ctx.Auditor.Log(audit.KindNote, audit.ActionUpdate, title,
		map[string]interface{}{"removed_tags": removed})
	return fmt.Sprintf("Removed %d tag(s) from '%s'. Remaining tags: %d", removed, title, len(note.Tags())), nil
}
