package commands

import "strings"

// helpMarkdown is the command reference, authored as markdown so the
// TUI can render it with glamour.
const helpMarkdown = `# Satchel — available commands

## Contact management

| Command | Description |
|---|---|
| ` + "`add contact [name] [phone]`" + ` | Add new contact (or another phone) |
| ` + "`change contact [name] [old] [new]`" + ` | Change phone number |
| ` + "`delete contact [name]`" + ` | Delete contact |
| ` + "`show all`" + ` | Display all contacts |
| ` + "`search [query]`" + ` | Search by name/phone/email/address/birthday |

## Email & address

| Command | Description |
|---|---|
| ` + "`add email [name] [email]`" + ` | Add email to contact |
| ` + "`change email [name] [new_email]`" + ` | Change contact email |
| ` + "`add address [name] [address]`" + ` | Add address to contact |
| ` + "`change address [name] [new_address]`" + ` | Change contact address |

## Birthdays

| Command | Description |
|---|---|
| ` + "`add birthday [name] [DD.MM.YYYY]`" + ` | Add birthday to contact |
| ` + "`change birthday [name] [DD.MM.YYYY]`" + ` | Change contact birthday |
| ` + "`show birthday [name]`" + ` | Display contact birthday |
| ` + "`birthdays [N]`" + ` | Birthdays in exactly N days (default: 7) |

## Notes

| Command | Description |
|---|---|
| ` + "`add note [title], [content] [#tags]`" + ` | Add new note |
| ` + "`view notes`" + ` | Display all notes |
| ` + "`search note [query]`" + ` | Search notes by keyword/tag |
| ` + "`edit note [title], [new_content]`" + ` | Edit note content |
| ` + "`delete note [title]`" + ` | Delete note |
| ` + "`add tag [title], [#tag1 #tag2 ...]`" + ` | Add tags to existing note |
| ` + "`remove tag [title], [#tag1 ...]`" + ` | Remove tags from note |
| ` + "`sort notes`" + ` | Sort notes by primary tag |

## General

| Command | Description |
|---|---|
| ` + "`hello`" + ` | Greet the assistant |
| ` + "`help`" + ` | Show this menu |
| ` + "`close` / `exit`" + ` | Save and exit |
`

// HelpText returns the command reference as markdown.
func HelpText() string {
	return strings.TrimSpace(helpMarkdown)
}
