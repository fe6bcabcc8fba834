package commands

import (
	"strings"
)

// twoWordVerbs are recognized by merging the first two input tokens.
var twoWordVerbs = map[string]bool{
	"show all":        true,
	"add contact":     true,
	"change contact":  true,
	"add birthday":    true,
	"change birthday": true,
	"show birthday":   true,
	"add email":       true,
	"change email":    true,
	"add address":     true,
	"change address":  true,
	"delete contact":  true,
	"add note":        true,
	"search note":     true,
	"edit note":       true,
	"delete note":     true,
	"view notes":      true,
	"sort notes":      true,
	"add tag":         true,
	"remove tag":      true,
}

var verbs = map[string]Command{
	"hello":           CmdHello,
	"help":            CmdHelp,
	"add contact":     CmdAddContact,
	"change contact":  CmdChangeContact,
	"delete contact":  CmdDeleteContact,
	"show all":        CmdShowAll,
	"add birthday":    CmdAddBirthday,
	"change birthday": CmdChangeBirthday,
	"show birthday":   CmdShowBirthday,
	"birthdays":       CmdBirthdays,
	"add email":       CmdAddEmail,
	"change email":    CmdChangeEmail,
	"add address":     CmdAddAddress,
	"change address":  CmdChangeAddress,
	"search":          CmdSearchContacts,
	"add note":        CmdAddNote,
	"view notes":      CmdViewNotes,
	"search note":     CmdSearchNotes,
	"edit note":       CmdEditNote,
	"delete note":     CmdDeleteNote,
	"sort notes":      CmdSortNotes,
	"add tag":         CmdAddTag,
	"remove tag":      CmdRemoveTag,
}

// Parse splits raw user input into a verb and its arguments, merging
// the first two tokens when they form a known two-word verb.
func Parse(input string) (string, []string) {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return "", nil
	}

	if len(parts) >= 2 {
		twoWord := strings.ToLower(parts[0] + " " + parts[1])
		if twoWordVerbs[twoWord] {
			return twoWord, parts[2:]
		}
	}

	return strings.ToLower(parts[0]), parts[1:]
}

// Lookup resolves a parsed verb to its command.
func Lookup(verb string) (Command, bool) {
	cmd, ok := verbs[verb]
	return cmd, ok
}
