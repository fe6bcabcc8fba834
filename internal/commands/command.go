package commands

import (
	"fmt"

	"satchel/internal/audit"
	"satchel/internal/models"
)

// Command is the closed set of verbs the assistant understands.
type Command int

const (
	CmdHello Command = iota
	CmdHelp
	CmdAddContact
	CmdChangeContact
	CmdDeleteContact
	CmdShowAll
	CmdAddBirthday
	CmdChangeBirthday
	CmdShowBirthday
	CmdBirthdays
	CmdAddEmail
	CmdChangeEmail
	CmdAddAddress
	CmdChangeAddress
	CmdSearchContacts
	CmdAddNote
	CmdViewNotes
	CmdSearchNotes
	CmdEditNote
	CmdDeleteNote
	CmdSortNotes
	CmdAddTag
	CmdRemoveTag
)

// Context carries the collections and collaborators every handler
// operates on. There is no ambient global state.
type Context struct {
	Book                *models.AddressBook
	Notebook            *models.Notebook
	Auditor             *audit.Auditor
	DefaultBirthdayDays int
}

// Handler executes one command against the context with already-split
// arguments, returning the user-facing reply.
type Handler func(ctx *Context, args []string) (string, error)

var handlers = map[Command]Handler{
	CmdHello:          hello,
	CmdHelp:           help,
	CmdAddContact:     addContact,
	CmdChangeContact:  changeContact,
	CmdDeleteContact:  deleteContact,
	CmdShowAll:        showAll,
	CmdAddBirthday:    addBirthday,
	CmdChangeBirthday: changeBirthday,
	CmdShowBirthday:   showBirthday,
	CmdBirthdays:      birthdays,
	CmdAddEmail:       addEmail,
	CmdChangeEmail:    changeEmail,
	CmdAddAddress:     addAddress,
	CmdChangeAddress:  changeAddress,
	CmdSearchContacts: searchContacts,
	CmdAddNote:        addNote,
	CmdViewNotes:      viewNotes,
	CmdSearchNotes:    searchNotes,
	CmdEditNote:       editNote,
	CmdDeleteNote:     deleteNote,
	CmdSortNotes:      sortNotes,
	CmdAddTag:         addTag,
	CmdRemoveTag:      removeTag,
}

// Execute runs cmd and converts recoverable errors into user-facing
// messages, so no failure escapes the command boundary.
func Execute(ctx *Context, cmd Command, args []string) string {
	handler, ok := handlers[cmd]
	if !ok {
		return fmt.Sprintf("Unexpected error: no handler for command %d", cmd)
	}

	out, err := handler(ctx, args)
	if err != nil {
		if _, ok := models.KindOf(err); ok {
			return fmt.Sprintf("Error: %s", err.Error())
		}
		return fmt.Sprintf("Unexpected error: %v", err)
	}
	return out
}

func hello(ctx *Context, args []string) (string, error) {
	return "How can I help you?", nil
}

func help(ctx *Context, args []string) (string, error) {
	return HelpText(), nil
}
