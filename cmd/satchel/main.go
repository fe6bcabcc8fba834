package main

import (
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"satchel/internal/audit"
	"satchel/internal/commands"
	"satchel/internal/config"
	"satchel/internal/storage"
	"satchel/internal/tui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.NewStorage(cfg.DataDir, cfg.AddressBookFile, cfg.NotebookFile,
		storage.InvalidRecordPolicy(cfg.OnInvalidRecord))
	if err != nil {
		fmt.Printf("Error initializing storage: %v\n", err)
		os.Exit(1)
	}

	book := store.LoadAddressBook()
	notebook := store.LoadNotebook()

	var auditor *audit.Auditor
	if cfg.AuditLog {
		auditor, err = audit.NewAuditor(store.DataDir())
		if err != nil {
			log.Printf("Warning: audit log disabled: %v", err)
		}
	}

	ctx := &commands.Context{
		Book:                book,
		Notebook:            notebook,
		Auditor:             auditor,
		DefaultBirthdayDays: cfg.DefaultBirthdayDays,
	}

	p := tea.NewProgram(tui.NewModel(ctx, store), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running application: %v\n", err)
		os.Exit(1)
	}

	// One more flush in case the session ended without a clean save.
	if err := store.SaveAddressBook(book); err != nil {
		log.Printf("Warning: %v", err)
	}
	if err := store.SaveNotebook(notebook); err != nil {
		log.Printf("Warning: %v", err)
	}
	if err := auditor.Flush(); err != nil {
		log.Printf("Warning: %v", err)
	}
}
