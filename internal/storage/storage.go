package storage

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"satchel/internal/models"
)

// InvalidRecordPolicy controls what happens when a single persisted
// record fails re-validation on load.
type InvalidRecordPolicy string

const (
	// PolicySkip drops the offending record with a warning and keeps
	// loading the rest.
	PolicySkip InvalidRecordPolicy = "skip"
	// PolicyAbort abandons the whole file and starts empty.
	PolicyAbort InvalidRecordPolicy = "abort"
)

// Storage persists the address book and notebook as two independent
// JSON files inside the data directory. Saves are full rewrites; loads
// degrade to an empty collection instead of failing.
type Storage struct {
	dataDir         string
	addressBookFile string
	notebookFile    string
	onInvalid       InvalidRecordPolicy
}

func NewStorage(dataDir, addressBookFile, notebookFile string, onInvalid InvalidRecordPolicy) (*Storage, error) {
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	if onInvalid != PolicySkip && onInvalid != PolicyAbort {
		onInvalid = PolicySkip
	}

	return &Storage{
		dataDir:         dataDir,
		addressBookFile: addressBookFile,
		notebookFile:    notebookFile,
		onInvalid:       onInvalid,
	}, nil
}

func (s *Storage) DataDir() string {
	return s.dataDir
}

// LoadAddressBook hydrates the address book from disk. A missing file
// yields an empty book; malformed JSON yields an empty book with a
// warning. Every stored record passes through the same validators as
// live input.
func (s *Storage) LoadAddressBook() *models.AddressBook {
	book := models.NewAddressBook()

	var records []models.ContactData
	if !s.loadArray(s.addressBookFile, &records) {
		return book
	}

	for _, data := range records {
		contact, err := models.ContactFromData(data)
		if err != nil {
			log.Printf("Warning: invalid contact %q in %s: %v", data.Name, s.addressBookFile, err)
			if s.onInvalid == PolicyAbort {
				log.Printf("Warning: abandoning %s, starting with an empty address book", s.addressBookFile)
				return models.NewAddressBook()
			}
			continue
		}
		book.Add(contact)
	}
	return book
}

// SaveAddressBook rewrites the address book file with the current
// in-memory contents.
func (s *Storage) SaveAddressBook(book *models.AddressBook) error {
	contacts := book.All()
	records := make([]models.ContactData, 0, len(contacts))
	for _, contact := range contacts {
		records = append(records, contact.Data())
	}
	return s.saveArray(s.addressBookFile, records)
}

// LoadNotebook hydrates the notebook from disk with the same degraded
// failure modes as LoadAddressBook.
func (s *Storage) LoadNotebook() *models.Notebook {
	notebook := models.NewNotebook()

	var records []models.NoteData
	if !s.loadArray(s.notebookFile, &records) {
		return notebook
	}

	for _, data := range records {
		note, err := models.NoteFromData(data)
		if err != nil {
			log.Printf("Warning: invalid note %q in %s: %v", data.Title, s.notebookFile, err)
			if s.onInvalid == PolicyAbort {
				log.Printf("Warning: abandoning %s, starting with an empty notebook", s.notebookFile)
				return models.NewNotebook()
			}
			continue
		}
		notebook.Add(note)
	}
	return notebook
}

// SaveNotebook rewrites the notebook file with the current in-memory
// contents.
func (s *Storage) SaveNotebook(notebook *models.Notebook) error {
	notes := notebook.All()
	records := make([]models.NoteData, 0, len(notes))
	for _, note := range notes {
		records = append(records, note.Data())
	}
	return s.saveArray(s.notebookFile, records)
}

// loadArray reads and decodes a JSON array file into out, reporting
// whether anything usable was read.
func (s *Storage) loadArray(name string, out interface{}) bool {
	filePath := filepath.Join(s.dataDir, name)

	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return false
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		log.Printf("Warning: can't read %s: %v. Starting with an empty collection.", filePath, err)
		return false
	}

	if err := json.Unmarshal(data, out); err != nil {
		log.Printf("Warning: can't parse %s: %v. Starting with an empty collection.", filePath, err)
		return false
	}
	return true
}

// saveArray pretty-prints records into the named file, keeping
// non-ASCII characters verbatim.
func (s *Storage) saveArray(name string, records interface{}) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("failed to marshal %s: %w", name, err)
	}

	filePath := filepath.Join(s.dataDir, name)
	if err := os.WriteFile(filePath, buf.Bytes(), 0600); err != nil {
		return fmt.Errorf("failed to write %s: %w", filePath, err)
	}
	return nil
}
