package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"satchel/internal/models"
)

func newTestStorage(t *testing.T, policy InvalidRecordPolicy) *Storage {
	t.Helper()
	store, err := NewStorage(t.TempDir(), "addressbook.json", "notes.json", policy)
	require.NoError(t, err)
	return store
}

func TestLoadMissingFilesStartEmpty(t *testing.T) {
	store := newTestStorage(t, PolicySkip)

	assert.Equal(t, 0, store.LoadAddressBook().Len())
	assert.Equal(t, 0, store.LoadNotebook().Len())
}

func TestAddressBookRoundTrip(t *testing.T) {
	store := newTestStorage(t, PolicySkip)

	book := models.NewAddressBook()
	contact, err := models.NewContact("Ann")
	require.NoError(t, err)
	require.NoError(t, contact.AddPhone("0931112233"))
	require.NoError(t, contact.SetEmail("ann@example.com"))
	require.NoError(t, contact.SetBirthday("24.06.1990"))
	book.Add(contact)

	bare, err := models.NewContact("Bob")
	require.NoError(t, err)
	book.Add(bare)

	require.NoError(t, store.SaveAddressBook(book))

	loaded := store.LoadAddressBook()
	require.Equal(t, 2, loaded.Len())

	ann := loaded.Find("Ann")
	require.NotNil(t, ann)
	assert.Equal(t, []string{"0931112233"}, ann.Phones())
	email, ok := ann.Email()
	require.True(t, ok)
	assert.Equal(t, "ann@example.com", email)
	bday, ok := ann.Birthday()
	require.True(t, ok)
	assert.Equal(t, "24.06.1990", models.FormatDate(bday))

	bob := loaded.Find("Bob")
	require.NotNil(t, bob)
	_, ok = bob.Email()
	assert.False(t, ok)
	_, ok = bob.Birthday()
	assert.False(t, ok)
}

func TestNotebookRoundTripPreservesOrder(t *testing.T) {
	store := newTestStorage(t, PolicySkip)

	notebook := models.NewNotebook()
	for _, title := range []string{"Zebra", "Apple", "Mango"} {
		note, err := models.NewNote(title, "content", []string{"tag"})
		require.NoError(t, err)
		notebook.Add(note)
	}
	require.NoError(t, store.SaveNotebook(notebook))

	loaded := store.LoadNotebook()
	require.Equal(t, 3, loaded.Len())

	var titles []string
	for _, note := range loaded.All() {
		titles = append(titles, note.Title())
	}
	assert.Equal(t, []string{"Zebra", "Apple", "Mango"}, titles)
}

func TestLoadCorruptFileStartsEmpty(t *testing.T) {
	store := newTestStorage(t, PolicySkip)
	writeDataFile(t, store, "addressbook.json", "{not json")

	assert.Equal(t, 0, store.LoadAddressBook().Len())
}

func TestLoadSkipsInvalidRecords(t *testing.T) {
	store := newTestStorage(t, PolicySkip)
	writeDataFile(t, store, "addressbook.json", `[
  {"name": "Ann", "phones": ["0931112233"], "email": null, "address": null, "birthday": null},
  {"name": "Bad", "phones": ["123"], "email": null, "address": null, "birthday": null},
  {"name": "Bob", "phones": [], "email": null, "address": null, "birthday": null}
]`)

	loaded := store.LoadAddressBook()
	assert.Equal(t, 2, loaded.Len())
	assert.NotNil(t, loaded.Find("Ann"))
	assert.Nil(t, loaded.Find("Bad"))
	assert.NotNil(t, loaded.Find("Bob"))
}

func TestLoadAbortPolicyStartsEmpty(t *testing.T) {
	store := newTestStorage(t, PolicyAbort)
	writeDataFile(t, store, "notes.json", `[
  {"title": "Good", "content": "fine", "tags": []},
  {"title": "", "content": "missing title", "tags": []}
]`)

	assert.Equal(t, 0, store.LoadNotebook().Len())
}

func TestNewStorageDefaultsBadPolicy(t *testing.T) {
	store, err := NewStorage(t.TempDir(), "a.json", "n.json", InvalidRecordPolicy("whatever"))
	require.NoError(t, err)
	assert.Equal(t, PolicySkip, store.onInvalid)
}

func TestSaveKeepsNonASCIIVerbatim(t *testing.T) {
	store := newTestStorage(t, PolicySkip)

	note, err := models.NewNote("Подорож", "квитки & готель", []string{"подорож"})
	require.NoError(t, err)
	notebook := models.NewNotebook()
	notebook.Add(note)
	require.NoError(t, store.SaveNotebook(notebook))

	raw, err := os.ReadFile(filepath.Join(store.DataDir(), "notes.json"))
	require.NoError(t, err)
	content := string(raw)
	assert.Contains(t, content, "Подорож")
	assert.Contains(t, content, "&")
	assert.NotContains(t, content, `\u`)
	// Pretty-printed, not a single line.
	assert.True(t, strings.Count(content, "\n") > 1)
}

func TestSaveEmptyCollectionsWriteEmptyArrays(t *testing.T) {
	store := newTestStorage(t, PolicySkip)

	require.NoError(t, store.SaveAddressBook(models.NewAddressBook()))
	raw, err := os.ReadFile(filepath.Join(store.DataDir(), "addressbook.json"))
	require.NoError(t, err)
	assert.Equal(t, "[]", strings.TrimSpace(string(raw)))
}

func writeDataFile(t *testing.T, store *Storage, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(store.DataDir(), name), []byte(content), 0600))
}
