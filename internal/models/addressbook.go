package models

import (
	"sort"
	"strings"
	"time"
)

// AddressBook maps contact names to records. Iteration order is
// insertion order so listings and search results stay deterministic.
type AddressBook struct {
	records map[string]*Contact
	order   []string
}

// BirthdayReminder pairs a contact with the date it should be
// congratulated on, weekend occurrences shifted to the next Monday.
type BirthdayReminder struct {
	Name               string
	CongratulationDate string
}

func NewAddressBook() *AddressBook {
	return &AddressBook{
		records: make(map[string]*Contact),
	}
}

// Add inserts the record under its name, overwriting (not merging) any
// existing record with the same name. Overwrites keep the original
// position in iteration order.
func (b *AddressBook) Add(contact *Contact) {
	name := contact.Name()
	if _, exists := b.records[name]; !exists {
		b.order = append(b.order, name)
	}
	b.records[name] = contact
}

// Find returns the record stored under name, or nil. The lookup is
// exact and case-sensitive.
func (b *AddressBook) Find(name string) *Contact {
	return b.records[name]
}

// Delete removes the record stored under name.
func (b *AddressBook) Delete(name string) error {
	if _, exists := b.records[name]; !exists {
		return NewNotFoundError("Contact", name)
	}
	delete(b.records, name)
	for i, key := range b.order {
		if key == name {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
	return nil
}

// All returns every record in insertion order.
func (b *AddressBook) All() []*Contact {
	out := make([]*Contact, 0, len(b.order))
	for _, name := range b.order {
		out = append(out, b.records[name])
	}
	return out
}

func (b *AddressBook) Len() int {
	return len(b.records)
}

// UpcomingBirthdays returns contacts whose next birthday occurrence is
// exactly days days from today, sorted by name.
func (b *AddressBook) UpcomingBirthdays(days int) ([]BirthdayReminder, error) {
	return b.upcomingBirthdaysFrom(time.Now(), days)
}

func (b *AddressBook) upcomingBirthdaysFrom(now time.Time, days int) ([]BirthdayReminder, error) {
	if days < 0 {
		return nil, NewInvalidArgumentError("Number of days cannot be negative.")
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	target := today.AddDate(0, 0, days)

	var result []BirthdayReminder
	for _, contact := range b.All() {
		bday, ok := contact.Birthday()
		if !ok {
			continue
		}

		// This year's occurrence; already passed means next year's.
		occurrence := time.Date(today.Year(), bday.Month(), bday.Day(), 0, 0, 0, 0, today.Location())
		if occurrence.Before(today) {
			occurrence = time.Date(today.Year()+1, bday.Month(), bday.Day(), 0, 0, 0, 0, today.Location())
		}
		if !occurrence.Equal(target) {
			continue
		}

		congratulation := occurrence
		switch occurrence.Weekday() {
		case time.Saturday:
			congratulation = occurrence.AddDate(0, 0, 2)
		case time.Sunday:
			congratulation = occurrence.AddDate(0, 0, 1)
		}

		result = append(result, BirthdayReminder{
			Name:               contact.Name(),
			CongratulationDate: FormatDate(congratulation),
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})
	return result, nil
}

// Search returns every record with a case-insensitive substring match
// in its name, a phone, the email, the address, or the formatted
// birthday, checked in that order. A record appears at most once and
// results follow insertion order.
func (b *AddressBook) Search(query string) []*Contact {
	queryLower := strings.ToLower(query)

	var found []*Contact
	for _, contact := range b.All() {
		if strings.Contains(strings.ToLower(contact.Name()), queryLower) {
			found = append(found, contact)
			continue
		}

		matched := false
		for _, phone := range contact.Phones() {
			if strings.Contains(phone, queryLower) {
				found = append(found, contact)
				matched = true
				break
			}
		}
		if matched {
			continue
		}

		if email, ok := contact.Email(); ok && strings.Contains(strings.ToLower(email), queryLower) {
			found = append(found, contact)
			continue
		}

		if address, ok := contact.Address(); ok && strings.Contains(strings.ToLower(address), queryLower) {
			found = append(found, contact)
			continue
		}

		if bday, ok := contact.Birthday(); ok && strings.Contains(FormatDate(bday), queryLower) {
			found = append(found, contact)
		}
	}
	return found
}
