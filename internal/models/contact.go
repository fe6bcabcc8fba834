package models

import (
	"fmt"
	"strings"
	"time"
)

// Contact is one address book record. The name is the record's identity
// and never changes after construction; everything else is mutated in
// place through the add/edit methods, which validate before storing.
type Contact struct {
	name     string
	phones   []string
	email    string
	address  string
	birthday time.Time
	hasBday  bool
}

// ContactData is the persisted form of a Contact (one element of the
// address book JSON array).
type ContactData struct {
	Name     string   `json:"name"`
	Phones   []string `json:"phones"`
	Email    *string  `json:"email"`
	Address  *string  `json:"address"`
	Birthday *string  `json:"birthday"`
}

func NewContact(name string) (*Contact, error) {
	if strings.TrimSpace(name) == "" {
		return nil, NewInvalidFormatError("Contact name cannot be empty.")
	}
	return &Contact{name: name}, nil
}

func (c *Contact) Name() string {
	return c.name
}

// Phones returns a copy of the phone list in insertion order.
func (c *Contact) Phones() []string {
	out := make([]string, len(c.phones))
	copy(out, c.phones)
	return out
}

func (c *Contact) Email() (string, bool) {
	return c.email, c.email != ""
}

func (c *Contact) Address() (string, bool) {
	return c.address, c.address != ""
}

func (c *Contact) Birthday() (time.Time, bool) {
	return c.birthday, c.hasBday
}

// AddPhone validates and appends a phone number. Duplicate values are
// accepted; editing and removal always target the first match.
func (c *Contact) AddPhone(raw string) error {
	phone, err := NewPhone(raw)
	if err != nil {
		return err
	}
	c.phones = append(c.phones, phone)
	return nil
}

// EditPhone replaces the first phone equal to old with newPhone,
// keeping its position in the list.
func (c *Contact) EditPhone(old, newPhone string) error {
	idx := c.findPhone(old)
	if idx < 0 {
		return NewNotFoundError("Phone number", old)
	}
	phone, err := NewPhone(newPhone)
	if err != nil {
		return err
	}
	c.phones[idx] = phone
	return nil
}

// RemovePhone deletes the first phone equal to value.
func (c *Contact) RemovePhone(value string) error {
	idx := c.findPhone(value)
	if idx < 0 {
		return NewNotFoundError("Phone number", value)
	}
	c.phones = append(c.phones[:idx], c.phones[idx+1:]...)
	return nil
}

func (c *Contact) findPhone(value string) int {
	for i, p := range c.phones {
		if p == value {
			return i
		}
	}
	return -1
}

// SetEmail validates and stores the single email slot, overwriting any
// previous value.
func (c *Contact) SetEmail(raw string) error {
	email, err := NewEmail(raw)
	if err != nil {
		return err
	}
	c.email = email
	return nil
}

// SetAddress validates and stores the single address slot.
func (c *Contact) SetAddress(raw string) error {
	address, err := NewAddress(raw)
	if err != nil {
		return err
	}
	c.address = address
	return nil
}

// SetBirthday parses raw and stores it, acting as both add and change.
func (c *Contact) SetBirthday(raw string) error {
	bday, err := ParseBirthday(raw)
	if err != nil {
		return err
	}
	c.birthday = bday
	c.hasBday = true
	return nil
}

// Data converts the contact to its persisted form.
func (c *Contact) Data() ContactData {
	data := ContactData{
		Name:   c.name,
		Phones: c.Phones(),
	}
	if c.email != "" {
		email := c.email
		data.Email = &email
	}
	if c.address != "" {
		address := c.address
		data.Address = &address
	}
	if c.hasBday {
		bday := FormatDate(c.birthday)
		data.Birthday = &bday
	}
	return data
}

// ContactFromData rebuilds a contact from its persisted form, running
// every field through the same validators as live input.
func ContactFromData(data ContactData) (*Contact, error) {
	contact, err := NewContact(data.Name)
	if err != nil {
		return nil, err
	}
	for _, phone := range data.Phones {
		if err := contact.AddPhone(phone); err != nil {
			return nil, err
		}
	}
	if data.Email != nil && *data.Email != "" {
		if err := contact.SetEmail(*data.Email); err != nil {
			return nil, err
		}
	}
	if data.Address != nil && *data.Address != "" {
		if err := contact.SetAddress(*data.Address); err != nil {
			return nil, err
		}
	}
	if data.Birthday != nil && *data.Birthday != "" {
		if err := contact.SetBirthday(*data.Birthday); err != nil {
			return nil, err
		}
	}
	return contact, nil
}

// String renders the contact as a single display line.
func (c *Contact) String() string {
	phones := "No phones"
	if len(c.phones) > 0 {
		phones = strings.Join(c.phones, "; ")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Contact name: %s, phones: %s", c.name, phones)
	if c.email != "" {
		fmt.Fprintf(&b, ", email: %s", c.email)
	}
	if c.address != "" {
		fmt.Fprintf(&b, ", address: %s", c.address)
	}
	if c.hasBday {
		fmt.Fprintf(&b, ", birthday: %s", FormatDate(c.birthday))
	}
	return b.String()
}
