package commands

import (
	"fmt"
	"strconv"
	"strings"

	"satchel/internal/audit"
	"satchel/internal/models"
)

func addContact(ctx *Context, args []string) (string, error) {
	if len(args) < 2 {
		return "", models.NewInvalidArgumentError("Not enough arguments. Usage: add contact [name] [phone]")
	}
	name, phone := args[0], args[1]

	contact := ctx.Book.Find(name)
	message := "Contact updated."
	action := audit.ActionUpdate
	if contact == nil {
		var err error
		contact, err = models.NewContact(name)
		if err != nil {
			return "", err
		}
		ctx.Book.Add(contact)
		message = "Contact added."
		action = audit.ActionCreate
	}

	if err := contact.AddPhone(phone); err != nil {
		return "", err
	}

	_ = ctx.Auditor.Log(audit.KindContact, action, name, map[string]interface{}{"phone": phone})
	return message, nil
}

func changeContact(ctx *Context, args []string) (string, error) {
	if len(args) < 3 {
		return "", models.NewInvalidArgumentError(
			"Not enough arguments. Usage: change contact [name] [old_phone] [new_phone]")
	}
	name, oldPhone, newPhone := args[0], args[1], args[2]

	contact := ctx.Book.Find(name)
	if contact == nil {
		return "", models.NewNotFoundError("Contact", name)
	}
	if err := contact.EditPhone(oldPhone, newPhone); err != nil {
		return "", err
	}

	_ = ctx.Auditor.Log(audit.KindContact, audit.ActionUpdate, name,
		map[string]interface{}{"old_phone": oldPhone, "new_phone": newPhone})
	return "Contact updated.", nil
}

func deleteContact(ctx *Context, args []string) (string, error) {
	if len(args) < 1 {
		return "", models.NewInvalidArgumentError("Not enough arguments. Usage: delete contact [name]")
	}
	name := args[0]

	if err := ctx.Book.Delete(name); err != nil {
		return "", err
	}

	_ = ctx.Auditor.Log(audit.KindContact, audit.ActionDelete, name, nil)
	return fmt.Sprintf("Contact '%s' deleted.", name), nil
}

func showAll(ctx *Context, args []string) (string, error) {
	if ctx.Book.Len() == 0 {
		return "No contacts saved.", nil
	}

	var b strings.Builder
	b.WriteString("All contacts:\n")
	for _, contact := range ctx.Book.All() {
		b.WriteString(contact.String())
		b.WriteString("\n")
	}
	return strings.TrimSpace(b.String()), nil
}

func addBirthday(ctx *Context, args []string) (string, error) {
	if len(args) < 2 {
		return "", models.NewInvalidArgumentError("Not enough arguments. Usage: add birthday [name] [DD.MM.YYYY]")
	}
	name, birthday := args[0], args[1]

	contact := ctx.Book.Find(name)
	if contact == nil {
		return "", models.NewNotFoundError("Contact", name)
	}
	if err := contact.SetBirthday(birthday); err != nil {
		return "", err
	}

	_ = ctx.Auditor.Log(audit.KindContact, audit.ActionUpdate, name, map[string]interface{}{"birthday": birthday})
	return "Birthday added.", nil
}

func changeBirthday(ctx *Context, args []string) (string, error) {
	if len(args) < 2 {
		return "", models.NewInvalidArgumentError(
			"Not enough arguments. Usage: change birthday [name] [new_DD.MM.YYYY]")
	}
	name, birthday := args[0], args[1]

	contact := ctx.Book.Find(name)
	if contact == nil {
		return "", models.NewNotFoundError("Contact", name)
	}
	if _, ok := contact.Birthday(); !ok {
		return "", models.NewPreconditionError(
			fmt.Sprintf("Contact '%s' has no birthday. Use 'add birthday' first.", name))
	}
	if err := contact.SetBirthday(birthday); err != nil {
		return "", err
	}

	_ = ctx.Auditor.Log(audit.KindContact, audit.ActionUpdate, name, map[string]interface{}{"birthday": birthday})
	return "Birthday updated.", nil
}

func showBirthday(ctx *Context, args []string) (string, error) {
	if len(args) < 1 {
		return "", models.NewInvalidArgumentError("Not enough arguments. Usage: show birthday [name]")
	}
	name := args[0]

	contact := ctx.Book.Find(name)
	if contact == nil {
		return "", models.NewNotFoundError("Contact", name)
	}
	bday, ok := contact.Birthday()
	if !ok {
		return fmt.Sprintf("%s has no birthday set.", name), nil
	}
	return fmt.Sprintf("%s's birthday: %s", name, models.FormatDate(bday)), nil
}

func birthdays(ctx *Context, args []string) (string, error) {
	days := ctx.DefaultBirthdayDays
	if len(args) > 0 {
		parsed, err := strconv.Atoi(args[0])
		if err != nil || parsed < 0 {
			return "", models.NewInvalidArgumentError("Enter a valid number (e.g., 'birthdays 5')")
		}
		days = parsed
	}

	upcoming, err := ctx.Book.UpcomingBirthdays(days)
	if err != nil {
		return "", err
	}

	plural := "s"
	if days == 1 {
		plural = ""
	}
	if len(upcoming) == 0 {
		return fmt.Sprintf("No birthdays in %d day%s.", days, plural), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Birthdays in %d day%s:\n", days, plural)
	for _, reminder := range upcoming {
		fmt.Fprintf(&b, "• %s → %s\n", reminder.Name, reminder.CongratulationDate)
	}
	return strings.TrimSpace(b.String()), nil
}

func addEmail(ctx *Context, args []string) (string, error) {
	if len(args) < 2 {
		return "", models.NewInvalidArgumentError("Not enough arguments. Usage: add email [name] [email]")
	}
	name, email := args[0], args[1]

	contact := ctx.Book.Find(name)
	if contact == nil {
		return "", models.NewNotFoundError("Contact", name)
	}
	if err := contact.SetEmail(email); err != nil {
		return "", err
	}

	_ = ctx.Auditor.Log(audit.KindContact, audit.ActionUpdate, name, map[string]interface{}{"email": email})
	return "Email added.", nil
}

func changeEmail(ctx *Context, args []string) (string, error) {
	if len(args) < 2 {
		return "", models.NewInvalidArgumentError("Not enough arguments. Usage: change email [name] [new_email]")
	}
	name, email := args[0], args[1]

	contact := ctx.Book.Find(name)
	if contact == nil {
		return "", models.NewNotFoundError("Contact", name)
	}
	if _, ok := contact.Email(); !ok {
		return "", models.NewPreconditionError(
			fmt.Sprintf("Contact '%s' has no email. Use 'add email' first.", name))
	}
	if err := contact.SetEmail(email); err != nil {
		return "", err
	}

	_ = ctx.Auditor.Log(audit.KindContact, audit.ActionUpdate, name, map[string]interface{}{"email": email})
	return "Email updated.", nil
}

func addAddress(ctx *Context, args []string) (string, error) {
	if len(args) < 2 {
		return "", models.NewInvalidArgumentError("Not enough arguments. Usage: add address [name] [address]")
	}
	name := args[0]
	address := strings.Join(args[1:], " ")

	contact := ctx.Book.Find(name)
	if contact == nil {
		return "", models.NewNotFoundError("Contact", name)
	}
	if err := contact.SetAddress(address); err != nil {
		return "", err
	}

	_ = ctx.Auditor.Log(audit.KindContact, audit.ActionUpdate, name, map[string]interface{}{"address": address})
	return "Address added.", nil
}

func changeAddress(ctx *Context, args []string) (string, error) {
	if len(args) < 2 {
		return "", models.NewInvalidArgumentError(
			"Not enough arguments. Usage: change address [name] [new_address]")
	}
	name := args[0]
	address := strings.Join(args[1:], " ")

	contact := ctx.Book.Find(name)
	if contact == nil {
		return "", models.NewNotFoundError("Contact", name)
	}
	if _, ok := contact.Address(); !ok {
		return "", models.NewPreconditionError(
			fmt.Sprintf("Contact '%s' has no address. Use 'add address' first.", name))
	}
	if err := contact.SetAddress(address); err != nil {
		return "", err
	}

	_ = ctx.Auditor.Log(audit.KindContact, audit.ActionUpdate, name, map[string]interface{}{"address": address})
	return "Address updated.", nil
}

func searchContacts(ctx *Context, args []string) (string, error) {
	if len(args) == 0 {
		return "", models.NewInvalidArgumentError("Please provide a search term. Usage: search [query]")
	}
	query := strings.Join(args, " ")

	results := ctx.Book.Search(query)
	if len(results) == 0 {
		return fmt.Sprintf("No contacts found matching '%s'.", query), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Search results for '%s':\n", query)
	for _, contact := range results {
		b.WriteString(contact.String())
		b.WriteString("\n")
	}
	return strings.TrimSpace(b.String()), nil
}
