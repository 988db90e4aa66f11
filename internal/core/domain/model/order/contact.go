package order

import (
	"errors"
	"fmt"
	"strings"

	"turtu/internal/core/domain/model/kernel"
	"turtu/internal/pkg/errs"
	"turtu/internal/pkg/guard"
)

// ErrContactIsNotConstructed is returned when a Contact instance was not
// created through NewContact.
var ErrContactIsNotConstructed = errors.New("Contact must be created via NewContact constructor")

// Contact is a value object holding the name, phone number, and email of
// a party to a delivery, either the customer placing the order or the receiver
// taking the handoff. Notification emails and driver call-outs depend on
// these fields, so they are validated at construction.
type Contact struct {
	name  string
	phone kernel.PhoneNumber
	email string
	guard guard.ConstructorGuard
}

// NewContact creates a validated Contact. Name and email are required and
// the email must contain a mailbox and a domain part.
func NewContact(name string, phone kernel.PhoneNumber, email string) (Contact, error) {
	contact := Contact{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		contact.setName(name),
		contact.setPhone(phone),
		contact.setEmail(email),
	); err != nil {
		return Contact{}, err
	}

	return contact, nil
}

// Name returns the contact's display name.
func (c Contact) Name() string {
	return c.name
}

// Phone returns the contact's phone number.
func (c Contact) Phone() kernel.PhoneNumber {
	return c.phone
}

// Email returns the contact's email address.
func (c Contact) Email() string {
	return c.email
}

// Validate ensures the Contact was created via NewContact.
func (c Contact) Validate() error {
	return c.guard.Validate(ErrContactIsNotConstructed)
}

func (c *Contact) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *Contact) setPhone(phone kernel.PhoneNumber) error {
	if err := phone.Validate(); err != nil {
		return err
	}
	c.phone = phone
	return nil
}

func (c *Contact) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return errs.NewValueIsInvalidErrorWithCause("email",
			fmt.Errorf("%q is not a valid email address", email))
	}
	c.email = email
	return nil
}
