package parcel

import (
	"errors"

	"depot/internal/pkg/errs"
	"depot/internal/pkg/guard"
)

// ErrRecipientIsNotConstructed is returned when a Recipient was not created
// through the NewRecipient constructor.
var ErrRecipientIsNotConstructed = errors.New("Recipient must be created via NewRecipient constructor")

// Recipient is a value object holding the delivery recipient's contact
// details. Name and address are required; phone is optional.
type Recipient struct {
	name    string
	phone   string
	address string

	guard guard.ConstructorGuard
}

// NewRecipient creates a Recipient, validating that name and address are
// present.
func NewRecipient(name, phone, address string) (Recipient, error) {
	if name == "" {
		return Recipient{}, errs.NewValueIsRequiredError("recipientName")
	}
	if address == "" {
		return Recipient{}, errs.NewValueIsRequiredError("recipientAddress")
	}

	return Recipient{
		name:    name,
		phone:   phone,
		address: address,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the recipient was created through the constructor.
func (r Recipient) Validate() error {
	return r.guard.Validate(ErrRecipientIsNotConstructed)
}

// Name returns the recipient's name.
func (r Recipient) Name() string {
	return r.name
}

// Phone returns the recipient's phone number, possibly empty.
func (r Recipient) Phone() string {
	return r.phone
}

// Address returns the recipient's delivery address.
func (r Recipient) Address() string {
	return r.address
}
