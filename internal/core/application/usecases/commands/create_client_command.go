package commands

import (
	"errors"

	"depot/internal/core/domain/model/kernel"
	"depot/internal/pkg/guard"
)

var (
	ErrCreateClientCommandIsNotConstructed = errors.New(
		"CreateClientCommand must be created via NewCreateClientCommand constructor",
	)
	ErrClientNameIsRequired = errors.New("client name is required")
)

// CreateClientCommand represents a request to register a new client whose
// parcels the depot will hold.
type CreateClientCommand struct { //nolint:recvcheck //using for validation
	clientID kernel.UUID
	name     string
	email    string
	phone    string
	address  string

	guard guard.ConstructorGuard
}

// NewCreateClientCommand creates a command to register a new client.
// Validates that the client ID is valid and the name is not empty; the
// contact fields are optional.
func NewCreateClientCommand(clientID kernel.UUID, name, email, phone, address string) (CreateClientCommand, error) {
	clientCommand := CreateClientCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		clientCommand.setClientID(clientID),
		clientCommand.setName(name),
	); err != nil {
		return CreateClientCommand{}, err
	}

	clientCommand.email = email
	clientCommand.phone = phone
	clientCommand.address = address

	return clientCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateClientCommand) Validate() error {
	return c.guard.Validate(ErrCreateClientCommandIsNotConstructed)
}

// ClientID returns the unique identifier for the client.
func (c CreateClientCommand) ClientID() kernel.UUID {
	return c.clientID
}

// Name returns the client's display name.
func (c CreateClientCommand) Name() string {
	return c.name
}

// Email returns the client's contact email, possibly empty.
func (c CreateClientCommand) Email() string {
	return c.email
}

// Phone returns the client's contact phone, possibly empty.
func (c CreateClientCommand) Phone() string {
	return c.phone
}

// Address returns the client's address, possibly empty.
func (c CreateClientCommand) Address() string {
	return c.address
}

func (c *CreateClientCommand) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return err
	}

	c.clientID = clientID
	return nil
}

func (c *CreateClientCommand) setName(name string) error {
	if name == "" {
		return ErrClientNameIsRequired
	}

	c.name = name
	return nil
}
