// Package client provides the Client entity referenced by parcels. Clients
// are created by external callers and never mutated by the depot core; the
// entity exists so parcel ownership can be validated and displayed.
package client

import (
	"errors"

	"depot/internal/core/domain/model/kernel"
	"depot/internal/pkg/errs"
	"depot/internal/pkg/guard"
)

// ErrClientIsNotConstructed is returned when a Client was not created through
// NewClient or RestoreClient.
var ErrClientIsNotConstructed = errors.New("Client must be created via NewClient or RestoreClient constructor")

// Client holds the identity and contact information of a parcel owner.
type Client struct {
	id      kernel.UUID
	name    string
	email   string
	phone   string
	address string

	guard guard.ConstructorGuard
}

// NewClient creates a Client. Name is required; the remaining contact fields
// are optional.
func NewClient(id kernel.UUID, name, email, phone, address string) (*Client, error) {
	c := &Client{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
	); err != nil {
		return nil, err
	}

	c.email = email
	c.phone = phone
	c.address = address
	return c, nil
}

// RestoreClient reconstructs a Client from persistence.
func RestoreClient(id kernel.UUID, name, email, phone, address string) (*Client, error) {
	return NewClient(id, name, email, phone, address)
}

// Validate ensures the Client was properly constructed.
func (c *Client) Validate() error {
	if c == nil {
		return ErrClientIsNotConstructed
	}
	return c.guard.Validate(ErrClientIsNotConstructed)
}

// IsEqual compares two clients by their unique identifiers.
func (c *Client) IsEqual(other *Client) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the client's unique identifier.
func (c *Client) ID() kernel.UUID {
	return c.id
}

// Name returns the client's name.
func (c *Client) Name() string {
	return c.name
}

// Email returns the client's email address, possibly empty.
func (c *Client) Email() string {
	return c.email
}

// Phone returns the client's phone number, possibly empty.
func (c *Client) Phone() string {
	return c.phone
}

// Address returns the client's address, possibly empty.
func (c *Client) Address() string {
	return c.address
}

func (c *Client) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Client) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}
