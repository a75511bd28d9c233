package commands

import (
	"errors"

	"depot/internal/core/domain/model/kernel"
	"depot/internal/pkg/guard"
)

var (
	ErrCreateManifestCommandIsNotConstructed = errors.New(
		"CreateManifestCommand must be created via NewCreateManifestCommand constructor",
	)
	ErrManifestNumberIsRequired = errors.New("manifest number is required")
)

// CreateManifestCommand represents a request to open a new, empty dispatch
// manifest identified by an externally supplied number.
type CreateManifestCommand struct { //nolint:recvcheck //using for validation
	manifestID kernel.UUID
	number     string

	guard guard.ConstructorGuard
}

// NewCreateManifestCommand creates a command to open a new manifest.
// Validates that the manifest ID is valid and the number is not empty.
func NewCreateManifestCommand(manifestID kernel.UUID, number string) (CreateManifestCommand, error) {
	manifestCommand := CreateManifestCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		manifestCommand.setManifestID(manifestID),
		manifestCommand.setNumber(number),
	); err != nil {
		return CreateManifestCommand{}, err
	}

	return manifestCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateManifestCommand) Validate() error {
	return c.guard.Validate(ErrCreateManifestCommandIsNotConstructed)
}

// ManifestID returns the unique identifier for the manifest.
func (c CreateManifestCommand) ManifestID() kernel.UUID {
	return c.manifestID
}

// Number returns the externally supplied manifest number.
func (c CreateManifestCommand) Number() string {
	return c.number
}

func (c *CreateManifestCommand) setManifestID(manifestID kernel.UUID) error {
	if err := manifestID.Validate(); err != nil {
		return err
	}

	c.manifestID = manifestID
	return nil
}

func (c *CreateManifestCommand) setNumber(number string) error {
	if number == "" {
		return ErrManifestNumberIsRequired
	}

	c.number = number
	return nil
}
