package commands

import (
	"errors"

	"depot/internal/core/domain/model/kernel"
	"depot/internal/pkg/guard"
)

var (
	ErrCreateFailureReasonCommandIsNotConstructed = errors.New(
		"CreateFailureReasonCommand must be created via NewCreateFailureReasonCommand constructor",
	)
	ErrReasonCodeIsRequired = errors.New("failure reason code is required")
	ErrReasonNameIsRequired = errors.New("failure reason name is required")
)

// CreateFailureReasonCommand represents a request to add an entry to the
// delivery failure reason catalog.
type CreateFailureReasonCommand struct { //nolint:recvcheck //using for validation
	reasonID    kernel.UUID
	code        string
	name        string
	description string
	active      bool

	guard guard.ConstructorGuard
}

// NewCreateFailureReasonCommand creates a command to add a failure reason.
// Validates the identifier, code, and name; the description is optional.
// The active flag controls whether the reason is immediately selectable for
// delivery failure recording.
func NewCreateFailureReasonCommand(
	reasonID kernel.UUID,
	code, name, description string,
	active bool,
) (CreateFailureReasonCommand, error) {
	reasonCommand := CreateFailureReasonCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		reasonCommand.setReasonID(reasonID),
		reasonCommand.setCode(code),
		reasonCommand.setName(name),
	); err != nil {
		return CreateFailureReasonCommand{}, err
	}

	reasonCommand.description = description
	reasonCommand.active = active

	return reasonCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateFailureReasonCommand) Validate() error {
	return c.guard.Validate(ErrCreateFailureReasonCommandIsNotConstructed)
}

// ReasonID returns the unique identifier for the failure reason.
func (c CreateFailureReasonCommand) ReasonID() kernel.UUID {
	return c.reasonID
}

// Code returns the short stable code, for example "ABSENT".
func (c CreateFailureReasonCommand) Code() string {
	return c.code
}

// Name returns the human readable name.
func (c CreateFailureReasonCommand) Name() string {
	return c.name
}

// Description returns the longer description, possibly empty.
func (c CreateFailureReasonCommand) Description() string {
	return c.description
}

// Active reports whether the reason should be created in the active state.
func (c CreateFailureReasonCommand) Active() bool {
	return c.active
}

func (c *CreateFailureReasonCommand) setReasonID(reasonID kernel.UUID) error {
	if err := reasonID.Validate(); err != nil {
		return err
	}

	c.reasonID = reasonID
	return nil
}

func (c *CreateFailureReasonCommand) setCode(code string) error {
	if code == "" {
		return ErrReasonCodeIsRequired
	}

	c.code = code
	return nil
}

func (c *CreateFailureReasonCommand) setName(name string) error {
	if name == "" {
		return ErrReasonNameIsRequired
	}

	c.name = name
	return nil
}
