package commands

import (
	"errors"

	"depot/internal/core/domain/model/kernel"
	"depot/internal/pkg/guard"
)

var ErrAssignFailureReasonCommandIsNotConstructed = errors.New(
	"AssignFailureReasonCommand must be created via NewAssignFailureReasonCommand constructor",
)

// AssignFailureReasonCommand represents a request to record why a manifest
// line item could not be delivered. Re-recording with a different reason
// overwrites the previous one.
type AssignFailureReasonCommand struct { //nolint:recvcheck //using for validation
	lineItemID kernel.UUID
	reasonID   kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignFailureReasonCommand creates a command to record a delivery
// failure. Validates both identifiers.
func NewAssignFailureReasonCommand(lineItemID, reasonID kernel.UUID) (AssignFailureReasonCommand, error) {
	failureCommand := AssignFailureReasonCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		failureCommand.setLineItemID(lineItemID),
		failureCommand.setReasonID(reasonID),
	); err != nil {
		return AssignFailureReasonCommand{}, err
	}

	return failureCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignFailureReasonCommand) Validate() error {
	return c.guard.Validate(ErrAssignFailureReasonCommandIsNotConstructed)
}

// LineItemID returns the identifier of the line item that failed delivery.
func (c AssignFailureReasonCommand) LineItemID() kernel.UUID {
	return c.lineItemID
}

// ReasonID returns the identifier of the catalog reason to record.
func (c AssignFailureReasonCommand) ReasonID() kernel.UUID {
	return c.reasonID
}

func (c *AssignFailureReasonCommand) setLineItemID(lineItemID kernel.UUID) error {
	if err := lineItemID.Validate(); err != nil {
		return err
	}

	c.lineItemID = lineItemID
	return nil
}

func (c *AssignFailureReasonCommand) setReasonID(reasonID kernel.UUID) error {
	if err := reasonID.Validate(); err != nil {
		return err
	}

	c.reasonID = reasonID
	return nil
}
