package commands

import (
	"errors"

	"depot/internal/core/domain/model/kernel"
	"depot/internal/pkg/guard"
)

var ErrAssignParcelCommandIsNotConstructed = errors.New(
	"AssignParcelCommand must be created via NewAssignParcelCommand constructor",
)

// AssignParcelCommand represents a request to add one parcel to a manifest
// as a new line item at the next position.
//
// Example:
//
//	cmd, err := NewAssignParcelCommand(manifestID, parcelID)
//	if err != nil {
//	    return fmt.Errorf("invalid assignment request: %w", err)
//	}
//
//	handler := NewAssignParcelCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("assignment failed: %w", err)
//	}
type AssignParcelCommand struct { //nolint:recvcheck //using for validation
	manifestID kernel.UUID
	parcelID   kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignParcelCommand creates a command to assign a parcel to a manifest.
// Validates both identifiers.
func NewAssignParcelCommand(manifestID, parcelID kernel.UUID) (AssignParcelCommand, error) {
	assignCommand := AssignParcelCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		assignCommand.setManifestID(manifestID),
		assignCommand.setParcelID(parcelID),
	); err != nil {
		return AssignParcelCommand{}, err
	}

	return assignCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignParcelCommand) Validate() error {
	return c.guard.Validate(ErrAssignParcelCommandIsNotConstructed)
}

// ManifestID returns the identifier of the target manifest.
func (c AssignParcelCommand) ManifestID() kernel.UUID {
	return c.manifestID
}

// ParcelID returns the identifier of the parcel to assign.
func (c AssignParcelCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

func (c *AssignParcelCommand) setManifestID(manifestID kernel.UUID) error {
	if err := manifestID.Validate(); err != nil {
		return err
	}

	c.manifestID = manifestID
	return nil
}

func (c *AssignParcelCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}

	c.parcelID = parcelID
	return nil
}
