package commands

import (
	"errors"

	"depot/internal/core/domain/model/kernel"
	"depot/internal/pkg/guard"
)

var (
	ErrCreateParcelCommandIsNotConstructed = errors.New(
		"CreateParcelCommand must be created via NewCreateParcelCommand constructor",
	)
	ErrTrackingIsRequired      = errors.New("tracking code is required")
	ErrRecipientNameIsRequired = errors.New("recipient name is required")
	ErrRecipientAddrIsRequired = errors.New("recipient address is required")
)

// CreateParcelCommand represents a request to register a parcel into depot
// custody. Weight and size validation happen in the domain layer against the
// depot's weight policy; the command only checks presence of required fields.
//
// Example:
//
//	parcelID := kernel.NewUUID()
//	cmd, err := NewCreateParcelCommand(parcelID, clientID, "TRK-00042",
//	    "Maria Gomez", "555-0100", "Av. Libertador 742", 1250, 40)
//	if err != nil {
//	    return fmt.Errorf("invalid parcel data: %w", err)
//	}
//
//	handler := NewCreateParcelCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to register parcel: %w", err)
//	}
type CreateParcelCommand struct { //nolint:recvcheck //using for validation
	parcelID         kernel.UUID
	clientID         kernel.UUID
	tracking         string
	recipientName    string
	recipientPhone   string
	recipientAddress string
	weightGrams      float64
	heightCm         float64

	guard guard.ConstructorGuard
}

// NewCreateParcelCommand creates a command to register a new parcel.
// Validates identifiers and required recipient fields. Weight bounds are
// enforced by the domain weight policy during handling.
func NewCreateParcelCommand(
	parcelID, clientID kernel.UUID,
	tracking, recipientName, recipientPhone, recipientAddress string,
	weightGrams, heightCm float64,
) (CreateParcelCommand, error) {
	parcelCommand := CreateParcelCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		parcelCommand.setParcelID(parcelID),
		parcelCommand.setClientID(clientID),
		parcelCommand.setTracking(tracking),
		parcelCommand.setRecipient(recipientName, recipientAddress),
	); err != nil {
		return CreateParcelCommand{}, err
	}

	parcelCommand.recipientPhone = recipientPhone
	parcelCommand.weightGrams = weightGrams
	parcelCommand.heightCm = heightCm

	return parcelCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateParcelCommand) Validate() error {
	return c.guard.Validate(ErrCreateParcelCommandIsNotConstructed)
}

// ParcelID returns the unique identifier for the parcel.
func (c CreateParcelCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// ClientID returns the identifier of the owning client.
func (c CreateParcelCommand) ClientID() kernel.UUID {
	return c.clientID
}

// Tracking returns the external tracking code.
func (c CreateParcelCommand) Tracking() string {
	return c.tracking
}

// RecipientName returns the recipient's name.
func (c CreateParcelCommand) RecipientName() string {
	return c.recipientName
}

// RecipientPhone returns the recipient's phone, possibly empty.
func (c CreateParcelCommand) RecipientPhone() string {
	return c.recipientPhone
}

// RecipientAddress returns the delivery address.
func (c CreateParcelCommand) RecipientAddress() string {
	return c.recipientAddress
}

// WeightGrams returns the declared parcel weight in grams.
func (c CreateParcelCommand) WeightGrams() float64 {
	return c.weightGrams
}

// HeightCm returns the declared parcel height in centimeters.
func (c CreateParcelCommand) HeightCm() float64 {
	return c.heightCm
}

func (c *CreateParcelCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}

	c.parcelID = parcelID
	return nil
}

func (c *CreateParcelCommand) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return err
	}

	c.clientID = clientID
	return nil
}

func (c *CreateParcelCommand) setTracking(tracking string) error {
	if tracking == "" {
		return ErrTrackingIsRequired
	}

	c.tracking = tracking
	return nil
}

func (c *CreateParcelCommand) setRecipient(name, address string) error {
	if name == "" {
		return ErrRecipientNameIsRequired
	}
	if address == "" {
		return ErrRecipientAddrIsRequired
	}

	c.recipientName = name
	c.recipientAddress = address
	return nil
}
