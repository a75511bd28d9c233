package commands

import (
	"errors"

	"depot/internal/core/domain/model/kernel"
	"depot/internal/pkg/guard"
)

var ErrChangeParcelWeightCommandIsNotConstructed = errors.New(
	"ChangeParcelWeightCommand must be created via NewChangeParcelWeightCommand constructor",
)

// ChangeParcelWeightCommand represents a request to correct a parcel's
// declared weight, for example after re-weighing at intake. The parcel's
// size category is re-derived from the new weight.
type ChangeParcelWeightCommand struct { //nolint:recvcheck //using for validation
	parcelID    kernel.UUID
	weightGrams float64

	guard guard.ConstructorGuard
}

// NewChangeParcelWeightCommand creates a command to change a parcel's weight.
// Bounds on the weight itself are enforced by the domain weight policy.
func NewChangeParcelWeightCommand(parcelID kernel.UUID, weightGrams float64) (ChangeParcelWeightCommand, error) {
	weightCommand := ChangeParcelWeightCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := weightCommand.setParcelID(parcelID); err != nil {
		return ChangeParcelWeightCommand{}, err
	}

	weightCommand.weightGrams = weightGrams

	return weightCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeParcelWeightCommand) Validate() error {
	return c.guard.Validate(ErrChangeParcelWeightCommandIsNotConstructed)
}

// ParcelID returns the identifier of the parcel to re-weigh.
func (c ChangeParcelWeightCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// WeightGrams returns the corrected weight in grams.
func (c ChangeParcelWeightCommand) WeightGrams() float64 {
	return c.weightGrams
}

func (c *ChangeParcelWeightCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}

	c.parcelID = parcelID
	return nil
}
