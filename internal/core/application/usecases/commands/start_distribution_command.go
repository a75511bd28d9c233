package commands

import (
	"errors"

	"depot/internal/core/domain/model/kernel"
	"depot/internal/pkg/guard"
)

var ErrStartDistributionCommandIsNotConstructed = errors.New(
	"StartDistributionCommand must be created via NewStartDistributionCommand constructor",
)

// StartDistributionCommand represents a request to send a manifest out for
// distribution, transitioning every contained parcel still in depot custody.
type StartDistributionCommand struct { //nolint:recvcheck //using for validation
	manifestID kernel.UUID

	guard guard.ConstructorGuard
}

// NewStartDistributionCommand creates a command to start distribution for a
// manifest.
func NewStartDistributionCommand(manifestID kernel.UUID) (StartDistributionCommand, error) {
	distributionCommand := StartDistributionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := distributionCommand.setManifestID(manifestID); err != nil {
		return StartDistributionCommand{}, err
	}

	return distributionCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c StartDistributionCommand) Validate() error {
	return c.guard.Validate(ErrStartDistributionCommandIsNotConstructed)
}

// ManifestID returns the identifier of the manifest to dispatch.
func (c StartDistributionCommand) ManifestID() kernel.UUID {
	return c.manifestID
}

func (c *StartDistributionCommand) setManifestID(manifestID kernel.UUID) error {
	if err := manifestID.Validate(); err != nil {
		return err
	}

	c.manifestID = manifestID
	return nil
}
