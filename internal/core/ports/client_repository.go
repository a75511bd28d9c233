package ports

import (
	"context"

	"depot/internal/core/domain/model/client"
	"depot/internal/core/domain/model/kernel"
)

// ClientRepository defines the persistence contract for client entities.
type ClientRepository interface {
	// Add persists a new client to storage.
	Add(ctx context.Context, aggregate *client.Client) error

	// Update persists changes to an existing client.
	Update(ctx context.Context, aggregate *client.Client) error

	// Get retrieves a client by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*client.Client, error)
}
