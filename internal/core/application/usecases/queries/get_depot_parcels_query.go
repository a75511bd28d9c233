package queries

import (
	"errors"

	"depot/internal/core/domain/model/kernel"
	"depot/internal/pkg/guard"
)

var ErrGetDepotParcelsQueryIsNotConstructed = errors.New(
	"GetDepotParcelsQuery must be created via NewGetDepotParcelsQuery constructor",
)

// GetDepotParcelsQuery retrieves all parcels currently in depot custody.
// Used for depot inventory reporting and the periodic status job.
//
// Example:
//
//	query := NewGetDepotParcelsQuery()
//	handler := NewGetDepotParcelsQueryHandler(db)
//
//	parcels, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get depot inventory: %w", err)
//	}
//	fmt.Printf("%d parcels in depot custody\n", len(parcels))
type GetDepotParcelsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetDepotParcelsQuery creates a query for the depot inventory.
// This is a parameterless query.
func NewGetDepotParcelsQuery() GetDepotParcelsQuery {
	return GetDepotParcelsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetDepotParcelsQuery) Validate() error {
	return q.guard.Validate(ErrGetDepotParcelsQueryIsNotConstructed)
}

// GetDepotParcelsQueryResponse represents one parcel in depot custody.
type GetDepotParcelsQueryResponse struct {
	ID          kernel.UUID
	ClientName  string
	Tracking    string
	WeightGrams float64
	Size        string
}
