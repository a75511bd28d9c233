// Package queries contains read-only operations over the persistence model.
// Query handlers bypass the domain aggregates and read projections straight
// from the database, following the CQRS read side.
package queries

import (
	"errors"
	"time"

	"depot/internal/core/domain/model/kernel"
	"depot/internal/pkg/guard"
)

var ErrGetManifestSummaryQueryIsNotConstructed = errors.New(
	"GetManifestSummaryQuery must be created via NewGetManifestSummaryQuery constructor",
)

// GetManifestSummaryQuery retrieves one manifest with its line items, the
// referenced parcels, and the running total weight.
//
// Example:
//
//	query, err := NewGetManifestSummaryQuery(manifestID)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewGetManifestSummaryQueryHandler(db)
//	summary, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get manifest summary: %w", err)
//	}
//	fmt.Printf("Manifest %s carries %.0fg in %d items\n",
//	    summary.Number, summary.TotalWeightGrams, len(summary.Items))
type GetManifestSummaryQuery struct {
	manifestID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetManifestSummaryQuery creates a query for one manifest's summary.
// Validates the manifest identifier.
func NewGetManifestSummaryQuery(manifestID kernel.UUID) (GetManifestSummaryQuery, error) {
	if err := manifestID.Validate(); err != nil {
		return GetManifestSummaryQuery{}, err
	}

	return GetManifestSummaryQuery{
		manifestID: manifestID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetManifestSummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetManifestSummaryQueryIsNotConstructed)
}

// ManifestID returns the identifier of the manifest to summarize.
func (q GetManifestSummaryQuery) ManifestID() kernel.UUID {
	return q.manifestID
}

// LineItemSummary is one row of a manifest summary: the line item joined
// with its parcel's current weight and custody state.
type LineItemSummary struct {
	LineItemID        kernel.UUID
	ParcelID          kernel.UUID
	Tracking          string
	Position          int
	WeightGrams       float64
	State             string
	FailureReasonCode string
}

// GetManifestSummaryQueryResponse represents a manifest with its line items
// ordered by position. TotalWeightGrams is computed from the parcels'
// current weights at read time.
type GetManifestSummaryQueryResponse struct {
	ManifestID       kernel.UUID
	Number           string
	CreatedAt        time.Time
	TotalWeightGrams float64
	Items            []LineItemSummary
}
