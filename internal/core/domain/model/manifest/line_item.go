package manifest

import (
	"errors"
	"fmt"

	"depot/internal/core/domain/model/failurereason"
	"depot/internal/core/domain/model/kernel"
	"depot/internal/pkg/errs"
	"depot/internal/pkg/guard"
)

// ErrLineItemIsNotConstructed is returned when a LineItem was not created
// through the aggregate or RestoreLineItem.
var ErrLineItemIsNotConstructed = errors.New("LineItem must be created via Manifest assignment or RestoreLineItem constructor")

// LineItem links one parcel to one manifest at one sequence position.
// Line items are created exclusively by the Manifest aggregate's assignment
// methods and are never deleted; after distribution they remain as history.
//
// The parcel weight carried on the item is the weight read when the aggregate
// was loaded. It feeds TotalWeight so the ceiling check always reflects the
// parcels' current persisted weights.
type LineItem struct {
	id kernel.UUID

	parcelID kernel.UUID

	// position is the 1-based sequence position within the manifest,
	// append-only, never renumbered
	position int

	parcelWeightGrams float64

	// failureReasonID optionally references an active failure reason
	failureReasonID *kernel.UUID

	guard guard.ConstructorGuard
}

// newLineItem creates a line item from within the aggregate.
func newLineItem(id, parcelID kernel.UUID, position int, parcelWeightGrams float64) (*LineItem, error) {
	li := &LineItem{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		li.setID(id),
		li.setParcelID(parcelID),
		li.setPosition(position),
	); err != nil {
		return nil, err
	}

	li.parcelWeightGrams = parcelWeightGrams
	return li, nil
}

// RestoreLineItem reconstructs a line item from persistence.
// parcelWeightGrams is the parcel's current weight joined in at load time.
func RestoreLineItem(
	id, parcelID kernel.UUID,
	position int,
	parcelWeightGrams float64,
	failureReasonID *kernel.UUID,
) (*LineItem, error) {
	li, err := newLineItem(id, parcelID, position, parcelWeightGrams)
	if err != nil {
		return nil, err
	}

	if failureReasonID != nil {
		if err := failureReasonID.Validate(); err != nil {
			return nil, err
		}
		ref := *failureReasonID
		li.failureReasonID = &ref
	}

	return li, nil
}

// Validate ensures the line item was properly constructed.
func (li *LineItem) Validate() error {
	if li == nil {
		return ErrLineItemIsNotConstructed
	}
	return li.guard.Validate(ErrLineItemIsNotConstructed)
}

// ID returns the line item's unique identifier.
func (li *LineItem) ID() kernel.UUID {
	return li.id
}

// ParcelID returns the identifier of the linked parcel.
func (li *LineItem) ParcelID() kernel.UUID {
	return li.parcelID
}

// Position returns the 1-based sequence position within the manifest.
func (li *LineItem) Position() int {
	return li.position
}

// ParcelWeightGrams returns the linked parcel's weight as read at load time.
func (li *LineItem) ParcelWeightGrams() float64 {
	return li.parcelWeightGrams
}

// FailureReasonID returns the attached failure reason reference, or nil when
// no failure has been recorded.
func (li *LineItem) FailureReasonID() *kernel.UUID {
	if li.failureReasonID == nil {
		return nil
	}
	ref := *li.failureReasonID
	return &ref
}

// AttachFailureReason records a failure reason on the line item. The reason
// must be active at the time of attachment; a cached activeness flag is never
// trusted, callers resolve the reason fresh and pass it in.
func (li *LineItem) AttachFailureReason(reasonID kernel.UUID, reason failurereason.FailureReason) error {
	if err := reasonID.Validate(); err != nil {
		return err
	}
	if reason == nil {
		return errs.NewValueIsRequiredError("failureReason")
	}
	if !reason.IsActive() {
		return errs.NewInvalidStateErrorWithCause("failureReason", "inactive",
			fmt.Errorf("reason %s cannot be attached", reason.Code()))
	}

	li.failureReasonID = &reasonID
	return nil
}

func (li *LineItem) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	li.id = id
	return nil
}

func (li *LineItem) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("parcelId", err)
	}
	li.parcelID = parcelID
	return nil
}

func (li *LineItem) setPosition(position int) error {
	if position <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("position",
			fmt.Errorf("%d is not greater than 0", position))
	}
	li.position = position
	return nil
}
