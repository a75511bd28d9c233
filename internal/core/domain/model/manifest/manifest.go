package manifest

import (
	"errors"
	"fmt"
	"time"

	"depot/internal/core/domain/model/failurereason"
	"depot/internal/core/domain/model/kernel"
	"depot/internal/core/domain/model/parcel"
	"depot/internal/pkg/errs"
	"depot/internal/pkg/guard"
)

// ErrManifestIsNotConstructed is returned when a Manifest was not created
// through NewManifest or RestoreManifest.
var ErrManifestIsNotConstructed = errors.New("Manifest must be created via NewManifest or RestoreManifest constructor")

// Manifest is the aggregate root for one distribution run. It holds the
// externally supplied manifest number, the immutable creation date, and the
// ordered collection of line items.
//
// All assignment invariants are enforced here:
//   - Eligibility: only parcels in depot custody join a manifest
//   - Uniqueness: a parcel appears in this manifest at most once
//   - Capacity: total weight never exceeds the ceiling; equality is allowed
//   - Ordering: positions append from 1 with no gaps and are never reused
//
// Batch assignment validates the entire batch before creating any line item.
// The caller persists the aggregate inside one transaction, so a mid-batch
// failure is never observable in storage either.
type Manifest struct {
	id kernel.UUID

	// number is the externally supplied unique manifest number
	number string

	// createdAt is set once at creation and immutable afterwards
	createdAt time.Time

	// items is the ordered collection of line items, append-only
	items []*LineItem

	guard guard.ConstructorGuard
}

// NewManifest creates an empty Manifest.
func NewManifest(id kernel.UUID, number string, createdAt time.Time) (*Manifest, error) {
	m := &Manifest{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		m.setID(id),
		m.setNumber(number),
		m.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return m, nil
}

// RestoreManifest reconstructs a Manifest with its line items from
// persistence. Items must be ordered by position.
func RestoreManifest(id kernel.UUID, number string, createdAt time.Time, items []*LineItem) (*Manifest, error) {
	m, err := NewManifest(id, number, createdAt)
	if err != nil {
		return nil, err
	}

	for _, li := range items {
		if err := li.Validate(); err != nil {
			return nil, err
		}
	}
	m.items = append(m.items, items...)

	return m, nil
}

// Validate ensures the Manifest was properly constructed.
func (m *Manifest) Validate() error {
	if m == nil {
		return ErrManifestIsNotConstructed
	}
	return m.guard.Validate(ErrManifestIsNotConstructed)
}

// IsEqual compares two manifests by their unique identifiers.
func (m *Manifest) IsEqual(other *Manifest) bool {
	return other != nil && m.id.IsEqual(other.id)
}

// ID returns the manifest's unique identifier.
func (m *Manifest) ID() kernel.UUID {
	return m.id
}

// Number returns the externally supplied manifest number.
func (m *Manifest) Number() string {
	return m.number
}

// CreatedAt returns the immutable creation timestamp.
func (m *Manifest) CreatedAt() time.Time {
	return m.createdAt
}

// Items returns the line items in position order. The returned slice is a
// copy; the items themselves are shared.
func (m *Manifest) Items() []*LineItem {
	items := make([]*LineItem, len(m.items))
	copy(items, m.items)
	return items
}

// ItemCount returns the number of line items.
func (m *Manifest) ItemCount() int {
	return len(m.items)
}

// Contains reports whether the given parcel already has a line item in this
// manifest.
func (m *Manifest) Contains(parcelID kernel.UUID) bool {
	for _, li := range m.items {
		if li.ParcelID().IsEqual(parcelID) {
			return true
		}
	}
	return false
}

// FindItem returns the line item with the given identifier, if present.
func (m *Manifest) FindItem(lineItemID kernel.UUID) (*LineItem, bool) {
	for _, li := range m.items {
		if li.ID().IsEqual(lineItemID) {
			return li, true
		}
	}
	return nil, false
}

// TotalWeight returns the sum of the contained parcels' weights in grams.
// An empty manifest weighs 0.
func (m *Manifest) TotalWeight() float64 {
	var total float64
	for _, li := range m.items {
		total += li.ParcelWeightGrams()
	}
	return total
}

// WouldExceedCeiling reports whether adding additionalGrams would push the
// total weight strictly above ceilingGrams. A total exactly at the ceiling is
// permitted.
func (m *Manifest) WouldExceedCeiling(additionalGrams, ceilingGrams float64) bool {
	return m.TotalWeight()+additionalGrams > ceilingGrams
}

// Assign creates a line item for one parcel at the next position.
//
// Fails with:
//   - InvalidStateError when the parcel is not in depot custody or already
//     has a line item in this manifest
//   - CapacityExceededError when the parcel's weight would breach the ceiling
func (m *Manifest) Assign(p *parcel.Parcel, ceilingGrams float64) (*LineItem, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := m.validateEligible(p); err != nil {
		return nil, err
	}
	if m.WouldExceedCeiling(p.WeightGrams(), ceilingGrams) {
		return nil, errs.NewCapacityExceededError("manifest", m.TotalWeight(), p.WeightGrams(), ceilingGrams)
	}

	return m.appendItem(p)
}

// AssignBatch creates line items for all given parcels, all-or-nothing.
//
// The batch is normalized to a set first: a parcel repeated in the input is
// assigned once, at its first occurrence. The whole batch is then validated:
// every parcel must be in depot custody and absent from the manifest, and the
// ceiling is checked once against the batch's summed weight and the pre-batch
// total. Positions are assigned sequentially in first-occurrence order. On
// any error no line item is created.
//
// Fails with:
//   - ValueIsRequiredError when the batch is empty
//   - InvalidStateError when any parcel is ineligible (whole batch rejected)
//   - CapacityExceededError when the summed weight would breach the ceiling
func (m *Manifest) AssignBatch(parcels []*parcel.Parcel, ceilingGrams float64) ([]*LineItem, error) {
	if len(parcels) == 0 {
		return nil, errs.NewValueIsRequiredError("parcels")
	}

	seen := make(map[kernel.UUID]struct{}, len(parcels))
	batch := make([]*parcel.Parcel, 0, len(parcels))
	var batchWeight float64
	for _, p := range parcels {
		if err := p.Validate(); err != nil {
			return nil, err
		}
		if _, dup := seen[p.ID()]; dup {
			continue
		}
		if err := m.validateEligible(p); err != nil {
			return nil, err
		}
		seen[p.ID()] = struct{}{}
		batch = append(batch, p)
		batchWeight += p.WeightGrams()
	}

	if m.WouldExceedCeiling(batchWeight, ceilingGrams) {
		return nil, errs.NewCapacityExceededError("manifest", m.TotalWeight(), batchWeight, ceilingGrams)
	}

	items := make([]*LineItem, 0, len(batch))
	for _, p := range batch {
		li, err := m.appendItem(p)
		if err != nil {
			return nil, err
		}
		items = append(items, li)
	}

	return items, nil
}

// MarkAllInDistribution transitions every contained parcel still in depot
// custody to distribution and returns the count changed. Idempotent: a second
// invocation changes nothing and returns 0.
//
// The caller supplies the parcels referenced by the line items; a line item
// whose parcel is missing from the slice is a data inconsistency and yields
// an ObjectNotFoundError.
func (m *Manifest) MarkAllInDistribution(parcels []*parcel.Parcel) (int, error) {
	byID := make(map[kernel.UUID]*parcel.Parcel, len(parcels))
	for _, p := range parcels {
		byID[p.ID()] = p
	}

	changed := 0
	for _, li := range m.items {
		p, ok := byID[li.ParcelID()]
		if !ok {
			return 0, errs.NewObjectNotFoundError("parcel", li.ParcelID().String())
		}
		if p.State() != parcel.InDepot {
			continue
		}
		if err := p.StartDistribution(); err != nil {
			return 0, err
		}
		changed++
	}

	return changed, nil
}

// AssignFailureReason attaches a failure reason to the line item with the
// given identifier. The reason must be active; callers resolve it fresh.
func (m *Manifest) AssignFailureReason(
	lineItemID kernel.UUID,
	reasonID kernel.UUID,
	reason failurereason.FailureReason,
) error {
	li, ok := m.FindItem(lineItemID)
	if !ok {
		return errs.NewObjectNotFoundError("lineItem", lineItemID.String())
	}
	return li.AttachFailureReason(reasonID, reason)
}

// validateEligible checks depot custody and per-manifest uniqueness for one
// parcel.
func (m *Manifest) validateEligible(p *parcel.Parcel) error {
	if p.State() != parcel.InDepot {
		return errs.NewInvalidStateError("parcel", p.State().String())
	}
	if m.Contains(p.ID()) {
		return errs.NewInvalidStateErrorWithCause("parcel", p.State().String(),
			fmt.Errorf("parcel %s is already assigned to manifest %s", p.ID(), m.number))
	}
	return nil
}

// appendItem creates a line item at the next position. Positions are
// append-only: current item count + 1, never renumbered.
func (m *Manifest) appendItem(p *parcel.Parcel) (*LineItem, error) {
	li, err := newLineItem(kernel.NewUUID(), p.ID(), len(m.items)+1, p.WeightGrams())
	if err != nil {
		return nil, err
	}
	m.items = append(m.items, li)
	return li, nil
}

func (m *Manifest) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

func (m *Manifest) setNumber(number string) error {
	if number == "" {
		return errs.NewValueIsRequiredError("manifestNumber")
	}
	m.number = number
	return nil
}

func (m *Manifest) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	m.createdAt = createdAt
	return nil
}
