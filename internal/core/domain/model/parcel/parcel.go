package parcel

import (
	"errors"

	"depot/internal/core/domain/model/kernel"
	"depot/internal/pkg/errs"
	"depot/internal/pkg/guard"
)

// ErrParcelIsNotConstructed is returned when a Parcel instance was not created
// through the NewParcel or RestoreParcel factory functions.
var ErrParcelIsNotConstructed = errors.New("Parcel must be created via NewParcel or RestoreParcel constructor")

// Parcel represents a physical package held in custody by the depot. It is an
// aggregate root that manages the package's identity, physical attributes,
// and custody lifecycle.
//
// Parcel follows these invariants:
//   - Must have a valid unique identifier and owning client reference
//   - Tracking identifier is non-empty and immutable after creation
//   - Weight satisfies 0 < weightGrams <= the policy ceiling
//   - Size category is derived from weight on every weight-affecting write
//   - Custody state starts at InDepot and advances only via StartDistribution
//
// Custody state is never mutated from the outside; only the assignment and
// distribution flows call StartDistribution.
type Parcel struct {
	// id is the unique identifier for the parcel
	id kernel.UUID

	// clientID references the owning client (many parcels per client)
	clientID kernel.UUID

	// tracking is the externally visible tracking identifier, unique and immutable
	tracking string

	// recipient holds the delivery recipient's contact details
	recipient Recipient

	// weightGrams is the parcel weight in grams
	weightGrams float64

	// heightCm is the parcel height in centimeters (no invariant)
	heightCm float64

	// state is the current custody state
	state State

	// size is the derived size category, recomputed on every weight write
	size Size

	guard guard.ConstructorGuard
}

// NewParcel creates a new Parcel with validation. Weight is validated against
// the policy and the size category is derived from it; the custody state is
// initialized to InDepot.
func NewParcel(
	id kernel.UUID,
	clientID kernel.UUID,
	tracking string,
	recipient Recipient,
	weightGrams float64,
	heightCm float64,
	policy WeightPolicy,
) (*Parcel, error) {
	if err := policy.Validate(); err != nil {
		return nil, err
	}

	p := &Parcel{
		state: InDepot,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setClientID(clientID),
		p.setTracking(tracking),
		p.setRecipient(recipient),
		p.setWeight(weightGrams, policy),
		p.setHeight(heightCm),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreParcel reconstructs a Parcel from persistence, including its
// persisted custody state and size category. The persisted weight is trusted;
// it was validated on the write path.
func RestoreParcel(
	id kernel.UUID,
	clientID kernel.UUID,
	tracking string,
	recipient Recipient,
	weightGrams float64,
	heightCm float64,
	state State,
	size Size,
) (*Parcel, error) {
	p := &Parcel{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setClientID(clientID),
		p.setTracking(tracking),
		p.setRecipient(recipient),
		p.setState(state),
		p.setSize(size),
		p.setHeight(heightCm),
	); err != nil {
		return nil, err
	}

	p.weightGrams = weightGrams
	return p, nil
}

// Validate ensures the Parcel instance was properly constructed.
// Returns ErrParcelIsNotConstructed otherwise.
func (p *Parcel) Validate() error {
	if p == nil {
		return ErrParcelIsNotConstructed
	}
	return p.guard.Validate(ErrParcelIsNotConstructed)
}

// IsEqual compares two parcels by their unique identifiers.
func (p *Parcel) IsEqual(other *Parcel) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the parcel's unique identifier.
func (p *Parcel) ID() kernel.UUID {
	return p.id
}

// ClientID returns the owning client's identifier.
func (p *Parcel) ClientID() kernel.UUID {
	return p.clientID
}

// Tracking returns the immutable tracking identifier.
func (p *Parcel) Tracking() string {
	return p.tracking
}

// Recipient returns the delivery recipient's contact details.
func (p *Parcel) Recipient() Recipient {
	return p.recipient
}

// WeightGrams returns the parcel weight in grams.
func (p *Parcel) WeightGrams() float64 {
	return p.weightGrams
}

// HeightCm returns the parcel height in centimeters.
func (p *Parcel) HeightCm() float64 {
	return p.heightCm
}

// State returns the current custody state.
func (p *Parcel) State() State {
	return p.state
}

// Size returns the derived size category.
func (p *Parcel) Size() Size {
	return p.size
}

// ChangeWeight updates the parcel weight. The new weight is validated against
// the policy and the size category is recomputed; a stale classification is
// never trusted on a write path.
func (p *Parcel) ChangeWeight(weightGrams float64, policy WeightPolicy) error {
	if err := policy.Validate(); err != nil {
		return err
	}
	return p.setWeight(weightGrams, policy)
}

// StartDistribution transitions the parcel from InDepot to InDistribution.
// Returns an InvalidStateError if the parcel is not in the depot.
func (p *Parcel) StartDistribution() error {
	newState, err := p.state.StartDistribution()
	if err != nil {
		return err
	}

	p.state = newState
	return nil
}

func (p *Parcel) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Parcel) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("clientId", err)
	}
	p.clientID = clientID
	return nil
}

func (p *Parcel) setTracking(tracking string) error {
	if tracking == "" {
		return errs.NewValueIsRequiredError("tracking")
	}
	p.tracking = tracking
	return nil
}

func (p *Parcel) setRecipient(recipient Recipient) error {
	if err := recipient.Validate(); err != nil {
		return err
	}
	p.recipient = recipient
	return nil
}

// setWeight validates the weight bound and derives the size category.
// Classification always happens here so weight and size cannot drift apart.
func (p *Parcel) setWeight(weightGrams float64, policy WeightPolicy) error {
	if err := policy.ValidateParcelWeight(weightGrams); err != nil {
		return err
	}
	p.weightGrams = weightGrams
	p.size = policy.Classify(weightGrams)
	return nil
}

func (p *Parcel) setHeight(heightCm float64) error {
	if heightCm < 0 {
		return errs.NewValueIsInvalidError("heightCm")
	}
	p.heightCm = heightCm
	return nil
}

func (p *Parcel) setState(state State) error {
	if err := state.Validate(); err != nil {
		return err
	}
	p.state = state
	return nil
}

func (p *Parcel) setSize(size Size) error {
	if err := size.Validate(); err != nil {
		return err
	}
	p.size = size
	return nil
}
