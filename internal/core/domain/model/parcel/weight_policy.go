package parcel

import (
	"errors"
	"fmt"

	"depot/internal/pkg/errs"
	"depot/internal/pkg/guard"
)

// Default weight thresholds in grams. The ceiling doubles as the maximum
// weight of a single parcel and the maximum total weight of a manifest.
const (
	DefaultSmallMaxGrams  = 1000.0
	DefaultMediumMaxGrams = 3000.0
	DefaultCeilingGrams   = 25000.0
)

// ErrWeightPolicyIsNotConstructed is returned when a WeightPolicy was not
// created through NewWeightPolicy or DefaultWeightPolicy.
var ErrWeightPolicyIsNotConstructed = errors.New(
	"WeightPolicy must be created via NewWeightPolicy or DefaultWeightPolicy",
)

// WeightPolicy is an immutable value object holding the weight thresholds
// used to classify parcels and the manifest weight ceiling. Centralizing the
// constants here lets tests override thresholds without touching callers.
//
// Classification is a pure, total function of weight:
//
//	weight <  smallMax   -> Small
//	weight <  mediumMax  -> Medium
//	otherwise            -> Large
//
// The ceiling bounds both individual parcel weight (0 < w <= ceiling) and the
// aggregate weight of a manifest.
type WeightPolicy struct {
	smallMaxGrams  float64
	mediumMaxGrams float64
	ceilingGrams   float64

	guard guard.ConstructorGuard
}

// NewWeightPolicy creates a WeightPolicy with the given thresholds.
// Thresholds must be positive and strictly ascending:
// 0 < smallMax < mediumMax < ceiling.
func NewWeightPolicy(smallMaxGrams, mediumMaxGrams, ceilingGrams float64) (WeightPolicy, error) {
	if smallMaxGrams <= 0 {
		return WeightPolicy{}, errs.NewValueIsInvalidErrorWithCause("smallMaxGrams",
			fmt.Errorf("%v is not greater than 0", smallMaxGrams))
	}
	if mediumMaxGrams <= smallMaxGrams {
		return WeightPolicy{}, errs.NewValueIsInvalidErrorWithCause("mediumMaxGrams",
			fmt.Errorf("%v is not greater than %v", mediumMaxGrams, smallMaxGrams))
	}
	if ceilingGrams <= mediumMaxGrams {
		return WeightPolicy{}, errs.NewValueIsInvalidErrorWithCause("ceilingGrams",
			fmt.Errorf("%v is not greater than %v", ceilingGrams, mediumMaxGrams))
	}

	return WeightPolicy{
		smallMaxGrams:  smallMaxGrams,
		mediumMaxGrams: mediumMaxGrams,
		ceilingGrams:   ceilingGrams,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// DefaultWeightPolicy returns the production policy: small below 1000 g,
// medium below 3000 g, ceiling at 25000 g.
func DefaultWeightPolicy() WeightPolicy {
	return WeightPolicy{
		smallMaxGrams:  DefaultSmallMaxGrams,
		mediumMaxGrams: DefaultMediumMaxGrams,
		ceilingGrams:   DefaultCeilingGrams,
		guard:          guard.NewConstructorGuard(),
	}
}

// Validate ensures the policy was created through a constructor.
func (p WeightPolicy) Validate() error {
	return p.guard.Validate(ErrWeightPolicyIsNotConstructed)
}

// SmallMaxGrams returns the exclusive upper bound of the Small category.
func (p WeightPolicy) SmallMaxGrams() float64 {
	return p.smallMaxGrams
}

// MediumMaxGrams returns the exclusive upper bound of the Medium category.
func (p WeightPolicy) MediumMaxGrams() float64 {
	return p.mediumMaxGrams
}

// CeilingGrams returns the manifest weight ceiling, which also caps the
// weight of a single parcel.
func (p WeightPolicy) CeilingGrams() float64 {
	return p.ceilingGrams
}

// Classify maps a weight in grams to its size category. Pure and total:
// any weight yields a category, including weights the parcel invariant
// would reject.
func (p WeightPolicy) Classify(weightGrams float64) Size {
	switch {
	case weightGrams < p.smallMaxGrams:
		return Small
	case weightGrams < p.mediumMaxGrams:
		return Medium
	default:
		return Large
	}
}

// ValidateParcelWeight enforces the parcel weight invariant
// 0 < weight <= ceiling. Returns a ValueIsOutOfRangeError on violation.
func (p WeightPolicy) ValidateParcelWeight(weightGrams float64) error {
	if weightGrams <= 0 || weightGrams > p.ceilingGrams {
		return errs.NewValueIsOutOfRangeError("weightGrams", weightGrams, 0, p.ceilingGrams)
	}
	return nil
}
