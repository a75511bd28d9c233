package parcel

import (
	"fmt"

	"depot/internal/pkg/errs"
)

// Size is the derived size category of a parcel. It is computed from weight
// by WeightPolicy.Classify on every weight-affecting write and never set
// directly by a caller. The string forms ("SMALL", "MEDIUM", "LARGE") are the
// persisted wire tokens other systems rely on.
type Size int

const (
	// SizeUnknown represents an invalid or undefined size.
	SizeUnknown Size = iota

	// Small is the category for parcels below the small/medium threshold.
	Small

	// Medium is the category between the small/medium and medium/large thresholds.
	Medium

	// Large is the category for everything at or above the medium/large
	// threshold, bounded by the weight ceiling enforced upstream.
	Large
)

func getSizeStrings() map[Size]string {
	return map[Size]string{
		SizeUnknown: "UNKNOWN",
		Small:       "SMALL",
		Medium:      "MEDIUM",
		Large:       "LARGE",
	}
}

func getValidSizeStrings() map[Size]string {
	//nolint:exhaustive // SizeUnknown is intentionally excluded as it's invalid
	return map[Size]string{
		Small:  "SMALL",
		Medium: "MEDIUM",
		Large:  "LARGE",
	}
}

// SizeFromString parses a persisted wire token into a Size.
// Returns an error for any token that is not a valid size category.
func SizeFromString(s string) (Size, error) {
	for size, str := range getValidSizeStrings() {
		if str == s {
			return size, nil
		}
	}
	return SizeUnknown, errs.NewValueIsInvalidErrorWithCause("size", fmt.Errorf("%q is not a valid size category", s))
}

// Validate checks if the Size value is valid.
func (s Size) Validate() error {
	if _, ok := getValidSizeStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("size", fmt.Errorf("%d is not a valid size category", s))
	}
	return nil
}

// String returns the wire token for the size category ("SMALL", "MEDIUM",
// "LARGE") or "UNKNOWN" for invalid values. Implements fmt.Stringer.
func (s Size) String() string {
	if str, ok := getSizeStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}
