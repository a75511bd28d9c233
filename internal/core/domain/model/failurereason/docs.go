// Package failurereason provides the catalog of delivery failure reasons
// attachable to manifest line items.
//
// The FailureReason interface defines the capability set
// (Code/Name/Description/IsActive); Simple is the only implemented variant.
// A composite variant combining several simple reasons (activeness as the
// AND over children, code and text as concatenations) is a planned extension
// point and has intentionally not been built yet. Consumers must depend on
// the interface, not on Simple, so the composite can be added without
// touching them.
package failurereason
