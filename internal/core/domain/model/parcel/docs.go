// Package parcel provides domain entities and business logic for package
// custody management in the depot system. It implements the Parcel aggregate
// root with lifecycle management and derived size classification.
//
// The package includes:
//   - Parcel: The aggregate root holding identity, physical attributes, and custody state
//   - State: A state machine for the custody lifecycle (IN_DEPOT -> IN_DISTRIBUTION)
//   - Size: The derived size category (SMALL, MEDIUM, LARGE)
//   - WeightPolicy: Centralized weight thresholds and the manifest weight ceiling
//   - Recipient: A value object for the delivery recipient's contact details
//
// Key business rules:
//   - Parcel weight must satisfy 0 < weight <= the policy ceiling
//   - Size is derived from weight on every weight-affecting write, never set by callers
//   - Custody state starts at IN_DEPOT and only moves forward to IN_DISTRIBUTION
//   - State is mutated exclusively through the assignment and distribution flows
package parcel
