// Package manifest provides the Manifest aggregate root for grouping parcels
// into dispatch runs, together with the LineItem entity linking one parcel to
// one manifest at one sequence position.
//
// The aggregate is where the assignment rules live:
//   - Only parcels in depot custody may be assigned
//   - A parcel appears in a given manifest at most once
//   - The aggregate weight may never exceed the policy ceiling; a total
//     exactly at the ceiling is allowed
//   - Positions are appended starting at 1 and are never renumbered or reused
//   - Batch assignment validates the whole batch before mutating anything,
//     so a failed batch leaves the manifest untouched
//
// Line items are append-only. Once a parcel moves to distribution its line
// item is retained as history.
package manifest
