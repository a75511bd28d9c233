package failurereason

import (
	"errors"

	"depot/internal/core/domain/model/kernel"
	"depot/internal/pkg/errs"
	"depot/internal/pkg/guard"
)

// ErrSimpleIsNotConstructed is returned when a Simple failure reason was not
// created through NewSimple or RestoreSimple.
var ErrSimpleIsNotConstructed = errors.New("Simple failure reason must be created via NewSimple or RestoreSimple constructor")

// FailureReason is the capability set every failure-reason variant exposes.
// Consumers depend only on this interface so future composite variants
// (aggregating several simple reasons with boolean-AND activeness and
// concatenated text) can be introduced without changing them.
type FailureReason interface {
	// Code returns the catalog code of the reason.
	Code() string

	// Name returns the short human-readable name.
	Name() string

	// Description returns the longer description.
	Description() string

	// IsActive reports whether the reason may currently be attached to
	// manifest line items.
	IsActive() bool
}

// Simple is the basic catalogued failure reason. It is currently the only
// FailureReason variant.
type Simple struct {
	id          kernel.UUID
	code        string
	name        string
	description string
	active      bool

	guard guard.ConstructorGuard
}

var _ FailureReason = (*Simple)(nil)

// NewSimple creates a Simple failure reason. Code and name are required.
func NewSimple(id kernel.UUID, code, name, description string, active bool) (*Simple, error) {
	r := &Simple{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setCode(code),
		r.setName(name),
	); err != nil {
		return nil, err
	}

	r.description = description
	r.active = active
	return r, nil
}

// RestoreSimple reconstructs a Simple failure reason from persistence.
func RestoreSimple(id kernel.UUID, code, name, description string, active bool) (*Simple, error) {
	return NewSimple(id, code, name, description, active)
}

// Validate ensures the reason was properly constructed.
func (r *Simple) Validate() error {
	if r == nil {
		return ErrSimpleIsNotConstructed
	}
	return r.guard.Validate(ErrSimpleIsNotConstructed)
}

// ID returns the reason's unique identifier.
func (r *Simple) ID() kernel.UUID {
	return r.id
}

// Code returns the catalog code of the reason.
func (r *Simple) Code() string {
	return r.code
}

// Name returns the short human-readable name.
func (r *Simple) Name() string {
	return r.name
}

// Description returns the longer description.
func (r *Simple) Description() string {
	return r.description
}

// IsActive reports whether the reason may currently be attached to manifest
// line items.
func (r *Simple) IsActive() bool {
	return r.active
}

// Deactivate retires the reason from the catalog. Historical line items keep
// their reference; only new attachments are refused.
func (r *Simple) Deactivate() {
	r.active = false
}

// Activate returns the reason to the active catalog.
func (r *Simple) Activate() {
	r.active = true
}

func (r *Simple) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Simple) setCode(code string) error {
	if code == "" {
		return errs.NewValueIsRequiredError("code")
	}
	r.code = code
	return nil
}

func (r *Simple) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	r.name = name
	return nil
}
