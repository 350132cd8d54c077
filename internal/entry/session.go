package entry

import (
	"context"
	"errors"
)

// VoucherStore persists a normalized voucher, typically the remote
// gateway.
type VoucherStore interface {
	CreateVoucher(ctx context.Context, p Payload) error
}

// ErrSubmitInFlight is returned when Submit is called while a previous
// submission has not finished. The triggering control is expected to be
// disabled while a call is in flight; this guard backs that up.
var ErrSubmitInFlight = errors.New("a submission is already in flight")

// Session ties a form to the submission lifecycle: validate, normalize,
// persist, then reset on success. A failed submission leaves the form
// populated so the user can correct and resubmit; there is no automatic
// retry.
type Session struct {
	Form *Form

	submitting bool
	lastSaved  *Payload
	lastErr    string
}

// NewSession creates a session with a fresh form bound to the catalog.
func NewSession(catalog *Catalog) *Session {
	return &Session{Form: NewForm(catalog)}
}

// Submit runs the lifecycle once. Validation failures are returned without
// touching the store. On success the form resets and the saved payload is
// retained for printing; on store failure the error message is retained
// and the form is left as-is.
func (s *Session) Submit(ctx context.Context, store VoucherStore) (Payload, error) {
	if s.submitting {
		return Payload{}, ErrSubmitInFlight
	}
	if err := Check(s.Form.Header, s.Form.Details); err != nil {
		return Payload{}, err
	}

	payload := Normalize(s.Form.Header, s.Form.Details)

	s.submitting = true
	err := store.CreateVoucher(ctx, payload)
	s.submitting = false

	if err != nil {
		s.lastErr = err.Error()
		return Payload{}, err
	}

	s.lastSaved = &payload
	s.lastErr = ""
	s.Form.Reset()
	return payload, nil
}

// InFlight reports whether a submission is running.
func (s *Session) InFlight() bool {
	return s.submitting
}

// LastSaved returns the snapshot of the most recent successful submission,
// kept for the print view.
func (s *Session) LastSaved() (Payload, bool) {
	if s.lastSaved == nil {
		return Payload{}, false
	}
	return *s.lastSaved, true
}

// Err returns the retained message of the last failed submission, or "".
func (s *Session) Err() string {
	return s.lastErr
}

// ClearError discards the retained submission error.
func (s *Session) ClearError() {
	s.lastErr = ""
}
