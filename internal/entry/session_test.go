package entry

import (
	"context"
	"errors"
	"testing"
)

type recordingStore struct {
	saved []Payload
	err   error
	hook  func()
}

func (s *recordingStore) CreateVoucher(ctx context.Context, p Payload) error {
	if s.hook != nil {
		s.hook()
	}
	if s.err != nil {
		return s.err
	}
	s.saved = append(s.saved, p)
	return nil
}

func fillValidForm(t *testing.T, f *Form) {
	t.Helper()
	for field, value := range map[string]string{
		FieldVrNo:   "101",
		FieldAcName: "acme",
	} {
		if err := f.UpdateHeaderField(field, value); err != nil {
			t.Fatalf("UpdateHeaderField(%s): %v", field, err)
		}
	}
	for field, value := range map[string]string{
		FieldItemCode: "A1",
		FieldQty:      "2",
		FieldRate:     "5",
	} {
		if err := f.UpdateRow(0, field, value); err != nil {
			t.Fatalf("UpdateRow(%s): %v", field, err)
		}
	}
}

func TestSubmitSuccess(t *testing.T) {
	store := &recordingStore{}
	s := NewSession(NewCatalog())
	fillValidForm(t, s.Form)

	payload, err := s.Submit(context.Background(), store)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if len(store.saved) != 1 {
		t.Fatalf("store received %d payloads, want 1", len(store.saved))
	}
	if payload.Header.VrNo != 101 || payload.Header.AcAmt != 10 {
		t.Errorf("payload header: %+v", payload.Header)
	}

	// Success resets the form but keeps the snapshot for printing.
	if s.Form.Header.VrNo != "" || len(s.Form.Details) != 1 {
		t.Errorf("form not reset: %+v", s.Form.Header)
	}
	saved, ok := s.LastSaved()
	if !ok || saved.Header.VrNo != 101 {
		t.Errorf("LastSaved() = %+v, %v", saved, ok)
	}
	if s.Err() != "" {
		t.Errorf("Err() = %q, want empty", s.Err())
	}
}

func TestSubmitValidationFailure(t *testing.T) {
	store := &recordingStore{}
	s := NewSession(NewCatalog())

	_, err := s.Submit(context.Background(), store)
	var rule *RuleError
	if !errors.As(err, &rule) {
		t.Fatalf("Submit() err = %v, want *RuleError", err)
	}
	if len(store.saved) != 0 {
		t.Error("validation failure still reached the store")
	}
	// Validation errors are resolved locally; they are not retained as
	// submission errors.
	if s.Err() != "" {
		t.Errorf("Err() = %q, want empty", s.Err())
	}
}

func TestSubmitStoreFailure(t *testing.T) {
	store := &recordingStore{err: errors.New("Server error. Please try again in a few minutes.")}
	s := NewSession(NewCatalog())
	fillValidForm(t, s.Form)

	_, err := s.Submit(context.Background(), store)
	if err == nil {
		t.Fatal("Submit() = nil, want store error")
	}
	// The form keeps its data for a manual retry and the message is
	// retained.
	if s.Form.Header.VrNo != "101" {
		t.Errorf("form was reset after failure: %+v", s.Form.Header)
	}
	if s.Err() == "" {
		t.Error("Err() empty after failed submission")
	}

	s.ClearError()
	if s.Err() != "" {
		t.Errorf("Err() = %q after ClearError", s.Err())
	}

	// Manual retry after the store recovers.
	store.err = nil
	if _, err := s.Submit(context.Background(), store); err != nil {
		t.Fatalf("retry failed: %v", err)
	}
}

func TestSubmitReentrancyGuard(t *testing.T) {
	s := NewSession(NewCatalog())
	fillValidForm(t, s.Form)

	store := &recordingStore{}
	store.hook = func() {
		if _, err := s.Submit(context.Background(), store); !errors.Is(err, ErrSubmitInFlight) {
			t.Errorf("re-entrant Submit err = %v, want ErrSubmitInFlight", err)
		}
	}
	if _, err := s.Submit(context.Background(), store); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if s.InFlight() {
		t.Error("InFlight() = true after Submit returned")
	}
}
