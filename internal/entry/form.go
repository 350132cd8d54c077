// Package entry implements the sales voucher entry engine: the form state
// container, the derived-total reconciler, the item catalog lookup, the
// validators and the submission normalizer.
package entry

import (
	"errors"
	"fmt"
	"time"
)

// Status is the voucher state stored on the header. Wire values are the
// single letters the persistence store expects.
type Status string

const (
	StatusActive   Status = "A"
	StatusInactive Status = "I"
)

// Label returns the display name for a status.
func (s Status) Label() string {
	if s == StatusInactive {
		return "Inactive"
	}
	return "Active"
}

// Header field names accepted by UpdateHeaderField. They mirror the wire
// names of the persistence store.
const (
	FieldVrNo   = "vr_no"
	FieldVrDate = "vr_date"
	FieldAcName = "ac_name"
	FieldAcAmt  = "ac_amt"
	FieldStatus = "status"
)

// Detail field names accepted by UpdateRow.
const (
	FieldItemCode    = "item_code"
	FieldItemName    = "item_name"
	FieldDescription = "description"
	FieldQty         = "qty"
	FieldRate        = "rate"
)

var (
	ErrLastRow       = errors.New("the last remaining row cannot be removed")
	ErrNoSuchRow     = errors.New("no row at that position")
	ErrUnknownField  = errors.New("unknown field")
	ErrReadOnlyField = errors.New("field is derived and cannot be set directly")
)

// Header holds the voucher-level fields as entered. VrNo and VrDate stay
// raw strings until validation; AcAmt is derived and owned by the
// reconciler.
type Header struct {
	VrNo   string
	VrDate string
	AcName string
	AcAmt  float64
	Status Status
}

// Row is one detail line. SrNo is 1-based and kept dense by the collection
// ops. Qty and Rate are already coerced numbers.
type Row struct {
	SrNo        int
	ItemCode    string
	ItemName    string
	Description string
	Qty         float64
	Rate        float64
}

// Amount is the display-only row value. It is recomputed on demand and
// never stored.
func (r Row) Amount() float64 {
	return r.Qty * r.Rate
}

// ComputeTotal sums qty*rate over rows that carry an item code. Rows
// without an item code are placeholders and do not contribute.
func ComputeTotal(rows []Row) float64 {
	var total float64
	for _, r := range rows {
		if r.ItemCode == "" {
			continue
		}
		total += r.Qty * r.Rate
	}
	return total
}

// Form owns the header record and the detail collection for one entry
// session. All mutations keep Header.AcAmt equal to ComputeTotal(Details).
type Form struct {
	Header  Header
	Details []Row

	catalog *Catalog
	now     func() time.Time
}

// NewForm creates a form with a single blank row, today's date and an
// Active status.
func NewForm(catalog *Catalog) *Form {
	f := &Form{catalog: catalog, now: time.Now}
	f.Reset()
	return f
}

// Reset restores the blank state: empty header defaults and exactly one
// blank detail row.
func (f *Form) Reset() {
	f.Header = Header{
		VrDate: f.now().Format("2006-01-02"),
		Status: StatusActive,
	}
	f.Details = []Row{{SrNo: 1}}
	f.reconcile()
}

// AddRow appends a blank row with the next sequence number.
func (f *Form) AddRow() {
	f.Details = append(f.Details, Row{SrNo: len(f.Details) + 1})
}

// RemoveRow deletes the row at the 0-based position and renumbers the
// remainder contiguously from 1. The collection never becomes empty.
func (f *Form) RemoveRow(pos int) error {
	if pos < 0 || pos >= len(f.Details) {
		return ErrNoSuchRow
	}
	if len(f.Details) == 1 {
		return ErrLastRow
	}
	f.Details = append(f.Details[:pos], f.Details[pos+1:]...)
	for i := range f.Details {
		f.Details[i].SrNo = i + 1
	}
	f.reconcile()
	return nil
}

// UpdateRow replaces one field on the row at the 0-based position.
// Setting item_code also resolves item_name from the catalog; qty and rate
// are coerced to numbers. item_name is derived and rejected.
func (f *Form) UpdateRow(pos int, field, value string) error {
	if pos < 0 || pos >= len(f.Details) {
		return ErrNoSuchRow
	}
	row := &f.Details[pos]
	switch field {
	case FieldItemCode:
		row.ItemCode = value
		row.ItemName = f.catalog.Resolve(value)
	case FieldDescription:
		row.Description = value
	case FieldQty:
		row.Qty = Numeric(value)
	case FieldRate:
		row.Rate = Numeric(value)
	case FieldItemName:
		return fmt.Errorf("%s: %w", field, ErrReadOnlyField)
	default:
		return fmt.Errorf("%s: %w", field, ErrUnknownField)
	}
	f.reconcile()
	return nil
}

// UpdateHeaderField replaces one header field. Every accepted edit
// re-runs the reconciler so the derived total holds after header edits
// too, not only after detail edits. ac_amt itself is derived and rejected.
func (f *Form) UpdateHeaderField(field, value string) error {
	switch field {
	case FieldVrNo:
		f.Header.VrNo = value
	case FieldVrDate:
		f.Header.VrDate = value
	case FieldAcName:
		f.Header.AcName = value
	case FieldStatus:
		if Status(value) == StatusInactive {
			f.Header.Status = StatusInactive
		} else {
			f.Header.Status = StatusActive
		}
	case FieldAcAmt:
		return fmt.Errorf("%s: %w", field, ErrReadOnlyField)
	default:
		return fmt.Errorf("%s: %w", field, ErrUnknownField)
	}
	f.reconcile()
	return nil
}

// Total recomputes the grand total from the current rows.
func (f *Form) Total() float64 {
	return ComputeTotal(f.Details)
}

func (f *Form) reconcile() {
	f.Header.AcAmt = ComputeTotal(f.Details)
}
