package entry

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	maxAccountNameLen = 200
	maxDescriptionLen = 3000
)

// RuleError is a single violated entry rule. Row is the 1-based number of
// the offending valid detail row, 0 for header rules.
type RuleError struct {
	Field   string
	Row     int
	Message string
}

func (e *RuleError) Error() string {
	return e.Message
}

// Check inspects the header and detail rows and returns the first violated
// rule, in a fixed order: voucher number, date, account name, at least one
// row with an item code, then per-row qty/rate/description in row order.
// Rows without an item code are skipped. A nil return means the entry may
// be submitted.
func Check(h Header, rows []Row) error {
	if strings.TrimSpace(h.VrNo) == "" {
		return &RuleError{Field: FieldVrNo, Message: "Please enter a valid Voucher Number."}
	}
	if _, err := strconv.Atoi(strings.TrimSpace(h.VrNo)); err != nil {
		return &RuleError{Field: FieldVrNo, Message: "Voucher number must be a valid number."}
	}
	if strings.TrimSpace(h.VrDate) == "" {
		return &RuleError{Field: FieldVrDate, Message: "Voucher Date is required."}
	}
	if strings.TrimSpace(h.AcName) == "" {
		return &RuleError{Field: FieldAcName, Message: "Account Name is required."}
	}
	if len(h.AcName) > maxAccountNameLen {
		return &RuleError{Field: FieldAcName, Message: "Account name cannot exceed 200 characters."}
	}

	valid := validRows(rows)
	if len(valid) == 0 {
		return &RuleError{Field: FieldItemCode, Message: "At least one item must be selected."}
	}
	for i, row := range valid {
		n := i + 1
		if row.Qty <= 0 {
			return &RuleError{Field: FieldQty, Row: n,
				Message: fmt.Sprintf("Quantity must be greater than 0 for row %d.", n)}
		}
		if row.Rate <= 0 {
			return &RuleError{Field: FieldRate, Row: n,
				Message: fmt.Sprintf("Rate must be greater than 0 for row %d.", n)}
		}
		if len(row.Description) > maxDescriptionLen {
			return &RuleError{Field: FieldDescription, Row: n,
				Message: fmt.Sprintf("Description cannot exceed 3000 characters for row %d.", n)}
		}
	}
	return nil
}

// FieldErrors maps a field name to its violation message.
type FieldErrors map[string]string

// Errors is the structured result of CheckAll: every violation at once,
// keyed for per-field highlighting. ConsistencyWarning is set when the
// header total disagrees with the freshly computed row sum; that points at
// a missed reconciliation, not at user input, and never blocks submission.
type Errors struct {
	Header             FieldErrors
	Details            []FieldErrors
	ConsistencyWarning string
}

// OK reports whether no field-level violation was found. The consistency
// warning does not count against validity.
func (e Errors) OK() bool {
	if len(e.Header) > 0 {
		return false
	}
	for _, d := range e.Details {
		if len(d) > 0 {
			return false
		}
	}
	return true
}

// CheckAll evaluates every rule without short-circuiting. Unlike Check it
// inspects all rows, including ones without an item code, so each row gets
// its own error map for highlighting.
func CheckAll(h Header, rows []Row) Errors {
	out := Errors{Header: FieldErrors{}, Details: make([]FieldErrors, len(rows))}

	n, err := strconv.Atoi(strings.TrimSpace(h.VrNo))
	if strings.TrimSpace(h.VrNo) == "" || err != nil || n <= 0 {
		out.Header[FieldVrNo] = "Voucher number is required and must be positive"
	}
	if strings.TrimSpace(h.VrDate) == "" {
		out.Header[FieldVrDate] = "Voucher date is required"
	}
	if strings.TrimSpace(h.AcName) == "" {
		out.Header[FieldAcName] = "Account name is required"
	} else if len(h.AcName) > maxAccountNameLen {
		out.Header[FieldAcName] = "Account name cannot exceed 200 characters"
	}

	for i, row := range rows {
		errs := FieldErrors{}
		if row.ItemCode == "" {
			errs[FieldItemCode] = "Item code is required"
		}
		if row.Qty <= 0 {
			errs[FieldQty] = "Quantity must be greater than 0"
		}
		if row.Rate <= 0 {
			errs[FieldRate] = "Rate must be greater than 0"
		}
		if len(row.Description) > maxDescriptionLen {
			errs[FieldDescription] = "Description cannot exceed 3000 characters"
		}
		out.Details[i] = errs
	}

	if len(rows) > 0 {
		if total := ComputeTotal(rows); h.AcAmt != total {
			out.ConsistencyWarning = fmt.Sprintf(
				"header amount (%v) does not match details total (%v)", h.AcAmt, total)
		}
	}
	return out
}

func validRows(rows []Row) []Row {
	var out []Row
	for _, r := range rows {
		if r.ItemCode != "" {
			out = append(out, r)
		}
	}
	return out
}
