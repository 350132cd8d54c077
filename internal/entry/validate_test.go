package entry

import (
	"strings"
	"testing"
)

func validHeader() Header {
	return Header{VrNo: "101", VrDate: "2026-08-31", AcName: "Acme Traders", Status: StatusActive}
}

func TestCheckOrdering(t *testing.T) {
	tests := []struct {
		name    string
		header  Header
		rows    []Row
		wantMsg string
	}{
		{
			name:    "voucher number wins over everything",
			header:  Header{VrNo: "", VrDate: "", AcName: ""},
			rows:    []Row{{SrNo: 1}},
			wantMsg: "Please enter a valid Voucher Number.",
		},
		{
			name:    "non-numeric voucher number",
			header:  Header{VrNo: "x9", VrDate: "", AcName: ""},
			rows:    []Row{{SrNo: 1}},
			wantMsg: "Voucher number must be a valid number.",
		},
		{
			name:    "missing date",
			header:  Header{VrNo: "1", VrDate: "", AcName: ""},
			rows:    []Row{{SrNo: 1}},
			wantMsg: "Voucher Date is required.",
		},
		{
			name:    "blank account name",
			header:  Header{VrNo: "1", VrDate: "2026-08-31", AcName: "   "},
			rows:    []Row{{SrNo: 1}},
			wantMsg: "Account Name is required.",
		},
		{
			name:    "oversized account name",
			header:  Header{VrNo: "1", VrDate: "2026-08-31", AcName: strings.Repeat("a", 201)},
			rows:    []Row{{SrNo: 1}},
			wantMsg: "Account name cannot exceed 200 characters.",
		},
		{
			name:    "no row with an item code",
			header:  validHeader(),
			rows:    []Row{{SrNo: 1}, {SrNo: 2, Qty: 5, Rate: 2}},
			wantMsg: "At least one item must be selected.",
		},
		{
			name:   "zero quantity reports the valid-row number",
			header: validHeader(),
			rows: []Row{
				{SrNo: 1},
				{SrNo: 2, ItemCode: "A1", Qty: 0, Rate: 2},
			},
			wantMsg: "Quantity must be greater than 0 for row 1.",
		},
		{
			name:   "zero rate after good quantity",
			header: validHeader(),
			rows: []Row{
				{SrNo: 1, ItemCode: "A1", Qty: 1, Rate: 2},
				{SrNo: 2, ItemCode: "B1", Qty: 1, Rate: 0},
			},
			wantMsg: "Rate must be greater than 0 for row 2.",
		},
		{
			name:   "oversized description",
			header: validHeader(),
			rows: []Row{
				{SrNo: 1, ItemCode: "A1", Qty: 1, Rate: 2, Description: strings.Repeat("d", 3001)},
			},
			wantMsg: "Description cannot exceed 3000 characters for row 1.",
		},
		{
			name:   "valid entry",
			header: validHeader(),
			rows: []Row{
				{SrNo: 1, ItemCode: "A1", Qty: 1, Rate: 2},
				{SrNo: 2},
			},
			wantMsg: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Check(tt.header, tt.rows)
			if tt.wantMsg == "" {
				if err != nil {
					t.Fatalf("Check() = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Check() = nil, want %q", tt.wantMsg)
			}
			if err.Error() != tt.wantMsg {
				t.Errorf("Check() = %q, want %q", err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestCheckRuleErrorFields(t *testing.T) {
	err := Check(validHeader(), []Row{{SrNo: 1, ItemCode: "A1", Qty: 0, Rate: 2}})
	rule, ok := err.(*RuleError)
	if !ok {
		t.Fatalf("Check() returned %T, want *RuleError", err)
	}
	if rule.Field != FieldQty || rule.Row != 1 {
		t.Errorf("rule = %+v, want field %q row 1", rule, FieldQty)
	}
}

func TestCheckAllCollectsEverything(t *testing.T) {
	h := Header{VrNo: "0", VrDate: "", AcName: ""}
	rows := []Row{
		{SrNo: 1},
		{SrNo: 2, ItemCode: "A1", Qty: 2, Rate: 5},
	}
	errs := CheckAll(h, rows)

	if errs.OK() {
		t.Fatal("OK() = true for an invalid entry")
	}
	for _, field := range []string{FieldVrNo, FieldVrDate, FieldAcName} {
		if errs.Header[field] == "" {
			t.Errorf("missing header error for %s", field)
		}
	}
	if len(errs.Details) != 2 {
		t.Fatalf("detail error rows = %d, want 2", len(errs.Details))
	}
	for _, field := range []string{FieldItemCode, FieldQty, FieldRate} {
		if errs.Details[0][field] == "" {
			t.Errorf("missing row 0 error for %s", field)
		}
	}
	if len(errs.Details[1]) != 0 {
		t.Errorf("row 1 should be clean, got %v", errs.Details[1])
	}
}

func TestCheckAllConsistencyWarning(t *testing.T) {
	rows := []Row{{SrNo: 1, ItemCode: "A1", Qty: 2, Rate: 5}}

	h := validHeader()
	h.AcAmt = 10
	errs := CheckAll(h, rows)
	if errs.ConsistencyWarning != "" {
		t.Errorf("unexpected warning: %q", errs.ConsistencyWarning)
	}
	if !errs.OK() {
		t.Errorf("valid entry reported errors: %+v", errs)
	}

	h.AcAmt = 9
	errs = CheckAll(h, rows)
	if errs.ConsistencyWarning == "" {
		t.Error("stale header total produced no warning")
	}
	// The warning flags a reconciliation bug, not user input, so the
	// entry still validates.
	if !errs.OK() {
		t.Errorf("warning blocked validity: %+v", errs)
	}
}
