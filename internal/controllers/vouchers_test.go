package controllers

import (
	"strings"
	"testing"
	"time"

	"sales-voucher/models"
)

func payload() VoucherPayload {
	return VoucherPayload{
		Header: models.VoucherHeader{
			VrNo:   101,
			VrDate: time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC),
			AcName: "ACME TRADERS",
			AcAmt:  10,
			Status: "A",
		},
		Details: []models.VoucherDetail{
			{VrNo: 101, SrNo: 1, ItemCode: "A1", ItemName: "Widget", Description: "N/A", Qty: 2, Rate: 5},
		},
	}
}

func TestValidateVoucherPayload(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*VoucherPayload)
		wantErr string
	}{
		{
			name:   "valid",
			mutate: func(p *VoucherPayload) {},
		},
		{
			name:    "zero voucher number",
			mutate:  func(p *VoucherPayload) { p.Header.VrNo = 0 },
			wantErr: "vr_no",
		},
		{
			name:    "missing date",
			mutate:  func(p *VoucherPayload) { p.Header.VrDate = time.Time{} },
			wantErr: "vr_date",
		},
		{
			name:    "blank account",
			mutate:  func(p *VoucherPayload) { p.Header.AcName = "  " },
			wantErr: "ac_name",
		},
		{
			name:    "oversized account",
			mutate:  func(p *VoucherPayload) { p.Header.AcName = strings.Repeat("a", 201) },
			wantErr: "200",
		},
		{
			name:    "bad status",
			mutate:  func(p *VoucherPayload) { p.Header.Status = "X" },
			wantErr: "status",
		},
		{
			name:    "no details",
			mutate:  func(p *VoucherPayload) { p.Details = nil },
			wantErr: "detail_table must not be empty",
		},
		{
			name:    "detail voucher mismatch",
			mutate:  func(p *VoucherPayload) { p.Details[0].VrNo = 999 },
			wantErr: "does not match",
		},
		{
			name: "non-sequential sr_no",
			mutate: func(p *VoucherPayload) {
				p.Details = append(p.Details, models.VoucherDetail{
					VrNo: 101, SrNo: 5, ItemCode: "B1", Qty: 1, Rate: 1,
				})
			},
			wantErr: "sr_no must be 2",
		},
		{
			name:    "blank item code",
			mutate:  func(p *VoucherPayload) { p.Details[0].ItemCode = " " },
			wantErr: "item_code",
		},
		{
			name:    "zero quantity",
			mutate:  func(p *VoucherPayload) { p.Details[0].Qty = 0 },
			wantErr: "qty",
		},
		{
			name:    "negative rate",
			mutate:  func(p *VoucherPayload) { p.Details[0].Rate = -1 },
			wantErr: "rate",
		},
		{
			name:    "oversized description",
			mutate:  func(p *VoucherPayload) { p.Details[0].Description = strings.Repeat("d", 3001) },
			wantErr: "description",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := payload()
			tt.mutate(&p)
			err := validateVoucherPayload(p)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("validateVoucherPayload() = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("validateVoucherPayload() = nil, want error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err.Error(), tt.wantErr)
			}
		})
	}
}
