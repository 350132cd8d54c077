package entry

import (
	"strings"
	"time"
)

// HeaderPayload is the outbound header record shape.
type HeaderPayload struct {
	VrNo   int     `json:"vr_no" yaml:"vr_no"`
	VrDate string  `json:"vr_date" yaml:"vr_date"`
	AcName string  `json:"ac_name" yaml:"ac_name"`
	AcAmt  float64 `json:"ac_amt" yaml:"ac_amt"`
	Status string  `json:"status" yaml:"status"`
}

// DetailPayload is one outbound detail row. The payload is denormalized,
// so every row repeats the parent voucher number.
type DetailPayload struct {
	VrNo        int     `json:"vr_no" yaml:"vr_no"`
	SrNo        int     `json:"sr_no" yaml:"sr_no"`
	ItemCode    string  `json:"item_code" yaml:"item_code"`
	ItemName    string  `json:"item_name" yaml:"item_name"`
	Description string  `json:"description" yaml:"description"`
	Qty         float64 `json:"qty" yaml:"qty"`
	Rate        float64 `json:"rate" yaml:"rate"`
}

// Payload is the body of POST /header/multiple.
type Payload struct {
	Header  HeaderPayload   `json:"header_table"`
	Details []DetailPayload `json:"detail_table"`
}

// Normalize transforms validated form state into the outbound shape: rows
// without an item code are dropped, survivors are renumbered from 1, text
// fields are trimmed, the account name is upper-cased, an empty
// description becomes "N/A", quantities round to 3 places, rates to 2,
// and the header amount is recomputed from the normalized rows rather
// than trusted from the form.
func Normalize(h Header, rows []Row) Payload {
	vrNo := Integer(h.VrNo)

	var details []DetailPayload
	var total float64
	for _, r := range rows {
		if strings.TrimSpace(r.ItemCode) == "" {
			continue
		}
		d := DetailPayload{
			VrNo:        vrNo,
			SrNo:        len(details) + 1,
			ItemCode:    strings.TrimSpace(r.ItemCode),
			ItemName:    strings.TrimSpace(r.ItemName),
			Description: strings.TrimSpace(r.Description),
			Qty:         Round3(r.Qty),
			Rate:        Round2(r.Rate),
		}
		if d.Description == "" {
			d.Description = "N/A"
		}
		total += d.Qty * d.Rate
		details = append(details, d)
	}

	return Payload{
		Header: HeaderPayload{
			VrNo:   vrNo,
			VrDate: normalizeDate(h.VrDate),
			AcName: strings.ToUpper(strings.TrimSpace(h.AcName)),
			AcAmt:  Round2(total),
			Status: string(h.Status),
		},
		Details: details,
	}
}

// normalizeDate turns a form date into RFC 3339. A form date is normally
// a plain yyyy-mm-dd; anything unrecognized passes through unchanged.
func normalizeDate(s string) string {
	s = strings.TrimSpace(s)
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t.UTC().Format(time.RFC3339)
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC().Format(time.RFC3339)
	}
	return s
}
