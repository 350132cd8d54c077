// Package printer renders a saved voucher snapshot as a printable HTML
// document. It is read-only formatting; nothing feeds back into the entry
// engine.
package printer

import (
	"fmt"
	"html/template"
	"io"
	"time"

	"sales-voucher/internal/entry"
)

var funcs = template.FuncMap{
	"money": func(v float64) string {
		return fmt.Sprintf("₹%.2f", entry.Round2(v))
	},
	"amount": func(d entry.DetailPayload) string {
		return fmt.Sprintf("₹%.2f", entry.Round2(d.Qty*d.Rate))
	},
	"statusLabel": func(s string) string {
		return entry.Status(s).Label()
	},
	"displayDate": func(s string) string {
		if t, err := time.Parse(time.RFC3339, s); err == nil {
			return t.Format("02/01/2006")
		}
		return s
	},
}

var voucherTmpl = template.Must(template.New("voucher").Funcs(funcs).Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Sales Voucher {{.Header.VrNo}}</title>
<style>
  body { font-family: Arial, sans-serif; max-width: 210mm; margin: 0 auto; padding: 15px; }
  .title { text-align: center; border-bottom: 2px solid #000; padding-bottom: 15px; margin-bottom: 20px; }
  .meta { display: flex; justify-content: space-between; margin-bottom: 20px; }
  table { width: 100%; border-collapse: collapse; margin-bottom: 20px; }
  th, td { border: 1px solid #000; padding: 8px; }
  th { background: #f0f0f0; }
  td.num { text-align: right; }
  td.center { text-align: center; }
  .total { text-align: right; font-size: 18px; font-weight: bold; margin-bottom: 30px; }
  .sign { text-align: right; margin-top: 40px; }
</style>
</head>
<body>
<div class="title"><h1>SALES VOUCHER</h1></div>
<div class="meta">
  <div>
    <div><strong>Voucher No:</strong> {{.Header.VrNo}}</div>
    <div><strong>Date:</strong> {{displayDate .Header.VrDate}}</div>
  </div>
  <div>
    <div><strong>Account:</strong> {{.Header.AcName}}</div>
    <div><strong>Status:</strong> {{statusLabel .Header.Status}}</div>
  </div>
</div>
<table>
  <thead>
    <tr><th>Sr.</th><th>Item Code</th><th>Item Name</th><th>Description</th><th>Qty</th><th>Rate</th><th>Amount</th></tr>
  </thead>
  <tbody>
{{- range .Details}}
    <tr>
      <td class="center">{{.SrNo}}</td>
      <td>{{.ItemCode}}</td>
      <td>{{.ItemName}}</td>
      <td>{{.Description}}</td>
      <td class="num">{{.Qty}}</td>
      <td class="num">{{.Rate}}</td>
      <td class="num">{{amount .}}</td>
    </tr>
{{- end}}
  </tbody>
</table>
<div class="total">Total Amount: {{money .Total}}</div>
<div class="sign">
  <div>_____________________</div>
  <div>Authorized Signature</div>
</div>
</body>
</html>
`))

type view struct {
	Header  entry.HeaderPayload
	Details []entry.DetailPayload
	Total   float64
}

// Render writes the printable document for a saved voucher.
func Render(w io.Writer, p entry.Payload) error {
	var total float64
	for _, d := range p.Details {
		total += d.Qty * d.Rate
	}
	return voucherTmpl.Execute(w, view{Header: p.Header, Details: p.Details, Total: total})
}
