// Package catalogfile parses item catalog spreadsheets. The expected
// layout is two columns on the first sheet, item_code then item_name,
// with an optional header row.
package catalogfile

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"sales-voucher/internal/entry"
)

var ErrNoSheets = errors.New("workbook has no sheets")

// Parse reads an xlsx workbook and returns the catalog items found on the
// first sheet. A first row whose code column reads "item_code" is treated
// as a header and skipped; blank rows are ignored.
func Parse(r io.Reader) ([]entry.Item, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrNoSheets
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}

	var items []entry.Item
	for i, row := range rows {
		var code, name string
		if len(row) > 0 {
			code = strings.TrimSpace(row[0])
		}
		if len(row) > 1 {
			name = strings.TrimSpace(row[1])
		}
		if code == "" {
			continue
		}
		if i == 0 && strings.EqualFold(code, "item_code") {
			continue
		}
		if name == "" {
			return nil, fmt.Errorf("row %d: item %q has no name", i+1, code)
		}
		items = append(items, entry.Item{Code: code, Name: name})
	}
	return items, nil
}
