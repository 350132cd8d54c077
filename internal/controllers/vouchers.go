package controllers

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"sales-voucher/models"
)

type VoucherController struct{ DB *sql.DB }

// VoucherPayload is the body of POST /header/multiple: one header plus its
// detail rows, already normalized by the client.
type VoucherPayload struct {
	Header  models.VoucherHeader   `json:"header_table"`
	Details []models.VoucherDetail `json:"detail_table"`
}

func validateVoucherPayload(p VoucherPayload) error {
	if p.Header.VrNo <= 0 {
		return errors.New("header_table.vr_no must be a positive integer")
	}
	if p.Header.VrDate.IsZero() {
		return errors.New("header_table.vr_date is required")
	}
	if strings.TrimSpace(p.Header.AcName) == "" {
		return errors.New("header_table.ac_name is required")
	}
	if len(p.Header.AcName) > 200 {
		return errors.New("header_table.ac_name cannot exceed 200 characters")
	}
	if p.Header.Status != "A" && p.Header.Status != "I" {
		return errors.New("header_table.status must be A or I")
	}
	if len(p.Details) == 0 {
		return errors.New("detail_table must not be empty")
	}
	for i, d := range p.Details {
		if d.VrNo != p.Header.VrNo {
			return fmt.Errorf("detail_table[%d].vr_no does not match the header", i)
		}
		if d.SrNo != i+1 {
			return fmt.Errorf("detail_table[%d].sr_no must be %d", i, i+1)
		}
		if strings.TrimSpace(d.ItemCode) == "" {
			return fmt.Errorf("detail_table[%d].item_code is required", i)
		}
		if d.Qty <= 0 {
			return fmt.Errorf("detail_table[%d].qty must be greater than 0", i)
		}
		if d.Rate <= 0 {
			return fmt.Errorf("detail_table[%d].rate is required and must be greater than 0", i)
		}
		if len(d.Description) > 3000 {
			return fmt.Errorf("detail_table[%d].description cannot exceed 3000 characters", i)
		}
	}
	return nil
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"message": msg})
}

// CreateMultiple inserts a header and its details in one transaction.
func (c VoucherController) CreateMultiple(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	var payload VoucherPayload
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&payload); err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := validateVoucherPayload(payload); err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	var exists int
	err := c.DB.QueryRow(`SELECT COUNT(1) FROM header_table WHERE vr_no = ? AND deleted_at IS NULL`, payload.Header.VrNo).Scan(&exists)
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if exists > 0 {
		writeJSONError(w, http.StatusBadRequest, fmt.Sprintf("voucher %d already exists", payload.Header.VrNo))
		return
	}

	tx, err := c.DB.Begin()
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, err.Error())
		return
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO header_table (vr_no, vr_date, ac_name, ac_amt, status) VALUES (?, ?, ?, ?, ?)`,
		payload.Header.VrNo,
		payload.Header.VrDate,
		payload.Header.AcName,
		payload.Header.AcAmt,
		payload.Header.Status,
	)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	for _, d := range payload.Details {
		_, err := tx.Exec(
			`INSERT INTO detail_table (vr_no, sr_no, item_code, item_name, description, qty, rate) VALUES (?, ?, ?, ?, ?, ?, ?)`,
			d.VrNo, d.SrNo, d.ItemCode, d.ItemName, d.Description, d.Qty, d.Rate,
		)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err.Error())
			return
		}
	}
	if err := tx.Commit(); err != nil {
		writeJSONError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"status":       "ok",
		"vr_no":        payload.Header.VrNo,
		"totalDetails": len(payload.Details),
	})
}

// List returns voucher headers with optional filters and pagination.
func (c VoucherController) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	q := r.URL.Query()
	var where []string
	var args []any
	if v := q.Get("status"); v != "" {
		where = append(where, "status = ?")
		args = append(args, v)
	}
	if v := q.Get("acName"); v != "" {
		where = append(where, "ac_name LIKE ?")
		args = append(args, "%"+v+"%")
	}
	if v := q.Get("startDate"); v != "" {
		where = append(where, "vr_date >= ?")
		args = append(args, v)
	}
	if v := q.Get("endDate"); v != "" {
		where = append(where, "vr_date <= ?")
		args = append(args, v)
	}
	base := "SELECT vr_no, vr_date, ac_name, ac_amt, status FROM header_table WHERE deleted_at IS NULL"
	countBase := "SELECT COUNT(1) FROM header_table WHERE deleted_at IS NULL"
	if len(where) > 0 {
		cond := " AND " + strings.Join(where, " AND ")
		base += cond
		countBase += cond
	}
	base += " ORDER BY vr_date DESC, vr_no DESC"
	lim := 50
	off := 0
	if v := q.Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 500 {
			lim = n
		}
	}
	if v := q.Get("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			off = n
		}
	}
	var total int
	if err := c.DB.QueryRow(countBase, args...).Scan(&total); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	base += " LIMIT ? OFFSET ?"
	args = append(args, lim, off)
	rows, err := c.DB.Query(base, args...)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	defer rows.Close()
	var list []map[string]any
	for rows.Next() {
		var m struct {
			VrNo   int
			VrDate time.Time
			AcName string
			AcAmt  float64
			Status string
		}
		if err := rows.Scan(&m.VrNo, &m.VrDate, &m.AcName, &m.AcAmt, &m.Status); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		list = append(list, map[string]any{
			"vr_no":   m.VrNo,
			"vr_date": m.VrDate.Format(time.RFC3339),
			"ac_name": m.AcName,
			"ac_amt":  m.AcAmt,
			"status":  m.Status,
		})
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"items": list,
		"pagination": map[string]any{
			"total":  total,
			"limit":  lim,
			"offset": off,
		},
	})
}

// GetByVrNo returns one header together with its detail rows.
func (c VoucherController) GetByVrNo(w http.ResponseWriter, r *http.Request, vrNoParam string) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	vrNo, err := strconv.Atoi(vrNoParam)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "vr_no must be an integer")
		return
	}
	var h struct {
		VrNo   int       `json:"vr_no"`
		VrDate time.Time `json:"vr_date"`
		AcName string    `json:"ac_name"`
		AcAmt  float64   `json:"ac_amt"`
		Status string    `json:"status"`
	}
	err = c.DB.QueryRow(`SELECT vr_no, vr_date, ac_name, ac_amt, status FROM header_table WHERE vr_no = ? AND deleted_at IS NULL`, vrNo).
		Scan(&h.VrNo, &h.VrDate, &h.AcName, &h.AcAmt, &h.Status)
	if err != nil {
		if err == sql.ErrNoRows {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	details, err := c.queryDetails(`SELECT vr_no, sr_no, item_code, item_name, description, qty, rate FROM detail_table WHERE vr_no = ? AND deleted_at IS NULL ORDER BY sr_no`, vrNo)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"header":  h,
		"details": details,
	})
}

// NextNumber returns max(vr_no)+1 for callers that want a server-assigned
// voucher number.
func (c VoucherController) NextNumber(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	var next int
	if err := c.DB.QueryRow(`SELECT COALESCE(MAX(vr_no), 0) + 1 FROM header_table`).Scan(&next); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]int{"vr_no": next})
}

// ListDetails returns detail rows, optionally filtered by vr_no.
func (c VoucherController) ListDetails(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	query := `SELECT vr_no, sr_no, item_code, item_name, description, qty, rate FROM detail_table WHERE deleted_at IS NULL`
	var args []any
	if v := r.URL.Query().Get("vr_no"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, "vr_no must be an integer")
			return
		}
		query += " AND vr_no = ?"
		args = append(args, n)
	}
	query += " ORDER BY vr_no, sr_no"
	details, err := c.queryDetails(query, args...)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(details)
}

type detailRow struct {
	VrNo        int     `json:"vr_no"`
	SrNo        int     `json:"sr_no"`
	ItemCode    string  `json:"item_code"`
	ItemName    string  `json:"item_name"`
	Description string  `json:"description"`
	Qty         float64 `json:"qty"`
	Rate        float64 `json:"rate"`
}

func (c VoucherController) queryDetails(query string, args ...any) ([]detailRow, error) {
	rows, err := c.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	details := []detailRow{}
	for rows.Next() {
		var d detailRow
		if err := rows.Scan(&d.VrNo, &d.SrNo, &d.ItemCode, &d.ItemName, &d.Description, &d.Qty, &d.Rate); err != nil {
			return nil, err
		}
		details = append(details, d)
	}
	return details, rows.Err()
}
