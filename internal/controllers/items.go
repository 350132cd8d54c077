package controllers

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"strings"

	"sales-voucher/internal/catalogfile"
	"sales-voucher/models"
)

type ItemController struct{ DB *sql.DB }

func (c ItemController) CreateOrList(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		var body models.Item
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&body); err != nil {
			writeJSONError(w, http.StatusBadRequest, err.Error())
			return
		}
		body.ItemCode = strings.TrimSpace(body.ItemCode)
		body.ItemName = strings.TrimSpace(body.ItemName)
		if body.ItemCode == "" || body.ItemName == "" {
			writeJSONError(w, http.StatusBadRequest, "item_code and item_name are required")
			return
		}
		_, err := c.DB.Exec(`INSERT INTO item_master (item_code, item_name) VALUES (?, ?)`, body.ItemCode, body.ItemName)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err.Error())
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok", "item_code": body.ItemCode})
	case http.MethodGet:
		rows, err := c.DB.Query(`SELECT item_code, item_name FROM item_master WHERE deleted_at IS NULL ORDER BY item_code`)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		defer rows.Close()
		list := []map[string]string{}
		for rows.Next() {
			var code, name string
			if err := rows.Scan(&code, &name); err != nil {
				http.Error(w, err.Error(), http.StatusInternalServerError)
				return
			}
			list = append(list, map[string]string{"item_code": code, "item_name": name})
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(list)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// BulkImport loads catalog items from an uploaded xlsx workbook. Existing
// codes are updated rather than duplicated.
func (c ItemController) BulkImport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	file, _, err := r.FormFile("file")
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "a workbook must be uploaded as the \"file\" form field")
		return
	}
	defer file.Close()

	items, err := catalogfile.Parse(file)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	if len(items) == 0 {
		writeJSONError(w, http.StatusBadRequest, "workbook contains no items")
		return
	}

	imported := 0
	for _, it := range items {
		_, err := c.DB.Exec(
			`INSERT INTO item_master (item_code, item_name) VALUES (?, ?) ON DUPLICATE KEY UPDATE item_name = VALUES(item_name), deleted_at = NULL`,
			it.Code, it.Name,
		)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err.Error())
			return
		}
		imported++
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(map[string]any{"status": "ok", "imported": imported})
}
