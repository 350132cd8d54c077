package controllers

import (
	"encoding/json"
	"net/http"

	"gorm.io/gorm"
)

type ReportController struct {
	DB *gorm.DB
}

// AccountSummary aggregates saved vouchers per account name.
func (c ReportController) AccountSummary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	var list []map[string]any
	err := c.DB.Table("header_table").
		Select("ac_name, COUNT(*) AS voucher_count, SUM(ac_amt) AS total_amount").
		Where("deleted_at IS NULL").
		Group("ac_name").
		Order("ac_name").
		Find(&list).Error
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	var responseList []map[string]any
	for _, item := range list {
		responseList = append(responseList, map[string]any{
			"ac_name":       item["ac_name"],
			"voucher_count": item["voucher_count"],
			"total_amount":  item["total_amount"],
		})
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(responseList)
}

// StatusSummary counts vouchers by status.
func (c ReportController) StatusSummary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	var list []map[string]any
	err := c.DB.Table("header_table").
		Select("status, COUNT(*) AS voucher_count, SUM(ac_amt) AS total_amount").
		Where("deleted_at IS NULL").
		Group("status").
		Order("status").
		Find(&list).Error
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(list)
}
