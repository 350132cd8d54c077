package models

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
)

type VoucherHeader struct {
	VrNo      int            `json:"vr_no" gorm:"column:vr_no;primaryKey;autoIncrement:false"`
	VrDate    time.Time      `json:"vr_date" gorm:"column:vr_date;type:datetime;not null"`
	AcName    string         `json:"ac_name" gorm:"column:ac_name;type:varchar(200);not null"`
	AcAmt     float64        `json:"ac_amt" gorm:"column:ac_amt;type:decimal(15,2);not null"`
	Status    string         `json:"status" gorm:"column:status;type:varchar(1);not null;default:'A'"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

func (VoucherHeader) TableName() string { return "header_table" }

func (h *VoucherHeader) UnmarshalJSON(data []byte) error {
	type Alias VoucherHeader
	aux := &struct {
		VrDate string `json:"vr_date"`
		*Alias
	}{
		Alias: (*Alias)(h),
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	if aux.VrDate == "" {
		return nil
	}

	s := strings.TrimSpace(aux.VrDate)
	var t time.Time
	var err error

	t, err = time.Parse(time.RFC3339, s)
	if err != nil {
		t, err = time.Parse("2006-01-02", s)
	}
	if err != nil {
		return errors.New("unsupported voucher date format")
	}

	h.VrDate = t
	return nil
}
