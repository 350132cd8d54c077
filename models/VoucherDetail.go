package models

import "gorm.io/gorm"

type VoucherDetail struct {
	VrNo        int            `json:"vr_no" gorm:"column:vr_no;primaryKey;autoIncrement:false;index"`
	SrNo        int            `json:"sr_no" gorm:"column:sr_no;primaryKey;autoIncrement:false"`
	ItemCode    string         `json:"item_code" gorm:"column:item_code;type:varchar(64);not null"`
	ItemName    string         `json:"item_name" gorm:"column:item_name;type:varchar(255)"`
	Description string         `json:"description" gorm:"column:description;type:varchar(3000)"`
	Qty         float64        `json:"qty" gorm:"column:qty;type:decimal(15,3);not null"`
	Rate        float64        `json:"rate" gorm:"column:rate;type:decimal(15,2);not null"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
}

func (VoucherDetail) TableName() string { return "detail_table" }
