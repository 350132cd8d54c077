package models

import "gorm.io/gorm"

type Item struct {
	ItemCode  string         `json:"item_code" gorm:"column:item_code;primaryKey;type:varchar(64)"`
	ItemName  string         `json:"item_name" gorm:"column:item_name;type:varchar(255);not null"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

func (Item) TableName() string { return "item_master" }
