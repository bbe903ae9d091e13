package models

import "time"

type OrderLine struct {
	ID          uint       `json:"id"          gorm:"primary_key"`
	OrderID     uint       `json:"-"           gorm:"index;not null"`
	Amount      float64    `json:"amount"      validate:"required"`
	ProductName string     `json:"productName" validate:"required" gorm:"type:varchar(255)"`
	PickedDate  *time.Time `json:"pickedDate"`
}
