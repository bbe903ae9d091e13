package models

import (
	"time"
)

type Order struct {
	ID          uint      `json:"id"          gorm:"primary_key"`
	UserID      uint      `json:"-"           gorm:"index;not null"`
	Name        string    `json:"name"        gorm:"type:varchar(255)"`
	OrderNumber int       `json:"orderNumber"`
	OrderDate   time.Time `json:"orderDate"`
	Status      Status    `json:"status"      validate:"oneof=pending processing completed cancelled" gorm:"type:varchar(20)"`
	Currency    string    `json:"currency"    gorm:"type:varchar(10)"`

	OrderLines []OrderLine `json:"orderLines" gorm:"foreignkey:OrderID"`
	Tasks      []Task      `json:"tasks"      gorm:"foreignkey:OrderID"`
}
