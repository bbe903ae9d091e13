package models

import "time"

type Task struct {
	ID            uint       `json:"id"            gorm:"primary_key"`
	OrderID       uint       `json:"-"             gorm:"index;not null"`
	Name          string     `json:"name"          gorm:"type:varchar(255)"`
	Description   *string    `json:"description"   gorm:"type:text"`
	ExecutionDate *time.Time `json:"executionDate"`
}
