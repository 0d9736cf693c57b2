package models

import (
	"time"
)

type Invoice struct {
	ID       uint    `gorm:"primaryKey"`
	CompCode string  `gorm:"index;not null"`
	Company  Company `gorm:"foreignKey:CompCode;references:Code;constraint:OnDelete:RESTRICT"`
	Amt      float64 `gorm:"not null"`
	Paid     bool    `gorm:"not null;default:false"`
	AddDate  time.Time
	PaidDate *time.Time
}
