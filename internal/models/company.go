package models

type Company struct {
	Code        string `gorm:"primaryKey"`
	Name        string `gorm:"not null;index"`
	Description string
}
