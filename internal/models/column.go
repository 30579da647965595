package models

import "gorm.io/gorm"

// Column is a named stage on a user's board. Each user has their own set of
// columns; a fresh account gets five defaults at registration.
type Column struct {
	gorm.Model

	UserID uint   `gorm:"not null;index"`
	Name   string `gorm:"size:100;not null"`
	Order  int    `gorm:"column:sort_order;not null;default:0;index"`

	// Relationships
	User  User   `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Tasks []Task `gorm:"foreignKey:ColumnID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
