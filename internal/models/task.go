package models

import "gorm.io/gorm"

// Task is a card on the board. Order is global across all of the owning
// user's tasks, not a per-column sequence: it encodes priority and is kept
// as-is when a task moves between columns.
type Task struct {
	gorm.Model

	UserID      uint   `gorm:"not null;index"`
	Title       string `gorm:"size:200;not null"`
	Description string `gorm:"type:text"`
	ColumnID    uint   `gorm:"not null;index"`
	Order       int    `gorm:"column:sort_order;not null;default:0;index"`

	// Relationships
	User   User   `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Column Column `gorm:"foreignKey:ColumnID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
