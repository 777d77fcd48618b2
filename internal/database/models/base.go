package models

import "time"

// Base model with auto-incrementing primary key and timestamps.
// Account deletion is a hard delete, so there is no DeletedAt column.
type Base struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
