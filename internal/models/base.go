package models

import "time"

// BaseModel carries the numeric id and bookkeeping timestamps shared by
// mutable tables.
type BaseModel struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// DateLayout is the wire and storage format for calendar dates.
const DateLayout = "2006-01-02"
