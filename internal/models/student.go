package models

import "time"

type Student struct {
	ID      string `gorm:"primaryKey;size:36" json:"id"`
	Name    string `gorm:"size:200;not null" json:"name"`
	Email   string `gorm:"size:320;uniqueIndex;not null" json:"email"`
	IsAdmin bool   `gorm:"not null;default:false" json:"is_admin"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
