package models

import "time"

type Canteen struct {
	ID       string `gorm:"primaryKey;size:36" json:"id"`
	Name     string `gorm:"size:200;not null" json:"name"`
	NameKey  string `gorm:"size:200;uniqueIndex;not null" json:"-"`
	Location string `gorm:"size:200;not null" json:"location"`
	Capacity int    `gorm:"not null" json:"capacity"`

	WorkingHours []WorkingHour `gorm:"foreignKey:CanteenID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"working_hours"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
