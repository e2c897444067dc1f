package models

// WorkingHour is owned by its canteen; Position keeps the order the
// hours were submitted in.
type WorkingHour struct {
	ID        uint   `gorm:"primaryKey" json:"-"`
	CanteenID string `gorm:"size:36;not null;index" json:"-"`
	Position  int    `gorm:"not null" json:"-"`

	Meal        string `gorm:"size:20;not null" json:"meal"`
	StartMinute int    `gorm:"not null" json:"start_minute"`
	EndMinute   int    `gorm:"not null" json:"end_minute"`
}
