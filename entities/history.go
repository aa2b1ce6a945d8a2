package entities

import "time"

// History is append-only: rows are inserted by a food transfer and never
// updated or deleted afterwards.
type History struct {
	ID            uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Date          time.Time `gorm:"not null" json:"date"`
	FoodID        uint      `gorm:"not null" json:"food_id"`
	SourceID      uint      `gorm:"not null" json:"source_id"`
	DestinationID uint      `gorm:"not null" json:"destination_id"`

	Food        *Food     `gorm:"foreignKey:FoodID" json:"-"`
	Source      *Location `gorm:"foreignKey:SourceID" json:"-"`
	Destination *Location `gorm:"foreignKey:DestinationID" json:"-"`
}
