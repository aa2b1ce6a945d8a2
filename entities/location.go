package entities

type Location struct {
	ID        uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Address   string  `gorm:"uniqueIndex;not null" json:"address"`
	Latitude  float64 `gorm:"not null" json:"latitude"`
	Longitude float64 `gorm:"not null" json:"longitude"`
}
