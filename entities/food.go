package entities

type Food struct {
	ID          uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Description string `gorm:"not null" json:"description"`
	LocationID  uint   `gorm:"not null" json:"location_id"`
	BatchID     uint   `gorm:"not null" json:"batch_id"`

	Location *Location `gorm:"foreignKey:LocationID" json:"-"`
}
