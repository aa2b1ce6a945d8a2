package history

import (
	"context"

	"github.com/NotFish232/Conrad-2023/entities"
	"gorm.io/gorm"
)

type (
	HistoryRepository interface {
		GetHistory(ctx context.Context) ([]*entities.History, error)
		GetHistoryByFood(ctx context.Context, foodID uint) ([]*entities.History, error)
		GetHistoryByLocation(ctx context.Context, locationID uint) ([]*entities.History, error)
	}

	historyRepository struct {
		db *gorm.DB
	}
)

func NewHistoryRepository(db *gorm.DB) HistoryRepository {
	return &historyRepository{db: db}
}

func (r *historyRepository) GetHistory(ctx context.Context) ([]*entities.History, error) {
	var records []*entities.History
	if err := r.db.WithContext(ctx).Order("id asc").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *historyRepository) GetHistoryByFood(ctx context.Context, foodID uint) ([]*entities.History, error) {
	var records []*entities.History
	if err := r.db.WithContext(ctx).
		Where("food_id = ?", foodID).
		Order("id asc").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *historyRepository) GetHistoryByLocation(ctx context.Context, locationID uint) ([]*entities.History, error) {
	var records []*entities.History
	if err := r.db.WithContext(ctx).
		Where("source_id = ? OR destination_id = ?", locationID, locationID).
		Order("id asc").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}
