package food

import (
	"context"
	"time"

	"github.com/NotFish232/Conrad-2023/entities"
	"gorm.io/gorm"
)

type (
	FoodRepository interface {
		// AddFood inserts the food. A zero BatchID means auto-assign:
		// max(batch_id)+1 is computed inside the same transaction as the
		// insert so concurrent adds cannot claim the same batch.
		AddFood(ctx context.Context, food *entities.Food) error
		GetFoods(ctx context.Context) ([]*entities.Food, error)
		GetFoodByID(ctx context.Context, id uint) (*entities.Food, error)
		GetFoodsByLocation(ctx context.Context, locationID uint) ([]*entities.Food, error)
		GetFoodsByBatch(ctx context.Context, batchID uint) ([]*entities.Food, error)
		CountBatches(ctx context.Context) (int64, error)
		DeleteFood(ctx context.Context, id uint) error

		// TransferFood moves the food from sourceID to destinationID and
		// appends the matching history row. Both writes commit or neither
		// does. Returns gorm.ErrRecordNotFound if the food no longer sits
		// at sourceID by the time the transaction runs.
		TransferFood(ctx context.Context, foodID, sourceID, destinationID uint) (*entities.History, error)
	}

	foodRepository struct {
		db *gorm.DB
	}
)

func NewFoodRepository(db *gorm.DB) FoodRepository {
	return &foodRepository{db: db}
}

func (r *foodRepository) AddFood(ctx context.Context, food *entities.Food) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if food.BatchID == 0 {
			var next uint
			if err := tx.Model(&entities.Food{}).
				Select("COALESCE(MAX(batch_id), 0) + 1").
				Scan(&next).Error; err != nil {
				return err
			}
			food.BatchID = next
		}
		return tx.Create(food).Error
	})
}

func (r *foodRepository) GetFoods(ctx context.Context) ([]*entities.Food, error) {
	var foods []*entities.Food
	if err := r.db.WithContext(ctx).Order("id asc").Find(&foods).Error; err != nil {
		return nil, err
	}
	return foods, nil
}

func (r *foodRepository) GetFoodByID(ctx context.Context, id uint) (*entities.Food, error) {
	var food entities.Food
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&food).Error; err != nil {
		return nil, err
	}
	return &food, nil
}

func (r *foodRepository) GetFoodsByLocation(ctx context.Context, locationID uint) ([]*entities.Food, error) {
	var foods []*entities.Food
	if err := r.db.WithContext(ctx).
		Where("location_id = ?", locationID).
		Order("id asc").
		Find(&foods).Error; err != nil {
		return nil, err
	}
	return foods, nil
}

func (r *foodRepository) GetFoodsByBatch(ctx context.Context, batchID uint) ([]*entities.Food, error) {
	var foods []*entities.Food
	if err := r.db.WithContext(ctx).
		Where("batch_id = ?", batchID).
		Order("id asc").
		Find(&foods).Error; err != nil {
		return nil, err
	}
	return foods, nil
}

func (r *foodRepository) CountBatches(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.Food{}).
		Distinct("batch_id").
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *foodRepository) DeleteFood(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Food{}).Error
}

func (r *foodRepository) TransferFood(ctx context.Context, foodID, sourceID, destinationID uint) (*entities.History, error) {
	record := &entities.History{
		Date:          time.Now().Truncate(time.Second),
		FoodID:        foodID,
		SourceID:      sourceID,
		DestinationID: destinationID,
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&entities.Food{}).
			Where("id = ? AND location_id = ?", foodID, sourceID).
			Update("location_id", destinationID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Create(record).Error
	})
	if err != nil {
		return nil, err
	}
	return record, nil
}
