package location

import (
	"context"

	"github.com/NotFish232/Conrad-2023/entities"
	"gorm.io/gorm"
)

type (
	LocationRepository interface {
		AddLocation(ctx context.Context, location *entities.Location) error
		GetLocations(ctx context.Context) ([]*entities.Location, error)
		GetLocationByID(ctx context.Context, id uint) (*entities.Location, error)
		CountByAddress(ctx context.Context, address string) (int64, error)
		DeleteLocation(ctx context.Context, id uint) error
	}

	locationRepository struct {
		db *gorm.DB
	}
)

func NewLocationRepository(db *gorm.DB) LocationRepository {
	return &locationRepository{db: db}
}

func (r *locationRepository) AddLocation(ctx context.Context, location *entities.Location) error {
	return r.db.WithContext(ctx).Create(location).Error
}

func (r *locationRepository) GetLocations(ctx context.Context) ([]*entities.Location, error) {
	var locations []*entities.Location
	if err := r.db.WithContext(ctx).Order("id asc").Find(&locations).Error; err != nil {
		return nil, err
	}
	return locations, nil
}

func (r *locationRepository) GetLocationByID(ctx context.Context, id uint) (*entities.Location, error) {
	var location entities.Location
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&location).Error; err != nil {
		return nil, err
	}
	return &location, nil
}

func (r *locationRepository) CountByAddress(ctx context.Context, address string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.Location{}).
		Where("address = ?", address).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *locationRepository) DeleteLocation(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Location{}).Error
}
