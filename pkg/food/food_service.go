package food

import (
	"context"
	"errors"

	"github.com/NotFish232/Conrad-2023/domain"
	"github.com/NotFish232/Conrad-2023/entities"
	"github.com/NotFish232/Conrad-2023/pkg/location"
	"gorm.io/gorm"
)

type (
	FoodService interface {
		AddFood(ctx context.Context, req domain.AddFoodRequest) (domain.FoodResponse, error)
		GetFoods(ctx context.Context) (domain.FoodsResponse, error)
		GetFood(ctx context.Context, id uint) (domain.FoodDetailResponse, error)
		GetFoodsAtLocation(ctx context.Context, locationID uint) (domain.FoodsResponse, error)
		GetFoodsFromBatch(ctx context.Context, batchID uint) (domain.FoodsResponse, error)
		GetNumberOfBatches(ctx context.Context) (domain.BatchCountResponse, error)
		DeleteFood(ctx context.Context, id uint) error
		TransferFood(ctx context.Context, id uint, req domain.TransferFoodRequest) (domain.TransferFoodResponse, error)
	}

	foodService struct {
		foodRepository     FoodRepository
		locationRepository location.LocationRepository
	}
)

func NewFoodService(foodRepository FoodRepository, locationRepository location.LocationRepository) FoodService {
	return &foodService{
		foodRepository:     foodRepository,
		locationRepository: locationRepository,
	}
}

func (s *foodService) AddFood(ctx context.Context, req domain.AddFoodRequest) (domain.FoodResponse, error) {
	if _, err := s.locationRepository.GetLocationByID(ctx, req.Location); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.FoodResponse{}, domain.ErrLocationNotFound
		}
		return domain.FoodResponse{}, err
	}

	food := &entities.Food{
		Description: req.Description,
		LocationID:  req.Location,
		BatchID:     req.Batch,
	}
	if err := s.foodRepository.AddFood(ctx, food); err != nil {
		return domain.FoodResponse{}, err
	}

	return domain.FoodResponse{
		Description: food.Description,
		ID:          food.ID,
		Location:    food.LocationID,
		Batch:       food.BatchID,
	}, nil
}

func (s *foodService) GetFoods(ctx context.Context) (domain.FoodsResponse, error) {
	foods, err := s.foodRepository.GetFoods(ctx)
	if err != nil {
		return domain.FoodsResponse{}, err
	}

	items := make([]domain.FoodResponse, 0, len(foods))
	for _, f := range foods {
		items = append(items, domain.FoodResponse{
			Description: f.Description,
			ID:          f.ID,
			Location:    f.LocationID,
			Batch:       f.BatchID,
		})
	}
	return domain.FoodsResponse{Foods: items, Count: len(items)}, nil
}

func (s *foodService) GetFood(ctx context.Context, id uint) (domain.FoodDetailResponse, error) {
	food, err := s.foodRepository.GetFoodByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.FoodDetailResponse{}, domain.ErrFoodNotFound
		}
		return domain.FoodDetailResponse{}, err
	}

	return domain.FoodDetailResponse{
		Description: food.Description,
		Location:    food.LocationID,
		Batch:       food.BatchID,
	}, nil
}

func (s *foodService) GetFoodsAtLocation(ctx context.Context, locationID uint) (domain.FoodsResponse, error) {
	if _, err := s.locationRepository.GetLocationByID(ctx, locationID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.FoodsResponse{}, domain.ErrLocationNotFound
		}
		return domain.FoodsResponse{}, err
	}

	foods, err := s.foodRepository.GetFoodsByLocation(ctx, locationID)
	if err != nil {
		return domain.FoodsResponse{}, err
	}

	items := make([]domain.FoodAtLocationResponse, 0, len(foods))
	for _, f := range foods {
		items = append(items, domain.FoodAtLocationResponse{
			Description: f.Description,
			ID:          f.ID,
			Batch:       f.BatchID,
		})
	}
	return domain.FoodsResponse{Foods: items, Count: len(items)}, nil
}

// GetFoodsFromBatch deliberately skips an existence check: an unknown
// batch id is an empty batch, not an error.
func (s *foodService) GetFoodsFromBatch(ctx context.Context, batchID uint) (domain.FoodsResponse, error) {
	foods, err := s.foodRepository.GetFoodsByBatch(ctx, batchID)
	if err != nil {
		return domain.FoodsResponse{}, err
	}

	items := make([]domain.FoodInBatchResponse, 0, len(foods))
	for _, f := range foods {
		items = append(items, domain.FoodInBatchResponse{
			Description: f.Description,
			ID:          f.ID,
			Location:    f.LocationID,
		})
	}
	return domain.FoodsResponse{Foods: items, Count: len(items)}, nil
}

func (s *foodService) GetNumberOfBatches(ctx context.Context) (domain.BatchCountResponse, error) {
	count, err := s.foodRepository.CountBatches(ctx)
	if err != nil {
		return domain.BatchCountResponse{}, err
	}
	return domain.BatchCountResponse{Count: count}, nil
}

func (s *foodService) DeleteFood(ctx context.Context, id uint) error {
	if _, err := s.foodRepository.GetFoodByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrFoodNotFound
		}
		return err
	}
	// History rows for this food stay in the ledger.
	return s.foodRepository.DeleteFood(ctx, id)
}

func (s *foodService) TransferFood(ctx context.Context, id uint, req domain.TransferFoodRequest) (domain.TransferFoodResponse, error) {
	food, err := s.foodRepository.GetFoodByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.TransferFoodResponse{}, domain.ErrFoodNotFound
		}
		return domain.TransferFoodResponse{}, err
	}

	if _, err := s.locationRepository.GetLocationByID(ctx, req.Location); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.TransferFoodResponse{}, domain.ErrLocationNotFound
		}
		return domain.TransferFoodResponse{}, err
	}

	if food.LocationID == req.Location {
		return domain.TransferFoodResponse{}, domain.ErrSameLocation
	}

	record, err := s.foodRepository.TransferFood(ctx, food.ID, food.LocationID, req.Location)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.TransferFoodResponse{}, domain.ErrFoodNotFound
		}
		return domain.TransferFoodResponse{}, err
	}

	return domain.TransferFoodResponse{
		ID:          record.ID,
		Food:        record.FoodID,
		Source:      record.SourceID,
		Destination: record.DestinationID,
		Date:        record.Date.Format(domain.DateTimeFormat),
	}, nil
}
