package history

import (
	"context"
	"errors"

	"github.com/NotFish232/Conrad-2023/domain"
	"github.com/NotFish232/Conrad-2023/pkg/food"
	"github.com/NotFish232/Conrad-2023/pkg/location"
	"gorm.io/gorm"
)

type (
	HistoryService interface {
		GetHistory(ctx context.Context) (domain.HistoriesResponse, error)
		GetHistoryOfFood(ctx context.Context, foodID uint) (domain.HistoriesResponse, error)
		GetHistoryOfLocation(ctx context.Context, locationID uint) (domain.HistoriesResponse, error)
	}

	historyService struct {
		historyRepository  HistoryRepository
		foodRepository     food.FoodRepository
		locationRepository location.LocationRepository
	}
)

func NewHistoryService(
	historyRepository HistoryRepository,
	foodRepository food.FoodRepository,
	locationRepository location.LocationRepository,
) HistoryService {
	return &historyService{
		historyRepository:  historyRepository,
		foodRepository:     foodRepository,
		locationRepository: locationRepository,
	}
}

func (s *historyService) GetHistory(ctx context.Context) (domain.HistoriesResponse, error) {
	records, err := s.historyRepository.GetHistory(ctx)
	if err != nil {
		return domain.HistoriesResponse{}, err
	}

	items := make([]domain.HistoryResponse, 0, len(records))
	for _, h := range records {
		items = append(items, domain.HistoryResponse{
			Food:        h.FoodID,
			Source:      h.SourceID,
			Destination: h.DestinationID,
			ID:          h.ID,
			Date:        h.Date.Format(domain.DateTimeFormat),
		})
	}
	return domain.HistoriesResponse{History: items, Count: len(items)}, nil
}

func (s *historyService) GetHistoryOfFood(ctx context.Context, foodID uint) (domain.HistoriesResponse, error) {
	if _, err := s.foodRepository.GetFoodByID(ctx, foodID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.HistoriesResponse{}, domain.ErrFoodNotFound
		}
		return domain.HistoriesResponse{}, err
	}

	records, err := s.historyRepository.GetHistoryByFood(ctx, foodID)
	if err != nil {
		return domain.HistoriesResponse{}, err
	}

	items := make([]domain.FoodHistoryResponse, 0, len(records))
	for _, h := range records {
		items = append(items, domain.FoodHistoryResponse{
			Source:      h.SourceID,
			Destination: h.DestinationID,
			ID:          h.ID,
			Date:        h.Date.Format(domain.DateTimeFormat),
		})
	}
	return domain.HistoriesResponse{History: items, Count: len(items)}, nil
}

func (s *historyService) GetHistoryOfLocation(ctx context.Context, locationID uint) (domain.HistoriesResponse, error) {
	if _, err := s.locationRepository.GetLocationByID(ctx, locationID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.HistoriesResponse{}, domain.ErrLocationNotFound
		}
		return domain.HistoriesResponse{}, err
	}

	records, err := s.historyRepository.GetHistoryByLocation(ctx, locationID)
	if err != nil {
		return domain.HistoriesResponse{}, err
	}

	items := make([]domain.LocationHistoryResponse, 0, len(records))
	for _, h := range records {
		kind := domain.HistoryTypeArrived
		if h.SourceID == locationID {
			kind = domain.HistoryTypeDeparted
		}
		items = append(items, domain.LocationHistoryResponse{
			Food: h.FoodID,
			ID:   h.ID,
			Date: h.Date.Format(domain.DateTimeFormat),
			Type: kind,
		})
	}
	return domain.HistoriesResponse{History: items, Count: len(items)}, nil
}
