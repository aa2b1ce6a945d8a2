package location

import (
	"context"
	"errors"

	"github.com/NotFish232/Conrad-2023/domain"
	"github.com/NotFish232/Conrad-2023/entities"
	"gorm.io/gorm"
)

type (
	LocationService interface {
		AddLocation(ctx context.Context, req domain.AddLocationRequest) (domain.LocationResponse, error)
		GetLocations(ctx context.Context) (domain.LocationsResponse, error)
		GetLocation(ctx context.Context, id uint) (domain.LocationDetailResponse, error)
		DeleteLocation(ctx context.Context, id uint) error
	}

	locationService struct {
		locationRepository LocationRepository
	}
)

func NewLocationService(locationRepository LocationRepository) LocationService {
	return &locationService{locationRepository: locationRepository}
}

func (s *locationService) AddLocation(ctx context.Context, req domain.AddLocationRequest) (domain.LocationResponse, error) {
	count, err := s.locationRepository.CountByAddress(ctx, req.Address)
	if err != nil {
		return domain.LocationResponse{}, err
	}
	if count > 0 {
		return domain.LocationResponse{}, domain.ErrAddressTaken
	}

	location := &entities.Location{
		Address:   req.Address,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	}
	if err := s.locationRepository.AddLocation(ctx, location); err != nil {
		return domain.LocationResponse{}, err
	}

	return domain.LocationResponse{
		Address:   location.Address,
		Latitude:  location.Latitude,
		Longitude: location.Longitude,
		ID:        location.ID,
	}, nil
}

func (s *locationService) GetLocations(ctx context.Context) (domain.LocationsResponse, error) {
	locations, err := s.locationRepository.GetLocations(ctx)
	if err != nil {
		return domain.LocationsResponse{}, err
	}

	res := domain.LocationsResponse{
		Locations: make([]domain.LocationResponse, 0, len(locations)),
	}
	for _, l := range locations {
		res.Locations = append(res.Locations, domain.LocationResponse{
			Address:   l.Address,
			Latitude:  l.Latitude,
			Longitude: l.Longitude,
			ID:        l.ID,
		})
	}
	res.Count = len(res.Locations)
	return res, nil
}

func (s *locationService) GetLocation(ctx context.Context, id uint) (domain.LocationDetailResponse, error) {
	location, err := s.locationRepository.GetLocationByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.LocationDetailResponse{}, domain.ErrLocationNotFound
		}
		return domain.LocationDetailResponse{}, err
	}

	return domain.LocationDetailResponse{
		Address:   location.Address,
		Latitude:  location.Latitude,
		Longitude: location.Longitude,
	}, nil
}

func (s *locationService) DeleteLocation(ctx context.Context, id uint) error {
	if _, err := s.locationRepository.GetLocationByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrLocationNotFound
		}
		return err
	}
	// No reference check against foods: deleting a location that foods
	// still point at is allowed, matching the stored data's history.
	return s.locationRepository.DeleteLocation(ctx, id)
}
