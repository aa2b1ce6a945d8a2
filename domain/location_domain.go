package domain

import "errors"

var (
	MessageSuccessAddLocation    = "successfully added location to database"
	MessageSuccessGetLocations   = "successfully retrieved locations"
	MessageSuccessGetLocation    = "successfully retrieved location"
	MessageSuccessDeleteLocation = "successfully deleted location"

	MessageFailedAddLocation    = "failed to add location to database"
	MessageFailedGetLocation    = "failed to retrieve location"
	MessageFailedDeleteLocation = "failed to delete location"

	ErrLocationNotFound = errors.New("location not found")
	ErrAddressTaken     = errors.New("supplied address is already in use")
)

type (
	AddLocationRequest struct {
		Address   string  `query:"address" validate:"required"`
		Latitude  float64 `query:"latitude" validate:"required"`
		Longitude float64 `query:"longitude" validate:"required"`
	}

	LocationResponse struct {
		Address   string  `json:"address"`
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
		ID        uint    `json:"id"`
	}

	LocationDetailResponse struct {
		Address   string  `json:"address"`
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
	}

	LocationsResponse struct {
		Locations []LocationResponse `json:"locations"`
		Count     int                `json:"count"`
	}
)
