package handlers

import (
	"errors"

	"github.com/NotFish232/Conrad-2023/domain"
	"github.com/NotFish232/Conrad-2023/internal/api/presenters"
	"github.com/NotFish232/Conrad-2023/pkg/location"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	LocationHandler interface {
		AddLocation(c *fiber.Ctx) error
		GetLocations(c *fiber.Ctx) error
		GetLocation(c *fiber.Ctx) error
		DeleteLocation(c *fiber.Ctx) error
	}

	locationHandler struct {
		locationService location.LocationService
		validator       *validator.Validate
	}
)

func NewLocationHandler(locationService location.LocationService, validator *validator.Validate) LocationHandler {
	return &locationHandler{
		locationService: locationService,
		validator:       validator,
	}
}

func (h *locationHandler) AddLocation(c *fiber.Ctx) error {
	req := new(domain.AddLocationRequest)

	if err := c.QueryParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedQueryRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddLocation, err)
	}

	res, err := h.locationService.AddLocation(c.Context(), *req)
	if err != nil {
		if errors.Is(err, domain.ErrAddressTaken) {
			return presenters.ErrorResponse(c, fiber.StatusConflict, domain.MessageFailedAddLocation, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddLocation, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddLocation)
}

func (h *locationHandler) GetLocations(c *fiber.Ctx) error {
	res, err := h.locationService.GetLocations(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetLocation, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetLocations)
}

func (h *locationHandler) GetLocation(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetLocation, err)
	}

	res, err := h.locationService.GetLocation(c.Context(), uint(id))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetLocation, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetLocation)
}

func (h *locationHandler) DeleteLocation(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteLocation, err)
	}

	if err := h.locationService.DeleteLocation(c.Context(), uint(id)); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteLocation, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteLocation)
}
