package handlers

import (
	"github.com/NotFish232/Conrad-2023/domain"
	"github.com/NotFish232/Conrad-2023/internal/api/presenters"
	"github.com/NotFish232/Conrad-2023/pkg/history"
	"github.com/gofiber/fiber/v2"
)

type (
	HistoryHandler interface {
		GetHistory(c *fiber.Ctx) error
		GetHistoryOfFood(c *fiber.Ctx) error
		GetHistoryOfLocation(c *fiber.Ctx) error
	}

	historyHandler struct {
		historyService history.HistoryService
	}
)

func NewHistoryHandler(historyService history.HistoryService) HistoryHandler {
	return &historyHandler{historyService: historyService}
}

func (h *historyHandler) GetHistory(c *fiber.Ctx) error {
	res, err := h.historyService.GetHistory(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetHistory, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetHistory)
}

func (h *historyHandler) GetHistoryOfFood(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetHistory, err)
	}

	res, err := h.historyService.GetHistoryOfFood(c.Context(), uint(id))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetHistory, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetHistory)
}

func (h *historyHandler) GetHistoryOfLocation(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetHistory, err)
	}

	res, err := h.historyService.GetHistoryOfLocation(c.Context(), uint(id))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetHistory, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetHistory)
}
