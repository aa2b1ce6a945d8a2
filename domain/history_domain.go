package domain

var (
	MessageSuccessGetHistory = "successfully retrieved history"
	MessageFailedGetHistory  = "failed to retrieve history"

	HistoryTypeArrived  = "arrived"
	HistoryTypeDeparted = "departed"
)

type (
	HistoryResponse struct {
		Food        uint   `json:"food"`
		Source      uint   `json:"source"`
		Destination uint   `json:"destination"`
		ID          uint   `json:"id"`
		Date        string `json:"date"`
	}

	FoodHistoryResponse struct {
		Source      uint   `json:"source"`
		Destination uint   `json:"destination"`
		ID          uint   `json:"id"`
		Date        string `json:"date"`
	}

	LocationHistoryResponse struct {
		Food uint   `json:"food"`
		ID   uint   `json:"id"`
		Date string `json:"date"`
		Type string `json:"type"`
	}

	HistoriesResponse struct {
		History interface{} `json:"history"`
		Count   int         `json:"count"`
	}
)
