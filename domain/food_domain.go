package domain

import "errors"

var (
	MessageSuccessAddFood      = "successfully added food to database"
	MessageSuccessGetFoods     = "successfully retrieved foods"
	MessageSuccessGetFood      = "successfully retrieved food"
	MessageSuccessDeleteFood   = "successfully deleted food"
	MessageSuccessTransferFood = "successfully updated food location"

	MessageFailedAddFood      = "failed to add food to database"
	MessageFailedGetFood      = "failed to retrieve food"
	MessageFailedDeleteFood   = "failed to delete food"
	MessageFailedTransferFood = "failed to update food location"

	ErrFoodNotFound = errors.New("food not found")
	ErrSameLocation = errors.New("can not update location to same location")
)

type (
	AddFoodRequest struct {
		Description string `query:"description" validate:"required"`
		Location    uint   `query:"location" validate:"required"`
		// Batch is optional; zero means auto-assign max(batch_id)+1.
		Batch uint `query:"batch" validate:"omitempty,min=1"`
	}

	TransferFoodRequest struct {
		Location uint `query:"location" validate:"required"`
	}

	FoodResponse struct {
		Description string `json:"description"`
		ID          uint   `json:"id"`
		Location    uint   `json:"location"`
		Batch       uint   `json:"batch"`
	}

	FoodDetailResponse struct {
		Description string `json:"description"`
		Location    uint   `json:"location"`
		Batch       uint   `json:"batch"`
	}

	FoodAtLocationResponse struct {
		Description string `json:"description"`
		ID          uint   `json:"id"`
		Batch       uint   `json:"batch"`
	}

	FoodInBatchResponse struct {
		Description string `json:"description"`
		ID          uint   `json:"id"`
		Location    uint   `json:"location"`
	}

	FoodsResponse struct {
		Foods interface{} `json:"foods"`
		Count int         `json:"count"`
	}

	TransferFoodResponse struct {
		ID          uint   `json:"id"`
		Food        uint   `json:"food"`
		Source      uint   `json:"source"`
		Destination uint   `json:"destination"`
		Date        string `json:"date"`
	}

	BatchCountResponse struct {
		Count int64 `json:"count"`
	}
)
