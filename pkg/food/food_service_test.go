package food

import (
	"context"
	"testing"
	"time"

	"github.com/NotFish232/Conrad-2023/domain"
	"github.com/NotFish232/Conrad-2023/entities"
	"github.com/NotFish232/Conrad-2023/pkg/location"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&entities.User{},
		&entities.Location{},
		&entities.Food{},
		&entities.History{},
	))
	return db
}

func setupService(t *testing.T) (FoodService, *gorm.DB) {
	t.Helper()

	db := setupTestDB(t)
	service := NewFoodService(NewFoodRepository(db), location.NewLocationRepository(db))
	return service, db
}

func addLocation(t *testing.T, db *gorm.DB, address string) uint {
	t.Helper()

	l := &entities.Location{Address: address, Latitude: 1, Longitude: 2}
	require.NoError(t, db.Create(l).Error)
	return l.ID
}

func TestAddFoodUnknownLocation(t *testing.T) {
	service, db := setupService(t)

	_, err := service.AddFood(context.Background(), domain.AddFoodRequest{
		Description: "apples",
		Location:    7,
	})
	assert.ErrorIs(t, err, domain.ErrLocationNotFound)

	// the failed add must not leave a row behind
	var count int64
	require.NoError(t, db.Model(&entities.Food{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestAddFoodExplicitBatch(t *testing.T) {
	service, db := setupService(t)
	ctx := context.Background()
	loc := addLocation(t, db, "1 Main St")

	res, err := service.AddFood(ctx, domain.AddFoodRequest{
		Description: "apples", Location: loc, Batch: 17,
	})
	require.NoError(t, err)
	assert.EqualValues(t, 17, res.Batch)
	assert.Equal(t, loc, res.Location)
}

func TestBatchAutoIncrement(t *testing.T) {
	service, db := setupService(t)
	ctx := context.Background()
	loc := addLocation(t, db, "1 Main St")

	// first auto-assigned batch on an empty table is 1
	res, err := service.AddFood(ctx, domain.AddFoodRequest{
		Description: "apples", Location: loc,
	})
	require.NoError(t, err)
	assert.EqualValues(t, 1, res.Batch)

	// given batches {1, 1, 3}, the next auto batch is 4
	_, err = service.AddFood(ctx, domain.AddFoodRequest{
		Description: "pears", Location: loc, Batch: 1,
	})
	require.NoError(t, err)
	_, err = service.AddFood(ctx, domain.AddFoodRequest{
		Description: "plums", Location: loc, Batch: 3,
	})
	require.NoError(t, err)

	res, err = service.AddFood(ctx, domain.AddFoodRequest{
		Description: "grapes", Location: loc,
	})
	require.NoError(t, err)
	assert.EqualValues(t, 4, res.Batch)
}

func TestTransferFood(t *testing.T) {
	service, db := setupService(t)
	ctx := context.Background()
	src := addLocation(t, db, "1 Main St")
	dst := addLocation(t, db, "2 Side St")

	added, err := service.AddFood(ctx, domain.AddFoodRequest{
		Description: "apples", Location: src,
	})
	require.NoError(t, err)

	res, err := service.TransferFood(ctx, added.ID, domain.TransferFoodRequest{Location: dst})
	require.NoError(t, err)
	assert.Equal(t, added.ID, res.Food)
	assert.Equal(t, src, res.Source)
	assert.Equal(t, dst, res.Destination)

	_, err = time.Parse(domain.DateTimeFormat, res.Date)
	assert.NoError(t, err)

	// food now sits at the destination
	var food entities.Food
	require.NoError(t, db.First(&food, added.ID).Error)
	assert.Equal(t, dst, food.LocationID)

	// exactly one matching history row exists
	var records []entities.History
	require.NoError(t, db.Find(&records).Error)
	require.Len(t, records, 1)
	assert.Equal(t, added.ID, records[0].FoodID)
	assert.Equal(t, src, records[0].SourceID)
	assert.Equal(t, dst, records[0].DestinationID)
}

func TestTransferFoodSameLocation(t *testing.T) {
	service, db := setupService(t)
	ctx := context.Background()
	src := addLocation(t, db, "1 Main St")

	added, err := service.AddFood(ctx, domain.AddFoodRequest{
		Description: "apples", Location: src,
	})
	require.NoError(t, err)

	_, err = service.TransferFood(ctx, added.ID, domain.TransferFoodRequest{Location: src})
	assert.ErrorIs(t, err, domain.ErrSameLocation)

	// the rejected transfer produced no history row
	var count int64
	require.NoError(t, db.Model(&entities.History{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestTransferFoodUnknownFood(t *testing.T) {
	service, db := setupService(t)
	dst := addLocation(t, db, "2 Side St")

	_, err := service.TransferFood(context.Background(), 42, domain.TransferFoodRequest{Location: dst})
	assert.ErrorIs(t, err, domain.ErrFoodNotFound)
}

func TestTransferFoodUnknownLocation(t *testing.T) {
	service, db := setupService(t)
	ctx := context.Background()
	src := addLocation(t, db, "1 Main St")

	added, err := service.AddFood(ctx, domain.AddFoodRequest{
		Description: "apples", Location: src,
	})
	require.NoError(t, err)

	_, err = service.TransferFood(ctx, added.ID, domain.TransferFoodRequest{Location: 42})
	assert.ErrorIs(t, err, domain.ErrLocationNotFound)
}

func TestGetFoodsAtLocation(t *testing.T) {
	service, db := setupService(t)
	ctx := context.Background()
	loc := addLocation(t, db, "1 Main St")
	other := addLocation(t, db, "2 Side St")

	_, err := service.AddFood(ctx, domain.AddFoodRequest{Description: "apples", Location: loc})
	require.NoError(t, err)
	_, err = service.AddFood(ctx, domain.AddFoodRequest{Description: "pears", Location: other})
	require.NoError(t, err)

	res, err := service.GetFoodsAtLocation(ctx, loc)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Count)

	_, err = service.GetFoodsAtLocation(ctx, 99)
	assert.ErrorIs(t, err, domain.ErrLocationNotFound)
}

func TestGetFoodsFromBatchUnknownBatchIsEmpty(t *testing.T) {
	service, _ := setupService(t)

	// unknown batch ids are empty batches, not errors
	res, err := service.GetFoodsFromBatch(context.Background(), 99)
	require.NoError(t, err)
	assert.Zero(t, res.Count)
}

func TestGetNumberOfBatches(t *testing.T) {
	service, db := setupService(t)
	ctx := context.Background()
	loc := addLocation(t, db, "1 Main St")

	for _, batch := range []uint{1, 1, 3} {
		_, err := service.AddFood(ctx, domain.AddFoodRequest{
			Description: "apples", Location: loc, Batch: batch,
		})
		require.NoError(t, err)
	}

	res, err := service.GetNumberOfBatches(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, res.Count)
}

func TestDeleteFoodKeepsHistory(t *testing.T) {
	service, db := setupService(t)
	ctx := context.Background()
	src := addLocation(t, db, "1 Main St")
	dst := addLocation(t, db, "2 Side St")

	added, err := service.AddFood(ctx, domain.AddFoodRequest{Description: "apples", Location: src})
	require.NoError(t, err)
	_, err = service.TransferFood(ctx, added.ID, domain.TransferFoodRequest{Location: dst})
	require.NoError(t, err)

	require.NoError(t, service.DeleteFood(ctx, added.ID))
	assert.ErrorIs(t, service.DeleteFood(ctx, added.ID), domain.ErrFoodNotFound)

	var count int64
	require.NoError(t, db.Model(&entities.History{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}
