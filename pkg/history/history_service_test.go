package history

import (
	"context"
	"testing"

	"github.com/NotFish232/Conrad-2023/domain"
	"github.com/NotFish232/Conrad-2023/entities"
	"github.com/NotFish232/Conrad-2023/pkg/food"
	"github.com/NotFish232/Conrad-2023/pkg/location"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fixture struct {
	db          *gorm.DB
	historySvc  HistoryService
	foodSvc     food.FoodService
	locationSvc location.LocationService
}

func setup(t *testing.T) fixture {
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

	locationRepo := location.NewLocationRepository(db)
	foodRepo := food.NewFoodRepository(db)
	historyRepo := NewHistoryRepository(db)

	return fixture{
		db:          db,
		historySvc:  NewHistoryService(historyRepo, foodRepo, locationRepo),
		foodSvc:     food.NewFoodService(foodRepo, locationRepo),
		locationSvc: location.NewLocationService(locationRepo),
	}
}

func (f fixture) addLocation(t *testing.T, address string) uint {
	t.Helper()

	res, err := f.locationSvc.AddLocation(context.Background(), domain.AddLocationRequest{
		Address: address, Latitude: 1, Longitude: 2,
	})
	require.NoError(t, err)
	return res.ID
}

func TestProvenanceRoundTrip(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	a := f.addLocation(t, "location A")
	b := f.addLocation(t, "location B")
	c := f.addLocation(t, "location C")

	added, err := f.foodSvc.AddFood(ctx, domain.AddFoodRequest{Description: "apples", Location: a})
	require.NoError(t, err)

	_, err = f.foodSvc.TransferFood(ctx, added.ID, domain.TransferFoodRequest{Location: b})
	require.NoError(t, err)
	_, err = f.foodSvc.TransferFood(ctx, added.ID, domain.TransferFoodRequest{Location: c})
	require.NoError(t, err)

	res, err := f.historySvc.GetHistoryOfFood(ctx, added.ID)
	require.NoError(t, err)
	require.Equal(t, 2, res.Count)

	rows := res.History.([]domain.FoodHistoryResponse)
	assert.Equal(t, a, rows[0].Source)
	assert.Equal(t, b, rows[0].Destination)
	assert.Equal(t, b, rows[1].Source)
	assert.Equal(t, c, rows[1].Destination)
}

func TestHistoryOfLocationTypes(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	a := f.addLocation(t, "location A")
	b := f.addLocation(t, "location B")
	c := f.addLocation(t, "location C")

	added, err := f.foodSvc.AddFood(ctx, domain.AddFoodRequest{Description: "apples", Location: a})
	require.NoError(t, err)

	_, err = f.foodSvc.TransferFood(ctx, added.ID, domain.TransferFoodRequest{Location: b})
	require.NoError(t, err)
	_, err = f.foodSvc.TransferFood(ctx, added.ID, domain.TransferFoodRequest{Location: c})
	require.NoError(t, err)

	res, err := f.historySvc.GetHistoryOfLocation(ctx, b)
	require.NoError(t, err)
	require.Equal(t, 2, res.Count)

	rows := res.History.([]domain.LocationHistoryResponse)
	assert.Equal(t, domain.HistoryTypeArrived, rows[0].Type)
	assert.Equal(t, domain.HistoryTypeDeparted, rows[1].Type)
}

func TestHistoryOfFreshFoodIsEmpty(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	a := f.addLocation(t, "location A")
	added, err := f.foodSvc.AddFood(ctx, domain.AddFoodRequest{Description: "apples", Location: a})
	require.NoError(t, err)

	res, err := f.historySvc.GetHistoryOfFood(ctx, added.ID)
	require.NoError(t, err)
	assert.Zero(t, res.Count)

	// the fresh food still shows at its creation location
	atLoc, err := f.foodSvc.GetFoodsAtLocation(ctx, a)
	require.NoError(t, err)
	assert.Equal(t, 1, atLoc.Count)
}

func TestHistoryExistenceChecks(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	_, err := f.historySvc.GetHistoryOfFood(ctx, 42)
	assert.ErrorIs(t, err, domain.ErrFoodNotFound)

	_, err = f.historySvc.GetHistoryOfLocation(ctx, 42)
	assert.ErrorIs(t, err, domain.ErrLocationNotFound)
}

func TestGetHistoryLedger(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	a := f.addLocation(t, "location A")
	b := f.addLocation(t, "location B")

	added, err := f.foodSvc.AddFood(ctx, domain.AddFoodRequest{Description: "apples", Location: a})
	require.NoError(t, err)
	_, err = f.foodSvc.TransferFood(ctx, added.ID, domain.TransferFoodRequest{Location: b})
	require.NoError(t, err)

	res, err := f.historySvc.GetHistory(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, res.Count)

	rows := res.History.([]domain.HistoryResponse)
	assert.Equal(t, added.ID, rows[0].Food)
	assert.Equal(t, a, rows[0].Source)
	assert.Equal(t, b, rows[0].Destination)
}
