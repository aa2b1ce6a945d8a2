package user

import (
	"context"
	"testing"

	"github.com/NotFish232/Conrad-2023/domain"
	"github.com/NotFish232/Conrad-2023/entities"
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

	require.NoError(t, db.AutoMigrate(&entities.User{}))
	return db
}

func TestAddUser(t *testing.T) {
	db := setupTestDB(t)
	service := NewUserService(NewUserRepository(db))
	ctx := context.Background()

	res, err := service.AddUser(ctx, domain.AddUserRequest{
		Username: "alice",
		Password: "secret",
		Email:    "alice@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "alice", res.Username)
	assert.NotZero(t, res.ID)
}

func TestAddUserDuplicateUsername(t *testing.T) {
	db := setupTestDB(t)
	service := NewUserService(NewUserRepository(db))
	ctx := context.Background()

	_, err := service.AddUser(ctx, domain.AddUserRequest{
		Username: "alice", Password: "secret", Email: "alice@example.com",
	})
	require.NoError(t, err)

	_, err = service.AddUser(ctx, domain.AddUserRequest{
		Username: "alice", Password: "other", Email: "alice2@example.com",
	})
	assert.ErrorIs(t, err, domain.ErrCredentialsTaken)
}

func TestAddUserDuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	service := NewUserService(NewUserRepository(db))
	ctx := context.Background()

	_, err := service.AddUser(ctx, domain.AddUserRequest{
		Username: "alice", Password: "secret", Email: "alice@example.com",
	})
	require.NoError(t, err)

	_, err = service.AddUser(ctx, domain.AddUserRequest{
		Username: "bob", Password: "other", Email: "alice@example.com",
	})
	assert.ErrorIs(t, err, domain.ErrCredentialsTaken)

	var count int64
	require.NoError(t, db.Model(&entities.User{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestGetUserNotFound(t *testing.T) {
	db := setupTestDB(t)
	service := NewUserService(NewUserRepository(db))

	_, err := service.GetUser(context.Background(), 42)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestDeleteUser(t *testing.T) {
	db := setupTestDB(t)
	service := NewUserService(NewUserRepository(db))
	ctx := context.Background()

	res, err := service.AddUser(ctx, domain.AddUserRequest{
		Username: "alice", Password: "secret", Email: "alice@example.com",
	})
	require.NoError(t, err)

	require.NoError(t, service.DeleteUser(ctx, res.ID))
	assert.ErrorIs(t, service.DeleteUser(ctx, res.ID), domain.ErrUserNotFound)
}

func TestAuthorize(t *testing.T) {
	db := setupTestDB(t)
	service := NewUserService(NewUserRepository(db))
	ctx := context.Background()

	_, err := service.AddUser(ctx, domain.AddUserRequest{
		Username: "alice", Password: "secret", Email: "alice@example.com",
	})
	require.NoError(t, err)

	assert.NoError(t, service.Authorize(ctx, "alice", "secret"))
	assert.ErrorIs(t, service.Authorize(ctx, "alice", "wrong"), domain.ErrInvalidCredentials)
	assert.ErrorIs(t, service.Authorize(ctx, "nobody", "secret"), domain.ErrInvalidCredentials)
	assert.ErrorIs(t, service.Authorize(ctx, "", ""), domain.ErrMissingCredentials)
	assert.ErrorIs(t, service.Authorize(ctx, "alice", ""), domain.ErrMissingCredentials)
}
