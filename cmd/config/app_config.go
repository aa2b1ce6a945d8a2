package config

import (
	"os"

	"github.com/NotFish232/Conrad-2023/internal/api/handlers"
	"github.com/NotFish232/Conrad-2023/internal/api/routes"
	"github.com/NotFish232/Conrad-2023/internal/middleware"
	"github.com/NotFish232/Conrad-2023/internal/utils"
	"github.com/NotFish232/Conrad-2023/pkg/food"
	"github.com/NotFish232/Conrad-2023/pkg/history"
	"github.com/NotFish232/Conrad-2023/pkg/location"
	"github.com/NotFish232/Conrad-2023/pkg/user"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Output:     file,
	}))

	// Repository
	userRepository := user.NewUserRepository(db)
	locationRepository := location.NewLocationRepository(db)
	foodRepository := food.NewFoodRepository(db)
	historyRepository := history.NewHistoryRepository(db)

	// Service
	userService := user.NewUserService(userRepository)
	locationService := location.NewLocationService(locationRepository)
	foodService := food.NewFoodService(foodRepository, locationRepository)
	historyService := history.NewHistoryService(historyRepository, foodRepository, locationRepository)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	locationHandler := handlers.NewLocationHandler(locationService, validator)
	foodHandler := handlers.NewFoodHandler(foodService, validator)
	historyHandler := handlers.NewHistoryHandler(historyService)

	// routes
	routesConfig := routes.Config{
		App:             app,
		UserHandler:     userHandler,
		LocationHandler: locationHandler,
		FoodHandler:     foodHandler,
		HistoryHandler:  historyHandler,
		Middleware:      middlewares,
		UserService:     userService,
	}
	routesConfig.Setup()
	return app, nil
}
