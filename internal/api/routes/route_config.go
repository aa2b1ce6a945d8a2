package routes

import (
	"github.com/NotFish232/Conrad-2023/internal/api/handlers"
	"github.com/NotFish232/Conrad-2023/internal/middleware"
	"github.com/NotFish232/Conrad-2023/pkg/user"
	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App             *fiber.App
	UserHandler     handlers.UserHandler
	LocationHandler handlers.LocationHandler
	FoodHandler     handlers.FoodHandler
	HistoryHandler  handlers.HistoryHandler
	Middleware      middleware.Middleware
	UserService     user.UserService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Users()
	c.Locations()
	c.Foods()
	c.History()
}

func (c *Config) Users() {
	auth := c.Middleware.AuthMiddleware(c.UserService)
	// registration is the one route outside the credential gate
	c.App.Post("/add_user", c.UserHandler.AddUser)
	c.App.Get("/get_users", auth, c.UserHandler.GetUsers)
	c.App.Get("/get_user/:id", auth, c.UserHandler.GetUser)
	c.App.Delete("/delete_user/:id", auth, c.UserHandler.DeleteUser)
}

func (c *Config) Locations() {
	auth := c.Middleware.AuthMiddleware(c.UserService)
	c.App.Post("/add_location", auth, c.LocationHandler.AddLocation)
	c.App.Get("/get_locations", auth, c.LocationHandler.GetLocations)
	c.App.Get("/get_location/:id", auth, c.LocationHandler.GetLocation)
	c.App.Delete("/delete_location/:id", auth, c.LocationHandler.DeleteLocation)
}

func (c *Config) Foods() {
	auth := c.Middleware.AuthMiddleware(c.UserService)
	c.App.Post("/add_food", auth, c.FoodHandler.AddFood)
	c.App.Get("/get_foods", auth, c.FoodHandler.GetFoods)
	c.App.Get("/get_food/:id", auth, c.FoodHandler.GetFood)
	c.App.Delete("/delete_food/:id", auth, c.FoodHandler.DeleteFood)
	c.App.Get("/get_foods_at_location/:id", auth, c.FoodHandler.GetFoodsAtLocation)
	c.App.Get("/get_foods_from_batch/:id", auth, c.FoodHandler.GetFoodsFromBatch)
	c.App.Get("/get_number_of_batches", auth, c.FoodHandler.GetNumberOfBatches)
	c.App.Post("/update_food_location/:id", auth, c.FoodHandler.UpdateFoodLocation)
}

func (c *Config) History() {
	auth := c.Middleware.AuthMiddleware(c.UserService)
	c.App.Get("/get_history", auth, c.HistoryHandler.GetHistory)
	c.App.Get("/get_history_of_food/:id", auth, c.HistoryHandler.GetHistoryOfFood)
	c.App.Get("/get_history_of_location/:id", auth, c.HistoryHandler.GetHistoryOfLocation)
}
