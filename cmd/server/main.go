package main

import (
	"fmt"

	"github.com/NotFish232/Conrad-2023/cmd/config"
	migration "github.com/NotFish232/Conrad-2023/cmd/database/migrate"
	"github.com/NotFish232/Conrad-2023/internal/utils"
	"github.com/gofiber/fiber/v2/log"
)

func main() {
	utils.LoadConfig()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := migration.Migrate(db); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	app, err := config.NewApp(db)
	if err != nil {
		log.Fatalf("failed to build app: %v", err)
	}

	addr := fmt.Sprintf("%s:%s", utils.GetConfig("APP_HOST"), utils.GetConfig("APP_PORT"))
	if err := app.Listen(addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
