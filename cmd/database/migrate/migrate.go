package migration

import (
	"fmt"
	"log"

	"github.com/NotFish232/Conrad-2023/entities"
	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Fatalf("Error migrating user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Location{}); err != nil {
		log.Fatalf("Error migrating location database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Food{}); err != nil {
		log.Fatalf("Error migrating food database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.History{}); err != nil {
		log.Fatalf("Error migrating history database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
