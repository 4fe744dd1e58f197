package database

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"formsubmit/internal/models"
)

func Connect(dsn string) *gorm.DB {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	log.Println("Database connection established")

	log.Println("Running Migrations...")
	if err := db.AutoMigrate(&models.Submission{}); err != nil {
		log.Fatal("Migration failed:", err)
	}
	return db
}
