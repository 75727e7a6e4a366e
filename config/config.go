package config

import (
	"log"
	"os"

	"github.com/cskyle2026/Diabetes/models"

	"github.com/joho/godotenv"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

// InitDB opens the single-device local store. A sqlite file is the whole
// persistence layer: accounts plus the two scratchpad slots per user.
func InitDB() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file, using process environment")
	}

	path := os.Getenv("LOCAL_DB_PATH")
	if path == "" {
		path = "glucocheck.db"
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to open local store: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.KVEntry{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}

	DB = db
}
