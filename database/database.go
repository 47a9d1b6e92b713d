package database

import (
	"log"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	config "github.com/harutok/bookreview/configs"
	"github.com/harutok/bookreview/models"
)

var DB *gorm.DB

// ConnectDB opens the database. DB_DRIVER=postgres uses DATABASE_URL;
// anything else falls back to a local sqlite file at DB_PATH.
func ConnectDB() {
	var dialector gorm.Dialector

	if config.Config("DB_DRIVER") == "postgres" {
		dsn := config.Config("DATABASE_URL")
		if dsn == "" {
			log.Fatal("DATABASE_URL is required when DB_DRIVER=postgres")
		}
		dialector = postgres.Open(dsn)
	} else {
		path := config.Config("DB_PATH")
		if path == "" {
			path = "bookreview.db"
		}
		dialector = sqlite.Open(path)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	DB = db
	log.Println("Database connected")
}

func Migrate() {
	err := DB.AutoMigrate(
		&models.User{},
		&models.Book{},
		&models.Review{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration successful")
}
