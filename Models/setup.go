package Models

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

// Timestamps and dates are persisted as formatted strings so they
// round-trip exactly and compare lexicographically in SQL.
const (
	TimeLayout = "2006-01-02 15:04:05"
	DateLayout = "2006-01-02"
)

func ConnectDataBase() {

	err := godotenv.Load(".env")

	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	DbPath := os.Getenv("DB_PATH")
	if DbPath == "" {
		DbPath = "medical_app.db"
	}

	DB, err = gorm.Open(sqlite.Open(DbPath), &gorm.Config{})

	if err != nil {
		fmt.Println("Cannot connect to database ")
		log.Fatal("connection error:", err)
	} else {
		fmt.Println("We are connected to the database ")
	}
	// First migrate models with no dependencies
	DB.AutoMigrate(&User{})
	DB.AutoMigrate(&DeviceToken{})

	// Then migrate models that reference users
	DB.AutoMigrate(&Consultation{})
	DB.AutoMigrate(&MedicineReminder{})
	DB.AutoMigrate(&Notification{})
}

// ConnectTestDataBase points the package at an already opened database
// and migrates it. Package tests use this with in-memory SQLite.
func ConnectTestDataBase(db *gorm.DB) {
	DB = db
	DB.AutoMigrate(&User{})
	DB.AutoMigrate(&DeviceToken{})
	DB.AutoMigrate(&Consultation{})
	DB.AutoMigrate(&MedicineReminder{})
	DB.AutoMigrate(&Notification{})
}
