package database

import (
	"fmt"
	"log"

	config "github.com/beautyexpress/salon_backend/configs"
	"github.com/beautyexpress/salon_backend/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB() {
	var err error
	dsn := config.Config("DATABASE_URL")

	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		PrepareStmt:                              false,
		SkipDefaultTransaction:                   true,
		DisableForeignKeyConstraintWhenMigrating: true,
		DisableNestedTransaction:                 true,
	})
	if err != nil {
		log.Fatalf("🔥 Failed to connect to database: %v", err)
	}

	fmt.Println("✅ Database connected successfully")
}

func Migrate() {
	err := DB.AutoMigrate(
		&models.User{},
		&models.Client{},
		&models.Stylist{},
		&models.Booking{},
		&models.Conversation{},
		&models.Message{},
		&models.Notification{},
		&models.Payment{},
		&models.Setting{},
	)
	if err != nil {
		log.Fatalf("🔥 Failed to migrate database: %v", err)
	}
	fmt.Println("✅ Database migration successful")
}

// GetFlag reads a settings flag; missing keys read as "".
func GetFlag(key string) string {
	var setting models.Setting
	if err := DB.First(&setting, "key = ?", key).Error; err != nil {
		return ""
	}
	return setting.Value
}

// SetFlag upserts a settings flag.
func SetFlag(key, value string) error {
	setting := models.Setting{Key: key, Value: value}
	return DB.Save(&setting).Error
}

// ClearFlag removes a settings flag if present.
func ClearFlag(key string) error {
	return DB.Delete(&models.Setting{}, "key = ?", key).Error
}
