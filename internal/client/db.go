package client

import (
	"log"

	"futurefunded/internal/model"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func InitSQLiteClient(databasePath string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(databasePath), &gorm.Config{})
	if err != nil {
		log.Fatal("failed to connect to database:", err)
	}

	if err := db.AutoMigrate(
		&model.Donation{},
	); err != nil {
		log.Fatal(err)
	}

	return db
}
