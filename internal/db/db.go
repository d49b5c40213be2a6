package db

import (
	"log"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"portfolio-backend/internal/models"
)

func Connect(dsn string) *gorm.DB {
	gdb, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("db connect: %v", err)
	}
	return gdb
}

func Migrate(gdb *gorm.DB) error {
	return gdb.AutoMigrate(
		&models.Profile{},
		&models.Skill{},
		&models.Project{},
		&models.WorkExperience{},
		&models.BlogPost{},
		&models.AdminUser{},
		&models.ChatInteraction{},
	)
}
