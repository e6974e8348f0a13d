package client

import (
	"log"
	"time"

	"estate-office-saas/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func InitMysqlClient(databaseURL string) *gorm.DB {
	db, err := gorm.Open(mysql.Open(databaseURL), &gorm.Config{})
	if err != nil {
		log.Fatal("failed to connect to database:", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal(err)
	}

	// Connection pool (important for gateway callbacks)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(50)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := db.AutoMigrate(
		&model.Office{},
		&model.Subscription{},
		&model.PaymentRecord{},
		&model.AdminUser{},
		&model.AdminOfficeAssignment{},
		&model.Listing{},
		&model.Customer{},
	); err != nil {
		log.Fatal(err)
	}

	return db
}
