package cmd

import (
	"log"
	"os"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"sales-voucher/models"
)

func initDB(dsn string) *gorm.DB {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})
	if err != nil {
		log.Fatalf("open db: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("get sql db: %v", err)
	}
	if err := sqlDB.Ping(); err != nil {
		log.Fatalf("ping db: %v", err)
	}

	if err := migrate(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}
	if os.Getenv("SEED_DEV") == "1" {
		if err := seedDevData(db); err != nil {
			log.Fatalf("seed: %v", err)
		}
	}
	return db
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Item{},
		&models.VoucherHeader{},
		&models.VoucherDetail{},
	)
}

func seedDevData(db *gorm.DB) error {
	var cnt int64
	if err := db.Model(&models.Item{}).Count(&cnt).Error; err != nil {
		return err
	}
	if cnt > 0 {
		return nil
	}
	items := []models.Item{
		{ItemCode: "A1", ItemName: "Widget"},
		{ItemCode: "A2", ItemName: "Gadget"},
		{ItemCode: "B1", ItemName: "Sprocket"},
		{ItemCode: "B2", ItemName: "Flange"},
		{ItemCode: "C1", ItemName: "Bracket"},
	}
	return db.Clauses(clause.OnConflict{DoNothing: true}).Create(&items).Error
}
