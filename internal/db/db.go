package db

import (
	"log"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/vazqueztomas/barbershop/internal/config"
	"github.com/vazqueztomas/barbershop/internal/models"
)

var defaultServicePrices = []models.ServicePrice{
	{ServiceName: "Degradado", BasePrice: 9000},
	{ServiceName: "Corte", BasePrice: 7000},
	{ServiceName: "Barba", BasePrice: 3000},
	{ServiceName: "Corte+Barba", BasePrice: 10000},
	{ServiceName: "Claritos", BasePrice: 5000},
	{ServiceName: "Otros", BasePrice: 8000},
}

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := Open(cfg.DBUrl)
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	return db
}

// Open connects to the store named by the DSN (postgres:// URLs go to
// Postgres, anything else is treated as a SQLite path), ensures the
// schema and seeds the price catalog on first run.
func Open(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(dialector(dsn), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := migrate(db); err != nil {
		return nil, err
	}

	if err := seedServicePrices(db); err != nil {
		return nil, err
	}

	return db, nil
}

func dialector(dsn string) gorm.Dialector {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		return postgres.Open(dsn)
	}
	return sqlite.Open(dsn)
}

func migrate(db *gorm.DB) error {
	// Pre-dates the client/service split: old databases called the
	// service column "name".
	m := db.Migrator()
	if m.HasTable("haircuts") &&
		m.HasColumn(&models.Haircut{}, "name") &&
		!m.HasColumn(&models.Haircut{}, "service_name") {
		if err := m.RenameColumn(&models.Haircut{}, "name", "service_name"); err != nil {
			return err
		}
	}

	return db.AutoMigrate(
		&models.Haircut{},
		&models.ServicePrice{},
		&models.User{},
		&models.AuditLog{},
	)
}

func seedServicePrices(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.ServicePrice{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	seed := make([]models.ServicePrice, len(defaultServicePrices))
	copy(seed, defaultServicePrices)
	return db.Create(&seed).Error
}
