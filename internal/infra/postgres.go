package infra

import (
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	dbm "kamehameha/internal/models/db_models"
)

func InitPostgresql() *gorm.DB {
	dsn := os.Getenv("POSTGRES_URL")

	connectionPool, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		log.Printf("Error connecting to database: %v", err)
		log.Fatal("Error connecting to database")
	}

	if err := connectionPool.AutoMigrate(
		&dbm.Account{},
		&dbm.Journey{},
		&dbm.Badge{},
		&dbm.CheckIn{},
		&dbm.TimerSettings{},
	); err != nil {
		log.Fatalf("Error migrating database schema: %v", err)
	}

	// gorm tags cannot express a partial index, so the one-active-journey
	// guarantee is created directly: at most one journey per account with no
	// end date. Concurrent starts race on this index, not on application code.
	if err := connectionPool.Exec(
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_journeys_one_active
		 ON journeys (account_id)
		 WHERE end_date IS NULL AND deleted_at IS NULL`,
	).Error; err != nil {
		log.Fatalf("Error creating active-journey index: %v", err)
	}

	return connectionPool
}

func ClosePostgresql(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Error getting database instance: %v", err)
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database connection: %v", err)
	} else {
		log.Println("PostgreSQL database connection closed successfully")
	}
}
