package database

import (
	"os"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// ConnectPostgres opens the connection described by DATABASE_URL. The
// process cannot serve anything without a database, so failure is fatal.
func ConnectPostgres(logger *zap.Logger) *gorm.DB {
	dsn := getenvDefault("DATABASE_URL",
		"host=localhost user=postgres password=postgres dbname=bizops port=5432 sslmode=disable")

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		logger.Fatal("failed to connect to postgres", zap.Error(err))
	}
	return db
}

func getenvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
