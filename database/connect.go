package database

import (
	"fmt"
	"strconv"

	"room_manager/config"
	"room_manager/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the postgres database from DB_* config keys, migrates the
// schema and seeds the initial data. The handle is returned to the caller
// rather than kept in a package global so handlers receive it by injection.
func Connect() (*gorm.DB, error) {
	p := config.Config("DB_PORT")
	port, err := strconv.ParseUint(p, 10, 32)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database port %q: %w", p, err)
	}

	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		config.Config("DB_HOST"), port, config.Config("DB_USER"), config.Config("DB_PASSWORD"), config.Config("DB_NAME"))
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}
	SeedData(db)

	return db, nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Room{},
		&model.User{},
		&model.Booking{},
	)
}
