package repository

import (
	"testing"

	"room_manager/database"
	"room_manager/model"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	// A pooled :memory: database is a fresh database per connection.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	return db
}

func seedRoom(t *testing.T, db *gorm.DB, name string, capacity int) model.Room {
	t.Helper()
	room := model.Room{Name: name, Capacity: capacity}
	require.NoError(t, db.Create(&room).Error)
	return room
}

func seedUser(t *testing.T, db *gorm.DB, name, email string) model.User {
	t.Helper()
	user := model.User{Name: name, Email: email}
	require.NoError(t, db.Create(&user).Error)
	return user
}
