package repository

import (
	"time"

	"room_manager/model"

	"gorm.io/gorm"
)

// The store layer is injected into handlers so tests can swap postgres for an
// in-memory sqlite database.

type BookingRepository interface {
	Create(userId, roomId uint, start, end time.Time) (*model.Booking, error)
	List(dayFilter string) ([]model.Booking, error)
	GetByID(id uint) (*model.Booking, error)
	Update(id, userId, roomId uint, start, end time.Time) (*model.Booking, error)
	Delete(id uint) (*model.Booking, error)
	HasOverlap(roomId uint, start, end time.Time, excludeId uint) (bool, error)
}

type RoomRepository interface {
	List() ([]model.Room, error)
}

type UserRepository interface {
	Resolve(email string, name *string) (*model.User, error)
	GetByEmail(email string) (*model.User, error)
}

type Repositories struct {
	Bookings BookingRepository
	Rooms    RoomRepository
	Users    UserRepository
}

func New(db *gorm.DB) *Repositories {
	return &Repositories{
		Bookings: &GormBookingRepository{db: db},
		Rooms:    &GormRoomRepository{db: db},
		Users:    &GormUserRepository{db: db},
	}
}
