package handler

import "room_manager/repository"

// Handler carries the injected store layer; one instance is built in main and
// shared by every route.
type Handler struct {
	Bookings repository.BookingRepository
	Rooms    repository.RoomRepository
	Users    repository.UserRepository
}

func New(repos *repository.Repositories) *Handler {
	return &Handler{
		Bookings: repos.Bookings,
		Rooms:    repos.Rooms,
		Users:    repos.Users,
	}
}
