package model

import "time"

type Booking struct {
	DTO
	StartTime time.Time `gorm:"not null;index" validate:"required" json:"start"`
	EndTime   time.Time `gorm:"not null" validate:"required" json:"end"`
	RoomId    uint      `gorm:"not null" json:"roomId"`
	UserId    uint      `gorm:"not null" json:"userId"`
	Room      Room      `gorm:"foreignKey:RoomId;constraint:OnUpdate:CASCADE" json:"room"`
	User      User      `gorm:"foreignKey:UserId;constraint:OnUpdate:CASCADE" json:"user"`
}

type CreateBookingInput struct {
	UserEmail string    `json:"userEmail" validate:"required,email"`
	UserName  string    `json:"userName" validate:"required"`
	RoomId    uint      `json:"roomId" validate:"required,gt=0"`
	Start     time.Time `json:"start" validate:"required"`
	End       time.Time `json:"end" validate:"required,gtfield=Start"`
}

type UpdateBookingInput struct {
	UserName  *string    `json:"userName" validate:"omitempty,min=1"`
	UserEmail *string    `json:"userEmail" validate:"omitempty,email"`
	RoomId    *uint      `json:"roomId" validate:"omitempty,gt=0"`
	Start     *time.Time `json:"start"`
	End       *time.Time `json:"end"`
}
