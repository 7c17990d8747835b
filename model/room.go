package model

// Room is seeded once and read-only from the API's perspective.
type Room struct {
	DTO
	Name     string `gorm:"unique;not null" validate:"required" json:"name"`
	Capacity int    `json:"capacity"`
}
