package model

type User struct {
	DTO
	Name     string `gorm:"not null" json:"name"`
	Email    string `gorm:"unique;not null" validate:"required,email" json:"email"`
	Password string `json:"-"` // bcrypt hash, empty for users created through booking
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
