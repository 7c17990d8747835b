package repository

import (
	"room_manager/model"

	"gorm.io/gorm"
)

type GormRoomRepository struct {
	db *gorm.DB
}

func (r *GormRoomRepository) List() ([]model.Room, error) {
	var rooms []model.Room
	if err := r.db.Order("id asc").Find(&rooms).Error; err != nil {
		return nil, err
	}
	return rooms, nil
}
