package database

import (
	"log"
	"time"

	"room_manager/helper"
	"room_manager/model"
	"room_manager/utils"

	"gorm.io/gorm"
)

// SeedData inserts the demo rooms, the demo login user and one sample booking.
// Every step is idempotent so restarts do not duplicate rows.
func SeedData(db *gorm.DB) {
	rooms := []model.Room{
		{Name: "Room A", Capacity: 6},
		{Name: "Room B", Capacity: 10},
		{Name: "Room C", Capacity: 4},
	}
	for _, room := range rooms {
		if err := db.Where(model.Room{Name: room.Name}).FirstOrCreate(&room).Error; err != nil {
			log.Println("failed to seed room:", room.Name, "error:", err)
		}
	}

	hash, err := helper.HashPassword("demo1234")
	if err != nil {
		log.Println("failed to hash demo password:", err)
		return
	}
	demo := model.User{Name: "Demo User", Email: "demo@example.com", Password: hash}
	if err := db.Where(model.User{Email: demo.Email}).FirstOrCreate(&demo).Error; err != nil {
		log.Println("failed to seed demo user:", err)
		return
	}

	var count int64
	if err := db.Model(&model.Booking{}).Count(&count).Error; err != nil || count > 0 {
		return
	}

	// Sample booking: today 10:00-11:00 in Room A.
	var roomA model.Room
	if err := db.Where("name = ?", "Room A").First(&roomA).Error; err != nil {
		return
	}
	today := utils.FormatOffsetDate(time.Now())
	start, _ := utils.ToOffsetInstant(today, "10:00")
	end, _ := utils.ToOffsetInstant(today, "11:00")
	booking := model.Booking{UserId: demo.ID, RoomId: roomA.ID, StartTime: start, EndTime: end}
	if err := db.Create(&booking).Error; err != nil {
		log.Println("failed to seed sample booking:", err)
	}
}
