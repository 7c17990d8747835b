package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"room_manager/apperrors"
	"room_manager/model"

	"gorm.io/gorm"
)

type GormBookingRepository struct {
	db *gorm.DB
}

// The overlap check and the write run inside one serializable transaction so
// two concurrent requests for the same room cannot both pass the check.
var txOptions = &sql.TxOptions{Isolation: sql.LevelSerializable}

// hasOverlap reports whether another booking for the room intersects
// [start, end) under half-open semantics. A booking ending exactly at start,
// or starting exactly at end, does not count.
func hasOverlap(tx *gorm.DB, roomId uint, start, end time.Time, excludeId uint) (bool, error) {
	var count int64
	query := tx.Model(&model.Booking{}).
		Where("room_id = ? AND start_time < ? AND end_time > ?", roomId, end, start)
	if excludeId > 0 {
		query = query.Where("id <> ?", excludeId)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, fmt.Errorf("overlap check: %w", err)
	}
	return count > 0, nil
}

func (r *GormBookingRepository) HasOverlap(roomId uint, start, end time.Time, excludeId uint) (bool, error) {
	return hasOverlap(r.db, roomId, start, end, excludeId)
}

func (r *GormBookingRepository) Create(userId, roomId uint, start, end time.Time) (*model.Booking, error) {
	var booking model.Booking
	err := r.db.Transaction(func(tx *gorm.DB) error {
		taken, err := hasOverlap(tx, roomId, start, end, 0)
		if err != nil {
			return err
		}
		if taken {
			return apperrors.ErrOverlap
		}
		booking = model.Booking{UserId: userId, RoomId: roomId, StartTime: start, EndTime: end}
		if err := tx.Create(&booking).Error; err != nil {
			return err
		}
		return tx.Preload("Room").Preload("User").First(&booking, booking.ID).Error
	}, txOptions)
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// List returns bookings joined with room and user, ordered by start time.
// A non-empty dayFilter ("YYYY-MM-DD") restricts to bookings fully inside
// that UTC calendar day.
func (r *GormBookingRepository) List(dayFilter string) ([]model.Booking, error) {
	query := r.db.Model(&model.Booking{}).Preload("Room").Preload("User")
	if dayFilter != "" {
		dayStart, err := time.Parse("2006-01-02", dayFilter)
		if err != nil {
			return nil, fmt.Errorf("invalid day filter %q: %w", dayFilter, err)
		}
		dayEnd := dayStart.AddDate(0, 0, 1)
		query = query.Where("start_time >= ? AND end_time <= ?", dayStart, dayEnd)
	}
	bookings := make([]model.Booking, 0)
	if err := query.Order("start_time asc").Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *GormBookingRepository) GetByID(id uint) (*model.Booking, error) {
	var booking model.Booking
	if err := r.db.Preload("Room").Preload("User").First(&booking, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &booking, nil
}

// Update writes the effective values for the booking. Callers merge the patch
// over the current record first; the overlap check runs against those merged
// values with the booking itself excluded.
func (r *GormBookingRepository) Update(id, userId, roomId uint, start, end time.Time) (*model.Booking, error) {
	var booking model.Booking
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&booking, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrNotFound
			}
			return err
		}
		taken, err := hasOverlap(tx, roomId, start, end, id)
		if err != nil {
			return err
		}
		if taken {
			return apperrors.ErrOverlap
		}
		updates := map[string]interface{}{
			"user_id":    userId,
			"room_id":    roomId,
			"start_time": start,
			"end_time":   end,
		}
		if err := tx.Model(&booking).Updates(updates).Error; err != nil {
			return err
		}
		return tx.Preload("Room").Preload("User").First(&booking, id).Error
	}, txOptions)
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// Delete removes the booking and returns the prior record.
func (r *GormBookingRepository) Delete(id uint) (*model.Booking, error) {
	var booking model.Booking
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("Room").Preload("User").First(&booking, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrNotFound
			}
			return err
		}
		return tx.Delete(&model.Booking{}, id).Error
	}, txOptions)
	if err != nil {
		return nil, err
	}
	return &booking, nil
}
