package repository

import (
	"errors"

	"room_manager/constants"
	"room_manager/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GormUserRepository struct {
	db *gorm.DB
}

// Resolve finds or creates the user for an email in a single upsert keyed on
// the unique email column, so concurrent resolves of the same new address
// cannot insert twice. A non-nil name replaces an existing user's display
// name; nil leaves it alone and new users fall back to a default. The
// credential hash is never touched.
func (r *GormUserRepository) Resolve(email string, name *string) (*model.User, error) {
	createName := constants.DEFAULT_USER_NAME
	if name != nil {
		createName = *name
	}

	onConflict := clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoNothing: true,
	}
	if name != nil {
		onConflict.DoNothing = false
		onConflict.DoUpdates = clause.Assignments(map[string]interface{}{"name": *name})
	}

	user := model.User{Email: email, Name: createName}
	if err := r.db.Clauses(onConflict).Create(&user).Error; err != nil {
		return nil, err
	}

	// Re-read: on the conflict path the returned struct does not carry the
	// existing row's id on every driver.
	var resolved model.User
	if err := r.db.Where("email = ?", email).First(&resolved).Error; err != nil {
		return nil, err
	}
	return &resolved, nil
}

func (r *GormUserRepository) GetByEmail(email string) (*model.User, error) {
	var user model.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}
