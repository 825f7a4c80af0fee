package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	apperrors "userform/internal/errors"
	"userform/internal/model"
)

// UserRepository defines persistence operations.
type UserRepository interface {
	// Save inserts user, or upserts it when an identity is already set, and
	// returns it with the identity populated.
	Save(ctx context.Context, user *model.User) (*model.User, error)
	FindByID(ctx context.Context, id uint) (*model.User, error)
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository builds a GORM-backed repository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Save(ctx context.Context, user *model.User) (*model.User, error) {
	tx := r.db.WithContext(ctx)
	var err error
	if user.ID == nil {
		err = tx.Create(user).Error
	} else {
		err = tx.Save(user).Error
	}
	if err != nil {
		return nil, fmt.Errorf("save user: %w", err)
	}
	return user, nil
}

func (r *userRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user %d: %w", id, err)
	}
	return &user, nil
}
