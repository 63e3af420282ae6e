package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Akshat-Vision/Sarvam/internal/models"
)

type UserRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *UserRepo {
	return &UserRepo{db: db}
}

func (r *UserRepo) Create(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *UserRepo) GetByID(ctx context.Context, id uint) (*models.User, error) {
	user := &models.User{}
	if err := r.db.WithContext(ctx).First(user, id).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	user := &models.User{}
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}
