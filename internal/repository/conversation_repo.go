package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Akshat-Vision/Sarvam/internal/models"
)

type ConversationRepo struct {
	db *gorm.DB
}

func NewConversationRepo(db *gorm.DB) *ConversationRepo {
	return &ConversationRepo{db: db}
}

func (r *ConversationRepo) Create(ctx context.Context, conv *models.Conversation) error {
	return r.db.WithContext(ctx).Create(conv).Error
}

func (r *ConversationRepo) ListByUser(ctx context.Context, userID uint) ([]models.Conversation, error) {
	var convs []models.Conversation
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("timestamp asc").
		Find(&convs).Error
	if err != nil {
		return nil, err
	}
	return convs, nil
}
