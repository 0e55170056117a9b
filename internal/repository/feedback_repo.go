package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"unilink.id/campusclubs/internal/model"
)

type FeedbackRepository interface {
	Create(ctx context.Context, feedback *model.Feedback) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Feedback, error)
	FindByEvent(ctx context.Context, eventID uuid.UUID) ([]*model.Feedback, error)
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*model.Feedback, error)
	Update(ctx context.Context, feedback *model.Feedback) error
}

type feedbackRepository struct {
	db *gorm.DB
}

func NewFeedbackRepository(db *gorm.DB) FeedbackRepository {
	return &feedbackRepository{db: db}
}

func (r *feedbackRepository) Create(ctx context.Context, feedback *model.Feedback) error {
	return r.db.WithContext(ctx).Create(feedback).Error
}

func (r *feedbackRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Feedback, error) {
	var feedback model.Feedback
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&feedback).Error; err != nil {
		return nil, err
	}

	return &feedback, nil
}

func (r *feedbackRepository) FindByEvent(ctx context.Context, eventID uuid.UUID) ([]*model.Feedback, error) {
	var rows []*model.Feedback
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("event_id = ?", eventID).
		Order("submitted_at DESC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	return rows, nil
}

func (r *feedbackRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*model.Feedback, error) {
	var rows []*model.Feedback
	if err := r.db.WithContext(ctx).
		Preload("Event").
		Preload("Event.Club").
		Where("user_id = ?", userID).
		Order("submitted_at DESC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	return rows, nil
}

func (r *feedbackRepository) Update(ctx context.Context, feedback *model.Feedback) error {
	return r.db.WithContext(ctx).Save(feedback).Error
}
