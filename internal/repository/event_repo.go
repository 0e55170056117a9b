package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"unilink.id/campusclubs/internal/model"
)

type EventRepository interface {
	Create(ctx context.Context, event *model.Event) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Event, error)
	FindAll(ctx context.Context) ([]*model.Event, error)
	Update(ctx context.Context, event *model.Event) error
	Delete(ctx context.Context, id uuid.UUID) error

	Register(ctx context.Context, registration *model.EventRegistration) error
	Unregister(ctx context.Context, eventID, userID uuid.UUID) (bool, error)
	IsRegistered(ctx context.Context, eventID, userID uuid.UUID) (bool, error)
}

type eventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) Create(ctx context.Context, event *model.Event) error {
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *eventRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Event, error) {
	var event model.Event
	if err := r.db.WithContext(ctx).
		Preload("Club").
		Where("id = ?", id).
		First(&event).Error; err != nil {
		return nil, err
	}

	return &event, nil
}

func (r *eventRepository) FindAll(ctx context.Context) ([]*model.Event, error) {
	var events []*model.Event
	if err := r.db.WithContext(ctx).
		Preload("Club").
		Order("event_date").
		Find(&events).Error; err != nil {
		return nil, err
	}

	return events, nil
}

func (r *eventRepository) Update(ctx context.Context, event *model.Event) error {
	return r.db.WithContext(ctx).Save(event).Error
}

func (r *eventRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Event{}, "id = ?", id).Error
}

func (r *eventRepository) Register(ctx context.Context, registration *model.EventRegistration) error {
	return r.db.WithContext(ctx).Create(registration).Error
}

func (r *eventRepository) Unregister(ctx context.Context, eventID, userID uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("event_id = ? AND user_id = ?", eventID, userID).
		Delete(&model.EventRegistration{})
	if res.Error != nil {
		return false, res.Error
	}

	return res.RowsAffected > 0, nil
}

func (r *eventRepository) IsRegistered(ctx context.Context, eventID, userID uuid.UUID) (bool, error) {
	var registration model.EventRegistration
	err := r.db.WithContext(ctx).
		Where("event_id = ? AND user_id = ? AND status = ?", eventID, userID, model.RegistrationStatusRegistered).
		First(&registration).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}
