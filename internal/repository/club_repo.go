package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"unilink.id/campusclubs/internal/model"
)

type ClubRepository interface {
	Create(ctx context.Context, club *model.Club) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Club, error)
	FindAll(ctx context.Context) ([]*model.Club, error)
	Update(ctx context.Context, club *model.Club) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type clubRepository struct {
	db *gorm.DB
}

func NewClubRepository(db *gorm.DB) ClubRepository {
	return &clubRepository{db: db}
}

func (r *clubRepository) Create(ctx context.Context, club *model.Club) error {
	return r.db.WithContext(ctx).Create(club).Error
}

func (r *clubRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Club, error) {
	var club model.Club
	if err := r.db.WithContext(ctx).
		Preload("Events", func(db *gorm.DB) *gorm.DB {
			return db.Order("event_date")
		}).
		Where("id = ?", id).
		First(&club).Error; err != nil {
		return nil, err
	}

	return &club, nil
}

func (r *clubRepository) FindAll(ctx context.Context) ([]*model.Club, error) {
	var clubs []*model.Club
	if err := r.db.WithContext(ctx).
		Order("title").
		Find(&clubs).Error; err != nil {
		return nil, err
	}

	return clubs, nil
}

func (r *clubRepository) Update(ctx context.Context, club *model.Club) error {
	return r.db.WithContext(ctx).Save(club).Error
}

func (r *clubRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Club{}, "id = ?", id).Error
}
