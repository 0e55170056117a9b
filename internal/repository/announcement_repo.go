package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"unilink.id/campusclubs/internal/model"
)

type AnnouncementRepository interface {
	Create(ctx context.Context, announcement *model.Announcement) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Announcement, error)
	FindAll(ctx context.Context) ([]*model.Announcement, error)
	FindByClub(ctx context.Context, clubID uuid.UUID) ([]*model.Announcement, error)
	Update(ctx context.Context, announcement *model.Announcement) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type announcementRepository struct {
	db *gorm.DB
}

func NewAnnouncementRepository(db *gorm.DB) AnnouncementRepository {
	return &announcementRepository{db: db}
}

func (r *announcementRepository) Create(ctx context.Context, announcement *model.Announcement) error {
	return r.db.WithContext(ctx).Create(announcement).Error
}

func (r *announcementRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Announcement, error) {
	var announcement model.Announcement
	if err := r.db.WithContext(ctx).
		Preload("Club").
		Preload("Creator").
		Where("id = ?", id).
		First(&announcement).Error; err != nil {
		return nil, err
	}

	return &announcement, nil
}

func (r *announcementRepository) FindAll(ctx context.Context) ([]*model.Announcement, error) {
	var announcements []*model.Announcement
	if err := r.db.WithContext(ctx).
		Preload("Club").
		Preload("Creator").
		Order("created_at DESC").
		Find(&announcements).Error; err != nil {
		return nil, err
	}

	return announcements, nil
}

func (r *announcementRepository) FindByClub(ctx context.Context, clubID uuid.UUID) ([]*model.Announcement, error) {
	var announcements []*model.Announcement
	if err := r.db.WithContext(ctx).
		Preload("Creator").
		Where("club_id = ?", clubID).
		Order("created_at DESC").
		Find(&announcements).Error; err != nil {
		return nil, err
	}

	return announcements, nil
}

func (r *announcementRepository) Update(ctx context.Context, announcement *model.Announcement) error {
	return r.db.WithContext(ctx).Save(announcement).Error
}

func (r *announcementRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Announcement{}, "id = ?", id).Error
}
