package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"unilink.id/campusclubs/internal/model"
)

type MembershipRepository interface {
	// Create relies on the (user_id, club_id) unique index; a duplicate join
	// surfaces as gorm.ErrDuplicatedKey.
	Create(ctx context.Context, membership *model.Membership) error
	// Delete removes the membership row and reports whether one existed.
	Delete(ctx context.Context, userID, clubID uuid.UUID) (bool, error)
	FindActiveByUser(ctx context.Context, userID uuid.UUID) ([]*model.Membership, error)
}

type membershipRepository struct {
	db *gorm.DB
}

func NewMembershipRepository(db *gorm.DB) MembershipRepository {
	return &membershipRepository{db: db}
}

func (r *membershipRepository) Create(ctx context.Context, membership *model.Membership) error {
	return r.db.WithContext(ctx).Create(membership).Error
}

func (r *membershipRepository) Delete(ctx context.Context, userID, clubID uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND club_id = ?", userID, clubID).
		Delete(&model.Membership{})
	if res.Error != nil {
		return false, res.Error
	}

	return res.RowsAffected > 0, nil
}

func (r *membershipRepository) FindActiveByUser(ctx context.Context, userID uuid.UUID) ([]*model.Membership, error) {
	var memberships []*model.Membership
	if err := r.db.WithContext(ctx).
		Preload("Club").
		Where("user_id = ? AND status = ?", userID, "active").
		Order("joined_at DESC").
		Find(&memberships).Error; err != nil {
		return nil, err
	}

	return memberships, nil
}
