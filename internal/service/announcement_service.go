package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"unilink.id/campusclubs/internal/dto"
	"unilink.id/campusclubs/internal/model"
	"unilink.id/campusclubs/internal/repository"
	"unilink.id/campusclubs/pkg/apperror"
	"unilink.id/campusclubs/pkg/storage"
)

const rateLimitActionAnnouncement = "announcement"

type AnnouncementService interface {
	GetAllAnnouncements(ctx context.Context) ([]*model.Announcement, error)
	GetAnnouncement(ctx context.Context, id uuid.UUID) (*model.Announcement, error)
	GetClubAnnouncements(ctx context.Context, clubID uuid.UUID) ([]*model.Announcement, error)
	CreateAnnouncement(ctx context.Context, user *model.User, input dto.CreateAnnouncementInput, poster *dto.PosterFile) (*model.Announcement, error)
	UpdateAnnouncement(ctx context.Context, user *model.User, id uuid.UUID, input dto.UpdateAnnouncementInput, poster *dto.PosterFile) (*model.Announcement, error)
	DeleteAnnouncement(ctx context.Context, user *model.User, id uuid.UUID) error

	// Approve and Reject drive the pending -> approved|rejected workflow.
	Approve(ctx context.Context, admin *model.User, id uuid.UUID, feedback *string) (*model.Announcement, error)
	Reject(ctx context.Context, admin *model.User, id uuid.UUID, feedback *string) (*model.Announcement, error)
}

type announcementService struct {
	announcements repository.AnnouncementRepository
	imageStorage  storage.ImageStorage
	notifications NotificationService
	search        SearchService
	redisClient   *redis.Client
	rateLimit     time.Duration
}

func NewAnnouncementService(
	announcements repository.AnnouncementRepository,
	imageStorage storage.ImageStorage,
	notifications NotificationService,
	search SearchService,
	redisClient *redis.Client,
	rateLimit time.Duration,
) AnnouncementService {
	return &announcementService{
		announcements: announcements,
		imageStorage:  imageStorage,
		notifications: notifications,
		search:        search,
		redisClient:   redisClient,
		rateLimit:     rateLimit,
	}
}

func (s *announcementService) GetAllAnnouncements(ctx context.Context) ([]*model.Announcement, error) {
	return s.announcements.FindAll(ctx)
}

func (s *announcementService) GetAnnouncement(ctx context.Context, id uuid.UUID) (*model.Announcement, error) {
	announcement, err := s.announcements.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.Wrap(apperror.ErrNotFound, "Announcement not found")
		}
		return nil, err
	}

	return announcement, nil
}

func (s *announcementService) GetClubAnnouncements(ctx context.Context, clubID uuid.UUID) ([]*model.Announcement, error) {
	return s.announcements.FindByClub(ctx, clubID)
}

func (s *announcementService) CreateAnnouncement(ctx context.Context, user *model.User, input dto.CreateAnnouncementInput, poster *dto.PosterFile) (*model.Announcement, error) {
	if user.ClubID == nil || *user.ClubID != input.ClubID {
		return nil, apperror.Wrap(apperror.ErrForbidden, "Not authorized to create announcements for this club")
	}

	allowed, err := CheckAndSetRateLimit(ctx, s.redisClient, user.ID, rateLimitActionAnnouncement, s.rateLimit)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, apperror.Wrap(apperror.ErrRateLimitExceeded, "Too many announcements, try again later")
	}

	var posterURL *string
	if poster != nil && poster.Reader != nil && s.imageStorage != nil {
		url, err := s.imageStorage.UploadImage(ctx, poster.Reader, "posters", poster.FileName)
		if err != nil {
			// Give the lock back so a bad upload doesn't burn the window.
			_ = ClearRateLimit(ctx, s.redisClient, user.ID, rateLimitActionAnnouncement)
			return nil, apperror.Wrap(apperror.ErrInvalidInput, err.Error())
		}
		posterURL = &url
	}

	announcement := &model.Announcement{
		ClubID:           input.ClubID,
		Title:            input.Title,
		Description:      input.Description,
		AnnouncementDate: input.AnnouncementDate,
		PosterURL:        posterURL,
		Status:           model.AnnouncementStatusPending,
		CreatedBy:        user.ID,
	}

	if err := s.announcements.Create(ctx, announcement); err != nil {
		return nil, err
	}

	return announcement, nil
}

func (s *announcementService) UpdateAnnouncement(ctx context.Context, user *model.User, id uuid.UUID, input dto.UpdateAnnouncementInput, poster *dto.PosterFile) (*model.Announcement, error) {
	announcement, err := s.GetAnnouncement(ctx, id)
	if err != nil {
		return nil, err
	}

	if announcement.CreatedBy != user.ID {
		return nil, apperror.Wrap(apperror.ErrForbidden, "You can only update your own announcements")
	}

	if input.Title != nil {
		announcement.Title = *input.Title
	}
	if input.Description != nil {
		announcement.Description = *input.Description
	}
	if input.AnnouncementDate != nil {
		announcement.AnnouncementDate = input.AnnouncementDate
	}

	if poster != nil && poster.Reader != nil && s.imageStorage != nil {
		url, err := s.imageStorage.UploadImage(ctx, poster.Reader, "posters", poster.FileName)
		if err != nil {
			return nil, apperror.Wrap(apperror.ErrInvalidInput, err.Error())
		}
		if announcement.PosterURL != nil {
			_ = s.imageStorage.DeleteImage(ctx, *announcement.PosterURL)
		}
		announcement.PosterURL = &url
	}

	if err := s.announcements.Update(ctx, announcement); err != nil {
		return nil, err
	}

	if s.search != nil && announcement.Status == model.AnnouncementStatusApproved {
		s.search.IndexAnnouncement(announcement)
	}

	return announcement, nil
}

func (s *announcementService) DeleteAnnouncement(ctx context.Context, user *model.User, id uuid.UUID) error {
	announcement, err := s.GetAnnouncement(ctx, id)
	if err != nil {
		return err
	}

	if announcement.CreatedBy != user.ID && user.Role != model.RoleAdmin {
		return apperror.Wrap(apperror.ErrForbidden, "You can only delete your own announcements")
	}

	if err := s.announcements.Delete(ctx, id); err != nil {
		return err
	}

	if announcement.PosterURL != nil && s.imageStorage != nil {
		_ = s.imageStorage.DeleteImage(ctx, *announcement.PosterURL)
	}
	if s.search != nil {
		s.search.RemoveAnnouncement(id)
	}

	return nil
}

func (s *announcementService) Approve(ctx context.Context, admin *model.User, id uuid.UUID, feedback *string) (*model.Announcement, error) {
	return s.review(ctx, admin, id, model.AnnouncementStatusApproved, feedback)
}

func (s *announcementService) Reject(ctx context.Context, admin *model.User, id uuid.UUID, feedback *string) (*model.Announcement, error) {
	return s.review(ctx, admin, id, model.AnnouncementStatusRejected, feedback)
}

// review performs the only legal transitions: pending -> approved|rejected.
// Terminal states are immutable.
func (s *announcementService) review(ctx context.Context, admin *model.User, id uuid.UUID, status string, feedback *string) (*model.Announcement, error) {
	announcement, err := s.GetAnnouncement(ctx, id)
	if err != nil {
		return nil, err
	}

	if announcement.Status != model.AnnouncementStatusPending {
		return nil, apperror.Wrap(apperror.ErrConflict,
			fmt.Sprintf("Announcement has already been %s", announcement.Status))
	}

	adminID := admin.ID
	announcement.Status = status
	announcement.ApprovedBy = &adminID
	announcement.Feedback = feedback

	if err := s.announcements.Update(ctx, announcement); err != nil {
		return nil, err
	}

	s.notifyCreator(ctx, admin, announcement)

	if s.search != nil {
		if status == model.AnnouncementStatusApproved {
			s.search.IndexAnnouncement(announcement)
		} else {
			s.search.RemoveAnnouncement(announcement.ID)
		}
	}

	return announcement, nil
}

func (s *announcementService) notifyCreator(ctx context.Context, admin *model.User, announcement *model.Announcement) {
	if s.notifications == nil {
		return
	}

	notifType := model.NotificationAnnouncementApproved
	message := fmt.Sprintf("Your announcement %q was approved", announcement.Title)
	if announcement.Status == model.AnnouncementStatusRejected {
		notifType = model.NotificationAnnouncementRejected
		message = fmt.Sprintf("Your announcement %q was rejected", announcement.Title)
	}

	_ = s.notifications.Notify(ctx, &model.Notification{
		UserID:     announcement.CreatedBy,
		ActorID:    admin.ID,
		EntityID:   announcement.ID,
		EntityType: "announcement",
		Type:       notifType,
		Message:    message,
	})
}
