package service

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"unilink.id/campusclubs/internal/dto"
	"unilink.id/campusclubs/internal/model"
	"unilink.id/campusclubs/internal/repository"
	"unilink.id/campusclubs/pkg/apperror"
)

// feedbackEditWindow is how long a student may edit their feedback.
const feedbackEditWindow = 24 * time.Hour

type FeedbackService interface {
	Submit(ctx context.Context, user *model.User, input dto.SubmitFeedbackInput) (*model.Feedback, error)
	Update(ctx context.Context, user *model.User, id uuid.UUID, input dto.UpdateFeedbackInput) (*model.Feedback, error)
	ByEvent(ctx context.Context, eventID uuid.UUID) ([]*model.Feedback, *dto.FeedbackSummary, error)
	Mine(ctx context.Context, userID uuid.UUID) ([]*model.Feedback, error)
}

type feedbackService struct {
	feedback repository.FeedbackRepository
	events   repository.EventRepository
}

func NewFeedbackService(feedback repository.FeedbackRepository, events repository.EventRepository) FeedbackService {
	return &feedbackService{feedback: feedback, events: events}
}

func (s *feedbackService) Submit(ctx context.Context, user *model.User, input dto.SubmitFeedbackInput) (*model.Feedback, error) {
	if _, err := s.events.FindByID(ctx, input.EventID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.Wrap(apperror.ErrNotFound, "Event not found")
		}
		return nil, err
	}

	registered, err := s.events.IsRegistered(ctx, input.EventID, user.ID)
	if err != nil {
		return nil, err
	}
	if !registered {
		return nil, apperror.Wrap(apperror.ErrForbidden, "You must be registered for this event to submit feedback")
	}

	feedback := &model.Feedback{
		EventID:  input.EventID,
		UserID:   user.ID,
		Rating:   input.Rating,
		Comments: input.Comments,
	}

	if err := s.feedback.Create(ctx, feedback); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperror.Wrap(apperror.ErrConflict, "You have already submitted feedback for this event")
		}
		return nil, err
	}

	return feedback, nil
}

func (s *feedbackService) Update(ctx context.Context, user *model.User, id uuid.UUID, input dto.UpdateFeedbackInput) (*model.Feedback, error) {
	feedback, err := s.feedback.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.Wrap(apperror.ErrNotFound, "Feedback not found")
		}
		return nil, err
	}

	if feedback.UserID != user.ID {
		return nil, apperror.Wrap(apperror.ErrForbidden, "You can only edit your own feedback")
	}

	if time.Since(feedback.SubmittedAt) > feedbackEditWindow {
		return nil, apperror.Wrap(apperror.ErrForbidden, "Feedback can only be edited within 24 hours of submission")
	}

	if input.Rating != nil {
		feedback.Rating = *input.Rating
	}
	if input.Comments != nil {
		feedback.Comments = *input.Comments
	}

	if err := s.feedback.Update(ctx, feedback); err != nil {
		return nil, err
	}

	return feedback, nil
}

func (s *feedbackService) ByEvent(ctx context.Context, eventID uuid.UUID) ([]*model.Feedback, *dto.FeedbackSummary, error) {
	rows, err := s.feedback.FindByEvent(ctx, eventID)
	if err != nil {
		return nil, nil, err
	}

	summary := &dto.FeedbackSummary{TotalFeedback: len(rows)}
	if len(rows) > 0 {
		sum := 0
		for _, f := range rows {
			sum += f.Rating
		}
		avg := float64(sum) / float64(len(rows))
		summary.AverageRating = math.Round(avg*10) / 10
	}

	return rows, summary, nil
}

func (s *feedbackService) Mine(ctx context.Context, userID uuid.UUID) ([]*model.Feedback, error) {
	return s.feedback.FindByUser(ctx, userID)
}
