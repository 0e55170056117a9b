package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"unilink.id/campusclubs/internal/dto"
	"unilink.id/campusclubs/internal/model"
	"unilink.id/campusclubs/pkg/apperror"
)

func TestSubmitFeedback_RequiresRegistration(t *testing.T) {
	feedbackRepo := new(mockFeedbackRepo)
	events := new(mockEventRepo)
	svc := NewFeedbackService(feedbackRepo, events)

	eventID := uuid.New()
	user := &model.User{ID: uuid.New(), Role: model.RoleStudent}

	events.On("FindByID", mock.Anything, eventID).Return(&model.Event{ID: eventID}, nil)
	events.On("IsRegistered", mock.Anything, eventID, user.ID).Return(false, nil)

	_, err := svc.Submit(context.Background(), user, dto.SubmitFeedbackInput{
		EventID: eventID,
		Rating:  4,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, apperror.ErrForbidden)
	assert.EqualError(t, err, "You must be registered for this event to submit feedback")
}

func TestSubmitFeedback_Duplicate(t *testing.T) {
	feedbackRepo := new(mockFeedbackRepo)
	events := new(mockEventRepo)
	svc := NewFeedbackService(feedbackRepo, events)

	eventID := uuid.New()
	user := &model.User{ID: uuid.New(), Role: model.RoleStudent}

	events.On("FindByID", mock.Anything, eventID).Return(&model.Event{ID: eventID}, nil)
	events.On("IsRegistered", mock.Anything, eventID, user.ID).Return(true, nil)
	feedbackRepo.On("Create", mock.Anything, mock.Anything).Return(gorm.ErrDuplicatedKey)

	_, err := svc.Submit(context.Background(), user, dto.SubmitFeedbackInput{
		EventID: eventID,
		Rating:  4,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, apperror.ErrConflict)
}

func TestSubmitFeedback_EventNotFound(t *testing.T) {
	events := new(mockEventRepo)
	svc := NewFeedbackService(new(mockFeedbackRepo), events)

	eventID := uuid.New()
	events.On("FindByID", mock.Anything, eventID).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Submit(context.Background(), &model.User{ID: uuid.New()}, dto.SubmitFeedbackInput{
		EventID: eventID,
		Rating:  5,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestUpdateFeedback_OwnerOnly(t *testing.T) {
	feedbackRepo := new(mockFeedbackRepo)
	svc := NewFeedbackService(feedbackRepo, new(mockEventRepo))

	id := uuid.New()
	feedbackRepo.On("FindByID", mock.Anything, id).Return(&model.Feedback{
		ID:          id,
		UserID:      uuid.New(),
		SubmittedAt: time.Now(),
	}, nil)

	rating := 2
	_, err := svc.Update(context.Background(), &model.User{ID: uuid.New()}, id, dto.UpdateFeedbackInput{
		Rating: &rating,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, apperror.ErrForbidden)
}

func TestUpdateFeedback_EditWindowClosed(t *testing.T) {
	feedbackRepo := new(mockFeedbackRepo)
	svc := NewFeedbackService(feedbackRepo, new(mockEventRepo))

	user := &model.User{ID: uuid.New()}
	id := uuid.New()
	feedbackRepo.On("FindByID", mock.Anything, id).Return(&model.Feedback{
		ID:          id,
		UserID:      user.ID,
		SubmittedAt: time.Now().Add(-25 * time.Hour),
	}, nil)

	rating := 2
	_, err := svc.Update(context.Background(), user, id, dto.UpdateFeedbackInput{
		Rating: &rating,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, apperror.ErrForbidden)
	assert.EqualError(t, err, "Feedback can only be edited within 24 hours of submission")
}

func TestUpdateFeedback_WithinWindow(t *testing.T) {
	feedbackRepo := new(mockFeedbackRepo)
	svc := NewFeedbackService(feedbackRepo, new(mockEventRepo))

	user := &model.User{ID: uuid.New()}
	id := uuid.New()
	feedbackRepo.On("FindByID", mock.Anything, id).Return(&model.Feedback{
		ID:          id,
		UserID:      user.ID,
		Rating:      5,
		SubmittedAt: time.Now().Add(-time.Hour),
	}, nil)
	feedbackRepo.On("Update", mock.Anything, mock.MatchedBy(func(f *model.Feedback) bool {
		return f.Rating == 2
	})).Return(nil)

	rating := 2
	updated, err := svc.Update(context.Background(), user, id, dto.UpdateFeedbackInput{
		Rating: &rating,
	})

	require.NoError(t, err)
	assert.Equal(t, 2, updated.Rating)
}

func TestFeedbackByEvent_Summary(t *testing.T) {
	feedbackRepo := new(mockFeedbackRepo)
	svc := NewFeedbackService(feedbackRepo, new(mockEventRepo))

	eventID := uuid.New()
	feedbackRepo.On("FindByEvent", mock.Anything, eventID).Return([]*model.Feedback{
		{Rating: 5},
		{Rating: 4},
		{Rating: 4},
	}, nil)

	rows, summary, err := svc.ByEvent(context.Background(), eventID)

	require.NoError(t, err)
	assert.Len(t, rows, 3)
	assert.Equal(t, 3, summary.TotalFeedback)
	assert.Equal(t, 4.3, summary.AverageRating)
}

func TestFeedbackByEvent_Empty(t *testing.T) {
	feedbackRepo := new(mockFeedbackRepo)
	svc := NewFeedbackService(feedbackRepo, new(mockEventRepo))

	eventID := uuid.New()
	feedbackRepo.On("FindByEvent", mock.Anything, eventID).Return([]*model.Feedback{}, nil)

	rows, summary, err := svc.ByEvent(context.Background(), eventID)

	require.NoError(t, err)
	assert.Empty(t, rows)
	assert.Equal(t, 0, summary.TotalFeedback)
	assert.Zero(t, summary.AverageRating)
}
