package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"unilink.id/campusclubs/internal/dto"
	"unilink.id/campusclubs/internal/model"
	"unilink.id/campusclubs/pkg/apperror"
)

type mockFeedbackService struct {
	mock.Mock
}

func (m *mockFeedbackService) Submit(ctx context.Context, user *model.User, input dto.SubmitFeedbackInput) (*model.Feedback, error) {
	args := m.Called(ctx, user, input)
	if f := args.Get(0); f != nil {
		return f.(*model.Feedback), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockFeedbackService) Update(ctx context.Context, user *model.User, id uuid.UUID, input dto.UpdateFeedbackInput) (*model.Feedback, error) {
	args := m.Called(ctx, user, id, input)
	if f := args.Get(0); f != nil {
		return f.(*model.Feedback), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockFeedbackService) ByEvent(ctx context.Context, eventID uuid.UUID) ([]*model.Feedback, *dto.FeedbackSummary, error) {
	args := m.Called(ctx, eventID)
	var rows []*model.Feedback
	if r := args.Get(0); r != nil {
		rows = r.([]*model.Feedback)
	}
	var summary *dto.FeedbackSummary
	if s := args.Get(1); s != nil {
		summary = s.(*dto.FeedbackSummary)
	}
	return rows, summary, args.Error(2)
}

func (m *mockFeedbackService) Mine(ctx context.Context, userID uuid.UUID) ([]*model.Feedback, error) {
	args := m.Called(ctx, userID)
	if f := args.Get(0); f != nil {
		return f.([]*model.Feedback), args.Error(1)
	}
	return nil, args.Error(1)
}

func feedbackTestRouter(svc *mockFeedbackService, user *model.User) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewFeedbackHandler(svc)

	router := gin.New()
	router.Use(func(c *gin.Context) {
		if user != nil {
			c.Set("user", user)
			c.Set("user_id", user.ID)
		}
	})
	router.POST("/api/feedback", h.Submit)
	router.GET("/api/feedback/event/:eventId", h.ByEvent)
	return router
}

func TestSubmitFeedback_HandlerSuccess(t *testing.T) {
	svc := new(mockFeedbackService)
	user := &model.User{ID: uuid.New(), Role: model.RoleStudent}
	router := feedbackTestRouter(svc, user)

	eventID := uuid.New()
	svc.On("Submit", mock.Anything, user, mock.MatchedBy(func(in dto.SubmitFeedbackInput) bool {
		return in.EventID == eventID && in.Rating == 4
	})).Return(&model.Feedback{EventID: eventID, UserID: user.ID, Rating: 4}, nil)

	body := `{"eventId":"` + eventID.String() + `","rating":4,"comments":"Great event"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/feedback", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, "Feedback submitted successfully", resp["message"])
}

func TestSubmitFeedback_HandlerValidation(t *testing.T) {
	svc := new(mockFeedbackService)
	router := feedbackTestRouter(svc, &model.User{ID: uuid.New()})

	body := `{"rating":9}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/feedback", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything, mock.Anything)
}

func TestSubmitFeedback_HandlerMapsServiceError(t *testing.T) {
	svc := new(mockFeedbackService)
	user := &model.User{ID: uuid.New(), Role: model.RoleStudent}
	router := feedbackTestRouter(svc, user)

	eventID := uuid.New()
	svc.On("Submit", mock.Anything, user, mock.Anything).
		Return(nil, apperror.Wrap(apperror.ErrConflict, "You have already submitted feedback for this event"))

	body := `{"eventId":"` + eventID.String() + `","rating":4}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/feedback", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, false, resp["success"])
	assert.Equal(t, "You have already submitted feedback for this event", resp["message"])
}

func TestFeedbackByEvent_HandlerSummary(t *testing.T) {
	svc := new(mockFeedbackService)
	router := feedbackTestRouter(svc, nil)

	eventID := uuid.New()
	svc.On("ByEvent", mock.Anything, eventID).Return(
		[]*model.Feedback{{Rating: 5}, {Rating: 4}},
		&dto.FeedbackSummary{TotalFeedback: 2, AverageRating: 4.5},
		nil,
	)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/feedback/event/"+eventID.String(), nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool                `json:"success"`
		Summary dto.FeedbackSummary `json:"summary"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, 2, resp.Summary.TotalFeedback)
	assert.Equal(t, 4.5, resp.Summary.AverageRating)
}
