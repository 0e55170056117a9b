package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"unilink.id/campusclubs/internal/model"
)

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Create(ctx context.Context, user *model.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	args := m.Called(ctx, id)
	if u := args.Get(0); u != nil {
		return u.(*model.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if u := args.Get(0); u != nil {
		return u.(*model.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) FindByIdentifier(ctx context.Context, identifier string) (*model.User, error) {
	args := m.Called(ctx, identifier)
	if u := args.Get(0); u != nil {
		return u.(*model.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) Update(ctx context.Context, user *model.User) error {
	return m.Called(ctx, user).Error(0)
}

type mockClubRepo struct {
	mock.Mock
}

func (m *mockClubRepo) Create(ctx context.Context, club *model.Club) error {
	return m.Called(ctx, club).Error(0)
}

func (m *mockClubRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Club, error) {
	args := m.Called(ctx, id)
	if c := args.Get(0); c != nil {
		return c.(*model.Club), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockClubRepo) FindAll(ctx context.Context) ([]*model.Club, error) {
	args := m.Called(ctx)
	if c := args.Get(0); c != nil {
		return c.([]*model.Club), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockClubRepo) Update(ctx context.Context, club *model.Club) error {
	return m.Called(ctx, club).Error(0)
}

func (m *mockClubRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type mockMembershipRepo struct {
	mock.Mock
}

func (m *mockMembershipRepo) Create(ctx context.Context, membership *model.Membership) error {
	return m.Called(ctx, membership).Error(0)
}

func (m *mockMembershipRepo) Delete(ctx context.Context, userID, clubID uuid.UUID) (bool, error) {
	args := m.Called(ctx, userID, clubID)
	return args.Bool(0), args.Error(1)
}

func (m *mockMembershipRepo) FindActiveByUser(ctx context.Context, userID uuid.UUID) ([]*model.Membership, error) {
	args := m.Called(ctx, userID)
	if ms := args.Get(0); ms != nil {
		return ms.([]*model.Membership), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockEventRepo struct {
	mock.Mock
}

func (m *mockEventRepo) Create(ctx context.Context, event *model.Event) error {
	return m.Called(ctx, event).Error(0)
}

func (m *mockEventRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Event, error) {
	args := m.Called(ctx, id)
	if e := args.Get(0); e != nil {
		return e.(*model.Event), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockEventRepo) FindAll(ctx context.Context) ([]*model.Event, error) {
	args := m.Called(ctx)
	if e := args.Get(0); e != nil {
		return e.([]*model.Event), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockEventRepo) Update(ctx context.Context, event *model.Event) error {
	return m.Called(ctx, event).Error(0)
}

func (m *mockEventRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockEventRepo) Register(ctx context.Context, registration *model.EventRegistration) error {
	return m.Called(ctx, registration).Error(0)
}

func (m *mockEventRepo) Unregister(ctx context.Context, eventID, userID uuid.UUID) (bool, error) {
	args := m.Called(ctx, eventID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *mockEventRepo) IsRegistered(ctx context.Context, eventID, userID uuid.UUID) (bool, error) {
	args := m.Called(ctx, eventID, userID)
	return args.Bool(0), args.Error(1)
}

type mockAnnouncementRepo struct {
	mock.Mock
}

func (m *mockAnnouncementRepo) Create(ctx context.Context, announcement *model.Announcement) error {
	return m.Called(ctx, announcement).Error(0)
}

func (m *mockAnnouncementRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Announcement, error) {
	args := m.Called(ctx, id)
	if a := args.Get(0); a != nil {
		return a.(*model.Announcement), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAnnouncementRepo) FindAll(ctx context.Context) ([]*model.Announcement, error) {
	args := m.Called(ctx)
	if a := args.Get(0); a != nil {
		return a.([]*model.Announcement), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAnnouncementRepo) FindByClub(ctx context.Context, clubID uuid.UUID) ([]*model.Announcement, error) {
	args := m.Called(ctx, clubID)
	if a := args.Get(0); a != nil {
		return a.([]*model.Announcement), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAnnouncementRepo) Update(ctx context.Context, announcement *model.Announcement) error {
	return m.Called(ctx, announcement).Error(0)
}

func (m *mockAnnouncementRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type mockFeedbackRepo struct {
	mock.Mock
}

func (m *mockFeedbackRepo) Create(ctx context.Context, feedback *model.Feedback) error {
	return m.Called(ctx, feedback).Error(0)
}

func (m *mockFeedbackRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Feedback, error) {
	args := m.Called(ctx, id)
	if f := args.Get(0); f != nil {
		return f.(*model.Feedback), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockFeedbackRepo) FindByEvent(ctx context.Context, eventID uuid.UUID) ([]*model.Feedback, error) {
	args := m.Called(ctx, eventID)
	if f := args.Get(0); f != nil {
		return f.([]*model.Feedback), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockFeedbackRepo) FindByUser(ctx context.Context, userID uuid.UUID) ([]*model.Feedback, error) {
	args := m.Called(ctx, userID)
	if f := args.Get(0); f != nil {
		return f.([]*model.Feedback), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockFeedbackRepo) Update(ctx context.Context, feedback *model.Feedback) error {
	return m.Called(ctx, feedback).Error(0)
}

type mockNotificationService struct {
	mock.Mock
}

func (m *mockNotificationService) Notify(ctx context.Context, notification *model.Notification) error {
	return m.Called(ctx, notification).Error(0)
}

func (m *mockNotificationService) List(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*model.Notification, error) {
	args := m.Called(ctx, userID, limit, offset)
	if n := args.Get(0); n != nil {
		return n.([]*model.Notification), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockNotificationService) MarkAsRead(ctx context.Context, id, userID uuid.UUID) error {
	return m.Called(ctx, id, userID).Error(0)
}

func (m *mockNotificationService) MarkAllAsRead(ctx context.Context, userID uuid.UUID) error {
	return m.Called(ctx, userID).Error(0)
}

func (m *mockNotificationService) UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}
