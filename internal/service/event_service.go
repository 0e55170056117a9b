package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"unilink.id/campusclubs/internal/dto"
	"unilink.id/campusclubs/internal/model"
	"unilink.id/campusclubs/internal/repository"
	"unilink.id/campusclubs/pkg/apperror"
)

type EventService interface {
	GetAllEvents(ctx context.Context) ([]*model.Event, error)
	GetEvent(ctx context.Context, id uuid.UUID) (*model.Event, error)
	CreateEvent(ctx context.Context, user *model.User, clubID uuid.UUID, input dto.CreateEventInput) (*model.Event, error)
	UpdateEvent(ctx context.Context, user *model.User, id uuid.UUID, input dto.UpdateEventInput) (*model.Event, error)
	DeleteEvent(ctx context.Context, user *model.User, id uuid.UUID) error

	Register(ctx context.Context, user *model.User, eventID uuid.UUID) error
	Unregister(ctx context.Context, user *model.User, eventID uuid.UUID) error
}

type eventService struct {
	events repository.EventRepository
	clubs  repository.ClubRepository
	search SearchService
}

func NewEventService(events repository.EventRepository, clubs repository.ClubRepository, search SearchService) EventService {
	return &eventService{events: events, clubs: clubs, search: search}
}

func (s *eventService) GetAllEvents(ctx context.Context) ([]*model.Event, error) {
	return s.events.FindAll(ctx)
}

func (s *eventService) GetEvent(ctx context.Context, id uuid.UUID) (*model.Event, error) {
	event, err := s.events.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.Wrap(apperror.ErrNotFound, "Event not found")
		}
		return nil, err
	}

	return event, nil
}

func (s *eventService) CreateEvent(ctx context.Context, user *model.User, clubID uuid.UUID, input dto.CreateEventInput) (*model.Event, error) {
	// A clubhead may only create events for their own club.
	if user.Role != model.RoleAdmin && (user.ClubID == nil || *user.ClubID != clubID) {
		return nil, apperror.Wrap(apperror.ErrForbidden, "Not authorized for this club's events")
	}

	if _, err := s.clubs.FindByID(ctx, clubID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.Wrap(apperror.ErrNotFound, "Club not found")
		}
		return nil, err
	}

	event := &model.Event{
		ClubID:      clubID,
		Title:       input.Title,
		Description: input.Description,
		EventDate:   input.EventDate,
		Venue:       input.Venue,
		CreatedBy:   user.ID,
	}

	if err := s.events.Create(ctx, event); err != nil {
		return nil, err
	}

	if s.search != nil {
		s.search.IndexEvent(event)
	}

	return event, nil
}

func (s *eventService) UpdateEvent(ctx context.Context, user *model.User, id uuid.UUID, input dto.UpdateEventInput) (*model.Event, error) {
	event, err := s.GetEvent(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.authorizeMutation(user, event); err != nil {
		return nil, err
	}

	if input.Title != nil {
		event.Title = *input.Title
	}
	if input.Description != nil {
		event.Description = *input.Description
	}
	if input.EventDate != nil {
		event.EventDate = *input.EventDate
	}
	if input.Venue != nil {
		event.Venue = *input.Venue
	}

	if err := s.events.Update(ctx, event); err != nil {
		return nil, err
	}

	if s.search != nil {
		s.search.IndexEvent(event)
	}

	return event, nil
}

func (s *eventService) DeleteEvent(ctx context.Context, user *model.User, id uuid.UUID) error {
	event, err := s.GetEvent(ctx, id)
	if err != nil {
		return err
	}

	if err := s.authorizeMutation(user, event); err != nil {
		return err
	}

	if err := s.events.Delete(ctx, id); err != nil {
		return err
	}

	if s.search != nil {
		s.search.RemoveEvent(id)
	}

	return nil
}

func (s *eventService) Register(ctx context.Context, user *model.User, eventID uuid.UUID) error {
	if _, err := s.GetEvent(ctx, eventID); err != nil {
		return err
	}

	registration := &model.EventRegistration{
		EventID: eventID,
		UserID:  user.ID,
		Status:  model.RegistrationStatusRegistered,
	}

	if err := s.events.Register(ctx, registration); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperror.Wrap(apperror.ErrConflict, "Already registered for this event")
		}
		return err
	}

	return nil
}

func (s *eventService) Unregister(ctx context.Context, user *model.User, eventID uuid.UUID) error {
	removed, err := s.events.Unregister(ctx, eventID, user.ID)
	if err != nil {
		return err
	}
	if !removed {
		return apperror.Wrap(apperror.ErrNotFound, "Not registered for this event")
	}

	return nil
}

// authorizeMutation allows admins and the head of the event's club.
func (s *eventService) authorizeMutation(user *model.User, event *model.Event) error {
	if user.Role == model.RoleAdmin {
		return nil
	}
	if user.Role == model.RoleClubHead && user.ClubID != nil && *user.ClubID == event.ClubID {
		return nil
	}

	return apperror.Wrap(apperror.ErrForbidden, "Not authorized for this club's events")
}
