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

type ClubService interface {
	GetAllClubs(ctx context.Context) ([]*model.Club, error)
	GetClub(ctx context.Context, id uuid.UUID) (*model.Club, error)
	CreateClub(ctx context.Context, input dto.CreateClubInput) (*model.Club, error)
	UpdateClub(ctx context.Context, id uuid.UUID, input dto.UpdateClubInput) (*model.Club, error)
	DeleteClub(ctx context.Context, id uuid.UUID) error

	Join(ctx context.Context, user *model.User, clubID uuid.UUID) error
	Leave(ctx context.Context, user *model.User, clubID uuid.UUID) error
	Memberships(ctx context.Context, userID uuid.UUID) ([]*model.Membership, error)
}

type clubService struct {
	clubs       repository.ClubRepository
	memberships repository.MembershipRepository
	users       repository.UserRepository
}

func NewClubService(clubs repository.ClubRepository, memberships repository.MembershipRepository, users repository.UserRepository) ClubService {
	return &clubService{clubs: clubs, memberships: memberships, users: users}
}

func (s *clubService) GetAllClubs(ctx context.Context) ([]*model.Club, error) {
	return s.clubs.FindAll(ctx)
}

func (s *clubService) GetClub(ctx context.Context, id uuid.UUID) (*model.Club, error) {
	club, err := s.clubs.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.Wrap(apperror.ErrNotFound, "Club not found")
		}
		return nil, err
	}

	return club, nil
}

func (s *clubService) CreateClub(ctx context.Context, input dto.CreateClubInput) (*model.Club, error) {
	club := &model.Club{
		Title:       input.Title,
		Description: input.Description,
		Contact:     input.Contact,
		ImageURL:    input.ImageURL,
	}

	if err := s.clubs.Create(ctx, club); err != nil {
		return nil, err
	}

	if input.HeadID != nil {
		if err := s.assignHead(ctx, club.ID, *input.HeadID); err != nil {
			return nil, err
		}
	}

	return club, nil
}

func (s *clubService) UpdateClub(ctx context.Context, id uuid.UUID, input dto.UpdateClubInput) (*model.Club, error) {
	club, err := s.GetClub(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		club.Title = *input.Title
	}
	if input.Description != nil {
		club.Description = *input.Description
	}
	if input.Contact != nil {
		club.Contact = *input.Contact
	}
	if input.ImageURL != nil {
		club.ImageURL = input.ImageURL
	}

	if err := s.clubs.Update(ctx, club); err != nil {
		return nil, err
	}

	if input.HeadID != nil {
		if err := s.assignHead(ctx, club.ID, *input.HeadID); err != nil {
			return nil, err
		}
	}

	return club, nil
}

func (s *clubService) DeleteClub(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetClub(ctx, id); err != nil {
		return err
	}
	return s.clubs.Delete(ctx, id)
}

func (s *clubService) Join(ctx context.Context, user *model.User, clubID uuid.UUID) error {
	if _, err := s.GetClub(ctx, clubID); err != nil {
		return err
	}

	membership := &model.Membership{
		UserID: user.ID,
		ClubID: clubID,
		Status: "active",
	}

	// The unique index decides duplicates; no check-then-act race.
	if err := s.memberships.Create(ctx, membership); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperror.Wrap(apperror.ErrConflict, "Already a member of this club")
		}
		return err
	}

	return nil
}

func (s *clubService) Leave(ctx context.Context, user *model.User, clubID uuid.UUID) error {
	removed, err := s.memberships.Delete(ctx, user.ID, clubID)
	if err != nil {
		return err
	}
	if !removed {
		return apperror.Wrap(apperror.ErrNotFound, "Not a member of this club")
	}

	return nil
}

func (s *clubService) Memberships(ctx context.Context, userID uuid.UUID) ([]*model.Membership, error) {
	return s.memberships.FindActiveByUser(ctx, userID)
}

// assignHead points an existing clubhead user at the club.
func (s *clubService) assignHead(ctx context.Context, clubID, headID uuid.UUID) error {
	head, err := s.users.FindByID(ctx, headID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.Wrap(apperror.ErrNotFound, "Head user not found")
		}
		return err
	}

	if head.Role != model.RoleClubHead {
		return apperror.Wrap(apperror.ErrInvalidInput, "Club head must have the clubhead role")
	}

	head.ClubID = &clubID
	return s.users.Update(ctx, head)
}
