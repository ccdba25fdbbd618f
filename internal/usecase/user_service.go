package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/riskibarqy/prediction-league/internal/domain/user"
)

type UserService struct {
	userRepo user.Repository
	isAdmin  func(email string) bool
	now      func() time.Time
}

// NewUserService builds the sign-in service. isAdmin decides whether a newly
// created user gets the admin flag; nil means nobody does.
func NewUserService(userRepo user.Repository, isAdmin func(email string) bool) *UserService {
	if isAdmin == nil {
		isAdmin = func(string) bool { return false }
	}
	return &UserService{
		userRepo: userRepo,
		isAdmin:  isAdmin,
		now:      time.Now,
	}
}

// SignIn resolves the identity asserted by the auth proxy to a local user.
// Lookup goes by external id, then by email (linking the new external id),
// and finally creates the user.
func (s *UserService) SignIn(ctx context.Context, identity user.Identity) (user.User, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.UserService.SignIn")
	defer span.End()

	identity = identity.Normalize()
	if identity.ExternalID == "" || identity.Email == "" {
		return user.User{}, fmt.Errorf("%w: subject and email are required", ErrUnauthorized)
	}

	u, err := s.lookup(ctx, identity)
	if err == nil {
		return u, nil
	}
	if !errors.Is(err, user.ErrNotFound) {
		return user.User{}, err
	}

	created, err := s.userRepo.Create(ctx, user.User{
		Email:      identity.Email,
		Name:       identity.DisplayName(),
		ExternalID: identity.ExternalID,
		IsAdmin:    s.isAdmin(identity.Email),
		CreatedAt:  s.now().UTC(),
	})
	if err == nil {
		return created, nil
	}
	if !errors.Is(err, user.ErrDuplicate) {
		return user.User{}, fmt.Errorf("create user: %w", err)
	}

	// Lost a race with a concurrent sign-in of the same identity.
	u, err = s.lookup(ctx, identity)
	if err != nil {
		return user.User{}, err
	}
	return u, nil
}

func (s *UserService) lookup(ctx context.Context, identity user.Identity) (user.User, error) {
	u, exists, err := s.userRepo.GetByExternalID(ctx, identity.ExternalID)
	if err != nil {
		return user.User{}, fmt.Errorf("get user by external id: %w", err)
	}
	if exists {
		return u, nil
	}

	u, exists, err = s.userRepo.GetByEmail(ctx, identity.Email)
	if err != nil {
		return user.User{}, fmt.Errorf("get user by email: %w", err)
	}
	if !exists {
		return user.User{}, user.ErrNotFound
	}

	linked, err := s.userRepo.LinkIdentity(ctx, u.ID, identity.ExternalID, identity.DisplayName())
	if err != nil {
		return user.User{}, fmt.Errorf("link user identity: %w", err)
	}
	return linked, nil
}

func (s *UserService) GetByID(ctx context.Context, id int64) (user.User, error) {
	u, exists, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return user.User{}, fmt.Errorf("get user: %w", err)
	}
	if !exists {
		return user.User{}, fmt.Errorf("%w: user=%d", ErrNotFound, id)
	}
	return u, nil
}
