package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/riskibarqy/prediction-league/internal/domain/user"
	usermock "github.com/riskibarqy/prediction-league/internal/mocks/domain/user"
	"github.com/stretchr/testify/mock"
)

func TestUserService_SignIn_KnownExternalIDUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := usermock.NewRepository(t)
	service := NewUserService(repo, nil)

	repo.
		On("GetByExternalID", mock.MatchedBy(func(v context.Context) bool { return v == ctx }), "sub-1").
		Return(user.User{ID: 4, Email: "ana@example.com", ExternalID: "sub-1"}, true, nil).
		Once()

	got, err := service.SignIn(ctx, user.Identity{ExternalID: " sub-1 ", Email: "ANA@example.com"})
	if err != nil {
		t.Fatalf("sign in: %v", err)
	}
	if got.ID != 4 {
		t.Fatalf("unexpected user id: got=%d want=4", got.ID)
	}
}

func TestUserService_SignIn_LinksExistingEmailUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := usermock.NewRepository(t)
	service := NewUserService(repo, nil)

	repo.
		On("GetByExternalID", mock.MatchedBy(func(v context.Context) bool { return v == ctx }), "sub-2").
		Return(user.User{}, false, nil).
		Once()
	repo.
		On("GetByEmail", mock.MatchedBy(func(v context.Context) bool { return v == ctx }), "ana@example.com").
		Return(user.User{ID: 4, Email: "ana@example.com", ExternalID: "sub-old"}, true, nil).
		Once()
	repo.
		On("LinkIdentity", mock.MatchedBy(func(v context.Context) bool { return v == ctx }), int64(4), "sub-2", "Ana B").
		Return(user.User{ID: 4, Email: "ana@example.com", ExternalID: "sub-2", Name: "Ana B"}, nil).
		Once()

	got, err := service.SignIn(ctx, user.Identity{ExternalID: "sub-2", Email: "ana@example.com", Name: "Ana B"})
	if err != nil {
		t.Fatalf("sign in: %v", err)
	}
	if got.ExternalID != "sub-2" || got.Name != "Ana B" {
		t.Fatalf("unexpected linked user: %+v", got)
	}
}

func TestUserService_SignIn_CreatesUserUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	now := time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC)
	repo := usermock.NewRepository(t)
	service := NewUserService(repo, func(email string) bool { return strings.HasSuffix(email, "@league.test") })
	service.now = func() time.Time { return now }

	repo.
		On("GetByExternalID", mock.MatchedBy(func(v context.Context) bool { return v == ctx }), "sub-3").
		Return(user.User{}, false, nil).
		Once()
	repo.
		On("GetByEmail", mock.MatchedBy(func(v context.Context) bool { return v == ctx }), "boss@league.test").
		Return(user.User{}, false, nil).
		Once()
	repo.
		On("Create", mock.MatchedBy(func(v context.Context) bool { return v == ctx }), user.User{
			Email:      "boss@league.test",
			Name:       "boss",
			ExternalID: "sub-3",
			IsAdmin:    true,
			CreatedAt:  now,
		}).
		Return(user.User{ID: 9, Email: "boss@league.test", Name: "boss", ExternalID: "sub-3", IsAdmin: true, CreatedAt: now}, nil).
		Once()

	got, err := service.SignIn(ctx, user.Identity{ExternalID: "sub-3", Email: "Boss@League.test"})
	if err != nil {
		t.Fatalf("sign in: %v", err)
	}
	if got.ID != 9 || !got.IsAdmin {
		t.Fatalf("unexpected created user: %+v", got)
	}
}

func TestUserService_SignIn_RequiresSubjectAndEmail(t *testing.T) {
	t.Parallel()

	service := NewUserService(usermock.NewRepository(t), nil)

	for _, identity := range []user.Identity{
		{Email: "ana@example.com"},
		{ExternalID: "sub-1"},
		{ExternalID: "  ", Email: "  "},
	} {
		if _, err := service.SignIn(context.Background(), identity); !errors.Is(err, ErrUnauthorized) {
			t.Fatalf("expected ErrUnauthorized for %+v, got %v", identity, err)
		}
	}
}

func TestUserService_SignIn_MemoryStoreRoundTrip(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	env := newMemoryEnv(t, windowOpen)
	service := NewUserService(env.users, nil)

	first, err := service.SignIn(ctx, user.Identity{ExternalID: "sub-1", Email: "ana@example.com", Name: "Ana"})
	if err != nil {
		t.Fatalf("first sign in: %v", err)
	}
	again, err := service.SignIn(ctx, user.Identity{ExternalID: "sub-1", Email: "ana@example.com"})
	if err != nil {
		t.Fatalf("second sign in: %v", err)
	}
	if again.ID != first.ID {
		t.Fatalf("expected same user: first=%d again=%d", first.ID, again.ID)
	}

	relinked, err := service.SignIn(ctx, user.Identity{ExternalID: "sub-9", Email: "ana@example.com", Name: "Ana Maria"})
	if err != nil {
		t.Fatalf("relink sign in: %v", err)
	}
	if relinked.ID != first.ID || relinked.ExternalID != "sub-9" || relinked.Name != "Ana Maria" {
		t.Fatalf("unexpected relinked user: %+v", relinked)
	}

	if _, err := service.GetByID(ctx, 404); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
