package memory

import (
	"context"
	"strings"

	"github.com/riskibarqy/prediction-league/internal/domain/user"
)

type UserRepository struct {
	store *Store
}

func NewUserRepository(store *Store) *UserRepository {
	return &UserRepository{store: store}
}

func (r *UserRepository) GetByID(_ context.Context, id int64) (user.User, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	item, ok := r.store.users[id]
	return item, ok, nil
}

func (r *UserRepository) GetByExternalID(_ context.Context, externalID string) (user.User, bool, error) {
	if externalID == "" {
		return user.User{}, false, nil
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, item := range r.store.users {
		if item.ExternalID == externalID {
			return item, true, nil
		}
	}
	return user.User{}, false, nil
}

func (r *UserRepository) GetByEmail(_ context.Context, email string) (user.User, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, item := range r.store.users {
		if strings.EqualFold(item.Email, email) {
			return item, true, nil
		}
	}
	return user.User{}, false, nil
}

func (r *UserRepository) Create(_ context.Context, item user.User) (user.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, existing := range r.store.users {
		if strings.EqualFold(existing.Email, item.Email) {
			return user.User{}, user.ErrDuplicate
		}
		if item.ExternalID != "" && existing.ExternalID == item.ExternalID {
			return user.User{}, user.ErrDuplicate
		}
	}

	r.store.nextUserID++
	item.ID = r.store.nextUserID
	item.CreatedAt = r.store.stamp(item.CreatedAt)
	r.store.users[item.ID] = item
	return item, nil
}

func (r *UserRepository) LinkIdentity(_ context.Context, id int64, externalID, name string) (user.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	item, ok := r.store.users[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	for otherID, existing := range r.store.users {
		if otherID != id && externalID != "" && existing.ExternalID == externalID {
			return user.User{}, user.ErrDuplicate
		}
	}
	item.ExternalID = externalID
	if name != "" {
		item.Name = name
	}
	r.store.users[id] = item
	return item, nil
}
