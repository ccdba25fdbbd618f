package user

import "context"

type Repository interface {
	GetByID(ctx context.Context, id int64) (User, bool, error)
	GetByExternalID(ctx context.Context, externalID string) (User, bool, error)
	GetByEmail(ctx context.Context, email string) (User, bool, error)
	Create(ctx context.Context, u User) (User, error)
	LinkIdentity(ctx context.Context, id int64, externalID, name string) (User, error)
}
