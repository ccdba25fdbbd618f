package week

import "context"

type Repository interface {
	List(ctx context.Context) ([]Week, error)
	GetByID(ctx context.Context, id int64) (Week, bool, error)
}
