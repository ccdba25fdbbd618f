package season

import (
	"context"
	"errors"
)

// ErrDuplicate is returned by Create when (start_year, end_year) already exists.
var ErrDuplicate = errors.New("season already exists")

type Repository interface {
	Create(ctx context.Context, item Season) (Season, error)
	GetByID(ctx context.Context, id int64) (Season, bool, error)
	List(ctx context.Context) ([]Season, error)
}
