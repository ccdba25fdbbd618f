package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/prediction-league/internal/domain/user"
	qb "github.com/riskibarqy/prediction-league/internal/platform/querybuilder"
)

var userColumns = []string{"id", "email", "name", "external_id", "is_admin", "created_at"}

type UserRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (user.User, bool, error) {
	return r.getOne(ctx, "get user by id", qb.Eq("id", id))
}

func (r *UserRepository) GetByExternalID(ctx context.Context, externalID string) (user.User, bool, error) {
	if externalID == "" {
		return user.User{}, false, nil
	}
	return r.getOne(ctx, "get user by external id", qb.Eq("external_id", externalID))
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (user.User, bool, error) {
	return r.getOne(ctx, "get user by email", qb.Eq("email", strings.ToLower(email)))
}

func (r *UserRepository) Create(ctx context.Context, item user.User) (user.User, error) {
	query, args, err := qb.InsertModel("users", userTableModel{
		Email:      strings.ToLower(item.Email),
		Name:       item.Name,
		ExternalID: nullString(item.ExternalID),
		IsAdmin:    item.IsAdmin,
		CreatedAt:  item.CreatedAt,
	}, "id")
	if err != nil {
		return user.User{}, fmt.Errorf("build insert user query: %w", err)
	}

	if err := r.db.GetContext(ctx, &item.ID, query, args...); err != nil {
		if isUniqueViolation(err) {
			return user.User{}, user.ErrDuplicate
		}
		return user.User{}, fmt.Errorf("insert user: %w", err)
	}
	return item, nil
}

func (r *UserRepository) LinkIdentity(ctx context.Context, id int64, externalID, name string) (user.User, error) {
	builder := qb.Update("users").Set("external_id", nullString(externalID))
	if name != "" {
		builder.Set("name", name)
	}
	query, args, err := builder.Where(qb.Eq("id", id)).Returning(userColumns...).ToSQL()
	if err != nil {
		return user.User{}, fmt.Errorf("build link user identity query: %w", err)
	}

	var row userTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		switch {
		case isNotFound(err):
			return user.User{}, user.ErrNotFound
		case isUniqueViolation(err):
			return user.User{}, user.ErrDuplicate
		}
		return user.User{}, fmt.Errorf("link user identity: %w", err)
	}
	return row.toDomain(), nil
}

func (r *UserRepository) getOne(ctx context.Context, op string, where qb.Condition) (user.User, bool, error) {
	query, args, err := qb.Select(userColumns...).From("users").Where(where).ToSQL()
	if err != nil {
		return user.User{}, false, fmt.Errorf("build %s query: %w", op, err)
	}

	var row userTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return user.User{}, false, nil
		}
		return user.User{}, false, fmt.Errorf("%s: %w", op, err)
	}
	return row.toDomain(), true, nil
}
