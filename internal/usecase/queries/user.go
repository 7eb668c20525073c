package queries

import (
	"context"

	"github.com/google/uuid"

	"eventdeck/internal/domain/user"
	"eventdeck/internal/infra"
	"eventdeck/internal/pkg/errs"
)

var (
	ErrUserNotFound = errs.New("user not found")
	ErrUserInactive = errs.New("user inactive")
)

type UserQueries interface {
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*UserView, error)
}

type UserReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*user.User, error)
}

type userQueriesImpl struct {
	readStore UserReadStore
}

func NewUserQueries(readStore UserReadStore) UserQueries {
	return &userQueriesImpl{
		readStore: readStore,
	}
}

func (q *userQueriesImpl) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*UserView, error) {
	u, err := q.readStore.FindByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if !u.IsActive() {
		return nil, ErrUserInactive
	}

	return &UserView{
		ID:        u.ID(),
		Email:     u.Email().Value(),
		FullName:  u.FullName(),
		Role:      string(u.Role()),
		Company:   u.Company(),
		LastLogin: u.LastLogin(),
		IsActive:  u.IsActive(),
		CreatedAt: u.CreatedAt(),
	}, nil
}
