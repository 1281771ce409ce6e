package queries

import (
	"context"
	"time"

	"github.com/google/uuid"

	"rentimade/internal/infra"
	"rentimade/internal/pkg/errs"
)

var (
	ErrUserNotFound        = errs.New("user not found")
	ErrUserInactive        = errs.New("user inactive")
	ErrBankDetailsNotFound = errs.New("bank details not found")
)

type UserReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*AuthorizedUserView, error)
	FindByEmail(ctx context.Context, email string) (*AuthorizedUserView, string, error)
	FindAddresses(ctx context.Context, userID uuid.UUID) ([]*AddressView, error)
	FindBankDetails(ctx context.Context, userID uuid.UUID) (*BankDetailsView, error)
	GetEarnings(ctx context.Context, lenderID uuid.UUID) (*EarningsView, error)
	FindAllFirstPage(ctx context.Context, limit int32) ([]*UserListItem, error)
	FindAllKeyset(ctx context.Context, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*UserListItem, error)
}

type UserQueries interface {
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*AuthorizedUserView, error)
	ListAddresses(ctx context.Context, userID uuid.UUID) ([]*AddressView, error)
	GetBankDetails(ctx context.Context, userID uuid.UUID) (*BankDetailsView, error)
	GetEarnings(ctx context.Context, lenderID uuid.UUID) (*EarningsView, error)
	ListUsers(ctx context.Context, cursor *Cursor, limit int) ([]*UserListItem, *Cursor, error)
}

type userQueriesImpl struct {
	readStore UserReadStore
}

func NewUserQueries(readStore UserReadStore) UserQueries {
	return &userQueriesImpl{readStore: readStore}
}

func (q *userQueriesImpl) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*AuthorizedUserView, error) {
	user, err := q.readStore.FindByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if !user.IsActive {
		return nil, ErrUserInactive
	}

	return user, nil
}

func (q *userQueriesImpl) ListAddresses(ctx context.Context, userID uuid.UUID) ([]*AddressView, error) {
	return q.readStore.FindAddresses(ctx, userID)
}

func (q *userQueriesImpl) GetBankDetails(ctx context.Context, userID uuid.UUID) (*BankDetailsView, error) {
	bd, err := q.readStore.FindBankDetails(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBankDetailsNotFound
		}
		return nil, err
	}
	return bd, nil
}

func (q *userQueriesImpl) GetEarnings(ctx context.Context, lenderID uuid.UUID) (*EarningsView, error) {
	return q.readStore.GetEarnings(ctx, lenderID)
}

func (q *userQueriesImpl) ListUsers(ctx context.Context, cursor *Cursor, limit int) ([]*UserListItem, *Cursor, error) {
	limit = ValidateLimit(limit)
	var rows []*UserListItem
	var err error
	if cursor == nil || cursor.After == "" {
		rows, err = q.readStore.FindAllFirstPage(ctx, int32(limit+1))
	} else {
		lastCreatedAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, ErrInvalidCursor
		}
		rows, err = q.readStore.FindAllKeyset(ctx, lastCreatedAt, lastID, int32(limit+1))
	}
	if err != nil {
		return nil, nil, err
	}
	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
		rows = rows[:limit]
	}
	return rows, next, nil
}
