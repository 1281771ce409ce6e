package queries

import (
	"context"

	"github.com/google/uuid"
)

type WishlistReadStore interface {
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*ProductListItem, error)
	FindProductIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
}

type WishlistQueries interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*ProductListItem, error)
	ListProductIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
}

type wishlistQueriesImpl struct {
	readStore WishlistReadStore
}

func NewWishlistQueries(readStore WishlistReadStore) WishlistQueries {
	return &wishlistQueriesImpl{readStore: readStore}
}

func (q *wishlistQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]*ProductListItem, error) {
	return q.readStore.FindByUser(ctx, userID)
}

func (q *wishlistQueriesImpl) ListProductIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	return q.readStore.FindProductIDs(ctx, userID)
}
