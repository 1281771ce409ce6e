package queries

import (
	"context"

	"github.com/google/uuid"

	"rentimade/internal/infra"
	"rentimade/internal/pkg/errs"
)

var ErrBannerNotFound = errs.New("banner not found")

type BannerReadStore interface {
	FindActive(ctx context.Context) ([]*BannerView, error)
	FindAll(ctx context.Context) ([]*BannerView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*BannerView, error)
}

type BannerQueries interface {
	ListActive(ctx context.Context) ([]*BannerView, error)
	ListAll(ctx context.Context) ([]*BannerView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*BannerView, error)
}

type bannerQueriesImpl struct {
	readStore BannerReadStore
}

func NewBannerQueries(readStore BannerReadStore) BannerQueries {
	return &bannerQueriesImpl{readStore: readStore}
}

func (q *bannerQueriesImpl) ListActive(ctx context.Context) ([]*BannerView, error) {
	return q.readStore.FindActive(ctx)
}

func (q *bannerQueriesImpl) ListAll(ctx context.Context) ([]*BannerView, error) {
	return q.readStore.FindAll(ctx)
}

func (q *bannerQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*BannerView, error) {
	bv, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBannerNotFound
		}
		return nil, err
	}
	return bv, nil
}
