package queries

import (
	"context"

	"github.com/google/uuid"

	"rentimade/internal/infra"
	"rentimade/internal/pkg/errs"
)

var ErrCategoryNotFound = errs.New("category not found")

// CategoryReadStore is the read surface for the category directory. The
// production binding wraps the database-backed store in a TTL cache, so
// listings may serve slightly stale data after admin edits.
type CategoryReadStore interface {
	FindAll(ctx context.Context) ([]*CategoryView, error)
	FindBySlug(ctx context.Context, slug string) (*CategoryView, error)
}

type CategoryQueries interface {
	List(ctx context.Context) ([]*CategoryView, error)
	GetBySlug(ctx context.Context, slug string) (*CategoryView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*CategoryView, error)
}

type categoryQueriesImpl struct {
	readStore CategoryReadStore
}

func NewCategoryQueries(readStore CategoryReadStore) CategoryQueries {
	return &categoryQueriesImpl{readStore: readStore}
}

func (q *categoryQueriesImpl) List(ctx context.Context) ([]*CategoryView, error) {
	return q.readStore.FindAll(ctx)
}

func (q *categoryQueriesImpl) GetBySlug(ctx context.Context, slug string) (*CategoryView, error) {
	cv, err := q.readStore.FindBySlug(ctx, slug)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return cv, nil
}

func (q *categoryQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*CategoryView, error) {
	all, err := q.readStore.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, cv := range all {
		if cv.ID == id {
			return cv, nil
		}
	}
	return nil, ErrCategoryNotFound
}
