package commands

import (
	"context"

	"github.com/google/uuid"

	"rentimade/internal/domain/category"
	reqdto "rentimade/internal/handler/dto/request"
	"rentimade/internal/infra"
	"rentimade/internal/pkg/errs"
	"rentimade/internal/usecase/shared"
)

var (
	ErrDuplicateCategorySlug = errs.New("category slug already exists")
	ErrCategoryInUse         = errs.New("category has products attached")
)

// Category writes go straight to the database. The read-side directory
// cache is TTL-only, so edits become visible within one cache period.
type CategoryCommands interface {
	Create(ctx context.Context, req reqdto.CreateCategoryRequest) (uuid.UUID, error)
	Update(ctx context.Context, categoryID uuid.UUID, req reqdto.UpdateCategoryRequest) error
	Delete(ctx context.Context, categoryID uuid.UUID) error
}

type categoryCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewCategoryCommands(uow shared.UnitOfWork) CategoryCommands {
	return &categoryCommandsImpl{uow: uow}
}

func (c *categoryCommandsImpl) Create(ctx context.Context, req reqdto.CreateCategoryRequest) (uuid.UUID, error) {
	entity, err := req.ToDomain()
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}

	var categoryID uuid.UUID
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, createErr := tx.Categories().Create(ctx, tx.DB(), entity)
		if createErr != nil {
			return createErr
		}
		categoryID = id
		return nil
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return uuid.Nil, ErrDuplicateCategorySlug
		}
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return categoryID, nil
}

func (c *categoryCommandsImpl) Update(ctx context.Context, categoryID uuid.UUID, req reqdto.UpdateCategoryRequest) error {
	snapshot, err := c.uow.CommandReads().CategoryByID(ctx, categoryID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrCategoryNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	entity, err := category.NewCategory(req.Name, req.Slug, req.SortOrder)
	if err != nil {
		return errs.Mark(err, ErrDomainValidation)
	}
	entity = category.ReconstructCategory(snapshot.ID, entity.Name(), entity.Slug(), entity.SortOrder())

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Categories().Update(ctx, tx.DB(), entity)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return ErrDuplicateCategorySlug
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (c *categoryCommandsImpl) Delete(ctx context.Context, categoryID uuid.UUID) error {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Categories().Delete(ctx, tx.DB(), categoryID)
	})
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return ErrCategoryNotFound
		case infra.IsKind(err, infra.KindForeignKeyViolated):
			return ErrCategoryInUse
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}
