package commands

import (
	"context"

	"github.com/google/uuid"

	"rentimade/internal/domain/banner"
	reqdto "rentimade/internal/handler/dto/request"
	"rentimade/internal/infra"
	"rentimade/internal/pkg/errs"
	"rentimade/internal/usecase/shared"
)

var ErrBannerNotFound = errs.New("banner not found")

type BannerCommands interface {
	Create(ctx context.Context, req reqdto.CreateBannerRequest) (uuid.UUID, error)
	Update(ctx context.Context, bannerID uuid.UUID, req reqdto.UpdateBannerRequest) error
	Delete(ctx context.Context, bannerID uuid.UUID) error
}

type bannerCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewBannerCommands(uow shared.UnitOfWork) BannerCommands {
	return &bannerCommandsImpl{uow: uow}
}

func (c *bannerCommandsImpl) Create(ctx context.Context, req reqdto.CreateBannerRequest) (uuid.UUID, error) {
	entity, err := req.ToDomain()
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}

	var bannerID uuid.UUID
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, createErr := tx.Banners().Create(ctx, tx.DB(), entity)
		if createErr != nil {
			return createErr
		}
		bannerID = id
		return nil
	})
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return bannerID, nil
}

func (c *bannerCommandsImpl) Update(ctx context.Context, bannerID uuid.UUID, req reqdto.UpdateBannerRequest) error {
	entity, err := banner.NewBanner(req.Title, req.ImageURL, req.LinkURL, req.IsActive, req.SortOrder)
	if err != nil {
		return errs.Mark(err, ErrDomainValidation)
	}
	entity = banner.ReconstructBanner(bannerID, entity.Title(), entity.ImageURL(), entity.LinkURL(), entity.IsActive(), entity.SortOrder())

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Banners().Update(ctx, tx.DB(), entity)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrBannerNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (c *bannerCommandsImpl) Delete(ctx context.Context, bannerID uuid.UUID) error {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Banners().Delete(ctx, tx.DB(), bannerID)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrBannerNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}
