package repository

import (
	"context"

	"github.com/google/uuid"

	"rentimade/internal/infra"
	"rentimade/internal/infra/db"
	"rentimade/internal/usecase/shared"
)

type AddressRepository struct{}

func NewAddressRepository() *AddressRepository {
	return &AddressRepository{}
}

func (r *AddressRepository) Create(ctx context.Context, tx db.DBTX, params shared.CreateAddressParams) (uuid.UUID, error) {
	if params.IsDefault {
		if _, err := tx.Exec(ctx, `UPDATE addresses SET is_default = false WHERE user_id = $1`, params.UserID); err != nil {
			return uuid.Nil, classifyWriteErr("failed to clear default address", err)
		}
	}

	var id uuid.UUID
	err := tx.QueryRow(ctx, `
INSERT INTO addresses (user_id, label, line1, line2, city, state, pincode, is_default)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING id`,
		params.UserID, params.Label, params.Line1, params.Line2,
		params.City, params.State, params.Pincode, params.IsDefault,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, classifyWriteErr("failed to create address", err)
	}
	return id, nil
}

func (r *AddressRepository) Delete(ctx context.Context, tx db.DBTX, id, userID uuid.UUID) error {
	tag, err := tx.Exec(ctx, `DELETE FROM addresses WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return classifyWriteErr("failed to delete address", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("address not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *AddressRepository) SetDefault(ctx context.Context, tx db.DBTX, id, userID uuid.UUID) error {
	if _, err := tx.Exec(ctx, `UPDATE addresses SET is_default = false WHERE user_id = $1`, userID); err != nil {
		return classifyWriteErr("failed to clear default address", err)
	}
	tag, err := tx.Exec(ctx, `
UPDATE addresses
SET is_default = true, updated_at = now()
WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return classifyWriteErr("failed to set default address", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("address not found", nil, infra.KindNotFound)
	}
	return nil
}
