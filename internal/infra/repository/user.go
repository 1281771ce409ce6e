package repository

import (
	"context"

	"github.com/google/uuid"

	"rentimade/internal/infra"
	"rentimade/internal/infra/db"
	"rentimade/internal/usecase/shared"
)

type UserRepository struct{}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

func (r *UserRepository) Create(ctx context.Context, tx db.DBTX, params shared.CreateUserParams) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, `
INSERT INTO users (email, password_hash, name, phone, role)
VALUES ($1, $2, $3, $4, $5)
RETURNING id`,
		params.Email, params.PasswordHash, params.Name, params.Phone, params.Role,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, classifyWriteErr("failed to create user", err)
	}
	return id, nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, tx db.DBTX, userID uuid.UUID) error {
	_, err := tx.Exec(ctx, `UPDATE users SET last_login = now() WHERE id = $1`, userID)
	if err != nil {
		return classifyWriteErr("failed to update user last login", err)
	}
	return nil
}

func (r *UserRepository) UpdateProfile(ctx context.Context, tx db.DBTX, userID uuid.UUID, name string, phone *string) error {
	tag, err := tx.Exec(ctx, `
UPDATE users
SET name = $2, phone = $3, updated_at = now()
WHERE id = $1`, userID, name, phone)
	if err != nil {
		return classifyWriteErr("failed to update user profile", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *UserRepository) SetActive(ctx context.Context, tx db.DBTX, userID uuid.UUID, active bool) error {
	tag, err := tx.Exec(ctx, `
UPDATE users
SET is_active = $2, updated_at = now()
WHERE id = $1`, userID, active)
	if err != nil {
		return classifyWriteErr("failed to set user active flag", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *UserRepository) SetRole(ctx context.Context, tx db.DBTX, userID uuid.UUID, role string) error {
	tag, err := tx.Exec(ctx, `
UPDATE users
SET role = $2, updated_at = now()
WHERE id = $1`, userID, role)
	if err != nil {
		return classifyWriteErr("failed to set user role", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}
