package repository

import (
	"context"

	"github.com/google/uuid"

	"rentimade/internal/infra/db"
)

type BankDetailsRepository struct{}

func NewBankDetailsRepository() *BankDetailsRepository {
	return &BankDetailsRepository{}
}

func (r *BankDetailsRepository) Upsert(ctx context.Context, tx db.DBTX, userID uuid.UUID, accountHolder, accountNumber, ifsc string) error {
	_, err := tx.Exec(ctx, `
INSERT INTO bank_details (user_id, account_holder, account_number, ifsc)
VALUES ($1, $2, $3, $4)
ON CONFLICT (user_id) DO UPDATE
SET account_holder = EXCLUDED.account_holder,
    account_number = EXCLUDED.account_number,
    ifsc = EXCLUDED.ifsc,
    updated_at = now()`, userID, accountHolder, accountNumber, ifsc)
	if err != nil {
		return classifyWriteErr("failed to upsert bank details", err)
	}
	return nil
}
