package readstore

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"rentimade/internal/infra"
	"rentimade/internal/infra/db"
	"rentimade/internal/pkg/pgconv"
	"rentimade/internal/usecase/queries"
)

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(dbtx db.DBTX) *UserReadStore {
	return &UserReadStore{db: dbtx}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	var uv queries.AuthorizedUserView
	err := r.db.QueryRow(ctx, `
SELECT id, email, name, role, is_active
FROM users
WHERE id = $1`, id).Scan(&uv.ID, &uv.Email, &uv.Name, &uv.Role, &uv.IsActive)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get user by id", err)
	}
	return &uv, nil
}

func (r *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	var (
		uv           queries.AuthorizedUserView
		passwordHash string
	)
	err := r.db.QueryRow(ctx, `
SELECT id, email, name, role, is_active, password_hash
FROM users
WHERE email = $1`, email).Scan(&uv.ID, &uv.Email, &uv.Name, &uv.Role, &uv.IsActive, &passwordHash)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to get user by email", err)
	}
	return &uv, passwordHash, nil
}

func (r *UserReadStore) FindAddresses(ctx context.Context, userID uuid.UUID) ([]*queries.AddressView, error) {
	rows, err := r.db.Query(ctx, `
SELECT id, label, line1, line2, city, state, pincode, is_default
FROM addresses
WHERE user_id = $1
ORDER BY is_default DESC, created_at DESC`, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list addresses", err)
	}
	defer rows.Close()

	var views []*queries.AddressView
	for rows.Next() {
		var av queries.AddressView
		if err := rows.Scan(&av.ID, &av.Label, &av.Line1, &av.Line2, &av.City, &av.State, &av.Pincode, &av.IsDefault); err != nil {
			return nil, infra.WrapRepoErr("failed to scan address", err)
		}
		views = append(views, &av)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate addresses", err)
	}
	return views, nil
}

func (r *UserReadStore) FindBankDetails(ctx context.Context, userID uuid.UUID) (*queries.BankDetailsView, error) {
	var (
		holder  string
		account string
		ifsc    string
	)
	err := r.db.QueryRow(ctx, `
SELECT account_holder, account_number, ifsc
FROM bank_details
WHERE user_id = $1`, userID).Scan(&holder, &account, &ifsc)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("bank details not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get bank details", err)
	}
	return &queries.BankDetailsView{
		AccountHolder:       holder,
		AccountNumberMasked: maskAccountNumber(account),
		IFSC:                ifsc,
	}, nil
}

// GetEarnings counts only rentals the renter has returned; deposits go
// back to the renter and never count as income.
func (r *UserReadStore) GetEarnings(ctx context.Context, lenderID uuid.UUID) (*queries.EarningsView, error) {
	ev := queries.EarningsView{LenderID: lenderID}
	err := r.db.QueryRow(ctx, `
SELECT COUNT(*), COALESCE(SUM(rent_paise), 0)
FROM orders
WHERE lender_id = $1 AND status = 'returned'`, lenderID).Scan(&ev.CompletedCount, &ev.TotalRentPaise)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get earnings", err)
	}
	return &ev, nil
}

func (r *UserReadStore) FindAllFirstPage(ctx context.Context, limit int32) ([]*queries.UserListItem, error) {
	rows, err := r.db.Query(ctx, `
SELECT id, email, name, role, is_active, last_login, created_at
FROM users
ORDER BY created_at DESC, id DESC
LIMIT $1`, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list users", err)
	}
	defer rows.Close()
	return scanUserListItems(rows)
}

func (r *UserReadStore) FindAllKeyset(ctx context.Context, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.UserListItem, error) {
	rows, err := r.db.Query(ctx, `
SELECT id, email, name, role, is_active, last_login, created_at
FROM users
WHERE (created_at, id) < ($1, $2)
ORDER BY created_at DESC, id DESC
LIMIT $3`, lastCreatedAt, lastID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list users keyset", err)
	}
	defer rows.Close()
	return scanUserListItems(rows)
}

func scanUserListItems(rows pgx.Rows) ([]*queries.UserListItem, error) {
	var items []*queries.UserListItem
	for rows.Next() {
		var (
			item      queries.UserListItem
			lastLogin pgtype.Timestamptz
		)
		if err := rows.Scan(&item.ID, &item.Email, &item.Name, &item.Role, &item.IsActive, &lastLogin, &item.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan user list item", err)
		}
		item.LastLogin = pgconv.TimePtrFromPgtype(lastLogin)
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate user list items", err)
	}
	return items, nil
}

func maskAccountNumber(account string) string {
	if len(account) <= 4 {
		return account
	}
	masked := make([]byte, len(account))
	for i := range masked {
		if i < len(account)-4 {
			masked[i] = 'X'
		} else {
			masked[i] = account[i]
		}
	}
	return string(masked)
}
