package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/studybridge/backend/internal/domain"
)

// ErrDuplicateEmail is the authoritative duplicate signal: the unique
// constraint catches the race the existence pre-check cannot close.
var ErrDuplicateEmail = errors.New("email already exists")

func (r *Repository) GetAccountByEmail(email string) (*domain.Account, error) {
	query := `
		SELECT id, name, password_hash, role, created_at
		FROM accounts WHERE email = $1
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	account := &domain.Account{
		Email: email,
	}

	dst := []any{&account.ID, &account.Name, &account.PasswordHash, &account.Role, &account.CreatedAt}
	if err := r.dbpool.QueryRowContext(ctx, query, email).Scan(dst...); err != nil {
		return nil, err
	}

	return account, nil
}

func (r *Repository) CreateAccount(account *domain.Account) error {
	query := `
		INSERT INTO accounts (name, email, password_hash, role)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	args := []any{account.Name, account.Email, account.PasswordHash, account.Role}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&account.ID, &account.CreatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.ConstraintName == "accounts_email_key" {
			return ErrDuplicateEmail
		}
		return err
	}

	return nil
}

func (r *Repository) GetAllAccounts() ([]*domain.Account, error) {
	query := `
		SELECT id, name, email, password_hash, role, created_at FROM accounts
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	accounts := make([]*domain.Account, 0)
	for rows.Next() {
		account := &domain.Account{}
		dst := []any{&account.ID, &account.Name, &account.Email, &account.PasswordHash, &account.Role, &account.CreatedAt}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		accounts = append(accounts, account)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return accounts, nil
}

func (r *Repository) CheckEmailIfExists(email string) (bool, error) {
	isExists := false

	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		SELECT EXISTS (SELECT 1 FROM accounts WHERE email = $1)
	`
	if err := r.dbpool.QueryRowContext(ctx, query, email).Scan(&isExists); err != nil {
		return false, err
	}

	return isExists, nil
}
