package service

import (
	"database/sql"
	"errors"

	"github.com/studybridge/backend/internal/domain"
	"github.com/studybridge/backend/internal/hasher"
	"github.com/studybridge/backend/internal/repository"
)

type CredentialService struct {
	accounts AccountStore
}

func NewCredentialService(accounts AccountStore) *CredentialService {
	return &CredentialService{accounts: accounts}
}

// SignUp creates an account with a hashed secret. The email pre-check
// gives the friendly error; the store's unique constraint stays
// authoritative for the race two concurrent signups can hit.
func (s *CredentialService) SignUp(name, email, password string, role domain.Role) (*domain.Account, error) {
	if name == "" {
		return nil, &ValidationError{Field: "name"}
	}
	if email == "" {
		return nil, &ValidationError{Field: "email"}
	}
	if password == "" {
		return nil, &ValidationError{Field: "password"}
	}
	if role == "" {
		return nil, &ValidationError{Field: "role"}
	}

	exists, err := s.accounts.CheckEmailIfExists(email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicateAccount
	}

	passwordHash, err := hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	account := &domain.Account{
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         role,
	}

	if err := s.accounts.CreateAccount(account); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, ErrDuplicateAccount
		}
		return nil, err
	}

	return account, nil
}

// Login verifies the secret and returns the stored identity. Unknown
// account and wrong password stay distinct outcomes on purpose.
func (s *CredentialService) Login(email, password string) (*domain.Account, error) {
	if email == "" {
		return nil, &ValidationError{Field: "email"}
	}
	if password == "" {
		return nil, &ValidationError{Field: "password"}
	}

	account, err := s.accounts.GetAccountByEmail(email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUnknownAccount
		}
		return nil, err
	}

	ok, err := hasher.Verify(password, account.PasswordHash)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrBadCredential
	}

	return account, nil
}
