package service

import "github.com/studybridge/backend/internal/domain"

// Store interfaces are satisfied by *repository.Repository; tests swap in
// fakes. Lookups signal absence with sql.ErrNoRows.

type AccountStore interface {
	GetAccountByEmail(email string) (*domain.Account, error)
	CheckEmailIfExists(email string) (bool, error)
	CreateAccount(account *domain.Account) error
}

type SubmissionStore interface {
	CreateSubmission(submission *domain.Submission) error
	GetSubmissionsByOwner(username string) ([]*domain.Submission, error)
	GetAllSubmissions() ([]*domain.Submission, error)
}
