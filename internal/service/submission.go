package service

import (
	"github.com/studybridge/backend/internal/domain"
)

type SubmissionService struct {
	submissions SubmissionStore
}

func NewSubmissionService(submissions SubmissionStore) *SubmissionService {
	return &SubmissionService{submissions: submissions}
}

// Ingest records one batch of already-persisted blobs. The locators must
// arrive in upload order; the whole batch lands in a single insert.
func (s *SubmissionService) Ingest(username, password, subject, links string, filePaths []string) (*domain.Submission, error) {
	if len(filePaths) == 0 {
		return nil, ErrNoFilesProvided
	}

	submission := &domain.Submission{
		Username:  username,
		Password:  password,
		FilePaths: filePaths,
		Links:     links,
		Subject:   subject,
	}

	if err := s.submissions.CreateSubmission(submission); err != nil {
		return nil, err
	}

	return submission, nil
}
