package service

import (
	"strings"

	"github.com/studybridge/backend/internal/domain"
)

type QueryService struct {
	submissions SubmissionStore
	baseURL     string
}

func NewQueryService(submissions SubmissionStore, baseURL string) *QueryService {
	return &QueryService{
		submissions: submissions,
		baseURL:     strings.TrimSuffix(baseURL, "/"),
	}
}

// ListByOwner returns the owner's submissions with locators resolved
// against the server base URL. No submissions is a distinct not-found
// outcome, not an empty list; the frontend depends on that.
func (s *QueryService) ListByOwner(owner string) ([]*domain.Submission, error) {
	submissions, err := s.submissions.GetSubmissionsByOwner(owner)
	if err != nil {
		return nil, err
	}
	if len(submissions) == 0 {
		return nil, ErrNoSubmissions
	}

	return s.resolveAll(submissions), nil
}

func (s *QueryService) ListAll() ([]*domain.Submission, error) {
	submissions, err := s.submissions.GetAllSubmissions()
	if err != nil {
		return nil, err
	}
	if len(submissions) == 0 {
		return nil, ErrNoSubmissions
	}

	return s.resolveAll(submissions), nil
}

// resolveAll rewrites stored relative locators into absolute ones. The
// projection happens at the boundary only; nothing is written back.
func (s *QueryService) resolveAll(submissions []*domain.Submission) []*domain.Submission {
	resolved := make([]*domain.Submission, 0, len(submissions))
	for _, submission := range submissions {
		filePaths := make([]string, len(submission.FilePaths))
		for i, p := range submission.FilePaths {
			filePaths[i] = s.baseURL + "/" + strings.TrimPrefix(p, "/")
		}

		copied := *submission
		copied.FilePaths = filePaths
		resolved = append(resolved, &copied)
	}

	return resolved
}
