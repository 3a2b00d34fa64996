package repository

import (
	"database/sql"
	"encoding/json"

	"github.com/studybridge/backend/internal/domain"
)

func (r *Repository) CreateSubmission(submission *domain.Submission) error {
	// The whole batch is serialized into one jsonb value so the insert is
	// a single statement: either all locators land or none do.
	filePaths, err := json.Marshal(submission.FilePaths)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO submissions (username, password, file_paths, links, subject)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	args := []any{submission.Username, submission.Password, filePaths, submission.Links, submission.Subject}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&submission.ID, &submission.CreatedAt); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetSubmissionsByOwner(username string) ([]*domain.Submission, error) {
	query := `
		SELECT id, username, password, file_paths, links, subject, created_at
		FROM submissions WHERE username = $1
		ORDER BY id
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, username)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanSubmissions(rows)
}

func (r *Repository) GetAllSubmissions() ([]*domain.Submission, error) {
	query := `
		SELECT id, username, password, file_paths, links, subject, created_at
		FROM submissions
		ORDER BY id
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanSubmissions(rows)
}

func scanSubmissions(rows *sql.Rows) ([]*domain.Submission, error) {
	submissions := make([]*domain.Submission, 0)
	for rows.Next() {
		submission := &domain.Submission{}
		var filePaths []byte

		dst := []any{&submission.ID, &submission.Username, &submission.Password, &filePaths, &submission.Links, &submission.Subject, &submission.CreatedAt}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}

		if err := json.Unmarshal(filePaths, &submission.FilePaths); err != nil {
			return nil, err
		}

		submissions = append(submissions, submission)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return submissions, nil
}
