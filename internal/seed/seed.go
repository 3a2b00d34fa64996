package seed

import (
	"log/slog"

	"github.com/studybridge/backend/internal/domain"
	"github.com/studybridge/backend/internal/hasher"
	"github.com/studybridge/backend/internal/repository"
)

type demoAccount struct {
	name  string
	email string
	role  domain.Role
}

var demoAccounts = []demoAccount{
	{name: "Alice Chen", email: "alice@studybridge.local", role: domain.RoleSenior},
	{name: "Bob Patel", email: "bob@studybridge.local", role: domain.RoleSenior},
	{name: "Carol Singh", email: "carol@studybridge.local", role: domain.RoleStudent},
	{name: "David Lee", email: "david@studybridge.local", role: domain.RoleStudent},
}

var demoSubmissions = []*domain.Submission{
	{
		Username:  "Alice Chen",
		Password:  "pw123",
		FilePaths: []string{"uploads/1735689600000-calculus-week1.pdf", "uploads/1735689600001-calculus-week2.pdf"},
		Links:     "https://example.com/calculus-playlist",
		Subject:   "Math",
	},
	{
		Username:  "Bob Patel",
		Password:  "pw456",
		FilePaths: []string{"uploads/1735693200000-mechanics-summary.pdf"},
		Links:     "",
		Subject:   "Physics",
	},
}

// SeedDemoData inserts a fixed, recognizable data set for local frontend
// work. Duplicate emails from repeated runs are skipped, not fatal.
func SeedDemoData(r *repository.Repository, password string) {
	inserted := 0
	for _, da := range demoAccounts {
		passwordHash, err := hasher.Hash(password)
		if err != nil {
			slog.Error("unable to hash demo password", "error", err)
			return
		}

		account := &domain.Account{
			Name:         da.name,
			Email:        da.email,
			PasswordHash: passwordHash,
			Role:         da.role,
		}

		if err := r.CreateAccount(account); err != nil {
			slog.Error("unable to insert demo account", "email", da.email, "error", err)
			continue
		}
		inserted++
	}
	slog.Info("demo accounts inserted", "count", inserted)

	inserted = 0
	for _, submission := range demoSubmissions {
		if err := r.CreateSubmission(submission); err != nil {
			slog.Error("unable to insert demo submission", "username", submission.Username, "error", err)
			continue
		}
		inserted++
	}
	slog.Info("demo submissions inserted", "count", inserted)
}
