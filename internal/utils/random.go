package utils

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/studybridge/backend/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

var firstNames = []string{
	"Alice", "Bob", "Carol", "David", "Emma", "Frank", "Grace", "Henry",
	"Irene", "Jack", "Kavya", "Liam", "Maya", "Noah", "Olivia", "Priya",
	"Quinn", "Rahul", "Sara", "Tom",
}

var lastNames = []string{
	"Anderson", "Brown", "Chen", "Davis", "Evans", "Garcia", "Johnson",
	"Kumar", "Lee", "Martinez", "Nguyen", "Patel", "Reddy", "Singh",
	"Taylor", "Wilson",
}

func GenerateRandomName() string {
	return firstNames[rand.Intn(len(firstNames))] + " " + lastNames[rand.Intn(len(lastNames))]
}

var roles = []domain.Role{
	domain.RoleStudent,
	domain.RoleSenior,
}

func GenerateRandomRole() domain.Role {
	return roles[rand.Intn(len(roles))]
}

var digits = "0123456789"

func GenerateRandomAccount(password string, emailDomainName string) (*domain.Account, error) {
	name := GenerateRandomName()

	local := strings.ToLower(strings.ReplaceAll(name, " ", "."))
	for i := 0; i < 3; i++ {
		local += string(digits[rand.Intn(len(digits))])
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	account := &domain.Account{
		Name:         name,
		Email:        local + "@" + emailDomainName,
		PasswordHash: string(passwordHash),
		Role:         GenerateRandomRole(),
	}

	return account, nil
}

var subjects = []string{
	"Math", "Physics", "Chemistry", "Biology", "History",
	"Computer Science", "Economics", "Literature",
}

func GenerateRandomSubject() string {
	return subjects[rand.Intn(len(subjects))]
}

var letters = []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@#$%^&*")

func GenerateRandomPassword(length int) string {
	random_password := make([]rune, length)
	for i := range random_password {
		random_password[i] = letters[rand.Intn(len(letters))]
	}
	return string(random_password)
}

// GenerateRandomSubmission fabricates a plausible batch of 1-3 uploaded
// notes for the given account. The locators point at files the seeder
// never writes; they only exercise the listing endpoints.
func GenerateRandomSubmission(account *domain.Account) *domain.Submission {
	subject := GenerateRandomSubject()

	n := rand.Intn(3) + 1
	filePaths := make([]string, n)
	for i := range filePaths {
		filePaths[i] = fmt.Sprintf("uploads/%d-%s-notes-%d.pdf", rand.Int63n(1_700_000_000_000)+1_700_000_000_000, strings.ToLower(strings.ReplaceAll(subject, " ", "-")), i+1)
	}

	return &domain.Submission{
		Username:  account.Name,
		Password:  GenerateRandomPassword(10),
		FilePaths: filePaths,
		Links:     "https://example.com/" + strings.ToLower(strings.ReplaceAll(subject, " ", "-")),
		Subject:   subject,
	}
}
