package domain

import "time"

// Submission records one batch upload. Username is a free-text correlator
// to Account.Name, not a foreign key; the store does not enforce the link.
type Submission struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Password  string    `json:"-"` // stored as submitted, never echoed back
	FilePaths []string  `json:"filePaths"`
	Links     string    `json:"links"`
	Subject   string    `json:"subject"`
	CreatedAt time.Time `json:"createdAt"`
}
