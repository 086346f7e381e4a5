package user

import (
	"time"

	"github.com/google/uuid"
)

// User represents a row in the users table. GoogleID is the external OAuth
// subject and is unique; a user is created on first successful login.
type User struct {
	ID        uuid.UUID
	GoogleID  string
	Email     string
	Name      string
	Picture   string
	IsAdmin   bool
	CreatedAt time.Time
}

// WithProfileCount is a User enriched with the number of profiles they own,
// as returned by admin listings.
type WithProfileCount struct {
	User
	ProfileCount int
}

// Stats holds the aggregate numbers shown on the admin dashboard.
type Stats struct {
	TotalUsers    int
	TotalProfiles int
	AdminUsers    int
	RecentUsers   int // created within the trailing 7 days
}
