package ledger

import (
	"strings"

	"github.com/finboard/backend/internal/domain/shared"
)

// DefaultDisplayName is shown when a user has no profile row
const DefaultDisplayName = "User"

// User is the profile used for the dashboard display name
type User struct {
	shared.BaseEntity
	Name string
}

// NewUser creates a user profile
func NewUser(name string) (*User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Name cannot be empty")
	}
	if len(name) > 100 {
		return nil, shared.NewDomainError("INVALID_NAME", "Name cannot exceed 100 characters")
	}
	return &User{BaseEntity: shared.NewBaseEntity(), Name: name}, nil
}

// DisplayName returns the user's name, or the default for a missing profile
func DisplayName(u *User) string {
	if u == nil || strings.TrimSpace(u.Name) == "" {
		return DefaultDisplayName
	}
	return u.Name
}
