package ledger

import (
	"strings"

	"github.com/finboard/backend/internal/domain/shared"
)

const maxStatusLength = 50

// Spend is a dated amount paid out by a user. StatusSpend is a free-form
// tag such as "pending" or "paid".
type Spend struct {
	shared.BaseEntity
	UserID int64
	Entry
	StatusSpend string
}

// NewSpend creates a validated spend record
func NewSpend(userID int64, entry Entry, status string) (*Spend, error) {
	if err := validateOwner(userID); err != nil {
		return nil, err
	}
	s := &Spend{
		BaseEntity: shared.NewBaseEntity(),
		UserID:     userID,
	}
	if err := s.Replace(entry, status); err != nil {
		return nil, err
	}
	s.UpdatedAt = s.CreatedAt
	return s, nil
}

// Replace overwrites every mutable field. Ownership never changes.
func (s *Spend) Replace(entry Entry, status string) error {
	entry = entry.normalize()
	if err := entry.Validate(); err != nil {
		return err
	}
	status = strings.TrimSpace(status)
	if len(status) > maxStatusLength {
		return shared.NewDomainError("INVALID_STATUS", "Status cannot exceed 50 characters")
	}
	s.Entry = entry
	s.StatusSpend = status
	s.Touch()
	return nil
}
