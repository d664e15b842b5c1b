package ledger

import "github.com/finboard/backend/internal/domain/shared"

// Income is a dated amount received by a user
type Income struct {
	shared.BaseEntity
	UserID int64
	Entry
}

// NewIncome creates a validated income record
func NewIncome(userID int64, entry Entry) (*Income, error) {
	if err := validateOwner(userID); err != nil {
		return nil, err
	}
	entry = entry.normalize()
	if err := entry.Validate(); err != nil {
		return nil, err
	}
	return &Income{
		BaseEntity: shared.NewBaseEntity(),
		UserID:     userID,
		Entry:      entry,
	}, nil
}

// Replace overwrites every mutable field. Ownership never changes.
func (i *Income) Replace(entry Entry) error {
	entry = entry.normalize()
	if err := entry.Validate(); err != nil {
		return err
	}
	i.Entry = entry
	i.Touch()
	return nil
}
