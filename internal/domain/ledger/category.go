package ledger

import (
	"strings"

	"github.com/finboard/backend/internal/domain/shared"
)

// Subcategory is the single child of a Category
type Subcategory struct {
	shared.BaseEntity
	Name string
}

// Category is a user-defined label linked one-to-one to a Subcategory.
// Aggregation groups by the free-text category on each record, not by this table.
type Category struct {
	shared.BaseEntity
	UserID        int64
	Name          string
	SubcategoryID int64
	Subcategory   *Subcategory
}

// NewCategory creates a category together with its subcategory. The
// subcategory id is filled in when both are persisted.
func NewCategory(userID int64, name, subcategoryName string) (*Category, error) {
	if err := validateOwner(userID); err != nil {
		return nil, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Category name cannot be empty")
	}
	subcategoryName = strings.TrimSpace(subcategoryName)
	if subcategoryName == "" {
		return nil, shared.NewDomainError("INVALID_SUBCATEGORY", "Subcategory name cannot be empty")
	}
	if len(name) > maxCategoryLength || len(subcategoryName) > maxCategoryLength {
		return nil, shared.NewDomainError("INVALID_NAME", "Category names cannot exceed 100 characters")
	}
	return &Category{
		BaseEntity: shared.NewBaseEntity(),
		UserID:     userID,
		Name:       name,
		Subcategory: &Subcategory{
			BaseEntity: shared.NewBaseEntity(),
			Name:       subcategoryName,
		},
	}, nil
}
