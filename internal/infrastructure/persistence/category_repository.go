package persistence

import (
	"context"
	"fmt"

	"github.com/finboard/backend/internal/domain/ledger"
	"github.com/finboard/backend/internal/domain/shared"
	"github.com/finboard/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormCategoryRepository implements ledger.CategoryRepository using GORM
type GormCategoryRepository struct {
	db *gorm.DB
}

// NewGormCategoryRepository creates a new GormCategoryRepository
func NewGormCategoryRepository(db *gorm.DB) *GormCategoryRepository {
	return &GormCategoryRepository{db: db}
}

// Save writes the subcategory and then the category that links to it, in
// one transaction. Generated ids are copied back onto the entity.
func (r *GormCategoryRepository) Save(ctx context.Context, category *ledger.Category) error {
	if category.Subcategory == nil {
		return shared.NewDomainError("INVALID_SUBCATEGORY", "Category requires a subcategory")
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		sub := models.SubcategoryModelFromDomain(category.Subcategory)
		if err := tx.Save(sub).Error; err != nil {
			return fmt.Errorf("save subcategory: %w", err)
		}

		category.SubcategoryID = sub.ID
		model := models.CategoryModelFromDomain(category)
		if err := tx.Omit("Subcategory").Save(model).Error; err != nil {
			return fmt.Errorf("save category: %w", err)
		}

		category.Subcategory.ID = sub.ID
		category.ID = model.ID
		return nil
	})
}

var _ ledger.CategoryRepository = (*GormCategoryRepository)(nil)
