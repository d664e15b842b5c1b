package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/finboard/backend/internal/domain/ledger"
	"github.com/finboard/backend/internal/domain/shared"
	"github.com/finboard/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormIncomeRepository implements ledger.IncomeRepository using GORM
type GormIncomeRepository struct {
	transactionAggregates
	db *gorm.DB
}

// NewGormIncomeRepository creates a new GormIncomeRepository
func NewGormIncomeRepository(db *gorm.DB) *GormIncomeRepository {
	return &GormIncomeRepository{
		transactionAggregates: transactionAggregates{db: db, table: models.IncomeModel{}.TableName()},
		db:                    db,
	}
}

// FindByIDForUser finds an income owned by the user
func (r *GormIncomeRepository) FindByIDForUser(ctx context.Context, userID, id int64) (*ledger.Income, error) {
	var model models.IncomeModel
	if err := r.db.WithContext(ctx).Where("user_id = ? AND id = ?", userID, id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError("Income")
		}
		return nil, fmt.Errorf("find income: %w", err)
	}
	return model.ToDomain(), nil
}

// FindAllForUser lists the user's incomes, newest first
func (r *GormIncomeRepository) FindAllForUser(ctx context.Context, userID int64) ([]ledger.Income, error) {
	return r.find(ctx, r.db.Where("user_id = ?", userID).Order(newestFirst))
}

// FindRecentForUser returns the latest incomes, newest first
func (r *GormIncomeRepository) FindRecentForUser(ctx context.Context, userID int64, limit int) ([]ledger.Income, error) {
	return r.find(ctx, r.db.Where("user_id = ?", userID).Order(newestFirst).Limit(limit))
}

func (r *GormIncomeRepository) find(ctx context.Context, query *gorm.DB) ([]ledger.Income, error) {
	var rows []models.IncomeModel
	if err := query.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list incomes: %w", err)
	}
	incomes := make([]ledger.Income, len(rows))
	for i := range rows {
		incomes[i] = *rows[i].ToDomain()
	}
	return incomes, nil
}

// Save inserts a new income or replaces the entry fields of an existing one.
// Updates are scoped to the owner, a miss is NOT_FOUND.
func (r *GormIncomeRepository) Save(ctx context.Context, income *ledger.Income) error {
	model := models.IncomeModelFromDomain(income)
	if income.IsNew() {
		if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
			return fmt.Errorf("create income: %w", err)
		}
		income.ID = model.ID
		return nil
	}

	result := r.db.WithContext(ctx).Model(model).
		Where("user_id = ?", income.UserID).
		Select(models.EntryColumns).
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("update income: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.NewNotFoundError("Income")
	}
	return nil
}

// Delete removes an income by id
func (r *GormIncomeRepository) Delete(ctx context.Context, id int64) error {
	return r.delete(ctx, r.db.Where("id = ?", id))
}

// DeleteForUser removes an income by id only when the user owns it
func (r *GormIncomeRepository) DeleteForUser(ctx context.Context, userID, id int64) error {
	return r.delete(ctx, r.db.Where("user_id = ? AND id = ?", userID, id))
}

func (r *GormIncomeRepository) delete(ctx context.Context, query *gorm.DB) error {
	result := query.WithContext(ctx).Delete(&models.IncomeModel{})
	if result.Error != nil {
		return fmt.Errorf("delete income: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.NewNotFoundError("Income")
	}
	return nil
}

var _ ledger.IncomeRepository = (*GormIncomeRepository)(nil)
