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

// GormSpendRepository implements ledger.SpendRepository using GORM
type GormSpendRepository struct {
	transactionAggregates
	db *gorm.DB
}

// NewGormSpendRepository creates a new GormSpendRepository
func NewGormSpendRepository(db *gorm.DB) *GormSpendRepository {
	return &GormSpendRepository{
		transactionAggregates: transactionAggregates{db: db, table: models.SpendModel{}.TableName()},
		db:                    db,
	}
}

// FindByIDForUser finds a spend owned by the user
func (r *GormSpendRepository) FindByIDForUser(ctx context.Context, userID, id int64) (*ledger.Spend, error) {
	var model models.SpendModel
	if err := r.db.WithContext(ctx).Where("user_id = ? AND id = ?", userID, id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError("Spend")
		}
		return nil, fmt.Errorf("find spend: %w", err)
	}
	return model.ToDomain(), nil
}

// FindAllForUser lists the user's spends, newest first
func (r *GormSpendRepository) FindAllForUser(ctx context.Context, userID int64) ([]ledger.Spend, error) {
	return r.find(ctx, r.db.Where("user_id = ?", userID).Order(newestFirst))
}

// FindRecentForUser returns the latest spends, newest first
func (r *GormSpendRepository) FindRecentForUser(ctx context.Context, userID int64, limit int) ([]ledger.Spend, error) {
	return r.find(ctx, r.db.Where("user_id = ?", userID).Order(newestFirst).Limit(limit))
}

func (r *GormSpendRepository) find(ctx context.Context, query *gorm.DB) ([]ledger.Spend, error) {
	var rows []models.SpendModel
	if err := query.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list spends: %w", err)
	}
	spends := make([]ledger.Spend, len(rows))
	for i := range rows {
		spends[i] = *rows[i].ToDomain()
	}
	return spends, nil
}

// Save inserts a new spend or replaces the entry fields of an existing one.
// Updates are scoped to the owner, a miss is NOT_FOUND.
func (r *GormSpendRepository) Save(ctx context.Context, spend *ledger.Spend) error {
	model := models.SpendModelFromDomain(spend)
	if spend.IsNew() {
		if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
			return fmt.Errorf("create spend: %w", err)
		}
		spend.ID = model.ID
		return nil
	}

	result := r.db.WithContext(ctx).Model(model).
		Where("user_id = ?", spend.UserID).
		Select(models.SpendColumns).
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("update spend: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.NewNotFoundError("Spend")
	}
	return nil
}

// Delete removes a spend by id
func (r *GormSpendRepository) Delete(ctx context.Context, id int64) error {
	return r.delete(ctx, r.db.Where("id = ?", id))
}

// DeleteForUser removes a spend by id only when the user owns it
func (r *GormSpendRepository) DeleteForUser(ctx context.Context, userID, id int64) error {
	return r.delete(ctx, r.db.Where("user_id = ? AND id = ?", userID, id))
}

func (r *GormSpendRepository) delete(ctx context.Context, query *gorm.DB) error {
	result := query.WithContext(ctx).Delete(&models.SpendModel{})
	if result.Error != nil {
		return fmt.Errorf("delete spend: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.NewNotFoundError("Spend")
	}
	return nil
}

var _ ledger.SpendRepository = (*GormSpendRepository)(nil)
