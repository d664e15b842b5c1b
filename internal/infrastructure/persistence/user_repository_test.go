package persistence

import (
	"errors"
	"testing"

	"github.com/finboard/backend/internal/domain/ledger"
	"github.com/finboard/backend/internal/domain/shared"
	"github.com/finboard/backend/internal/infrastructure/persistence/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormUserRepository(t *testing.T) {
	repo := NewGormUserRepository(newSQLiteDB(t))
	ctx := t.Context()

	_, err := repo.FindByID(ctx, 1)
	assert.True(t, errors.Is(err, shared.ErrNotFound))

	user, err := ledger.NewUser("Ana")
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, user))
	require.NotZero(t, user.ID)

	found, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ana", found.Name)
}

func TestGormAccountRepository(t *testing.T) {
	db := newSQLiteDB(t)
	repo := NewGormAccountRepository(db)

	account, err := ledger.NewAccount(1, "Main", "bank", decimal.RequireFromString("1500.50"))
	require.NoError(t, err)
	require.NoError(t, repo.Save(t.Context(), account))
	require.NotZero(t, account.ID)

	var stored models.AccountModel
	require.NoError(t, db.First(&stored, account.ID).Error)
	assert.Equal(t, "bank", stored.Type)
	assert.True(t, stored.Balance.Equal(decimal.RequireFromString("1500.50")))
}

func TestGormCategoryRepository(t *testing.T) {
	db := newSQLiteDB(t)
	repo := NewGormCategoryRepository(db)

	category, err := ledger.NewCategory(1, "Food", "Groceries")
	require.NoError(t, err)
	require.NoError(t, repo.Save(t.Context(), category))

	require.NotZero(t, category.ID)
	require.NotZero(t, category.SubcategoryID)
	assert.Equal(t, category.SubcategoryID, category.Subcategory.ID)

	var stored models.CategoryModel
	require.NoError(t, db.Preload("Subcategory").First(&stored, category.ID).Error)
	require.NotNil(t, stored.Subcategory)
	assert.Equal(t, "Groceries", stored.Subcategory.Name)
	assert.Equal(t, "Food", stored.ToDomain().Name)
}

func TestGormCategoryRepository_RequiresSubcategory(t *testing.T) {
	repo := NewGormCategoryRepository(newSQLiteDB(t))

	err := repo.Save(t.Context(), &ledger.Category{UserID: 1, Name: "Food"})
	assert.Error(t, err)
}
