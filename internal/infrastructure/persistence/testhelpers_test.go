package persistence

import (
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/finboard/backend/internal/domain/ledger"
	"github.com/finboard/backend/internal/infrastructure/persistence/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newSQLiteDB opens an isolated in-memory database with the schema applied
func newSQLiteDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(models.All()...))
	return db
}

// newMockDB opens a postgres-dialect gorm DB over sqlmock
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})
	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	return gormDB, mock, mockDB
}

func at(day, hour int) time.Time {
	return time.Date(2024, time.May, day, hour, 0, 0, 0, time.Local)
}

func entry(category string, value int64, date time.Time) ledger.Entry {
	return ledger.Entry{
		Category:    category,
		Date:        date,
		Value:       decimal.NewFromInt(value),
		Description: category + " entry",
		People:      "me",
	}
}

func seedIncome(t *testing.T, repo *GormIncomeRepository, userID int64, e ledger.Entry) *ledger.Income {
	t.Helper()
	income, err := ledger.NewIncome(userID, e)
	require.NoError(t, err)
	require.NoError(t, repo.Save(t.Context(), income))
	return income
}

func seedSpend(t *testing.T, repo *GormSpendRepository, userID int64, e ledger.Entry, status string) *ledger.Spend {
	t.Helper()
	spend, err := ledger.NewSpend(userID, e, status)
	require.NoError(t, err)
	require.NoError(t, repo.Save(t.Context(), spend))
	return spend
}
