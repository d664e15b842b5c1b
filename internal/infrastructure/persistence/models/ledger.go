package models

import (
	"time"

	"github.com/finboard/backend/internal/domain/ledger"
	"github.com/shopspring/decimal"
)

// EntryColumns are the columns rewritten by a full-field update.
// Date and Value are stored as occurred_at and amount.
var EntryColumns = []string{"category", "occurred_at", "amount", "description", "people", "updated_at"}

// SpendColumns adds the spend status to EntryColumns
var SpendColumns = append(append([]string{}, EntryColumns...), "status_spend")

// IncomeModel is the persistence model for Income
type IncomeModel struct {
	BaseModel
	UserID      int64           `gorm:"not null;index:idx_incomes_user_date,priority:1"`
	Category    string          `gorm:"type:varchar(100);not null"`
	Date        time.Time       `gorm:"column:occurred_at;not null;index:idx_incomes_user_date,priority:2"`
	Value       decimal.Decimal `gorm:"column:amount;type:decimal(18,4);not null"`
	Description string          `gorm:"type:varchar(500)"`
	People      string          `gorm:"type:varchar(255)"`
}

// TableName returns the table name for GORM
func (IncomeModel) TableName() string {
	return "incomes"
}

// ToDomain converts the model to a domain Income
func (m *IncomeModel) ToDomain() *ledger.Income {
	return &ledger.Income{
		BaseEntity: m.BaseModel.ToDomain(),
		UserID:     m.UserID,
		Entry: ledger.Entry{
			Category:    m.Category,
			Date:        m.Date,
			Value:       m.Value,
			Description: m.Description,
			People:      m.People,
		},
	}
}

// FromDomain populates the model from a domain Income
func (m *IncomeModel) FromDomain(i *ledger.Income) {
	m.FromDomainBaseEntity(i.BaseEntity)
	m.UserID = i.UserID
	m.Category = i.Category
	m.Date = i.Date
	m.Value = i.Value
	m.Description = i.Description
	m.People = i.People
}

// IncomeModelFromDomain creates a model from a domain Income
func IncomeModelFromDomain(i *ledger.Income) *IncomeModel {
	m := &IncomeModel{}
	m.FromDomain(i)
	return m
}

// SpendModel is the persistence model for Spend
type SpendModel struct {
	BaseModel
	UserID      int64           `gorm:"not null;index:idx_spends_user_date,priority:1"`
	Category    string          `gorm:"type:varchar(100);not null"`
	Date        time.Time       `gorm:"column:occurred_at;not null;index:idx_spends_user_date,priority:2"`
	Value       decimal.Decimal `gorm:"column:amount;type:decimal(18,4);not null"`
	StatusSpend string          `gorm:"type:varchar(50)"`
	Description string          `gorm:"type:varchar(500)"`
	People      string          `gorm:"type:varchar(255)"`
}

// TableName returns the table name for GORM
func (SpendModel) TableName() string {
	return "spends"
}

// ToDomain converts the model to a domain Spend
func (m *SpendModel) ToDomain() *ledger.Spend {
	return &ledger.Spend{
		BaseEntity: m.BaseModel.ToDomain(),
		UserID:     m.UserID,
		Entry: ledger.Entry{
			Category:    m.Category,
			Date:        m.Date,
			Value:       m.Value,
			Description: m.Description,
			People:      m.People,
		},
		StatusSpend: m.StatusSpend,
	}
}

// FromDomain populates the model from a domain Spend
func (m *SpendModel) FromDomain(s *ledger.Spend) {
	m.FromDomainBaseEntity(s.BaseEntity)
	m.UserID = s.UserID
	m.Category = s.Category
	m.Date = s.Date
	m.Value = s.Value
	m.StatusSpend = s.StatusSpend
	m.Description = s.Description
	m.People = s.People
}

// SpendModelFromDomain creates a model from a domain Spend
func SpendModelFromDomain(s *ledger.Spend) *SpendModel {
	m := &SpendModel{}
	m.FromDomain(s)
	return m
}

// UserModel is the persistence model for User
type UserModel struct {
	BaseModel
	Name string `gorm:"type:varchar(100);not null"`
}

// TableName returns the table name for GORM
func (UserModel) TableName() string {
	return "users"
}

// ToDomain converts the model to a domain User
func (m *UserModel) ToDomain() *ledger.User {
	return &ledger.User{BaseEntity: m.BaseModel.ToDomain(), Name: m.Name}
}

// UserModelFromDomain creates a model from a domain User
func UserModelFromDomain(u *ledger.User) *UserModel {
	m := &UserModel{Name: u.Name}
	m.FromDomainBaseEntity(u.BaseEntity)
	return m
}

// AccountModel is the persistence model for Account
type AccountModel struct {
	BaseModel
	UserID  int64           `gorm:"not null;index"`
	Name    string          `gorm:"type:varchar(100);not null"`
	Type    string          `gorm:"type:varchar(50);not null"`
	Balance decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
}

// TableName returns the table name for GORM
func (AccountModel) TableName() string {
	return "accounts"
}

// ToDomain converts the model to a domain Account
func (m *AccountModel) ToDomain() *ledger.Account {
	return &ledger.Account{
		BaseEntity: m.BaseModel.ToDomain(),
		UserID:     m.UserID,
		Name:       m.Name,
		Type:       m.Type,
		Balance:    m.Balance,
	}
}

// AccountModelFromDomain creates a model from a domain Account
func AccountModelFromDomain(a *ledger.Account) *AccountModel {
	m := &AccountModel{
		UserID:  a.UserID,
		Name:    a.Name,
		Type:    a.Type,
		Balance: a.Balance,
	}
	m.FromDomainBaseEntity(a.BaseEntity)
	return m
}

// SubcategoryModel is the persistence model for Subcategory
type SubcategoryModel struct {
	BaseModel
	Name string `gorm:"type:varchar(100);not null"`
}

// TableName returns the table name for GORM
func (SubcategoryModel) TableName() string {
	return "subcategories"
}

// CategoryModel is the persistence model for Category
type CategoryModel struct {
	BaseModel
	UserID        int64             `gorm:"not null;index"`
	Name          string            `gorm:"type:varchar(100);not null"`
	SubcategoryID int64             `gorm:"not null;uniqueIndex"`
	Subcategory   *SubcategoryModel `gorm:"foreignKey:SubcategoryID"`
}

// TableName returns the table name for GORM
func (CategoryModel) TableName() string {
	return "categories"
}

// ToDomain converts the model to a domain Category
func (m *CategoryModel) ToDomain() *ledger.Category {
	c := &ledger.Category{
		BaseEntity:    m.BaseModel.ToDomain(),
		UserID:        m.UserID,
		Name:          m.Name,
		SubcategoryID: m.SubcategoryID,
	}
	if m.Subcategory != nil {
		c.Subcategory = &ledger.Subcategory{
			BaseEntity: m.Subcategory.BaseModel.ToDomain(),
			Name:       m.Subcategory.Name,
		}
	}
	return c
}

// CategoryModelFromDomain creates a model from a domain Category. The
// subcategory is mapped separately since it is written first.
func CategoryModelFromDomain(c *ledger.Category) *CategoryModel {
	m := &CategoryModel{
		UserID:        c.UserID,
		Name:          c.Name,
		SubcategoryID: c.SubcategoryID,
	}
	m.FromDomainBaseEntity(c.BaseEntity)
	return m
}

// SubcategoryModelFromDomain creates a model from a domain Subcategory
func SubcategoryModelFromDomain(s *ledger.Subcategory) *SubcategoryModel {
	m := &SubcategoryModel{Name: s.Name}
	m.FromDomainBaseEntity(s.BaseEntity)
	return m
}

// All returns every model, in dependency order, for schema migration
func All() []any {
	return []any{
		&UserModel{},
		&AccountModel{},
		&SubcategoryModel{},
		&CategoryModel{},
		&IncomeModel{},
		&SpendModel{},
	}
}
