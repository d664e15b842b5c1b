package ledger

import (
	"time"

	"github.com/finboard/backend/internal/domain/ledger"
)

// IncomeResponse represents an income record in API responses
type IncomeResponse struct {
	ID          int64     `json:"id"`
	Category    string    `json:"category"`
	Date        time.Time `json:"date"`
	Value       float64   `json:"value"`
	Description string    `json:"description"`
	People      string    `json:"people"`
	UserID      int64     `json:"userId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// SpendResponse represents a spend record in API responses
type SpendResponse struct {
	ID          int64     `json:"id"`
	Category    string    `json:"category"`
	Date        time.Time `json:"date"`
	Value       float64   `json:"value"`
	StatusSpend string    `json:"statusSpend"`
	Description string    `json:"description"`
	People      string    `json:"people"`
	UserID      int64     `json:"userId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// AccountResponse represents an account in API responses
type AccountResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	Balance   float64   `json:"balance"`
	UserID    int64     `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}

// SubcategoryResponse is the child row of a category
type SubcategoryResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// CategoryResponse represents a category with its subcategory
type CategoryResponse struct {
	ID            int64               `json:"id"`
	Name          string              `json:"name"`
	UserID        int64               `json:"userId"`
	SubcategoryID int64               `json:"subcategoryId"`
	Subcategory   SubcategoryResponse `json:"subcategory"`
	CreatedAt     time.Time           `json:"createdAt"`
}

// UserResponse represents a user profile
type UserResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToIncomeResponse converts a domain income
func ToIncomeResponse(i *ledger.Income) IncomeResponse {
	return IncomeResponse{
		ID:          i.ID,
		Category:    i.Category,
		Date:        i.Date,
		Value:       i.Value.InexactFloat64(),
		Description: i.Description,
		People:      i.People,
		UserID:      i.UserID,
		CreatedAt:   i.CreatedAt,
		UpdatedAt:   i.UpdatedAt,
	}
}

// ToSpendResponse converts a domain spend
func ToSpendResponse(s *ledger.Spend) SpendResponse {
	return SpendResponse{
		ID:          s.ID,
		Category:    s.Category,
		Date:        s.Date,
		Value:       s.Value.InexactFloat64(),
		StatusSpend: s.StatusSpend,
		Description: s.Description,
		People:      s.People,
		UserID:      s.UserID,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

// ToIncomeResponses converts a list, returning an empty (non-nil) slice for no rows
func ToIncomeResponses(incomes []ledger.Income) []IncomeResponse {
	out := make([]IncomeResponse, 0, len(incomes))
	for i := range incomes {
		out = append(out, ToIncomeResponse(&incomes[i]))
	}
	return out
}

// ToSpendResponses converts a list, returning an empty (non-nil) slice for no rows
func ToSpendResponses(spends []ledger.Spend) []SpendResponse {
	out := make([]SpendResponse, 0, len(spends))
	for i := range spends {
		out = append(out, ToSpendResponse(&spends[i]))
	}
	return out
}

func toAccountResponse(a *ledger.Account) AccountResponse {
	return AccountResponse{
		ID:        a.ID,
		Name:      a.Name,
		Type:      a.Type,
		Balance:   a.Balance.InexactFloat64(),
		UserID:    a.UserID,
		CreatedAt: a.CreatedAt,
	}
}

func toCategoryResponse(c *ledger.Category) CategoryResponse {
	resp := CategoryResponse{
		ID:            c.ID,
		Name:          c.Name,
		UserID:        c.UserID,
		SubcategoryID: c.SubcategoryID,
		CreatedAt:     c.CreatedAt,
	}
	if c.Subcategory != nil {
		resp.Subcategory = SubcategoryResponse{ID: c.Subcategory.ID, Name: c.Subcategory.Name}
	}
	return resp
}

func toUserResponse(u *ledger.User) UserResponse {
	return UserResponse{ID: u.ID, Name: u.Name, CreatedAt: u.CreatedAt}
}
