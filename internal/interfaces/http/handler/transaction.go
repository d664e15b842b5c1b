package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	ledgerapp "github.com/finboard/backend/internal/application/ledger"
	"github.com/finboard/backend/internal/domain/ledger"
	"github.com/finboard/backend/internal/interfaces/http/dto"
)

// entryRequest carries the fields shared by income and spend bodies
type entryRequest struct {
	Category    string           `json:"category" binding:"required,notblank,max=100"`
	Date        *dto.FlexTime    `json:"date" binding:"required"`
	Value       *decimal.Decimal `json:"value" binding:"required"`
	Description string           `json:"description" binding:"max=500"`
	People      string           `json:"people" binding:"max=255"`
	UserID      dto.FlexInt64    `json:"userId" binding:"required,gt=0"`
}

func (r entryRequest) entry() ledger.Entry {
	return ledger.Entry{
		Category:    r.Category,
		Date:        r.Date.Time,
		Value:       *r.Value,
		Description: r.Description,
		People:      r.People,
	}
}

// IncomeRequest is the body of income create and update
type IncomeRequest struct {
	entryRequest
}

// SpendRequest is the body of spend create and update
type SpendRequest struct {
	entryRequest
	StatusSpend string `json:"statusSpend" binding:"max=50"`
}

// userQuery is the ?userId= parameter of read endpoints
type userQuery struct {
	UserID int64 `form:"userId" binding:"required,gt=0"`
}

// ownerQuery is the optional ?userId= of deletes
type ownerQuery struct {
	UserID int64 `form:"userId" binding:"omitempty,gt=0"`
}

type idURI struct {
	ID int64 `uri:"id" binding:"required,gt=0"`
}

// TransactionHandler serves income and spend records
type TransactionHandler struct {
	BaseHandler
	service *ledgerapp.TransactionService
}

// NewTransactionHandler creates a TransactionHandler
func NewTransactionHandler(service *ledgerapp.TransactionService) *TransactionHandler {
	return &TransactionHandler{service: service}
}

// bindIDAndUser binds :id and ?userId=. It writes the 400 itself and reports false on failure.
func (h *TransactionHandler) bindIDAndUser(c *gin.Context) (id, userID int64, ok bool) {
	var uri idURI
	if err := c.ShouldBindUri(&uri); err != nil {
		h.ValidationError(c, err)
		return 0, 0, false
	}
	var q userQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.ValidationError(c, err)
		return 0, 0, false
	}
	return uri.ID, q.UserID, true
}

// CreateIncome godoc
// @Summary  Record an income
// @Tags     incomes
// @Accept   json
// @Produce  json
// @Param    request body IncomeRequest true "Income"
// @Success  201 {object} ledgerapp.IncomeResponse
// @Failure  400 {object} dto.ErrorResponse
// @Router   /api/income [post]
func (h *TransactionHandler) CreateIncome(c *gin.Context) {
	var req IncomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, err)
		return
	}

	income, err := h.service.CreateIncome(c.Request.Context(), req.UserID.Int64(), req.entry())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, income)
}

// GetIncome godoc
// @Summary  Get one income of a user
// @Tags     incomes
// @Produce  json
// @Param    id path int true "Income ID"
// @Param    userId query int true "Owner"
// @Success  200 {object} ledgerapp.IncomeResponse
// @Failure  404 {object} dto.ErrorResponse
// @Router   /api/get/income/{id} [get]
func (h *TransactionHandler) GetIncome(c *gin.Context) {
	id, userID, ok := h.bindIDAndUser(c)
	if !ok {
		return
	}

	income, err := h.service.GetIncome(c.Request.Context(), userID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.OK(c, income)
}

// UpdateIncome godoc
// @Summary  Replace an income
// @Tags     incomes
// @Accept   json
// @Produce  json
// @Param    id path int true "Income ID"
// @Param    request body IncomeRequest true "Income"
// @Success  200 {object} ledgerapp.IncomeResponse
// @Failure  404 {object} dto.ErrorResponse
// @Router   /api/incomes/edit/{id} [put]
func (h *TransactionHandler) UpdateIncome(c *gin.Context) {
	var uri idURI
	if err := c.ShouldBindUri(&uri); err != nil {
		h.ValidationError(c, err)
		return
	}
	var req IncomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, err)
		return
	}

	income, err := h.service.UpdateIncome(c.Request.Context(), req.UserID.Int64(), uri.ID, req.entry())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.OK(c, income)
}

// DeleteIncome godoc
// @Summary  Delete an income
// @Tags     incomes
// @Produce  json
// @Param    id path int true "Income ID"
// @Param    userId query int false "Restrict to this owner"
// @Success  200 {object} dto.MessageResponse
// @Failure  404 {object} dto.ErrorResponse
// @Router   /api/incomes/delete/{id} [delete]
func (h *TransactionHandler) DeleteIncome(c *gin.Context) {
	var uri idURI
	if err := c.ShouldBindUri(&uri); err != nil {
		h.ValidationError(c, err)
		return
	}
	var q ownerQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.ValidationError(c, err)
		return
	}

	if err := h.service.DeleteIncome(c.Request.Context(), uri.ID, q.UserID); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Message(c, "Income deleted successfully")
}

// CreateSpend godoc
// @Summary  Record a spend
// @Tags     spends
// @Accept   json
// @Produce  json
// @Param    request body SpendRequest true "Spend"
// @Success  201 {object} ledgerapp.SpendResponse
// @Failure  400 {object} dto.ErrorResponse
// @Router   /api/spends [post]
func (h *TransactionHandler) CreateSpend(c *gin.Context) {
	var req SpendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, err)
		return
	}

	spend, err := h.service.CreateSpend(c.Request.Context(), req.UserID.Int64(), req.entry(), req.StatusSpend)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, spend)
}

// GetSpend godoc
// @Summary  Get one spend of a user
// @Tags     spends
// @Produce  json
// @Param    id path int true "Spend ID"
// @Param    userId query int true "Owner"
// @Success  200 {object} ledgerapp.SpendResponse
// @Failure  404 {object} dto.ErrorResponse
// @Router   /api/get/spend/{id} [get]
func (h *TransactionHandler) GetSpend(c *gin.Context) {
	id, userID, ok := h.bindIDAndUser(c)
	if !ok {
		return
	}

	spend, err := h.service.GetSpend(c.Request.Context(), userID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.OK(c, spend)
}

// UpdateSpend godoc
// @Summary  Replace a spend
// @Tags     spends
// @Accept   json
// @Produce  json
// @Param    id path int true "Spend ID"
// @Param    request body SpendRequest true "Spend"
// @Success  200 {object} ledgerapp.SpendResponse
// @Failure  404 {object} dto.ErrorResponse
// @Router   /api/spends/edit/{id} [put]
func (h *TransactionHandler) UpdateSpend(c *gin.Context) {
	var uri idURI
	if err := c.ShouldBindUri(&uri); err != nil {
		h.ValidationError(c, err)
		return
	}
	var req SpendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, err)
		return
	}

	spend, err := h.service.UpdateSpend(c.Request.Context(), req.UserID.Int64(), uri.ID, req.entry(), req.StatusSpend)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.OK(c, spend)
}

// DeleteSpend godoc
// @Summary  Delete a spend
// @Tags     spends
// @Produce  json
// @Param    id path int true "Spend ID"
// @Param    userId query int false "Restrict to this owner"
// @Success  200 {object} dto.MessageResponse
// @Failure  404 {object} dto.ErrorResponse
// @Router   /api/spends/delete/{id} [delete]
func (h *TransactionHandler) DeleteSpend(c *gin.Context) {
	var uri idURI
	if err := c.ShouldBindUri(&uri); err != nil {
		h.ValidationError(c, err)
		return
	}
	var q ownerQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.ValidationError(c, err)
		return
	}

	if err := h.service.DeleteSpend(c.Request.Context(), uri.ID, q.UserID); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Message(c, "Spend deleted successfully")
}
