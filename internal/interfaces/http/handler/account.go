package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	ledgerapp "github.com/finboard/backend/internal/application/ledger"
	"github.com/finboard/backend/internal/interfaces/http/dto"
)

// CreateAccountRequest is the body of POST /api/accounts
type CreateAccountRequest struct {
	Name    string           `json:"name" binding:"required,notblank,max=100"`
	Type    string           `json:"type" binding:"required,notblank,max=50"`
	Balance *decimal.Decimal `json:"balance" binding:"required"`
	UserID  dto.FlexInt64    `json:"userId" binding:"required,gt=0"`
}

// CreateCategoryRequest is the body of POST /api/categories. subcategories
// names the single subcategory created with the category.
type CreateCategoryRequest struct {
	Name          string        `json:"name" binding:"required,notblank,max=100"`
	Subcategories string        `json:"subcategories" binding:"required,notblank,max=100"`
	UserID        dto.FlexInt64 `json:"userId" binding:"required,gt=0"`
}

// CreateUserRequest is the body of POST /api/users
type CreateUserRequest struct {
	Name string `json:"name" binding:"required,notblank,max=100"`
}

// AccountHandler serves accounts, categories and user profiles
type AccountHandler struct {
	BaseHandler
	service *ledgerapp.AccountService
}

// NewAccountHandler creates an AccountHandler
func NewAccountHandler(service *ledgerapp.AccountService) *AccountHandler {
	return &AccountHandler{service: service}
}

// CreateAccount godoc
// @Summary  Create an account
// @Tags     accounts
// @Accept   json
// @Produce  json
// @Param    request body CreateAccountRequest true "Account"
// @Success  201 {object} ledgerapp.AccountResponse
// @Failure  400 {object} dto.ErrorResponse
// @Router   /api/accounts [post]
func (h *AccountHandler) CreateAccount(c *gin.Context) {
	var req CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, err)
		return
	}

	account, err := h.service.CreateAccount(c.Request.Context(), ledgerapp.CreateAccountInput{
		UserID:  req.UserID.Int64(),
		Name:    req.Name,
		Type:    req.Type,
		Balance: *req.Balance,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, account)
}

// CreateCategory godoc
// @Summary  Create a category with its subcategory
// @Tags     categories
// @Accept   json
// @Produce  json
// @Param    request body CreateCategoryRequest true "Category"
// @Success  201 {object} ledgerapp.CategoryResponse
// @Failure  400 {object} dto.ErrorResponse
// @Router   /api/categories [post]
func (h *AccountHandler) CreateCategory(c *gin.Context) {
	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, err)
		return
	}

	category, err := h.service.CreateCategory(c.Request.Context(), ledgerapp.CreateCategoryInput{
		UserID:      req.UserID.Int64(),
		Name:        req.Name,
		Subcategory: req.Subcategories,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, category)
}

// CreateUser godoc
// @Summary  Create a user profile
// @Tags     users
// @Accept   json
// @Produce  json
// @Param    request body CreateUserRequest true "User"
// @Success  201 {object} ledgerapp.UserResponse
// @Failure  400 {object} dto.ErrorResponse
// @Router   /api/users [post]
func (h *AccountHandler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, err)
		return
	}

	user, err := h.service.CreateUser(c.Request.Context(), req.Name)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, user)
}
