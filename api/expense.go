package api

import (
	"errors"
	"strconv"
	"strings"

	"moneymap/middleware"
	"moneymap/models"
	"moneymap/store"

	"github.com/gin-gonic/gin"
)

// ExpenseHandler serves the expense CRUD operations. It talks to the
// store through its interface only, so tests can swap in the in-memory
// implementation.
type ExpenseHandler struct {
	store store.ExpenseStore
}

// NewExpenseHandler creates an expense handler.
func NewExpenseHandler(st store.ExpenseStore) *ExpenseHandler {
	return &ExpenseHandler{store: st}
}

// CreateExpenseRequest is the create payload. The owner comes from the
// token, never from the body.
type CreateExpenseRequest struct {
	Amount   models.Money `json:"amount" binding:"required,gt=0" example:"42.50"`
	Category string       `json:"category" binding:"required" example:"Food"`
	Note     string       `json:"note" example:"lunch"`
	Date     models.Date  `json:"date" binding:"required" swaggertype:"string" example:"2024-01-15"`
}

// UpdateExpenseRequest is the partial update payload. Absent fields
// are left unchanged. There is intentionally no owner field.
type UpdateExpenseRequest struct {
	Amount   *models.Money `json:"amount" binding:"omitempty,gt=0" example:"42.50"`
	Category *string       `json:"category" example:"Food"`
	Note     *string       `json:"note" example:"lunch"`
	Date     *models.Date  `json:"date" swaggertype:"string" example:"2024-01-15"`
}

// Create records a new expense
// @Summary Create expense
// @Description Record a new expense for the authenticated user.
// @Tags expenses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateExpenseRequest true "expense fields"
// @Success 201 {object} Response{data=models.Expense} "created"
// @Failure 400 {object} Response "invalid payload"
// @Failure 401 {object} Response "unauthorized"
// @Failure 500 {object} Response "storage failure"
// @Router /api/v1/expenses [post]
func (h *ExpenseHandler) Create(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	if userID == 0 {
		Unauthorized(c, "unauthorized")
		return
	}

	var req CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "invalid request"))
		return
	}

	req.Category = strings.TrimSpace(req.Category)
	if req.Category == "" {
		BadRequest(c, "category must not be empty")
		return
	}

	expense := models.Expense{
		UserID:   userID,
		Amount:   req.Amount,
		Category: req.Category,
		Note:     req.Note,
		Date:     req.Date,
	}

	if err := h.store.Create(&expense); err != nil {
		InternalError(c, SafeErrorMessage(err, "creating expense failed"))
		return
	}

	Created(c, expense)
}

// List returns the caller's expenses
// @Summary List expenses
// @Description All expenses of the authenticated user, most recent date first.
// @Tags expenses
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=[]models.Expense} "expense list"
// @Failure 401 {object} Response "unauthorized"
// @Router /api/v1/expenses [get]
func (h *ExpenseHandler) List(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	if userID == 0 {
		Unauthorized(c, "unauthorized")
		return
	}

	expenses, err := h.store.ListByOwner(userID)
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "listing expenses failed"))
		return
	}
	if expenses == nil {
		expenses = []models.Expense{}
	}

	Success(c, expenses)
}

// Get returns one expense by id
// @Summary Get expense
// @Tags expenses
// @Produce json
// @Security BearerAuth
// @Param id path int true "expense id"
// @Success 200 {object} Response{data=models.Expense} "expense"
// @Failure 401 {object} Response "unauthorized"
// @Failure 404 {object} Response "not found"
// @Router /api/v1/expenses/{id} [get]
func (h *ExpenseHandler) Get(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	if userID == 0 {
		Unauthorized(c, "unauthorized")
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "invalid id")
		return
	}

	expense, err := h.store.FindByIDAndOwner(uint(id), userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			NotFound(c, "expense not found")
			return
		}
		InternalError(c, SafeErrorMessage(err, "loading expense failed"))
		return
	}

	Success(c, expense)
}

// Update patches an expense
// @Summary Update expense
// @Description Partially update an expense. Missing fields stay unchanged; the owner can never change.
// @Tags expenses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "expense id"
// @Param request body UpdateExpenseRequest true "fields to change"
// @Success 200 {object} Response{data=models.Expense} "updated"
// @Failure 400 {object} Response "invalid payload"
// @Failure 401 {object} Response "unauthorized"
// @Failure 404 {object} Response "not found"
// @Router /api/v1/expenses/{id} [put]
func (h *ExpenseHandler) Update(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	if userID == 0 {
		Unauthorized(c, "unauthorized")
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "invalid id")
		return
	}

	var req UpdateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "invalid request"))
		return
	}

	patch := store.Patch{
		Amount: req.Amount,
		Note:   req.Note,
		Date:   req.Date,
	}
	if req.Category != nil {
		trimmed := strings.TrimSpace(*req.Category)
		if trimmed == "" {
			BadRequest(c, "category must not be empty")
			return
		}
		patch.Category = &trimmed
	}

	expense, err := h.store.UpdateByIDAndOwner(uint(id), userID, patch)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			NotFound(c, "expense not found")
			return
		}
		InternalError(c, SafeErrorMessage(err, "updating expense failed"))
		return
	}

	SuccessWithMessage(c, "expense updated", expense)
}

// Delete removes an expense
// @Summary Delete expense
// @Description Delete an expense; returns the deleted record as confirmation.
// @Tags expenses
// @Produce json
// @Security BearerAuth
// @Param id path int true "expense id"
// @Success 200 {object} Response "deleted record"
// @Failure 401 {object} Response "unauthorized"
// @Failure 404 {object} Response "not found"
// @Router /api/v1/expenses/{id} [delete]
func (h *ExpenseHandler) Delete(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	if userID == 0 {
		Unauthorized(c, "unauthorized")
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "invalid id")
		return
	}

	expense, err := h.store.DeleteByIDAndOwner(uint(id), userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			NotFound(c, "expense not found")
			return
		}
		InternalError(c, SafeErrorMessage(err, "deleting expense failed"))
		return
	}

	SuccessWithMessage(c, "expense deleted", gin.H{"deleted": expense})
}

// GetCategories lists the suggested categories
// @Summary Suggested categories
// @Description The category names offered by the mobile picker. Categories are free-form; this list is advisory.
// @Tags expenses
// @Produce json
// @Success 200 {object} Response{data=[]string} "category names"
// @Router /api/v1/categories [get]
func (h *ExpenseHandler) GetCategories(c *gin.Context) {
	Success(c, models.GetCategories())
}
