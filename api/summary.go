package api

import (
	"moneymap/middleware"
	"moneymap/service"

	"github.com/gin-gonic/gin"
)

// GetSummary returns the derived spending summary
// @Summary Spending summary
// @Description Category totals and ascending daily totals over all of the caller's expenses, recomputed on every request.
// @Tags expenses
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=service.Summary} "summary"
// @Failure 401 {object} Response "unauthorized"
// @Failure 500 {object} Response "storage failure"
// @Router /api/v1/expenses/summary [get]
func (h *ExpenseHandler) GetSummary(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	if userID == 0 {
		// never aggregate without an identity, and never across users
		Unauthorized(c, "unauthorized")
		return
	}

	expenses, err := h.store.ListByOwner(userID)
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "loading expenses failed"))
		return
	}

	Success(c, service.BuildSummary(expenses))
}
