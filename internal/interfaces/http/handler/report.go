package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/finboard/backend/internal/application/report"
)

// ReportHandler serves the read-only aggregate endpoints
type ReportHandler struct {
	BaseHandler
	service *report.ReportService
}

// NewReportHandler creates a ReportHandler
func NewReportHandler(service *report.ReportService) *ReportHandler {
	return &ReportHandler{service: service}
}

func (h *ReportHandler) bindUser(c *gin.Context) (int64, bool) {
	var q userQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.ValidationError(c, err)
		return 0, false
	}
	return q.UserID, true
}

// IncomeSummary godoc
// @Summary  Income totals by category
// @Tags     reports
// @Produce  json
// @Param    userId query int true "Owner"
// @Success  200 {object} report.IncomeSummaryResponse
// @Failure  400 {object} dto.ErrorResponse
// @Router   /api/income/summary [get]
func (h *ReportHandler) IncomeSummary(c *gin.Context) {
	userID, ok := h.bindUser(c)
	if !ok {
		return
	}
	resp, err := h.service.IncomeSummary(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.OK(c, resp)
}

// SpendSummary godoc
// @Summary  Spend totals by category
// @Tags     reports
// @Produce  json
// @Param    userId query int true "Owner"
// @Success  200 {object} report.SpendSummaryResponse
// @Failure  400 {object} dto.ErrorResponse
// @Router   /api/spends/summary [get]
func (h *ReportHandler) SpendSummary(c *gin.Context) {
	userID, ok := h.bindUser(c)
	if !ok {
		return
	}
	resp, err := h.service.SpendSummary(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.OK(c, resp)
}

// Dashboard godoc
// @Summary  Totals, balance, today's figures and the daily series
// @Tags     reports
// @Produce  json
// @Param    userId query int true "Owner"
// @Success  200 {object} report.DashboardResponse
// @Failure  400 {object} dto.ErrorResponse
// @Router   /dashboard [get]
func (h *ReportHandler) Dashboard(c *gin.Context) {
	userID, ok := h.bindUser(c)
	if !ok {
		return
	}
	resp, err := h.service.Dashboard(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.OK(c, resp)
}

// RecentTransactions godoc
// @Summary  Latest incomes and spends merged by date
// @Tags     reports
// @Produce  json
// @Param    userId query int true "Owner"
// @Success  200 {object} report.RecentTransactionsResponse
// @Failure  400 {object} dto.ErrorResponse
// @Router   /transactions [get]
func (h *ReportHandler) RecentTransactions(c *gin.Context) {
	userID, ok := h.bindUser(c)
	if !ok {
		return
	}
	resp, err := h.service.RecentTransactions(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.OK(c, resp)
}
