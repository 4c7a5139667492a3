package routes

import (
	"net/http"
	"time"

	"finsight/internal/contracts"
	"finsight/internal/domain/budget"
	"finsight/internal/domain/period"
	appErrors "finsight/internal/errors"
	"finsight/internal/pkg"

	"github.com/gin-gonic/gin"
)

func (h *Handler) CreateBudget(c *gin.Context) {
	var body contracts.BudgetCreateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ErrBadRequest.WithError(err))
		return
	}

	categoryID, err := pkg.ParseULID(body.CategoryId)
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("category_id", "formato inválido"))
		return
	}

	req := &budget.CreateBudgetRequest{
		CategoryId: categoryID,
		Amount:     body.Amount,
		Period:     period.Granularity(body.Period),
	}

	if body.StartDate != "" {
		startDate, err := time.Parse("2006-01-02", body.StartDate)
		if err != nil {
			h.respondError(c, appErrors.NewValidationError("start_date", "formato inválido"))
			return
		}
		req.StartDate = startDate
	}

	if body.EndDate != "" {
		endDate, err := time.Parse("2006-01-02", body.EndDate)
		if err != nil {
			h.respondError(c, appErrors.NewValidationError("end_date", "formato inválido"))
			return
		}
		req.EndDate = &endDate
	}

	ctx := c.Request.Context()
	b, err := h.BudgetService.CreateBudget(ctx, req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contracts.BudgetCreateResponse{
		Message: "Orcamento criado com sucesso",
		Budget:  b,
	})
}

func (h *Handler) ListBudgets(c *gin.Context) {
	pagination := h.parsePagination(c)

	ctx := c.Request.Context()
	budgets, total, err := h.BudgetService.ListBudgets(ctx, pagination)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response := pkg.NewPaginatedResponse(budgets, pagination.Page, pagination.Limit, total)
	c.JSON(http.StatusOK, response)
}

func (h *Handler) GetBudget(c *gin.Context) {
	budgetID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato inválido"))
		return
	}

	ctx := c.Request.Context()
	b, err := h.BudgetService.GetBudgetByID(ctx, budgetID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.BudgetSingleResponse{Budget: b})
}

func (h *Handler) UpdateBudget(c *gin.Context) {
	budgetID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato inválido"))
		return
	}

	var body contracts.BudgetUpdateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ErrBadRequest.WithError(err))
		return
	}

	req := &budget.UpdateBudgetRequest{
		Amount: body.Amount,
	}

	if body.EndDate != nil {
		endDate, err := time.Parse("2006-01-02", *body.EndDate)
		if err != nil {
			h.respondError(c, appErrors.NewValidationError("end_date", "formato inválido"))
			return
		}
		req.EndDate = &endDate
	}

	ctx := c.Request.Context()
	if err := h.BudgetService.UpdateBudget(ctx, budgetID, req); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Orcamento atualizado com sucesso"})
}

func (h *Handler) DeleteBudget(c *gin.Context) {
	budgetID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato inválido"))
		return
	}

	ctx := c.Request.Context()
	if err := h.BudgetService.DeleteBudget(ctx, budgetID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Orcamento removido com sucesso"})
}

func (h *Handler) GetBudgetStat(c *gin.Context) {
	budgetID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato inválido"))
		return
	}

	g, offset, err := h.parseComparisonPeriod(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	stat, err := h.BudgetService.GetBudgetStat(ctx, budgetID, g, offset)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.BudgetStatResponse{Budget: stat})
}

func (h *Handler) ListBudgetStats(c *gin.Context) {
	g, offset, err := h.parseComparisonPeriod(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	stats, err := h.BudgetService.ListBudgetStats(ctx, g, offset)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.BudgetStatListResponse{
		Budgets: stats,
		Total:   len(stats),
	})
}

func (h *Handler) parseComparisonPeriod(c *gin.Context) (period.Granularity, int, error) {
	var query contracts.BudgetStatRequest
	if err := c.ShouldBindQuery(&query); err != nil {
		return "", 0, appErrors.ErrBadRequest.WithError(err)
	}

	g := period.Monthly
	if query.Granularity != "" {
		g = period.Granularity(query.Granularity)
	}

	return g, query.Offset, nil
}
