package routes

import (
	"finsight/internal/domain/analytics"
	"finsight/internal/domain/budget"
	"finsight/internal/domain/category"
	"finsight/internal/domain/insight"
	"finsight/internal/domain/transaction"
	appErrors "finsight/internal/errors"
	"finsight/internal/logger"
	"finsight/internal/pkg"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	TransactionService *transaction.Service
	CategoryService    *category.Service
	BudgetService      *budget.Service
	AnalyticsService   *analytics.Service
	InsightService     *insight.Service
}

func (h *Handler) parsePagination(c *gin.Context) *pkg.PaginationParams {
	page := c.DefaultQuery("page", "1")
	limit := c.DefaultQuery("limit", "10")

	var pageNum, limitNum int
	if p, err := pkg.ParseInt(page); err == nil && p > 0 {
		pageNum = p
	} else {
		pageNum = 1
	}

	if l, err := pkg.ParseInt(limit); err == nil && l > 0 {
		limitNum = l
	} else {
		limitNum = 10
	}

	return &pkg.PaginationParams{
		Page:  pageNum,
		Limit: limitNum,
	}
}

func (h *Handler) respondError(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	event := logger.Error().Str("code", appErr.Code).Str("path", c.FullPath())
	if appErr.Err != nil {
		event = event.Err(appErr.Err)
	}
	event.Msg("request_error")
	payload := gin.H{
		"error":   appErr.Code,
		"message": appErr.Message,
	}
	if len(appErr.Details) > 0 {
		payload["details"] = appErr.Details
	}
	c.JSON(appErr.StatusCode, payload)
}
