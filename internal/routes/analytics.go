package routes

import (
	"net/http"

	"finsight/internal/contracts"
	"finsight/internal/domain/analytics"
	"finsight/internal/domain/period"
	appErrors "finsight/internal/errors"

	"github.com/gin-gonic/gin"
)

func (h *Handler) GetSufficiency(c *gin.Context) {
	ctx := c.Request.Context()
	sufficiency, err := h.AnalyticsService.CheckSufficiency(ctx)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.SufficiencyResponse{Sufficiency: sufficiency})
}

func (h *Handler) GetHistory(c *gin.Context) {
	ctx := c.Request.Context()
	history, err := h.AnalyticsService.History(ctx)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.HistoryResponse{History: history})
}

func (h *Handler) GetForecast(c *gin.Context) {
	var query contracts.ForecastRequest
	if err := c.ShouldBindQuery(&query); err != nil {
		h.respondError(c, appErrors.ErrBadRequest.WithError(err))
		return
	}

	ctx := c.Request.Context()
	forecast, err := h.AnalyticsService.Forecast(ctx, query.Months, analytics.ForecastMethod(query.Method), query.CustomRate)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.ForecastResponse{Forecast: forecast})
}

func (h *Handler) GetCategoryForecasts(c *gin.Context) {
	var query contracts.CategoryForecastRequest
	if err := c.ShouldBindQuery(&query); err != nil {
		h.respondError(c, appErrors.ErrBadRequest.WithError(err))
		return
	}

	ctx := c.Request.Context()
	forecasts, err := h.AnalyticsService.CategoryForecasts(ctx, query.Months)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.CategoryForecastResponse{Categories: forecasts})
}

func (h *Handler) GetDashboard(c *gin.Context) {
	var query contracts.DashboardRequest
	if err := c.ShouldBindQuery(&query); err != nil {
		h.respondError(c, appErrors.ErrBadRequest.WithError(err))
		return
	}

	g := period.Monthly
	if query.Granularity != "" {
		g = period.Granularity(query.Granularity)
	}

	ctx := c.Request.Context()
	summary, err := h.AnalyticsService.Dashboard(ctx, g, query.Offset)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.DashboardResponse{Summary: summary})
}
