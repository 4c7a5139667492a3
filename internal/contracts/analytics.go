package contracts

import "finsight/internal/domain/analytics"

type ForecastRequest struct {
	Months     int     `form:"months" binding:"omitempty,min=1,max=24"`
	Method     string  `form:"method" binding:"omitempty,oneof=average trend custom"`
	CustomRate float64 `form:"custom_rate" binding:"omitempty,min=-50,max=50"`
}

type CategoryForecastRequest struct {
	Months int `form:"months" binding:"omitempty,min=1,max=24"`
}

type DashboardRequest struct {
	Granularity string `form:"granularity" binding:"omitempty,oneof=weekly monthly quarterly yearly"`
	Offset      int    `form:"offset" binding:"omitempty,min=0"`
}

type SufficiencyResponse struct {
	Sufficiency analytics.Sufficiency `json:"sufficiency"`
}

type HistoryResponse struct {
	History []analytics.PeriodTotals `json:"history"`
}

type ForecastResponse struct {
	Forecast *analytics.Forecast `json:"forecast"`
}

type CategoryForecastResponse struct {
	Categories []analytics.CategoryForecast `json:"categories"`
}

type DashboardResponse struct {
	Summary *analytics.DashboardSummary `json:"summary"`
}
