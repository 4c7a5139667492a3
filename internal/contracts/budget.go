package contracts

import "finsight/internal/domain/budget"

type BudgetCreateRequest struct {
	CategoryId string  `json:"category_id" binding:"required"`
	Amount     float64 `json:"amount" binding:"required,gt=0"`
	Period     string  `json:"period" binding:"required,oneof=weekly monthly quarterly yearly"`
	StartDate  string  `json:"start_date" binding:"omitempty,datetime=2006-01-02"`
	EndDate    string  `json:"end_date" binding:"omitempty,datetime=2006-01-02"`
}

type BudgetUpdateRequest struct {
	Amount  *float64 `json:"amount" binding:"omitempty,gt=0"`
	EndDate *string  `json:"end_date" binding:"omitempty,datetime=2006-01-02"`
}

type BudgetCreateResponse struct {
	Message string         `json:"message"`
	Budget  *budget.Budget `json:"budget"`
}

type BudgetListResponse struct {
	Budgets []*budget.Budget `json:"budgets"`
	Total   int64            `json:"total"`
}

type BudgetSingleResponse struct {
	Budget *budget.Budget `json:"budget"`
}

type BudgetStatRequest struct {
	Granularity string `form:"granularity" binding:"omitempty,oneof=weekly monthly quarterly yearly"`
	Offset      int    `form:"offset" binding:"omitempty,min=0"`
}

type BudgetStatResponse struct {
	Budget *budget.BudgetWithStat `json:"budget"`
}

type BudgetStatListResponse struct {
	Budgets []*budget.BudgetWithStat `json:"budgets"`
	Total   int                      `json:"total"`
}
