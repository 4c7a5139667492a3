package contracts

import "finsight/internal/domain/transaction"

type TransactionCreateRequest struct {
	CategoryId    string  `json:"category_id" binding:"required"`
	BillingAmount float64 `json:"billing_amount" binding:"required,gte=0"`
	IsIncome      bool    `json:"is_income"`
	Description   string  `json:"description" binding:"omitempty,max=255"`
	Date          string  `json:"date" binding:"required,datetime=2006-01-02"`
}

type TransactionUpdateRequest struct {
	CategoryId    *string  `json:"category_id"`
	BillingAmount *float64 `json:"billing_amount" binding:"omitempty,gte=0"`
	IsIncome      *bool    `json:"is_income"`
	Description   *string  `json:"description" binding:"omitempty,max=255"`
	Date          *string  `json:"date" binding:"omitempty,datetime=2006-01-02"`
}

type TransactionListRequest struct {
	CategoryId string `form:"category_id"`
	From       string `form:"from" binding:"omitempty,datetime=2006-01-02"`
	To         string `form:"to" binding:"omitempty,datetime=2006-01-02"`
	IsIncome   *bool  `form:"is_income"`
	Page       int    `form:"page" binding:"omitempty,min=1"`
	Limit      int    `form:"limit" binding:"omitempty,min=1,max=100"`
}

type TransactionCreateResponse struct {
	Message     string                   `json:"message"`
	Transaction *transaction.Transaction `json:"transaction"`
}

type TransactionListResponse struct {
	Transactions []*transaction.Transaction `json:"transactions"`
	Total        int64                      `json:"total"`
}

type TransactionSingleResponse struct {
	Transaction *transaction.Transaction `json:"transaction"`
}
