package routes

import (
	"net/http"
	"time"

	"finsight/internal/contracts"
	"finsight/internal/domain/transaction"
	appErrors "finsight/internal/errors"
	"finsight/internal/pkg"

	"github.com/gin-gonic/gin"
)

func (h *Handler) CreateTransaction(c *gin.Context) {
	var body contracts.TransactionCreateRequest

	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ErrBadRequest.WithError(err))
		return
	}

	categoryID, err := pkg.ParseULID(body.CategoryId)
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("category_id", "formato inválido"))
		return
	}

	date, err := time.Parse("2006-01-02", body.Date)
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("date", "formato inválido"))
		return
	}

	transactionEntity := transaction.Transaction{
		CategoryId:    categoryID,
		BillingAmount: body.BillingAmount,
		IsIncome:      body.IsIncome,
		Description:   body.Description,
		Date:          date,
	}

	ctx := c.Request.Context()
	if err := h.TransactionService.CreateTransaction(ctx, &transactionEntity); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contracts.TransactionCreateResponse{
		Message:     "Transação criada com sucesso",
		Transaction: &transactionEntity,
	})
}

func (h *Handler) GetTransactions(c *gin.Context) {
	var query contracts.TransactionListRequest
	if err := c.ShouldBindQuery(&query); err != nil {
		h.respondError(c, appErrors.ErrBadRequest.WithError(err))
		return
	}

	filters := &transaction.Filters{IsIncome: query.IsIncome}

	if query.CategoryId != "" {
		categoryID, err := pkg.ParseULID(query.CategoryId)
		if err != nil {
			h.respondError(c, appErrors.NewValidationError("category_id", "formato inválido"))
			return
		}
		filters.CategoryId = &categoryID
	}

	if query.From != "" {
		from, err := time.Parse("2006-01-02", query.From)
		if err != nil {
			h.respondError(c, appErrors.NewValidationError("from", "formato inválido"))
			return
		}
		filters.From = &from
	}

	if query.To != "" {
		to, err := time.Parse("2006-01-02", query.To)
		if err != nil {
			h.respondError(c, appErrors.NewValidationError("to", "formato inválido"))
			return
		}
		filters.To = &to
	}

	pagination := h.parsePagination(c)

	ctx := c.Request.Context()
	transactions, total, err := h.TransactionService.ListTransactions(ctx, filters, pagination)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response := pkg.NewPaginatedResponse(transactions, pagination.Page, pagination.Limit, total)
	c.JSON(http.StatusOK, response)
}

func (h *Handler) GetTransaction(c *gin.Context) {
	transactionID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato inválido"))
		return
	}

	ctx := c.Request.Context()
	tx, err := h.TransactionService.GetTransactionByID(ctx, transactionID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.TransactionSingleResponse{Transaction: tx})
}

func (h *Handler) UpdateTransaction(c *gin.Context) {
	transactionID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato inválido"))
		return
	}

	var body contracts.TransactionUpdateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ErrBadRequest.WithError(err))
		return
	}

	ctx := c.Request.Context()
	stored, err := h.TransactionService.GetTransactionByID(ctx, transactionID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	if body.CategoryId != nil {
		categoryID, err := pkg.ParseULID(*body.CategoryId)
		if err != nil {
			h.respondError(c, appErrors.NewValidationError("category_id", "formato inválido"))
			return
		}
		stored.CategoryId = categoryID
	}
	if body.BillingAmount != nil {
		stored.BillingAmount = *body.BillingAmount
	}
	if body.IsIncome != nil {
		stored.IsIncome = *body.IsIncome
	}
	if body.Description != nil {
		stored.Description = *body.Description
	}
	if body.Date != nil {
		date, err := time.Parse("2006-01-02", *body.Date)
		if err != nil {
			h.respondError(c, appErrors.NewValidationError("date", "formato inválido"))
			return
		}
		stored.Date = date
	}

	if err := h.TransactionService.UpdateTransaction(ctx, stored); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Transação atualizada com sucesso"})
}

func (h *Handler) DeleteTransaction(c *gin.Context) {
	transactionID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato inválido"))
		return
	}

	ctx := c.Request.Context()
	if err := h.TransactionService.DeleteTransaction(ctx, transactionID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Transação removida com sucesso"})
}
