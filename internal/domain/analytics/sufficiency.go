package analytics

import (
	"time"

	"finsight/internal/domain/category"
	"finsight/internal/domain/transaction"
)

const (
	minTransactions = 10
	minCategories   = 3
	minRangeDays    = 7
	minExpenses     = 7
)

const (
	ReasonMissingData              = "missing_data"
	ReasonInsufficientTransactions = "insufficient_transactions"
	ReasonInsufficientCategories   = "insufficient_categories"
	ReasonInsufficientTimeRange    = "insufficient_time_range"
	ReasonInsufficientExpenses     = "insufficient_expenses"
)

// Sufficiency é o resultado do gate de admissão: a primeira verificação que
// falha determina o motivo, com o valor medido e o limite exigido.
type Sufficiency struct {
	Sufficient bool   `json:"sufficient"`
	Reason     string `json:"reason,omitempty"`
	Measured   int    `json:"measured"`
	Required   int    `json:"required"`
}

// CheckSufficiency executa as cinco verificações em ordem fixa e para na
// primeira falha. Só depois de passar por todas a análise pode prosseguir.
func CheckSufficiency(txs []*transaction.Transaction, categories []*category.Category) Sufficiency {
	if txs == nil || categories == nil {
		return Sufficiency{Reason: ReasonMissingData, Measured: 0, Required: 1}
	}

	if len(txs) < minTransactions {
		return Sufficiency{Reason: ReasonInsufficientTransactions, Measured: len(txs), Required: minTransactions}
	}

	if len(categories) < minCategories {
		return Sufficiency{Reason: ReasonInsufficientCategories, Measured: len(categories), Required: minCategories}
	}

	oldest, newest := txs[0].Date, txs[0].Date
	for _, tx := range txs[1:] {
		if tx.Date.Before(oldest) {
			oldest = tx.Date
		}
		if tx.Date.After(newest) {
			newest = tx.Date
		}
	}
	rangeDays := int(newest.Sub(oldest) / (24 * time.Hour))
	if rangeDays < minRangeDays {
		return Sufficiency{Reason: ReasonInsufficientTimeRange, Measured: rangeDays, Required: minRangeDays}
	}

	expenses := 0
	for _, tx := range txs {
		if !tx.IsIncome {
			expenses++
		}
	}
	if expenses < minExpenses {
		return Sufficiency{Reason: ReasonInsufficientExpenses, Measured: expenses, Required: minExpenses}
	}

	return Sufficiency{Sufficient: true}
}
