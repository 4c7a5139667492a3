package analytics

import (
	"math"
	"time"

	"finsight/internal/domain/period"
	"finsight/internal/domain/transaction"
)

// PeriodTotals representa os totais agregados de um único período.
type PeriodTotals struct {
	Label    string  `json:"label"`
	Income   float64 `json:"income"`
	Expenses float64 `json:"expenses"`
	Savings  float64 `json:"savings"`
}

// MonthlyHistory agrupa as transações em totais mensais sobre uma janela
// retroativa de `months` meses, em ordem cronológica. Os totais são
// arredondados no momento da agregação; o cálculo de tendência e projeção
// opera sobre os inteiros resultantes.
func MonthlyHistory(txs []*transaction.Transaction, months int, now time.Time) []PeriodTotals {
	history := make([]PeriodTotals, 0, months)

	for i := months - 1; i >= 0; i-- {
		p := period.Resolve(period.Monthly, i, now)

		var income, expenses float64
		for _, tx := range txs {
			if !period.Contains(p, tx.Date) {
				continue
			}
			if tx.IsIncome {
				income += tx.BillingAmount
			} else {
				expenses += tx.BillingAmount
			}
		}

		income = math.Round(income)
		expenses = math.Round(expenses)

		history = append(history, PeriodTotals{
			Label:    p.Label,
			Income:   income,
			Expenses: expenses,
			Savings:  income - expenses,
		})
	}

	return history
}
