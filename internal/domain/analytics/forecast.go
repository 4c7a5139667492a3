package analytics

import (
	"math"
	"time"

	"finsight/internal/domain/period"
)

// ForecastMethod define a estratégia de projeção.
type ForecastMethod string

const (
	MethodAverage ForecastMethod = "average"
	MethodTrend   ForecastMethod = "trend"
	MethodCustom  ForecastMethod = "custom"
)

func (m ForecastMethod) Valid() bool {
	switch m {
	case MethodAverage, MethodTrend, MethodCustom:
		return true
	}
	return false
}

// ForecastPoint é um ponto da série combinada: histórico seguido de projeção,
// em ordem cronológica. Pontos projetados carregam IsForecast=true e são
// sempre anexados após o histórico, nunca intercalados.
type ForecastPoint struct {
	PeriodLabel string  `json:"period_label"`
	Income      float64 `json:"income"`
	Expenses    float64 `json:"expenses"`
	Savings     float64 `json:"savings"`
	IsForecast  bool    `json:"is_forecast"`
}

// ForecastSummary agrega apenas os pontos projetados.
type ForecastSummary struct {
	TotalIncome        float64 `json:"total_income"`
	TotalExpenses      float64 `json:"total_expenses"`
	TotalSavings       float64 `json:"total_savings"`
	AvgMonthlyIncome   float64 `json:"avg_monthly_income"`
	AvgMonthlyExpenses float64 `json:"avg_monthly_expenses"`
	SavingsRate        float64 `json:"savings_rate"`
}

type Forecast struct {
	Points  []ForecastPoint `json:"points"`
	Summary ForecastSummary `json:"summary"`
}

// Project produz `months` períodos futuros a partir do histórico agregado.
// O método average usa a média aritmética simples da janela completa;
// trend e custom aplicam composição por passo: media * (1 + taxa/100)^i.
func Project(history []PeriodTotals, months int, method ForecastMethod, customRatePct float64, now time.Time) *Forecast {
	points := make([]ForecastPoint, 0, len(history)+months)
	incomeSeries := make([]float64, 0, len(history))
	expenseSeries := make([]float64, 0, len(history))

	var incomeSum, expenseSum float64
	for _, h := range history {
		points = append(points, ForecastPoint{
			PeriodLabel: h.Label,
			Income:      h.Income,
			Expenses:    h.Expenses,
			Savings:     h.Savings,
			IsForecast:  false,
		})
		incomeSeries = append(incomeSeries, h.Income)
		expenseSeries = append(expenseSeries, h.Expenses)
		incomeSum += h.Income
		expenseSum += h.Expenses
	}

	var meanIncome, meanExpenses float64
	if len(history) > 0 {
		meanIncome = incomeSum / float64(len(history))
		meanExpenses = expenseSum / float64(len(history))
	}

	var incomeRate, expenseRate float64
	switch method {
	case MethodTrend:
		incomeRate = GrowthRate(incomeSeries)
		expenseRate = GrowthRate(expenseSeries)
	case MethodCustom:
		incomeRate = customRatePct
		expenseRate = customRatePct
	}

	summary := ForecastSummary{}
	for i := 1; i <= months; i++ {
		income := meanIncome
		expenses := meanExpenses
		if method != MethodAverage {
			income *= math.Pow(1+incomeRate/100, float64(i))
			expenses *= math.Pow(1+expenseRate/100, float64(i))
		}
		income = math.Round(income)
		expenses = math.Round(expenses)

		points = append(points, ForecastPoint{
			PeriodLabel: period.Resolve(period.Monthly, -i, now).Label,
			Income:      income,
			Expenses:    expenses,
			Savings:     income - expenses,
			IsForecast:  true,
		})

		summary.TotalIncome += income
		summary.TotalExpenses += expenses
	}

	summary.TotalSavings = summary.TotalIncome - summary.TotalExpenses
	if months > 0 {
		summary.AvgMonthlyIncome = summary.TotalIncome / float64(months)
		summary.AvgMonthlyExpenses = summary.TotalExpenses / float64(months)
	}
	if summary.TotalIncome != 0 {
		summary.SavingsRate = math.Round(summary.TotalSavings / summary.TotalIncome * 100)
	}

	return &Forecast{Points: points, Summary: summary}
}
