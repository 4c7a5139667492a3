package analytics

import (
	"math"
	"sort"
	"time"

	"finsight/internal/domain/category"
	"finsight/internal/domain/period"
	"finsight/internal/domain/transaction"

	"github.com/oklog/ulid/v2"
)

const categoryTrailingMonths = 6

const (
	TrendIncreasing = "increasing"
	TrendDecreasing = "decreasing"
	TrendStable     = "stable"
)

// CategoryForecast é a projeção de gasto de uma categoria de despesa.
type CategoryForecast struct {
	CategoryName      string  `json:"category_name"`
	CurrentMonthlyAvg float64 `json:"current_monthly_avg"`
	ForecastTotal     float64 `json:"forecast_total"`
	GrowthRatePct     float64 `json:"growth_rate_pct"`
	Trend             string  `json:"trend"`
}

// CategoryForecasts projeta o gasto por categoria de despesa sobre uma média
// móvel de seis meses. O total projetado usa metade do horizonte como expoente
// de composição, amortecendo taxas extremas em horizontes longos; esse expoente
// difere de propósito da composição por passo do projetor geral.
func CategoryForecasts(txs []*transaction.Transaction, categories []*category.Category, months int, now time.Time) []CategoryForecast {
	byCategory := make(map[ulid.ULID][]*transaction.Transaction)
	for _, tx := range txs {
		byCategory[tx.CategoryId] = append(byCategory[tx.CategoryId], tx)
	}

	forecasts := make([]CategoryForecast, 0, len(categories))
	for _, cat := range categories {
		if cat.Type != category.TypeExpense {
			continue
		}
		catTxs := byCategory[cat.Id]
		if len(catTxs) == 0 {
			continue
		}

		series := monthlySpendingSeries(catTxs, categoryTrailingMonths, now)

		var sum float64
		for _, v := range series {
			sum += v
		}
		avg := sum / float64(len(series))
		if avg <= 0 {
			continue
		}

		rate := GrowthRate(series)
		total := math.Round(avg * float64(months) * math.Pow(1+rate/100, float64(months)/2))

		trend := TrendStable
		if rate > 0 {
			trend = TrendIncreasing
		} else if rate < 0 {
			trend = TrendDecreasing
		}

		forecasts = append(forecasts, CategoryForecast{
			CategoryName:      cat.Name,
			CurrentMonthlyAvg: avg,
			ForecastTotal:     total,
			GrowthRatePct:     rate,
			Trend:             trend,
		})
	}

	sort.SliceStable(forecasts, func(i, j int) bool {
		return forecasts[i].ForecastTotal > forecasts[j].ForecastTotal
	})

	return forecasts
}

func monthlySpendingSeries(txs []*transaction.Transaction, months int, now time.Time) []float64 {
	series := make([]float64, 0, months)
	for i := months - 1; i >= 0; i-- {
		p := period.Resolve(period.Monthly, i, now)

		var total float64
		for _, tx := range txs {
			if tx.IsIncome || !period.Contains(p, tx.Date) {
				continue
			}
			total += tx.BillingAmount
		}
		series = append(series, math.Round(total))
	}
	return series
}
