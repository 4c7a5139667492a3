package budget

import (
	"math"

	"finsight/internal/domain/period"
)

const (
	StatusGood    = "good"
	StatusWarning = "warning"
	StatusOver    = "over"
)

// periodRatios converte o valor nativo de um orçamento para o período de
// comparação, indexado por [granularidade alvo][período nativo]. As
// constantes são aproximações fixas do app de referência e fazem parte do
// contrato de exibição: a tabela é intencionalmente assimétrica
// (month→quarter = 0.33 mas quarter→month = 3) e não deve ser recalculada
// a partir do calendário.
var periodRatios = map[period.Granularity]map[period.Granularity]float64{
	period.Weekly: {
		period.Monthly:   0.25,
		period.Quarterly: 0.083,
		period.Yearly:    0.019,
	},
	period.Monthly: {
		period.Weekly:    4,
		period.Quarterly: 0.33,
		period.Yearly:    0.083,
	},
	period.Quarterly: {
		period.Weekly:    13,
		period.Monthly:   3,
		period.Yearly:    0.25,
	},
	period.Yearly: {
		period.Weekly:    52,
		period.Monthly:   12,
		period.Quarterly: 4,
	},
}

// Aggregate converte o valor do orçamento para a granularidade de
// comparação. Quando o período nativo coincide com o alvo o valor é
// devolvido exatamente, sem passar pela tabela.
func Aggregate(b *Budget, target period.Granularity) float64 {
	if b.Period == target {
		return b.Amount
	}

	ratio, ok := periodRatios[target][b.Period]
	if !ok {
		return b.Amount
	}
	return b.Amount * ratio
}

type Stat struct {
	TotalSpent       float64 `json:"totalSpent"`
	Percentage       float64 `json:"percentage"`
	Remaining        float64 `json:"remaining"`
	Status           string  `json:"status"`
	AggregatedBudget float64 `json:"aggregatedBudget"`
}

// ComputeStat classifica o gasto frente ao orçamento normalizado. O status
// deriva exclusivamente do percentual arredondado; orçamento agregado zero
// força percentual zero.
func ComputeStat(b *Budget, target period.Granularity, spent float64) Stat {
	aggregated := Aggregate(b, target)

	percentage := 0.0
	if aggregated > 0 {
		percentage = math.Round(spent / aggregated * 100)
	}

	status := StatusGood
	switch {
	case percentage > 100:
		status = StatusOver
	case percentage > 80:
		status = StatusWarning
	}

	return Stat{
		TotalSpent:       spent,
		Percentage:       percentage,
		Remaining:        aggregated - spent,
		Status:           status,
		AggregatedBudget: aggregated,
	}
}
