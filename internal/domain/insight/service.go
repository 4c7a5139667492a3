package insight

import (
	"context"
	"fmt"
	"strings"

	"finsight/internal/domain/analytics"
	"finsight/internal/llm"
	"finsight/internal/logger"
)

// Service gera insights a partir do histórico agregado. A chamada ao modelo é
// a única fonte real de latência e falha; qualquer erro dela degrada para a
// lista determinística em vez de propagar.
type Service struct {
	Analytics *analytics.Service
	Invoker   llm.Invoker
	Pipeline  *Pipeline
}

func NewService(analyticsService *analytics.Service, invoker llm.Invoker, pipeline *Pipeline) *Service {
	return &Service{
		Analytics: analyticsService,
		Invoker:   invoker,
		Pipeline:  pipeline,
	}
}

// Generate monta o prompt com o histórico e as projeções por categoria,
// invoca o modelo e valida a resposta. Erros de admissão propagam; erros do
// modelo caem no fallback.
func (s *Service) Generate(ctx context.Context) (*Result, error) {
	history, err := s.Analytics.History(ctx)
	if err != nil {
		return nil, err
	}

	categoryForecasts, err := s.Analytics.CategoryForecasts(ctx, 0)
	if err != nil {
		return nil, err
	}

	raw, err := s.Invoker.Invoke(ctx, &llm.InvokeRequest{
		Prompt:         buildPrompt(history, categoryForecasts),
		ResponseSchema: responseSchema(),
	})
	if err != nil {
		logger.Warn().Err(err).Msg("falha ao invocar o modelo, usando insights de fallback")
		return fallbackResult(), nil
	}

	result := s.Pipeline.Run(raw)
	if result.Discarded > 0 {
		logger.Warn().Int("discarded", result.Discarded).Msg("insights descartados pela validação")
	}

	return result, nil
}

func buildPrompt(history []analytics.PeriodTotals, categories []analytics.CategoryForecast) string {
	var sb strings.Builder

	sb.WriteString("You are a personal finance analyst. Based on the data below, produce actionable financial insights.\n\n")

	sb.WriteString("Monthly history (income / expenses / savings):\n")
	for _, h := range history {
		fmt.Fprintf(&sb, "- %s: %.0f / %.0f / %.0f\n", h.Label, h.Income, h.Expenses, h.Savings)
	}

	if len(categories) > 0 {
		sb.WriteString("\nCategory spending forecasts:\n")
		for _, c := range categories {
			fmt.Fprintf(&sb, "- %s: monthly avg %.0f, projected total %.0f, growth %.1f%%, trend %s\n",
				c.CategoryName, c.CurrentMonthlyAvg, c.ForecastTotal, c.GrowthRatePct, c.Trend)
		}
	}

	sb.WriteString("\nReturn between 3 and 5 insights. Each must be specific to the numbers above.")

	return sb.String()
}

func responseSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"insights": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"title":            map[string]any{"type": "string"},
						"description":      map[string]any{"type": "string"},
						"recommendation":   map[string]any{"type": "string"},
						"potential_impact": map[string]any{"type": "string"},
						"urgency":          map[string]any{"type": "string", "enum": []string{UrgencyHigh, UrgencyMedium, UrgencyLow}},
						"type":             map[string]any{"type": "string", "enum": []string{TypeSpending, TypeBudget, TypeTrend, TypeGeneral}},
						"icon":             map[string]any{"type": "string"},
					},
					"required": []string{"title", "description", "recommendation", "urgency", "type"},
				},
			},
		},
		"required": []string{"insights"},
	}
}
