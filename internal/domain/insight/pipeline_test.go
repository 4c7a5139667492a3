package insight_test

import (
	"strings"
	"testing"

	"finsight/internal/domain/insight"
)

func validCandidate(title string) map[string]any {
	return map[string]any{
		"title":            title,
		"description":      "Your grocery spending rose twenty percent over the last three months.",
		"recommendation":   "Plan weekly meals before shopping to cut impulse purchases.",
		"potential_impact": "Could save around $150 per month.",
		"urgency":          "medium",
		"type":             "spending",
		"icon":             "wallet",
	}
}

func payload(items ...map[string]any) map[string]any {
	list := make([]any, 0, len(items))
	for _, item := range items {
		list = append(list, item)
	}
	return map[string]any{"insights": list}
}

func TestRunFullFallbackOnUnparseableText(t *testing.T) {
	t.Parallel()

	p := insight.NewPipeline("USD")
	result := p.Run("not json")

	if result.Source != insight.SourceFallback {
		t.Errorf("Source = %q, esperado %q", result.Source, insight.SourceFallback)
	}
	if len(result.Insights) == 0 {
		t.Fatal("fallback nunca pode ser vazio")
	}
	want := insight.FallbackInsights()
	if len(result.Insights) != len(want) {
		t.Errorf("insights = %d, esperado %d", len(result.Insights), len(want))
	}
	for i := range result.Insights {
		if result.Insights[i] != want[i] {
			t.Errorf("insight %d difere da lista determinística", i)
		}
	}
}

func TestRunFullFallbackCases(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  any
	}{
		{name: "empty string", raw: ""},
		{name: "unsupported type", raw: 42},
		{name: "missing insights key", raw: map[string]any{"other": "x"}},
		{name: "empty insights array", raw: map[string]any{"insights": []any{}}},
		{name: "all candidates invalid", raw: payload(map[string]any{"title": "x"})},
		{name: "json without object", raw: "[1, 2, 3]"},
	}

	p := insight.NewPipeline("USD")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result := p.Run(tt.raw)
			if result.Source != insight.SourceFallback {
				t.Errorf("Source = %q, esperado %q", result.Source, insight.SourceFallback)
			}
			if len(result.Insights) == 0 {
				t.Error("fallback nunca pode ser vazio")
			}
		})
	}
}

func TestRunParsesFencedJSONString(t *testing.T) {
	t.Parallel()

	raw := "```json\n{\"insights\": [{" +
		"\"title\": \"Trim subscription costs\"," +
		"\"description\": \"Several overlapping streaming services were charged last month.\"," +
		"\"recommendation\": \"Keep one streaming service and rotate every quarter.\"," +
		"\"potential_impact\": \"Roughly $40 back per month.\"," +
		"\"urgency\": \"LOW\"," +
		"\"type\": \"Spending\"," +
		"\"icon\": \"bogus-icon\"}]}\n```"

	p := insight.NewPipeline("USD")
	result := p.Run(raw)

	if result.Source != insight.SourceModel {
		t.Fatalf("Source = %q, esperado %q", result.Source, insight.SourceModel)
	}
	got := result.Insights[0]
	if got.Urgency != "low" {
		t.Errorf("Urgency = %q, esperado lower-case", got.Urgency)
	}
	if got.Type != "spending" {
		t.Errorf("Type = %q, esperado lower-case", got.Type)
	}
	if got.Icon != insight.DefaultIcon {
		t.Errorf("Icon = %q, esperado reparo para %q", got.Icon, insight.DefaultIcon)
	}
}

func TestRunExtractsBalancedObjectFromNoise(t *testing.T) {
	t.Parallel()

	inner := `{"insights": [{` +
		`"title": "Watch the dining trend",` +
		`"description": "Dining out grew steadily across the last four months of data.",` +
		`"recommendation": "Set a dining budget and review it every week.",` +
		`"potential_impact": "Stops the upward drift early.",` +
		`"urgency": "high",` +
		`"type": "trend",` +
		`"icon": "trending-up"}]}`
	raw := "Here is the analysis you asked for:\n" + inner + "\nLet me know if you need more."

	p := insight.NewPipeline("USD")
	result := p.Run(raw)

	if result.Source != insight.SourceModel {
		t.Fatalf("Source = %q, esperado %q", result.Source, insight.SourceModel)
	}
	if result.Insights[0].Title != "Watch the dining trend" {
		t.Errorf("Title = %q", result.Insights[0].Title)
	}
}

func TestRunCurrencySubstitution(t *testing.T) {
	t.Parallel()

	candidate := validCandidate("Currency swap check")
	candidate["description"] = "You spent ₪500 in shekels on groceries last month alone there."
	candidate["recommendation"] = "Keep grocery spending below ₪400 each month."

	p := insight.NewPipeline("USD")
	result := p.Run(payload(candidate))

	got := result.Insights[0]
	if strings.Contains(got.Description, "₪") || strings.Contains(got.Description, "shekel") {
		t.Errorf("Description não convertida: %q", got.Description)
	}
	if !strings.Contains(got.Description, "$500") {
		t.Errorf("Description = %q, esperado $500", got.Description)
	}
	if !strings.Contains(got.Description, "dollars") {
		t.Errorf("Description = %q, esperado plural preservado", got.Description)
	}
	if !strings.Contains(got.Recommendation, "$400") {
		t.Errorf("Recommendation = %q", got.Recommendation)
	}
}

func TestRunCurrencySubstitutionTowardsILS(t *testing.T) {
	t.Parallel()

	candidate := validCandidate("Inverse currency check")
	candidate["description"] = "You spent $500 in dollars on groceries last month alone there."

	p := insight.NewPipeline("ILS")
	result := p.Run(payload(candidate))

	got := result.Insights[0]
	if !strings.Contains(got.Description, "₪500") {
		t.Errorf("Description = %q, esperado ₪500", got.Description)
	}
	if !strings.Contains(got.Description, "shekels") {
		t.Errorf("Description = %q, esperado shekels", got.Description)
	}
}

func TestRunDiscardsAndBackfills(t *testing.T) {
	t.Parallel()

	bad := map[string]any{
		"title":            "Generic placeholder advice",
		"description":      "This is a placeholder description long enough to pass the size check.",
		"recommendation":   "Replace this placeholder with content.",
		"potential_impact": "",
		"urgency":          "medium",
		"type":             "general",
		"icon":             "lightbulb",
	}

	p := insight.NewPipeline("USD")
	result := p.Run(payload(validCandidate("Keep an eye on rent"), bad))

	if result.Source != insight.SourceRepaired {
		t.Fatalf("Source = %q, esperado %q", result.Source, insight.SourceRepaired)
	}
	if result.Discarded != 1 {
		t.Errorf("Discarded = %d, esperado 1", result.Discarded)
	}
	if result.Warning == "" {
		t.Error("Warning deveria nomear o descarte")
	}
	if len(result.Insights) != 5 {
		t.Errorf("insights = %d, esperado preenchimento até 5", len(result.Insights))
	}
	if result.Insights[0].Title != "Keep an eye on rent" {
		t.Errorf("o candidato válido deveria vir primeiro: %q", result.Insights[0].Title)
	}
}

func TestRunNeverExceedsFiveInsights(t *testing.T) {
	t.Parallel()

	items := make([]map[string]any, 0, 8)
	for i := 0; i < 8; i++ {
		items = append(items, validCandidate("Valid insight number "+strings.Repeat("x", i+1)))
	}

	p := insight.NewPipeline("USD")
	result := p.Run(payload(items...))

	if len(result.Insights) > 5 {
		t.Errorf("insights = %d, máximo é 5", len(result.Insights))
	}
}

func TestRunValidationRules(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(map[string]any)
	}{
		{name: "short title", mutate: func(m map[string]any) { m["title"] = "abc" }},
		{name: "short description", mutate: func(m map[string]any) { m["description"] = "too short" }},
		{name: "short recommendation", mutate: func(m map[string]any) { m["recommendation"] = "nope" }},
		{name: "unknown urgency", mutate: func(m map[string]any) { m["urgency"] = "critical" }},
		{name: "unknown type", mutate: func(m map[string]any) { m["type"] = "misc" }},
		{name: "denylisted text", mutate: func(m map[string]any) { m["description"] = "Lorem ipsum dolor sit amet, consectetur adipiscing elit." }},
		{name: "missing recommendation", mutate: func(m map[string]any) { delete(m, "recommendation") }},
	}

	p := insight.NewPipeline("USD")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			candidate := validCandidate("Completely valid title")
			tt.mutate(candidate)

			result := p.Run(payload(candidate))
			if result.Source != insight.SourceFallback {
				t.Errorf("Source = %q, candidato inválido deveria cair no fallback", result.Source)
			}
		})
	}
}

func TestRunIsIdempotentForValidInput(t *testing.T) {
	t.Parallel()

	p := insight.NewPipeline("USD")

	first := p.Run(payload(validCandidate("Budget the big stuff"), validCandidate("Mind the small leaks")))
	if first.Source != insight.SourceModel {
		t.Fatalf("Source = %q", first.Source)
	}

	// reexecutar sobre a própria saída devolve a mesma lista
	items := make([]any, 0, len(first.Insights))
	for _, ins := range first.Insights {
		items = append(items, map[string]any{
			"title":            ins.Title,
			"description":      ins.Description,
			"recommendation":   ins.Recommendation,
			"potential_impact": ins.PotentialImpact,
			"urgency":          ins.Urgency,
			"type":             ins.Type,
			"icon":             ins.Icon,
		})
	}
	second := p.Run(map[string]any{"insights": items})

	if len(second.Insights) != len(first.Insights) {
		t.Fatalf("tamanhos diferem: %d e %d", len(second.Insights), len(first.Insights))
	}
	for i := range second.Insights {
		if second.Insights[i] != first.Insights[i] {
			t.Errorf("insight %d mudou na revalidação", i)
		}
	}
}

func TestRunDefaultsMissingTitle(t *testing.T) {
	t.Parallel()

	candidate := validCandidate("ignored")
	delete(candidate, "title")

	p := insight.NewPipeline("USD")
	result := p.Run(payload(candidate))

	if result.Source == insight.SourceFallback {
		t.Fatal("título ausente deveria receber padrão, não derrubar o candidato")
	}
	if result.Insights[0].Title == "" {
		t.Error("Title vazio após o reparo")
	}
}
