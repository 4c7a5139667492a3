package insight

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

const maxInsights = 5

const (
	SourceModel    = "model"
	SourceRepaired = "repaired"
	SourceFallback = "fallback"
)

// Result é a saída de uma execução do pipeline. O chamador sempre recebe pelo
// menos um insight: falhas terminais degradam para a lista determinística.
type Result struct {
	Insights  []Insight `json:"insights"`
	Source    string    `json:"source"`
	Discarded int       `json:"discarded"`
	Warning   string    `json:"warning,omitempty"`
}

// Pipeline valida e repara a resposta semi-estruturada do modelo.
type Pipeline struct {
	TargetCurrency string
}

func NewPipeline(targetCurrency string) *Pipeline {
	return &Pipeline{TargetCurrency: targetCurrency}
}

// Run executa o pipeline sobre a resposta crua, que pode ser uma string ou um
// objeto já estruturado. Não há retry: uma nova tentativa do modelo é decisão
// do chamador.
func (p *Pipeline) Run(raw any) *Result {
	candidates, err := p.parse(raw)
	if err != nil {
		return fallbackResult()
	}

	valid := make([]Insight, 0, len(candidates))
	for _, c := range candidates {
		sanitized := p.sanitize(c)
		if validate(sanitized) {
			valid = append(valid, sanitized)
		}
	}

	if len(valid) == 0 {
		return fallbackResult()
	}

	discarded := len(candidates) - len(valid)
	if len(valid) > maxInsights {
		valid = valid[:maxInsights]
	}

	if discarded == 0 {
		return &Result{Insights: valid, Source: SourceModel}
	}

	for _, fb := range fallbackInsights {
		if len(valid) >= maxInsights {
			break
		}
		valid = append(valid, fb)
	}

	return &Result{
		Insights:  valid,
		Source:    SourceRepaired,
		Discarded: discarded,
		Warning:   fmt.Sprintf("%d insight(s) descartado(s) pela validação", discarded),
	}
}

func fallbackResult() *Result {
	return &Result{Insights: FallbackInsights(), Source: SourceFallback}
}

func (p *Pipeline) parse(raw any) ([]Insight, error) {
	var obj map[string]any

	switch v := raw.(type) {
	case map[string]any:
		obj = v
	case string:
		extracted, ok := extractObject(stripFences(v))
		if !ok {
			return nil, errors.New("nenhum objeto JSON na resposta")
		}
		if err := json.Unmarshal([]byte(extracted), &obj); err != nil {
			return nil, err
		}
	case []byte:
		return p.parse(string(v))
	default:
		return nil, errors.New("formato de resposta não suportado")
	}

	items, ok := obj["insights"].([]any)
	if !ok || len(items) == 0 {
		return nil, errors.New("campo insights ausente ou vazio")
	}

	candidates := make([]Insight, 0, len(items))
	for _, item := range items {
		fields, ok := item.(map[string]any)
		if !ok {
			continue
		}
		candidates = append(candidates, Insight{
			Title:           stringField(fields, "title"),
			Description:     stringField(fields, "description"),
			Recommendation:  stringField(fields, "recommendation"),
			PotentialImpact: stringField(fields, "potential_impact"),
			Urgency:         stringField(fields, "urgency"),
			Type:            stringField(fields, "type"),
			Icon:            stringField(fields, "icon"),
		})
	}

	if len(candidates) == 0 {
		return nil, errors.New("nenhum candidato estruturado")
	}

	return candidates, nil
}

// sanitize aplica os reparos não destrutivos: troca de termos de moeda,
// título padrão, enums em minúsculas e ícone conhecido. É idempotente.
func (p *Pipeline) sanitize(c Insight) Insight {
	c.Description = p.swapCurrency(c.Description)
	c.Recommendation = p.swapCurrency(c.Recommendation)
	c.PotentialImpact = p.swapCurrency(c.PotentialImpact)

	c.Title = strings.TrimSpace(c.Title)
	if c.Title == "" {
		c.Title = "Financial insight"
	}

	c.Urgency = strings.ToLower(strings.TrimSpace(c.Urgency))
	c.Type = strings.ToLower(strings.TrimSpace(c.Type))

	if !validIcons[c.Icon] {
		c.Icon = DefaultIcon
	}

	return c
}

var denylist = []string{
	"lorem ipsum",
	"placeholder",
	"your text here",
	"example insight",
	"sample insight",
	"as an ai",
	"i cannot provide",
	"[insert",
}

func validate(c Insight) bool {
	if c.Title == "" || c.Description == "" || c.Recommendation == "" ||
		c.Urgency == "" || c.Type == "" || c.Icon == "" {
		return false
	}

	if !validUrgencies[c.Urgency] || !validTypes[c.Type] {
		return false
	}

	if len(c.Title) < 5 || len(c.Description) < 20 || len(c.Recommendation) < 10 {
		return false
	}

	combined := strings.ToLower(strings.Join([]string{
		c.Title, c.Description, c.Recommendation, c.PotentialImpact,
	}, " "))
	for _, banned := range denylist {
		if strings.Contains(combined, banned) {
			return false
		}
	}

	return true
}

var (
	shekelPlural = regexp.MustCompile(`(?i)\bshekels\b`)
	shekelWord   = regexp.MustCompile(`(?i)\bshekel\b`)
	dollarPlural = regexp.MustCompile(`(?i)\bdollars\b`)
	dollarWord   = regexp.MustCompile(`(?i)\bdollar\b`)
	ilsCode      = regexp.MustCompile(`\bILS\b`)
	usdCode      = regexp.MustCompile(`\bUSD\b`)
)

func (p *Pipeline) swapCurrency(s string) string {
	if strings.EqualFold(p.TargetCurrency, "ILS") {
		s = strings.ReplaceAll(s, "$", "₪")
		s = dollarPlural.ReplaceAllString(s, "shekels")
		s = dollarWord.ReplaceAllString(s, "shekel")
		s = usdCode.ReplaceAllString(s, "ILS")
		return s
	}

	s = strings.ReplaceAll(s, "₪", "$")
	s = shekelPlural.ReplaceAllString(s, "dollars")
	s = shekelWord.ReplaceAllString(s, "dollar")
	s = ilsCode.ReplaceAllString(s, "USD")
	return s
}

func stripFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// extractObject devolve a primeira substring `{...}` balanceada, respeitando
// strings JSON e escapes.
func extractObject(s string) (string, bool) {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		ch := s[i]
		if escaped {
			escaped = false
			continue
		}
		switch ch {
		case '\\':
			if inString {
				escaped = true
			}
		case '"':
			inString = !inString
		case '{':
			if !inString {
				depth++
			}
		case '}':
			if !inString {
				depth--
				if depth == 0 {
					return s[start : i+1], true
				}
			}
		}
	}

	return "", false
}

func stringField(fields map[string]any, key string) string {
	if v, ok := fields[key].(string); ok {
		return v
	}
	return ""
}
