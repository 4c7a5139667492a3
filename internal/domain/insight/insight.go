package insight

// Insight é uma sugestão financeira gerada pelo modelo e saneada pelo
// pipeline de validação. Depois de validada, só o ícone pode ser reparado.
type Insight struct {
	Title           string `json:"title"`
	Description     string `json:"description"`
	Recommendation  string `json:"recommendation"`
	PotentialImpact string `json:"potential_impact"`
	Urgency         string `json:"urgency"`
	Type            string `json:"type"`
	Icon            string `json:"icon"`
}

const (
	UrgencyHigh   = "high"
	UrgencyMedium = "medium"
	UrgencyLow    = "low"
)

const (
	TypeSpending = "spending"
	TypeBudget   = "budget"
	TypeTrend    = "trend"
	TypeGeneral  = "general"
)

const DefaultIcon = "lightbulb"

var validUrgencies = map[string]bool{
	UrgencyHigh:   true,
	UrgencyMedium: true,
	UrgencyLow:    true,
}

var validTypes = map[string]bool{
	TypeSpending: true,
	TypeBudget:   true,
	TypeTrend:    true,
	TypeGeneral:  true,
}

var validIcons = map[string]bool{
	"lightbulb":      true,
	"trending-up":    true,
	"trending-down":  true,
	"alert-triangle": true,
	"piggy-bank":     true,
	"target":         true,
	"wallet":         true,
	"calendar":       true,
}
