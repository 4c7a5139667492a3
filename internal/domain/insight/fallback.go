package insight

// fallbackInsights é a lista determinística usada quando a resposta do modelo
// é irrecuperável, ou como fonte de preenchimento quando parte dos candidatos
// é descartada. A ordem importa: o preenchimento consome do início.
var fallbackInsights = []Insight{
	{
		Title:           "Review your recurring expenses",
		Description:     "Subscriptions and recurring charges tend to accumulate unnoticed over time and quietly erode your monthly savings.",
		Recommendation:  "List every recurring charge from the last three months and cancel the ones you no longer use.",
		PotentialImpact: "Recovering even two unused subscriptions can free a meaningful amount every month.",
		Urgency:         UrgencyMedium,
		Type:            TypeSpending,
		Icon:            "wallet",
	},
	{
		Title:           "Set a budget for your top category",
		Description:     "Your largest spending category usually offers the biggest opportunity for savings when given a concrete limit.",
		Recommendation:  "Create a monthly budget for the category where you spend the most and track it weekly.",
		PotentialImpact: "A clear ceiling on the biggest category typically reduces its spend within two months.",
		Urgency:         UrgencyMedium,
		Type:            TypeBudget,
		Icon:            "target",
	},
	{
		Title:           "Build a small emergency buffer",
		Description:     "An emergency reserve covering one month of expenses protects your budget from unexpected bills.",
		Recommendation:  "Transfer a fixed amount to a separate account on the day you receive income.",
		PotentialImpact: "A one-month buffer prevents most unplanned expenses from turning into debt.",
		Urgency:         UrgencyHigh,
		Type:            TypeGeneral,
		Icon:            "piggy-bank",
	},
	{
		Title:           "Watch categories that keep growing",
		Description:     "Categories with a rising monthly trend compound quickly and deserve attention before they dominate your spending.",
		Recommendation:  "Compare this month against your six-month average for each category and flag anything growing steadily.",
		PotentialImpact: "Catching a rising trend early keeps small increases from becoming permanent habits.",
		Urgency:         UrgencyLow,
		Type:            TypeTrend,
		Icon:            "trending-up",
	},
	{
		Title:           "Schedule a monthly money check-in",
		Description:     "A short monthly review of income, expenses and savings keeps your financial picture current and decisions deliberate.",
		Recommendation:  "Block thirty minutes at the start of each month to review the previous month and adjust budgets.",
		PotentialImpact: "Regular reviews consistently improve savings rates by keeping spending intentional.",
		Urgency:         UrgencyLow,
		Type:            TypeGeneral,
		Icon:            "calendar",
	},
}

// FallbackInsights devolve uma cópia da lista determinística.
func FallbackInsights() []Insight {
	out := make([]Insight, len(fallbackInsights))
	copy(out, fallbackInsights)
	return out
}
