package contracts

import "finsight/internal/domain/insight"

type InsightGenerateResponse struct {
	Insights  []insight.Insight `json:"insights"`
	Source    string            `json:"source"`
	Discarded int               `json:"discarded,omitempty"`
	Warning   string            `json:"warning,omitempty"`
}
