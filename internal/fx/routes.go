package fx

import (
	"finsight/internal/domain/analytics"
	"finsight/internal/domain/budget"
	"finsight/internal/domain/category"
	"finsight/internal/domain/insight"
	"finsight/internal/domain/transaction"
	"finsight/internal/routes"

	"go.uber.org/fx"
)

// RoutesModule fornece o handler HTTP
var RoutesModule = fx.Module("routes",
	fx.Provide(
		newHandler,
	),
)

func newHandler(
	transactionSvc *transaction.Service,
	categorySvc *category.Service,
	budgetSvc *budget.Service,
	analyticsSvc *analytics.Service,
	insightSvc *insight.Service,
) *routes.Handler {
	return &routes.Handler{
		TransactionService: transactionSvc,
		CategoryService:    categorySvc,
		BudgetService:      budgetSvc,
		AnalyticsService:   analyticsSvc,
		InsightService:     insightSvc,
	}
}
