package fx

import (
	"context"

	"finsight/config"
	"finsight/internal/domain/analytics"
	"finsight/internal/domain/budget"
	"finsight/internal/domain/category"
	"finsight/internal/domain/insight"
	"finsight/internal/domain/transaction"
	"finsight/internal/infrastructure"
	"finsight/internal/llm"

	"go.uber.org/fx"
)

// DomainModule fornece todos os services do domínio
var DomainModule = fx.Module("domain",
	fx.Provide(
		newCategoryService,
		newTransactionService,
		newBudgetService,
		newAnalyticsService,
		newInsightPipeline,
		newInsightService,
	),
	fx.Invoke(
		seedDefaultCategories,
	),
)

func newCategoryService(repo *infrastructure.CategoryRepository) *category.Service {
	return category.NewService(repo)
}

func newTransactionService(
	repo *infrastructure.TransactionRepository,
	categorySvc *category.Service,
) *transaction.Service {
	return transaction.NewService(repo, categorySvc)
}

func newBudgetService(
	repo *infrastructure.BudgetRepository,
	transactionRepo *infrastructure.TransactionRepository,
	categorySvc *category.Service,
) *budget.Service {
	return budget.NewService(repo, transactionRepo, categorySvc)
}

func newAnalyticsService(
	transactionRepo *infrastructure.TransactionRepository,
	categoryRepo *infrastructure.CategoryRepository,
	cfg *config.Config,
) *analytics.Service {
	return analytics.NewService(transactionRepo, categoryRepo, cfg.Analytics.HistoryMonths, cfg.Analytics.ForecastMonths)
}

func newInsightPipeline(cfg *config.Config) *insight.Pipeline {
	return insight.NewPipeline(cfg.Analytics.TargetCurrency)
}

func newInsightService(
	analyticsSvc *analytics.Service,
	invoker llm.Invoker,
	pipeline *insight.Pipeline,
) *insight.Service {
	return insight.NewService(analyticsSvc, invoker, pipeline)
}

// seedDefaultCategories garante o conjunto padrão de categorias no startup.
func seedDefaultCategories(categorySvc *category.Service) error {
	return categorySvc.EnsureDefaultCategories(context.Background())
}
