package analytics

import (
	"context"
	"math"
	"time"

	"finsight/internal/domain/category"
	"finsight/internal/domain/period"
	"finsight/internal/domain/transaction"
	appErrors "finsight/internal/errors"

	"golang.org/x/sync/errgroup"
)

type TransactionReader interface {
	ListAll(ctx context.Context) ([]*transaction.Transaction, error)
}

type CategoryReader interface {
	ListAll(ctx context.Context) ([]*category.Category, error)
}

// Service orquestra o pipeline analítico: carrega as coleções, aplica o gate
// de suficiência e delega para as funções puras de agregação e projeção.
type Service struct {
	Transactions   TransactionReader
	Categories     CategoryReader
	HistoryMonths  int
	ForecastMonths int
	Now            func() time.Time
}

func NewService(txReader TransactionReader, catReader CategoryReader, historyMonths, forecastMonths int) *Service {
	return &Service{
		Transactions:   txReader,
		Categories:     catReader,
		HistoryMonths:  historyMonths,
		ForecastMonths: forecastMonths,
		Now:            time.Now,
	}
}

// CheckSufficiency expõe o gate sem erro: o chamador decide como apresentar
// um resultado insuficiente.
func (s *Service) CheckSufficiency(ctx context.Context) (Sufficiency, error) {
	txs, categories, err := s.load(ctx)
	if err != nil {
		return Sufficiency{}, err
	}
	return CheckSufficiency(txs, categories), nil
}

func (s *Service) History(ctx context.Context) ([]PeriodTotals, error) {
	txs, categories, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.admit(txs, categories); err != nil {
		return nil, err
	}

	return MonthlyHistory(txs, s.HistoryMonths, s.now()), nil
}

func (s *Service) Forecast(ctx context.Context, months int, method ForecastMethod, customRatePct float64) (*Forecast, error) {
	if months <= 0 {
		months = s.ForecastMonths
	}
	if method == "" {
		method = MethodTrend
	}
	if !method.Valid() {
		return nil, appErrors.NewValidationError("method", "deve ser average, trend ou custom")
	}

	txs, categories, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.admit(txs, categories); err != nil {
		return nil, err
	}

	now := s.now()
	history := MonthlyHistory(txs, s.HistoryMonths, now)
	return Project(history, months, method, customRatePct, now), nil
}

func (s *Service) CategoryForecasts(ctx context.Context, months int) ([]CategoryForecast, error) {
	if months <= 0 {
		months = s.ForecastMonths
	}

	txs, categories, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.admit(txs, categories); err != nil {
		return nil, err
	}

	return CategoryForecasts(txs, categories, months, s.now()), nil
}

// DashboardSummary compara o período corrente com o imediatamente anterior.
type DashboardSummary struct {
	Period            period.Info `json:"period"`
	Income            float64     `json:"income"`
	Expenses          float64     `json:"expenses"`
	Savings           float64     `json:"savings"`
	TransactionCount  int         `json:"transaction_count"`
	IncomeChangePct   float64     `json:"income_change_pct"`
	ExpensesChangePct float64     `json:"expenses_change_pct"`
}

func (s *Service) Dashboard(ctx context.Context, g period.Granularity, offset int) (*DashboardSummary, error) {
	if !g.Valid() {
		return nil, appErrors.NewValidationError("granularity", "deve ser weekly, monthly, quarterly ou yearly")
	}

	txs, err := s.Transactions.ListAll(ctx)
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	current := period.Resolve(g, offset, s.now())
	previous := period.Previous(g, current)

	summary := &DashboardSummary{Period: current}
	var prevIncome, prevExpenses float64
	for _, tx := range txs {
		if period.Contains(current, tx.Date) {
			summary.TransactionCount++
			if tx.IsIncome {
				summary.Income += tx.BillingAmount
			} else {
				summary.Expenses += tx.BillingAmount
			}
			continue
		}
		if period.Contains(previous, tx.Date) {
			if tx.IsIncome {
				prevIncome += tx.BillingAmount
			} else {
				prevExpenses += tx.BillingAmount
			}
		}
	}

	summary.Savings = summary.Income - summary.Expenses
	summary.IncomeChangePct = changePct(summary.Income, prevIncome)
	summary.ExpensesChangePct = changePct(summary.Expenses, prevExpenses)

	return summary, nil
}

// load busca transações e categorias em paralelo e junta antes de agregar.
func (s *Service) load(ctx context.Context) ([]*transaction.Transaction, []*category.Category, error) {
	var (
		txs        []*transaction.Transaction
		categories []*category.Category
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		txs, err = s.Transactions.ListAll(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		categories, err = s.Categories.ListAll(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, nil, appErrors.NewDatabaseError(err)
	}

	return txs, categories, nil
}

func (s *Service) admit(txs []*transaction.Transaction, categories []*category.Category) error {
	check := CheckSufficiency(txs, categories)
	if !check.Sufficient {
		return appErrors.NewInsufficientDataError(check.Reason, check.Measured, check.Required)
	}
	return nil
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func changePct(current, previous float64) float64 {
	if previous == 0 {
		return 0
	}
	return math.Round((current - previous) / previous * 100)
}
