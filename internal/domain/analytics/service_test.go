package analytics_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"finsight/internal/domain/analytics"
	"finsight/internal/domain/category"
	"finsight/internal/domain/period"
	"finsight/internal/domain/transaction"
	appErrors "finsight/internal/errors"

	"github.com/oklog/ulid/v2"
)

type fakeTransactionReader struct {
	listAllFn func(ctx context.Context) ([]*transaction.Transaction, error)
}

func (f *fakeTransactionReader) ListAll(ctx context.Context) ([]*transaction.Transaction, error) {
	return f.listAllFn(ctx)
}

type fakeCategoryReader struct {
	listAllFn func(ctx context.Context) ([]*category.Category, error)
}

func (f *fakeCategoryReader) ListAll(ctx context.Context) ([]*category.Category, error) {
	return f.listAllFn(ctx)
}

func newServiceWithData(txs []*transaction.Transaction, categories []*category.Category) *analytics.Service {
	svc := analytics.NewService(
		&fakeTransactionReader{listAllFn: func(ctx context.Context) ([]*transaction.Transaction, error) {
			return txs, nil
		}},
		&fakeCategoryReader{listAllFn: func(ctx context.Context) ([]*category.Category, error) {
			return categories, nil
		}},
		6, 3,
	)
	svc.Now = referenceNow
	return svc
}

func sufficientDataset() ([]*transaction.Transaction, []*category.Category) {
	txs := spreadTransactions(10, time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC))
	return txs, makeCategories(3)
}

func TestHistoryRejectsThinDataset(t *testing.T) {
	t.Parallel()

	txs := spreadTransactions(4, time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC))
	svc := newServiceWithData(txs, makeCategories(3))

	_, err := svc.History(context.Background())
	if err == nil {
		t.Fatal("esperado erro de admissão")
	}

	appErr, ok := appErrors.AsAppError(err)
	if !ok {
		t.Fatalf("esperado AppError, obtido %T", err)
	}
	if appErr.Code != "INSUFFICIENT_DATA" {
		t.Errorf("Code = %q", appErr.Code)
	}
	if appErr.StatusCode != 422 {
		t.Errorf("StatusCode = %d, esperado 422", appErr.StatusCode)
	}
	if appErr.Details["reason"] != analytics.ReasonInsufficientTransactions {
		t.Errorf("reason = %v", appErr.Details["reason"])
	}
	if appErr.Details["measured"] != 4 || appErr.Details["required"] != 10 {
		t.Errorf("measured/required = %v/%v", appErr.Details["measured"], appErr.Details["required"])
	}
}

func TestHistoryReturnsConfiguredWindow(t *testing.T) {
	t.Parallel()

	txs, categories := sufficientDataset()
	svc := newServiceWithData(txs, categories)

	history, err := svc.History(context.Background())
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if len(history) != 6 {
		t.Errorf("history = %d períodos, esperado 6", len(history))
	}
	if history[5].Label != "Jun 2025" {
		t.Errorf("último período = %q, esperado o corrente", history[5].Label)
	}
}

func TestCheckSufficiencyDoesNotError(t *testing.T) {
	t.Parallel()

	svc := newServiceWithData(nil, nil)

	check, err := svc.CheckSufficiency(context.Background())
	if err != nil {
		t.Fatalf("o gate exposto não deveria virar erro: %v", err)
	}
	if check.Sufficient {
		t.Error("esperado insuficiente")
	}
	if check.Reason != analytics.ReasonMissingData {
		t.Errorf("Reason = %q", check.Reason)
	}
}

func TestForecastRejectsUnknownMethod(t *testing.T) {
	t.Parallel()

	txs, categories := sufficientDataset()
	svc := newServiceWithData(txs, categories)

	_, err := svc.Forecast(context.Background(), 3, analytics.ForecastMethod("linear"), 0)
	appErr, ok := appErrors.AsAppError(err)
	if !ok {
		t.Fatalf("esperado AppError, obtido %v", err)
	}
	if appErr.Code != "VALIDATION_ERROR" {
		t.Errorf("Code = %q", appErr.Code)
	}
}

func TestForecastAppliesDefaults(t *testing.T) {
	t.Parallel()

	txs, categories := sufficientDataset()
	svc := newServiceWithData(txs, categories)

	// months <= 0 cai no padrão do serviço; método vazio vira trend
	forecast, err := svc.Forecast(context.Background(), 0, "", 0)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if len(forecast.Points) != 6+3 {
		t.Fatalf("pontos = %d, esperado histórico + projeção padrão", len(forecast.Points))
	}

	projected := 0
	for _, point := range forecast.Points {
		if point.IsForecast {
			projected++
		}
	}
	if projected != 3 {
		t.Errorf("pontos projetados = %d, esperado 3", projected)
	}
}

func TestDashboardRejectsUnknownGranularity(t *testing.T) {
	t.Parallel()

	svc := newServiceWithData(nil, nil)

	_, err := svc.Dashboard(context.Background(), period.Granularity("daily"), 0)
	appErr, ok := appErrors.AsAppError(err)
	if !ok {
		t.Fatalf("esperado AppError, obtido %v", err)
	}
	if appErr.Code != "VALIDATION_ERROR" {
		t.Errorf("Code = %q", appErr.Code)
	}
}

func TestDashboardComparesWithPreviousPeriod(t *testing.T) {
	t.Parallel()

	categoryID := ulid.Make()
	current := time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC)
	previous := time.Date(2025, time.May, 10, 0, 0, 0, 0, time.UTC)
	txs := []*transaction.Transaction{
		incomeTx(categoryID, 2000, current),
		expenseTx(categoryID, 500, current),
		incomeTx(categoryID, 1000, previous),
		expenseTx(categoryID, 1000, previous),
	}
	svc := newServiceWithData(txs, nil)

	summary, err := svc.Dashboard(context.Background(), period.Monthly, 0)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	if summary.Income != 2000 || summary.Expenses != 500 || summary.Savings != 1500 {
		t.Errorf("totais = %+v", summary)
	}
	if summary.TransactionCount != 2 {
		t.Errorf("TransactionCount = %d, só o período corrente conta", summary.TransactionCount)
	}
	if summary.IncomeChangePct != 100 {
		t.Errorf("IncomeChangePct = %v, esperado 100", summary.IncomeChangePct)
	}
	if summary.ExpensesChangePct != -50 {
		t.Errorf("ExpensesChangePct = %v, esperado -50", summary.ExpensesChangePct)
	}
	if summary.Period.Label != "Jun 2025" {
		t.Errorf("Period.Label = %q", summary.Period.Label)
	}
}

func TestDashboardChangeIsZeroWithoutBaseline(t *testing.T) {
	t.Parallel()

	categoryID := ulid.Make()
	txs := []*transaction.Transaction{
		incomeTx(categoryID, 3000, time.Date(2025, time.June, 5, 0, 0, 0, 0, time.UTC)),
	}
	svc := newServiceWithData(txs, nil)

	summary, err := svc.Dashboard(context.Background(), period.Monthly, 0)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if summary.IncomeChangePct != 0 {
		t.Errorf("IncomeChangePct = %v, esperado 0 sem período anterior", summary.IncomeChangePct)
	}
}

func TestLoadWrapsRepositoryFailure(t *testing.T) {
	t.Parallel()

	svc := analytics.NewService(
		&fakeTransactionReader{listAllFn: func(ctx context.Context) ([]*transaction.Transaction, error) {
			return nil, errors.New("conexão recusada")
		}},
		&fakeCategoryReader{listAllFn: func(ctx context.Context) ([]*category.Category, error) {
			return nil, nil
		}},
		6, 3,
	)
	svc.Now = referenceNow

	_, err := svc.History(context.Background())
	appErr, ok := appErrors.AsAppError(err)
	if !ok {
		t.Fatalf("esperado AppError, obtido %v", err)
	}
	if appErr.Code != "DATABASE_ERROR" {
		t.Errorf("Code = %q", appErr.Code)
	}
}
