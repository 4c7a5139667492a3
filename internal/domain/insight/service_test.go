package insight_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"finsight/internal/domain/analytics"
	"finsight/internal/domain/category"
	"finsight/internal/domain/insight"
	"finsight/internal/domain/transaction"
	appErrors "finsight/internal/errors"
	"finsight/internal/llm"

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

type fakeInvoker struct {
	invokeFn func(ctx context.Context, req *llm.InvokeRequest) (any, error)
}

func (f *fakeInvoker) Invoke(ctx context.Context, req *llm.InvokeRequest) (any, error) {
	return f.invokeFn(ctx, req)
}

func analyticsWithDataset() *analytics.Service {
	categoryID := ulid.Make()
	firstDay := time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC)

	txs := make([]*transaction.Transaction, 0, 10)
	for i := 0; i < 10; i++ {
		txs = append(txs, &transaction.Transaction{
			Id:            ulid.Make(),
			CategoryId:    categoryID,
			BillingAmount: 50,
			IsIncome:      false,
			Date:          firstDay.AddDate(0, 0, i),
		})
	}

	categories := []*category.Category{
		{Id: categoryID, Name: "Mercado", Type: category.TypeExpense},
		{Id: ulid.Make(), Name: "Transporte", Type: category.TypeExpense},
		{Id: ulid.Make(), Name: "Salário", Type: category.TypeIncome},
	}

	svc := analytics.NewService(
		&fakeTransactionReader{listAllFn: func(ctx context.Context) ([]*transaction.Transaction, error) {
			return txs, nil
		}},
		&fakeCategoryReader{listAllFn: func(ctx context.Context) ([]*category.Category, error) {
			return categories, nil
		}},
		6, 3,
	)
	svc.Now = func() time.Time { return time.Date(2025, time.June, 15, 10, 0, 0, 0, time.UTC) }
	return svc
}

func analyticsWithoutData() *analytics.Service {
	svc := analytics.NewService(
		&fakeTransactionReader{listAllFn: func(ctx context.Context) ([]*transaction.Transaction, error) {
			return nil, nil
		}},
		&fakeCategoryReader{listAllFn: func(ctx context.Context) ([]*category.Category, error) {
			return nil, nil
		}},
		6, 3,
	)
	return svc
}

func TestGenerateRunsModelResponseThroughPipeline(t *testing.T) {
	t.Parallel()

	invoker := &fakeInvoker{invokeFn: func(ctx context.Context, req *llm.InvokeRequest) (any, error) {
		return payload(validCandidate("Groceries dominate spending")), nil
	}}

	svc := insight.NewService(analyticsWithDataset(), invoker, insight.NewPipeline("USD"))
	result, err := svc.Generate(context.Background())
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	if result.Source != insight.SourceModel {
		t.Errorf("Source = %q, esperado %q", result.Source, insight.SourceModel)
	}
	if result.Insights[0].Title != "Groceries dominate spending" {
		t.Errorf("Title = %q", result.Insights[0].Title)
	}
}

func TestGeneratePromptCarriesHistoryAndForecasts(t *testing.T) {
	t.Parallel()

	var prompt string
	var schema map[string]any
	invoker := &fakeInvoker{invokeFn: func(ctx context.Context, req *llm.InvokeRequest) (any, error) {
		prompt = req.Prompt
		schema = req.ResponseSchema
		return payload(validCandidate("Groceries dominate spending")), nil
	}}

	svc := insight.NewService(analyticsWithDataset(), invoker, insight.NewPipeline("USD"))
	if _, err := svc.Generate(context.Background()); err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	if !strings.Contains(prompt, "Jun 2025") {
		t.Errorf("prompt sem o período corrente: %q", prompt)
	}
	if !strings.Contains(prompt, "Mercado") {
		t.Errorf("prompt sem a projeção por categoria: %q", prompt)
	}
	if schema == nil {
		t.Error("schema de resposta não enviado ao modelo")
	}
}

func TestGenerateFallsBackWhenModelFails(t *testing.T) {
	t.Parallel()

	invoker := &fakeInvoker{invokeFn: func(ctx context.Context, req *llm.InvokeRequest) (any, error) {
		return nil, errors.New("timeout na chamada")
	}}

	svc := insight.NewService(analyticsWithDataset(), invoker, insight.NewPipeline("USD"))
	result, err := svc.Generate(context.Background())
	if err != nil {
		t.Fatalf("falha do modelo não deveria propagar: %v", err)
	}

	if result.Source != insight.SourceFallback {
		t.Errorf("Source = %q, esperado %q", result.Source, insight.SourceFallback)
	}
	if len(result.Insights) == 0 {
		t.Error("fallback nunca pode ser vazio")
	}
}

func TestGeneratePropagatesAdmissionError(t *testing.T) {
	t.Parallel()

	invoker := &fakeInvoker{invokeFn: func(ctx context.Context, req *llm.InvokeRequest) (any, error) {
		t.Error("o modelo não deveria ser invocado sem dados suficientes")
		return nil, nil
	}}

	svc := insight.NewService(analyticsWithoutData(), invoker, insight.NewPipeline("USD"))
	_, err := svc.Generate(context.Background())

	appErr, ok := appErrors.AsAppError(err)
	if !ok {
		t.Fatalf("esperado AppError, obtido %v", err)
	}
	if appErr.Code != "INSUFFICIENT_DATA" {
		t.Errorf("Code = %q", appErr.Code)
	}
}
