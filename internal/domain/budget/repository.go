package budget

import (
	"context"
	"time"

	"finsight/internal/domain/category"
	"finsight/internal/domain/period"
	"finsight/internal/domain/transaction"
	"finsight/internal/pkg"

	"github.com/oklog/ulid/v2"
)

type Repository interface {
	Create(ctx context.Context, b *Budget) error
	Update(ctx context.Context, b *Budget) error
	Delete(ctx context.Context, budgetID ulid.ULID) error
	GetById(ctx context.Context, budgetID ulid.ULID) (*Budget, error)
	GetByCategoryAndPeriod(ctx context.Context, categoryID ulid.ULID, p period.Granularity) (*Budget, error)
	List(ctx context.Context, pagination *pkg.PaginationParams) ([]*Budget, int64, error)
	ListAll(ctx context.Context) ([]*Budget, error)
}

// TransactionReader fornece as transações da categoria dentro da janela
// resolvida, para o cálculo do gasto do período de comparação.
type TransactionReader interface {
	ListByCategoryAndRange(ctx context.Context, categoryID ulid.ULID, start, end time.Time) ([]*transaction.Transaction, error)
}

// CategoryReader resolve o nome e a existência da categoria do orçamento.
type CategoryReader interface {
	GetByID(ctx context.Context, categoryID ulid.ULID) (*category.Category, error)
}
