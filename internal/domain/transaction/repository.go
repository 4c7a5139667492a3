package transaction

import (
	"context"
	"time"

	"finsight/internal/pkg"

	"github.com/oklog/ulid/v2"
)

type Filters struct {
	CategoryId *ulid.ULID
	From       *time.Time
	To         *time.Time
	IsIncome   *bool
}

type Repository interface {
	Create(ctx context.Context, transaction *Transaction) error
	Update(ctx context.Context, transaction *Transaction) error
	Delete(ctx context.Context, transactionID ulid.ULID) error
	GetByID(ctx context.Context, transactionID ulid.ULID) (*Transaction, error)
	List(ctx context.Context, filters *Filters, pagination *pkg.PaginationParams) ([]*Transaction, int64, error)
	ListAll(ctx context.Context) ([]*Transaction, error)
	ListByCategoryAndRange(ctx context.Context, categoryID ulid.ULID, start, end time.Time) ([]*Transaction, error)
	CountByCategory(ctx context.Context, categoryID ulid.ULID) (int64, error)
}
