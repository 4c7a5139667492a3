package category

import (
	"context"

	"finsight/internal/pkg"

	"github.com/oklog/ulid/v2"
)

type Repository interface {
	Create(ctx context.Context, category *Category) error
	Update(ctx context.Context, category *Category) error
	Delete(ctx context.Context, categoryID ulid.ULID) error
	GetByID(ctx context.Context, categoryID ulid.ULID) (*Category, error)
	GetByName(ctx context.Context, categoryName string) (*Category, error)
	List(ctx context.Context, pagination *pkg.PaginationParams) ([]*Category, int64, error)
	ListAll(ctx context.Context) ([]*Category, error)
}
