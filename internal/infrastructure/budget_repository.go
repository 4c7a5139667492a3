package infrastructure

import (
	"context"
	"time"

	"finsight/internal/domain/budget"
	"finsight/internal/domain/period"
	"finsight/internal/pkg"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

type BudgetRepository struct {
	DB *gorm.DB
}

type budgetDB struct {
	Id         string     `gorm:"type:varchar(26);primaryKey"`
	CategoryId string     `gorm:"type:varchar(26);index;not null"`
	Amount     float64    `gorm:"type:decimal(15,2);not null"`
	Period     string     `gorm:"type:varchar(10);not null"`
	StartDate  time.Time  `gorm:"type:date;not null"`
	EndDate    *time.Time `gorm:"type:date"`
	CreatedAt  time.Time  `gorm:"not null"`
	UpdatedAt  time.Time  `gorm:"not null"`
}

func (budgetDB) TableName() string {
	return "budgets"
}

func toDomainBudget(bdb *budgetDB) (*budget.Budget, error) {
	id, err := pkg.ParseULID(bdb.Id)
	if err != nil {
		return nil, err
	}

	categoryID, err := pkg.ParseULID(bdb.CategoryId)
	if err != nil {
		return nil, err
	}

	return &budget.Budget{
		Id:         id,
		CategoryId: categoryID,
		Amount:     bdb.Amount,
		Period:     period.Granularity(bdb.Period),
		StartDate:  bdb.StartDate,
		EndDate:    bdb.EndDate,
		CreatedAt:  bdb.CreatedAt,
		UpdatedAt:  bdb.UpdatedAt,
	}, nil
}

func toDBBudget(b *budget.Budget) *budgetDB {
	return &budgetDB{
		Id:         b.Id.String(),
		CategoryId: b.CategoryId.String(),
		Amount:     b.Amount,
		Period:     string(b.Period),
		StartDate:  b.StartDate,
		EndDate:    b.EndDate,
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.UpdatedAt,
	}
}

func (r *BudgetRepository) Create(ctx context.Context, b *budget.Budget) error {
	bdb := toDBBudget(b)
	return r.DB.WithContext(ctx).Table("budgets").Create(bdb).Error
}

func (r *BudgetRepository) Update(ctx context.Context, b *budget.Budget) error {
	bdb := toDBBudget(b)
	return r.DB.WithContext(ctx).Model(&budgetDB{}).Where("id = ?", bdb.Id).Updates(bdb).Error
}

func (r *BudgetRepository) Delete(ctx context.Context, budgetID ulid.ULID) error {
	return r.DB.WithContext(ctx).Where("id = ?", budgetID.String()).Delete(&budgetDB{}).Error
}

func (r *BudgetRepository) GetById(ctx context.Context, budgetID ulid.ULID) (*budget.Budget, error) {
	var bdb budgetDB
	err := r.DB.WithContext(ctx).Where("id = ?", budgetID.String()).First(&bdb).Error
	if err != nil {
		return nil, err
	}
	return toDomainBudget(&bdb)
}

func (r *BudgetRepository) GetByCategoryAndPeriod(ctx context.Context, categoryID ulid.ULID, p period.Granularity) (*budget.Budget, error) {
	var bdb budgetDB
	err := r.DB.WithContext(ctx).Where("category_id = ? AND period = ?", categoryID.String(), string(p)).First(&bdb).Error
	if err != nil {
		return nil, err
	}
	return toDomainBudget(&bdb)
}

func (r *BudgetRepository) List(ctx context.Context, pagination *pkg.PaginationParams) ([]*budget.Budget, int64, error) {
	if pagination == nil {
		pagination = &pkg.PaginationParams{Page: 1, Limit: 10}
	}
	pagination.Normalize()

	baseQuery := r.DB.WithContext(ctx).Table("budgets")

	var total int64
	if err := baseQuery.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []budgetDB
	err := baseQuery.Order("created_at DESC").
		Offset(pagination.Offset()).
		Limit(pagination.Limit).
		Find(&rows).Error
	if err != nil {
		return nil, 0, err
	}

	budgets := make([]*budget.Budget, 0, len(rows))
	for i := range rows {
		b, err := toDomainBudget(&rows[i])
		if err != nil {
			return nil, 0, err
		}
		budgets = append(budgets, b)
	}
	return budgets, total, nil
}

func (r *BudgetRepository) ListAll(ctx context.Context) ([]*budget.Budget, error) {
	var rows []budgetDB
	err := r.DB.WithContext(ctx).Order("created_at DESC").Find(&rows).Error
	if err != nil {
		return nil, err
	}

	budgets := make([]*budget.Budget, 0, len(rows))
	for i := range rows {
		b, err := toDomainBudget(&rows[i])
		if err != nil {
			return nil, err
		}
		budgets = append(budgets, b)
	}
	return budgets, nil
}
