package infrastructure

import (
	"context"
	"time"

	"finsight/internal/domain/transaction"
	"finsight/internal/pkg"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

type TransactionRepository struct {
	DB *gorm.DB
}

var _ transaction.Repository = (*TransactionRepository)(nil)

type transactionDB struct {
	Id            string    `gorm:"type:varchar(26);primaryKey;column:id"`
	CategoryId    string    `gorm:"type:varchar(26);index;not null;column:category_id"`
	BillingAmount float64   `gorm:"not null;column:billing_amount"`
	IsIncome      bool      `gorm:"not null;column:is_income"`
	Description   string    `gorm:"size:255;column:description"`
	Date          time.Time `gorm:"not null;column:date"`
	CreatedAt     time.Time `gorm:"not null;column:created_at"`
	UpdatedAt     time.Time `gorm:"not null;column:updated_at"`
}

func (transactionDB) TableName() string {
	return "transactions"
}

func toDomainTransaction(tdb *transactionDB) (*transaction.Transaction, error) {
	id, err := pkg.ParseULID(tdb.Id)
	if err != nil {
		return nil, err
	}
	categoryID, err := pkg.ParseULID(tdb.CategoryId)
	if err != nil {
		return nil, err
	}

	return &transaction.Transaction{
		Id:            id,
		CategoryId:    categoryID,
		BillingAmount: tdb.BillingAmount,
		IsIncome:      tdb.IsIncome,
		Description:   tdb.Description,
		Date:          tdb.Date,
		CreatedAt:     tdb.CreatedAt,
		UpdatedAt:     tdb.UpdatedAt,
	}, nil
}

func toDBTransaction(t *transaction.Transaction) *transactionDB {
	return &transactionDB{
		Id:            t.Id.String(),
		CategoryId:    t.CategoryId.String(),
		BillingAmount: t.BillingAmount,
		IsIncome:      t.IsIncome,
		Description:   t.Description,
		Date:          t.Date,
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}
}

func toDomainTransactions(rows []transactionDB) ([]*transaction.Transaction, error) {
	txs := make([]*transaction.Transaction, 0, len(rows))
	for i := range rows {
		t, err := toDomainTransaction(&rows[i])
		if err != nil {
			return nil, err
		}
		txs = append(txs, t)
	}
	return txs, nil
}

func (r *TransactionRepository) Create(ctx context.Context, t *transaction.Transaction) error {
	tdb := toDBTransaction(t)
	return r.DB.WithContext(ctx).Table("transactions").Create(tdb).Error
}

func (r *TransactionRepository) Update(ctx context.Context, t *transaction.Transaction) error {
	tdb := toDBTransaction(t)
	return r.DB.WithContext(ctx).Model(&transactionDB{}).Where("id = ?", tdb.Id).Updates(map[string]interface{}{
		"category_id":    tdb.CategoryId,
		"billing_amount": tdb.BillingAmount,
		"is_income":      tdb.IsIncome,
		"description":    tdb.Description,
		"date":           tdb.Date,
		"updated_at":     tdb.UpdatedAt,
	}).Error
}

func (r *TransactionRepository) Delete(ctx context.Context, transactionID ulid.ULID) error {
	return r.DB.WithContext(ctx).Where("id = ?", transactionID.String()).Delete(&transactionDB{}).Error
}

func (r *TransactionRepository) GetByID(ctx context.Context, transactionID ulid.ULID) (*transaction.Transaction, error) {
	var tdb transactionDB
	err := r.DB.WithContext(ctx).Where("id = ?", transactionID.String()).First(&tdb).Error
	if err != nil {
		return nil, err
	}
	return toDomainTransaction(&tdb)
}

func (r *TransactionRepository) List(ctx context.Context, filters *transaction.Filters, pagination *pkg.PaginationParams) ([]*transaction.Transaction, int64, error) {
	if pagination == nil {
		pagination = &pkg.PaginationParams{Page: 1, Limit: 10}
	}
	pagination.Normalize()

	baseQuery := r.DB.WithContext(ctx).Table("transactions")
	if filters != nil {
		if filters.CategoryId != nil {
			baseQuery = baseQuery.Where("category_id = ?", filters.CategoryId.String())
		}
		if filters.From != nil {
			baseQuery = baseQuery.Where("date >= ?", *filters.From)
		}
		if filters.To != nil {
			baseQuery = baseQuery.Where("date <= ?", *filters.To)
		}
		if filters.IsIncome != nil {
			baseQuery = baseQuery.Where("is_income = ?", *filters.IsIncome)
		}
	}

	var total int64
	if err := baseQuery.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []transactionDB
	err := baseQuery.Order("date DESC").
		Offset(pagination.Offset()).
		Limit(pagination.Limit).
		Find(&rows).Error
	if err != nil {
		return nil, 0, err
	}

	txs, err := toDomainTransactions(rows)
	if err != nil {
		return nil, 0, err
	}
	return txs, total, nil
}

func (r *TransactionRepository) ListAll(ctx context.Context) ([]*transaction.Transaction, error) {
	var rows []transactionDB
	err := r.DB.WithContext(ctx).Order("date ASC").Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return toDomainTransactions(rows)
}

func (r *TransactionRepository) ListByCategoryAndRange(ctx context.Context, categoryID ulid.ULID, start, end time.Time) ([]*transaction.Transaction, error) {
	var rows []transactionDB
	err := r.DB.WithContext(ctx).
		Where("category_id = ? AND date >= ? AND date <= ?", categoryID.String(), start, end).
		Order("date ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return toDomainTransactions(rows)
}

func (r *TransactionRepository) CountByCategory(ctx context.Context, categoryID ulid.ULID) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&transactionDB{}).
		Where("category_id = ?", categoryID.String()).
		Count(&count).Error
	return count, err
}
