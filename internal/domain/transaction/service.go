package transaction

import (
	"context"
	"errors"
	"strings"
	"time"

	appErrors "finsight/internal/errors"
	"finsight/internal/pkg"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

// CategoryChecker valida a existência da categoria referenciada sem acoplar
// este pacote ao serviço de categorias.
type CategoryChecker interface {
	Exists(ctx context.Context, categoryID ulid.ULID) error
}

type Service struct {
	Repository      Repository
	CategoryChecker CategoryChecker
}

func NewService(repo Repository, categoryChecker CategoryChecker) *Service {
	return &Service{
		Repository:      repo,
		CategoryChecker: categoryChecker,
	}
}

func (s *Service) CreateTransaction(ctx context.Context, tx *Transaction) error {
	if err := s.validate(ctx, tx); err != nil {
		return err
	}

	now := time.Now()
	if pkg.IsEmptyULID(tx.Id) {
		tx.Id = pkg.GenerateULIDObject()
	}
	tx.Description = strings.TrimSpace(tx.Description)
	tx.CreatedAt = now
	tx.UpdatedAt = now

	if err := s.Repository.Create(ctx, tx); err != nil {
		return appErrors.NewDatabaseError(err)
	}

	return nil
}

func (s *Service) UpdateTransaction(ctx context.Context, tx *Transaction) error {
	stored, err := s.GetTransactionByID(ctx, tx.Id)
	if err != nil {
		return err
	}

	if err := s.validate(ctx, tx); err != nil {
		return err
	}

	stored.CategoryId = tx.CategoryId
	stored.BillingAmount = tx.BillingAmount
	stored.IsIncome = tx.IsIncome
	stored.Description = strings.TrimSpace(tx.Description)
	if !tx.Date.IsZero() {
		stored.Date = tx.Date
	}
	stored.UpdatedAt = time.Now()

	if err := s.Repository.Update(ctx, stored); err != nil {
		return appErrors.NewDatabaseError(err)
	}

	return nil
}

func (s *Service) DeleteTransaction(ctx context.Context, transactionID ulid.ULID) error {
	if _, err := s.GetTransactionByID(ctx, transactionID); err != nil {
		return err
	}

	return s.Repository.Delete(ctx, transactionID)
}

func (s *Service) GetTransactionByID(ctx context.Context, transactionID ulid.ULID) (*Transaction, error) {
	tx, err := s.Repository.GetByID(ctx, transactionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrTransactionNotFound
		}
		return nil, appErrors.NewDatabaseError(err)
	}
	return tx, nil
}

func (s *Service) ListTransactions(ctx context.Context, filters *Filters, pagination *pkg.PaginationParams) ([]*Transaction, int64, error) {
	transactions, total, err := s.Repository.List(ctx, filters, pagination)
	if err != nil {
		return nil, 0, appErrors.NewDatabaseError(err)
	}
	return transactions, total, nil
}

func (s *Service) validate(ctx context.Context, tx *Transaction) error {
	if tx.BillingAmount < 0 {
		return appErrors.NewValidationError("billing_amount", "não pode ser negativo")
	}

	if tx.Date.IsZero() {
		return appErrors.NewValidationError("date", "é obrigatória")
	}

	if pkg.IsEmptyULID(tx.CategoryId) {
		return appErrors.NewValidationError("category_id", "é obrigatória")
	}

	if s.CategoryChecker != nil {
		if err := s.CategoryChecker.Exists(ctx, tx.CategoryId); err != nil {
			return err
		}
	}

	return nil
}
