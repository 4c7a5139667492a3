package budget

import (
	"context"
	"errors"
	"time"

	"finsight/internal/domain/period"
	appErrors "finsight/internal/errors"
	"finsight/internal/pkg"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

type Service struct {
	Repository        Repository
	TransactionReader TransactionReader
	CategoryReader    CategoryReader
	Now               func() time.Time
}

func NewService(repo Repository, txReader TransactionReader, categoryReader CategoryReader) *Service {
	return &Service{
		Repository:        repo,
		TransactionReader: txReader,
		CategoryReader:    categoryReader,
		Now:               time.Now,
	}
}

type CreateBudgetRequest struct {
	CategoryId ulid.ULID
	Amount     float64
	Period     period.Granularity
	StartDate  time.Time
	EndDate    *time.Time
}

type UpdateBudgetRequest struct {
	Amount  *float64
	EndDate *time.Time
}

func (s *Service) CreateBudget(ctx context.Context, req *CreateBudgetRequest) (*Budget, error) {
	if err := s.validateCreateRequest(ctx, req); err != nil {
		return nil, err
	}

	// O par (categoria, período) é único por contrato, mas o banco não
	// impõe a restrição: a verificação acontece aqui, antes do insert.
	existing, _ := s.Repository.GetByCategoryAndPeriod(ctx, req.CategoryId, req.Period)
	if existing != nil {
		return nil, appErrors.NewConflictError("orçamento para esta categoria neste período")
	}

	now := s.now()
	startDate := req.StartDate
	if startDate.IsZero() {
		startDate = now
	}

	b := &Budget{
		Id:         pkg.GenerateULIDObject(),
		CategoryId: req.CategoryId,
		Amount:     req.Amount,
		Period:     req.Period,
		StartDate:  startDate,
		EndDate:    req.EndDate,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.Repository.Create(ctx, b); err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	return b, nil
}

func (s *Service) UpdateBudget(ctx context.Context, budgetID ulid.ULID, req *UpdateBudgetRequest) error {
	b, err := s.GetBudgetByID(ctx, budgetID)
	if err != nil {
		return err
	}

	if req.Amount != nil {
		if *req.Amount <= 0 {
			return appErrors.NewValidationError("amount", "deve ser maior que zero")
		}
		b.Amount = *req.Amount
	}

	if req.EndDate != nil {
		if req.EndDate.Before(b.StartDate) {
			return appErrors.NewValidationError("end_date", "deve ser posterior à data inicial")
		}
		b.EndDate = req.EndDate
	}

	b.UpdatedAt = s.now()

	if err := s.Repository.Update(ctx, b); err != nil {
		return appErrors.NewDatabaseError(err)
	}

	return nil
}

func (s *Service) DeleteBudget(ctx context.Context, budgetID ulid.ULID) error {
	if _, err := s.GetBudgetByID(ctx, budgetID); err != nil {
		return err
	}

	return s.Repository.Delete(ctx, budgetID)
}

func (s *Service) GetBudgetByID(ctx context.Context, budgetID ulid.ULID) (*Budget, error) {
	b, err := s.Repository.GetById(ctx, budgetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrBudgetNotFound
		}
		return nil, appErrors.NewDatabaseError(err)
	}

	return b, nil
}

func (s *Service) ListBudgets(ctx context.Context, pagination *pkg.PaginationParams) ([]*Budget, int64, error) {
	budgets, total, err := s.Repository.List(ctx, pagination)
	if err != nil {
		return nil, 0, appErrors.NewDatabaseError(err)
	}

	s.fillCategoryNames(ctx, budgets)
	return budgets, total, nil
}

// BudgetWithStat combina o orçamento com o gasto do período de comparação.
type BudgetWithStat struct {
	*Budget
	Stat Stat `json:"stat"`
}

// GetBudgetStat normaliza o orçamento para a granularidade pedida, soma as
// despesas da categoria dentro dos limites resolvidos e classifica o status.
func (s *Service) GetBudgetStat(ctx context.Context, budgetID ulid.ULID, g period.Granularity, offset int) (*BudgetWithStat, error) {
	b, err := s.GetBudgetByID(ctx, budgetID)
	if err != nil {
		return nil, err
	}

	s.fillCategoryNames(ctx, []*Budget{b})

	spent, err := s.spentInPeriod(ctx, b.CategoryId, g, offset)
	if err != nil {
		return nil, err
	}

	return &BudgetWithStat{
		Budget: b,
		Stat:   ComputeStat(b, g, spent),
	}, nil
}

// ListBudgetStats devolve todos os orçamentos normalizados para um único
// período de comparação.
func (s *Service) ListBudgetStats(ctx context.Context, g period.Granularity, offset int) ([]*BudgetWithStat, error) {
	budgets, err := s.Repository.ListAll(ctx)
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	s.fillCategoryNames(ctx, budgets)

	stats := make([]*BudgetWithStat, 0, len(budgets))
	for _, b := range budgets {
		spent, err := s.spentInPeriod(ctx, b.CategoryId, g, offset)
		if err != nil {
			return nil, err
		}
		stats = append(stats, &BudgetWithStat{
			Budget: b,
			Stat:   ComputeStat(b, g, spent),
		})
	}

	return stats, nil
}

func (s *Service) spentInPeriod(ctx context.Context, categoryID ulid.ULID, g period.Granularity, offset int) (float64, error) {
	p := period.Resolve(g, offset, s.now())

	txs, err := s.TransactionReader.ListByCategoryAndRange(ctx, categoryID, p.Start, p.End)
	if err != nil {
		return 0, appErrors.NewDatabaseError(err)
	}

	spent := 0.0
	for _, tx := range txs {
		if !tx.IsIncome {
			spent += tx.BillingAmount
		}
	}
	return spent, nil
}

func (s *Service) fillCategoryNames(ctx context.Context, budgets []*Budget) {
	if s.CategoryReader == nil {
		return
	}
	for _, b := range budgets {
		if cat, err := s.CategoryReader.GetByID(ctx, b.CategoryId); err == nil && cat != nil {
			b.CategoryName = cat.Name
		}
	}
}

func (s *Service) validateCreateRequest(ctx context.Context, req *CreateBudgetRequest) error {
	if req.Amount <= 0 {
		return appErrors.NewValidationError("amount", "deve ser maior que zero")
	}

	if !req.Period.Valid() {
		return appErrors.NewValidationError("period", "deve ser weekly, monthly, quarterly ou yearly")
	}

	if req.EndDate != nil && !req.StartDate.IsZero() && req.EndDate.Before(req.StartDate) {
		return appErrors.NewValidationError("end_date", "deve ser posterior à data inicial")
	}

	if s.CategoryReader != nil {
		if _, err := s.CategoryReader.GetByID(ctx, req.CategoryId); err != nil {
			return appErrors.ErrCategoryNotFound
		}
	}

	return nil
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
