package category

import (
	"context"
	"errors"
	"time"

	"finsight/internal/domain/shared"
	appErrors "finsight/internal/errors"
	"finsight/internal/logger"
	"finsight/internal/pkg"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

type Service struct {
	Repository Repository
}

func NewService(repo Repository) *Service {
	return &Service{Repository: repo}
}

func (s *Service) Create(ctx context.Context, category *Category) error {
	category.Name = shared.NormalizeName(category.Name)
	if category.Name == "" {
		return appErrors.NewValidationError("name", "é obrigatório")
	}

	if !category.Type.Valid() {
		return appErrors.NewValidationError("type", "deve ser expense ou income")
	}

	if err := s.checkNameNotExists(ctx, category.Name); err != nil {
		return err
	}

	now := time.Now()
	if pkg.IsEmptyULID(category.Id) {
		category.Id = pkg.GenerateULIDObject()
	}
	category.CreatedAt = now
	category.UpdatedAt = now

	if err := s.Repository.Create(ctx, category); err != nil {
		if shared.IsUniqueConstraintError(err) {
			return appErrors.NewConflictError("categoria")
		}
		return appErrors.NewDatabaseError(err)
	}

	return nil
}

func (s *Service) Update(ctx context.Context, category *Category) error {
	existing, err := s.Repository.GetByID(ctx, category.Id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return appErrors.ErrCategoryNotFound
	}
	if err != nil {
		return appErrors.NewDatabaseError(err)
	}

	category.Name = shared.NormalizeName(category.Name)
	if category.Name == "" {
		return appErrors.NewValidationError("name", "é obrigatório")
	}

	if !category.Type.Valid() {
		return appErrors.NewValidationError("type", "deve ser expense ou income")
	}

	if existing.Name != category.Name {
		if err := s.checkNameNotExists(ctx, category.Name); err != nil {
			return err
		}
	}

	existing.Name = category.Name
	existing.Type = category.Type
	existing.Icon = category.Icon
	existing.UpdatedAt = time.Now()

	return s.Repository.Update(ctx, existing)
}

func (s *Service) Delete(ctx context.Context, categoryID ulid.ULID) error {
	if _, err := s.Repository.GetByID(ctx, categoryID); errors.Is(err, gorm.ErrRecordNotFound) {
		return appErrors.ErrCategoryNotFound
	} else if err != nil {
		return appErrors.NewDatabaseError(err)
	}

	return s.Repository.Delete(ctx, categoryID)
}

func (s *Service) GetByID(ctx context.Context, categoryID ulid.ULID) (*Category, error) {
	category, err := s.Repository.GetByID(ctx, categoryID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, appErrors.ErrCategoryNotFound
	}
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	return category, nil
}

func (s *Service) List(ctx context.Context, pagination *pkg.PaginationParams) ([]*Category, int64, error) {
	categories, total, err := s.Repository.List(ctx, pagination)
	if err != nil {
		return nil, 0, appErrors.NewDatabaseError(err)
	}
	return categories, total, nil
}

// Exists implementa transaction.CategoryChecker.
func (s *Service) Exists(ctx context.Context, categoryID ulid.ULID) error {
	_, err := s.GetByID(ctx, categoryID)
	return err
}

// EnsureDefaultCategories cria o conjunto padrão quando ainda não existir.
// Falhas individuais são registradas e não interrompem o seed.
func (s *Service) EnsureDefaultCategories(ctx context.Context) error {
	for _, defaultCat := range GetDefaultCategories() {
		existing, err := s.Repository.GetByName(ctx, defaultCat.Name)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return appErrors.NewDatabaseError(err)
		}
		if existing != nil {
			continue
		}

		if err := s.Repository.Create(ctx, defaultCat); err != nil {
			if shared.IsUniqueConstraintError(err) {
				continue
			}
			logger.Warn().Err(err).Str("category", defaultCat.Name).Msg("Falha ao criar categoria padrão")
		}
	}

	return nil
}

func (s *Service) checkNameNotExists(ctx context.Context, name string) error {
	existing, err := s.Repository.GetByName(ctx, name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return appErrors.NewDatabaseError(err)
	}
	if existing != nil {
		return appErrors.NewConflictError("categoria")
	}
	return nil
}
