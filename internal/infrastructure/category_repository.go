package infrastructure

import (
	"context"
	"time"

	"finsight/internal/domain/category"
	"finsight/internal/pkg"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

type CategoryRepository struct {
	DB *gorm.DB
}

var _ category.Repository = (*CategoryRepository)(nil)

type categoryDB struct {
	Id        string    `gorm:"type:varchar(26);primaryKey"`
	Name      string    `gorm:"size:100;not null"`
	Type      string    `gorm:"type:varchar(10);not null"`
	Icon      string    `gorm:"size:50"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (categoryDB) TableName() string {
	return "categories"
}

func toDomainCategory(cdb *categoryDB) (*category.Category, error) {
	id, err := pkg.ParseULID(cdb.Id)
	if err != nil {
		return nil, err
	}
	return &category.Category{
		Id:        id,
		Name:      cdb.Name,
		Type:      category.Type(cdb.Type),
		Icon:      cdb.Icon,
		CreatedAt: cdb.CreatedAt,
		UpdatedAt: cdb.UpdatedAt,
	}, nil
}

func toDBCategory(c *category.Category) *categoryDB {
	return &categoryDB{
		Id:        c.Id.String(),
		Name:      c.Name,
		Type:      string(c.Type),
		Icon:      c.Icon,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func (r *CategoryRepository) Create(ctx context.Context, c *category.Category) error {
	cdb := toDBCategory(c)
	return r.DB.WithContext(ctx).Table("categories").Create(cdb).Error
}

func (r *CategoryRepository) Update(ctx context.Context, c *category.Category) error {
	cdb := toDBCategory(c)
	return r.DB.WithContext(ctx).Model(&categoryDB{}).Where("id = ?", cdb.Id).Updates(cdb).Error
}

func (r *CategoryRepository) Delete(ctx context.Context, categoryID ulid.ULID) error {
	return r.DB.WithContext(ctx).Where("id = ?", categoryID.String()).Delete(&categoryDB{}).Error
}

func (r *CategoryRepository) GetByID(ctx context.Context, categoryID ulid.ULID) (*category.Category, error) {
	var cdb categoryDB
	err := r.DB.WithContext(ctx).Where("id = ?", categoryID.String()).First(&cdb).Error
	if err != nil {
		return nil, err
	}
	return toDomainCategory(&cdb)
}

func (r *CategoryRepository) GetByName(ctx context.Context, categoryName string) (*category.Category, error) {
	var cdb categoryDB
	err := r.DB.WithContext(ctx).Where("name = ?", categoryName).First(&cdb).Error
	if err != nil {
		return nil, err
	}
	return toDomainCategory(&cdb)
}

func (r *CategoryRepository) List(ctx context.Context, pagination *pkg.PaginationParams) ([]*category.Category, int64, error) {
	if pagination == nil {
		pagination = &pkg.PaginationParams{Page: 1, Limit: 10}
	}
	pagination.Normalize()

	baseQuery := r.DB.WithContext(ctx).Table("categories")

	var total int64
	if err := baseQuery.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []categoryDB
	err := baseQuery.Order("name ASC").
		Offset(pagination.Offset()).
		Limit(pagination.Limit).
		Find(&rows).Error
	if err != nil {
		return nil, 0, err
	}

	categories := make([]*category.Category, 0, len(rows))
	for i := range rows {
		c, err := toDomainCategory(&rows[i])
		if err != nil {
			return nil, 0, err
		}
		categories = append(categories, c)
	}
	return categories, total, nil
}

func (r *CategoryRepository) ListAll(ctx context.Context) ([]*category.Category, error) {
	var rows []categoryDB
	err := r.DB.WithContext(ctx).Order("name ASC").Find(&rows).Error
	if err != nil {
		return nil, err
	}

	categories := make([]*category.Category, 0, len(rows))
	for i := range rows {
		c, err := toDomainCategory(&rows[i])
		if err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, nil
}
