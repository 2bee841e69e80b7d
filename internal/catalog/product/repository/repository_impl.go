package repository

import (
	"context"
	"strings"

	"github.com/stitchline/vestra/internal/catalog/product/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

var sortableColumns = map[string]bool{
	"id":               true,
	"created_at":       true,
	"updated_at":       true,
	"name":             true,
	"base_price_cents": true,
}

func (r *repo) Create(ctx context.Context, db *gorm.DB, product *domain.Product) error {
	return db.WithContext(ctx).Create(product).Error
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, product *domain.Product) error {
	if product == nil {
		return gorm.ErrInvalidData
	}
	return db.WithContext(ctx).
		Model(&domain.Product{}).
		Where("id = ?", product.ID).
		Updates(map[string]any{
			"slug":             product.Slug,
			"name":             product.Name,
			"description":      product.Description,
			"category":         product.Category,
			"base_price_cents": product.BasePriceCents,
			"images":           product.Images,
			"sizes":            product.Sizes,
			"colors":           product.Colors,
			"active":           product.Active,
			"updated_at":       product.UpdatedAt,
		}).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id int64) (*domain.Product, error) {
	var p domain.Product
	err := db.WithContext(ctx).
		Model(&domain.Product{}).
		Where("id = ?", id).
		First(&p).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *repo) FindBySlug(ctx context.Context, db *gorm.DB, slug string) (*domain.Product, error) {
	var p domain.Product
	err := db.WithContext(ctx).
		Model(&domain.Product{}).
		Where("slug = ?", slug).
		First(&p).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *repo) CountBySlugPrefix(ctx context.Context, db *gorm.DB, prefix string) (int64, error) {
	var count int64
	err := db.WithContext(ctx).
		Model(&domain.Product{}).
		Where("slug = ? OR slug LIKE ?", prefix, prefix+"-%").
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB, filter domain.ListFilter) ([]domain.Product, error) {
	stmt := db.WithContext(ctx).Model(&domain.Product{})

	if search := strings.TrimSpace(filter.Search); search != "" {
		stmt = stmt.Where("name LIKE ?", "%"+search+"%")
	}
	if filter.Category != "" {
		stmt = stmt.Where("category = ?", filter.Category)
	}
	if filter.Active != nil {
		stmt = stmt.Where("active = ?", *filter.Active)
	}
	if filter.AfterID != 0 {
		stmt = stmt.Where("id > ?", filter.AfterID)
	}

	sortBy := filter.SortBy
	if !sortableColumns[sortBy] {
		sortBy = "created_at"
	}
	order := "ASC"
	if strings.EqualFold(filter.OrderBy, "desc") {
		order = "DESC"
	}
	stmt = stmt.Order(sortBy + " " + order)
	if sortBy != "id" {
		stmt = stmt.Order("id ASC")
	}

	if filter.PageSize > 0 {
		// Over-fetch one row so the caller can tell whether more pages exist.
		stmt = stmt.Limit(filter.PageSize + 1)
	}

	var items []domain.Product
	if err := stmt.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}
