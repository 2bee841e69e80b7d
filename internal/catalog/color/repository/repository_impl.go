package repository

import (
	"context"

	"github.com/stitchline/vestra/internal/catalog/color/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Create(ctx context.Context, db *gorm.DB, color *domain.Color) error {
	return db.WithContext(ctx).Create(color).Error
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, color *domain.Color) error {
	if color == nil {
		return gorm.ErrInvalidData
	}
	return db.WithContext(ctx).Exec(
		`UPDATE colors SET name = ?, hex = ?, updated_at = ? WHERE id = ?`,
		color.Name,
		color.Hex,
		color.UpdatedAt,
		color.ID,
	).Error
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, id int64) error {
	return db.WithContext(ctx).Exec(`DELETE FROM colors WHERE id = ?`, id).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id int64) (*domain.Color, error) {
	var c domain.Color
	err := db.WithContext(ctx).Raw(
		`SELECT id, name, hex, created_at, updated_at FROM colors WHERE id = ?`,
		id,
	).Scan(&c).Error
	if err != nil {
		return nil, err
	}
	if c.ID == 0 {
		return nil, nil
	}
	return &c, nil
}

func (r *repo) FindAll(ctx context.Context, db *gorm.DB) ([]domain.Color, error) {
	var items []domain.Color
	err := db.WithContext(ctx).Raw(
		`SELECT id, name, hex, created_at, updated_at FROM colors ORDER BY name ASC`,
	).Scan(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) CountReferences(ctx context.Context, db *gorm.DB, id int64) (int64, error) {
	var count int64
	err := db.WithContext(ctx).
		Table("product_color_images").
		Where("color_id = ?", id).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
