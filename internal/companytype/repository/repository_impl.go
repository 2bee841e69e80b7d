package repository

import (
	"context"

	"github.com/stitchline/vestra/internal/companytype/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Create(ctx context.Context, db *gorm.DB, companyType *domain.CompanyType) error {
	return db.WithContext(ctx).Create(companyType).Error
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, companyType *domain.CompanyType) error {
	if companyType == nil {
		return gorm.ErrInvalidData
	}
	return db.WithContext(ctx).Exec(
		`UPDATE company_types SET name = ?, discount_bps = ?, updated_at = ? WHERE id = ?`,
		companyType.Name,
		companyType.DiscountBps,
		companyType.UpdatedAt,
		companyType.ID,
	).Error
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, id int64) error {
	return db.WithContext(ctx).Exec(`DELETE FROM company_types WHERE id = ?`, id).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id int64) (*domain.CompanyType, error) {
	var ct domain.CompanyType
	err := db.WithContext(ctx).Raw(
		`SELECT id, name, discount_bps, created_at, updated_at FROM company_types WHERE id = ?`,
		id,
	).Scan(&ct).Error
	if err != nil {
		return nil, err
	}
	if ct.ID == 0 {
		return nil, nil
	}
	return &ct, nil
}

func (r *repo) FindAll(ctx context.Context, db *gorm.DB) ([]domain.CompanyType, error) {
	var items []domain.CompanyType
	err := db.WithContext(ctx).Raw(
		`SELECT id, name, discount_bps, created_at, updated_at FROM company_types ORDER BY name ASC`,
	).Scan(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) CountCompanies(ctx context.Context, db *gorm.DB, id int64) (int64, error) {
	var count int64
	err := db.WithContext(ctx).
		Table("companies").
		Where("company_type_id = ?", id).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
