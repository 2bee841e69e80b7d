package repository

import (
	"context"
	"strings"

	"github.com/stitchline/vestra/internal/company/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Create(ctx context.Context, db *gorm.DB, company *domain.Company) error {
	return db.WithContext(ctx).Create(company).Error
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, company *domain.Company) error {
	if company == nil {
		return gorm.ErrInvalidData
	}
	return db.WithContext(ctx).Exec(
		`UPDATE companies
		 SET name = ?, company_type_id = ?, contact_email = ?, contact_phone = ?, updated_at = ?
		 WHERE id = ?`,
		company.Name,
		company.CompanyTypeID,
		company.ContactEmail,
		company.ContactPhone,
		company.UpdatedAt,
		company.ID,
	).Error
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, id int64) error {
	return db.WithContext(ctx).Exec(`DELETE FROM companies WHERE id = ?`, id).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id int64) (*domain.Company, error) {
	var c domain.Company
	err := db.WithContext(ctx).
		Model(&domain.Company{}).
		Where("id = ?", id).
		First(&c).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB, search string) ([]domain.Company, error) {
	stmt := db.WithContext(ctx).Model(&domain.Company{})
	if search = strings.TrimSpace(search); search != "" {
		stmt = stmt.Where("name LIKE ?", "%"+search+"%")
	}

	var items []domain.Company
	if err := stmt.Order("name ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) CountMembers(ctx context.Context, db *gorm.DB, id int64) (int64, error) {
	var count int64
	err := db.WithContext(ctx).
		Table("customers").
		Where("company_id = ?", id).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
