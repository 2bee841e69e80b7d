package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, db *gorm.DB, companyType *CompanyType) error
	Update(ctx context.Context, db *gorm.DB, companyType *CompanyType) error
	Delete(ctx context.Context, db *gorm.DB, id int64) error
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*CompanyType, error)
	FindAll(ctx context.Context, db *gorm.DB) ([]CompanyType, error)
	CountCompanies(ctx context.Context, db *gorm.DB, id int64) (int64, error)
}
