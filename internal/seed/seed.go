// Package seed bootstraps a fresh install with a default admin account and a
// starter set of company types and colors.
package seed

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	authdomain "github.com/stitchline/vestra/internal/auth/domain"
	"github.com/stitchline/vestra/internal/auth/password"
	colordomain "github.com/stitchline/vestra/internal/catalog/color/domain"
	companytypedomain "github.com/stitchline/vestra/internal/companytype/domain"
	"gorm.io/gorm"
)

const (
	defaultAdminEmail    = "admin@vestra.local"
	defaultAdminPassword = "changeme1"
	defaultAdminName     = "Vestra Admin"
)

var defaultCompanyTypes = []struct {
	Name        string
	DiscountBps int64
}{
	{Name: "Silver", DiscountBps: 1000},
	{Name: "Gold", DiscountBps: 2000},
}

var defaultColors = []struct {
	Name string
	Hex  string
}{
	{Name: "Black", Hex: "#000000"},
	{Name: "White", Hex: "#ffffff"},
	{Name: "Navy", Hex: "#1f2a44"},
	{Name: "Red", Hex: "#c0392b"},
}

// EnsureDefaults seeds the admin account, company types and colors. Existing
// rows are left untouched.
func EnsureDefaults(db *gorm.DB) error {
	if db == nil {
		return errors.New("seed database handle is required")
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		return err
	}

	ctx := context.Background()
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureAdminTx(ctx, tx, node); err != nil {
			return err
		}
		if err := ensureCompanyTypesTx(ctx, tx, node); err != nil {
			return err
		}
		return ensureColorsTx(ctx, tx, node)
	})
}

func ensureAdminTx(ctx context.Context, tx *gorm.DB, node *snowflake.Node) error {
	var admin authdomain.Customer
	err := tx.WithContext(ctx).
		Where("role = ?", authdomain.RoleAdmin).
		First(&admin).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashed, err := password.Hash(defaultAdminPassword)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	admin = authdomain.Customer{
		ID:           node.Generate(),
		Email:        strings.ToLower(defaultAdminEmail),
		Name:         defaultAdminName,
		Role:         authdomain.RoleAdmin,
		PasswordHash: &hashed,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	return tx.WithContext(ctx).Create(&admin).Error
}

func ensureCompanyTypesTx(ctx context.Context, tx *gorm.DB, node *snowflake.Node) error {
	for _, ct := range defaultCompanyTypes {
		var existing companytypedomain.CompanyType
		err := tx.WithContext(ctx).
			Where("name = ?", ct.Name).
			First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		now := time.Now().UTC()
		row := companytypedomain.CompanyType{
			ID:          node.Generate(),
			Name:        ct.Name,
			DiscountBps: ct.DiscountBps,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := tx.WithContext(ctx).Create(&row).Error; err != nil {
			return err
		}
	}
	return nil
}

func ensureColorsTx(ctx context.Context, tx *gorm.DB, node *snowflake.Node) error {
	for _, c := range defaultColors {
		var existing colordomain.Color
		err := tx.WithContext(ctx).
			Where("name = ?", c.Name).
			First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		hex := c.Hex
		now := time.Now().UTC()
		row := colordomain.Color{
			ID:        node.Generate(),
			Name:      c.Name,
			Hex:       &hex,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := tx.WithContext(ctx).Create(&row).Error; err != nil {
			return err
		}
	}
	return nil
}
