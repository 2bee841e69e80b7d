package migration

import (
	authdomain "github.com/stitchline/vestra/internal/auth/domain"
	cartdomain "github.com/stitchline/vestra/internal/cart/domain"
	colordomain "github.com/stitchline/vestra/internal/catalog/color/domain"
	colorimagedomain "github.com/stitchline/vestra/internal/catalog/colorimage/domain"
	productdomain "github.com/stitchline/vestra/internal/catalog/product/domain"
	companydomain "github.com/stitchline/vestra/internal/company/domain"
	companytypedomain "github.com/stitchline/vestra/internal/companytype/domain"
	"github.com/stitchline/vestra/internal/config"
	orderdomain "github.com/stitchline/vestra/internal/order/domain"
	promotiondomain "github.com/stitchline/vestra/internal/promotion/domain"
	quotedomain "github.com/stitchline/vestra/internal/quote/domain"
	"github.com/stitchline/vestra/internal/seed"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Module("migrations",
	fx.Invoke(func(conn *gorm.DB, cfg config.Config) error {
		if cfg.DBType == "postgres" {
			sqlDB, err := conn.DB()
			if err != nil {
				return err
			}
			if err := RunMigrations(sqlDB); err != nil {
				return err
			}
		} else {
			// sqlite and mysql installs rely on the ORM schema.
			if err := conn.AutoMigrate(
				&colordomain.Color{},
				&productdomain.Product{},
				&colorimagedomain.ProductColorImage{},
				&companytypedomain.CompanyType{},
				&companydomain.Company{},
				&authdomain.Customer{},
				&authdomain.Session{},
				&cartdomain.CartItem{},
				&quotedomain.Quote{},
				&orderdomain.Order{},
				&promotiondomain.Promotion{},
			); err != nil {
				return err
			}
		}

		return seed.EnsureDefaults(conn)
	}),
)
