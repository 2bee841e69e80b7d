package service

import (
	"context"

	companydomain "github.com/stitchline/vestra/internal/company/domain"
	companytypedomain "github.com/stitchline/vestra/internal/companytype/domain"
	"github.com/stitchline/vestra/internal/observability/metrics"
	"github.com/stitchline/vestra/internal/pricing/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB              *gorm.DB
	Log             *zap.Logger
	CompanyRepo     companydomain.Repository
	CompanyTypeRepo companytypedomain.Repository
	Metrics         *metrics.Metrics `optional:"true"`
}

type Service struct {
	db              *gorm.DB
	log             *zap.Logger
	companyRepo     companydomain.Repository
	companyTypeRepo companytypedomain.Repository
	metrics         *metrics.Metrics
}

func New(p Params) domain.Service {
	return &Service{
		db:              p.DB,
		log:             p.Log.Named("pricing.service"),
		companyRepo:     p.CompanyRepo,
		companyTypeRepo: p.CompanyTypeRepo,
		metrics:         p.Metrics,
	}
}

// TierFor resolves the principal's discount tier. Lookup failures are logged
// and degrade to the zero tier so storefront rendering is never blocked on
// pricing enrichment.
func (s *Service) TierFor(ctx context.Context, principal *domain.Principal) domain.Tier {
	tier := domain.ResolveTier(ctx, principal, s.companyLookup(), s.companyTypeLookup())

	if tier.Applied() {
		s.metrics.RecordPriceResolution("tiered")
	} else {
		s.metrics.RecordPriceResolution("base")
	}
	return tier
}

func (s *Service) PriceFor(ctx context.Context, principal *domain.Principal, basePriceCents int64) domain.Quote {
	return domain.Apply(basePriceCents, s.TierFor(ctx, principal))
}

func (s *Service) companyLookup() domain.CompanyLookup {
	return func(ctx context.Context, id int64) (*companydomain.Company, error) {
		company, err := s.companyRepo.FindByID(ctx, s.db, id)
		if err != nil {
			s.log.Warn("company lookup failed, pricing falls back to base",
				zap.Int64("company_id", id),
				zap.Error(err),
			)
		}
		return company, err
	}
}

func (s *Service) companyTypeLookup() domain.CompanyTypeLookup {
	return func(ctx context.Context, id int64) (*companytypedomain.CompanyType, error) {
		companyType, err := s.companyTypeRepo.FindByID(ctx, s.db, id)
		if err != nil {
			s.log.Warn("company type lookup failed, pricing falls back to base",
				zap.Int64("company_type_id", id),
				zap.Error(err),
			)
		}
		return companyType, err
	}
}
