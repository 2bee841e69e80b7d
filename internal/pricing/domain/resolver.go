// Package domain implements tiered price resolution: a customer's company
// type maps to a percentage discount applied to catalog base prices.
package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	companydomain "github.com/stitchline/vestra/internal/company/domain"
	companytypedomain "github.com/stitchline/vestra/internal/companytype/domain"
	"github.com/stitchline/vestra/pkg/money"
)

const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

// Principal is the authenticated session identity. It is passed explicitly;
// resolution never reads ambient session state.
type Principal struct {
	ID        snowflake.ID
	Role      string
	CompanyID *snowflake.ID
}

// Tier is the resolved discount bracket for one principal. The zero value
// means no discount and is safe to apply.
type Tier struct {
	Name        string
	DiscountBps int64
}

// Applied reports whether the tier actually grants a discount.
func (t Tier) Applied() bool { return t.DiscountBps > 0 }

// Quote is the price pair produced for a single product.
type Quote struct {
	OriginalCents   int64
	DiscountedCents int64
	DiscountBps     int64
	TierName        string
}

// CompanyLookup fetches a company row; nil means absent.
type CompanyLookup func(ctx context.Context, id int64) (*companydomain.Company, error)

// CompanyTypeLookup fetches a company type row; nil means absent.
type CompanyTypeLookup func(ctx context.Context, id int64) (*companytypedomain.CompanyType, error)

// ResolveTier walks principal -> company -> company type and returns the
// discount tier. Every missing link and every lookup failure degrades to the
// zero tier: pricing enrichment must never block a render. Callers that want
// failure diagnostics log inside the lookup closures.
func ResolveTier(ctx context.Context, principal *Principal, companies CompanyLookup, types CompanyTypeLookup) Tier {
	if principal == nil || principal.Role != RoleCustomer || principal.CompanyID == nil {
		return Tier{}
	}

	company, err := companies(ctx, principal.CompanyID.Int64())
	if err != nil || company == nil || company.CompanyTypeID == nil {
		return Tier{}
	}

	companyType, err := types(ctx, company.CompanyTypeID.Int64())
	if err != nil || companyType == nil || companyType.DiscountBps <= 0 {
		return Tier{}
	}

	return Tier{
		Name:        companyType.Name,
		DiscountBps: companyType.DiscountBps,
	}
}

// Apply produces the quote for one base price under the given tier. Pure and
// idempotent; OriginalCents always echoes the input.
func Apply(basePriceCents int64, tier Tier) Quote {
	if !tier.Applied() {
		return Quote{
			OriginalCents:   basePriceCents,
			DiscountedCents: basePriceCents,
		}
	}
	return Quote{
		OriginalCents:   basePriceCents,
		DiscountedCents: money.ApplyDiscountBps(basePriceCents, tier.DiscountBps),
		DiscountBps:     tier.DiscountBps,
		TierName:        tier.Name,
	}
}

// Resolve is the single-product convenience: tier resolution plus apply.
func Resolve(ctx context.Context, basePriceCents int64, principal *Principal, companies CompanyLookup, types CompanyTypeLookup) Quote {
	return Apply(basePriceCents, ResolveTier(ctx, principal, companies, types))
}
