package domain

import "context"

// Service resolves discount tiers against stored company data. A tier is
// resolved once per request principal and applied to any number of products.
type Service interface {
	TierFor(ctx context.Context, principal *Principal) Tier
	PriceFor(ctx context.Context, principal *Principal, basePriceCents int64) Quote
}
