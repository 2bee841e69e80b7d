package domain

import (
	"context"
	"errors"
	"testing"

	"github.com/bwmarrin/snowflake"
	companydomain "github.com/stitchline/vestra/internal/company/domain"
	companytypedomain "github.com/stitchline/vestra/internal/companytype/domain"
	"github.com/stretchr/testify/assert"
)

func idPtr(v int64) *snowflake.ID {
	id := snowflake.ID(v)
	return &id
}

func companyLookup(companies map[int64]*companydomain.Company) CompanyLookup {
	return func(_ context.Context, id int64) (*companydomain.Company, error) {
		return companies[id], nil
	}
}

func typeLookup(types map[int64]*companytypedomain.CompanyType) CompanyTypeLookup {
	return func(_ context.Context, id int64) (*companytypedomain.CompanyType, error) {
		return types[id], nil
	}
}

func TestResolve_NoPrincipal(t *testing.T) {
	quote := Resolve(context.Background(), 10000, nil, companyLookup(nil), typeLookup(nil))

	assert.Equal(t, int64(10000), quote.OriginalCents)
	assert.Equal(t, int64(10000), quote.DiscountedCents)
	assert.Equal(t, int64(0), quote.DiscountBps)
	assert.Empty(t, quote.TierName)
}

func TestResolve_AdminGetsNoDiscount(t *testing.T) {
	companies := map[int64]*companydomain.Company{
		1: {ID: 1, Name: "Acme Corp", CompanyTypeID: idPtr(9)},
	}
	types := map[int64]*companytypedomain.CompanyType{
		9: {ID: 9, Name: "Gold", DiscountBps: 2000},
	}
	principal := &Principal{ID: 5, Role: RoleAdmin, CompanyID: idPtr(1)}

	quote := Resolve(context.Background(), 10000, principal, companyLookup(companies), typeLookup(types))
	assert.Equal(t, int64(10000), quote.DiscountedCents)
	assert.Empty(t, quote.TierName)
}

func TestResolve_TieredDiscount(t *testing.T) {
	companies := map[int64]*companydomain.Company{
		1: {ID: 1, Name: "Acme Corp", CompanyTypeID: idPtr(9)},
	}
	types := map[int64]*companytypedomain.CompanyType{
		9: {ID: 9, Name: "Mayorista", DiscountBps: 1500},
	}
	principal := &Principal{ID: 5, Role: RoleCustomer, CompanyID: idPtr(1)}

	// 15% off 200.00 -> 170.00
	quote := Resolve(context.Background(), 20000, principal, companyLookup(companies), typeLookup(types))
	assert.Equal(t, int64(20000), quote.OriginalCents)
	assert.Equal(t, int64(17000), quote.DiscountedCents)
	assert.Equal(t, int64(1500), quote.DiscountBps)
	assert.Equal(t, "Mayorista", quote.TierName)
}

func TestResolve_CompanyWithoutType(t *testing.T) {
	companies := map[int64]*companydomain.Company{
		1: {ID: 1, Name: "Acme Corp", CompanyTypeID: nil},
	}
	types := map[int64]*companytypedomain.CompanyType{
		9: {ID: 9, Name: "Gold", DiscountBps: 2000},
	}
	principal := &Principal{ID: 5, Role: RoleCustomer, CompanyID: idPtr(1)}

	quote := Resolve(context.Background(), 10000, principal, companyLookup(companies), typeLookup(types))
	assert.Equal(t, int64(10000), quote.DiscountedCents)
	assert.Equal(t, int64(0), quote.DiscountBps)
}

func TestResolve_MissingCompany(t *testing.T) {
	principal := &Principal{ID: 5, Role: RoleCustomer, CompanyID: idPtr(404)}

	quote := Resolve(context.Background(), 10000, principal, companyLookup(nil), typeLookup(nil))
	assert.Equal(t, int64(10000), quote.DiscountedCents)
}

func TestResolve_ZeroDiscountType(t *testing.T) {
	companies := map[int64]*companydomain.Company{
		1: {ID: 1, Name: "Acme Corp", CompanyTypeID: idPtr(9)},
	}
	types := map[int64]*companytypedomain.CompanyType{
		9: {ID: 9, Name: "Retail", DiscountBps: 0},
	}
	principal := &Principal{ID: 5, Role: RoleCustomer, CompanyID: idPtr(1)}

	quote := Resolve(context.Background(), 10000, principal, companyLookup(companies), typeLookup(types))
	assert.Equal(t, int64(10000), quote.DiscountedCents)
	assert.Empty(t, quote.TierName)
}

func TestResolve_LookupErrorDegradesToBase(t *testing.T) {
	failing := func(_ context.Context, _ int64) (*companydomain.Company, error) {
		return nil, errors.New("connection refused")
	}
	principal := &Principal{ID: 5, Role: RoleCustomer, CompanyID: idPtr(1)}

	quote := Resolve(context.Background(), 10000, principal, failing, typeLookup(nil))
	assert.Equal(t, int64(10000), quote.DiscountedCents)
	assert.Equal(t, int64(0), quote.DiscountBps)
}

func TestResolve_Idempotent(t *testing.T) {
	companies := map[int64]*companydomain.Company{
		1: {ID: 1, Name: "Acme Corp", CompanyTypeID: idPtr(9)},
	}
	types := map[int64]*companytypedomain.CompanyType{
		9: {ID: 9, Name: "Gold", DiscountBps: 2000},
	}
	principal := &Principal{ID: 5, Role: RoleCustomer, CompanyID: idPtr(1)}

	first := Resolve(context.Background(), 5000, principal, companyLookup(companies), typeLookup(types))
	second := Resolve(context.Background(), 5000, principal, companyLookup(companies), typeLookup(types))
	assert.Equal(t, first, second)
}

func TestResolve_GoldScenario(t *testing.T) {
	// Customer at "Acme Corp" on the "Gold" tier (20%) buys a 50.00 product.
	companies := map[int64]*companydomain.Company{
		1: {ID: 1, Name: "Acme Corp", CompanyTypeID: idPtr(9)},
	}
	types := map[int64]*companytypedomain.CompanyType{
		9: {ID: 9, Name: "Gold", DiscountBps: 2000},
	}
	principal := &Principal{ID: 5, Role: RoleCustomer, CompanyID: idPtr(1)}

	quote := Resolve(context.Background(), 5000, principal, companyLookup(companies), typeLookup(types))
	assert.Equal(t, int64(5000), quote.OriginalCents)
	assert.Equal(t, int64(4000), quote.DiscountedCents)
	assert.Equal(t, "Gold", quote.TierName)
}

func TestApply_TierReusedAcrossProducts(t *testing.T) {
	tier := Tier{Name: "Gold", DiscountBps: 2000}

	prices := []int64{5000, 19900, 250}
	expected := []int64{4000, 15920, 200}
	for i, base := range prices {
		quote := Apply(base, tier)
		assert.Equal(t, expected[i], quote.DiscountedCents)
		assert.Equal(t, base, quote.OriginalCents)
	}
}
