package service

import (
	"context"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/stitchline/vestra/internal/cart/domain"
	cartrepo "github.com/stitchline/vestra/internal/cart/repository"
	colordomain "github.com/stitchline/vestra/internal/catalog/color/domain"
	colorrepo "github.com/stitchline/vestra/internal/catalog/color/repository"
	colorimagedomain "github.com/stitchline/vestra/internal/catalog/colorimage/domain"
	colorimagerepo "github.com/stitchline/vestra/internal/catalog/colorimage/repository"
	productdomain "github.com/stitchline/vestra/internal/catalog/product/domain"
	productrepo "github.com/stitchline/vestra/internal/catalog/product/repository"
	"github.com/stitchline/vestra/internal/config"
	pricingdomain "github.com/stitchline/vestra/internal/pricing/domain"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type tierStub struct {
	tier pricingdomain.Tier
}

func (s tierStub) TierFor(context.Context, *pricingdomain.Principal) pricingdomain.Tier {
	return s.tier
}

func (s tierStub) PriceFor(_ context.Context, _ *pricingdomain.Principal, base int64) pricingdomain.Quote {
	return pricingdomain.Apply(base, s.tier)
}

type cartFixture struct {
	svc     domain.Service
	conn    *gorm.DB
	node    *snowflake.Node
	product *productdomain.Product
}

func newCartFixture(t *testing.T, tier pricingdomain.Tier) *cartFixture {
	t.Helper()

	conn, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, conn.AutoMigrate(
		&domain.CartItem{},
		&productdomain.Product{},
		&colordomain.Color{},
		&colorimagedomain.ProductColorImage{},
	))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	product := &productdomain.Product{
		ID:             node.Generate(),
		Slug:           "scrub-top-" + node.Generate().String(),
		Name:           "Classic Scrub Top",
		Category:       "tops",
		BasePriceCents: 2500,
		Images:         []string{"https://cdn.example.com/scrub-top.jpg"},
		Sizes:          []string{"S", "M", "L"},
		Colors:         []string{"Navy", "Black"},
		Active:         true,
	}
	require.NoError(t, conn.Create(product).Error)

	svc := New(Params{
		DB:             conn,
		Log:            zap.NewNop(),
		GenID:          node,
		Repo:           cartrepo.Provide(),
		ProductRepo:    productrepo.Provide(),
		ColorRepo:      colorrepo.Provide(),
		ColorImageRepo: colorimagerepo.Provide(),
		Pricing:        tierStub{tier: tier},
		Storefront:     config.StaticStorefrontConfigHolder(config.DefaultStorefrontConfig()),
	})
	return &cartFixture{svc: svc, conn: conn, node: node, product: product}
}

func TestAddItemMergesMatchingLine(t *testing.T) {
	f := newCartFixture(t, pricingdomain.Tier{})
	ctx := context.Background()
	customerID := f.node.Generate()

	req := domain.AddItemRequest{
		ProductID: f.product.ID.String(),
		SizeLabel: "M",
		ColorName: "Navy",
		Quantity:  2,
	}
	require.NoError(t, f.svc.AddItem(ctx, customerID, req))
	require.NoError(t, f.svc.AddItem(ctx, customerID, req))

	view, err := f.svc.Get(ctx, &pricingdomain.Principal{ID: customerID, Role: pricingdomain.RoleCustomer})
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	require.Equal(t, 4, view.Items[0].Quantity)
}

func TestAddItemValidation(t *testing.T) {
	f := newCartFixture(t, pricingdomain.Tier{})
	ctx := context.Background()
	customerID := f.node.Generate()

	err := f.svc.AddItem(ctx, customerID, domain.AddItemRequest{
		ProductID: f.product.ID.String(), SizeLabel: "M", ColorName: "Navy", Quantity: 0,
	})
	require.ErrorIs(t, err, domain.ErrInvalidQuantity)

	err = f.svc.AddItem(ctx, customerID, domain.AddItemRequest{
		ProductID: f.product.ID.String(), SizeLabel: "XXXL", ColorName: "Navy", Quantity: 1,
	})
	require.ErrorIs(t, err, domain.ErrInvalidSize)

	err = f.svc.AddItem(ctx, customerID, domain.AddItemRequest{
		ProductID: f.product.ID.String(), SizeLabel: "M", ColorName: "Chartreuse", Quantity: 1,
	})
	require.ErrorIs(t, err, domain.ErrInvalidColor)

	err = f.svc.AddItem(ctx, customerID, domain.AddItemRequest{
		ProductID: f.node.Generate().String(), SizeLabel: "M", ColorName: "Navy", Quantity: 1,
	})
	require.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestAddItemNormalizesOptionSpelling(t *testing.T) {
	f := newCartFixture(t, pricingdomain.Tier{})
	ctx := context.Background()
	customerID := f.node.Generate()

	require.NoError(t, f.svc.AddItem(ctx, customerID, domain.AddItemRequest{
		ProductID: f.product.ID.String(), SizeLabel: " m ", ColorName: "NAVY", Quantity: 1,
	}))

	view, err := f.svc.Get(ctx, &pricingdomain.Principal{ID: customerID, Role: pricingdomain.RoleCustomer})
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	require.Equal(t, "M", view.Items[0].SizeLabel)
	require.Equal(t, "Navy", view.Items[0].ColorName)
}

func TestGetAppliesTierDiscount(t *testing.T) {
	f := newCartFixture(t, pricingdomain.Tier{Name: "Gold", DiscountBps: 1000})
	ctx := context.Background()
	customerID := f.node.Generate()

	require.NoError(t, f.svc.AddItem(ctx, customerID, domain.AddItemRequest{
		ProductID: f.product.ID.String(), SizeLabel: "L", ColorName: "Black", Quantity: 2,
	}))

	view, err := f.svc.Get(ctx, &pricingdomain.Principal{ID: customerID, Role: pricingdomain.RoleCustomer})
	require.NoError(t, err)
	require.Len(t, view.Items, 1)

	item := view.Items[0]
	require.Equal(t, "25.00", item.OriginalPrice)
	require.Equal(t, "22.50", item.DiscountedPrice)
	require.Equal(t, "45.00", item.LineTotal)
	require.Equal(t, "50.00", view.SubtotalOriginal)
	require.Equal(t, "45.00", view.SubtotalDiscounted)
	require.Equal(t, "10", view.DiscountPercent)
	require.Equal(t, "Gold", view.TierName)
}

func TestGetMarksInactiveProductUnavailable(t *testing.T) {
	f := newCartFixture(t, pricingdomain.Tier{})
	ctx := context.Background()
	customerID := f.node.Generate()

	require.NoError(t, f.svc.AddItem(ctx, customerID, domain.AddItemRequest{
		ProductID: f.product.ID.String(), SizeLabel: "S", ColorName: "Navy", Quantity: 1,
	}))

	require.NoError(t, f.conn.Model(&productdomain.Product{}).
		Where("id = ?", int64(f.product.ID)).
		Update("active", false).Error)

	view, err := f.svc.Get(ctx, &pricingdomain.Principal{ID: customerID, Role: pricingdomain.RoleCustomer})
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	require.True(t, view.Items[0].Unavailable)
	require.Equal(t, "0.00", view.SubtotalDiscounted)
}

func TestUpdateAndRemoveRequireOwnership(t *testing.T) {
	f := newCartFixture(t, pricingdomain.Tier{})
	ctx := context.Background()
	owner := f.node.Generate()
	stranger := f.node.Generate()

	require.NoError(t, f.svc.AddItem(ctx, owner, domain.AddItemRequest{
		ProductID: f.product.ID.String(), SizeLabel: "M", ColorName: "Black", Quantity: 1,
	}))

	view, err := f.svc.Get(ctx, &pricingdomain.Principal{ID: owner, Role: pricingdomain.RoleCustomer})
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	itemID := view.Items[0].ID

	err = f.svc.UpdateItemQuantity(ctx, stranger, itemID, 5)
	require.ErrorIs(t, err, domain.ErrItemNotFound)
	err = f.svc.RemoveItem(ctx, stranger, itemID)
	require.ErrorIs(t, err, domain.ErrItemNotFound)

	require.NoError(t, f.svc.UpdateItemQuantity(ctx, owner, itemID, 5))
	require.NoError(t, f.svc.RemoveItem(ctx, owner, itemID))

	view, err = f.svc.Get(ctx, &pricingdomain.Principal{ID: owner, Role: pricingdomain.RoleCustomer})
	require.NoError(t, err)
	require.Empty(t, view.Items)
}

func TestClearEmptiesCart(t *testing.T) {
	f := newCartFixture(t, pricingdomain.Tier{})
	ctx := context.Background()
	customerID := f.node.Generate()

	require.NoError(t, f.svc.AddItem(ctx, customerID, domain.AddItemRequest{
		ProductID: f.product.ID.String(), SizeLabel: "S", ColorName: "Black", Quantity: 3,
	}))
	require.NoError(t, f.svc.Clear(ctx, customerID))

	view, err := f.svc.Get(ctx, &pricingdomain.Principal{ID: customerID, Role: pricingdomain.RoleCustomer})
	require.NoError(t, err)
	require.Empty(t, view.Items)
}
