package service

import (
	"context"
	"io"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	authdomain "github.com/stitchline/vestra/internal/auth/domain"
	authrepo "github.com/stitchline/vestra/internal/auth/repository"
	cartdomain "github.com/stitchline/vestra/internal/cart/domain"
	cartrepo "github.com/stitchline/vestra/internal/cart/repository"
	productdomain "github.com/stitchline/vestra/internal/catalog/product/domain"
	productrepo "github.com/stitchline/vestra/internal/catalog/product/repository"
	companydomain "github.com/stitchline/vestra/internal/company/domain"
	companyrepo "github.com/stitchline/vestra/internal/company/repository"
	"github.com/stitchline/vestra/internal/config"
	pricingdomain "github.com/stitchline/vestra/internal/pricing/domain"
	"github.com/stitchline/vestra/internal/providers/pdf"
	"github.com/stitchline/vestra/internal/quote/domain"
	quoterepo "github.com/stitchline/vestra/internal/quote/repository"
	"github.com/stitchline/vestra/internal/ratelimit"
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

type quoteFixture struct {
	svc     domain.Service
	conn    *gorm.DB
	node    *snowflake.Node
	product *productdomain.Product
}

func newQuoteFixture(t *testing.T, tier pricingdomain.Tier) *quoteFixture {
	t.Helper()

	conn, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, conn.AutoMigrate(
		&domain.Quote{},
		&cartdomain.CartItem{},
		&productdomain.Product{},
		&authdomain.Customer{},
		&companydomain.Company{},
	))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	product := &productdomain.Product{
		ID:             node.Generate(),
		Slug:           "lab-coat",
		Name:           "Lab Coat",
		Category:       "coats",
		BasePriceCents: 4000,
		Sizes:          []string{"M"},
		Colors:         []string{"White"},
		Active:         true,
	}
	require.NoError(t, conn.Create(product).Error)

	holder := config.StaticStorefrontConfigHolder(config.DefaultStorefrontConfig())
	cfg := config.Config{AppName: "vestra"}

	svc := New(Params{
		DB:          conn,
		Log:         zap.NewNop(),
		GenID:       node,
		Cfg:         cfg,
		Repo:        quoterepo.Provide(),
		CartRepo:    cartrepo.Provide(),
		ProductRepo: productrepo.Provide(),
		AuthRepo:    authrepo.Provide(),
		CompanyRepo: companyrepo.Provide(),
		Pricing:     tierStub{tier: tier},
		Limiter:     ratelimit.NewQuoteLimiter(cfg, holder, zap.NewNop(), nil),
		PDF:         pdf.New(),
	})
	return &quoteFixture{svc: svc, conn: conn, node: node, product: product}
}

func (f *quoteFixture) addCartItem(t *testing.T, customerID snowflake.ID, quantity int) {
	t.Helper()
	require.NoError(t, f.conn.Create(&cartdomain.CartItem{
		ID:         f.node.Generate(),
		CustomerID: customerID,
		ProductID:  f.product.ID,
		SizeLabel:  "M",
		ColorName:  "White",
		Quantity:   quantity,
	}).Error)
}

func TestSubmitFreezesPricesAndClearsCart(t *testing.T) {
	f := newQuoteFixture(t, pricingdomain.Tier{Name: "Gold", DiscountBps: 2000})
	ctx := context.Background()
	customerID := f.node.Generate()
	f.addCartItem(t, customerID, 3)

	principal := &pricingdomain.Principal{ID: customerID, Role: pricingdomain.RoleCustomer}
	resp, err := f.svc.Submit(ctx, principal, domain.SubmitRequest{Note: "summer fit-out"})
	require.NoError(t, err)
	require.Equal(t, domain.StatusNew, resp.Status)
	require.NotEmpty(t, resp.Reference)
	require.Len(t, resp.Items, 1)

	item := resp.Items[0]
	require.Equal(t, int64(3200), item.UnitPriceCents)
	require.Equal(t, int64(2000), item.DiscountBps)
	require.Equal(t, int64(9600), item.LineTotalCents)
	require.Equal(t, "96.00", resp.Total)

	var remaining int64
	require.NoError(t, f.conn.Model(&cartdomain.CartItem{}).
		Where("customer_id = ?", int64(customerID)).
		Count(&remaining).Error)
	require.Zero(t, remaining)
}

func TestSubmitEmptyCart(t *testing.T) {
	f := newQuoteFixture(t, pricingdomain.Tier{})
	principal := &pricingdomain.Principal{ID: f.node.Generate(), Role: pricingdomain.RoleCustomer}

	_, err := f.svc.Submit(context.Background(), principal, domain.SubmitRequest{})
	require.ErrorIs(t, err, domain.ErrEmptyCart)
}

func TestSubmitRejectsInactiveProduct(t *testing.T) {
	f := newQuoteFixture(t, pricingdomain.Tier{})
	ctx := context.Background()
	customerID := f.node.Generate()
	f.addCartItem(t, customerID, 1)

	require.NoError(t, f.conn.Model(&productdomain.Product{}).
		Where("id = ?", int64(f.product.ID)).
		Update("active", false).Error)

	principal := &pricingdomain.Principal{ID: customerID, Role: pricingdomain.RoleCustomer}
	_, err := f.svc.Submit(ctx, principal, domain.SubmitRequest{})
	require.ErrorIs(t, err, domain.ErrUnavailableProduct)
}

func TestUpdateStatusTransitions(t *testing.T) {
	f := newQuoteFixture(t, pricingdomain.Tier{})
	ctx := context.Background()
	customerID := f.node.Generate()
	f.addCartItem(t, customerID, 1)

	principal := &pricingdomain.Principal{ID: customerID, Role: pricingdomain.RoleCustomer}
	resp, err := f.svc.Submit(ctx, principal, domain.SubmitRequest{})
	require.NoError(t, err)

	_, err = f.svc.UpdateStatus(ctx, resp.ID, "archived")
	require.ErrorIs(t, err, domain.ErrInvalidStatus)

	reviewed, err := f.svc.UpdateStatus(ctx, resp.ID, domain.StatusReviewed)
	require.NoError(t, err)
	require.Equal(t, domain.StatusReviewed, reviewed.Status)

	_, err = f.svc.UpdateStatus(ctx, resp.ID, domain.StatusNew)
	require.ErrorIs(t, err, domain.ErrInvalidTransition)

	closed, err := f.svc.UpdateStatus(ctx, resp.ID, domain.StatusClosed)
	require.NoError(t, err)
	require.Equal(t, domain.StatusClosed, closed.Status)

	_, err = f.svc.UpdateStatus(ctx, resp.ID, domain.StatusReviewed)
	require.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestListFiltersByStatusAndCustomer(t *testing.T) {
	f := newQuoteFixture(t, pricingdomain.Tier{})
	ctx := context.Background()

	first := f.node.Generate()
	second := f.node.Generate()
	f.addCartItem(t, first, 1)
	f.addCartItem(t, second, 2)

	a, err := f.svc.Submit(ctx, &pricingdomain.Principal{ID: first, Role: pricingdomain.RoleCustomer}, domain.SubmitRequest{})
	require.NoError(t, err)
	_, err = f.svc.Submit(ctx, &pricingdomain.Principal{ID: second, Role: pricingdomain.RoleCustomer}, domain.SubmitRequest{})
	require.NoError(t, err)

	_, err = f.svc.UpdateStatus(ctx, a.ID, domain.StatusReviewed)
	require.NoError(t, err)

	reviewed, err := f.svc.List(ctx, domain.ListRequest{Status: domain.StatusReviewed})
	require.NoError(t, err)
	require.Len(t, reviewed, 1)
	require.Equal(t, a.ID, reviewed[0].ID)

	mine, err := f.svc.ListByCustomer(ctx, int64(second))
	require.NoError(t, err)
	require.Len(t, mine, 1)
	require.Equal(t, domain.StatusNew, mine[0].Status)
}

func TestRenderPDFProducesDocument(t *testing.T) {
	f := newQuoteFixture(t, pricingdomain.Tier{Name: "Silver", DiscountBps: 1000})
	ctx := context.Background()
	customerID := f.node.Generate()
	f.addCartItem(t, customerID, 2)

	require.NoError(t, f.conn.Create(&authdomain.Customer{
		ID:     customerID,
		Email:  "buyer@example.com",
		Name:   "Buyer",
		Role:   authdomain.RoleCustomer,
		Active: true,
	}).Error)

	resp, err := f.svc.Submit(ctx, &pricingdomain.Principal{ID: customerID, Role: pricingdomain.RoleCustomer}, domain.SubmitRequest{})
	require.NoError(t, err)

	reader, err := f.svc.RenderPDF(ctx, resp.ID)
	require.NoError(t, err)

	data, err := io.ReadAll(reader)
	require.NoError(t, err)
	require.NotEmpty(t, data)
	require.Equal(t, "%PDF", string(data[:4]))
}
