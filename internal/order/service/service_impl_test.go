package service

import (
	"context"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	authdomain "github.com/stitchline/vestra/internal/auth/domain"
	authrepo "github.com/stitchline/vestra/internal/auth/repository"
	productdomain "github.com/stitchline/vestra/internal/catalog/product/domain"
	productrepo "github.com/stitchline/vestra/internal/catalog/product/repository"
	"github.com/stitchline/vestra/internal/order/domain"
	orderrepo "github.com/stitchline/vestra/internal/order/repository"
	quotedomain "github.com/stitchline/vestra/internal/quote/domain"
	quoterepo "github.com/stitchline/vestra/internal/quote/repository"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type orderFixture struct {
	svc      domain.Service
	conn     *gorm.DB
	node     *snowflake.Node
	product  *productdomain.Product
	customer *authdomain.Customer
}

func newOrderFixture(t *testing.T) *orderFixture {
	t.Helper()

	conn, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, conn.AutoMigrate(
		&domain.Order{},
		&quotedomain.Quote{},
		&productdomain.Product{},
		&authdomain.Customer{},
	))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	product := &productdomain.Product{
		ID:             node.Generate(),
		Slug:           "polo-shirt",
		Name:           "Polo Shirt",
		Category:       "tops",
		BasePriceCents: 1800,
		Active:         true,
	}
	require.NoError(t, conn.Create(product).Error)

	customer := &authdomain.Customer{
		ID:     node.Generate(),
		Email:  "orders@example.com",
		Name:   "Order Tester",
		Role:   authdomain.RoleCustomer,
		Active: true,
	}
	require.NoError(t, conn.Create(customer).Error)

	svc := New(Params{
		DB:          conn,
		Log:         zap.NewNop(),
		GenID:       node,
		Repo:        orderrepo.Provide(),
		QuoteRepo:   quoterepo.Provide(),
		AuthRepo:    authrepo.Provide(),
		ProductRepo: productrepo.Provide(),
	})
	return &orderFixture{svc: svc, conn: conn, node: node, product: product, customer: customer}
}

func TestCreateOrder(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()

	resp, err := f.svc.Create(ctx, domain.CreateRequest{
		CustomerID: f.customer.ID.String(),
		Items: []domain.CreateItemRequest{
			{ProductID: f.product.ID.String(), SizeLabel: "M", Quantity: 4, UnitPrice: "18.00"},
		},
	})
	require.NoError(t, err)
	require.Equal(t, domain.StatusPending, resp.Status)
	require.Equal(t, "72.00", resp.Total)
	require.Len(t, resp.Items, 1)
	require.Equal(t, "Polo Shirt", resp.Items[0].ProductName)
}

func TestCreateOrderValidation(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()

	_, err := f.svc.Create(ctx, domain.CreateRequest{CustomerID: f.customer.ID.String()})
	require.ErrorIs(t, err, domain.ErrEmptyItems)

	_, err = f.svc.Create(ctx, domain.CreateRequest{
		CustomerID: f.node.Generate().String(),
		Items:      []domain.CreateItemRequest{{ProductID: f.product.ID.String(), Quantity: 1, UnitPrice: "1.00"}},
	})
	require.ErrorIs(t, err, domain.ErrCustomerNotFound)

	_, err = f.svc.Create(ctx, domain.CreateRequest{
		CustomerID: f.customer.ID.String(),
		Items:      []domain.CreateItemRequest{{ProductID: f.product.ID.String(), Quantity: 0, UnitPrice: "1.00"}},
	})
	require.ErrorIs(t, err, domain.ErrInvalidQuantity)

	_, err = f.svc.Create(ctx, domain.CreateRequest{
		CustomerID: f.customer.ID.String(),
		Items:      []domain.CreateItemRequest{{ProductID: f.product.ID.String(), Quantity: 1, UnitPrice: "-1.00"}},
	})
	require.ErrorIs(t, err, domain.ErrInvalidPrice)

	_, err = f.svc.Create(ctx, domain.CreateRequest{
		CustomerID: f.customer.ID.String(),
		Items:      []domain.CreateItemRequest{{ProductID: f.node.Generate().String(), Quantity: 1, UnitPrice: "1.00"}},
	})
	require.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestCreateFromQuoteClosesQuote(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()

	quote := &quotedomain.Quote{
		ID:         f.node.Generate(),
		Reference:  "01JQ0TESTREF0000000000000A",
		CustomerID: f.customer.ID,
		Status:     quotedomain.StatusReviewed,
		Items: []quotedomain.QuoteItem{
			{
				ProductID:      f.product.ID.String(),
				ProductName:    f.product.Name,
				SizeLabel:      "L",
				Quantity:       2,
				UnitPriceCents: 1620,
				DiscountBps:    1000,
				LineTotalCents: 3240,
			},
		},
		TotalCents: 3240,
	}
	require.NoError(t, f.conn.Create(quote).Error)

	resp, err := f.svc.CreateFromQuote(ctx, quote.ID.String())
	require.NoError(t, err)
	require.Equal(t, domain.StatusPending, resp.Status)
	require.Equal(t, "32.40", resp.Total)
	require.NotNil(t, resp.QuoteID)
	require.Equal(t, quote.ID.String(), *resp.QuoteID)
	require.Len(t, resp.Items, 1)
	require.Equal(t, int64(1620), resp.Items[0].UnitPriceCents)

	var stored quotedomain.Quote
	require.NoError(t, f.conn.First(&stored, "id = ?", int64(quote.ID)).Error)
	require.Equal(t, quotedomain.StatusClosed, stored.Status)

	// Converting the same quote twice is rejected.
	_, err = f.svc.CreateFromQuote(ctx, quote.ID.String())
	require.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestOrderStatusTransitions(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()

	resp, err := f.svc.Create(ctx, domain.CreateRequest{
		CustomerID: f.customer.ID.String(),
		Items: []domain.CreateItemRequest{
			{ProductID: f.product.ID.String(), Quantity: 1, UnitPrice: "18.00"},
		},
	})
	require.NoError(t, err)

	_, err = f.svc.UpdateStatus(ctx, resp.ID, domain.StatusFulfilled)
	require.ErrorIs(t, err, domain.ErrInvalidTransition)

	confirmed, err := f.svc.UpdateStatus(ctx, resp.ID, domain.StatusConfirmed)
	require.NoError(t, err)
	require.Equal(t, domain.StatusConfirmed, confirmed.Status)

	fulfilled, err := f.svc.UpdateStatus(ctx, resp.ID, domain.StatusFulfilled)
	require.NoError(t, err)
	require.Equal(t, domain.StatusFulfilled, fulfilled.Status)

	// Terminal states are immutable.
	_, err = f.svc.UpdateStatus(ctx, resp.ID, domain.StatusCancelled)
	require.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestOrderCancelFromConfirmed(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()

	resp, err := f.svc.Create(ctx, domain.CreateRequest{
		CustomerID: f.customer.ID.String(),
		Items: []domain.CreateItemRequest{
			{ProductID: f.product.ID.String(), Quantity: 2, UnitPrice: "18.00"},
		},
	})
	require.NoError(t, err)

	_, err = f.svc.UpdateStatus(ctx, resp.ID, domain.StatusConfirmed)
	require.NoError(t, err)

	cancelled, err := f.svc.UpdateStatus(ctx, resp.ID, domain.StatusCancelled)
	require.NoError(t, err)
	require.Equal(t, domain.StatusCancelled, cancelled.Status)
}
