package service

import (
	"context"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	colordomain "github.com/stitchline/vestra/internal/catalog/color/domain"
	colorrepo "github.com/stitchline/vestra/internal/catalog/color/repository"
	"github.com/stitchline/vestra/internal/catalog/colorimage/domain"
	"github.com/stitchline/vestra/internal/catalog/colorimage/repository"
	productdomain "github.com/stitchline/vestra/internal/catalog/product/domain"
	productrepo "github.com/stitchline/vestra/internal/catalog/product/repository"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type colorImageFixture struct {
	svc     domain.Service
	conn    *gorm.DB
	node    *snowflake.Node
	product *productdomain.Product
	navy    *colordomain.Color
	black   *colordomain.Color
}

func newColorImageFixture(t *testing.T) *colorImageFixture {
	t.Helper()

	conn, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, conn.AutoMigrate(
		&domain.ProductColorImage{},
		&productdomain.Product{},
		&colordomain.Color{},
	))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	product := &productdomain.Product{
		ID:             node.Generate(),
		Slug:           "cargo-scrub-pant-" + node.Generate().String(),
		Name:           "Cargo Scrub Pant",
		Category:       "pants",
		BasePriceCents: 3200,
		Sizes:          []string{"S", "M", "L"},
		Colors:         []string{"Navy", "Black"},
		Active:         true,
	}
	require.NoError(t, conn.Create(product).Error)

	navyHex := "#1f2a44"
	navy := &colordomain.Color{ID: node.Generate(), Name: "Navy", Hex: &navyHex}
	black := &colordomain.Color{ID: node.Generate(), Name: "Black"}
	require.NoError(t, conn.Create(navy).Error)
	require.NoError(t, conn.Create(black).Error)

	svc := New(Params{
		DB:          conn,
		Log:         zap.NewNop(),
		GenID:       node,
		Repo:        repository.Provide(),
		ProductRepo: productrepo.Provide(),
		ColorRepo:   colorrepo.Provide(),
	})
	return &colorImageFixture{svc: svc, conn: conn, node: node, product: product, navy: navy, black: black}
}

func TestAssignReplacesPriorRows(t *testing.T) {
	f := newColorImageFixture(t)
	ctx := context.Background()

	_, err := f.svc.Assign(ctx, domain.AssignRequest{
		ProductID: f.product.ID.String(),
		Entries: []domain.AssignEntry{
			{ColorID: f.navy.ID.String(), Images: []string{"https://cdn.example.com/pant-navy.jpg"}, IsPrimary: true},
			{ColorID: f.black.ID.String(), Images: []string{"https://cdn.example.com/pant-black.jpg"}, SortOrder: 1},
		},
	})
	require.NoError(t, err)

	rows, err := f.svc.ListByProduct(ctx, f.product.ID.String())
	require.NoError(t, err)
	require.Len(t, rows, 2)

	// A second assignment is a full replacement, not a patch.
	_, err = f.svc.Assign(ctx, domain.AssignRequest{
		ProductID: f.product.ID.String(),
		Entries: []domain.AssignEntry{
			{ColorID: f.black.ID.String(), Images: []string{"https://cdn.example.com/pant-black-v2.jpg"}, IsPrimary: true},
		},
	})
	require.NoError(t, err)

	rows, err = f.svc.ListByProduct(ctx, f.product.ID.String())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, f.black.ID.String(), rows[0].ColorID)
	require.Equal(t, []string{"https://cdn.example.com/pant-black-v2.jpg"}, rows[0].Images)

	var count int64
	require.NoError(t, f.conn.Model(&domain.ProductColorImage{}).Count(&count).Error)
	require.Equal(t, int64(1), count)
}

func TestAssignValidation(t *testing.T) {
	f := newColorImageFixture(t)
	ctx := context.Background()

	_, err := f.svc.Assign(ctx, domain.AssignRequest{ProductID: "not-an-id"})
	require.ErrorIs(t, err, domain.ErrInvalidID)

	_, err = f.svc.Assign(ctx, domain.AssignRequest{ProductID: f.node.Generate().String()})
	require.ErrorIs(t, err, domain.ErrInvalidProduct)

	_, err = f.svc.Assign(ctx, domain.AssignRequest{
		ProductID: f.product.ID.String(),
		Entries: []domain.AssignEntry{
			{ColorID: f.node.Generate().String(), Images: []string{"https://cdn.example.com/x.jpg"}},
		},
	})
	require.ErrorIs(t, err, domain.ErrInvalidColor)

	_, err = f.svc.Assign(ctx, domain.AssignRequest{
		ProductID: f.product.ID.String(),
		Entries: []domain.AssignEntry{
			{ColorID: f.navy.ID.String(), Images: []string{"https://cdn.example.com/a.jpg"}},
			{ColorID: f.navy.ID.String(), Images: []string{"https://cdn.example.com/b.jpg"}},
		},
	})
	require.ErrorIs(t, err, domain.ErrDuplicateColor)

	_, err = f.svc.Assign(ctx, domain.AssignRequest{
		ProductID: f.product.ID.String(),
		Entries:   []domain.AssignEntry{{ColorID: f.navy.ID.String()}},
	})
	require.ErrorIs(t, err, domain.ErrInvalidImages)

	// Whitespace-only entries count as empty.
	_, err = f.svc.Assign(ctx, domain.AssignRequest{
		ProductID: f.product.ID.String(),
		Entries:   []domain.AssignEntry{{ColorID: f.navy.ID.String(), Images: []string{"  ", ""}}},
	})
	require.ErrorIs(t, err, domain.ErrInvalidImages)
}

func TestAssignRejectionKeepsExistingRows(t *testing.T) {
	f := newColorImageFixture(t)
	ctx := context.Background()

	_, err := f.svc.Assign(ctx, domain.AssignRequest{
		ProductID: f.product.ID.String(),
		Entries: []domain.AssignEntry{
			{ColorID: f.navy.ID.String(), Images: []string{"https://cdn.example.com/pant-navy.jpg"}, IsPrimary: true},
		},
	})
	require.NoError(t, err)

	_, err = f.svc.Assign(ctx, domain.AssignRequest{
		ProductID: f.product.ID.String(),
		Entries: []domain.AssignEntry{
			{ColorID: f.black.ID.String(), Images: []string{"https://cdn.example.com/pant-black.jpg"}},
			{ColorID: f.navy.ID.String()},
		},
	})
	require.ErrorIs(t, err, domain.ErrInvalidImages)

	rows, err := f.svc.ListByProduct(ctx, f.product.ID.String())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, f.navy.ID.String(), rows[0].ColorID)
}

func TestListByProductOrdersBySortOrder(t *testing.T) {
	f := newColorImageFixture(t)
	ctx := context.Background()

	_, err := f.svc.Assign(ctx, domain.AssignRequest{
		ProductID: f.product.ID.String(),
		Entries: []domain.AssignEntry{
			{ColorID: f.black.ID.String(), Images: []string{"https://cdn.example.com/pant-black.jpg"}, SortOrder: 2},
			{ColorID: f.navy.ID.String(), Images: []string{"https://cdn.example.com/pant-navy.jpg"}, SortOrder: 1, IsPrimary: true},
		},
	})
	require.NoError(t, err)

	rows, err := f.svc.ListByProduct(ctx, f.product.ID.String())
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, f.navy.ID.String(), rows[0].ColorID)
	require.True(t, rows[0].IsPrimary)
	require.Equal(t, f.black.ID.String(), rows[1].ColorID)
}
