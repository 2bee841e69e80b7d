package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	colordomain "github.com/stitchline/vestra/internal/catalog/color/domain"
	"github.com/stitchline/vestra/internal/catalog/colorimage/domain"
	productdomain "github.com/stitchline/vestra/internal/catalog/product/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB          *gorm.DB
	Log         *zap.Logger
	GenID       *snowflake.Node
	Repo        domain.Repository
	ProductRepo productdomain.Repository
	ColorRepo   colordomain.Repository
}

type Service struct {
	db          *gorm.DB
	log         *zap.Logger
	repo        domain.Repository
	productRepo productdomain.Repository
	colorRepo   colordomain.Repository
	genID       *snowflake.Node
}

func New(p Params) domain.Service {
	return &Service{
		db:          p.DB,
		log:         p.Log.Named("colorimage.service"),
		repo:        p.Repo,
		productRepo: p.ProductRepo,
		colorRepo:   p.ColorRepo,
		genID:       p.GenID,
	}
}

func (s *Service) Assign(ctx context.Context, req domain.AssignRequest) ([]domain.Response, error) {
	productID, err := snowflake.ParseString(strings.TrimSpace(req.ProductID))
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	product, err := s.productRepo.FindByID(ctx, s.db, productID.Int64())
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrInvalidProduct
	}

	now := time.Now().UTC()
	rows := make([]domain.ProductColorImage, 0, len(req.Entries))
	seen := make(map[int64]bool, len(req.Entries))
	for _, entry := range req.Entries {
		colorID, err := snowflake.ParseString(strings.TrimSpace(entry.ColorID))
		if err != nil {
			return nil, domain.ErrInvalidColor
		}
		color, err := s.colorRepo.FindByID(ctx, s.db, colorID.Int64())
		if err != nil {
			return nil, err
		}
		if color == nil {
			return nil, domain.ErrInvalidColor
		}
		if seen[colorID.Int64()] {
			return nil, domain.ErrDuplicateColor
		}
		seen[colorID.Int64()] = true

		images := cleanImages(entry.Images)
		if len(images) == 0 {
			return nil, domain.ErrInvalidImages
		}

		rows = append(rows, domain.ProductColorImage{
			ID:        s.genID.Generate(),
			ProductID: productID,
			ColorID:   colorID,
			Images:    datatypes.NewJSONSlice(images),
			IsPrimary: entry.IsPrimary,
			SortOrder: entry.SortOrder,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}

	if err := s.repo.ReplaceForProduct(ctx, s.db, productID.Int64(), rows); err != nil {
		return nil, err
	}

	s.log.Info("color images assigned",
		zap.String("product_id", productID.String()),
		zap.Int("entries", len(rows)),
	)

	return toResponses(rows), nil
}

func (s *Service) ListByProduct(ctx context.Context, id string) ([]domain.Response, error) {
	productID, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	items, err := s.repo.FindByProduct(ctx, s.db, productID.Int64())
	if err != nil {
		return nil, err
	}
	return toResponses(items), nil
}

func toResponses(items []domain.ProductColorImage) []domain.Response {
	resp := make([]domain.Response, 0, len(items))
	for _, item := range items {
		resp = append(resp, domain.Response{
			ID:        item.ID.String(),
			ProductID: item.ProductID.String(),
			ColorID:   item.ColorID.String(),
			Images:    []string(item.Images),
			IsPrimary: item.IsPrimary,
			SortOrder: item.SortOrder,
			CreatedAt: item.CreatedAt,
			UpdatedAt: item.UpdatedAt,
		})
	}
	return resp
}

func cleanImages(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		out = append(out, v)
	}
	return out
}
