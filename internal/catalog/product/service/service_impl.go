package service

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/gosimple/slug"
	"github.com/stitchline/vestra/internal/catalog/product/domain"
	"github.com/stitchline/vestra/pkg/db"
	"github.com/stitchline/vestra/pkg/db/pagination"
	"github.com/stitchline/vestra/pkg/money"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
	Repo  domain.Repository
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	repo  domain.Repository
	genID *snowflake.Node
}

func New(p Params) domain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("product.service"),
		repo:  p.Repo,
		genID: p.GenID,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateRequest) (*domain.Response, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, domain.ErrInvalidName
	}
	category := strings.TrimSpace(req.Category)
	if category == "" {
		return nil, domain.ErrInvalidCategory
	}
	priceCents, err := money.ParseCents(req.BasePrice)
	if err != nil {
		return nil, domain.ErrInvalidPrice
	}

	productSlug, err := s.uniqueSlug(ctx, name)
	if err != nil {
		return nil, err
	}

	description := strings.TrimSpace(ptrToString(req.Description))
	var descriptionPtr *string
	if description != "" {
		descriptionPtr = &description
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	now := time.Now().UTC()
	p := &domain.Product{
		ID:             s.genID.Generate(),
		Slug:           productSlug,
		Name:           name,
		Description:    descriptionPtr,
		Category:       category,
		BasePriceCents: priceCents,
		Images:         datatypes.NewJSONSlice(cleanList(req.Images)),
		Sizes:          datatypes.NewJSONSlice(cleanList(req.Sizes)),
		Colors:         datatypes.NewJSONSlice(cleanList(req.Colors)),
		Active:         active,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.repo.Create(ctx, s.db, p); err != nil {
		if db.IsDuplicateKeyErr(err) {
			return nil, domain.ErrSlugTaken
		}
		return nil, err
	}

	resp := toResponse(p)
	return &resp, nil
}

func (s *Service) Update(ctx context.Context, req domain.UpdateRequest) (*domain.Response, error) {
	productID, err := snowflake.ParseString(strings.TrimSpace(req.ID))
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	item, err := s.repo.FindByID(ctx, s.db, productID.Int64())
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, domain.ErrInvalidName
		}
		item.Name = name
	}
	if req.Description != nil {
		description := strings.TrimSpace(*req.Description)
		if description == "" {
			item.Description = nil
		} else {
			item.Description = &description
		}
	}
	if req.Category != nil {
		category := strings.TrimSpace(*req.Category)
		if category == "" {
			return nil, domain.ErrInvalidCategory
		}
		item.Category = category
	}
	if req.BasePrice != nil {
		priceCents, err := money.ParseCents(*req.BasePrice)
		if err != nil {
			return nil, domain.ErrInvalidPrice
		}
		item.BasePriceCents = priceCents
	}
	if req.Images != nil {
		item.Images = datatypes.NewJSONSlice(cleanList(*req.Images))
	}
	if req.Sizes != nil {
		item.Sizes = datatypes.NewJSONSlice(cleanList(*req.Sizes))
	}
	if req.Colors != nil {
		item.Colors = datatypes.NewJSONSlice(cleanList(*req.Colors))
	}
	if req.Active != nil {
		item.Active = *req.Active
	}

	item.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, s.db, item); err != nil {
		return nil, err
	}

	resp := toResponse(item)
	return &resp, nil
}

func (s *Service) Archive(ctx context.Context, id string) (*domain.Response, error) {
	productID, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	item, err := s.repo.FindByID(ctx, s.db, productID.Int64())
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}

	item.Active = false
	item.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, s.db, item); err != nil {
		return nil, err
	}

	resp := toResponse(item)
	return &resp, nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Response, error) {
	productID, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	item, err := s.repo.FindByID(ctx, s.db, productID.Int64())
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}

	resp := toResponse(item)
	return &resp, nil
}

func (s *Service) GetBySlug(ctx context.Context, slugValue string) (*domain.Response, error) {
	slugValue = strings.TrimSpace(slugValue)
	if slugValue == "" {
		return nil, domain.ErrNotFound
	}

	item, err := s.repo.FindBySlug(ctx, s.db, slugValue)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}

	resp := toResponse(item)
	return &resp, nil
}

func (s *Service) List(ctx context.Context, req domain.ListRequest) (*domain.ListResponse, error) {
	filter := domain.ListFilter{
		Search:   strings.TrimSpace(req.Search),
		Category: strings.TrimSpace(req.Category),
		Active:   req.Active,
		SortBy:   strings.TrimSpace(req.SortBy),
		OrderBy:  strings.TrimSpace(req.OrderBy),
		PageSize: req.Page.PageSize,
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}

	// Cursor pagination follows insertion order; an explicit sort request
	// returns a single sorted page instead.
	if filter.SortBy == "" && req.Page.PageToken != "" {
		cursor, err := pagination.DecodeCursor(req.Page.PageToken)
		if err == nil && cursor.ID != "" {
			if afterID, parseErr := strconv.ParseInt(cursor.ID, 10, 64); parseErr == nil {
				filter.AfterID = afterID
			}
		}
	}
	if filter.SortBy == "" {
		filter.SortBy = "id"
	}

	items, err := s.repo.List(ctx, s.db, filter)
	if err != nil {
		return nil, err
	}

	items, pageInfo := pagination.BuildCursorPageInfo(items, filter.PageSize, func(p domain.Product) string {
		token, _ := pagination.EncodeCursor(pagination.Cursor{ID: strconv.FormatInt(p.ID.Int64(), 10)})
		return token
	})

	resp := make([]domain.Response, 0, len(items))
	for _, item := range items {
		resp = append(resp, toResponse(&item))
	}

	return &domain.ListResponse{Items: resp, PageInfo: pageInfo}, nil
}

func (s *Service) uniqueSlug(ctx context.Context, name string) (string, error) {
	base := slug.Make(name)
	existing, err := s.repo.FindBySlug(ctx, s.db, base)
	if err != nil {
		return "", err
	}
	if existing == nil {
		return base, nil
	}

	// The prefix count suggests the next suffix, but a name can slug straight
	// to an occupied "-N", so probe until a free one turns up.
	count, err := s.repo.CountBySlugPrefix(ctx, s.db, base)
	if err != nil {
		return "", err
	}
	for n := count + 1; ; n++ {
		candidate := base + "-" + strconv.FormatInt(n, 10)
		existing, err := s.repo.FindBySlug(ctx, s.db, candidate)
		if err != nil {
			return "", err
		}
		if existing == nil {
			return candidate, nil
		}
	}
}

func toResponse(p *domain.Product) domain.Response {
	return domain.Response{
		ID:          p.ID.String(),
		Slug:        p.Slug,
		Name:        p.Name,
		Description: p.Description,
		Category:    p.Category,
		BasePrice:   money.FormatCents(p.BasePriceCents),
		Images:      []string(p.Images),
		Sizes:       []string(p.Sizes),
		Colors:      []string(p.Colors),
		Active:      p.Active,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func cleanList(values []string) []string {
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

func ptrToString(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}
