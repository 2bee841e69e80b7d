package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/stitchline/vestra/internal/promotion/domain"
	"github.com/stitchline/vestra/pkg/db"
	"github.com/stitchline/vestra/pkg/money"
	"go.uber.org/fx"
	"go.uber.org/zap"
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
		log:   p.Log.Named("promotion.service"),
		repo:  p.Repo,
		genID: p.GenID,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateRequest) (*domain.Response, error) {
	code := strings.ToUpper(strings.TrimSpace(req.Code))
	if code == "" {
		return nil, domain.ErrInvalidCode
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, domain.ErrInvalidName
	}
	bps, err := money.ParseBps(req.DiscountPercent)
	if err != nil || bps == 0 {
		return nil, domain.ErrInvalidDiscount
	}
	if req.StartsAt.IsZero() || req.EndsAt.IsZero() || !req.EndsAt.After(req.StartsAt) {
		return nil, domain.ErrInvalidWindow
	}

	now := time.Now().UTC()
	p := &domain.Promotion{
		ID:          s.genID.Generate(),
		Code:        code,
		Name:        name,
		DiscountBps: bps,
		StartsAt:    req.StartsAt.UTC(),
		EndsAt:      req.EndsAt.UTC(),
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.Create(ctx, s.db, p); err != nil {
		if db.IsDuplicateKeyErr(err) {
			return nil, domain.ErrCodeTaken
		}
		return nil, err
	}

	resp := toResponse(p)
	return &resp, nil
}

func (s *Service) Update(ctx context.Context, req domain.UpdateRequest) (*domain.Response, error) {
	p, err := s.findPromotion(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, domain.ErrInvalidName
		}
		p.Name = name
	}
	if req.DiscountPercent != nil {
		bps, err := money.ParseBps(*req.DiscountPercent)
		if err != nil || bps == 0 {
			return nil, domain.ErrInvalidDiscount
		}
		p.DiscountBps = bps
	}
	if req.StartsAt != nil {
		p.StartsAt = req.StartsAt.UTC()
	}
	if req.EndsAt != nil {
		p.EndsAt = req.EndsAt.UTC()
	}
	if !p.EndsAt.After(p.StartsAt) {
		return nil, domain.ErrInvalidWindow
	}
	if req.Active != nil {
		p.Active = *req.Active
	}

	p.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, s.db, p); err != nil {
		return nil, err
	}

	resp := toResponse(p)
	return &resp, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	p, err := s.findPromotion(ctx, id)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, s.db, int64(p.ID))
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Response, error) {
	p, err := s.findPromotion(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toResponse(p)
	return &resp, nil
}

func (s *Service) List(ctx context.Context) ([]domain.Response, error) {
	promotions, err := s.repo.FindAll(ctx, s.db)
	if err != nil {
		return nil, err
	}
	return toResponses(promotions), nil
}

func (s *Service) ActiveAt(ctx context.Context, now time.Time) ([]domain.Response, error) {
	promotions, err := s.repo.FindLiveAt(ctx, s.db, now.UTC())
	if err != nil {
		return nil, err
	}
	return toResponses(promotions), nil
}

func (s *Service) findPromotion(ctx context.Context, id string) (*domain.Promotion, error) {
	parsed, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil {
		return nil, domain.ErrInvalidID
	}
	p, err := s.repo.FindByID(ctx, s.db, int64(parsed))
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return p, nil
}

func toResponse(p *domain.Promotion) domain.Response {
	return domain.Response{
		ID:              p.ID.String(),
		Code:            p.Code,
		Name:            p.Name,
		DiscountPercent: money.FormatBps(p.DiscountBps),
		StartsAt:        p.StartsAt,
		EndsAt:          p.EndsAt,
		Active:          p.Active,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

func toResponses(promotions []domain.Promotion) []domain.Response {
	out := make([]domain.Response, 0, len(promotions))
	for i := range promotions {
		out = append(out, toResponse(&promotions[i]))
	}
	return out
}
