package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/stitchline/vestra/internal/company/domain"
	companytypedomain "github.com/stitchline/vestra/internal/companytype/domain"
	"github.com/stitchline/vestra/pkg/db"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB              *gorm.DB
	Log             *zap.Logger
	GenID           *snowflake.Node
	Repo            domain.Repository
	CompanyTypeRepo companytypedomain.Repository
}

type Service struct {
	db              *gorm.DB
	log             *zap.Logger
	repo            domain.Repository
	companyTypeRepo companytypedomain.Repository
	genID           *snowflake.Node
}

func New(p Params) domain.Service {
	return &Service{
		db:              p.DB,
		log:             p.Log.Named("company.service"),
		repo:            p.Repo,
		companyTypeRepo: p.CompanyTypeRepo,
		genID:           p.GenID,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateRequest) (*domain.Response, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, domain.ErrInvalidName
	}

	var companyTypeID *snowflake.ID
	if req.CompanyTypeID != nil && strings.TrimSpace(*req.CompanyTypeID) != "" {
		parsed, err := s.resolveCompanyType(ctx, *req.CompanyTypeID)
		if err != nil {
			return nil, err
		}
		companyTypeID = parsed
	}

	now := time.Now().UTC()
	c := &domain.Company{
		ID:            s.genID.Generate(),
		Name:          name,
		CompanyTypeID: companyTypeID,
		ContactEmail:  trimPtr(req.ContactEmail),
		ContactPhone:  trimPtr(req.ContactPhone),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.repo.Create(ctx, s.db, c); err != nil {
		if db.IsDuplicateKeyErr(err) {
			return nil, domain.ErrNameTaken
		}
		return nil, err
	}

	resp := toResponse(c)
	return &resp, nil
}

func (s *Service) Update(ctx context.Context, req domain.UpdateRequest) (*domain.Response, error) {
	companyID, err := snowflake.ParseString(strings.TrimSpace(req.ID))
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	item, err := s.repo.FindByID(ctx, s.db, companyID.Int64())
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
	if req.ContactEmail != nil {
		item.ContactEmail = trimPtr(req.ContactEmail)
	}
	if req.ContactPhone != nil {
		item.ContactPhone = trimPtr(req.ContactPhone)
	}

	item.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, s.db, item); err != nil {
		if db.IsDuplicateKeyErr(err) {
			return nil, domain.ErrNameTaken
		}
		return nil, err
	}

	resp := toResponse(item)
	return &resp, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	companyID, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil {
		return domain.ErrInvalidID
	}

	item, err := s.repo.FindByID(ctx, s.db, companyID.Int64())
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrNotFound
	}

	members, err := s.repo.CountMembers(ctx, s.db, companyID.Int64())
	if err != nil {
		return err
	}
	if members > 0 {
		return domain.ErrHasMembers
	}

	return s.repo.Delete(ctx, s.db, companyID.Int64())
}

func (s *Service) List(ctx context.Context, req domain.ListRequest) ([]domain.Response, error) {
	items, err := s.repo.List(ctx, s.db, req.Search)
	if err != nil {
		return nil, err
	}

	resp := make([]domain.Response, 0, len(items))
	for _, item := range items {
		resp = append(resp, toResponse(&item))
	}
	return resp, nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Response, error) {
	companyID, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	item, err := s.repo.FindByID(ctx, s.db, companyID.Int64())
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}

	resp := toResponse(item)
	return &resp, nil
}

func (s *Service) AssignType(ctx context.Context, id, companyTypeID string) (*domain.Response, error) {
	companyID, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	item, err := s.repo.FindByID(ctx, s.db, companyID.Int64())
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}

	parsed, err := s.resolveCompanyType(ctx, companyTypeID)
	if err != nil {
		return nil, err
	}

	item.CompanyTypeID = parsed
	item.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, s.db, item); err != nil {
		return nil, err
	}

	resp := toResponse(item)
	return &resp, nil
}

func (s *Service) ClearType(ctx context.Context, id string) (*domain.Response, error) {
	companyID, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	item, err := s.repo.FindByID(ctx, s.db, companyID.Int64())
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}

	item.CompanyTypeID = nil
	item.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, s.db, item); err != nil {
		return nil, err
	}

	resp := toResponse(item)
	return &resp, nil
}

func (s *Service) resolveCompanyType(ctx context.Context, raw string) (*snowflake.ID, error) {
	typeID, err := snowflake.ParseString(strings.TrimSpace(raw))
	if err != nil {
		return nil, domain.ErrInvalidCompanyType
	}
	companyType, err := s.companyTypeRepo.FindByID(ctx, s.db, typeID.Int64())
	if err != nil {
		return nil, err
	}
	if companyType == nil {
		return nil, domain.ErrInvalidCompanyType
	}
	return &typeID, nil
}

func toResponse(c *domain.Company) domain.Response {
	resp := domain.Response{
		ID:           c.ID.String(),
		Name:         c.Name,
		ContactEmail: c.ContactEmail,
		ContactPhone: c.ContactPhone,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
	if c.CompanyTypeID != nil {
		value := c.CompanyTypeID.String()
		resp.CompanyTypeID = &value
	}
	return resp
}

func trimPtr(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
