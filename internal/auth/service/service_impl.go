package service

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"net/mail"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/stitchline/vestra/internal/auth/domain"
	"github.com/stitchline/vestra/internal/auth/password"
	companydomain "github.com/stitchline/vestra/internal/company/domain"
	"github.com/stitchline/vestra/pkg/db"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	sessionTokenBytes = 32
	sessionTTL        = 7 * 24 * time.Hour

	minPasswordLength = 8
)

type Params struct {
	fx.In

	DB          *gorm.DB
	Log         *zap.Logger
	GenID       *snowflake.Node
	Repo        domain.Repository
	SessionRepo domain.SessionRepository
	CompanyRepo companydomain.Repository
}

type Service struct {
	db          *gorm.DB
	log         *zap.Logger
	repo        domain.Repository
	sessionRepo domain.SessionRepository
	companyRepo companydomain.Repository
	genID       *snowflake.Node
}

func New(p Params) domain.Service {
	return &Service{
		db:          p.DB,
		log:         p.Log.Named("auth.service"),
		repo:        p.Repo,
		sessionRepo: p.SessionRepo,
		companyRepo: p.CompanyRepo,
		genID:       p.GenID,
	}
}

func (s *Service) Register(ctx context.Context, req domain.RegisterRequest) (*domain.CustomerView, error) {
	email, err := normalizeEmail(req.Email)
	if err != nil {
		return nil, domain.ErrInvalidEmail
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, domain.ErrInvalidName
	}
	if len(req.Password) < minPasswordLength {
		return nil, domain.ErrWeakPassword
	}

	existing, err := s.repo.FindByEmail(ctx, s.db, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrCustomerExists
	}

	hashed, err := password.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	customer := &domain.Customer{
		ID:           s.genID.Generate(),
		Email:        email,
		Name:         name,
		Role:         domain.RoleCustomer,
		PasswordHash: &hashed,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.repo.Create(ctx, s.db, customer); err != nil {
		if db.IsDuplicateKeyErr(err) {
			return nil, domain.ErrCustomerExists
		}
		return nil, err
	}

	view := toView(customer)
	return &view, nil
}

func (s *Service) Login(ctx context.Context, req domain.LoginRequest) (*domain.LoginResult, error) {
	email, err := normalizeEmail(req.Email)
	if err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	if req.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	customer, err := s.repo.FindByEmail(ctx, s.db, email)
	if err != nil {
		return nil, err
	}
	if customer == nil || customer.PasswordHash == nil || !password.Verify(req.Password, *customer.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}
	if !customer.Active {
		return nil, domain.ErrAccountDisabled
	}

	rawToken, err := newSessionToken()
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	session := &domain.Session{
		ID:               s.genID.Generate(),
		CustomerID:       customer.ID,
		SessionTokenHash: hashToken(rawToken),
		UserAgent:        strings.TrimSpace(req.UserAgent),
		IPAddress:        strings.TrimSpace(req.IPAddress),
		ExpiresAt:        now.Add(sessionTTL),
		CreatedAt:        now,
		LastSeenAt:       now,
	}
	if err := s.sessionRepo.Create(ctx, s.db, session); err != nil {
		return nil, err
	}

	return &domain.LoginResult{
		Customer:  toView(customer),
		RawToken:  rawToken,
		ExpiresAt: session.ExpiresAt,
	}, nil
}

func (s *Service) Logout(ctx context.Context, rawToken string) error {
	token := strings.TrimSpace(rawToken)
	if token == "" {
		return domain.ErrInvalidSession
	}

	session, err := s.sessionRepo.FindByTokenHash(ctx, s.db, hashToken(token))
	if err != nil {
		return err
	}
	if session == nil {
		return domain.ErrInvalidSession
	}

	return s.sessionRepo.Revoke(ctx, s.db, int64(session.ID))
}

func (s *Service) Authenticate(ctx context.Context, rawToken string) (*domain.CustomerView, error) {
	token := strings.TrimSpace(rawToken)
	if token == "" {
		return nil, domain.ErrInvalidSession
	}

	session, err := s.sessionRepo.FindByTokenHash(ctx, s.db, hashToken(token))
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, domain.ErrInvalidSession
	}

	now := time.Now().UTC()
	if session.RevokedAt != nil {
		return nil, domain.ErrSessionRevoked
	}
	if now.After(session.ExpiresAt) {
		return nil, domain.ErrSessionExpired
	}

	customer, err := s.repo.FindByID(ctx, s.db, int64(session.CustomerID))
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrInvalidSession
	}
	if !customer.Active {
		return nil, domain.ErrAccountDisabled
	}

	if err := s.sessionRepo.Touch(ctx, s.db, int64(session.ID)); err != nil {
		return nil, err
	}

	view := toView(customer)
	return &view, nil
}

func (s *Service) ChangePassword(ctx context.Context, customerID int64, current, next string) error {
	if len(next) < minPasswordLength {
		return domain.ErrWeakPassword
	}

	customer, err := s.repo.FindByID(ctx, s.db, customerID)
	if err != nil {
		return err
	}
	if customer == nil {
		return domain.ErrCustomerNotFound
	}
	if customer.PasswordHash == nil || !password.Verify(current, *customer.PasswordHash) {
		return domain.ErrInvalidCredentials
	}

	hashed, err := password.Hash(next)
	if err != nil {
		return err
	}

	customer.PasswordHash = &hashed
	customer.UpdatedAt = time.Now().UTC()
	return s.repo.Update(ctx, s.db, customer)
}

func (s *Service) List(ctx context.Context, req domain.ListRequest) ([]domain.CustomerView, error) {
	filter := domain.ListFilter{
		Search: strings.TrimSpace(req.Search),
		Role:   strings.TrimSpace(req.Role),
	}
	if raw := strings.TrimSpace(req.CompanyID); raw != "" {
		id, err := snowflake.ParseString(raw)
		if err != nil {
			return nil, domain.ErrInvalidCompany
		}
		filter.CompanyID = int64(id)
	}

	customers, err := s.repo.List(ctx, s.db, filter)
	if err != nil {
		return nil, err
	}

	views := make([]domain.CustomerView, 0, len(customers))
	for i := range customers {
		views = append(views, toView(&customers[i]))
	}
	return views, nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.CustomerView, error) {
	customer, err := s.findCustomer(ctx, id)
	if err != nil {
		return nil, err
	}
	view := toView(customer)
	return &view, nil
}

func (s *Service) AssignCompany(ctx context.Context, id, companyID string) (*domain.CustomerView, error) {
	customer, err := s.findCustomer(ctx, id)
	if err != nil {
		return nil, err
	}

	parsed, err := snowflake.ParseString(strings.TrimSpace(companyID))
	if err != nil {
		return nil, domain.ErrInvalidCompany
	}
	company, err := s.companyRepo.FindByID(ctx, s.db, int64(parsed))
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrInvalidCompany
	}

	customer.CompanyID = &parsed
	customer.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, s.db, customer); err != nil {
		return nil, err
	}

	view := toView(customer)
	return &view, nil
}

func (s *Service) ClearCompany(ctx context.Context, id string) (*domain.CustomerView, error) {
	customer, err := s.findCustomer(ctx, id)
	if err != nil {
		return nil, err
	}

	customer.CompanyID = nil
	customer.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, s.db, customer); err != nil {
		return nil, err
	}

	view := toView(customer)
	return &view, nil
}

func (s *Service) SetActive(ctx context.Context, id string, active bool) (*domain.CustomerView, error) {
	customer, err := s.findCustomer(ctx, id)
	if err != nil {
		return nil, err
	}

	customer.Active = active
	customer.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, s.db, customer); err != nil {
		return nil, err
	}

	view := toView(customer)
	return &view, nil
}

func (s *Service) findCustomer(ctx context.Context, id string) (*domain.Customer, error) {
	parsed, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil {
		return nil, domain.ErrInvalidID
	}
	customer, err := s.repo.FindByID(ctx, s.db, int64(parsed))
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrCustomerNotFound
	}
	return customer, nil
}

func toView(c *domain.Customer) domain.CustomerView {
	view := domain.CustomerView{
		ID:        c.ID.String(),
		Email:     c.Email,
		Name:      c.Name,
		Role:      c.Role,
		Active:    c.Active,
		CreatedAt: c.CreatedAt,
	}
	if c.CompanyID != nil {
		id := c.CompanyID.String()
		view.CompanyID = &id
	}
	return view
}

func normalizeEmail(raw string) (string, error) {
	addr, err := mail.ParseAddress(strings.TrimSpace(raw))
	if err != nil {
		return "", err
	}
	return strings.ToLower(strings.TrimSpace(addr.Address)), nil
}

func newSessionToken() (string, error) {
	buf := make([]byte, sessionTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

func hashToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}
