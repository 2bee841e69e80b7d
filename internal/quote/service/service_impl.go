package service

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/oklog/ulid/v2"
	authdomain "github.com/stitchline/vestra/internal/auth/domain"
	cartdomain "github.com/stitchline/vestra/internal/cart/domain"
	productdomain "github.com/stitchline/vestra/internal/catalog/product/domain"
	companydomain "github.com/stitchline/vestra/internal/company/domain"
	"github.com/stitchline/vestra/internal/config"
	"github.com/stitchline/vestra/internal/observability/metrics"
	pricingdomain "github.com/stitchline/vestra/internal/pricing/domain"
	"github.com/stitchline/vestra/internal/providers/pdf"
	"github.com/stitchline/vestra/internal/quote/domain"
	"github.com/stitchline/vestra/internal/ratelimit"
	"github.com/stitchline/vestra/pkg/money"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB          *gorm.DB
	Log         *zap.Logger
	GenID       *snowflake.Node
	Cfg         config.Config
	Repo        domain.Repository
	CartRepo    cartdomain.Repository
	ProductRepo productdomain.Repository
	AuthRepo    authdomain.Repository
	CompanyRepo companydomain.Repository
	Pricing     pricingdomain.Service
	Limiter     *ratelimit.QuoteLimiter
	PDF         pdf.Provider
	Metrics     *metrics.Metrics `optional:"true"`
}

type Service struct {
	db          *gorm.DB
	log         *zap.Logger
	cfg         config.Config
	repo        domain.Repository
	cartRepo    cartdomain.Repository
	productRepo productdomain.Repository
	authRepo    authdomain.Repository
	companyRepo companydomain.Repository
	pricing     pricingdomain.Service
	limiter     *ratelimit.QuoteLimiter
	pdf         pdf.Provider
	metrics     *metrics.Metrics
	genID       *snowflake.Node
}

func New(p Params) domain.Service {
	return &Service{
		db:          p.DB,
		log:         p.Log.Named("quote.service"),
		cfg:         p.Cfg,
		repo:        p.Repo,
		cartRepo:    p.CartRepo,
		productRepo: p.ProductRepo,
		authRepo:    p.AuthRepo,
		companyRepo: p.CompanyRepo,
		pricing:     p.Pricing,
		limiter:     p.Limiter,
		pdf:         p.PDF,
		metrics:     p.Metrics,
		genID:       p.GenID,
	}
}

func (s *Service) Submit(ctx context.Context, principal *pricingdomain.Principal, req domain.SubmitRequest) (*domain.Response, error) {
	if !s.limiter.Allow(ctx, principal.ID.String()) {
		s.metrics.RecordQuoteSubmission("rate_limited")
		return nil, domain.ErrRateLimited
	}

	cartItems, err := s.cartRepo.FindByCustomer(ctx, s.db, int64(principal.ID))
	if err != nil {
		return nil, err
	}
	if len(cartItems) == 0 {
		return nil, domain.ErrEmptyCart
	}

	tier := s.pricing.TierFor(ctx, principal)

	items := make([]domain.QuoteItem, 0, len(cartItems))
	var total int64
	for _, ci := range cartItems {
		product, err := s.productRepo.FindByID(ctx, s.db, int64(ci.ProductID))
		if err != nil {
			return nil, err
		}
		if product == nil || !product.Active {
			return nil, domain.ErrUnavailableProduct
		}

		priced := pricingdomain.Apply(product.BasePriceCents, tier)
		lineTotal := priced.DiscountedCents * int64(ci.Quantity)
		items = append(items, domain.QuoteItem{
			ProductID:      ci.ProductID.String(),
			ProductName:    product.Name,
			SizeLabel:      ci.SizeLabel,
			ColorName:      ci.ColorName,
			Quantity:       ci.Quantity,
			UnitPriceCents: priced.DiscountedCents,
			DiscountBps:    priced.DiscountBps,
			LineTotalCents: lineTotal,
		})
		total += lineTotal
	}

	now := time.Now().UTC()
	quote := &domain.Quote{
		ID:         s.genID.Generate(),
		Reference:  ulid.Make().String(),
		CustomerID: principal.ID,
		Status:     domain.StatusNew,
		Note:       strings.TrimSpace(req.Note),
		Items:      items,
		TotalCents: total,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.repo.Create(ctx, tx, quote); err != nil {
			return err
		}
		return s.cartRepo.DeleteByCustomer(ctx, tx, int64(principal.ID))
	})
	if err != nil {
		return nil, err
	}

	s.metrics.RecordQuoteSubmission("accepted")
	s.log.Info("quote submitted",
		zap.String("reference", quote.Reference),
		zap.String("customer_id", principal.ID.String()),
		zap.Int("items", len(items)),
	)

	resp := toResponse(quote)
	return &resp, nil
}

func (s *Service) List(ctx context.Context, req domain.ListRequest) ([]domain.Response, error) {
	filter := domain.ListFilter{}
	if status := strings.TrimSpace(req.Status); status != "" {
		if !domain.ValidStatus(status) {
			return nil, domain.ErrInvalidStatus
		}
		filter.Status = status
	}
	if raw := strings.TrimSpace(req.CustomerID); raw != "" {
		id, err := snowflake.ParseString(raw)
		if err != nil {
			return nil, domain.ErrInvalidID
		}
		filter.CustomerID = int64(id)
	}

	quotes, err := s.repo.List(ctx, s.db, filter)
	if err != nil {
		return nil, err
	}
	return toResponses(quotes), nil
}

func (s *Service) ListByCustomer(ctx context.Context, customerID int64) ([]domain.Response, error) {
	quotes, err := s.repo.List(ctx, s.db, domain.ListFilter{CustomerID: customerID})
	if err != nil {
		return nil, err
	}
	return toResponses(quotes), nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Response, error) {
	quote, err := s.findQuote(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toResponse(quote)
	return &resp, nil
}

func (s *Service) UpdateStatus(ctx context.Context, id, status string) (*domain.Response, error) {
	next := strings.TrimSpace(status)
	if !domain.ValidStatus(next) {
		return nil, domain.ErrInvalidStatus
	}

	quote, err := s.findQuote(ctx, id)
	if err != nil {
		return nil, err
	}
	if !domain.CanTransition(quote.Status, next) {
		return nil, domain.ErrInvalidTransition
	}

	if err := s.repo.UpdateStatus(ctx, s.db, int64(quote.ID), next); err != nil {
		return nil, err
	}

	quote.Status = next
	quote.UpdatedAt = time.Now().UTC()
	resp := toResponse(quote)
	return &resp, nil
}

func (s *Service) RenderPDF(ctx context.Context, id string) (io.Reader, error) {
	quote, err := s.findQuote(ctx, id)
	if err != nil {
		return nil, err
	}

	doc := pdf.QuoteDocument{
		ShopName:  s.cfg.AppName,
		Reference: quote.Reference,
		IssueDate: quote.CreatedAt.Format("Jan 02, 2006"),
		Status:    quote.Status,
		Total:     money.FormatCents(quote.TotalCents),
	}

	customer, err := s.authRepo.FindByID(ctx, s.db, int64(quote.CustomerID))
	if err == nil && customer != nil {
		doc.CustomerName = customer.Name
		doc.CustomerEmail = customer.Email
		if customer.CompanyID != nil {
			if company, err := s.companyRepo.FindByID(ctx, s.db, int64(*customer.CompanyID)); err == nil && company != nil {
				doc.CompanyName = company.Name
			}
		}
	}

	doc.Note = quote.Note

	var subtotal int64
	var discountBps int64
	for _, item := range quote.Items {
		subtotal += item.LineTotalCents
		if item.DiscountBps > 0 {
			discountBps = item.DiscountBps
		}
		doc.Items = append(doc.Items, pdf.QuoteLine{
			Description: lineDescription(item),
			Qty:         item.Quantity,
			UnitPrice:   money.FormatCents(item.UnitPriceCents),
			Amount:      money.FormatCents(item.LineTotalCents),
		})
	}
	doc.Subtotal = money.FormatCents(subtotal)
	if discountBps > 0 {
		doc.DiscountPercent = money.FormatBps(discountBps)
	}

	return s.pdf.GenerateQuote(ctx, doc)
}

func (s *Service) findQuote(ctx context.Context, id string) (*domain.Quote, error) {
	parsed, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil {
		return nil, domain.ErrInvalidID
	}
	quote, err := s.repo.FindByID(ctx, s.db, int64(parsed))
	if err != nil {
		return nil, err
	}
	if quote == nil {
		return nil, domain.ErrNotFound
	}
	return quote, nil
}

func lineDescription(item domain.QuoteItem) string {
	parts := []string{item.ProductName}
	if item.SizeLabel != "" {
		parts = append(parts, item.SizeLabel)
	}
	if item.ColorName != "" {
		parts = append(parts, item.ColorName)
	}
	return strings.Join(parts, " / ")
}

func toResponse(q *domain.Quote) domain.Response {
	return domain.Response{
		ID:         q.ID.String(),
		Reference:  q.Reference,
		CustomerID: q.CustomerID.String(),
		Status:     q.Status,
		Note:       q.Note,
		Items:      q.Items,
		Total:      money.FormatCents(q.TotalCents),
		CreatedAt:  q.CreatedAt,
		UpdatedAt:  q.UpdatedAt,
	}
}

func toResponses(quotes []domain.Quote) []domain.Response {
	out := make([]domain.Response, 0, len(quotes))
	for i := range quotes {
		out = append(out, toResponse(&quotes[i]))
	}
	return out
}
