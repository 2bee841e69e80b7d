package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	authdomain "github.com/stitchline/vestra/internal/auth/domain"
	productdomain "github.com/stitchline/vestra/internal/catalog/product/domain"
	"github.com/stitchline/vestra/internal/order/domain"
	quotedomain "github.com/stitchline/vestra/internal/quote/domain"
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
	Repo        domain.Repository
	QuoteRepo   quotedomain.Repository
	AuthRepo    authdomain.Repository
	ProductRepo productdomain.Repository
}

type Service struct {
	db          *gorm.DB
	log         *zap.Logger
	repo        domain.Repository
	quoteRepo   quotedomain.Repository
	authRepo    authdomain.Repository
	productRepo productdomain.Repository
	genID       *snowflake.Node
}

func New(p Params) domain.Service {
	return &Service{
		db:          p.DB,
		log:         p.Log.Named("order.service"),
		repo:        p.Repo,
		quoteRepo:   p.QuoteRepo,
		authRepo:    p.AuthRepo,
		productRepo: p.ProductRepo,
		genID:       p.GenID,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateRequest) (*domain.Response, error) {
	customerID, err := snowflake.ParseString(strings.TrimSpace(req.CustomerID))
	if err != nil {
		return nil, domain.ErrInvalidID
	}
	customer, err := s.authRepo.FindByID(ctx, s.db, int64(customerID))
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrCustomerNotFound
	}
	if len(req.Items) == 0 {
		return nil, domain.ErrEmptyItems
	}

	items := make([]domain.OrderItem, 0, len(req.Items))
	var total int64
	for _, ir := range req.Items {
		if ir.Quantity < 1 {
			return nil, domain.ErrInvalidQuantity
		}
		productID, err := snowflake.ParseString(strings.TrimSpace(ir.ProductID))
		if err != nil {
			return nil, domain.ErrInvalidID
		}
		product, err := s.productRepo.FindByID(ctx, s.db, int64(productID))
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, domain.ErrProductNotFound
		}
		unitCents, err := money.ParseCents(ir.UnitPrice)
		if err != nil {
			return nil, domain.ErrInvalidPrice
		}
		if ir.DiscountBps < 0 || ir.DiscountBps > money.BpsDenominator {
			return nil, domain.ErrInvalidPrice
		}

		lineTotal := unitCents * int64(ir.Quantity)
		items = append(items, domain.OrderItem{
			ProductID:      productID.String(),
			ProductName:    product.Name,
			SizeLabel:      strings.TrimSpace(ir.SizeLabel),
			ColorName:      strings.TrimSpace(ir.ColorName),
			Quantity:       ir.Quantity,
			UnitPriceCents: unitCents,
			DiscountBps:    ir.DiscountBps,
			LineTotalCents: lineTotal,
		})
		total += lineTotal
	}

	now := time.Now().UTC()
	order := &domain.Order{
		ID:         s.genID.Generate(),
		CustomerID: customerID,
		CompanyID:  customer.CompanyID,
		Status:     domain.StatusPending,
		Items:      items,
		TotalCents: total,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.repo.Create(ctx, s.db, order); err != nil {
		return nil, err
	}

	resp := toResponse(order)
	return &resp, nil
}

func (s *Service) CreateFromQuote(ctx context.Context, quoteID string) (*domain.Response, error) {
	parsed, err := snowflake.ParseString(strings.TrimSpace(quoteID))
	if err != nil {
		return nil, domain.ErrInvalidID
	}
	quote, err := s.quoteRepo.FindByID(ctx, s.db, int64(parsed))
	if err != nil {
		return nil, err
	}
	if quote == nil {
		return nil, domain.ErrQuoteNotFound
	}
	if quote.Status == quotedomain.StatusClosed {
		return nil, domain.ErrInvalidTransition
	}

	customer, err := s.authRepo.FindByID(ctx, s.db, int64(quote.CustomerID))
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrCustomerNotFound
	}

	items := make([]domain.OrderItem, 0, len(quote.Items))
	for _, qi := range quote.Items {
		items = append(items, domain.OrderItem{
			ProductID:      qi.ProductID,
			ProductName:    qi.ProductName,
			SizeLabel:      qi.SizeLabel,
			ColorName:      qi.ColorName,
			Quantity:       qi.Quantity,
			UnitPriceCents: qi.UnitPriceCents,
			DiscountBps:    qi.DiscountBps,
			LineTotalCents: qi.LineTotalCents,
		})
	}

	now := time.Now().UTC()
	qid := quote.ID
	order := &domain.Order{
		ID:         s.genID.Generate(),
		CustomerID: quote.CustomerID,
		CompanyID:  customer.CompanyID,
		QuoteID:    &qid,
		Status:     domain.StatusPending,
		Items:      items,
		TotalCents: quote.TotalCents,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.repo.Create(ctx, tx, order); err != nil {
			return err
		}
		return s.quoteRepo.UpdateStatus(ctx, tx, int64(quote.ID), quotedomain.StatusClosed)
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("order created from quote",
		zap.String("order_id", order.ID.String()),
		zap.String("quote_reference", quote.Reference),
	)

	resp := toResponse(order)
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

	orders, err := s.repo.List(ctx, s.db, filter)
	if err != nil {
		return nil, err
	}
	return toResponses(orders), nil
}

func (s *Service) ListByCustomer(ctx context.Context, customerID int64) ([]domain.Response, error) {
	orders, err := s.repo.List(ctx, s.db, domain.ListFilter{CustomerID: customerID})
	if err != nil {
		return nil, err
	}
	return toResponses(orders), nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Response, error) {
	order, err := s.findOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toResponse(order)
	return &resp, nil
}

func (s *Service) UpdateStatus(ctx context.Context, id, status string) (*domain.Response, error) {
	next := strings.TrimSpace(status)
	if !domain.ValidStatus(next) {
		return nil, domain.ErrInvalidStatus
	}

	order, err := s.findOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	if !domain.CanTransition(order.Status, next) {
		return nil, domain.ErrInvalidTransition
	}

	if err := s.repo.UpdateStatus(ctx, s.db, int64(order.ID), next); err != nil {
		return nil, err
	}

	order.Status = next
	order.UpdatedAt = time.Now().UTC()
	resp := toResponse(order)
	return &resp, nil
}

func (s *Service) findOrder(ctx context.Context, id string) (*domain.Order, error) {
	parsed, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil {
		return nil, domain.ErrInvalidID
	}
	order, err := s.repo.FindByID(ctx, s.db, int64(parsed))
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	return order, nil
}

func toResponse(o *domain.Order) domain.Response {
	resp := domain.Response{
		ID:         o.ID.String(),
		CustomerID: o.CustomerID.String(),
		Status:     o.Status,
		Items:      o.Items,
		Total:      money.FormatCents(o.TotalCents),
		CreatedAt:  o.CreatedAt,
		UpdatedAt:  o.UpdatedAt,
	}
	if o.CompanyID != nil {
		id := o.CompanyID.String()
		resp.CompanyID = &id
	}
	if o.QuoteID != nil {
		id := o.QuoteID.String()
		resp.QuoteID = &id
	}
	return resp
}

func toResponses(orders []domain.Order) []domain.Response {
	out := make([]domain.Response, 0, len(orders))
	for i := range orders {
		out = append(out, toResponse(&orders[i]))
	}
	return out
}
