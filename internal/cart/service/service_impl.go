package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/stitchline/vestra/internal/cart/domain"
	colordomain "github.com/stitchline/vestra/internal/catalog/color/domain"
	colorimagedomain "github.com/stitchline/vestra/internal/catalog/colorimage/domain"
	productdomain "github.com/stitchline/vestra/internal/catalog/product/domain"
	"github.com/stitchline/vestra/internal/config"
	pricingdomain "github.com/stitchline/vestra/internal/pricing/domain"
	"github.com/stitchline/vestra/pkg/money"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB             *gorm.DB
	Log            *zap.Logger
	GenID          *snowflake.Node
	Repo           domain.Repository
	ProductRepo    productdomain.Repository
	ColorRepo      colordomain.Repository
	ColorImageRepo colorimagedomain.Repository
	Pricing        pricingdomain.Service
	Storefront     *config.StorefrontConfigHolder
}

type Service struct {
	db             *gorm.DB
	log            *zap.Logger
	repo           domain.Repository
	productRepo    productdomain.Repository
	colorRepo      colordomain.Repository
	colorImageRepo colorimagedomain.Repository
	pricing        pricingdomain.Service
	storefront     *config.StorefrontConfigHolder
	genID          *snowflake.Node
}

func New(p Params) domain.Service {
	return &Service{
		db:             p.DB,
		log:            p.Log.Named("cart.service"),
		repo:           p.Repo,
		productRepo:    p.ProductRepo,
		colorRepo:      p.ColorRepo,
		colorImageRepo: p.ColorImageRepo,
		pricing:        p.Pricing,
		storefront:     p.Storefront,
		genID:          p.GenID,
	}
}

func (s *Service) Get(ctx context.Context, principal *pricingdomain.Principal) (*domain.CartView, error) {
	items, err := s.repo.FindByCustomer(ctx, s.db, int64(principal.ID))
	if err != nil {
		return nil, err
	}

	tier := s.pricing.TierFor(ctx, principal)
	placeholders := s.storefront.Current().PlaceholderDomains

	colors, err := s.colorRepo.FindAll(ctx, s.db)
	if err != nil {
		// Swatch and override lookups degrade; the cart still renders.
		s.log.Warn("color lookup failed, rendering without overrides", zap.Error(err))
		colors = nil
	}

	view := &domain.CartView{Items: make([]domain.ItemView, 0, len(items))}
	var subtotalOriginal, subtotalDiscounted int64
	for i := range items {
		iv := s.enrichItem(ctx, &items[i], tier, colors, placeholders)
		if !iv.Unavailable {
			q := items[i].Quantity
			orig, _ := money.ParseCents(iv.OriginalPrice)
			disc, _ := money.ParseCents(iv.DiscountedPrice)
			subtotalOriginal += orig * int64(q)
			subtotalDiscounted += disc * int64(q)
		}
		view.Items = append(view.Items, iv)
	}

	view.SubtotalOriginal = money.FormatCents(subtotalOriginal)
	view.SubtotalDiscounted = money.FormatCents(subtotalDiscounted)
	if tier.Applied() {
		view.DiscountPercent = money.FormatBps(tier.DiscountBps)
		view.TierName = tier.Name
	}
	return view, nil
}

func (s *Service) enrichItem(ctx context.Context, item *domain.CartItem, tier pricingdomain.Tier, colors []colordomain.Color, placeholders []string) domain.ItemView {
	iv := domain.ItemView{
		ID:        item.ID.String(),
		ProductID: item.ProductID.String(),
		SizeLabel: item.SizeLabel,
		ColorName: item.ColorName,
		Quantity:  item.Quantity,
	}

	product, err := s.productRepo.FindByID(ctx, s.db, int64(item.ProductID))
	if err != nil || product == nil || !product.Active {
		if err != nil {
			s.log.Warn("cart product lookup failed", zap.String("product_id", iv.ProductID), zap.Error(err))
		}
		iv.Unavailable = true
		return iv
	}

	iv.ProductName = product.Name
	iv.ProductSlug = product.Slug

	sets := s.colorImageSets(ctx, int64(item.ProductID))
	iv.DisplayImages = colorimagedomain.ResolveDisplayImages(product.Images, sets, colors, item.ColorName)
	iv.Thumbnail = colorimagedomain.FirstValidImage(iv.DisplayImages, placeholders)

	quote := pricingdomain.Apply(product.BasePriceCents, tier)
	iv.OriginalPrice = money.FormatCents(quote.OriginalCents)
	iv.DiscountedPrice = money.FormatCents(quote.DiscountedCents)
	iv.LineTotal = money.FormatCents(quote.DiscountedCents * int64(item.Quantity))
	return iv
}

func (s *Service) colorImageSets(ctx context.Context, productID int64) []colorimagedomain.ColorImageSet {
	rows, err := s.colorImageRepo.FindByProduct(ctx, s.db, productID)
	if err != nil {
		s.log.Warn("color image lookup failed", zap.Int64("product_id", productID), zap.Error(err))
		return nil
	}
	sets := make([]colorimagedomain.ColorImageSet, 0, len(rows))
	for _, row := range rows {
		sets = append(sets, colorimagedomain.ColorImageSet{
			ColorID: int64(row.ColorID),
			Images:  row.Images,
		})
	}
	return sets
}

func (s *Service) AddItem(ctx context.Context, customerID snowflake.ID, req domain.AddItemRequest) error {
	if req.Quantity < 1 || req.Quantity > domain.MaxQuantity {
		return domain.ErrInvalidQuantity
	}
	productID, err := snowflake.ParseString(strings.TrimSpace(req.ProductID))
	if err != nil {
		return domain.ErrInvalidID
	}

	product, err := s.productRepo.FindByID(ctx, s.db, int64(productID))
	if err != nil {
		return err
	}
	if product == nil || !product.Active {
		return domain.ErrProductNotFound
	}

	sizeLabel, ok := matchOption(req.SizeLabel, product.Sizes)
	if !ok {
		return domain.ErrInvalidSize
	}
	colorName, ok := matchOption(req.ColorName, product.Colors)
	if !ok {
		return domain.ErrInvalidColor
	}

	existing, err := s.repo.FindMatching(ctx, s.db, int64(customerID), int64(productID), sizeLabel, colorName)
	if err != nil {
		return err
	}
	if existing != nil {
		next := existing.Quantity + req.Quantity
		if next > domain.MaxQuantity {
			next = domain.MaxQuantity
		}
		return s.repo.UpdateQuantity(ctx, s.db, int64(existing.ID), next)
	}

	now := time.Now().UTC()
	return s.repo.Create(ctx, s.db, &domain.CartItem{
		ID:         s.genID.Generate(),
		CustomerID: customerID,
		ProductID:  productID,
		SizeLabel:  sizeLabel,
		ColorName:  colorName,
		Quantity:   req.Quantity,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
}

func (s *Service) UpdateItemQuantity(ctx context.Context, customerID snowflake.ID, itemID string, quantity int) error {
	if quantity < 1 || quantity > domain.MaxQuantity {
		return domain.ErrInvalidQuantity
	}
	item, err := s.findOwnedItem(ctx, customerID, itemID)
	if err != nil {
		return err
	}
	return s.repo.UpdateQuantity(ctx, s.db, int64(item.ID), quantity)
}

func (s *Service) RemoveItem(ctx context.Context, customerID snowflake.ID, itemID string) error {
	item, err := s.findOwnedItem(ctx, customerID, itemID)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, s.db, int64(item.ID))
}

func (s *Service) Clear(ctx context.Context, customerID snowflake.ID) error {
	return s.repo.DeleteByCustomer(ctx, s.db, int64(customerID))
}

func (s *Service) findOwnedItem(ctx context.Context, customerID snowflake.ID, itemID string) (*domain.CartItem, error) {
	parsed, err := snowflake.ParseString(strings.TrimSpace(itemID))
	if err != nil {
		return nil, domain.ErrInvalidID
	}
	item, err := s.repo.FindByID(ctx, s.db, int64(parsed))
	if err != nil {
		return nil, err
	}
	if item == nil || item.CustomerID != customerID {
		return nil, domain.ErrItemNotFound
	}
	return item, nil
}

// matchOption resolves the request value against the product's configured
// options, case-insensitively, returning the stored spelling.
func matchOption(value string, options []string) (string, bool) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", false
	}
	if len(options) == 0 {
		return trimmed, true
	}
	for _, opt := range options {
		if strings.EqualFold(strings.TrimSpace(opt), trimmed) {
			return opt, true
		}
	}
	return "", false
}
