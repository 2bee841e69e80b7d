package server

import (
	"net/http"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	colordomain "github.com/stitchline/vestra/internal/catalog/color/domain"
	colorimagedomain "github.com/stitchline/vestra/internal/catalog/colorimage/domain"
	productdomain "github.com/stitchline/vestra/internal/catalog/product/domain"
	pricingdomain "github.com/stitchline/vestra/internal/pricing/domain"
	"github.com/stitchline/vestra/pkg/money"
)

// StorefrontProduct is the public product payload: the catalog row enriched
// with resolved display images and tier-aware pricing.
type StorefrontProduct struct {
	productdomain.Response

	DisplayImages   []string          `json:"display_images"`
	Thumbnail       string            `json:"thumbnail"`
	Swatches        []Swatch          `json:"swatches"`
	OriginalPrice   string            `json:"original_price"`
	DiscountedPrice string            `json:"discounted_price"`
	DiscountPercent string            `json:"discount_percent,omitempty"`
	CompanyTypeName string            `json:"company_type_name,omitempty"`
}

type Swatch struct {
	Name string `json:"name"`
	Hex  string `json:"hex"`
}

type storefrontListQuery struct {
	Search    string `form:"search"`
	Category  string `form:"category"`
	PageToken string `form:"page_token"`
	PageSize  int    `form:"page_size,default=20"`
}

func (s *Server) StorefrontListProducts(c *gin.Context) {
	var q storefrontListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	active := true
	req := productdomain.ListRequest{
		Search:   q.Search,
		Category: q.Category,
		Active:   &active,
	}
	req.Page.PageToken = q.PageToken
	req.Page.PageSize = q.PageSize

	result, err := s.productSvc.List(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	principal := principalFrom(c)
	discountBps, discountLabel := s.effectiveDiscount(c, principal)
	colors := s.loadColors(c)

	items := make([]StorefrontProduct, 0, len(result.Items))
	for i := range result.Items {
		items = append(items, s.enrichProduct(c, &result.Items[i], "", discountBps, discountLabel, colors))
	}

	c.JSON(http.StatusOK, gin.H{
		"data":      items,
		"page_info": result.PageInfo,
	})
}

func (s *Server) StorefrontGetProduct(c *gin.Context) {
	slug := c.Param("slug")
	selectedColor := c.Query("color")

	product, err := s.productSvc.GetBySlug(c.Request.Context(), slug)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	if !product.Active {
		AbortWithError(c, ErrNotFound)
		return
	}

	principal := principalFrom(c)
	discountBps, discountLabel := s.effectiveDiscount(c, principal)
	colors := s.loadColors(c)

	enriched := s.enrichProduct(c, product, selectedColor, discountBps, discountLabel, colors)
	c.JSON(http.StatusOK, gin.H{"data": enriched})
}

func (s *Server) StorefrontListColors(c *gin.Context) {
	colors, err := s.colorSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": colors})
}

func (s *Server) StorefrontListPromotions(c *gin.Context) {
	promotions, err := s.promotionSvc.ActiveAt(c.Request.Context(), time.Now().UTC())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": promotions})
}

// effectiveDiscount picks the larger of the principal's company tier and the
// best live promotion. Discounts do not stack.
func (s *Server) effectiveDiscount(c *gin.Context, principal *pricingdomain.Principal) (int64, string) {
	tier := s.pricingSvc.TierFor(c.Request.Context(), principal)
	bps := tier.DiscountBps
	label := tier.Name

	// Promotion lookup failures degrade the same way tier lookups do.
	if promotions, err := s.promotionSvc.ActiveAt(c.Request.Context(), time.Now().UTC()); err == nil && len(promotions) > 0 {
		if promoBps, err := money.ParseBps(promotions[0].DiscountPercent); err == nil && promoBps > bps {
			bps = promoBps
			label = promotions[0].Name
		}
	}
	return bps, label
}

func (s *Server) enrichProduct(c *gin.Context, product *productdomain.Response, selectedColor string, discountBps int64, discountLabel string, colors []colordomain.Color) StorefrontProduct {
	out := StorefrontProduct{Response: *product}

	sets := s.loadColorImageSets(c, product.ID)
	out.DisplayImages = colorimagedomain.ResolveDisplayImages(product.Images, sets, colors, selectedColor)
	out.Thumbnail = colorimagedomain.FirstValidImage(out.DisplayImages, s.storefront.Current().PlaceholderDomains)

	fallbackHex := s.storefront.Current().DefaultSwatchHex
	out.Swatches = make([]Swatch, 0, len(product.Colors))
	for _, name := range product.Colors {
		out.Swatches = append(out.Swatches, Swatch{
			Name: name,
			Hex:  colordomain.HexForName(name, colors, fallbackHex),
		})
	}

	baseCents, err := money.ParseCents(product.BasePrice)
	if err != nil {
		baseCents = 0
	}
	discounted := money.ApplyDiscountBps(baseCents, discountBps)
	out.OriginalPrice = money.FormatCents(baseCents)
	out.DiscountedPrice = money.FormatCents(discounted)
	if discountBps > 0 {
		out.DiscountPercent = money.FormatBps(discountBps)
		out.CompanyTypeName = discountLabel
	}
	return out
}

func (s *Server) loadColors(c *gin.Context) []colordomain.Color {
	colors, err := s.colorRepo.FindAll(c.Request.Context(), s.db)
	if err != nil {
		// Color resolution degrades to product images and fallback swatches.
		return nil
	}
	return colors
}

func (s *Server) loadColorImageSets(c *gin.Context, productID string) []colorimagedomain.ColorImageSet {
	id, err := snowflake.ParseString(productID)
	if err != nil {
		return nil
	}
	rows, err := s.colorImageRepo.FindByProduct(c.Request.Context(), s.db, int64(id))
	if err != nil {
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
