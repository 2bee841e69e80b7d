package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/stitchline/vestra/internal/auth"
	authdomain "github.com/stitchline/vestra/internal/auth/domain"
	"github.com/stitchline/vestra/internal/auth/session"
	"github.com/stitchline/vestra/internal/cart"
	cartdomain "github.com/stitchline/vestra/internal/cart/domain"
	"github.com/stitchline/vestra/internal/catalog/color"
	colordomain "github.com/stitchline/vestra/internal/catalog/color/domain"
	"github.com/stitchline/vestra/internal/catalog/colorimage"
	colorimagedomain "github.com/stitchline/vestra/internal/catalog/colorimage/domain"
	"github.com/stitchline/vestra/internal/catalog/product"
	productdomain "github.com/stitchline/vestra/internal/catalog/product/domain"
	"github.com/stitchline/vestra/internal/company"
	companydomain "github.com/stitchline/vestra/internal/company/domain"
	"github.com/stitchline/vestra/internal/companytype"
	companytypedomain "github.com/stitchline/vestra/internal/companytype/domain"
	"github.com/stitchline/vestra/internal/config"
	"github.com/stitchline/vestra/internal/observability"
	obslogger "github.com/stitchline/vestra/internal/observability/logger"
	obsmetrics "github.com/stitchline/vestra/internal/observability/metrics"
	"github.com/stitchline/vestra/internal/order"
	orderdomain "github.com/stitchline/vestra/internal/order/domain"
	"github.com/stitchline/vestra/internal/pricing"
	pricingdomain "github.com/stitchline/vestra/internal/pricing/domain"
	"github.com/stitchline/vestra/internal/promotion"
	promotiondomain "github.com/stitchline/vestra/internal/promotion/domain"
	"github.com/stitchline/vestra/internal/providers/pdf"
	"github.com/stitchline/vestra/internal/quote"
	quotedomain "github.com/stitchline/vestra/internal/quote/domain"
	"github.com/stitchline/vestra/internal/ratelimit"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Module("http.server",
	config.Module,
	observability.Module,
	fx.Provide(registerGin),
	auth.Module,
	color.Module,
	colorimage.Module,
	product.Module,
	companytype.Module,
	company.Module,
	pricing.Module,
	cart.Module,
	quote.Module,
	order.Module,
	promotion.Module,
	pdf.Module,
	ratelimit.Module,
	fx.Invoke(NewServer),
	fx.Invoke(run),
)

func NewEngine(cfg config.Config, m *obsmetrics.Metrics, reg *prometheus.Registry) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(obslogger.GinMiddleware(obslogger.MiddlewareConfig{
		Debug: !cfg.IsProduction(),
	}))
	r.Use(obsmetrics.GinMiddleware(m))
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	return r
}

func registerGin(cfg config.Config, m *obsmetrics.Metrics, reg *prometheus.Registry) *gin.Engine {
	return NewEngine(cfg, m, reg)
}

func run(lc fx.Lifecycle, r *gin.Engine, cfg config.Config) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					panic(err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

type Server struct {
	engine         *gin.Engine
	cfg            config.Config
	db             *gorm.DB
	sessions       *session.Manager
	storefront     *config.StorefrontConfigHolder
	authSvc        authdomain.Service
	productSvc     productdomain.Service
	colorSvc       colordomain.Service
	colorImageSvc  colorimagedomain.Service
	companySvc     companydomain.Service
	companyTypeSvc companytypedomain.Service
	pricingSvc     pricingdomain.Service
	cartSvc        cartdomain.Service
	quoteSvc       quotedomain.Service
	orderSvc       orderdomain.Service
	promotionSvc   promotiondomain.Service
	colorRepo      colordomain.Repository
	colorImageRepo colorimagedomain.Repository
}

type ServerParams struct {
	fx.In

	Gin            *gin.Engine
	Cfg            config.Config
	DB             *gorm.DB
	Sessions       *session.Manager
	Storefront     *config.StorefrontConfigHolder
	AuthSvc        authdomain.Service
	ProductSvc     productdomain.Service
	ColorSvc       colordomain.Service
	ColorImageSvc  colorimagedomain.Service
	CompanySvc     companydomain.Service
	CompanyTypeSvc companytypedomain.Service
	PricingSvc     pricingdomain.Service
	CartSvc        cartdomain.Service
	QuoteSvc       quotedomain.Service
	OrderSvc       orderdomain.Service
	PromotionSvc   promotiondomain.Service
	ColorRepo      colordomain.Repository
	ColorImageRepo colorimagedomain.Repository
}

func NewServer(p ServerParams) *Server {
	svc := &Server{
		engine:         p.Gin,
		cfg:            p.Cfg,
		db:             p.DB,
		sessions:       p.Sessions,
		storefront:     p.Storefront,
		authSvc:        p.AuthSvc,
		productSvc:     p.ProductSvc,
		colorSvc:       p.ColorSvc,
		colorImageSvc:  p.ColorImageSvc,
		companySvc:     p.CompanySvc,
		companyTypeSvc: p.CompanyTypeSvc,
		pricingSvc:     p.PricingSvc,
		cartSvc:        p.CartSvc,
		quoteSvc:       p.QuoteSvc,
		orderSvc:       p.OrderSvc,
		promotionSvc:   p.PromotionSvc,
		colorRepo:      p.ColorRepo,
		colorImageRepo: p.ColorImageRepo,
	}

	svc.registerAuthRoutes()
	svc.registerAPIRoutes()
	svc.registerAdminRoutes()

	return svc
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) registerAuthRoutes() {
	authGroup := s.engine.Group("/auth")

	authGroup.POST("/register", s.Register)
	authGroup.POST("/login", s.Login)
	authGroup.POST("/logout", s.Logout)
	authGroup.GET("/me", s.AuthRequired(), s.Me)
	authGroup.POST("/change-password", s.AuthRequired(), s.ChangePassword)
}

func (s *Server) registerAPIRoutes() {
	api := s.engine.Group("/api")
	api.Use(s.SessionContext())

	api.GET("/products", s.StorefrontListProducts)
	api.GET("/products/:slug", s.StorefrontGetProduct)
	api.GET("/colors", s.StorefrontListColors)
	api.GET("/promotions", s.StorefrontListPromotions)

	api.GET("/cart", s.AuthRequired(), s.GetCart)
	api.POST("/cart/items", s.AuthRequired(), s.AddCartItem)
	api.PATCH("/cart/items/:id", s.AuthRequired(), s.UpdateCartItem)
	api.DELETE("/cart/items/:id", s.AuthRequired(), s.RemoveCartItem)
	api.DELETE("/cart", s.AuthRequired(), s.ClearCart)

	api.POST("/quotes", s.AuthRequired(), s.SubmitQuote)
	api.GET("/quotes", s.AuthRequired(), s.ListOwnQuotes)

	api.GET("/orders", s.AuthRequired(), s.ListOwnOrders)
}

func (s *Server) registerAdminRoutes() {
	admin := s.engine.Group("/admin")
	admin.Use(s.SessionContext(), s.AdminRequired())

	admin.GET("/products", s.ListProducts)
	admin.POST("/products", s.CreateProduct)
	admin.GET("/products/:id", s.GetProduct)
	admin.PATCH("/products/:id", s.UpdateProduct)
	admin.DELETE("/products/:id", s.ArchiveProduct)
	admin.GET("/products/:id/color-images", s.ListProductColorImages)
	admin.PUT("/products/:id/color-images", s.AssignProductColorImages)

	admin.GET("/colors", s.ListColors)
	admin.POST("/colors", s.CreateColor)
	admin.GET("/colors/:id", s.GetColor)
	admin.PATCH("/colors/:id", s.UpdateColor)
	admin.DELETE("/colors/:id", s.DeleteColor)

	admin.GET("/company-types", s.ListCompanyTypes)
	admin.POST("/company-types", s.CreateCompanyType)
	admin.GET("/company-types/:id", s.GetCompanyType)
	admin.PATCH("/company-types/:id", s.UpdateCompanyType)
	admin.DELETE("/company-types/:id", s.DeleteCompanyType)

	admin.GET("/companies", s.ListCompanies)
	admin.POST("/companies", s.CreateCompany)
	admin.GET("/companies/:id", s.GetCompany)
	admin.PATCH("/companies/:id", s.UpdateCompany)
	admin.DELETE("/companies/:id", s.DeleteCompany)
	admin.PUT("/companies/:id/type", s.AssignCompanyType)
	admin.DELETE("/companies/:id/type", s.ClearCompanyType)

	admin.GET("/customers", s.ListCustomers)
	admin.GET("/customers/:id", s.GetCustomer)
	admin.PUT("/customers/:id/company", s.AssignCustomerCompany)
	admin.DELETE("/customers/:id/company", s.ClearCustomerCompany)
	admin.PUT("/customers/:id/active", s.SetCustomerActive)

	admin.GET("/quotes", s.ListQuotes)
	admin.GET("/quotes/:id", s.GetQuote)
	admin.PUT("/quotes/:id/status", s.UpdateQuoteStatus)
	admin.GET("/quotes/:id/pdf", s.RenderQuotePDF)

	admin.GET("/orders", s.ListOrders)
	admin.POST("/orders", s.CreateOrder)
	admin.POST("/orders/from-quote", s.CreateOrderFromQuote)
	admin.GET("/orders/:id", s.GetOrder)
	admin.PUT("/orders/:id/status", s.UpdateOrderStatus)

	admin.GET("/promotions", s.ListPromotions)
	admin.POST("/promotions", s.CreatePromotion)
	admin.GET("/promotions/:id", s.GetPromotion)
	admin.PATCH("/promotions/:id", s.UpdatePromotion)
	admin.DELETE("/promotions/:id", s.DeletePromotion)
}
