package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/nkozyrev/gameshop/internal"
	"github.com/nkozyrev/gameshop/internal/bot"
	"github.com/nkozyrev/gameshop/internal/catalog"
	"github.com/nkozyrev/gameshop/internal/cookie"
	"github.com/nkozyrev/gameshop/internal/domain"
	"github.com/nkozyrev/gameshop/internal/handler/storefront"
	"github.com/nkozyrev/gameshop/internal/handler/support"
	"github.com/nkozyrev/gameshop/internal/middleware"
	"github.com/nkozyrev/gameshop/internal/router"
	"github.com/nkozyrev/gameshop/internal/routes"
	"github.com/nkozyrev/gameshop/internal/service"
	"github.com/nkozyrev/gameshop/internal/session"
	"github.com/nkozyrev/gameshop/internal/telemetry"
)

func run() error {
	// Load configuration
	cfg, err := internal.NewConfig()
	if err != nil {
		return fmt.Errorf("config initialization failed: %w", err)
	}

	// Configure logger
	logger := internal.NewLogger(os.Stdout, cfg.Env, cfg.LogLevel)

	// Load the catalog and promo registry, from files when configured
	provider, err := loadCatalog(cfg)
	if err != nil {
		return fmt.Errorf("catalog initialization failed: %w", err)
	}
	promos, err := loadPromos(cfg)
	if err != nil {
		return fmt.Errorf("promo registry initialization failed: %w", err)
	}
	logger.Info("Catalog loaded",
		"items", len(provider.List()),
		"promo_codes", len(promos),
	)

	// Metrics
	httpMetrics := middleware.NewMetrics(cfg.MetricsNamespace)
	bizMetrics := telemetry.NewBusinessMetrics(cfg.MetricsNamespace)

	// Session store
	store := session.NewStore(cfg.Session.Capacity, cfg.Session.TTL, logger)
	telemetry.RegisterSessionGauge(cfg.MetricsNamespace, store.Len)
	logger.Info("Session store ready",
		"capacity", cfg.Session.Capacity,
		"ttl", cfg.Session.TTL,
	)

	// Services
	cartService := service.NewCartService(store, provider, promos, logger, bizMetrics)
	checkoutService := service.NewCheckoutService(store, promos, logger, bizMetrics)
	purchaseService := service.NewPurchaseService(store, logger)

	// Handlers
	cookies := cookie.NewConfig(cfg.Session.SecureCookies)
	sessions := storefront.NewSessionManager(store, cookies, cfg.Session.TTL)

	deps := routes.StorefrontDeps{
		CatalogHandler:  storefront.NewCatalogHandler(provider, bizMetrics),
		CartHandler:     storefront.NewCartHandler(cartService, sessions, logger),
		CheckoutHandler: storefront.NewCheckoutHandler(checkoutService, purchaseService, sessions, logger),
		ChatHandler:     support.NewChatHandler(bot.DefaultScript(), logger, bizMetrics),
		MetricsHandler:  httpMetrics.Handler(),
	}

	// Rate limiting
	defaultRateLimiter := middleware.NewRateLimiter(middleware.RateLimiterConfig{
		RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
		BurstSize:         cfg.RateLimit.BurstSize,
		CleanupInterval:   middleware.DefaultRateLimiterConfig().CleanupInterval,
	})
	defer defaultRateLimiter.Stop()

	securityConfig := middleware.DefaultSecurityHeadersConfig()
	if cfg.Env != "prod" {
		securityConfig.HSTSMaxAge = 0
	}

	// Router
	r := router.New(
		router.Recovery(logger),
		middleware.RequestID,
		httpMetrics.Middleware,
		middleware.SecurityHeaders(securityConfig),
		router.CORS(cfg.CORSOrigins),
		middleware.MaxBodySize(middleware.DefaultMaxBodySize),
		middleware.Timeout(middleware.DefaultTimeout),
		defaultRateLimiter.Middleware,
		router.Logger(logger),
	)

	routes.RegisterStorefrontRoutes(r, deps)

	addr := fmt.Sprintf(":%d", cfg.Port)
	logger.Info("Starting storefront server", "address", addr, "env", cfg.Env)

	if err := http.ListenAndServe(addr, r); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

func loadCatalog(cfg *internal.Config) (catalog.Provider, error) {
	if cfg.Catalog.ItemsFile != "" {
		return catalog.LoadFile(cfg.Catalog.ItemsFile)
	}
	return catalog.NewStaticProvider(catalog.DefaultItems())
}

func loadPromos(cfg *internal.Config) (domain.PromoRegistry, error) {
	if cfg.Catalog.PromoFile != "" {
		return catalog.LoadPromoFile(cfg.Catalog.PromoFile)
	}
	return catalog.DefaultPromoCodes(), nil
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}
