package app

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"github.com/ecogoods/storefront/config"
	"github.com/ecogoods/storefront/internal/adapter/catalog"
	"github.com/ecogoods/storefront/internal/adapter/httphandler"
	"github.com/ecogoods/storefront/internal/adapter/snapshot"
	"github.com/ecogoods/storefront/internal/core/port"
	"github.com/ecogoods/storefront/internal/core/service"
)

type services struct {
	cart     *service.CartService
	checkout service.CheckoutService
	orders   *service.OrdersService
	auth     *service.AuthService
	prefs    service.SettingsService
}

type App struct {
	cfg        config.Config
	store      port.SnapshotStore
	catalog    catalog.Catalog
	services   services
	httpServer httphandler.HTTPServer
}

func New(cfg config.Config) *App {
	app := &App{cfg: cfg}

	app.initLogger()
	app.initOutboundAdapters()
	app.initCoreServices()
	app.initInboundAdapters()

	return app
}

func (app *App) initLogger() {
	opts := &slog.HandlerOptions{Level: app.cfg.LogLevel}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, opts))
	slog.SetDefault(logger)
}

func (app *App) initOutboundAdapters() {
	app.catalog = catalog.New()

	if app.cfg.Storage.SnapshotFile == "" {
		slog.Warn("no snapshot file configured, state will not survive restarts")
		app.store = snapshot.NewMemStore()
		return
	}
	app.store = snapshot.NewFileStore(app.cfg.Storage.SnapshotFile)
}

func (app *App) initCoreServices() {
	cart := service.NewCartService(app.catalog, app.store)
	orders := service.NewOrdersService(app.store)

	app.services = services{
		cart:     cart,
		checkout: service.NewCheckoutService(app.catalog, cart, orders),
		orders:   orders,
		auth:     service.NewAuthService(app.store),
		prefs:    service.NewSettingsService(app.store),
	}
}

func (app *App) initInboundAdapters() {
	mux := http.NewServeMux()
	httphandler.RegisterProducts(mux, app.catalog, app.services.prefs)
	httphandler.RegisterCart(mux, app.services.cart, app.services.prefs)
	httphandler.RegisterCheckout(mux, app.services.checkout, app.services.prefs)
	httphandler.RegisterOrders(mux, app.services.orders, app.services.prefs)
	httphandler.RegisterAuth(mux, app.services.auth)
	httphandler.RegisterSettings(mux, app.services.prefs)

	handler := httphandler.LogRequests(httphandler.AllowJSON(mux))
	app.httpServer = httphandler.NewHTTPServer(app.cfg.HTTPServerAddr, handler)
}

func (app *App) Run(stopFn context.CancelFunc) {
	go app.httpServer.Run(stopFn)

	slog.Info("application is running", "addr", app.cfg.HTTPServerAddr)
}

func (app *App) Close(ctx context.Context) {
	slog.Info("application is closing...")

	app.httpServer.Close(ctx)

	slog.Info("application is closed")
}
