// Package server initializes and runs the application: it opens the
// database, wires the services together and starts the HTTP server,
// shutting everything down gracefully on SIGINT/SIGTERM.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/gamecart/internal/logging"
	"github.com/dmitrijs2005/gamecart/internal/server/catalog"
	"github.com/dmitrijs2005/gamecart/internal/server/config"
	"github.com/dmitrijs2005/gamecart/internal/server/httpapi"
	"github.com/dmitrijs2005/gamecart/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/gamecart/internal/server/services"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	db          *sql.DB
	userService *services.UserService
	cartService *services.CartService
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	var logger logging.Logger
	if c.LogFormat == "console" {
		logger = logging.NewZerologLogger(os.Stdout)
	} else {
		logger = logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))
	}

	m, db, err := repomanager.Open(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	cat := catalog.NewCheapShark(c.CatalogBaseURL, c.CatalogTimeout, c.CatalogCacheSize)

	us := services.NewUserService(db, m, c)
	cs := services.NewCartService(db, m, cat)

	return &App{config: c, logger: logger, db: db, userService: us, cartService: cs}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s := httpapi.NewHTTPServer(app.config.EndpointAddrHTTP, app.logger, app.userService, app.cartService)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, "error closing database", "error", err.Error())
	}
}
