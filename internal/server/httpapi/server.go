// Package httpapi exposes the game cart operations over HTTP. Handlers
// translate JSON requests into service calls and map error kinds back to
// status codes; they hold no state of their own.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/rs/cors"

	"github.com/dmitrijs2005/gamecart/internal/logging"
	"github.com/dmitrijs2005/gamecart/internal/server/services"
)

const shutdownTimeout = 5 * time.Second

type HTTPServer struct {
	address string
	logger  logging.Logger
	users   *services.UserService
	cart    *services.CartService
}

func NewHTTPServer(a string, l logging.Logger, us *services.UserService, cs *services.CartService) *HTTPServer {
	return &HTTPServer{
		address: a,
		logger:  l.With("module", "http_server"),
		users:   us,
		cart:    cs,
	}
}

// Router builds the route table. Paths and methods mirror the public API
// contract; everything is wrapped in the request-id middleware and CORS.
func (s *HTTPServer) Router() http.Handler {
	router := httprouter.New()

	router.HandlerFunc(http.MethodGet, "/health", s.health)

	router.HandlerFunc(http.MethodPost, "/create-account", s.createAccount)
	router.HandlerFunc(http.MethodPost, "/login", s.login)
	router.HandlerFunc(http.MethodPost, "/update-password", s.updatePassword)

	router.Handle(http.MethodGet, "/search-games/:keyword", s.searchGames)
	router.HandlerFunc(http.MethodPost, "/add-game", s.addGame)
	router.HandlerFunc(http.MethodDelete, "/delete-game", s.deleteGame)
	router.HandlerFunc(http.MethodGet, "/get-games", s.getGames)
	router.HandlerFunc(http.MethodGet, "/get-total-price", s.getTotalPrice)

	return cors.Default().Handler(s.withRequestID(router))
}

func (s *HTTPServer) Run(ctx context.Context) error {

	srv := &http.Server{Addr: s.address, Handler: s.Router()}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
