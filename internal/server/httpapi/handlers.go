package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/dmitrijs2005/gamecart/internal/common"
)

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type updatePasswordRequest struct {
	Username    string `json:"username"`
	NewPassword string `json:"newPassword"`
}

type gameIDRequest struct {
	ID int64 `json:"id"`
}

func (s *HTTPServer) health(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func (s *HTTPServer) createAccount(w http.ResponseWriter, r *http.Request) {
	log := s.requestLogger(r)
	ctx := r.Context()

	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Username == "" || req.Password == "" {
		respondError(w, http.StatusBadRequest, "invalid input, both username and password are required")
		return
	}

	log.Info(ctx, "Adding user", "username", req.Username)

	if _, err := s.users.Register(ctx, req.Username, req.Password); err != nil {
		log.Error(ctx, "Failed to add user", "username", req.Username, "error", err.Error())
		switch {
		case errors.Is(err, common.ErrAlreadyExists):
			respondError(w, http.StatusConflict, fmt.Sprintf("username %s is already taken", req.Username))
		case errors.Is(err, common.ErrValidation):
			respondError(w, http.StatusBadRequest, "invalid input, both username and password are required")
		default:
			respondError(w, http.StatusInternalServerError, "an unexpected error occurred")
		}
		return
	}

	log.Info(ctx, "User added", "username", req.Username)
	respond(w, http.StatusCreated, map[string]string{"status": "user added", "username": req.Username})
}

func (s *HTTPServer) login(w http.ResponseWriter, r *http.Request) {
	log := s.requestLogger(r)
	ctx := r.Context()

	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Username == "" || req.Password == "" {
		respondError(w, http.StatusBadRequest, "invalid input, both username and password are required")
		return
	}

	token, err := s.users.Login(ctx, req.Username, req.Password)
	if err != nil {
		// unknown user and wrong password are indistinguishable to the client
		if errors.Is(err, common.ErrNotFound) || errors.Is(err, common.ErrUnauthorized) {
			log.Warn(ctx, "Login failed", "username", req.Username)
			respondError(w, http.StatusUnauthorized, "invalid username or password")
			return
		}
		log.Error(ctx, "Error during login", "username", req.Username, "error", err.Error())
		respondError(w, http.StatusInternalServerError, "an unexpected error occurred")
		return
	}

	log.Info(ctx, "User logged in", "username", req.Username)
	respond(w, http.StatusOK, map[string]string{
		"message": fmt.Sprintf("User %s logged in successfully.", req.Username),
		"token":   token,
	})
}

func (s *HTTPServer) updatePassword(w http.ResponseWriter, r *http.Request) {
	log := s.requestLogger(r)
	ctx := r.Context()

	var req updatePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Username == "" || req.NewPassword == "" {
		respondError(w, http.StatusBadRequest, "invalid input, both username and new password are required")
		return
	}

	log.Info(ctx, "Changing password", "username", req.Username)

	if err := s.users.UpdatePassword(ctx, req.Username, req.NewPassword); err != nil {
		switch {
		case errors.Is(err, common.ErrNotFound):
			log.Warn(ctx, "Unknown user on password change", "username", req.Username)
			respondError(w, http.StatusUnauthorized, fmt.Sprintf("user %s does not exist", req.Username))
		case errors.Is(err, common.ErrValidation):
			respondError(w, http.StatusBadRequest, "invalid input, both username and new password are required")
		default:
			log.Error(ctx, "Failed to update password", "username", req.Username, "error", err.Error())
			respondError(w, http.StatusInternalServerError, "an unexpected error occurred")
		}
		return
	}

	log.Info(ctx, "Password changed", "username", req.Username)
	respond(w, http.StatusCreated, map[string]string{"status": "password changed", "username": req.Username})
}

func (s *HTTPServer) searchGames(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	log := s.requestLogger(r)
	ctx := r.Context()
	keyword := ps.ByName("keyword")

	log.Info(ctx, "Searching for games", "keyword", keyword)

	games, err := s.cart.Search(ctx, keyword)
	if err != nil {
		log.Error(ctx, "Error searching for games", "keyword", keyword, "error", err.Error())
		respondError(w, http.StatusInternalServerError, "an unexpected error occurred")
		return
	}

	respond(w, http.StatusOK, map[string]any{"games": games})
}

func (s *HTTPServer) addGame(w http.ResponseWriter, r *http.Request) {
	log := s.requestLogger(r)
	ctx := r.Context()

	var req gameIDRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	log.Info(ctx, "Adding game to cart", "id", req.ID)

	game, err := s.cart.AddGame(ctx, req.ID)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrValidation):
			respondError(w, http.StatusBadRequest, "an id must be specified")
		case errors.Is(err, common.ErrNotFound):
			log.Warn(ctx, "Unknown catalog id", "id", req.ID)
			respondError(w, http.StatusNotFound, fmt.Sprintf("id %d does not correspond to a game", req.ID))
		case errors.Is(err, common.ErrAlreadyExists):
			respondError(w, http.StatusConflict, fmt.Sprintf("game with id %d is already in the cart", req.ID))
		default:
			log.Error(ctx, "Failed to add game", "id", req.ID, "error", err.Error())
			respondError(w, http.StatusInternalServerError, "an unexpected error occurred")
		}
		return
	}

	log.Info(ctx, "Game added", "id", game.ID, "name", game.Name, "price", game.Price)
	respond(w, http.StatusCreated, map[string]string{"status": "game added", "game": game.Name})
}

func (s *HTTPServer) deleteGame(w http.ResponseWriter, r *http.Request) {
	log := s.requestLogger(r)
	ctx := r.Context()

	var req gameIDRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	log.Info(ctx, "Deleting game from cart", "id", req.ID)

	if err := s.cart.RemoveGame(ctx, req.ID); err != nil {
		switch {
		case errors.Is(err, common.ErrValidation):
			respondError(w, http.StatusBadRequest, "an id must be specified")
		case errors.Is(err, common.ErrNotFound):
			log.Warn(ctx, "Game not in cart", "id", req.ID)
			respondError(w, http.StatusNotFound, fmt.Sprintf("game with id %d not found", req.ID))
		default:
			log.Error(ctx, "Failed to delete game", "id", req.ID, "error", err.Error())
			respondError(w, http.StatusInternalServerError, "an unexpected error occurred")
		}
		return
	}

	log.Info(ctx, "Game deleted", "id", req.ID)
	respond(w, http.StatusOK, map[string]string{"status": "game deleted"})
}

func (s *HTTPServer) getGames(w http.ResponseWriter, r *http.Request) {
	log := s.requestLogger(r)
	ctx := r.Context()

	games, err := s.cart.ListGames(ctx)
	if err != nil {
		log.Error(ctx, "Failed to list games", "error", err.Error())
		respondError(w, http.StatusInternalServerError, "an unexpected error occurred")
		return
	}

	respond(w, http.StatusOK, map[string]any{"games": games})
}

func (s *HTTPServer) getTotalPrice(w http.ResponseWriter, r *http.Request) {
	log := s.requestLogger(r)
	ctx := r.Context()

	total, err := s.cart.TotalPrice(ctx)
	if err != nil {
		log.Error(ctx, "Failed to compute total price", "error", err.Error())
		respondError(w, http.StatusInternalServerError, "an unexpected error occurred")
		return
	}

	respond(w, http.StatusOK, map[string]float64{"price": total})
}
