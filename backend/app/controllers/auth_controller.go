package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"pokedex-api/backend/app/apperr"
	"pokedex-api/backend/app/dto"
	"pokedex-api/backend/app/middleware"
	"pokedex-api/backend/app/services"
)

type AuthController struct {
	Users *services.UserService
	Log   zerolog.Logger
}

func NewAuthController(users *services.UserService, log zerolog.Logger) *AuthController {
	return &AuthController{Users: users, Log: log}
}

func (c *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.CredentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if err := c.Users.Register(r.Context(), req.Username, req.Password); err != nil {
		writeError(w, c.Log, err)
		return
	}
	writeJSON(w, http.StatusCreated, dto.MessageResponse{Message: "user created"})
}

// Login answers every credential failure with the same 400 body.
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.CredentialsRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	if req.Username == "" || req.Password == "" {
		writeJSONError(w, http.StatusBadRequest, apperr.ErrInvalidCredentials.Msg)
		return
	}
	res, err := c.Users.Login(r.Context(), req.Username, req.Password)
	if errors.Is(err, apperr.ErrInvalidCredentials) {
		writeJSONError(w, http.StatusBadRequest, apperr.ErrInvalidCredentials.Msg)
		return
	}
	if err != nil {
		writeError(w, c.Log, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (c *AuthController) Protected(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())
	if claims == nil {
		writeError(w, c.Log, apperr.ErrMissingToken)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Welcome, " + claims.User.Username,
		"user":    claims.User,
	})
}
