package controllers

import (
	"net/http"

	"github.com/rs/zerolog"

	"pokedex-api/backend/app/apperr"
	jwtutil "pokedex-api/backend/app/jwt"
	"pokedex-api/backend/app/middleware"
	"pokedex-api/backend/app/models"
)

type AdminController struct{ Log zerolog.Logger }

func NewAdminController(log zerolog.Logger) *AdminController {
	return &AdminController{Log: log}
}

// requireAdmin is the authorization step. It runs after authentication has
// already placed claims on the request.
func requireAdmin(r *http.Request) (*jwtutil.Claims, error) {
	claims := middleware.GetClaims(r.Context())
	if claims == nil {
		return nil, apperr.ErrMissingToken
	}
	if claims.User.Role != models.RoleAdmin {
		return nil, apperr.ErrForbidden
	}
	return claims, nil
}

func (c *AdminController) Dashboard(w http.ResponseWriter, r *http.Request) {
	claims, err := requireAdmin(r)
	if err != nil {
		writeError(w, c.Log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Welcome to the administration area",
		"user":    claims.User,
	})
}
