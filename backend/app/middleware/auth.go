package middleware

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"pokedex-api/backend/app/apperr"
	jwtutil "pokedex-api/backend/app/jwt"
)

type ctxKey int

const ClaimsKey ctxKey = 1

type tokenParser interface {
	Parse(token string) (*jwtutil.Claims, error)
}

// Auth authenticates requests. It does not look at roles; authorization is
// left to the handlers.
type Auth struct {
	Signer tokenParser
	Log    zerolog.Logger
}

// RequireAuth rejects requests without a usable bearer token: 401 when the
// header is missing or malformed, 403 when the token does not verify. The
// reason a token failed is logged but never returned.
func (a *Auth) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearer(r.Header.Get("Authorization"))
		if !ok {
			reject(w, apperr.ErrMissingToken)
			return
		}
		claims, err := a.Signer.Parse(token)
		if err != nil {
			a.Log.Debug().Err(err).Str("path", r.URL.Path).Msg("token rejected")
			reject(w, apperr.ErrInvalidToken)
			return
		}
		next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
	})
}

func bearer(header string) (string, bool) {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, prefix))
	return token, token != ""
}

func reject(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(apperr.Status(err))
	_ = json.NewEncoder(w).Encode(map[string]string{"message": apperr.Message(err)})
}
