package middleware

import (
	"context"

	jwtutil "pokedex-api/backend/app/jwt"
)

func GetClaims(ctx context.Context) *jwtutil.Claims {
	if v := ctx.Value(ClaimsKey); v != nil {
		if c, ok := v.(*jwtutil.Claims); ok {
			return c
		}
	}
	return nil
}

// WithClaims returns a copy of ctx carrying c.
func WithClaims(ctx context.Context, c *jwtutil.Claims) context.Context {
	return context.WithValue(ctx, ClaimsKey, c)
}
