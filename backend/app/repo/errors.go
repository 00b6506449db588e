package repo

import (
	"errors"

	"gorm.io/gorm"

	"pokedex-api/backend/app/apperr"
)

// translate maps gorm errors onto the domain taxonomy.
func translate(err error, notFound, duplicate *apperr.Error, op string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound) && notFound != nil:
		return notFound
	case errors.Is(err, gorm.ErrDuplicatedKey) && duplicate != nil:
		return duplicate
	default:
		return apperr.Storage(op, err)
	}
}
