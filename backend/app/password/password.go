// Package password hashes credentials and enforces the registration password rule.
package password

import (
	"strings"
	"unicode"

	"pokedex-api/backend/app/apperr"

	"golang.org/x/crypto/bcrypt"
)

const (
	Cost      = 10
	MinLength = 8
	// MaxLength is the bcrypt input limit in bytes.
	MaxLength = 72
	Symbols   = "@$!%*?&"
)

// Hash returns a bcrypt hash of plain with a fresh salt embedded.
func Hash(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), Cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Verify reports whether plain matches hash. A malformed hash never matches.
func Verify(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

// Policy checks plain against the password rule: between MinLength and
// MaxLength bytes, only letters, digits and the characters of Symbols.
func Policy(plain string) error {
	if len(plain) < MinLength || len(plain) > MaxLength {
		return apperr.ErrWeakPassword
	}
	var lower, upper, digit, symbol bool
	for _, r := range plain {
		switch {
		case r > unicode.MaxASCII:
			return apperr.ErrWeakPassword
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		case strings.ContainsRune(Symbols, r):
			symbol = true
		default:
			return apperr.ErrWeakPassword
		}
	}
	if !lower || !upper || !digit || !symbol {
		return apperr.ErrWeakPassword
	}
	return nil
}
