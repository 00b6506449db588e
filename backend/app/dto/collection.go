package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// PokemonID is a catalog id accepted either as a JSON number or as a numeric string.
type PokemonID int

func (p *PokemonID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		b = []byte(strings.TrimSpace(s))
	}
	n, err := strconv.Atoi(string(b))
	if err != nil {
		return fmt.Errorf("pokemonId must be an integer")
	}
	*p = PokemonID(n)
	return nil
}

type CollectionRequest struct {
	PokemonID *PokemonID `json:"pokemonId"`
}

type FavoritesResponse struct {
	Message   string `json:"message,omitempty"`
	Favorites []int  `json:"favorites"`
}

type DeckResponse struct {
	Message string `json:"message,omitempty"`
	Deck    []int  `json:"monDeck"`
}
