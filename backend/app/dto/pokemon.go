package dto

import "pokedex-api/backend/app/models"

type PokemonListResponse struct {
	Pokemons []models.Pokemon `json:"pokemons"`
}

type PokemonResponse struct {
	Message string          `json:"message"`
	Pokemon *models.Pokemon `json:"pokemon,omitempty"`
}
