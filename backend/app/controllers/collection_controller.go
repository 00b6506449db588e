package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"pokedex-api/backend/app/apperr"
	"pokedex-api/backend/app/dto"
	"pokedex-api/backend/app/middleware"
	"pokedex-api/backend/app/services"
)

type CollectionController struct {
	Collections *services.CollectionService
	Log         zerolog.Logger
}

func NewCollectionController(collections *services.CollectionService, log zerolog.Logger) *CollectionController {
	return &CollectionController{Collections: collections, Log: log}
}

func decodePokemonID(r *http.Request) (int, error) {
	var req dto.CollectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.PokemonID == nil {
		return 0, apperr.ErrInvalidPokemonID
	}
	return int(*req.PokemonID), nil
}

func userID(r *http.Request) (string, error) {
	claims := middleware.GetClaims(r.Context())
	if claims == nil {
		return "", apperr.ErrMissingToken
	}
	return claims.User.ID, nil
}

func (c *CollectionController) AddFavorite(w http.ResponseWriter, r *http.Request) {
	uid, err := userID(r)
	if err != nil {
		writeError(w, c.Log, err)
		return
	}
	id, err := decodePokemonID(r)
	if err != nil {
		writeError(w, c.Log, err)
		return
	}
	favs, err := c.Collections.AddFavorite(r.Context(), uid, id)
	if err != nil {
		writeError(w, c.Log, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.FavoritesResponse{Message: "pokemon added to favorites", Favorites: favs})
}

func (c *CollectionController) Favorites(w http.ResponseWriter, r *http.Request) {
	favs, err := c.Collections.Favorites(r.Context(), chi.URLParam(r, "username"))
	if err != nil {
		writeError(w, c.Log, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.FavoritesResponse{Favorites: favs})
}

func (c *CollectionController) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	id, err := intParam(r, "pokemonId")
	if err != nil {
		writeError(w, c.Log, err)
		return
	}
	favs, err := c.Collections.RemoveFavorite(r.Context(), chi.URLParam(r, "username"), id)
	if err != nil {
		writeError(w, c.Log, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.FavoritesResponse{Message: "pokemon removed from favorites", Favorites: favs})
}

func (c *CollectionController) AddToDeck(w http.ResponseWriter, r *http.Request) {
	uid, err := userID(r)
	if err != nil {
		writeError(w, c.Log, err)
		return
	}
	id, err := decodePokemonID(r)
	if err != nil {
		writeError(w, c.Log, err)
		return
	}
	deck, err := c.Collections.AddToDeck(r.Context(), uid, id)
	if err != nil {
		writeError(w, c.Log, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.DeckResponse{Message: "pokemon added to deck", Deck: deck})
}

func (c *CollectionController) Deck(w http.ResponseWriter, r *http.Request) {
	deck, err := c.Collections.Deck(r.Context(), chi.URLParam(r, "username"))
	if err != nil {
		writeError(w, c.Log, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.DeckResponse{Deck: deck})
}

func (c *CollectionController) RemoveFromDeck(w http.ResponseWriter, r *http.Request) {
	uid, err := userID(r)
	if err != nil {
		writeError(w, c.Log, err)
		return
	}
	id, err := intParam(r, "pokemonId")
	if err != nil {
		writeError(w, c.Log, err)
		return
	}
	deck, err := c.Collections.RemoveFromDeck(r.Context(), uid, id)
	if err != nil {
		writeError(w, c.Log, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.DeckResponse{Message: "pokemon removed from deck", Deck: deck})
}
