package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"pokedex-api/backend/app/dto"
	"pokedex-api/backend/app/models"
	"pokedex-api/backend/app/services"
)

type PokemonController struct {
	Pokemons *services.PokemonService
	Log      zerolog.Logger
}

func NewPokemonController(pokemons *services.PokemonService, log zerolog.Logger) *PokemonController {
	return &PokemonController{Pokemons: pokemons, Log: log}
}

func (c *PokemonController) List(w http.ResponseWriter, r *http.Request) {
	list, err := c.Pokemons.List(r.Context())
	if err != nil {
		writeError(w, c.Log, err)
		return
	}
	if list == nil {
		list = []models.Pokemon{}
	}
	writeJSON(w, http.StatusOK, dto.PokemonListResponse{Pokemons: list})
}

func (c *PokemonController) Get(w http.ResponseWriter, r *http.Request) {
	id, err := intParam(r, "id")
	if err != nil {
		writeError(w, c.Log, err)
		return
	}
	p, err := c.Pokemons.Get(r.Context(), id)
	if err != nil {
		writeError(w, c.Log, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (c *PokemonController) Create(w http.ResponseWriter, r *http.Request) {
	var p models.Pokemon
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	p.ID = ""
	if err := c.Pokemons.Create(r.Context(), &p); err != nil {
		writeError(w, c.Log, err)
		return
	}
	writeJSON(w, http.StatusCreated, dto.PokemonResponse{Message: "pokemon added", Pokemon: &p})
}

func (c *PokemonController) Update(w http.ResponseWriter, r *http.Request) {
	id, err := intParam(r, "id")
	if err != nil {
		writeError(w, c.Log, err)
		return
	}
	var body json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	out, err := c.Pokemons.Patch(r.Context(), id, body)
	if err != nil {
		writeError(w, c.Log, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.PokemonResponse{Message: "pokemon updated", Pokemon: out})
}

func (c *PokemonController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := intParam(r, "id")
	if err != nil {
		writeError(w, c.Log, err)
		return
	}
	if err := c.Pokemons.Delete(r.Context(), id); err != nil {
		writeError(w, c.Log, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.MessageResponse{Message: "pokemon deleted"})
}
