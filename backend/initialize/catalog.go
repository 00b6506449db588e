package initialize

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"pokedex-api/backend/app/models"
	"pokedex-api/backend/app/services"
)

// ImportCatalog loads a JSON array of pokemons from path and stores the entries
// not present yet.
func ImportCatalog(ctx context.Context, svc *services.PokemonService, path string) (int, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	var entries []models.Pokemon
	if err := json.Unmarshal(raw, &entries); err != nil {
		return 0, fmt.Errorf("parse %s: %w", path, err)
	}
	return svc.Import(ctx, entries)
}

// ExportCatalog writes the whole catalog to path as indented JSON.
func ExportCatalog(ctx context.Context, svc *services.PokemonService, path string) (int, error) {
	list, err := svc.List(ctx)
	if err != nil {
		return 0, err
	}
	if list == nil {
		list = []models.Pokemon{}
	}
	raw, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return 0, err
	}
	return len(list), os.WriteFile(path, raw, 0o644)
}
