package repo_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pokedex-api/backend/app/apperr"
	"pokedex-api/backend/app/db/dbtest"
	"pokedex-api/backend/app/models"
	"pokedex-api/backend/app/repo"
)

func pikachu() *models.Pokemon {
	return &models.Pokemon{
		ExternalID: 25,
		Name:       models.Names{English: "Pikachu", French: "Pikachu"},
		Types:      []models.Type{"electric"},
		Stats:      models.Stats{HP: 35, Attack: 55, Defense: 40, SpecialAttack: 50, SpecialDefense: 50, Speed: 90},
		Evolutions: []int{26},
	}
}

func TestPokemonRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	pokemons := repo.NewPokemonRepository(dbtest.Open(t))

	p := pikachu()
	require.NoError(t, pokemons.Create(ctx, p))
	assert.NotEmpty(t, p.ID)

	got, err := pokemons.FindByExternalID(ctx, 25)
	require.NoError(t, err)
	assert.Equal(t, "Pikachu", got.Name.English)
	assert.Equal(t, []models.Type{"electric"}, got.Types)
	assert.Equal(t, 90, got.Stats.Speed)
	assert.Equal(t, []int{26}, got.Evolutions)

	upd := &models.Pokemon{ExternalID: 999, Name: models.Names{English: "Raichu"}, Types: []models.Type{"electric"}}
	stored, err := pokemons.Replace(ctx, 25, upd)
	require.NoError(t, err)
	assert.Equal(t, 25, stored.ExternalID)
	assert.Equal(t, p.ID, stored.ID)
	assert.Equal(t, []int{}, stored.Evolutions)

	got, err = pokemons.FindByExternalID(ctx, 25)
	require.NoError(t, err)
	assert.Equal(t, "Raichu", got.Name.English)

	require.NoError(t, pokemons.DeleteByExternalID(ctx, 25))
	_, err = pokemons.FindByExternalID(ctx, 25)
	assert.ErrorIs(t, err, apperr.ErrPokemonNotFound)
	assert.ErrorIs(t, pokemons.DeleteByExternalID(ctx, 25), apperr.ErrPokemonNotFound)
}

func TestPokemonRepository_ListOrdered(t *testing.T) {
	ctx := context.Background()
	pokemons := repo.NewPokemonRepository(dbtest.Open(t))

	for _, id := range []int{7, 1, 4} {
		require.NoError(t, pokemons.Create(ctx, &models.Pokemon{ExternalID: id}))
	}
	list, err := pokemons.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, []int{1, 4, 7}, []int{list[0].ExternalID, list[1].ExternalID, list[2].ExternalID})
	assert.NotNil(t, list[0].Types)

	ok, err := pokemons.Exists(ctx, 4)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = pokemons.Exists(ctx, 5)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPokemonRepository_Constraints(t *testing.T) {
	ctx := context.Background()
	pokemons := repo.NewPokemonRepository(dbtest.Open(t))

	require.NoError(t, pokemons.Create(ctx, pikachu()))
	assert.ErrorIs(t, pokemons.Create(ctx, pikachu()), apperr.ErrDuplicatePokemon)

	err := pokemons.Create(ctx, &models.Pokemon{ExternalID: 0})
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	err = pokemons.Create(ctx, &models.Pokemon{ExternalID: 3, Types: []models.Type{"sound"}})
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	_, err = pokemons.Replace(ctx, 404, pikachu())
	assert.ErrorIs(t, err, apperr.ErrPokemonNotFound)
}
