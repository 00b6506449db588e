package services

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pokedex-api/backend/app/apperr"
	"pokedex-api/backend/app/db/dbtest"
	"pokedex-api/backend/app/models"
	"pokedex-api/backend/app/repo"
)

type memCache struct {
	mu      sync.Mutex
	data    map[string][]byte
	gets    int
	hits    int
	failGet bool
}

func newMemCache() *memCache { return &memCache{data: map[string][]byte{}} }

func (m *memCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.gets++
	if m.failGet {
		return nil, false, errors.New("cache down")
	}
	v, ok := m.data[key]
	if ok {
		m.hits++
	}
	return v, ok, nil
}

func (m *memCache) Set(_ context.Context, key string, val []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = val
	return nil
}

func (m *memCache) Delete(_ context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, k := range keys {
		delete(m.data, k)
	}
	return nil
}

func newPokemonService(t *testing.T, c *memCache) *PokemonService {
	t.Helper()
	store := repo.NewPokemonRepository(dbtest.Open(t))
	if c == nil {
		return NewPokemonService(store, nil, zerolog.Nop())
	}
	return NewPokemonService(store, c, zerolog.Nop())
}

func TestPokemonService_CRUD(t *testing.T) {
	ctx := context.Background()
	svc := newPokemonService(t, nil)

	p := &models.Pokemon{ExternalID: 1, Name: models.Names{English: "Bulbasaur"}, Types: []models.Type{"grass", "poison"}}
	require.NoError(t, svc.Create(ctx, p))

	got, err := svc.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Bulbasaur", got.Name.English)

	upd, err := svc.Update(ctx, 1, &models.Pokemon{Name: models.Names{English: "Ivysaur"}, Types: []models.Type{"grass"}})
	require.NoError(t, err)
	assert.Equal(t, 1, upd.ExternalID)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Ivysaur", list[0].Name.English)

	require.NoError(t, svc.Delete(ctx, 1))
	_, err = svc.Get(ctx, 1)
	assert.ErrorIs(t, err, apperr.ErrPokemonNotFound)
}

func TestPokemonService_CacheHitsAndInvalidation(t *testing.T) {
	ctx := context.Background()
	c := newMemCache()
	svc := newPokemonService(t, c)

	require.NoError(t, svc.Create(ctx, &models.Pokemon{ExternalID: 4, Name: models.Names{English: "Charmander"}}))

	_, err := svc.Get(ctx, 4)
	require.NoError(t, err)
	assert.Contains(t, c.data, "pokemon:4")

	got, err := svc.Get(ctx, 4)
	require.NoError(t, err)
	assert.Equal(t, "Charmander", got.Name.English)
	assert.Equal(t, 1, c.hits)

	_, err = svc.List(ctx)
	require.NoError(t, err)
	assert.Contains(t, c.data, listKey)

	_, err = svc.Update(ctx, 4, &models.Pokemon{Name: models.Names{English: "Charmeleon"}})
	require.NoError(t, err)
	assert.NotContains(t, c.data, "pokemon:4")
	assert.NotContains(t, c.data, listKey)

	got, err = svc.Get(ctx, 4)
	require.NoError(t, err)
	assert.Equal(t, "Charmeleon", got.Name.English)
}

func TestPokemonService_CacheFailureFallsThrough(t *testing.T) {
	ctx := context.Background()
	c := newMemCache()
	c.failGet = true
	svc := newPokemonService(t, c)

	require.NoError(t, svc.Create(ctx, &models.Pokemon{ExternalID: 7}))
	got, err := svc.Get(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, 7, got.ExternalID)
}

func TestPokemonService_ImportSkipsExisting(t *testing.T) {
	ctx := context.Background()
	svc := newPokemonService(t, nil)

	require.NoError(t, svc.Create(ctx, &models.Pokemon{ExternalID: 1, Name: models.Names{English: "Original"}}))

	n, err := svc.Import(ctx, []models.Pokemon{
		{ExternalID: 1, Name: models.Names{English: "Replacement"}},
		{ExternalID: 2},
		{ExternalID: 3},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	got, err := svc.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Original", got.Name.English)

	n, err = svc.Import(ctx, []models.Pokemon{{ExternalID: 2}})
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestPokemonService_PatchKeepsOmittedFields(t *testing.T) {
	ctx := context.Background()
	c := newMemCache()
	svc := newPokemonService(t, c)

	p := &models.Pokemon{
		ExternalID: 25,
		Name:       models.Names{English: "Pikachu", French: "Pikachu"},
		Types:      []models.Type{"electric"},
		Stats:      models.Stats{HP: 35, Speed: 90},
	}
	require.NoError(t, svc.Create(ctx, p))
	_, err := svc.Get(ctx, 25)
	require.NoError(t, err)

	out, err := svc.Patch(ctx, 25, []byte(`{"image":"new.png","name":{"english":"Raichu"},"id":999,"_id":"other"}`))
	require.NoError(t, err)
	assert.Equal(t, 25, out.ExternalID)
	assert.Equal(t, p.ID, out.ID)
	assert.Equal(t, "new.png", out.Image)
	assert.Equal(t, "Raichu", out.Name.English)
	assert.Equal(t, "Pikachu", out.Name.French)
	assert.Equal(t, []models.Type{"electric"}, out.Types)
	assert.Equal(t, 35, out.Stats.HP)

	got, err := svc.Get(ctx, 25)
	require.NoError(t, err)
	assert.Equal(t, "Raichu", got.Name.English)
	assert.Equal(t, 90, got.Stats.Speed)

	_, err = svc.Patch(ctx, 25, []byte(`[1,2]`))
	assert.ErrorIs(t, err, apperr.Validation("invalid payload"))
	_, err = svc.Patch(ctx, 26, []byte(`{}`))
	assert.ErrorIs(t, err, apperr.ErrPokemonNotFound)
}

func TestPokemonService_GetSurvivesCanceledCaller(t *testing.T) {
	svc := newPokemonService(t, nil)
	require.NoError(t, svc.Create(context.Background(), &models.Pokemon{ExternalID: 7, Types: []models.Type{"water"}}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	got, err := svc.Get(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, 7, got.ExternalID)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
