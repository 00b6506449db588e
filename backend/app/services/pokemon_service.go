package services

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"pokedex-api/backend/app/apperr"
	"pokedex-api/backend/app/cache"
	"pokedex-api/backend/app/models"
)

const listKey = "pokemons:all"

func entryKey(externalID int) string { return "pokemon:" + strconv.Itoa(externalID) }

type pokemonStore interface {
	List(ctx context.Context) ([]models.Pokemon, error)
	FindByExternalID(ctx context.Context, externalID int) (*models.Pokemon, error)
	Exists(ctx context.Context, externalID int) (bool, error)
	Create(ctx context.Context, p *models.Pokemon) error
	Replace(ctx context.Context, externalID int, p *models.Pokemon) (*models.Pokemon, error)
	DeleteByExternalID(ctx context.Context, externalID int) error
}

// PokemonService is catalog CRUD with an optional read-through cache. Cache
// errors are logged and never fail a request.
type PokemonService struct {
	store pokemonStore
	cache cache.Cache
	sf    singleflight.Group
	log   zerolog.Logger
}

func NewPokemonService(store pokemonStore, c cache.Cache, log zerolog.Logger) *PokemonService {
	if c == nil {
		c = cache.Nop{}
	}
	return &PokemonService{store: store, cache: c, log: log}
}

func (s *PokemonService) List(ctx context.Context) ([]models.Pokemon, error) {
	var out []models.Pokemon
	if s.cached(ctx, listKey, &out) {
		return out, nil
	}
	v, err, _ := s.sf.Do(listKey, func() (interface{}, error) {
		// shared by every waiter, so one caller going away must not fail the rest
		ctx := context.WithoutCancel(ctx)
		list, err := s.store.List(ctx)
		if err != nil {
			return nil, err
		}
		s.fill(ctx, listKey, list)
		return list, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]models.Pokemon), nil
}

func (s *PokemonService) Get(ctx context.Context, externalID int) (*models.Pokemon, error) {
	key := entryKey(externalID)
	var p models.Pokemon
	if s.cached(ctx, key, &p) {
		return &p, nil
	}
	v, err, _ := s.sf.Do(key, func() (interface{}, error) {
		ctx := context.WithoutCancel(ctx)
		got, err := s.store.FindByExternalID(ctx, externalID)
		if err != nil {
			return nil, err
		}
		s.fill(ctx, key, got)
		return got, nil
	})
	if err != nil {
		return nil, err
	}
	cp := *v.(*models.Pokemon)
	return &cp, nil
}

func (s *PokemonService) Create(ctx context.Context, p *models.Pokemon) error {
	if err := s.store.Create(ctx, p); err != nil {
		return err
	}
	s.invalidate(ctx, p.ExternalID)
	return nil
}

func (s *PokemonService) Update(ctx context.Context, externalID int, p *models.Pokemon) (*models.Pokemon, error) {
	out, err := s.store.Replace(ctx, externalID, p)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, externalID)
	return out, nil
}

// Patch applies the JSON object in body onto the stored entry, so fields the
// body leaves out keep their current value. The external id, storage id and
// creation time cannot be changed this way.
func (s *PokemonService) Patch(ctx context.Context, externalID int, body []byte) (*models.Pokemon, error) {
	current, err := s.store.FindByExternalID(ctx, externalID)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(body, current); err != nil {
		return nil, apperr.Validation("invalid payload")
	}
	return s.Update(ctx, externalID, current)
}

func (s *PokemonService) Delete(ctx context.Context, externalID int) error {
	if err := s.store.DeleteByExternalID(ctx, externalID); err != nil {
		return err
	}
	s.invalidate(ctx, externalID)
	return nil
}

// Import creates every entry whose external id is not stored yet and returns
// how many were created.
func (s *PokemonService) Import(ctx context.Context, entries []models.Pokemon) (int, error) {
	created := 0
	for i := range entries {
		p := entries[i]
		ok, err := s.store.Exists(ctx, p.ExternalID)
		if err != nil {
			return created, err
		}
		if ok {
			continue
		}
		p.ID = ""
		if err := s.store.Create(ctx, &p); err != nil {
			return created, err
		}
		created++
	}
	if created > 0 {
		s.invalidate(ctx)
		s.log.Info().Int("created", created).Int("total", len(entries)).Msg("catalog imported")
	}
	return created, nil
}

func (s *PokemonService) cached(ctx context.Context, key string, dst interface{}) bool {
	raw, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("cache get failed")
		return false
	}
	if !ok {
		return false
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("cache entry unreadable")
		return false
	}
	return true
}

func (s *PokemonService) fill(ctx context.Context, key string, v interface{}) {
	raw, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, raw); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("cache set failed")
	}
}

func (s *PokemonService) invalidate(ctx context.Context, externalIDs ...int) {
	keys := []string{listKey}
	for _, id := range externalIDs {
		keys = append(keys, entryKey(id))
	}
	if err := s.cache.Delete(ctx, keys...); err != nil {
		s.log.Warn().Err(err).Strs("keys", keys).Msg("cache invalidation failed")
	}
}
