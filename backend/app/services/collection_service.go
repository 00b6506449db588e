package services

import (
	"context"
	"slices"

	"github.com/rs/zerolog"

	"pokedex-api/backend/app/apperr"
)

// CollectionService manages the per-user favorites and deck lists. Every
// mutation is a read-modify-write of the whole user record without a version
// check, so two concurrent updates to one user can lose one of them.
type CollectionService struct {
	users userStore
	log   zerolog.Logger
}

func NewCollectionService(users userStore, log zerolog.Logger) *CollectionService {
	return &CollectionService{users: users, log: log}
}

func (s *CollectionService) AddFavorite(ctx context.Context, userID string, pokemonID int) ([]int, error) {
	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if slices.Contains(u.Favorites, pokemonID) {
		return nil, apperr.ErrAlreadyFavorited
	}
	u.Favorites = append(u.Favorites, pokemonID)
	if err := s.users.Save(ctx, u); err != nil {
		return nil, err
	}
	s.log.Debug().Str("user_id", userID).Int("pokemon_id", pokemonID).Msg("favorite added")
	return u.Favorites, nil
}

// RemoveFavorite drops every occurrence of pokemonID. Removing an absent id succeeds.
func (s *CollectionService) RemoveFavorite(ctx context.Context, username string, pokemonID int) ([]int, error) {
	u, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	u.Favorites = without(u.Favorites, pokemonID)
	if err := s.users.Save(ctx, u); err != nil {
		return nil, err
	}
	return u.Favorites, nil
}

func (s *CollectionService) Favorites(ctx context.Context, username string) ([]int, error) {
	u, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return nonNil(u.Favorites), nil
}

// AddToDeck appends pokemonID even if it is already in the deck.
func (s *CollectionService) AddToDeck(ctx context.Context, userID string, pokemonID int) ([]int, error) {
	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	u.Deck = append(u.Deck, pokemonID)
	if err := s.users.Save(ctx, u); err != nil {
		return nil, err
	}
	s.log.Debug().Str("user_id", userID).Int("pokemon_id", pokemonID).Msg("deck entry added")
	return u.Deck, nil
}

func (s *CollectionService) RemoveFromDeck(ctx context.Context, userID string, pokemonID int) ([]int, error) {
	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	u.Deck = without(u.Deck, pokemonID)
	if err := s.users.Save(ctx, u); err != nil {
		return nil, err
	}
	return u.Deck, nil
}

func (s *CollectionService) Deck(ctx context.Context, username string) ([]int, error) {
	u, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return nonNil(u.Deck), nil
}

func without(ids []int, id int) []int {
	out := make([]int, 0, len(ids))
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}

func nonNil(ids []int) []int {
	if ids == nil {
		return []int{}
	}
	return ids
}
