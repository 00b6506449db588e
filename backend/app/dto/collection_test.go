package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPokemonID_Unmarshal(t *testing.T) {
	for in, want := range map[string]int{`{"pokemonId":25}`: 25, `{"pokemonId":"25"}`: 25, `{"pokemonId":" 7 "}`: 7} {
		var req CollectionRequest
		require.NoError(t, json.Unmarshal([]byte(in), &req), in)
		require.NotNil(t, req.PokemonID)
		assert.Equal(t, want, int(*req.PokemonID))
	}

	for _, in := range []string{`{"pokemonId":"pika"}`, `{"pokemonId":2.5}`, `{"pokemonId":true}`} {
		var req CollectionRequest
		assert.Error(t, json.Unmarshal([]byte(in), &req), in)
	}

	var req CollectionRequest
	require.NoError(t, json.Unmarshal([]byte(`{}`), &req))
	assert.Nil(t, req.PokemonID)
}
