package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pokedex-api/backend/config"
)

func TestRootCmd_Subcommands(t *testing.T) {
	cmd := NewRootCmd()
	names := map[string]bool{}
	for _, c := range cmd.Commands() {
		names[c.Name()] = true
	}
	assert.True(t, names["serve"])
	assert.True(t, names["seed"])
	assert.True(t, names["export"])
}

func TestServe_FailsWithoutDSN(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("jwt:\n  secret: x\n"), 0o600))

	cmd := NewRootCmd()
	cmd.SetArgs([]string{"--config", path, "serve"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	assert.ErrorIs(t, cmd.Execute(), config.ErrMissingDSN)
}

func TestSeedThenExport(t *testing.T) {
	dir := t.TempDir()
	catalog := filepath.Join(dir, "pokemons.json")
	require.NoError(t, os.WriteFile(catalog, []byte(`[
  {"id": 1, "name": {"english": "Bulbasaur"}, "types": ["grass", "poison"]},
  {"id": 4, "name": {"english": "Charmander"}, "types": ["fire"], "evolutions": [5]}
]`), 0o600))
	cfgPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`
db:
  dsn: `+filepath.Join(dir, "pokedex.db")+`
jwt:
  secret: test-secret
log:
  level: error
seed:
  admin_password: password123
`), 0o600))

	run := func(args ...string) string {
		var out bytes.Buffer
		cmd := NewRootCmd()
		cmd.SetArgs(append([]string{"--config", cfgPath}, args...))
		cmd.SetOut(&out)
		cmd.SetErr(&out)
		require.NoError(t, cmd.Execute())
		return out.String()
	}

	assert.Contains(t, run("seed", "--file", catalog), "seed complete")
	// second run is a no-op
	assert.Contains(t, run("seed", "--file", catalog), "seed complete")

	exported := filepath.Join(dir, "export.json")
	assert.Contains(t, run("export", "--out", exported), "exported 2 pokemons")

	raw, err := os.ReadFile(exported)
	require.NoError(t, err)
	var got []struct {
		ID   int `json:"id"`
		Name struct {
			English string `json:"english"`
		} `json:"name"`
		Evolutions []int `json:"evolutions"`
	}
	require.NoError(t, json.Unmarshal(raw, &got))
	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0].ID)
	assert.Equal(t, "Charmander", got[1].Name.English)
	assert.Equal(t, []int{5}, got[1].Evolutions)
}
