package ui

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"pokedex-api/backend/app/dto"
	"pokedex-api/backend/app/models"
)

// Client talks to the pokedex HTTP API on behalf of one terminal session.
type Client struct {
	BaseURL string
	Token   string
	Timeout time.Duration
	HTTP    *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{BaseURL: baseURL, Timeout: timeout, HTTP: &http.Client{}}
}

// Session is the identity returned by a successful login.
type Session struct {
	Token    string `json:"token"`
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// APIError carries the status and message of a non-2xx response.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("request failed with status %d", e.Status)
	}
	return fmt.Sprintf("%s (%d)", e.Message, e.Status)
}

func (c *Client) context() (context.Context, context.CancelFunc) {
	timeout := c.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return context.WithTimeout(context.Background(), timeout)
}

func (c *Client) do(ctx context.Context, method, path string, in, out interface{}) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(raw)
	}
	req, err := http.NewRequestWithContext(ctx, method, strings.TrimRight(c.BaseURL, "/")+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}
	hc := c.HTTP
	if hc == nil {
		hc = http.DefaultClient
	}
	resp, err := hc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var msg dto.MessageResponse
		_ = json.NewDecoder(resp.Body).Decode(&msg)
		return &APIError{Status: resp.StatusCode, Message: msg.Message}
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// Login exchanges credentials for a token and keeps it for later calls.
func (c *Client) Login(ctx context.Context, username, password string) (*Session, error) {
	var s Session
	err := c.do(ctx, http.MethodPost, "/api/login", dto.CredentialsRequest{Username: username, Password: password}, &s)
	if err != nil {
		return nil, err
	}
	c.Token = s.Token
	return &s, nil
}

func (c *Client) Register(ctx context.Context, username, password string) error {
	return c.do(ctx, http.MethodPost, "/api/register", dto.CredentialsRequest{Username: username, Password: password}, nil)
}

func (c *Client) ListPokemons(ctx context.Context) ([]models.Pokemon, error) {
	var res dto.PokemonListResponse
	if err := c.do(ctx, http.MethodGet, "/api/pokemons", nil, &res); err != nil {
		return nil, err
	}
	return res.Pokemons, nil
}

func (c *Client) AddFavorite(ctx context.Context, pokemonID int) ([]int, error) {
	var res dto.FavoritesResponse
	if err := c.do(ctx, http.MethodPost, "/api/favorites/add", collectionBody(pokemonID), &res); err != nil {
		return nil, err
	}
	return res.Favorites, nil
}

func (c *Client) Favorites(ctx context.Context, username string) ([]int, error) {
	var res dto.FavoritesResponse
	if err := c.do(ctx, http.MethodGet, "/api/favorites/"+url.PathEscape(username), nil, &res); err != nil {
		return nil, err
	}
	return res.Favorites, nil
}

func (c *Client) AddToDeck(ctx context.Context, pokemonID int) ([]int, error) {
	var res dto.DeckResponse
	if err := c.do(ctx, http.MethodPost, "/api/addDeck", collectionBody(pokemonID), &res); err != nil {
		return nil, err
	}
	return res.Deck, nil
}

func (c *Client) RemoveFromDeck(ctx context.Context, pokemonID int) ([]int, error) {
	var res dto.DeckResponse
	if err := c.do(ctx, http.MethodDelete, "/api/monDeck/"+strconv.Itoa(pokemonID), nil, &res); err != nil {
		return nil, err
	}
	return res.Deck, nil
}

func collectionBody(pokemonID int) dto.CollectionRequest {
	id := dto.PokemonID(pokemonID)
	return dto.CollectionRequest{PokemonID: &id}
}
