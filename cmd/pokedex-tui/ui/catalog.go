package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"pokedex-api/backend/app/models"
)

type CatalogModel struct {
	Client   *Client
	Session  *Session
	Table    table.Model
	Pokemons []models.Pokemon
	Favs     map[int]bool
	Status   string
	Err      error
}

type catalogLoadedMsg struct {
	Pokemons []models.Pokemon
	Err      error
}

type pokemonSelectedMsg struct{ Pokemon models.Pokemon }

// collectionUpdatedMsg reports the result of a favorites or deck mutation.
type collectionUpdatedMsg struct {
	Label string
	IDs   []int
	Err   error
}

func NewCatalogModel(c *Client, s *Session, height int) CatalogModel {
	columns := []table.Column{
		{Title: "", Width: 1},
		{Title: "#", Width: 5},
		{Title: "Name", Width: 20},
		{Title: "Types", Width: 20},
		{Title: "HP", Width: 5},
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(tableHeight(height)),
	)
	t.SetStyles(tableStyles())
	return CatalogModel{Client: c, Session: s, Table: t, Favs: map[int]bool{}}
}

func tableHeight(height int) int {
	if height-10 < 5 {
		return 10
	}
	return height - 10
}

func (m CatalogModel) Init() tea.Cmd {
	if m.Session == nil {
		return loadCatalogCmd(m.Client)
	}
	return tea.Batch(loadCatalogCmd(m.Client), loadFavoritesCmd(m.Client, m.Session.Username))
}

func loadFavoritesCmd(c *Client, username string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := c.context()
		defer cancel()
		ids, err := c.Favorites(ctx, username)
		return collectionUpdatedMsg{Label: "favorites", IDs: ids, Err: err}
	}
}

func loadCatalogCmd(c *Client) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := c.context()
		defer cancel()
		list, err := c.ListPokemons(ctx)
		return catalogLoadedMsg{Pokemons: list, Err: err}
	}
}

func addFavoriteCmd(c *Client, id int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := c.context()
		defer cancel()
		ids, err := c.AddFavorite(ctx, id)
		return collectionUpdatedMsg{Label: "favorites", IDs: ids, Err: err}
	}
}

func addToDeckCmd(c *Client, id int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := c.context()
		defer cancel()
		ids, err := c.AddToDeck(ctx, id)
		return collectionUpdatedMsg{Label: "deck", IDs: ids, Err: err}
	}
}

func removeFromDeckCmd(c *Client, id int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := c.context()
		defer cancel()
		ids, err := c.RemoveFromDeck(ctx, id)
		return collectionUpdatedMsg{Label: "deck", IDs: ids, Err: err}
	}
}

func (m CatalogModel) selected() (models.Pokemon, bool) {
	i := m.Table.Cursor()
	if i < 0 || i >= len(m.Pokemons) {
		return models.Pokemon{}, false
	}
	return m.Pokemons[i], true
}

func (m CatalogModel) Update(msg tea.Msg) (CatalogModel, tea.Cmd) {
	switch msg := msg.(type) {
	case catalogLoadedMsg:
		if msg.Err != nil {
			m.Err = msg.Err
			return m, nil
		}
		m.Err = nil
		m.Pokemons = msg.Pokemons
		m.setRows()
		m.Status = fmt.Sprintf("%d pokemons", len(m.Pokemons))
		return m, nil

	case collectionUpdatedMsg:
		m.Err = msg.Err
		if msg.Err != nil {
			return m, nil
		}
		m.Status = fmt.Sprintf("%s: %v", msg.Label, msg.IDs)
		if msg.Label == "favorites" {
			m.Favs = make(map[int]bool, len(msg.IDs))
			for _, id := range msg.IDs {
				m.Favs[id] = true
			}
			m.setRows()
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "r":
			return m, loadCatalogCmd(m.Client)
		case "enter":
			if p, ok := m.selected(); ok {
				return m, func() tea.Msg { return pokemonSelectedMsg{Pokemon: p} }
			}
		case "f":
			if p, ok := m.selected(); ok {
				return m, addFavoriteCmd(m.Client, p.ExternalID)
			}
		case "d":
			if p, ok := m.selected(); ok {
				return m, addToDeckCmd(m.Client, p.ExternalID)
			}
		case "x":
			if p, ok := m.selected(); ok {
				return m, removeFromDeckCmd(m.Client, p.ExternalID)
			}
		case "q":
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.Table, cmd = m.Table.Update(msg)
	return m, cmd
}

func (m *CatalogModel) setRows() {
	rows := make([]table.Row, 0, len(m.Pokemons))
	for _, p := range m.Pokemons {
		fav := ""
		if m.Favs[p.ExternalID] {
			fav = "*"
		}
		rows = append(rows, table.Row{fav, strconv.Itoa(p.ExternalID), p.Name.English, joinTypes(p.Types), strconv.Itoa(p.Stats.HP)})
	}
	m.Table.SetRows(rows)
}

func joinTypes(types []models.Type) string {
	out := make([]string, len(types))
	for i, t := range types {
		out[i] = string(t)
	}
	return strings.Join(out, ", ")
}

func (m CatalogModel) View() string {
	var b strings.Builder
	title := "Pokédex"
	if m.Session != nil {
		title += " - " + m.Session.Username
	}
	b.WriteString(titleStyle.Render(title) + "\n\n")
	b.WriteString(m.Table.View())
	b.WriteString("\n\n")
	b.WriteString(blurredStyle.Render("enter: details  f: favorite  d: add to deck  x: remove from deck  r: refresh  q: quit"))
	if m.Status != "" {
		b.WriteString("\n" + statusMessageStyle(m.Status))
	}
	if m.Err != nil {
		b.WriteString("\n" + errorMessageStyle(m.Err.Error()))
	}
	return b.String()
}
