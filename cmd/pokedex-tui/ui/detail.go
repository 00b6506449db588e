package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"pokedex-api/backend/app/models"
)

type DetailModel struct {
	Client   *Client
	Pokemon  models.Pokemon
	Viewport viewport.Model
	Status   string
	Err      error
}

type backToCatalogMsg struct{}

func NewDetailModel(c *Client, p models.Pokemon, width, height int) DetailModel {
	if width <= 0 {
		width = 60
	}
	if height <= 0 {
		height = 24
	}
	vp := viewport.New(width, height-6)
	vp.Style = lipgloss.NewStyle().PaddingLeft(1)
	vp.SetContent(renderPokemon(p))
	return DetailModel{Client: c, Pokemon: p, Viewport: vp}
}

func (m DetailModel) Init() tea.Cmd { return nil }

func (m DetailModel) Update(msg tea.Msg) (DetailModel, tea.Cmd) {
	switch msg := msg.(type) {
	case collectionUpdatedMsg:
		m.Err = msg.Err
		if msg.Err == nil {
			m.Status = fmt.Sprintf("%s: %v", msg.Label, msg.IDs)
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "backspace", "q":
			return m, func() tea.Msg { return backToCatalogMsg{} }
		case "f":
			return m, addFavoriteCmd(m.Client, m.Pokemon.ExternalID)
		case "d":
			return m, addToDeckCmd(m.Client, m.Pokemon.ExternalID)
		}
	}

	var cmd tea.Cmd
	m.Viewport, cmd = m.Viewport.Update(msg)
	return m, cmd
}

func renderPokemon(p models.Pokemon) string {
	var b strings.Builder
	row := func(label, value string) {
		b.WriteString(labelStyle.Render(label) + value + "\n")
	}

	row("Number", strconv.Itoa(p.ExternalID))
	row("English", p.Name.English)
	row("French", p.Name.French)
	row("Japanese", p.Name.Japanese)
	row("Chinese", p.Name.Chinese)
	row("Types", joinTypes(p.Types))
	if p.Image != "" {
		row("Image", p.Image)
	}
	b.WriteString("\n")
	row("HP", strconv.Itoa(p.Stats.HP))
	row("Attack", strconv.Itoa(p.Stats.Attack))
	row("Defense", strconv.Itoa(p.Stats.Defense))
	row("Sp. Attack", strconv.Itoa(p.Stats.SpecialAttack))
	row("Sp. Defense", strconv.Itoa(p.Stats.SpecialDefense))
	row("Speed", strconv.Itoa(p.Stats.Speed))
	if len(p.Evolutions) > 0 {
		evo := make([]string, len(p.Evolutions))
		for i, id := range p.Evolutions {
			evo[i] = "#" + strconv.Itoa(id)
		}
		b.WriteString("\n")
		row("Evolutions", strings.Join(evo, " -> "))
	}
	return b.String()
}

func (m DetailModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("#%d %s", m.Pokemon.ExternalID, m.Pokemon.Name.English)) + "\n\n")
	b.WriteString(m.Viewport.View())
	b.WriteString("\n")
	b.WriteString(blurredStyle.Render("f: favorite  d: add to deck  esc: back"))
	if m.Status != "" {
		b.WriteString("\n" + statusMessageStyle(m.Status))
	}
	if m.Err != nil {
		b.WriteString("\n" + errorMessageStyle(m.Err.Error()))
	}
	return b.String()
}
