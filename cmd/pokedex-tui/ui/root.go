package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

type state int

const (
	stateLogin state = iota
	stateCatalog
	stateDetail
)

type RootModel struct {
	State    state
	Client   *Client
	Session  *Session
	Login    LoginModel
	Catalog  CatalogModel
	Detail   DetailModel
	Quitting bool
	width    int
	height   int
}

func NewRootModel(c *Client) RootModel {
	return RootModel{
		State:  stateLogin,
		Client: c,
		Login:  NewLoginModel(c),
	}
}

func (m RootModel) Init() tea.Cmd {
	return m.Login.Init()
}

func (m RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		switch m.State {
		case stateCatalog:
			m.Catalog.Table.SetHeight(tableHeight(msg.Height))
		case stateDetail:
			m.Detail.Viewport.Width = msg.Width
			m.Detail.Viewport.Height = msg.Height - 6
		}

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.Quitting = true
			return m, tea.Quit
		}

	case loginResultMsg:
		if msg.Err != nil {
			break
		}
		m.Session = msg.Session
		m.State = stateCatalog
		m.Catalog = NewCatalogModel(m.Client, m.Session, m.height)
		return m, m.Catalog.Init()

	case pokemonSelectedMsg:
		m.State = stateDetail
		m.Detail = NewDetailModel(m.Client, msg.Pokemon, m.width, m.height)
		return m, m.Detail.Init()

	case backToCatalogMsg:
		m.State = stateCatalog
		return m, nil
	}

	var cmd tea.Cmd
	switch m.State {
	case stateLogin:
		m.Login, cmd = m.Login.Update(msg)
	case stateCatalog:
		m.Catalog, cmd = m.Catalog.Update(msg)
	case stateDetail:
		m.Detail, cmd = m.Detail.Update(msg)
	}
	return m, cmd
}

func (m RootModel) View() string {
	if m.Quitting {
		return "Bye!\n"
	}
	switch m.State {
	case stateLogin:
		return m.Login.View()
	case stateCatalog:
		return m.Catalog.View()
	case stateDetail:
		return m.Detail.View()
	}
	return "Unknown state"
}
