// Package model provides Bubble Tea models for CLI commands.
package model

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/chatshell/internal/application/usecase"
	"github.com/bnema/chatshell/internal/cli/styles"
	"github.com/bnema/chatshell/internal/domain/entity"
	"github.com/bnema/chatshell/internal/logging"
)

type accountsMode int

const (
	modeBrowse accountsMode = iota
	modeAdd
	modeRename
	modeConfirmRemove
)

// AccountsModel is the interactive account manager.
type AccountsModel struct {
	table   table.Model
	input   textinput.Model
	help    help.Model
	keys    accountsKeyMap
	confirm *styles.ConfirmModel

	mode     accountsMode
	accounts []entity.Account
	status   string
	err      error
	width    int
	height   int

	ctx      context.Context
	registry *usecase.ManageAccountsUseCase
	newID    func() string
	theme    *styles.Theme
}

type accountsKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Activate key.Binding
	Add      key.Binding
	Rename   key.Binding
	Remove   key.Binding
	MoveUp   key.Binding
	MoveDown key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// ShortHelp implements help.KeyMap.
func (k accountsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Activate, k.Add, k.Rename, k.Remove, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k accountsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.MoveUp, k.MoveDown},
		{k.Activate, k.Add, k.Rename, k.Remove},
		{k.Help, k.Quit},
	}
}

func defaultAccountsKeyMap() accountsKeyMap {
	return accountsKeyMap{
		Up:       key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("↓/j", "down")),
		Activate: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "activate")),
		Add:      key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		Rename:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "rename")),
		Remove:   key.NewBinding(key.WithKeys("x", "d"), key.WithHelp("x", "remove")),
		MoveUp:   key.NewBinding(key.WithKeys("K", "shift+up"), key.WithHelp("K", "move up")),
		MoveDown: key.NewBinding(key.WithKeys("J", "shift+down"), key.WithHelp("J", "move down")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:     key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// NewAccountsModel creates the manager. newID generates ids for added accounts.
func NewAccountsModel(
	ctx context.Context,
	theme *styles.Theme,
	accounts *usecase.ManageAccountsUseCase,
	newID func() string,
) AccountsModel {
	input := textinput.New()
	input.CharLimit = 64
	input.Prompt = "Name: "

	return AccountsModel{
		table:    styles.NewStyledTable(theme, styles.AccountColumns(), nil, 80, 10),
		input:    input,
		help:     help.New(),
		keys:     defaultAccountsKeyMap(),
		width:    80,
		height:   24,
		ctx:      ctx,
		registry: accounts,
		newID:    newID,
		theme:    theme,
	}
}

// accountsLoadedMsg carries a fresh registry listing.
type accountsLoadedMsg struct {
	accounts []entity.Account
	err      error
}

// accountChangedMsg reports the outcome of a mutation.
type accountChangedMsg struct {
	status string
	err    error
}

// Init implements tea.Model.
func (m AccountsModel) Init() tea.Cmd {
	return m.load
}

func (m AccountsModel) load() tea.Msg {
	if _, err := m.registry.EnsureDefaultAccount(m.ctx); err != nil {
		return accountsLoadedMsg{err: err}
	}
	accounts, err := m.registry.ListSorted(m.ctx)
	return accountsLoadedMsg{accounts: accounts, err: err}
}

// Update implements tea.Model.
func (m AccountsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table.SetWidth(msg.Width)
		m.table.SetHeight(max(3, msg.Height-8))
		return m, nil

	case accountsLoadedMsg:
		m.err = msg.err
		if msg.err == nil {
			m.setAccounts(msg.accounts)
		}
		return m, nil

	case accountChangedMsg:
		if msg.err != nil {
			m.status = describeError(msg.err)
		} else {
			m.status = msg.status
		}
		return m, m.load

	case tea.KeyMsg:
		switch m.mode {
		case modeAdd, modeRename:
			return m.updateInput(msg)
		case modeConfirmRemove:
			return m.updateConfirm(msg)
		}
		return m.updateBrowse(msg)
	}
	return m, nil
}

func (m *AccountsModel) setAccounts(accounts []entity.Account) {
	m.accounts = accounts
	rows := make([]table.Row, len(accounts))
	for i, a := range accounts {
		rows[i] = styles.AccountRow(a)
	}
	m.table.SetRows(rows)
	if m.table.Cursor() >= len(rows) && len(rows) > 0 {
		m.table.SetCursor(len(rows) - 1)
	}
}

func (m AccountsModel) selected() (entity.Account, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.accounts) {
		return entity.Account{}, false
	}
	return m.accounts[i], true
}

func (m AccountsModel) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""
	selected, ok := m.selected()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Add):
		m.mode = modeAdd
		m.input.SetValue("")
		m.input.Placeholder = fmt.Sprintf("Account %d", len(m.accounts)+1)
		return m, m.input.Focus()

	case key.Matches(msg, m.keys.Rename) && ok:
		m.mode = modeRename
		m.input.SetValue(selected.Name)
		m.input.Placeholder = ""
		return m, m.input.Focus()

	case key.Matches(msg, m.keys.Remove) && ok:
		if selected.IsDefault() {
			m.status = describeError(entity.ErrProtectedAccount)
			return m, nil
		}
		confirm := styles.NewConfirm(m.theme, fmt.Sprintf("Remove %s and its session data?", selected.Name))
		m.confirm = &confirm
		m.mode = modeConfirmRemove
		return m, nil

	case key.Matches(msg, m.keys.Activate) && ok:
		return m, m.mutate(fmt.Sprintf("%s is now active", selected.Name), func(ctx context.Context) error {
			return m.registry.SetActive(ctx, selected.ID)
		})

	case key.Matches(msg, m.keys.MoveUp) && ok:
		cmd := m.move(selected, entity.DirectionUp)
		return m, cmd

	case key.Matches(msg, m.keys.MoveDown) && ok:
		cmd := m.move(selected, entity.DirectionDown)
		return m, cmd
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *AccountsModel) move(a entity.Account, dir entity.Direction) tea.Cmd {
	if a.IsDefault() {
		m.status = "The primary account stays first"
		return nil
	}
	next := m.table.Cursor() + 1
	if dir == entity.DirectionUp {
		next = m.table.Cursor() - 1
	}
	if next >= 1 && next < len(m.accounts) {
		m.table.SetCursor(next)
	}
	return m.mutate(fmt.Sprintf("Moved %s %s", a.Name, dir), func(ctx context.Context) error {
		return m.registry.Reorder(ctx, a.ID, dir)
	})
}

func (m AccountsModel) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.mode = modeBrowse
		m.input.Blur()
		return m, nil

	case tea.KeyEnter:
		name := strings.TrimSpace(m.input.Value())
		mode := m.mode
		m.mode = modeBrowse
		m.input.Blur()

		if mode == modeAdd {
			return m, m.mutate("Account added", func(ctx context.Context) error {
				draft, err := m.registry.Draft(ctx, m.newID(), name, "", "")
				if err != nil {
					return err
				}
				return m.registry.Add(ctx, draft)
			})
		}

		selected, ok := m.selected()
		if !ok || name == "" {
			return m, nil
		}
		return m, m.mutate(fmt.Sprintf("Renamed to %s", name), func(ctx context.Context) error {
			return m.registry.UpdateIdentity(ctx, selected.ID, name, selected.Emoji, selected.Color)
		})
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m AccountsModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	confirm, cmd := m.confirm.Update(msg)
	m.confirm = &confirm
	if !confirm.Done() {
		return m, cmd
	}

	m.mode = modeBrowse
	m.confirm = nil
	selected, ok := m.selected()
	if !confirm.Result() || !ok {
		return m, nil
	}
	return m, m.mutate(fmt.Sprintf("Removed %s", selected.Name), func(ctx context.Context) error {
		return m.registry.Remove(ctx, selected.ID)
	})
}

// mutate runs op as a command and reports status on success.
func (m AccountsModel) mutate(status string, op func(ctx context.Context) error) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		if err := op(ctx); err != nil {
			logging.FromContext(ctx).Warn().Err(err).Msg("account operation failed")
			return accountChangedMsg{err: err}
		}
		return accountChangedMsg{status: status}
	}
}

func describeError(err error) string {
	switch {
	case errors.Is(err, entity.ErrProtectedAccount):
		return "The primary account cannot be removed"
	case errors.Is(err, entity.ErrAccountNotFound):
		return "That account no longer exists"
	default:
		return fmt.Sprintf("Error: %v", err)
	}
}

// View implements tea.Model.
func (m AccountsModel) View() string {
	t := m.theme
	if m.err != nil {
		return t.ErrorStyle.Render(fmt.Sprintf("%s %v", styles.IconX, m.err)) + "\n"
	}

	parts := []string{t.Title.Render("Accounts"), "", m.table.View()}

	switch m.mode {
	case modeAdd, modeRename:
		parts = append(parts, "", m.input.View())
	case modeConfirmRemove:
		parts = append(parts, "", m.confirm.View())
	}

	if m.status != "" {
		parts = append(parts, "", t.Subtle.Render(m.status))
	}
	parts = append(parts, "", m.help.View(m.keys))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// Accounts returns the last loaded registry listing.
func (m AccountsModel) Accounts() []entity.Account {
	return m.accounts
}

// Status returns the last status line.
func (m AccountsModel) Status() string {
	return m.status
}
