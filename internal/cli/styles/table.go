package styles

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/bnema/chatshell/internal/domain/entity"
)

// NewStyledTable creates a themed table model.
func NewStyledTable(theme *Theme, columns []table.Column, rows []table.Row, width, height int) table.Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(height),
		table.WithWidth(width),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Border).
		BorderBottom(true).
		Foreground(theme.Accent).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(theme.Text).
		Background(theme.SurfaceVariant).
		Bold(true)
	s.Cell = s.Cell.
		Foreground(theme.Text)

	t.SetStyles(s)
	return t
}

// AccountColumns returns the columns of the account manager table.
func AccountColumns() []table.Column {
	return []table.Column{
		{Title: " ", Width: 2},
		{Title: "Account", Width: maxNameCells + emojiCells + 1},
		{Title: "ID", Width: 14},
		{Title: "Unread", Width: 7},
		{Title: "Session", Width: 8},
		{Title: "Zoom", Width: 6},
	}
}

// AccountRow converts an account to a table row.
func AccountRow(a entity.Account) table.Row {
	active := ""
	if a.IsActive {
		active = IconActive
	}
	return table.Row{
		active,
		EmojiCell(a.Emoji) + " " + truncateName(a.Name),
		runewidth.Truncate(a.ID, 14, "…"),
		yesNo(a.HasUnread),
		yesNo(a.HasSession),
		ZoomPercent(a.ZoomLevel),
	}
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return ""
}
