package styles

import (
	"fmt"
	"math"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/bnema/chatshell/internal/domain/entity"
)

const (
	emojiCells   = 2
	maxNameCells = 28
)

// AccountsRenderer renders account registry output.
type AccountsRenderer struct {
	theme *Theme
}

// NewAccountsRenderer creates a renderer with the given theme.
func NewAccountsRenderer(theme *Theme) *AccountsRenderer {
	return &AccountsRenderer{theme: theme}
}

// RenderList renders accounts in display order, one per line, with the
// name column aligned by terminal cell width.
func (r *AccountsRenderer) RenderList(accounts []entity.Account) string {
	if len(accounts) == 0 {
		return r.theme.Subtle.Render("  No accounts")
	}

	nameCells := 0
	for _, a := range accounts {
		nameCells = max(nameCells, runewidth.StringWidth(truncateName(a.Name)))
	}

	var sb strings.Builder
	for _, a := range accounts {
		marker := "  "
		if a.IsActive {
			marker = r.theme.Highlight.Render(IconActive) + " "
		}
		name := runewidth.FillRight(truncateName(a.Name), nameCells)

		sb.WriteString(fmt.Sprintf("  %s%s %s  %s%s\n",
			marker,
			EmojiCell(a.Emoji),
			r.theme.AccountStyle(a.Color).Render(name),
			r.theme.Subtle.Render(a.ID),
			r.badges(a),
		))
	}
	return strings.TrimRight(sb.String(), "\n")
}

func (r *AccountsRenderer) badges(a entity.Account) string {
	var parts []string
	if a.HasUnread {
		parts = append(parts, r.theme.Badge.Render(IconBell+" unread"))
	}
	if a.HasSession {
		parts = append(parts, r.theme.BadgeMuted.Render("signed in"))
	}
	if a.ZoomLevel != entity.ZoomDefault {
		parts = append(parts, r.theme.BadgeMuted.Render(ZoomPercent(a.ZoomLevel)))
	}
	if len(parts) == 0 {
		return ""
	}
	return "  " + strings.Join(parts, " ")
}

// RenderAdded renders the confirmation of a new account.
func (r *AccountsRenderer) RenderAdded(a entity.Account) string {
	return r.success(fmt.Sprintf("Added %s %s (%s)", a.Emoji, r.theme.AccountStyle(a.Color).Render(a.Name), a.ID))
}

// RenderRemoved renders the confirmation of a removal.
func (r *AccountsRenderer) RenderRemoved(id string) string {
	return fmt.Sprintf("\n  %s Removed %s and its session data\n",
		r.theme.SuccessStyle.Render(IconTrash), r.theme.Highlight.Render(id))
}

// RenderActivated renders the new active account.
func (r *AccountsRenderer) RenderActivated(a entity.Account) string {
	return r.success(fmt.Sprintf("%s %s is now active", a.Emoji, r.theme.AccountStyle(a.Color).Render(a.Name)))
}

// RenderUpdated renders an identity change.
func (r *AccountsRenderer) RenderUpdated(a entity.Account) string {
	return r.success(fmt.Sprintf("Updated %s %s", a.Emoji, r.theme.AccountStyle(a.Color).Render(a.Name)))
}

// RenderMoved renders a reorder.
func (r *AccountsRenderer) RenderMoved(id string, dir entity.Direction) string {
	icon := IconArrowUp
	if dir == entity.DirectionDown {
		icon = IconArrowDn
	}
	return r.success(fmt.Sprintf("Moved %s %s", r.theme.Highlight.Render(id), icon))
}

// RenderError renders an error message.
func (r *AccountsRenderer) RenderError(err error) string {
	return fmt.Sprintf("\n  %s %v\n", r.theme.ErrorStyle.Render(IconX), err)
}

func (r *AccountsRenderer) success(msg string) string {
	return fmt.Sprintf("\n  %s %s\n", r.theme.SuccessStyle.Render(IconCheck), msg)
}

// EmojiCell pads an emoji to two terminal cells so columns after it line up.
func EmojiCell(emoji string) string {
	if runewidth.StringWidth(emoji) >= emojiCells {
		return emoji
	}
	return runewidth.FillRight(emoji, emojiCells)
}

// ZoomPercent formats a zoom factor as a percentage.
func ZoomPercent(level float64) string {
	return fmt.Sprintf("%d%%", int(math.Round(level*100)))
}

func truncateName(name string) string {
	return runewidth.Truncate(name, maxNameCells, "…")
}
