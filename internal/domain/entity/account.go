package entity

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// DefaultAccountID is the reserved id of the account created on first run.
// It is pinned first and can never be removed.
const DefaultAccountID = "default"

// Identity defaults.
const (
	DefaultAccountName = "Primary Account"
	DefaultColor       = "#3584e4"
	DefaultEmoji       = "💬"
)

// AccountColors is the avatar color palette offered for new accounts.
var AccountColors = []string{
	"#3584e4", // blue
	"#33d17a", // green
	"#ff7800", // orange
	"#e01b24", // red
	"#9141ac", // purple
	"#f6d32d", // yellow
	"#26a269", // teal
	"#c061cb", // pink
	"#1c71d8", // dark blue
	"#a51d2d", // dark red
}

// AccountEmojis is the avatar emoji palette offered for new accounts.
var AccountEmojis = []string{
	"💬", "🏠", "💼", "🎓", "👤", "👥", "🌟", "🔔",
	"📱", "💻", "🎯", "🚀", "🎨", "🎵", "📷", "✈️",
	"🌍", "❤️", "🔥", "⚡", "🌈", "🎮", "📚", "🏆",
	"🍀", "🌸", "🦋", "🐱", "🐶", "🦊",
}

var colorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Account is one isolated identity slot. The JSON layout keeps the flat
// per-kind permission fields so registries written by older releases load as-is.
type Account struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	ProfilePicture *string `json:"profile_picture"`
	CreatedAt      int64   `json:"created_at"`
	IsActive       bool    `json:"is_active"`
	HasSession     bool    `json:"has_session"`
	Color          string  `json:"color"`
	Emoji          string  `json:"emoji"`
	HasUnread      bool    `json:"has_unread"`
	Order          int     `json:"order"`
	ZoomLevel      float64 `json:"zoom_level"`

	NotificationPermissionAsked   bool `json:"notification_permission_asked"`
	NotificationPermissionGranted bool `json:"notification_permission_granted"`
	MicrophonePermissionAsked     bool `json:"microphone_permission_asked"`
	MicrophonePermissionGranted   bool `json:"microphone_permission_granted"`
	CameraPermissionAsked         bool `json:"camera_permission_asked"`
	CameraPermissionGranted       bool `json:"camera_permission_granted"`
}

// NewAccount builds an inactive account with identity defaults filled in.
func NewAccount(id, name, color, emoji string, createdAt int64) Account {
	a := Account{
		ID:        id,
		Name:      name,
		Color:     color,
		Emoji:     emoji,
		CreatedAt: createdAt,
		ZoomLevel: ZoomDefault,
	}
	a.ApplyDefaults()
	return a
}

// NewDefaultAccount builds the reserved first-run account.
func NewDefaultAccount(createdAt int64) Account {
	a := NewAccount(DefaultAccountID, DefaultAccountName, DefaultColor, DefaultEmoji, createdAt)
	a.IsActive = true
	return a
}

// IsDefault reports whether this is the pinned default account.
func (a *Account) IsDefault() bool {
	return a.ID == DefaultAccountID
}

// ApplyDefaults fills fields that older registry files omit.
func (a *Account) ApplyDefaults() {
	if a.Color == "" {
		a.Color = DefaultColor
	}
	if a.Emoji == "" {
		a.Emoji = DefaultEmoji
	}
	if a.ZoomLevel <= 0 {
		a.ZoomLevel = ZoomDefault
	}
	if a.Name == "" && a.IsDefault() {
		a.Name = DefaultAccountName
	}
}

// Permission returns the stored record for a kind.
func (a *Account) Permission(kind PermissionKind) PermissionRecord {
	switch kind {
	case PermissionNotification:
		return PermissionRecord{Asked: a.NotificationPermissionAsked, Granted: a.NotificationPermissionGranted}
	case PermissionMicrophone:
		return PermissionRecord{Asked: a.MicrophonePermissionAsked, Granted: a.MicrophonePermissionGranted}
	case PermissionCamera:
		return PermissionRecord{Asked: a.CameraPermissionAsked, Granted: a.CameraPermissionGranted}
	default:
		return PermissionRecord{}
	}
}

// SetPermission stores the record for a kind.
func (a *Account) SetPermission(kind PermissionKind, rec PermissionRecord) error {
	switch kind {
	case PermissionNotification:
		a.NotificationPermissionAsked, a.NotificationPermissionGranted = rec.Asked, rec.Granted
	case PermissionMicrophone:
		a.MicrophonePermissionAsked, a.MicrophonePermissionGranted = rec.Asked, rec.Granted
	case PermissionCamera:
		a.CameraPermissionAsked, a.CameraPermissionGranted = rec.Asked, rec.Granted
	default:
		return fmt.Errorf("unknown permission kind %q", kind)
	}
	return nil
}

// ValidateAccountID rejects ids that cannot be used as a directory name or
// as the account half of a routing id.
func ValidateAccountID(id string) error {
	switch {
	case strings.TrimSpace(id) == "":
		return fmt.Errorf("%w: empty", ErrInvalidAccountID)
	case id == "." || id == "..":
		return fmt.Errorf("%w: %q", ErrInvalidAccountID, id)
	case strings.ContainsAny(id, ":/\\"):
		return fmt.Errorf("%w: %q contains a reserved character", ErrInvalidAccountID, id)
	case strings.ContainsRune(id, 0):
		return fmt.Errorf("%w: contains NUL", ErrInvalidAccountID)
	}
	return nil
}

// ValidateColor checks the #rrggbb form.
func ValidateColor(color string) error {
	if !colorPattern.MatchString(color) {
		return fmt.Errorf("%w: %q", ErrInvalidColor, color)
	}
	return nil
}

// Direction moves an account one step in the display order.
type Direction int

const (
	DirectionUp Direction = iota
	DirectionDown
)

func (d Direction) String() string {
	if d == DirectionUp {
		return "up"
	}
	return "down"
}

// ParseDirection accepts "up" or "down".
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(s) {
	case "up":
		return DirectionUp, nil
	case "down":
		return DirectionDown, nil
	default:
		return 0, fmt.Errorf("unknown direction %q", s)
	}
}

// SortAccounts orders accounts for display: the default account first, then
// by order, creation time and id.
func SortAccounts(accounts []Account) {
	sort.SliceStable(accounts, func(i, j int) bool {
		a, b := accounts[i], accounts[j]
		if a.IsDefault() != b.IsDefault() {
			return a.IsDefault()
		}
		if a.Order != b.Order {
			return a.Order < b.Order
		}
		if a.CreatedAt != b.CreatedAt {
			return a.CreatedAt < b.CreatedAt
		}
		return a.ID < b.ID
	})
}

// AccountSummary is the compact view consumed by the window chrome and tray.
type AccountSummary struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Emoji     string `json:"emoji"`
	HasUnread bool   `json:"has_unread"`
}
