package entity

import "errors"

// StorageDirs are the isolated directories owned by one account's session.
type StorageDirs struct {
	Data  string
	Cache string
}

// Validate checks both directories are set and distinct.
func (d StorageDirs) Validate() error {
	if d.Data == "" || d.Cache == "" || d.Data == d.Cache {
		return ErrInvalidStorageDirs
	}
	return nil
}

// SessionVisibility distinguishes the visible session from warm background ones.
type SessionVisibility string

const (
	SessionForeground SessionVisibility = "foreground"
	SessionBackground SessionVisibility = "background"
)

// Session is a live isolated browsing context bound to one account.
// It is never persisted.
type Session struct {
	AccountID  string
	Dirs       StorageDirs
	Visibility SessionVisibility
}

func (s *Session) IsForeground() bool {
	return s != nil && s.Visibility == SessionForeground
}

func (s *Session) Validate() error {
	if s == nil || s.AccountID == "" {
		return ErrInvalidSession
	}
	return s.Dirs.Validate()
}

var (
	ErrInvalidSession     = errors.New("invalid session")
	ErrInvalidStorageDirs = errors.New("session storage directories must be set and distinct")
)
