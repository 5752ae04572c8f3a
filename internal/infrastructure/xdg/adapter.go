// Package xdg resolves chatshell directories following the XDG Base
// Directory specification.
package xdg

import (
	"github.com/bnema/chatshell/internal/application/port"
	"github.com/bnema/chatshell/internal/infrastructure/config"
)

// Adapter implements port.XDGPaths using the config package resolvers.
type Adapter struct {
	accountsDir string
}

// New creates a new XDG paths adapter.
func New() *Adapter {
	return &Adapter{}
}

// WithAccountsDir overrides the accounts directory. Empty keeps the XDG default.
func (a *Adapter) WithAccountsDir(dir string) *Adapter {
	a.accountsDir = dir
	return a
}

func (*Adapter) ConfigDir() (string, error) {
	return config.GetConfigDir()
}

func (*Adapter) DataDir() (string, error) {
	return config.GetDataDir()
}

func (*Adapter) StateDir() (string, error) {
	return config.GetStateDir()
}

func (*Adapter) CacheDir() (string, error) {
	return config.GetCacheDir()
}

func (a *Adapter) AccountsDir() (string, error) {
	if a.accountsDir != "" {
		return a.accountsDir, nil
	}
	return config.GetAccountsDir()
}

func (*Adapter) LegacyWebDataDir() (string, error) {
	return config.GetLegacyWebDataDir()
}

func (*Adapter) LegacyWebCacheDir() (string, error) {
	return config.GetLegacyWebCacheDir()
}

var _ port.XDGPaths = (*Adapter)(nil)
