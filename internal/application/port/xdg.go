package port

//go:generate mockgen -source=xdg.go -destination=mockgen/xdg.go -package=mock_port

// XDGPaths provides XDG Base Directory paths.
type XDGPaths interface {
	ConfigDir() (string, error)
	DataDir() (string, error)
	StateDir() (string, error)
	CacheDir() (string, error)

	// AccountsDir holds accounts.json and the per-account sessions tree.
	AccountsDir() (string, error)

	// LegacyWebDataDir and LegacyWebCacheDir are the single-account
	// session directories used before multi-account support.
	LegacyWebDataDir() (string, error)
	LegacyWebCacheDir() (string, error)
}
