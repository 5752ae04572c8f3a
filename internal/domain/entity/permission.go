package entity

import "fmt"

// PermissionKind is the kind of capability a session asks for.
// It is decided once at the engine boundary and never re-inspected.
type PermissionKind string

const (
	// PermissionNotification represents desktop notification permission.
	PermissionNotification PermissionKind = "notification"

	// PermissionMicrophone represents microphone access permission.
	PermissionMicrophone PermissionKind = "microphone"

	// PermissionCamera represents camera access permission.
	PermissionCamera PermissionKind = "camera"
)

// AllPermissionKinds lists every tracked kind in display order.
var AllPermissionKinds = []PermissionKind{
	PermissionNotification,
	PermissionMicrophone,
	PermissionCamera,
}

// ParsePermissionKind converts a string to a PermissionKind.
func ParsePermissionKind(s string) (PermissionKind, error) {
	switch k := PermissionKind(s); k {
	case PermissionNotification, PermissionMicrophone, PermissionCamera:
		return k, nil
	default:
		return "", fmt.Errorf("unknown permission kind %q", s)
	}
}

// PermissionState is the three-state ledger value for one kind.
type PermissionState int

const (
	// PermissionUnknown means the user was never asked.
	PermissionUnknown PermissionState = iota
	// PermissionGranted means the user allowed the capability.
	PermissionGranted
	// PermissionDenied means the user refused, or dismissed the prompt.
	PermissionDenied
)

// String returns the lowercase state name.
func (s PermissionState) String() string {
	switch s {
	case PermissionGranted:
		return "granted"
	case PermissionDenied:
		return "denied"
	default:
		return "unknown"
	}
}

// PermissionRecord is the persisted asked/granted pair for one kind.
type PermissionRecord struct {
	Asked   bool
	Granted bool
}

// State maps the flag pair onto the ledger state.
func (r PermissionRecord) State() PermissionState {
	switch {
	case !r.Asked:
		return PermissionUnknown
	case r.Granted:
		return PermissionGranted
	default:
		return PermissionDenied
	}
}

// PermissionKindsToStrings converts kinds to strings for logging.
func PermissionKindsToStrings(kinds []PermissionKind) []string {
	result := make([]string, len(kinds))
	for i, k := range kinds {
		result[i] = string(k)
	}
	return result
}
