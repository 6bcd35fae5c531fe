// Package source tags how an operation was served, so callers can tell a
// backend-synced success apart from a local-fallback success instead of
// collapsing both into one boolean.
package source

// Source identifies the tier that satisfied an operation.
type Source int

const (
	// None means the operation failed entirely.
	None Source = iota
	// Remote means the backend served the operation.
	Remote
	// Local means the durable fallback store served the operation.
	Local
)

func (s Source) String() string {
	switch s {
	case Remote:
		return "remote"
	case Local:
		return "local"
	default:
		return "none"
	}
}
