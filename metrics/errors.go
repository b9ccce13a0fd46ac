package metrics

import (
	"errors"
)

// Common loader errors
var (
	ErrSourceNotFound = errors.New("metrics CSV file not found")
)

// IsSourceNotFound reports whether err means the primary CSV does not exist.
func IsSourceNotFound(err error) bool {
	return errors.Is(err, ErrSourceNotFound)
}
