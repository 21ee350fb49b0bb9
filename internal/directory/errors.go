package directory

import "errors"

// ErrUnknownSortMode is returned by [ParseSortMode] for unsupported values.
var ErrUnknownSortMode = errors.New("unknown sort mode")
