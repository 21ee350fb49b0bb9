package directory

import (
	"fmt"
	"strings"
)

// SortMode selects the ordering of a [View].
type SortMode string

const (
	// SortNewest orders by creation time, most recent first. Default.
	SortNewest SortMode = "newest"
	// SortOldest orders by creation time, oldest first.
	SortOldest SortMode = "oldest"
	// SortNameAsc orders by name using locale-aware collation.
	SortNameAsc SortMode = "name_asc"
	// SortNameDesc is the reverse of SortNameAsc.
	SortNameDesc SortMode = "name_desc"
	// SortEmailAsc orders by e-mail, byte-wise.
	SortEmailAsc SortMode = "email_asc"
)

// DefaultSort is the mode restored by a reset.
const DefaultSort = SortNewest

// sortModes is the cycling order used by [SortMode.Next].
var sortModes = []SortMode{SortNewest, SortOldest, SortNameAsc, SortNameDesc, SortEmailAsc}

var sortLabels = map[SortMode]string{
	SortNewest:   "newest first",
	SortOldest:   "oldest first",
	SortNameAsc:  "name A-Z",
	SortNameDesc: "name Z-A",
	SortEmailAsc: "e-mail A-Z",
}

// SortModes returns all supported modes in cycling order.
func SortModes() []SortMode {
	out := make([]SortMode, len(sortModes))
	copy(out, sortModes)
	return out
}

// ParseSortMode converts s (case-insensitive) to a SortMode. An empty string
// yields [DefaultSort].
func ParseSortMode(s string) (SortMode, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return DefaultSort, nil
	}

	for _, m := range sortModes {
		if string(m) == s {
			return m, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownSortMode, s)
}

// Valid reports whether m is one of the supported modes.
func (m SortMode) Valid() bool {
	_, ok := sortLabels[m]
	return ok
}

// Label is the human-readable name of m.
func (m SortMode) Label() string {
	if l, ok := sortLabels[m]; ok {
		return l
	}
	return sortLabels[DefaultSort]
}

// Next returns the mode following m in cycling order. Unknown modes map to
// the first one.
func (m SortMode) Next() SortMode {
	for i, mode := range sortModes {
		if mode == m {
			return sortModes[(i+1)%len(sortModes)]
		}
	}
	return sortModes[0]
}

// Criteria is the search term and sort mode pair the view is derived from.
type Criteria struct {
	// Search is matched case-insensitively as a substring of name or e-mail.
	// An empty (or blank) term matches everything.
	Search string

	// Sort selects ordering. The zero value behaves as DefaultSort.
	Sort SortMode
}

// DefaultCriteria returns cleared criteria: no search term, default sort.
func DefaultCriteria() Criteria {
	return Criteria{Sort: DefaultSort}
}

// normalized returns c with an unknown sort mode replaced by the default
// and the search term trimmed.
func (c Criteria) normalized() Criteria {
	if !c.Sort.Valid() {
		c.Sort = DefaultSort
	}
	c.Search = strings.TrimSpace(c.Search)
	return c
}
