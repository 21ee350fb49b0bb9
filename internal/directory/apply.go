package directory

import (
	"slices"
	"strings"
	"sync"

	"github.com/MKhiriev/user-directory/models"
	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// DefaultLanguage is the collation language used when none is configured.
var DefaultLanguage = language.Russian

// Pipeline derives views from a record set and criteria.
//
// It owns a collator and a case folder for its language; both are stateful,
// so calls are serialized with a mutex. A Pipeline is safe for concurrent
// use but the derived views are meant to be consumed by a single owner.
type Pipeline struct {
	mu       sync.Mutex
	collator *collate.Collator
	folder   cases.Caser
}

// NewPipeline returns a Pipeline collating names according to tag.
func NewPipeline(tag language.Tag) *Pipeline {
	return &Pipeline{
		collator: collate.New(tag),
		folder:   cases.Fold(),
	}
}

// Apply is a convenience wrapper that runs a fresh Pipeline for
// [DefaultLanguage].
func Apply(criteria Criteria, records []models.User) View {
	return NewPipeline(DefaultLanguage).Apply(criteria, records)
}

// Apply filters records by the search term and orders the result according
// to the sort mode. records is never modified; the returned view holds a
// new slice.
//
// Records without a valid creation time are treated as the oldest ones:
// they come last under SortNewest and first under SortOldest. Records that
// compare equal keep their relative input order.
func (p *Pipeline) Apply(criteria Criteria, records []models.User) View {
	p.mu.Lock()
	defer p.mu.Unlock()

	criteria = criteria.normalized()

	matched := make([]models.User, 0, len(records))
	term := p.folder.String(criteria.Search)
	for _, u := range records {
		if term == "" || p.matches(u, term) {
			matched = append(matched, u)
		}
	}

	slices.SortStableFunc(matched, p.compareFunc(criteria.Sort))

	return View{
		Records:  matched,
		Total:    len(records),
		Criteria: criteria,
	}
}

func (p *Pipeline) matches(u models.User, foldedTerm string) bool {
	return strings.Contains(p.folder.String(u.Name), foldedTerm) ||
		strings.Contains(p.folder.String(u.Email), foldedTerm)
}

func (p *Pipeline) compareFunc(mode SortMode) func(a, b models.User) int {
	switch mode {
	case SortOldest:
		return func(a, b models.User) int {
			return compareCreated(a, b)
		}
	case SortNameAsc:
		return func(a, b models.User) int {
			return p.collator.CompareString(a.Name, b.Name)
		}
	case SortNameDesc:
		return func(a, b models.User) int {
			return p.collator.CompareString(b.Name, a.Name)
		}
	case SortEmailAsc:
		return func(a, b models.User) int {
			return strings.Compare(a.Email, b.Email)
		}
	default:
		return func(a, b models.User) int {
			return compareCreated(b, a)
		}
	}
}

// compareCreated orders a before b when a was created earlier.
func compareCreated(a, b models.User) int {
	switch {
	case a.CreatedAt.Before(b.CreatedAt):
		return -1
	case b.CreatedAt.Before(a.CreatedAt):
		return 1
	default:
		return 0
	}
}
