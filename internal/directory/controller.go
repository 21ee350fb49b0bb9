package directory

import (
	"github.com/MKhiriev/user-directory/models"
	"golang.org/x/text/language"
)

// Controller owns the full record set and the current criteria and hands
// out views derived from them.
//
// It is not safe for concurrent use; the owner (a single event loop) calls
// it for every input change. Ordering between events is last write wins.
type Controller struct {
	pipeline    *Pipeline
	initialSort SortMode

	records  []models.User
	criteria Criteria
}

// Option configures a [Controller].
type Option func(*Controller)

// WithLanguage sets the collation language for name sorting.
func WithLanguage(tag language.Tag) Option {
	return func(c *Controller) {
		c.pipeline = NewPipeline(tag)
	}
}

// WithDefaultSort sets the sort mode the controller starts with. Reset
// always returns to [DefaultSort]. Invalid modes are ignored.
func WithDefaultSort(mode SortMode) Option {
	return func(c *Controller) {
		if mode.Valid() {
			c.initialSort = mode
		}
	}
}

// NewController returns a Controller with an empty record set and cleared
// criteria.
func NewController(opts ...Option) *Controller {
	c := &Controller{initialSort: DefaultSort}
	for _, opt := range opts {
		opt(c)
	}
	if c.pipeline == nil {
		c.pipeline = NewPipeline(DefaultLanguage)
	}
	c.criteria = Criteria{Sort: c.initialSort}
	return c
}

// Load replaces the full record set wholesale. The criteria are kept.
// The controller keeps its own copy of records.
func (c *Controller) Load(records []models.User) View {
	c.records = make([]models.User, len(records))
	copy(c.records, records)
	return c.View()
}

// SetSearch changes the search term.
func (c *Controller) SetSearch(term string) View {
	c.criteria.Search = term
	return c.View()
}

// SetSort changes the sort mode. An invalid mode falls back to
// [DefaultSort].
func (c *Controller) SetSort(mode SortMode) View {
	if !mode.Valid() {
		mode = DefaultSort
	}
	c.criteria.Sort = mode
	return c.View()
}

// CycleSort advances to the next sort mode.
func (c *Controller) CycleSort() View {
	return c.SetSort(c.criteria.Sort.Next())
}

// Reset clears the search term and restores [DefaultSort], whatever sort
// the controller started with.
func (c *Controller) Reset() View {
	c.criteria = DefaultCriteria()
	return c.View()
}

// View recomputes the derived view from the current state.
func (c *Controller) View() View {
	return c.pipeline.Apply(c.criteria, c.records)
}

// Criteria returns the current criteria.
func (c *Controller) Criteria() Criteria {
	return c.criteria
}

// Records returns a copy of the full record set.
func (c *Controller) Records() []models.User {
	out := make([]models.User, len(c.records))
	copy(out, c.records)
	return out
}

// Find looks a record up by id in the full record set.
func (c *Controller) Find(id int64) (models.User, bool) {
	for _, u := range c.records {
		if u.ID == id {
			return u, true
		}
	}
	return models.User{}, false
}
