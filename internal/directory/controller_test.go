package directory

import (
	"testing"

	"github.com/MKhiriev/user-directory/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestController_LoadKeepsCriteria(t *testing.T) {
	c := NewController()
	c.SetSearch("boris")

	view := c.Load(sampleUsers())

	assert.Equal(t, []int64{2}, ids(view.Records))
	assert.Equal(t, "1 of 5 shown", view.Summary())
	assert.Equal(t, "boris", c.Criteria().Search)
}

func TestController_LoadCopiesRecords(t *testing.T) {
	records := sampleUsers()
	c := NewController()
	c.Load(records)

	records[0].Name = "changed"

	got, ok := c.Find(1)
	require.True(t, ok)
	assert.Equal(t, "Anna Petrova", got.Name)

	copied := c.Records()
	copied[0].Name = "changed again"
	got, _ = c.Find(1)
	assert.Equal(t, "Anna Petrova", got.Name)
}

func TestController_SummaryScenarios(t *testing.T) {
	c := NewController()

	assert.Equal(t, "0 total", c.View().Summary())
	assert.Equal(t, "No users yet", c.View().Placeholder())

	view := c.Load(sampleUsers())
	assert.Equal(t, "5 total", view.Summary())
	assert.Empty(t, view.Placeholder())

	view = c.SetSearch("example")
	assert.Equal(t, "3 of 5 shown", view.Summary())

	view = c.SetSearch("xyz")
	assert.True(t, view.Empty())
	assert.Equal(t, "0 of 5 shown", view.Summary())
	assert.Equal(t, `No users match "xyz"`, view.Placeholder())
}

func TestController_ResetRestoresFullSortedSet(t *testing.T) {
	c := NewController()
	c.Load(sampleUsers())
	c.SetSort(SortNameDesc)
	c.SetSearch("xyz")

	view := c.Reset()

	assert.Equal(t, DefaultCriteria(), c.Criteria())
	assert.Equal(t, []int64{3, 1, 5, 2, 4}, ids(view.Records))
	assert.Equal(t, "5 total", view.Summary())
}

func TestController_ConfiguredSortIsInitialOnly(t *testing.T) {
	c := NewController(WithDefaultSort(SortNameAsc))
	c.Load(sampleUsers())

	assert.Equal(t, SortNameAsc, c.Criteria().Sort)

	c.SetSearch("xyz")
	view := c.Reset()

	assert.Equal(t, DefaultCriteria(), view.Criteria)
	assert.Equal(t, SortNewest, c.Criteria().Sort)
	assert.Equal(t, []int64{3, 1, 5, 2, 4}, ids(view.Records))
}

func TestController_InvalidSortFallsBackToNewest(t *testing.T) {
	c := NewController(WithDefaultSort(SortEmailAsc))
	c.Load(sampleUsers())

	view := c.SetSort("bogus")
	assert.Equal(t, SortNewest, view.Criteria.Sort)
}

func TestController_InvalidDefaultSortIgnored(t *testing.T) {
	c := NewController(WithDefaultSort("bogus"))

	assert.Equal(t, DefaultSort, c.Criteria().Sort)
}

func TestController_CycleSortVisitsEveryMode(t *testing.T) {
	c := NewController()
	seen := map[SortMode]bool{c.Criteria().Sort: true}

	for range len(SortModes()) - 1 {
		seen[c.CycleSort().Criteria.Sort] = true
	}
	assert.Len(t, seen, len(SortModes()))

	assert.Equal(t, DefaultSort, c.CycleSort().Criteria.Sort)
}

func TestController_WithLanguage(t *testing.T) {
	c := NewController(WithLanguage(language.English), WithDefaultSort(SortNameAsc))

	view := c.Load([]models.User{
		user(1, "bob", "", at(1)),
		user(2, "Alice", "", at(1)),
	})

	assert.Equal(t, []int64{2, 1}, ids(view.Records))
}

func TestController_Find(t *testing.T) {
	c := NewController()
	c.Load(sampleUsers())

	u, ok := c.Find(3)
	require.True(t, ok)
	assert.Equal(t, "Ольга", u.Name)

	_, ok = c.Find(42)
	assert.False(t, ok)
}

func TestView_Rows(t *testing.T) {
	view := Apply(Criteria{Sort: SortOldest}, sampleUsers())

	rows := view.Rows()
	require.Len(t, rows, 5)

	assert.Equal(t, int64(4), rows[0].ID)
	assert.Empty(t, rows[0].Created, "missing timestamp renders empty")
	assert.Equal(t, []Action{ActionDetails, ActionEdit, ActionDelete}, rows[0].Actions)

	rows[0].Actions[0] = ActionDelete
	assert.Equal(t, ActionDetails, rows[1].Actions[0])
}

func TestSummarize(t *testing.T) {
	tests := []struct {
		total, shown int
		want         string
	}{
		{total: 5, shown: 5, want: "5 total"},
		{total: 5, shown: 2, want: "2 of 5 shown"},
		{total: 0, shown: 0, want: "0 total"},
		{total: 3, shown: 0, want: "0 of 3 shown"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Summarize(tt.total, tt.shown))
	}
}

func TestParseSortMode(t *testing.T) {
	tests := []struct {
		in      string
		want    SortMode
		wantErr bool
	}{
		{in: "", want: SortNewest},
		{in: "  ", want: SortNewest},
		{in: "oldest", want: SortOldest},
		{in: "NAME_ASC", want: SortNameAsc},
		{in: " name_desc ", want: SortNameDesc},
		{in: "email_asc", want: SortEmailAsc},
		{in: "created", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSortMode(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnknownSortMode)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSortMode_Label(t *testing.T) {
	assert.Equal(t, "name Z-A", SortNameDesc.Label())
	assert.Equal(t, "newest first", SortMode("bogus").Label())
	assert.Equal(t, SortNewest, SortMode("bogus").Next())
	assert.Equal(t, SortNewest, SortEmailAsc.Next())
}
