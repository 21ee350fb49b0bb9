package directory

import (
	"fmt"

	"github.com/MKhiriev/user-directory/models"
)

// Action is an affordance offered for a single row.
type Action string

const (
	ActionDetails Action = "details"
	ActionEdit    Action = "edit"
	ActionDelete  Action = "delete"
)

// rowActions is shared by every row; Rows copies it per row.
var rowActions = []Action{ActionDetails, ActionEdit, ActionDelete}

// Row is a render-ready descriptor of one record. Field values are raw
// text; escaping for the output medium is the renderer's job.
type Row struct {
	ID      int64
	Name    string
	Email   string
	Created string
	Actions []Action
}

// View is the filtered and sorted projection of the full record set.
type View struct {
	// Records is the ordered subset of the full set satisfying Criteria.
	Records []models.User

	// Total is the size of the full record set the view was derived from.
	Total int

	// Criteria is the normalized criteria the view was derived with.
	Criteria Criteria
}

// Shown is the number of records in the view.
func (v View) Shown() int {
	return len(v.Records)
}

// Empty reports whether the view holds no records.
func (v View) Empty() bool {
	return len(v.Records) == 0
}

// Summary is the count line for the view, see [Summarize].
func (v View) Summary() string {
	return Summarize(v.Total, v.Shown())
}

// Placeholder returns the empty-state text: one for an empty directory,
// another when the search term filtered everything out. It is empty when
// the view has records.
func (v View) Placeholder() string {
	switch {
	case !v.Empty():
		return ""
	case v.Total == 0:
		return "No users yet"
	default:
		return fmt.Sprintf("No users match %q", v.Criteria.Search)
	}
}

// Rows converts the view into row descriptors in view order.
func (v View) Rows() []Row {
	rows := make([]Row, 0, len(v.Records))
	for _, u := range v.Records {
		actions := make([]Action, len(rowActions))
		copy(actions, rowActions)

		rows = append(rows, Row{
			ID:      u.ID,
			Name:    u.Name,
			Email:   u.Email,
			Created: u.CreatedAt.String(),
			Actions: actions,
		})
	}
	return rows
}

// Summarize returns "N total" when every record is shown and
// "M of N shown" otherwise.
func Summarize(total, shown int) string {
	if total == shown {
		return fmt.Sprintf("%d total", total)
	}
	return fmt.Sprintf("%d of %d shown", shown, total)
}
