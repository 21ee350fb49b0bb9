package tui

import (
	"strconv"

	"github.com/MKhiriev/user-directory/internal/directory"
	"github.com/MKhiriev/user-directory/internal/utils"
	"github.com/MKhiriev/user-directory/models"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	minTableHeight = 5
	// rows taken by everything around the table: title, search, summary,
	// notice, help and padding.
	listChromeHeight = 12
)

var listColumns = []table.Column{
	{Title: "ID", Width: 6},
	{Title: "NAME", Width: 24},
	{Title: "EMAIL", Width: 32},
	{Title: "CREATED", Width: 19},
}

type listModel struct {
	controller *directory.Controller
	view       directory.View

	table     table.Model
	search    textinput.Model
	searching bool

	loading bool
	loaded  bool
	spinner spinner.Model
}

func newListModel(controller *directory.Controller) listModel {
	t := table.New(
		table.WithColumns(listColumns),
		table.WithFocused(true),
		table.WithHeight(minTableHeight*2),
	)

	search := textinput.New()
	search.Prompt = "/ "
	search.Placeholder = "search by name or e-mail"
	search.CharLimit = 100
	search.Width = 40

	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return listModel{
		controller: controller,
		view:       controller.View(),
		table:      t,
		search:     search,
		spinner:    s,
		loading:    true,
	}
}

// apply shows v, keeping the cursor on the same record when it is still
// visible.
func (m *listModel) apply(v directory.View) {
	selected, hadSelection := m.current()
	m.view = v

	rows := make([]table.Row, 0, len(v.Records))
	cursor := 0
	for i, r := range v.Rows() {
		rows = append(rows, table.Row{
			strconv.FormatInt(r.ID, 10),
			utils.StripControl(r.Name),
			utils.StripControl(r.Email),
			valueOr(r.Created, "-"),
		})
		if hadSelection && r.ID == selected.ID {
			cursor = i
		}
	}
	m.table.SetRows(rows)
	m.table.SetCursor(cursor)
}

func (m listModel) current() (models.User, bool) {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.view.Records) {
		return models.User{}, false
	}
	return m.view.Records[idx], true
}

func (m *listModel) load(users []models.User) {
	m.loading = false
	m.loaded = true
	m.apply(m.controller.Load(users))
}

func (m *listModel) setSearch(term string) {
	m.apply(m.controller.SetSearch(term))
}

func (m *listModel) cycleSort() {
	m.apply(m.controller.CycleSort())
}

func (m *listModel) reset() {
	m.search.SetValue("")
	m.apply(m.controller.Reset())
}

func (m *listModel) focusSearch() tea.Cmd {
	m.searching = true
	m.table.Blur()
	return m.search.Focus()
}

func (m *listModel) blurSearch() {
	m.searching = false
	m.search.Blur()
	m.table.Focus()
}

func (m *listModel) resize(height int) {
	h := height - listChromeHeight
	if h < minTableHeight {
		h = minTableHeight
	}
	m.table.SetHeight(h)
}

func (m listModel) updateSearch(msg tea.Msg) (listModel, tea.Cmd) {
	var cmd tea.Cmd
	before := m.search.Value()
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() != before {
		m.setSearch(m.search.Value())
	}
	return m, cmd
}

func (m listModel) View() string {
	header := titleStyle.Render("User Directory")
	if m.loading {
		header += "  " + m.spinner.View() + " loading..."
	}
	out := header + "\n\n"

	if m.searching || m.search.Value() != "" {
		out += m.search.View() + "\n\n"
	}

	switch {
	case !m.loaded && m.loading:
	case m.view.Empty():
		out += helpStyle.Render(m.view.Placeholder()) + "\n"
	default:
		out += m.table.View() + "\n"
	}

	if m.loaded {
		out += "\n" + m.view.Summary() + "  " + helpStyle.Render("sort: "+m.view.Criteria.Sort.Label())
	}
	return out
}

func (m listModel) help() string {
	if m.searching {
		return "type to filter  enter / esc leave search"
	}
	return "/ search  s sort  ctrl+r reset  r reload  n new  e edit  d delete  enter details  c copy e-mail  i about"
}
