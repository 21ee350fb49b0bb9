package tui

import (
	"strconv"

	"github.com/MKhiriev/user-directory/internal/validators"
	"github.com/MKhiriev/user-directory/models"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	formFieldName = iota
	formFieldEmail
)

var formFields = []string{validators.FieldName, validators.FieldEmail}

type formModel struct {
	inputs     []textinput.Model
	focus      int
	editing    bool
	userID     int64
	submitting bool

	// errs holds the inline message per field. A field is touched once
	// focus leaves it; touched fields are revalidated on every change.
	errs    map[string]string
	touched map[string]bool
}

func newFormModel(user *models.User) formModel {
	inputs := make([]textinput.Model, len(formFields))
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 40
		inputs[i].CharLimit = 254
	}
	inputs[formFieldName].Placeholder = "Jane Doe"
	inputs[formFieldEmail].Placeholder = "jane@example.com"
	inputs[formFieldName].Focus()

	m := formModel{
		inputs:  inputs,
		errs:    map[string]string{},
		touched: map[string]bool{},
	}
	if user == nil {
		return m
	}

	m.editing = true
	m.userID = user.ID
	m.inputs[formFieldName].SetValue(user.Name)
	m.inputs[formFieldEmail].SetValue(user.Email)
	return m
}

func (m formModel) input() models.UserInput {
	return models.UserInput{
		Name:  m.inputs[formFieldName].Value(),
		Email: m.inputs[formFieldEmail].Value(),
	}
}

func (m *formModel) move(delta int) tea.Cmd {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + delta + len(m.inputs)) % len(m.inputs)
	return m.inputs[m.focus].Focus()
}

// setErrors replaces the inline messages of the given fields with the
// failures in errs.
func (m *formModel) setErrors(errs map[string]error, fields ...string) {
	if len(fields) == 0 {
		fields = formFields
	}
	for _, f := range fields {
		delete(m.errs, f)
		if err, ok := errs[f]; ok && err != nil {
			m.errs[f] = err.Error()
		}
	}
}

func (m formModel) hasErrors() bool {
	return len(m.errs) > 0
}

func (m formModel) updateInput(msg tea.Msg) (formModel, tea.Cmd, bool) {
	var cmd tea.Cmd
	before := m.inputs[m.focus].Value()
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd, m.inputs[m.focus].Value() != before
}

func (m formModel) View() string {
	title := "New user"
	if m.editing {
		title = "Edit user #" + strconv.FormatInt(m.userID, 10)
	}

	out := titleStyle.Render(title) + "\n\n"
	out += "Name:    [" + m.inputs[formFieldName].View() + "]\n"
	out += fieldErrorLine(m.errs[validators.FieldName])
	out += "E-mail:  [" + m.inputs[formFieldEmail].View() + "]\n"
	out += fieldErrorLine(m.errs[validators.FieldEmail])

	if m.submitting {
		out += "\nsaving...\n"
	}
	out += "\n" + helpStyle.Render("esc cancel  tab next field  enter save")
	return out
}

func fieldErrorLine(msg string) string {
	if msg == "" {
		return "\n"
	}
	return "         " + fieldErrorStyle.Render(msg) + "\n"
}
