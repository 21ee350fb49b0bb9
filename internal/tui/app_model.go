package tui

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/user-directory/internal/adapter"
	"github.com/MKhiriev/user-directory/internal/app"
	"github.com/MKhiriev/user-directory/internal/config"
	"github.com/MKhiriev/user-directory/internal/directory"
	"github.com/MKhiriev/user-directory/internal/logger"
	"github.com/MKhiriev/user-directory/internal/service"
	"github.com/MKhiriev/user-directory/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

type screen int

const (
	screenList screen = iota
	screenForm
	screenInfo
)

type appModel struct {
	ctx           context.Context
	services      service.ClientUserService
	buildInfo     models.AppBuildInfo
	noticeTTL     time.Duration
	currentScreen screen

	list   listModel
	form   formModel
	detail detailModel
	notice noticeModel

	showDetail  bool
	showConfirm bool
	confirm     confirmModel

	writeClipboard func(string) error

	logger *logger.Logger
}

func newAppModel(ctx context.Context, services service.ClientUserService, cfg config.ClientView, buildInfo models.AppBuildInfo, logger *logger.Logger) appModel {
	controller := directory.NewController(
		directory.WithLanguage(cfg.Language),
		directory.WithDefaultSort(cfg.DefaultSort),
	)

	return appModel{
		ctx:            ctx,
		services:       services,
		buildInfo:      buildInfo,
		noticeTTL:      cfg.NoticeTTL,
		currentScreen:  screenList,
		list:           newListModel(controller),
		writeClipboard: clipboard.WriteAll,
		logger:         logger,
	}
}

func (m appModel) Init() tea.Cmd {
	return tea.Batch(m.list.spinner.Tick, m.cmdLoadUsers())
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.updateKey(msg)
	case tea.WindowSizeMsg:
		m.list.resize(msg.Height)
		return m, nil
	case spinner.TickMsg:
		if !m.list.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.list.spinner, cmd = m.list.spinner.Update(msg)
		return m, cmd
	case usersLoadedMsg:
		m.list.loading = false
		if msg.err != nil {
			return m, m.notify(noticeDanger, service.UserMessage(msg.err))
		}
		m.list.load(msg.users)
		return m, nil
	case userSavedMsg:
		return m.handleSaved(msg)
	case userDeletedMsg:
		if msg.err != nil {
			cmd := m.notify(noticeDanger, service.UserMessage(msg.err))
			if errors.Is(msg.err, adapter.ErrNotFound) {
				return m, tea.Batch(cmd, m.startLoading())
			}
			return m, cmd
		}
		return m, tea.Batch(m.notify(noticeSuccess, app.UIMsgUserDeleted), m.startLoading())
	case copiedMsg:
		if msg.err != nil {
			m.logger.Warn().Err(msg.err).Msg("clipboard write failed")
			return m, m.notify(noticeDanger, app.UIMsgClipboardFailed)
		}
		return m, m.notify(noticeSuccess, app.UIMsgEmailCopied)
	case noticeExpiredMsg:
		m.notice.expire(msg.seq)
		return m, nil
	}

	// cursor blink and similar input-internal messages
	var cmd tea.Cmd
	switch {
	case m.currentScreen == screenForm:
		m.form, cmd, _ = m.form.updateInput(msg)
	case m.list.searching:
		m.list.search, cmd = m.list.search.Update(msg)
	}
	return m, cmd
}

func (m appModel) handleSaved(msg userSavedMsg) (tea.Model, tea.Cmd) {
	m.form.submitting = false
	if msg.err != nil {
		var validationErr *service.ValidationError
		if errors.As(msg.err, &validationErr) {
			m.form.setErrors(validationErr.Fields)
			return m, nil
		}

		cmd := m.notify(noticeDanger, service.UserMessage(msg.err))
		if errors.Is(msg.err, adapter.ErrNotFound) {
			m.currentScreen = screenList
			return m, tea.Batch(cmd, m.startLoading())
		}
		return m, cmd
	}

	m.currentScreen = screenList
	text := app.UIMsgUserUpdated
	if msg.created {
		text = app.UIMsgUserCreated
	}
	return m, tea.Batch(m.notify(noticeSuccess, text), m.startLoading())
}

func (m appModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.kill) {
		return m, tea.Quit
	}

	if m.showConfirm {
		switch {
		case key.Matches(msg, keys.yes):
			m.showConfirm = false
			m.showDetail = false
			return m, m.cmdDeleteUser(m.confirm.user.ID)
		case key.Matches(msg, keys.no), key.Matches(msg, keys.esc):
			m.showConfirm = false
		}
		return m, nil
	}

	if m.showDetail {
		return m.updateDetail(msg)
	}

	switch m.currentScreen {
	case screenForm:
		return m.updateForm(msg)
	case screenInfo:
		if key.Matches(msg, keys.esc) || key.Matches(msg, keys.enter) {
			m.currentScreen = screenList
		}
		return m, nil
	}

	if m.list.searching {
		if key.Matches(msg, keys.esc) || key.Matches(msg, keys.enter) {
			m.list.blurSearch()
			return m, nil
		}
		var cmd tea.Cmd
		m.list, cmd = m.list.updateSearch(msg)
		return m, cmd
	}

	return m.updateList(msg)
}

func (m appModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.dismiss):
		m.notice.dismiss()
		return m, nil
	case key.Matches(msg, keys.search):
		return m, m.list.focusSearch()
	case key.Matches(msg, keys.sort):
		m.list.cycleSort()
		return m, nil
	case key.Matches(msg, keys.reset):
		m.list.reset()
		return m, nil
	case key.Matches(msg, keys.reload):
		if m.list.loading {
			return m, nil
		}
		return m, m.startLoading()
	case key.Matches(msg, keys.newItem):
		return m, m.openForm(nil)
	case key.Matches(msg, keys.info):
		m.currentScreen = screenInfo
		return m, nil
	}

	user, ok := m.list.current()
	switch {
	case key.Matches(msg, keys.enter):
		if ok {
			m.detail = detailModel{user: user}
			m.showDetail = true
		}
		return m, nil
	case key.Matches(msg, keys.edit):
		if ok {
			return m, m.openForm(&user)
		}
		return m, nil
	case key.Matches(msg, keys.delete):
		if ok {
			m.confirm = confirmModel{user: user}
			m.showConfirm = true
		}
		return m, nil
	case key.Matches(msg, keys.copy):
		if ok {
			return m, m.cmdCopy(user.Email)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.list.table, cmd = m.list.table.Update(msg)
	return m, cmd
}

func (m appModel) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	user := m.detail.user
	switch {
	case key.Matches(msg, keys.esc), key.Matches(msg, keys.enter):
		m.showDetail = false
	case key.Matches(msg, keys.copy):
		return m, m.cmdCopy(user.Email)
	case key.Matches(msg, keys.edit):
		m.showDetail = false
		return m, m.openForm(&user)
	case key.Matches(msg, keys.delete):
		m.confirm = confirmModel{user: user}
		m.showConfirm = true
	case key.Matches(msg, keys.dismiss):
		m.notice.dismiss()
	}
	return m, nil
}

func (m appModel) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.form.submitting {
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.esc):
		m.currentScreen = screenList
		return m, nil
	case key.Matches(msg, keys.enter):
		input := m.form.input()
		for _, f := range formFields {
			m.form.touched[f] = true
		}
		m.form.setErrors(m.services.Validate(m.ctx, input))
		if m.form.hasErrors() {
			return m, nil
		}
		m.form.submitting = true
		return m, m.cmdSaveUser(m.form.editing, m.form.userID, input)
	case key.Matches(msg, keys.tab):
		m.touchFocused()
		return m, m.form.move(1)
	case key.Matches(msg, keys.backtab):
		m.touchFocused()
		return m, m.form.move(-1)
	}

	var (
		cmd     tea.Cmd
		changed bool
	)
	m.form, cmd, changed = m.form.updateInput(msg)
	if field := formFields[m.form.focus]; changed && m.form.touched[field] {
		m.form.setErrors(m.services.Validate(m.ctx, m.form.input(), field), field)
	}
	return m, cmd
}

// touchFocused marks the focused field as touched and validates it.
func (m *appModel) touchFocused() {
	field := formFields[m.form.focus]
	m.form.touched[field] = true
	m.form.setErrors(m.services.Validate(m.ctx, m.form.input(), field), field)
}

func (m *appModel) openForm(user *models.User) tea.Cmd {
	m.form = newFormModel(user)
	m.currentScreen = screenForm
	return m.form.inputs[m.form.focus].Focus()
}

func (m *appModel) notify(kind noticeKind, text string) tea.Cmd {
	return m.notice.show(kind, text, m.noticeTTL)
}

// startLoading fetches the directory again. A new spinner tick loop is
// started only when no load is in flight.
func (m *appModel) startLoading() tea.Cmd {
	if m.list.loading {
		return m.cmdLoadUsers()
	}
	m.list.loading = true
	return tea.Batch(m.list.spinner.Tick, m.cmdLoadUsers())
}

func (m appModel) cmdLoadUsers() tea.Cmd {
	ctx, services := m.ctx, m.services
	return func() tea.Msg {
		users, err := services.List(ctx)
		return usersLoadedMsg{users: users, err: err}
	}
}

func (m appModel) cmdSaveUser(editing bool, id int64, input models.UserInput) tea.Cmd {
	ctx, services := m.ctx, m.services
	return func() tea.Msg {
		if editing {
			user, err := services.Update(ctx, id, input)
			return userSavedMsg{user: user, err: err}
		}
		user, err := services.Create(ctx, input)
		return userSavedMsg{user: user, created: true, err: err}
	}
}

func (m appModel) cmdDeleteUser(id int64) tea.Cmd {
	ctx, services := m.ctx, m.services
	return func() tea.Msg {
		return userDeletedMsg{id: id, err: services.Delete(ctx, id)}
	}
}

func (m appModel) cmdCopy(text string) tea.Cmd {
	write := m.writeClipboard
	return func() tea.Msg {
		return copiedMsg{err: write(text)}
	}
}

func (m appModel) View() string {
	var body string
	switch m.currentScreen {
	case screenList:
		body = m.list.View()
	case screenForm:
		body = m.form.View()
	case screenInfo:
		body = renderBuildInfoWindow(m.buildInfo)
	}

	if m.showDetail {
		body += "\n\n" + m.detail.View()
	}
	if m.showConfirm {
		body += "\n\n" + m.confirm.View()
	}
	if m.notice.visible() {
		body += "\n\n" + m.notice.View()
	}
	if m.currentScreen == screenList && !m.showDetail && !m.showConfirm {
		body += "\n\n" + helpStyle.Render(m.list.help())
	}

	return appStyle.Render(body)
}
