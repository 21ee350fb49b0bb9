package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type noticeKind int

const (
	noticeSuccess noticeKind = iota
	noticeDanger
)

type noticeModel struct {
	text string
	kind noticeKind
	seq  int
}

func (m noticeModel) visible() bool {
	return m.text != ""
}

// show replaces the current notice and schedules its expiry after ttl.
func (m *noticeModel) show(kind noticeKind, text string, ttl time.Duration) tea.Cmd {
	m.seq++
	m.kind = kind
	m.text = text

	if ttl <= 0 {
		return nil
	}
	seq := m.seq
	return tea.Tick(ttl, func(time.Time) tea.Msg {
		return noticeExpiredMsg{seq: seq}
	})
}

func (m *noticeModel) dismiss() {
	m.text = ""
}

func (m *noticeModel) expire(seq int) {
	if seq == m.seq {
		m.dismiss()
	}
}

func (m noticeModel) View() string {
	if !m.visible() {
		return ""
	}
	style := successStyle
	if m.kind == noticeDanger {
		style = dangerStyle
	}
	return style.Render(m.text) + "  " + helpStyle.Render("x dismiss")
}
