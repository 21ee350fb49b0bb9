package tui

import (
	"github.com/MKhiriev/user-directory/models"
)

type usersLoadedMsg struct {
	users []models.User
	err   error
}

type userSavedMsg struct {
	user    models.User
	created bool
	err     error
}

type userDeletedMsg struct {
	id  int64
	err error
}

type copiedMsg struct {
	err error
}

// noticeExpiredMsg carries the sequence number of the notice it was
// scheduled for; newer notices are left alone.
type noticeExpiredMsg struct {
	seq int
}
