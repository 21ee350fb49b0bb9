package tui

import (
	"fmt"

	"github.com/MKhiriev/user-directory/internal/utils"
	"github.com/MKhiriev/user-directory/models"
)

const notSpecified = "not specified"

type detailModel struct {
	user models.User
}

func (m detailModel) View() string {
	created := notSpecified
	if m.user.CreatedAt.Valid {
		created = m.user.CreatedAt.String()
	}

	out := fmt.Sprintf("ID:       %d\n", m.user.ID)
	out += fmt.Sprintf("Name:     %s\n", utils.StripControl(m.user.Name))
	out += fmt.Sprintf("E-mail:   %s\n", utils.StripControl(m.user.Email))
	out += fmt.Sprintf("Created:  %s", created)

	return overlayBoxStyle.Render(titleStyle.Render("User details") + "\n\n" + out + "\n\n" +
		helpStyle.Render("c copy e-mail  e edit  d delete  esc / enter close"))
}
