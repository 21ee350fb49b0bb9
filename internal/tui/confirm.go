package tui

import (
	"github.com/MKhiriev/user-directory/internal/utils"
	"github.com/MKhiriev/user-directory/models"
)

type confirmModel struct {
	user models.User
}

func (m confirmModel) View() string {
	content := "Delete \"" + utils.StripControl(m.user.Name) + "\" <" + utils.StripControl(m.user.Email) + ">?\n\n"
	content += helpStyle.Render("y yes    n / esc no")
	return overlayBoxStyle.Render(content)
}
