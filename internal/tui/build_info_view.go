// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/user-directory/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo) string {
	var b strings.Builder

	b.WriteString("Application: User Directory\n")
	b.WriteString("Version: ")
	b.WriteString(valueOr(info.BuildVersion(), "N/A"))
	b.WriteString("\n")
	b.WriteString("Date: ")
	b.WriteString(valueOr(info.BuildDate(), "N/A"))
	b.WriteString("\n")
	b.WriteString("Commit: ")
	b.WriteString(valueOr(info.BuildCommit(), "N/A"))

	return renderPage("ABOUT", b.String(), "esc: back")
}
