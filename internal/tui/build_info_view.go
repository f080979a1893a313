// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-waste-tracker/models"
)

// renderBuildInfoWindow shows the linker-injected build metadata of the
// dashboard binary.
func renderBuildInfoWindow(info models.AppBuildInfo) string {
	rows := [][2]string{
		{"Application", "go-waste-tracker dashboard"},
		{"Version", info.BuildVersion()},
		{"Build date", info.BuildDate()},
		{"Commit", info.BuildCommit()},
	}

	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		value := strings.TrimSpace(row[1])
		if value == "" {
			value = "N/A"
		}
		lines = append(lines, fmt.Sprintf("%-12s %s", row[0]+":", value))
	}

	return renderPage("ABOUT", strings.Join(lines, "\n"), "esc: back")
}
