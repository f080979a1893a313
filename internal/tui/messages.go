package tui

import (
	"github.com/MKhiriev/go-waste-tracker/models"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	pageLogin     = "login"
	pageDashboard = "dashboard"
)

// NavigateTo switches [RootModel] to another page. A non-nil Payload is
// delivered to the new page instead of calling its Init.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// LoginResult is produced by the login page once the server answered.
type LoginResult struct {
	Admin models.Admin
	Err   error
}

type dashboardLoadedMsg struct {
	counts models.DashboardCounts
	events []models.ScanEvent
	err    error
}

type locationResolvedMsg struct {
	eventID  string
	location string
}

type copiedMsg struct {
	location string
	err      error
}

type clearStatusMsg struct{}
