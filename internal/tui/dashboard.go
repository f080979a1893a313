package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-waste-tracker/internal/adapter"
	"github.com/MKhiriev/go-waste-tracker/internal/envelope"
	"github.com/MKhiriev/go-waste-tracker/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	resolvingLocation = "resolving..."
	statusTimeout     = 2 * time.Second
	tableHeight       = 15
)

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

// DashboardModel shows the headline counts and the scan events. Locations
// the server has not stored yet are resolved in the background and filled
// in as they arrive.
type DashboardModel struct {
	ctx      context.Context
	adapter  adapter.ServerAdapter
	resolver LocationResolver

	counts    models.DashboardCounts
	events    []models.ScanEvent
	locations map[string]string
	table     table.Model

	loading bool
	status  string
	errMsg  string
}

func NewDashboardModel(ctx context.Context, serverAdapter adapter.ServerAdapter, resolver LocationResolver) *DashboardModel {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Scanned at", Width: 16},
			{Title: "Scanner", Width: 20},
			{Title: "Item", Width: 26},
			{Title: "Qty", Width: 4},
			{Title: "Location", Width: 44},
		}),
		table.WithFocused(true),
		table.WithHeight(tableHeight),
	)

	return &DashboardModel{
		ctx:       ctx,
		adapter:   serverAdapter,
		resolver:  resolver,
		locations: make(map[string]string),
		table:     t,
	}
}

func (m *DashboardModel) Init() tea.Cmd {
	m.loading = true
	return m.cmdLoad()
}

func (m *DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dashboardLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeServerError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.counts = msg.counts
		m.events = msg.events
		m.table.SetRows(m.rows())
		return m, m.cmdResolveLocations()

	case locationResolvedMsg:
		m.locations[msg.eventID] = msg.location
		m.table.SetRows(m.rows())
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("Copy failed: %v", msg.err)
			return m, nil
		}
		m.status = "Copied: " + msg.location
		return m, cmdClearStatus()

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.quit):
			return m, tea.Quit
		case key.Matches(msg, keys.refresh):
			if m.loading {
				return m, nil
			}
			m.loading = true
			m.errMsg = ""
			return m, m.cmdLoad()
		case key.Matches(msg, keys.copy):
			return m, m.cmdCopySelected()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *DashboardModel) View() string {
	var b strings.Builder

	b.WriteString(m.countsView())
	b.WriteString("\n\n")

	switch {
	case m.loading && len(m.events) == 0:
		b.WriteString("Loading...")
	case len(m.events) == 0:
		b.WriteString("No scans recorded yet.")
	default:
		b.WriteString(m.table.View())
	}

	if m.status != "" {
		b.WriteString("\n\n")
		b.WriteString(statusStyle.Render(m.status))
	}
	if m.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
	}

	return renderPage("WASTE TRACKER DASHBOARD", b.String(), "↑/↓: select │ c: copy location │ r: refresh │ q: quit")
}

func (m *DashboardModel) countsView() string {
	c := m.counts
	return fmt.Sprintf(
		"Scanners %d (%d verified) │ Products %d (%d international, %d local) │ Manufacturers %d │ Scans %d (%d today)",
		c.Scanners, c.VerifiedScanners, c.Products, c.InternationalProducts, c.LocalProducts, c.Manufacturers, c.Scans, c.ScansToday,
	)
}

func (m *DashboardModel) rows() []table.Row {
	rows := make([]table.Row, 0, len(m.events))
	for _, event := range m.events {
		location, _ := m.location(event)
		rows = append(rows, table.Row{
			event.ScannedAt.Local().Format("2006-01-02 15:04"),
			fitText(scannerName(event), 20),
			fitText(itemName(event), 26),
			fmt.Sprintf("%d", event.Quantity),
			fitText(location, 44),
		})
	}
	return rows
}

// location returns the display location of event and whether it is final.
func (m *DashboardModel) location(event models.ScanEvent) (string, bool) {
	if event.Location != nil && *event.Location != "" {
		return *event.Location, true
	}
	if needsLookup(event) {
		if location, ok := m.locations[event.ID]; ok {
			return location, true
		}
		return resolvingLocation, false
	}
	return envelope.EditedData, true
}

// needsLookup reports whether the event has no stored location and readable
// coordinates.
func needsLookup(event models.ScanEvent) bool {
	return (event.Location == nil || *event.Location == "") &&
		event.Latitude != envelope.EditedData && event.Longitude != envelope.EditedData
}

func (m *DashboardModel) cmdLoad() tea.Cmd {
	ctx := m.ctx
	serverAdapter := m.adapter

	return func() tea.Msg {
		counts, err := serverAdapter.DashboardCounts(ctx)
		if err != nil {
			return dashboardLoadedMsg{err: err}
		}
		events, err := serverAdapter.ScanEvents(ctx, "", "")
		if err != nil {
			return dashboardLoadedMsg{err: err}
		}
		return dashboardLoadedMsg{counts: counts, events: events}
	}
}

// cmdResolveLocations issues one resolve per unresolved event. The resolver
// batches them and shares lookups for equal coordinates.
func (m *DashboardModel) cmdResolveLocations() tea.Cmd {
	var cmds []tea.Cmd
	for _, event := range m.events {
		if _, resolved := m.locations[event.ID]; resolved || !needsLookup(event) {
			continue
		}
		cmds = append(cmds, m.cmdResolve(event))
	}
	return tea.Batch(cmds...)
}

func (m *DashboardModel) cmdResolve(event models.ScanEvent) tea.Cmd {
	ctx := m.ctx
	resolver := m.resolver

	return func() tea.Msg {
		return locationResolvedMsg{
			eventID:  event.ID,
			location: resolver.Resolve(ctx, event.Latitude, event.Longitude),
		}
	}
}

func (m *DashboardModel) cmdCopySelected() tea.Cmd {
	cursor := m.table.Cursor()
	if cursor < 0 || cursor >= len(m.events) {
		return nil
	}

	location, final := m.location(m.events[cursor])
	if !final {
		m.status = "Location is still being resolved"
		return cmdClearStatus()
	}

	return func() tea.Msg {
		if err := writeClipboard(location); err != nil {
			return copiedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{location: location}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func scannerName(event models.ScanEvent) string {
	if event.Scanner == nil {
		return event.ScannerID
	}
	return strings.TrimSpace(event.Scanner.Firstname + " " + event.Scanner.Lastname)
}

func itemName(event models.ScanEvent) string {
	switch {
	case event.Product != nil:
		if event.Product.Name != nil && *event.Product.Name != "" {
			return *event.Product.Name
		}
		return event.Product.Barcode
	case event.Manufacturer != nil:
		return valueOrDash(event.Manufacturer.Name) + " (" + event.Manufacturer.Barcode + ")"
	default:
		return "-"
	}
}
