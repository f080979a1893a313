package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-waste-tracker/internal/adapter"
	"github.com/MKhiriev/go-waste-tracker/internal/logger"
	"github.com/MKhiriev/go-waste-tracker/models"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUserQuit = errors.New("user quit the program")

// LocationResolver turns a coordinate pair into a display location.
type LocationResolver interface {
	Resolve(ctx context.Context, lat, lon string) string
}

type TUI struct {
	adapter   adapter.ServerAdapter
	resolver  LocationResolver
	buildInfo models.AppBuildInfo

	logger *logger.Logger
}

func New(serverAdapter adapter.ServerAdapter, resolver LocationResolver, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	if serverAdapter == nil || resolver == nil {
		return nil, errors.New("tui needs a server adapter and a location resolver")
	}
	return &TUI{
		adapter:   serverAdapter,
		resolver:  resolver,
		buildInfo: buildInfo,
		logger:    logger,
	}, nil
}

// Run shows the login screen and then the dashboard until the user quits.
func (t *TUI) Run(ctx context.Context) error {
	pages := map[string]tea.Model{
		pageLogin:     NewLoginModel(ctx, t.adapter),
		pageDashboard: NewDashboardModel(ctx, t.adapter, t.resolver),
	}

	root := NewRootModel(pages, pageLogin, t.buildInfo)
	finalModel, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		t.logger.Debug().Msg("dashboard closed by user")
		return ErrUserQuit
	}

	return nil
}
