package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/go-waste-tracker/internal/config"
	"github.com/MKhiriev/go-waste-tracker/internal/logger"
	"github.com/MKhiriev/go-waste-tracker/internal/utils"
	"github.com/MKhiriev/go-waste-tracker/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the HTTP implementation of [ServerAdapter].
// The address may omit the scheme, "http://" is assumed.
func NewHTTPServerAdapter(cfg config.Adapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(
		utils.WithBaseURL(baseURL),
		utils.WithTimeout(cfg.RequestTimeout),
	)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Login posts the credentials to POST /api/admin/login. The token is taken
// from the Authorization header, or from the body when the header is absent.
func (h *httpServerAdapter) Login(ctx context.Context, credentials models.Credentials) (models.Admin, error) {
	var login models.LoginResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(credentials).
		SetResult(&login).
		Post("/api/admin/login")
	if err != nil {
		return models.Admin{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Admin{}, err
	}

	token := login.Token
	if header := resp.Header().Get("Authorization"); header != "" {
		if token, err = utils.ParseBearerToken(header); err != nil {
			return models.Admin{}, fmt.Errorf("login parse bearer token: %w", err)
		}
	}
	if token == "" || login.Admin == nil {
		return models.Admin{}, fmt.Errorf("login response without token or admin")
	}

	h.SetToken(token)
	h.logger.Debug().Str("admin_id", login.Admin.ID).Msg("dashboard logged in")
	return *login.Admin, nil
}

func (h *httpServerAdapter) DashboardCounts(ctx context.Context) (models.DashboardCounts, error) {
	var counts models.DashboardCounts

	req, err := h.authedRequest(ctx)
	if err != nil {
		return counts, err
	}

	resp, err := req.SetResult(&counts).Get("/api/admin/dashboard")
	if err != nil {
		return counts, fmt.Errorf("dashboard request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.DashboardCounts{}, err
	}

	return counts, nil
}

func (h *httpServerAdapter) ScanEvents(ctx context.Context, startDate, endDate string) ([]models.ScanEvent, error) {
	var events []models.ScanEvent

	req, err := h.authedRequest(ctx)
	if err != nil {
		return nil, err
	}
	if startDate != "" {
		req.SetQueryParam("start_date", startDate)
	}
	if endDate != "" {
		req.SetQueryParam("end_date", endDate)
	}

	resp, err := req.SetResult(&events).Get("/api/admin/scan-events")
	if err != nil {
		return nil, fmt.Errorf("scan events request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return events, nil
}

// authedRequest returns a request carrying the bearer token, or
// ErrNotLoggedIn before Login.
func (h *httpServerAdapter) authedRequest(ctx context.Context) (*resty.Request, error) {
	token := h.Token()
	if token == "" {
		return nil, ErrNotLoggedIn
	}
	return h.client.R().SetContext(ctx).SetAuthToken(token), nil
}
