package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-waste-tracker/internal/config"
	"github.com/MKhiriev/go-waste-tracker/internal/utils"
)

// Lookup errors.
var (
	ErrUpstreamStatus   = errors.New("reverse geocoding service returned an error status")
	ErrUpstreamResponse = errors.New("reverse geocoding service returned an unusable response")
)

// reverseResponse is the subset of a Nominatim /reverse response that is
// needed to build a display string.
type reverseResponse struct {
	DisplayName string  `json:"display_name"`
	Address     address `json:"address"`
	Error       string  `json:"error"`
}

type address struct {
	HouseNumber string `json:"house_number"`
	Road        string `json:"road"`
	Suburb      string `json:"suburb"`
	Village     string `json:"village"`
	Town        string `json:"town"`
	City        string `json:"city"`
	County      string `json:"county"`
	State       string `json:"state"`
	Country     string `json:"country"`
}

func (a address) String() string {
	parts := make([]string, 0, 9)
	for _, p := range []string{a.HouseNumber, a.Road, a.Suburb, a.Village, a.Town, a.City, a.County, a.State, a.Country} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}

	return strings.Join(parts, ", ")
}

// HTTPLookuper queries a Nominatim-compatible reverse-geocoding endpoint.
// The go-waste-tracker server's /api/reverse-geocode answers in the same
// format, so the dashboard uses this type against the server as well.
type HTTPLookuper struct {
	client *utils.HTTPClient
	path   string
}

// NewHTTPLookuper builds a lookuper from the geocoder settings.
func NewHTTPLookuper(cfg config.Geocoder) *HTTPLookuper {
	client := utils.NewHTTPClient(
		utils.WithBaseURL(cfg.BaseURL),
		utils.WithTimeout(cfg.RequestTimeout),
		utils.WithUserAgent(cfg.UserAgent),
	)

	path := cfg.ReversePath
	if path == "" {
		path = "/reverse"
	}

	return &HTTPLookuper{client: client, path: path}
}

// Lookup implements [Lookuper].
func (l *HTTPLookuper) Lookup(ctx context.Context, lat, lon string) (string, error) {
	resp, err := l.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"format":         "json",
			"lat":            lat,
			"lon":            lon,
			"zoom":           "18",
			"addressdetails": "1",
		}).
		Get(l.path)
	if err != nil {
		return "", fmt.Errorf("reverse geocoding request: %w", err)
	}
	if resp.StatusCode() < http.StatusOK || resp.StatusCode() >= http.StatusMultipleChoices {
		return "", fmt.Errorf("%w: %d", ErrUpstreamStatus, resp.StatusCode())
	}

	var body reverseResponse
	if err = json.Unmarshal(resp.Body(), &body); err != nil {
		return "", errors.Join(ErrUpstreamResponse, err)
	}
	if body.Error != "" {
		return "", fmt.Errorf("%w: %s", ErrUpstreamResponse, body.Error)
	}

	if name := strings.TrimSpace(body.DisplayName); name != "" {
		return name, nil
	}
	if name := body.Address.String(); name != "" {
		return name, nil
	}

	return "", fmt.Errorf("%w: no display name", ErrUpstreamResponse)
}
