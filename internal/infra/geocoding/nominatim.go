// Package geocoding resolves free-text places through OpenStreetMap Nominatim.
package geocoding

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"alertacordon/internal/domain/entity"
	"alertacordon/internal/infra/observability"
)

// NominatimClient implements service.Geocoder against the Nominatim search API.
type NominatimClient struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	citySuffix string
	metrics    *observability.Metrics
	logger     *slog.Logger
}

// NewNominatimClient creates a Nominatim client. citySuffix is appended to
// every query to keep matches inside the city.
func NewNominatimClient(baseURL, userAgent, citySuffix string, timeout time.Duration, metrics *observability.Metrics, logger *slog.Logger) *NominatimClient {
	return &NominatimClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL:    strings.TrimRight(baseURL, "/"),
		userAgent:  userAgent,
		citySuffix: citySuffix,
		metrics:    metrics,
		logger:     logger,
	}
}

// Geocode returns the first match for query, or nil when Nominatim has none.
func (c *NominatimClient) Geocode(ctx context.Context, query string) (*entity.Coordinates, error) {
	params := url.Values{
		"format": {"json"},
		"limit":  {"1"},
		"q":      {strings.TrimSpace(query) + c.citySuffix},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/search?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	// Nominatim usage policy requires an identifying agent.
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	c.metrics.GeocodeAPIDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		c.metrics.GeocodeRequests.WithLabelValues("error").Inc()

		return nil, fmt.Errorf("geocode request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.metrics.GeocodeRequests.WithLabelValues("error").Inc()
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))

		return nil, fmt.Errorf("nominatim API error: status %d: %s", resp.StatusCode, body)
	}

	var places []place
	if err := json.NewDecoder(resp.Body).Decode(&places); err != nil {
		c.metrics.GeocodeRequests.WithLabelValues("error").Inc()

		return nil, fmt.Errorf("decode response: %w", err)
	}

	if len(places) == 0 {
		c.metrics.GeocodeRequests.WithLabelValues("empty").Inc()
		c.logger.Debug("Geocoder found no match", slog.String("query", query))

		return nil, nil
	}

	coords, err := places[0].coordinates()
	if err != nil {
		c.metrics.GeocodeRequests.WithLabelValues("error").Inc()

		return nil, err
	}

	c.metrics.GeocodeRequests.WithLabelValues("success").Inc()
	c.logger.Debug("Geocoded location",
		slog.String("query", query),
		slog.String("displayName", places[0].DisplayName),
		slog.String("coordinates", coords.String()),
	)

	return coords, nil
}

// Nominatim API response types. Coordinates come back as strings.

type place struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

func (p place) coordinates() (*entity.Coordinates, error) {
	lat, err := strconv.ParseFloat(p.Lat, 64)
	if err != nil {
		return nil, fmt.Errorf("parse latitude %q: %w", p.Lat, err)
	}
	lon, err := strconv.ParseFloat(p.Lon, 64)
	if err != nil {
		return nil, fmt.Errorf("parse longitude %q: %w", p.Lon, err)
	}

	coords := &entity.Coordinates{Latitude: lat, Longitude: lon}
	if !coords.InRange() {
		return nil, fmt.Errorf("coordinates out of range: %s", coords)
	}

	return coords, nil
}
