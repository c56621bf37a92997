package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"airsense.xyz/aqi-prediction-service/pkg/common"
	"go.uber.org/zap"
)

// ErrNotFound means the provider returned zero candidates for the query.
var ErrNotFound = errors.New("location not found")

type Result struct {
	Lat         float64
	Lon         float64
	DisplayName string
}

// Geocoder resolves a free-text place name to coordinates.
type Geocoder interface {
	Forward(ctx context.Context, name string) (Result, error)
}

const defaultBaseURL = "https://nominatim.openstreetmap.org/search"

// Client implements Geocoder against a Nominatim-compatible endpoint.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// candidate mirrors the Nominatim wire format: coordinates come as strings.
type candidate struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// Forward takes the first candidate as authoritative.
func (c *Client) Forward(ctx context.Context, name string) (Result, error) {
	logger := common.GetLoggerWith(common.LoggerNameGeocoder)

	params := url.Values{
		"q":      {name},
		"format": {"json"},
		"limit":  {"1"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return Result{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", "airsense-aqi-prediction-service")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("forward geocode request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return Result{}, fmt.Errorf("geocoder error: status %d: %s", resp.StatusCode, body)
	}

	var candidates []candidate
	if err := json.NewDecoder(resp.Body).Decode(&candidates); err != nil {
		return Result{}, fmt.Errorf("decode response: %w", err)
	}

	if len(candidates) == 0 {
		logger.Info("No geocoding candidates", zap.String("query", name))
		return Result{}, ErrNotFound
	}

	first := candidates[0]
	lat, err := strconv.ParseFloat(first.Lat, 64)
	if err != nil {
		return Result{}, fmt.Errorf("parse latitude %q: %w", first.Lat, err)
	}
	lon, err := strconv.ParseFloat(first.Lon, 64)
	if err != nil {
		return Result{}, fmt.Errorf("parse longitude %q: %w", first.Lon, err)
	}

	result := Result{Lat: lat, Lon: lon, DisplayName: first.DisplayName}
	logger.Info("Resolved location",
		zap.String("query", name), zap.String("display_name", result.DisplayName))
	return result, nil
}
