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
	"strings"
	"time"

	"foodpool-be/internal/logger"
	"foodpool-be/internal/metrics"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	countryCodes   = "in"
	requestTimeout = 10 * time.Second
)

var (
	ErrNotFound   = errors.New("location not found")
	ErrEmptyQuery = errors.New("search query is empty")
	ErrUpstream   = errors.New("geocoding service unavailable")
)

// Place is a single geocoding hit.
type Place struct {
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	DisplayName string  `json:"display_name"`
}

type Client interface {
	Search(ctx context.Context, query string) (*Place, error)
	Reverse(ctx context.Context, lat, lng float64) (*Place, error)
}

type nominatimClient struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	limiter    *rate.Limiter
	calls      *metrics.Counter
}

// NewNominatimClient talks to a Nominatim compatible endpoint. The public
// instance allows one request per second.
func NewNominatimClient(baseURL, userAgent string) Client {
	return &nominatimClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		userAgent:  userAgent,
		httpClient: &http.Client{Timeout: requestTimeout},
		limiter:    rate.NewLimiter(rate.Every(time.Second), 1),
		calls:      metrics.Default.Counter("geocode_requests"),
	}
}

type nominatimResult struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

func (c *nominatimClient) Search(ctx context.Context, query string) (*Place, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}

	params := url.Values{}
	params.Set("format", "json")
	params.Set("q", query)
	params.Set("countrycodes", countryCodes)
	params.Set("limit", "1")

	var results []nominatimResult
	if err := c.get(ctx, "/search", params, &results); err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, ErrNotFound
	}
	return results[0].place()
}

func (c *nominatimClient) Reverse(ctx context.Context, lat, lng float64) (*Place, error) {
	params := url.Values{}
	params.Set("format", "json")
	params.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(lng, 'f', -1, 64))

	var result struct {
		nominatimResult
		Error string `json:"error"`
	}
	if err := c.get(ctx, "/reverse", params, &result); err != nil {
		return nil, err
	}
	if result.Error != "" || result.DisplayName == "" {
		return nil, ErrNotFound
	}

	return &Place{Latitude: lat, Longitude: lng, DisplayName: result.DisplayName}, nil
}

func (c *nominatimClient) get(ctx context.Context, path string, params url.Values, out interface{}) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "geocode"),
		zap.String("path", path),
	)

	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}
	c.calls.Inc()
	timer := metrics.StartTimer()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error("nominatim request failed", zap.Error(err))
		return fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	if resp.StatusCode != http.StatusOK {
		log.Warn("nominatim returned non-200",
			zap.Int("status", resp.StatusCode),
			zap.Duration("duration", timer.Duration()),
		)
		return fmt.Errorf("%w: status %d", ErrUpstream, resp.StatusCode)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: decode: %v", ErrUpstream, err)
	}

	log.Debug("nominatim request completed", zap.Duration("duration", timer.Duration()))
	return nil
}

func (r nominatimResult) place() (*Place, error) {
	lat, err := strconv.ParseFloat(r.Lat, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: bad latitude %q", ErrUpstream, r.Lat)
	}
	lng, err := strconv.ParseFloat(r.Lon, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: bad longitude %q", ErrUpstream, r.Lon)
	}
	return &Place{Latitude: lat, Longitude: lng, DisplayName: r.DisplayName}, nil
}

// ShortAddress keeps the first three comma separated parts of a display name.
func ShortAddress(displayName string) string {
	parts := strings.Split(displayName, ",")
	if len(parts) > 3 {
		parts = parts[:3]
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return strings.Join(parts, ", ")
}
