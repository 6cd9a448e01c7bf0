package app

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"
	_ "time/tzdata"

	"cloudeng.io/logging/ctxlog"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/robfig/cron/v3"

	"github.com/klabast/wb-services/calendar-views/internal/dategrid"
)

const (
	ForecastURL = "https://api.openweathermap.org/data/2.5/forecast"
	iconURLFmt  = "https://openweathermap.org/img/wn/%s@2x.png"
	noonHour    = 12
)

// Forecast is the weather shown for one day.
type Forecast struct {
	Temperature float64
	Description string
	Icon        string
}

// IconURL returns the URL of the forecast's icon image.
func (f Forecast) IconURL() string {
	return fmt.Sprintf(iconURLFmt, f.Icon)
}

// TempFormatted returns the temperature truncated to whole degrees, e.g. "12°C".
func (f Forecast) TempFormatted() string {
	return fmt.Sprintf("%d°C", int(f.Temperature))
}

// WeatherService keeps a cache of daily forecasts. Handlers only read the
// cache; Refresh is called at startup and by the cron schedule. A failed
// refresh keeps the previous forecasts. All methods are safe on a nil
// receiver, which stands for "weather disabled".
type WeatherService struct {
	client   *retryablehttp.Client
	endpoint string
	cfg      WeatherConfig
	loc      *time.Location

	mu        sync.RWMutex
	forecasts map[dategrid.Date]Forecast
	fetched   time.Time
}

// NewWeatherService returns a service for cfg. It does not fetch anything.
func NewWeatherService(cfg WeatherConfig, logger *slog.Logger) (*WeatherService, error) {
	return newWeatherService(cfg, ForecastURL, logger)
}

func newWeatherService(cfg WeatherConfig, endpoint string, logger *slog.Logger) (*WeatherService, error) {
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("failed to load weather timezone: %w", err)
	}
	cl := retryablehttp.NewClient()
	cl.RetryMax = 3
	cl.RetryWaitMin = time.Second
	cl.RetryWaitMax = 10 * time.Second
	cl.HTTPClient.Timeout = 15 * time.Second
	cl.Logger = nil
	if logger != nil {
		cl.Logger = logger
	}
	return &WeatherService{
		client:   cl,
		endpoint: endpoint,
		cfg:      cfg,
		loc:      loc,
	}, nil
}

func (s *WeatherService) requestURL() string {
	q := url.Values{}
	q.Set("lat", strconv.FormatFloat(s.cfg.Lat, 'f', -1, 64))
	q.Set("lon", strconv.FormatFloat(s.cfg.Lon, 'f', -1, 64))
	q.Set("appid", s.cfg.APIKey)
	q.Set("units", "metric")
	return s.endpoint + "?" + q.Encode()
}

// Refresh fetches the forecast and replaces the cache on success.
func (s *WeatherService) Refresh(ctx context.Context) error {
	if s == nil {
		return nil
	}
	forecasts, err := s.fetch(ctx)
	if err != nil {
		weatherRefreshes.WithLabelValues("error").Inc()
		return err
	}
	weatherRefreshes.WithLabelValues("ok").Inc()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.forecasts = forecasts
	s.fetched = Now()
	return nil
}

func (s *WeatherService) fetch(ctx context.Context) (map[dategrid.Date]Forecast, error) {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, s.requestURL(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create forecast request: %w", err)
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch forecast: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("forecast request failed: %s", resp.Status)
	}
	return parseForecasts(resp.Body, s.loc)
}

// Forecasts returns the cached forecasts keyed by local date. The map must
// not be modified.
func (s *WeatherService) Forecasts() map[dategrid.Date]Forecast {
	if s == nil {
		return nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.forecasts
}

// ForDate returns the cached forecast for d.
func (s *WeatherService) ForDate(d dategrid.Date) (Forecast, bool) {
	f, ok := s.Forecasts()[d]
	return f, ok
}

// LastRefresh returns when the cache was last filled.
func (s *WeatherService) LastRefresh() time.Time {
	if s == nil {
		return time.Time{}
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fetched
}

// Schedule registers a refresh every TTL with c.
func (s *WeatherService) Schedule(ctx context.Context, c *cron.Cron) (cron.EntryID, error) {
	return c.AddFunc(fmt.Sprintf("@every %s", s.cfg.TTL), func() {
		s.RefreshAndLog(ctx)
	})
}

// RefreshAndLog refreshes the cache and logs a failure as a warning.
func (s *WeatherService) RefreshAndLog(ctx context.Context) {
	logger := ctxlog.Logger(ctx)
	if err := s.Refresh(ctx); err != nil {
		logger.Warn("Failed to fetch weather data", "err", err)
		return
	}
	logger.Debug("Weather forecast refreshed", "days", len(s.Forecasts()))
}

type forecastResponse struct {
	List []forecastEntry `json:"list"`
}

type forecastEntry struct {
	Dt   int64 `json:"dt"`
	Main struct {
		Temp float64 `json:"temp"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
}

// parseForecasts groups the 3-hourly entries by local date in loc and keeps
// the one nearest to noon for each date. Ties go to the earlier entry.
func parseForecasts(r io.Reader, loc *time.Location) (map[dategrid.Date]Forecast, error) {
	var resp forecastResponse
	if err := json.NewDecoder(r).Decode(&resp); err != nil {
		return nil, fmt.Errorf("failed to decode forecast: %w", err)
	}

	type pick struct {
		distance int
		entry    forecastEntry
	}
	best := make(map[dategrid.Date]pick)
	for _, entry := range resp.List {
		if len(entry.Weather) == 0 {
			continue
		}
		local := time.Unix(entry.Dt, 0).In(loc)
		day := dategrid.FromTime(local)
		distance := local.Hour() - noonHour
		if distance < 0 {
			distance = -distance
		}
		if cur, ok := best[day]; ok && cur.distance <= distance {
			continue
		}
		best[day] = pick{distance: distance, entry: entry}
	}

	forecasts := make(map[dategrid.Date]Forecast, len(best))
	for day, p := range best {
		forecasts[day] = Forecast{
			Temperature: p.entry.Main.Temp,
			Description: p.entry.Weather[0].Description,
			Icon:        p.entry.Weather[0].Icon,
		}
	}
	return forecasts, nil
}
