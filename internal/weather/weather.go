// Package weather fetches current conditions from OpenWeatherMap and turns
// them into an opaque entropy token for seed combination.
package weather

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"sync"
	"time"
)

// Client fetches weather data from OpenWeatherMap for one location.
type Client struct {
	apiKey string
	city   string
	postal string
	client *http.Client

	mu          sync.Mutex
	cached      *Conditions
	cachedAt    time.Time
	cacheTTL    time.Duration
	lastFailAt  time.Time
	failBackoff time.Duration
}

// NewClient creates a weather API client. Returns nil if apiKey is empty;
// a nil client is a valid receiver for Fetch and reports an error.
func NewClient(apiKey, city, postal string) *Client {
	if apiKey == "" {
		return nil
	}
	return &Client{
		apiKey:   apiKey,
		city:     city,
		postal:   postal,
		client:   &http.Client{Timeout: 10 * time.Second},
		cacheTTL: 5 * time.Minute,
	}
}

// Conditions holds the parsed weather fields that feed the entropy token.
type Conditions struct {
	Temp          float64 `json:"temp"`          // Celsius
	Humidity      int     `json:"humidity"`      // percent
	Precipitation float64 `json:"precipitation"` // rain over the last hour, mm
	Description   string  `json:"description"`
}

// SeedToken encodes the conditions as an opaque byte token: rounded
// temperature, humidity, precipitation and description, comma separated.
// Consumers must not interpret it beyond hashing.
func (c Conditions) SeedToken() []byte {
	return []byte(fmt.Sprintf("%.0f,%d,%g,%s", c.Temp, c.Humidity, c.Precipitation, c.Description))
}

// Fetch retrieves current conditions, using the cache while fresh and
// backing off after repeated API failures (up to 10 minutes).
func (c *Client) Fetch() (*Conditions, error) {
	if c == nil {
		return nil, fmt.Errorf("weather client not configured")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cached != nil && time.Since(c.cachedAt) < c.cacheTTL {
		return c.cached, nil
	}

	if c.failBackoff > 0 && time.Since(c.lastFailAt) < c.failBackoff {
		if c.cached != nil {
			return c.cached, nil
		}
		return nil, fmt.Errorf("weather API backoff (%s remaining)", c.failBackoff-time.Since(c.lastFailAt))
	}

	conditions, err := c.fetchFromAPI()
	if err != nil {
		c.lastFailAt = time.Now()
		if c.failBackoff == 0 {
			c.failBackoff = 1 * time.Minute
		} else if c.failBackoff < 10*time.Minute {
			c.failBackoff *= 2
		}
		if c.cached != nil {
			return c.cached, nil
		}
		return nil, err
	}

	c.cached = conditions
	c.cachedAt = time.Now()
	c.failBackoff = 0
	return conditions, nil
}

func (c *Client) fetchFromAPI() (*Conditions, error) {
	apiURL := fmt.Sprintf("https://api.openweathermap.org/data/2.5/weather?q=%s&zip=%s,fr&appid=%s&units=metric",
		url.QueryEscape(c.city), url.QueryEscape(c.postal), c.apiKey)

	resp, err := c.client.Get(apiURL)
	if err != nil {
		return nil, fmt.Errorf("weather API call: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read weather response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("weather API error %d: %s", resp.StatusCode, string(body))
	}

	var owm struct {
		Main struct {
			Temp     float64 `json:"temp"`
			Humidity int     `json:"humidity"`
		} `json:"main"`
		Weather []struct {
			Description string `json:"description"`
		} `json:"weather"`
		Rain struct {
			OneHour float64 `json:"1h"`
		} `json:"rain"`
	}

	if err := json.Unmarshal(body, &owm); err != nil {
		return nil, fmt.Errorf("parse weather: %w", err)
	}

	conditions := &Conditions{
		Temp:          owm.Main.Temp,
		Humidity:      owm.Main.Humidity,
		Precipitation: owm.Rain.OneHour,
	}
	if len(owm.Weather) > 0 {
		conditions.Description = owm.Weather[0].Description
	}

	slog.Debug("weather fetched", "temp", conditions.Temp, "humidity", conditions.Humidity, "desc", conditions.Description)
	return conditions, nil
}
