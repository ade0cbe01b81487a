package exchangerate

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/eapache/go-resiliency/breaker"
	"github.com/kylycht/converter/model"
	"github.com/kylycht/converter/service"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
)

const (
	baseURL      string = "https://api.exchangerate.host/" // base URL of exchangerate.host API
	fetchTimeout        = time.Second * 5
)

type Response struct {
	Base  string             `json:"base"`
	Rates map[string]float64 `json:"rates"`
}

type client struct {
	baseURL     *url.URL         // Base URL for API requests
	httpClient  *http.Client     // HTTP client used to communicate with the API.
	rateLimiter *rate.Limiter    // Rate limiter for the rates api
	breaker     *breaker.Breaker // Skips the upstream while it keeps failing
}

func New(rawURL string) (service.Rates, error) {
	if rawURL == "" {
		rawURL = baseURL
	}

	base, err := url.Parse(rawURL)
	if err != nil {
		return nil, err
	}

	c := &client{
		rateLimiter: rate.NewLimiter(rate.Every(time.Second), 10),
		breaker:     breaker.New(3, 1, time.Second*30),
		httpClient: &http.Client{
			Timeout: fetchTimeout,
		},
		baseURL: base,
	}

	return c, nil
}

func (c *client) Do(ctx context.Context, req *http.Request, v interface{}) error {
	err := c.rateLimiter.Wait(ctx)
	if err != nil {
		return err
	}

	log.Debug().Str("url", req.URL.String()).Msg("fetching information from API")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unable to fetch rates due to code: %d", resp.StatusCode)
	}

	switch v := v.(type) {
	case nil:
	case io.Writer:
		_, err = io.Copy(v, resp.Body)
	default:
		decErr := json.NewDecoder(resp.Body).Decode(v)
		if decErr == io.EOF {
			decErr = nil // ignore EOF errors caused by empty response body
		}
		if decErr != nil {
			err = decErr
		}
	}

	return err
}

// GetRates implements service.Rates.
// GET /latest?base=USD
// Any live fetch failure resolves to the static fallback table.
func (c *client) GetRates(ctx context.Context, base string) model.RateTable {
	base = strings.ToUpper(base)

	table, err := c.fetch(ctx, base)
	if err != nil {
		log.Error().Err(err).Str("base", base).Msg("live rates unavailable, using fallback table")
		return model.Fallback(base)
	}

	return table
}

func (c *client) fetch(ctx context.Context, base string) (model.RateTable, error) {
	var table model.RateTable

	err := c.breaker.Run(func() error {
		u, err := c.baseURL.Parse("latest")
		if err != nil {
			return err
		}

		req, err := http.NewRequestWithContext(ctx, "GET", u.String(), nil)
		if err != nil {
			return err
		}

		query := req.URL.Query()
		query.Add("base", base)

		req.URL.RawQuery = query.Encode()

		r := &Response{}

		if err := c.Do(ctx, req, r); err != nil {
			return err
		}

		if len(r.Rates) == 0 {
			return fmt.Errorf("empty rates payload for base: %s", base)
		}

		table = make(model.RateTable, len(r.Rates)+1)

		for code, rate := range r.Rates {
			if rate <= 0 {
				return fmt.Errorf("invalid rate %f for currency: %s", rate, code)
			}
			table[strings.ToUpper(code)] = rate
		}

		// the upstream omits the base from its payload
		table[base] = 1.0

		return nil
	})
	if err != nil {
		return nil, err
	}

	return table, nil
}
