package exchangerate

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/kylycht/converter/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetRatesLive(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/latest", r.URL.Path)
		assert.Equal(t, "USD", r.URL.Query().Get("base"))

		_, _ = w.Write([]byte(`{"base":"USD","rates":{"eur":0.9,"GBP":0.8,"JPY":150.0}}`))
	}))
	defer srv.Close()

	c, err := New(srv.URL)
	require.NoError(t, err)

	table := c.GetRates(context.Background(), "usd")

	assert.InDelta(t, 0.9, table["EUR"], 1e-9)
	assert.InDelta(t, 0.8, table["GBP"], 1e-9)
	assert.InDelta(t, 150.0, table["JPY"], 1e-9)
	assert.InDelta(t, 1.0, table["USD"], 1e-9)
}

func TestGetRatesUnreachableServer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	addr := srv.URL
	srv.Close()

	c, err := New(addr)
	require.NoError(t, err)

	table := c.GetRates(context.Background(), "USD")

	assert.Equal(t, model.Fallback("USD"), table)
	assert.InDelta(t, 1.0, table["USD"], 1e-9)
	assert.InDelta(t, 0.92, table["EUR"], 1e-9)
}

func TestGetRatesBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c, err := New(srv.URL)
	require.NoError(t, err)

	table := c.GetRates(context.Background(), "USD")
	assert.Equal(t, model.Fallback("USD"), table)
}

func TestGetRatesMalformedPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"base":"USD","rates":`))
	}))
	defer srv.Close()

	c, err := New(srv.URL)
	require.NoError(t, err)

	table := c.GetRates(context.Background(), "USD")
	assert.Equal(t, model.Fallback("USD"), table)
}

func TestGetRatesEmptyRates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"base":"USD","rates":{}}`))
	}))
	defer srv.Close()

	c, err := New(srv.URL)
	require.NoError(t, err)

	table := c.GetRates(context.Background(), "USD")
	assert.Equal(t, model.Fallback("USD"), table)
}

func TestGetRatesNonPositiveRate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"base":"USD","rates":{"EUR":-0.9}}`))
	}))
	defer srv.Close()

	c, err := New(srv.URL)
	require.NoError(t, err)

	table := c.GetRates(context.Background(), "USD")
	assert.Equal(t, model.Fallback("USD"), table)
}

func TestGetRatesFallbackRebasedToRequestedBase(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c, err := New(srv.URL)
	require.NoError(t, err)

	table := c.GetRates(context.Background(), "EUR")

	assert.InDelta(t, 1.0, table["EUR"], 1e-9)
	assert.InDelta(t, 1.0/0.92, table["USD"], 1e-9)
}

func TestGetRatesBreakerSkipsDeadUpstream(t *testing.T) {
	var hits int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c, err := New(srv.URL)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		table := c.GetRates(context.Background(), "USD")
		assert.Equal(t, model.Fallback("USD"), table)
	}

	// breaker opens after three failures, the last two calls never reach the server
	assert.Equal(t, int32(3), atomic.LoadInt32(&hits))
}
