package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YspCoder/pixabay/adapter"
	"github.com/YspCoder/pixabay/config"
	"github.com/YspCoder/pixabay/dto"
	"github.com/YspCoder/pixabay/search"
	"github.com/YspCoder/pixabay/utils"
)

func newConfig(endpoint string) *config.Config {
	return &config.Config{
		APIKey:   "secret",
		Endpoint: endpoint + "/",
		Timeout:  time.Second,
		LogLevel: utils.LogLevelOff,
	}
}

func TestNewAPIRequiresKey(t *testing.T) {
	cfg := newConfig("https://pixabay.com/api")
	cfg.APIKey = ""

	client, err := NewAPI[dto.Image](cfg, utils.NopLogger(), &adapter.ImageAdaptor{})
	assert.Nil(t, client)
	assert.True(t, errors.Is(err, dto.ErrInvalidCredentials))

	_, err = NewAPI[dto.Image](nil, utils.NopLogger(), &adapter.ImageAdaptor{})
	assert.Error(t, err)
}

func TestNewAPIValidatesConfig(t *testing.T) {
	cfg := newConfig("https://pixabay.com/api")
	cfg.Timeout = 0

	_, err := NewAPI[dto.Video](cfg, utils.NopLogger(), &adapter.VideoAdaptor{})
	assert.Error(t, err)
}

func TestFetchDefaults(t *testing.T) {
	var got url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.Query()
		_, _ = w.Write([]byte(`{"total":0,"totalHits":0,"hits":[]}`))
	}))
	defer server.Close()

	client, err := NewAPI[dto.Image](newConfig(server.URL), utils.NopLogger(), &adapter.ImageAdaptor{})
	require.NoError(t, err)

	page, err := client.Fetch(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, page.Hits)
	assert.Equal(t, url.Values{"key": {"secret"}}, got)
}

func TestFetchMap(t *testing.T) {
	var got url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.Query()
		_, _ = w.Write([]byte(`{"total":0,"totalHits":0,"hits":[]}`))
	}))
	defer server.Close()

	client, err := NewAPI[dto.Video](newConfig(server.URL), utils.NopLogger(), &adapter.VideoAdaptor{})
	require.NoError(t, err)

	_, err = client.FetchMap(context.Background(), map[string]interface{}{"q": "ocean", "per_page": 10})
	require.NoError(t, err)
	assert.Equal(t, "ocean", got.Get("q"))
	assert.Equal(t, "10", got.Get("per_page"))
}

func TestFetchMapRejectsBeforeRequest(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer server.Close()

	client, err := NewAPI[dto.Image](newConfig(server.URL), utils.NopLogger(), &adapter.ImageAdaptor{})
	require.NoError(t, err)

	_, err = client.FetchMap(context.Background(), map[string]interface{}{"bogus": true})
	assert.True(t, errors.Is(err, dto.ErrUnsupportedParameter))

	_, err = client.FetchMap(context.Background(), map[string]interface{}{"per_page": 1})
	assert.Equal(t, dto.KindValidation, dto.KindOf(err))

	assert.Zero(t, calls)
}

func TestFetchPropagatesPayloadErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"total":1,"totalHits":1}`))
	}))
	defer server.Close()

	client, err := NewAPI[dto.Image](newConfig(server.URL), utils.NopLogger(), &adapter.ImageAdaptor{})
	require.NoError(t, err)

	params, err := search.New(search.WithQuery("cat"))
	require.NoError(t, err)

	page, err := client.Fetch(context.Background(), params)
	assert.Nil(t, page)
	assert.Equal(t, dto.KindValidation, dto.KindOf(err))
}

func TestSetLogLevel(t *testing.T) {
	client, err := NewAPI[dto.Image](newConfig("https://pixabay.com/api"), utils.NopLogger(), &adapter.ImageAdaptor{})
	require.NoError(t, err)

	assert.NotPanics(t, func() { client.SetLogLevel(utils.LogLevelDebug) })
	assert.NotNil(t, client.GetLogger())
}
