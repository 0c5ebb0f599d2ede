// Package pixabay is a client for the Pixabay image and video search API.
//
// A client is built from the PIXABAY_* environment variables and the given
// options, then each Fetch performs exactly one request:
//
//	images, err := pixabay.NewImageAPI(pixabay.SetAPIKey(key))
//	if err != nil {
//		return err
//	}
//	params, err := search.New(search.WithQuery("yellow flowers"), search.WithPerPage(20))
//	if err != nil {
//		return err
//	}
//	page, err := images.Fetch(ctx, params)
package pixabay

import (
	"net/http"
	"time"

	"github.com/YspCoder/pixabay/adapter"
	"github.com/YspCoder/pixabay/api"
	"github.com/YspCoder/pixabay/config"
	"github.com/YspCoder/pixabay/dto"
	"github.com/YspCoder/pixabay/utils"
)

// ImageAPI and VideoAPI are the clients returned by NewImageAPI and NewVideoAPI.
type (
	ImageAPI = api.API[dto.Image]
	VideoAPI = api.API[dto.Video]
)

// ConfigOption adjusts a client configuration before it is validated.
type ConfigOption = config.ConfigOption

// SetAPIKey sets the key sent with every request.
func SetAPIKey(key string) ConfigOption { return config.SetAPIKey(key) }

// SetEndpoint overrides the base URL of the API.
func SetEndpoint(endpoint string) ConfigOption { return config.SetEndpoint(endpoint) }

// SetTimeout sets the per-request timeout.
func SetTimeout(timeout time.Duration) ConfigOption { return config.SetTimeout(timeout) }

// SetLogLevel sets the logging verbosity.
func SetLogLevel(level utils.LogLevel) ConfigOption { return config.SetLogLevel(level) }

// SetHTTPClient makes every call go through client.
func SetHTTPClient(client *http.Client) ConfigOption { return config.SetHTTPClient(client) }

// NewImageAPI creates a client for image searches.
func NewImageAPI(opts ...ConfigOption) (ImageAPI, error) {
	cfg, err := loadConfig(opts)
	if err != nil {
		return nil, err
	}
	client, err := api.NewAPI[dto.Image](cfg, utils.NewLogger(cfg.LogLevel), &adapter.ImageAdaptor{})
	if err != nil {
		return nil, err
	}
	return client, nil
}

// NewVideoAPI creates a client for video searches.
func NewVideoAPI(opts ...ConfigOption) (VideoAPI, error) {
	cfg, err := loadConfig(opts)
	if err != nil {
		return nil, err
	}
	client, err := api.NewAPI[dto.Video](cfg, utils.NewLogger(cfg.LogLevel), &adapter.VideoAdaptor{})
	if err != nil {
		return nil, err
	}
	return client, nil
}

func loadConfig(opts []ConfigOption) (*config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg, nil
}
