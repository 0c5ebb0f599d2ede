// Package adapter binds the search pipeline to one media kind.
package adapter

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/YspCoder/pixabay/dto"
	"github.com/YspCoder/pixabay/search"
)

const (
	KindImage = "image"
	KindVideo = "video"
)

// Path prefixes appended to the endpoint per media kind.
const (
	ImagePath = ""
	VideoPath = "videos/"
)

// ProviderConfig holds the settings a request is executed with.
type ProviderConfig struct {
	APIKey     string
	BaseURL    string
	HTTPClient *http.Client
	Timeout    time.Duration
}

// Adaptor defines the per-kind routing and conversions.
type Adaptor[T dto.Hit] interface {
	// Name returns the media kind served by the adaptor.
	Name() string

	// GetRequestURL returns the endpoint for this kind, without query string.
	GetRequestURL(config *ProviderConfig) (string, error)

	// ModifyParams applies fixed per-kind overrides. params is never nil.
	ModifyParams(params *search.Params) (*search.Params, error)

	// ConvertResponse decodes a successful response body into a page.
	ConvertResponse(ctx context.Context, config *ProviderConfig, body []byte, headers map[string]string) (*dto.Page[T], error)
}

func requestURL(config *ProviderConfig, prefix string) (string, error) {
	if config == nil || strings.TrimSpace(config.BaseURL) == "" {
		return "", &dto.Error{Kind: dto.KindTransport, Message: "request url is empty"}
	}
	return strings.TrimRight(config.BaseURL, "/") + "/" + prefix, nil
}
