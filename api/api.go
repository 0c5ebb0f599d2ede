// Package api provides a single fetch entry point per media kind.
// It composes parameter handling, request execution and result decoding
// behind one interface.
package api

import (
	"context"

	"github.com/YspCoder/pixabay/adapter"
	"github.com/YspCoder/pixabay/config"
	"github.com/YspCoder/pixabay/dto"
	"github.com/YspCoder/pixabay/relay"
	"github.com/YspCoder/pixabay/search"
	"github.com/YspCoder/pixabay/utils"
)

// API defines the search operations for one media kind.
type API[T dto.Hit] interface {
	// Fetch runs one search. Nil params means API defaults.
	// Returns a *validation.ValidationError for bad parameters or payloads,
	// or a *dto.Error for transport and status failures.
	Fetch(ctx context.Context, params *search.Params) (*dto.Page[T], error)

	// FetchMap builds parameters from loosely named keys, then fetches.
	// Returns a *dto.Error of KindUnsupportedParameter for unknown keys.
	FetchMap(ctx context.Context, raw map[string]interface{}) (*dto.Page[T], error)

	// SetLogLevel adjusts the logging verbosity.
	SetLogLevel(level utils.LogLevel)

	// GetLogger returns the current logger instance.
	GetLogger() utils.Logger
}

// Impl implements API for a single adaptor.
type Impl[T dto.Hit] struct {
	kind       string
	logger     utils.Logger
	relay      *relay.Relay
	adaptor    adapter.Adaptor[T]
	adaptorCfg *adapter.ProviderConfig
}

var _ API[dto.Image] = (*Impl[dto.Image])(nil)

// NewAPI creates an API bound to adp. The configuration must already be
// complete; an empty API key is rejected.
func NewAPI[T dto.Hit](cfg *config.Config, logger utils.Logger, adp adapter.Adaptor[T]) (*Impl[T], error) {
	if cfg == nil || cfg.APIKey == "" {
		return nil, &dto.Error{Kind: dto.KindInvalidCredentials, Message: "empty API key"}
	}
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = utils.NewLogger(cfg.LogLevel)
	}

	return &Impl[T]{
		kind:    adp.Name(),
		logger:  logger,
		relay:   relay.NewRelay(cfg.HTTPClient, logger),
		adaptor: adp,
		adaptorCfg: &adapter.ProviderConfig{
			APIKey:     cfg.APIKey,
			BaseURL:    cfg.Endpoint,
			HTTPClient: cfg.HTTPClient,
			Timeout:    cfg.Timeout,
		},
	}, nil
}

// Fetch runs one search with params.
func (a *Impl[T]) Fetch(ctx context.Context, params *search.Params) (*dto.Page[T], error) {
	if params == nil {
		defaults, err := search.New()
		if err != nil {
			return nil, err
		}
		params = defaults
	}

	a.logger.Debug("Fetching", "kind", a.kind, "params", params.WireForm().Map())
	page, err := relay.Search(ctx, a.relay, a.adaptor, a.adaptorCfg, params)
	if err != nil {
		a.logger.Debug("Fetch failed", "kind", a.kind, "error", err)
		return nil, err
	}

	a.logger.Debug("Fetch succeeded", "kind", a.kind, "hits", len(page.Hits), "total_hits", page.TotalHits)
	return page, nil
}

// FetchMap normalizes raw into parameters and runs one search.
func (a *Impl[T]) FetchMap(ctx context.Context, raw map[string]interface{}) (*dto.Page[T], error) {
	params, err := search.FromMap(raw)
	if err != nil {
		return nil, err
	}
	return a.Fetch(ctx, params)
}

// SetLogLevel updates the logging verbosity level.
func (a *Impl[T]) SetLogLevel(level utils.LogLevel) {
	a.logger.Debug("Setting log level", "new_level", level)
	a.logger.SetLevel(level)
}

// GetLogger returns the current logger instance.
func (a *Impl[T]) GetLogger() utils.Logger {
	return a.logger
}
