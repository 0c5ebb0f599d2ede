package adapter

import (
	"context"

	"github.com/YspCoder/pixabay/dto"
	"github.com/YspCoder/pixabay/search"
)

// VideoAdaptor serves video searches from the videos/ sub-path.
type VideoAdaptor struct{}

var _ Adaptor[dto.Video] = (*VideoAdaptor)(nil)

// Name returns the media kind handled by the adaptor.
func (a *VideoAdaptor) Name() string { return KindVideo }

// GetRequestURL returns the video search endpoint under config.BaseURL.
func (a *VideoAdaptor) GetRequestURL(config *ProviderConfig) (string, error) {
	return requestURL(config, VideoPath)
}

// ModifyParams leaves video parameters untouched; the path prefix is the
// only difference from an image search.
func (a *VideoAdaptor) ModifyParams(params *search.Params) (*search.Params, error) {
	return params, nil
}

// ConvertResponse decodes body into a validated video page.
func (a *VideoAdaptor) ConvertResponse(ctx context.Context, config *ProviderConfig, body []byte, headers map[string]string) (*dto.VideoPage, error) {
	return dto.NewVideoPage(body, headers)
}
