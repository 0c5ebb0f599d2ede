package adapter

import (
	"context"

	"github.com/YspCoder/pixabay/dto"
	"github.com/YspCoder/pixabay/search"
)

// ImageAdaptor serves image searches from the endpoint root.
type ImageAdaptor struct{}

var _ Adaptor[dto.Image] = (*ImageAdaptor)(nil)

// Name returns the media kind handled by the adaptor.
func (a *ImageAdaptor) Name() string { return KindImage }

// GetRequestURL returns the image search endpoint under config.BaseURL.
func (a *ImageAdaptor) GetRequestURL(config *ProviderConfig) (string, error) {
	return requestURL(config, ImagePath)
}

// ModifyParams leaves image parameters untouched.
func (a *ImageAdaptor) ModifyParams(params *search.Params) (*search.Params, error) {
	return params, nil
}

// ConvertResponse decodes body into a validated image page.
func (a *ImageAdaptor) ConvertResponse(ctx context.Context, config *ProviderConfig, body []byte, headers map[string]string) (*dto.ImagePage, error) {
	return dto.NewImagePage(body, headers)
}
