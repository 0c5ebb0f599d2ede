package dto

import (
	"encoding/json"
	"errors"
	"reflect"

	"github.com/YspCoder/pixabay/validation"
)

// Hit is the set of item kinds a page can hold.
type Hit interface {
	Image | Video
}

// Page is one fetched batch of results.
type Page[T Hit] struct {
	// Total is the number of matches in the whole dataset.
	Total int `json:"total" jsonschema:"minimum=0"`
	// TotalHits is the number of matches reachable through the API.
	TotalHits int `json:"totalHits" jsonschema:"minimum=0"`
	Hits      []T `json:"hits"`
	// Headers are the response headers keyed by canonical name.
	Headers map[string]string `json:"-"`
}

type (
	ImagePage = Page[Image]
	VideoPage = Page[Video]
)

// RateLimit parses the rate limit headers of the response that produced p.
func (p *Page[T]) RateLimit() (RateLimit, bool) {
	return ParseRateLimit(p.Headers)
}

// NewImagePage decodes an image search response body.
func NewImagePage(body []byte, headers map[string]string) (*ImagePage, error) {
	return newPage(body, headers, NewImage)
}

// NewVideoPage decodes a video search response body.
func NewVideoPage(body []byte, headers map[string]string) (*VideoPage, error) {
	return newPage(body, headers, NewVideo)
}

type pagePayload struct {
	Total     int               `json:"total"`
	TotalHits int               `json:"totalHits"`
	Hits      []json.RawMessage `json:"hits"`
}

func newPage[T Hit](body []byte, headers map[string]string, build func(json.RawMessage) (*T, error)) (*Page[T], error) {
	var payload pagePayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, decodeError("Page", err)
	}

	page := &Page[T]{
		Total:     payload.Total,
		TotalHits: payload.TotalHits,
		Headers:   make(map[string]string, len(headers)),
	}
	if payload.Hits != nil {
		page.Hits = make([]T, 0, len(payload.Hits))
	}
	for _, raw := range payload.Hits {
		hit, err := build(raw)
		if err != nil {
			return nil, err
		}
		page.Hits = append(page.Hits, *hit)
	}
	for name, value := range headers {
		page.Headers[name] = value
	}

	var hits interface{}
	if page.Hits != nil {
		hits = page.Hits
	}
	err := validation.Validate("Page", []validation.Field{
		{Name: "total", Value: page.Total, Rules: "nonNegativeInteger"},
		{Name: "totalHits", Value: page.TotalHits, Rules: "nonNegativeInteger"},
		{Name: "hits", Value: hits, Rules: "notNull,array"},
	})
	if err != nil {
		return nil, err
	}
	return page, nil
}

// decodeError turns JSON type mismatches into validation failures so that a
// field of the wrong type is reported like a field with a bad value.
func decodeError(subject string, err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		name := subject
		if typeErr.Field != "" {
			name += "." + typeErr.Field
		}
		return &validation.ValidationError{
			Name:   name,
			Value:  typeErr.Value,
			Reason: typeReason(typeErr.Type),
		}
	}
	return &Error{Kind: KindTransport, Message: "failed to decode " + subject, Err: err}
}

func typeReason(t reflect.Type) string {
	if t == nil {
		return "Has an unexpected type"
	}
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "Must be an integer"
	case reflect.Float32, reflect.Float64:
		return "Must be a float or a double"
	case reflect.String:
		return "Must be a string"
	case reflect.Bool:
		return "Must be a boolean"
	case reflect.Slice, reflect.Array:
		return "Must be an array"
	default:
		return "Must be a " + t.String()
	}
}
