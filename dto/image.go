package dto

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"

	"github.com/YspCoder/pixabay/validation"
)

// Size is the maximum width or height of a resized image.
type Size int

const (
	Size180 Size = 180
	Size340 Size = 340
	Size640 Size = 640
	Size960 Size = 960
)

// Image is a single image hit.
type Image struct {
	ID      int      `json:"id" jsonschema:"minimum=0"`
	Type    string   `json:"type"`
	Tags    []string `json:"tags"`
	PageURL string   `json:"pageURL"`

	// PreviewURL points to a low resolution image, at most 150px on a side.
	PreviewURL    string `json:"previewURL"`
	PreviewWidth  int    `json:"previewWidth" jsonschema:"minimum=0"`
	PreviewHeight int    `json:"previewHeight" jsonschema:"minimum=0"`

	// WebformatURL points to a medium image, at most 640px on a side. The URL
	// is valid for 24 hours.
	WebformatURL    string `json:"webformatURL"`
	WebformatWidth  int    `json:"webformatWidth" jsonschema:"minimum=0"`
	WebformatHeight int    `json:"webformatHeight" jsonschema:"minimum=0"`

	LargeImageURL string `json:"largeImageURL,omitempty"`
	ImageWidth    int    `json:"imageWidth,omitempty" jsonschema:"minimum=0"`
	ImageHeight   int    `json:"imageHeight,omitempty" jsonschema:"minimum=0"`
	ImageSize     int    `json:"imageSize,omitempty" jsonschema:"minimum=0"`

	Views     int `json:"views" jsonschema:"minimum=0"`
	Downloads int `json:"downloads" jsonschema:"minimum=0"`
	Favorites int `json:"favorites" jsonschema:"minimum=0"`
	Likes     int `json:"likes" jsonschema:"minimum=0"`
	Comments  int `json:"comments" jsonschema:"minimum=0"`

	UserID       int    `json:"user_id" jsonschema:"minimum=0"`
	User         string `json:"user"`
	UserImageURL string `json:"userImageURL"`
}

// imagePayload keeps the documented fields as pointers so that a missing
// field fails validation instead of decoding to a zero value.
type imagePayload struct {
	ID              *int    `json:"id"`
	Type            *string `json:"type"`
	Tags            string  `json:"tags"`
	PageURL         *string `json:"pageURL"`
	PreviewURL      *string `json:"previewURL"`
	PreviewWidth    *int    `json:"previewWidth"`
	PreviewHeight   *int    `json:"previewHeight"`
	WebformatURL    *string `json:"webformatURL"`
	WebformatWidth  *int    `json:"webformatWidth"`
	WebformatHeight *int    `json:"webformatHeight"`
	LargeImageURL   string  `json:"largeImageURL"`
	ImageWidth      int     `json:"imageWidth"`
	ImageHeight     int     `json:"imageHeight"`
	ImageSize       int     `json:"imageSize"`
	Views           *int    `json:"views"`
	Downloads       *int    `json:"downloads"`
	Favorites       *int    `json:"favorites"`
	Likes           *int    `json:"likes"`
	Comments        *int    `json:"comments"`
	UserID          *int    `json:"user_id"`
	User            *string `json:"user"`
	UserImageURL    *string `json:"userImageURL"`
}

var (
	tagSeparator  = regexp.MustCompile(`\s*,\s*`)
	webformatSize = regexp.MustCompile(`_640(\.\w+)$`)
)

// NewImage decodes and validates a single image hit.
func NewImage(raw json.RawMessage) (*Image, error) {
	var p imagePayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, decodeError("Image", err)
	}

	err := validation.Validate("Image", []validation.Field{
		{Name: "id", Value: p.ID, Rules: "nonNegativeInteger"},
		{Name: "pageURL", Value: p.PageURL, Rules: "string"},
		{Name: "type", Value: p.Type, Rules: "string"},
		{Name: "previewURL", Value: p.PreviewURL, Rules: "string"},
		{Name: "previewWidth", Value: p.PreviewWidth, Rules: "nonNegativeInteger"},
		{Name: "previewHeight", Value: p.PreviewHeight, Rules: "nonNegativeInteger"},
		{Name: "webformatURL", Value: p.WebformatURL, Rules: "string"},
		{Name: "webformatWidth", Value: p.WebformatWidth, Rules: "nonNegativeInteger"},
		{Name: "webformatHeight", Value: p.WebformatHeight, Rules: "nonNegativeInteger"},
		{Name: "imageWidth", Value: p.ImageWidth, Rules: "nonNegativeInteger"},
		{Name: "imageHeight", Value: p.ImageHeight, Rules: "nonNegativeInteger"},
		{Name: "imageSize", Value: p.ImageSize, Rules: "nonNegativeInteger"},
		{Name: "views", Value: p.Views, Rules: "nonNegativeInteger"},
		{Name: "downloads", Value: p.Downloads, Rules: "nonNegativeInteger"},
		{Name: "favorites", Value: p.Favorites, Rules: "nonNegativeInteger"},
		{Name: "likes", Value: p.Likes, Rules: "nonNegativeInteger"},
		{Name: "comments", Value: p.Comments, Rules: "nonNegativeInteger"},
		{Name: "user_id", Value: p.UserID, Rules: "nonNegativeInteger"},
		{Name: "user", Value: p.User, Rules: "string"},
		{Name: "userImageURL", Value: p.UserImageURL, Rules: "string"},
	})
	if err != nil {
		return nil, err
	}

	return &Image{
		ID:              *p.ID,
		Type:            *p.Type,
		Tags:            splitTags(p.Tags),
		PageURL:         *p.PageURL,
		PreviewURL:      *p.PreviewURL,
		PreviewWidth:    *p.PreviewWidth,
		PreviewHeight:   *p.PreviewHeight,
		WebformatURL:    *p.WebformatURL,
		WebformatWidth:  *p.WebformatWidth,
		WebformatHeight: *p.WebformatHeight,
		LargeImageURL:   p.LargeImageURL,
		ImageWidth:      p.ImageWidth,
		ImageHeight:     p.ImageHeight,
		ImageSize:       p.ImageSize,
		Views:           *p.Views,
		Downloads:       *p.Downloads,
		Favorites:       *p.Favorites,
		Likes:           *p.Likes,
		Comments:        *p.Comments,
		UserID:          *p.UserID,
		User:            *p.User,
		UserImageURL:    *p.UserImageURL,
	}, nil
}

// URLForSize derives the URL of the same image limited to size pixels by
// swapping the _640 suffix of the webformat URL. URLs without that suffix are
// returned unchanged.
func (i Image) URLForSize(size Size) string {
	return webformatSize.ReplaceAllString(i.WebformatURL, "_"+strconv.Itoa(int(size))+"${1}")
}

// URLForSize180 returns the URL of the image limited to 180px.
func (i Image) URLForSize180() string { return i.URLForSize(Size180) }

// URLForSize340 returns the URL of the image limited to 340px.
func (i Image) URLForSize340() string { return i.URLForSize(Size340) }

// URLForSize640 returns the URL of the image limited to 640px.
func (i Image) URLForSize640() string { return i.URLForSize(Size640) }

// URLForSize960 returns the URL of the image limited to 960px.
func (i Image) URLForSize960() string { return i.URLForSize(Size960) }

func splitTags(tags string) []string {
	if strings.TrimSpace(tags) == "" {
		return []string{}
	}
	return tagSeparator.Split(tags, -1)
}
