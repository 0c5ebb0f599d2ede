package dto

import (
	"encoding/json"
	"fmt"

	"github.com/YspCoder/pixabay/validation"
)

// PreviewSize is the dimension of a still preview of a video.
type PreviewSize string

const (
	Preview100x75    PreviewSize = "100x75"
	Preview200x150   PreviewSize = "200x150"
	Preview295x166   PreviewSize = "295x166"
	Preview640x360   PreviewSize = "640x360"
	Preview960x540   PreviewSize = "960x540"
	Preview1920x1080 PreviewSize = "1920x1080"
)

const previewURLFormat = "https://i.vimeocdn.com/video/%s_%s.jpg"

// VideoItem is one encode of a video.
type VideoItem struct {
	URL       string `json:"url"`
	Width     int    `json:"width" jsonschema:"minimum=1"`
	Height    int    `json:"height" jsonschema:"minimum=1"`
	Size      int    `json:"size" jsonschema:"minimum=1"`
	Thumbnail string `json:"thumbnail,omitempty"`
}

// Video is a single video hit.
type Video struct {
	ID        int      `json:"id" jsonschema:"minimum=0"`
	Type      string   `json:"type"`
	Tags      []string `json:"tags"`
	PageURL   string   `json:"pageURL"`
	Duration  int      `json:"duration" jsonschema:"minimum=0"`
	PictureID string   `json:"picture_id"`

	// Large is typically 1920x1080 and is nil when the source has no such encode.
	Large  *VideoItem `json:"large,omitempty"`
	Medium VideoItem  `json:"medium"`
	Small  VideoItem  `json:"small"`
	Tiny   VideoItem  `json:"tiny"`

	Views     int `json:"views" jsonschema:"minimum=0"`
	Downloads int `json:"downloads" jsonschema:"minimum=0"`
	Favorites int `json:"favorites" jsonschema:"minimum=0"`
	Likes     int `json:"likes" jsonschema:"minimum=0"`
	Comments  int `json:"comments" jsonschema:"minimum=0"`

	UserID       int    `json:"user_id" jsonschema:"minimum=0"`
	User         string `json:"user"`
	UserImageURL string `json:"userImageURL"`
}

// Payloads keep the documented fields as pointers so that a missing field
// fails validation instead of decoding to a zero value.
type videoItemPayload struct {
	URL       *string `json:"url"`
	Width     *int    `json:"width"`
	Height    *int    `json:"height"`
	Size      *int    `json:"size"`
	Thumbnail string  `json:"thumbnail"`
}

type videoPayload struct {
	ID        *int    `json:"id"`
	Type      *string `json:"type"`
	Tags      string  `json:"tags"`
	PageURL   *string `json:"pageURL"`
	Duration  *int    `json:"duration"`
	PictureID *string `json:"picture_id"`
	Videos    struct {
		Large  *videoItemPayload `json:"large"`
		Medium *videoItemPayload `json:"medium"`
		Small  *videoItemPayload `json:"small"`
		Tiny   *videoItemPayload `json:"tiny"`
	} `json:"videos"`
	Views        *int    `json:"views"`
	Downloads    *int    `json:"downloads"`
	Favorites    *int    `json:"favorites"`
	Likes        *int    `json:"likes"`
	Comments     *int    `json:"comments"`
	UserID       *int    `json:"user_id"`
	User         *string `json:"user"`
	UserImageURL *string `json:"userImageURL"`
}

// NewVideoItem decodes and validates a single encode.
func NewVideoItem(raw json.RawMessage) (*VideoItem, error) {
	var p videoItemPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, decodeError("VideoItem", err)
	}
	return newVideoItem("VideoItem", &p)
}

func newVideoItem(subject string, p *videoItemPayload) (*VideoItem, error) {
	if err := validation.Assert(subject, p, "notNull"); err != nil {
		return nil, err
	}
	err := validation.Validate(subject, []validation.Field{
		{Name: "url", Value: p.URL, Rules: "string"},
		{Name: "width", Value: p.Width, Rules: "positiveInteger"},
		{Name: "height", Value: p.Height, Rules: "positiveInteger"},
		{Name: "size", Value: p.Size, Rules: "positiveInteger"},
	})
	if err != nil {
		return nil, err
	}
	return &VideoItem{
		URL:       *p.URL,
		Width:     *p.Width,
		Height:    *p.Height,
		Size:      *p.Size,
		Thumbnail: p.Thumbnail,
	}, nil
}

// NewVideo decodes and validates a single video hit.
func NewVideo(raw json.RawMessage) (*Video, error) {
	var p videoPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, decodeError("Video", err)
	}

	err := validation.Validate("Video", []validation.Field{
		{Name: "id", Value: p.ID, Rules: "nonNegativeInteger"},
		{Name: "pageURL", Value: p.PageURL, Rules: "string"},
		{Name: "type", Value: p.Type, Rules: "string"},
		{Name: "duration", Value: p.Duration, Rules: "nonNegativeInteger"},
		{Name: "pictureId", Value: p.PictureID, Rules: "string"},
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

	video := &Video{
		ID:           *p.ID,
		Type:         *p.Type,
		Tags:         splitTags(p.Tags),
		PageURL:      *p.PageURL,
		Duration:     *p.Duration,
		PictureID:    *p.PictureID,
		Views:        *p.Views,
		Downloads:    *p.Downloads,
		Favorites:    *p.Favorites,
		Likes:        *p.Likes,
		Comments:     *p.Comments,
		UserID:       *p.UserID,
		User:         *p.User,
		UserImageURL: *p.UserImageURL,
	}

	// The API sends an empty large encode instead of omitting it.
	if large := p.Videos.Large; large != nil && !isEmptyItem(large) {
		item, err := newVideoItem("Video.videos.large", large)
		if err != nil {
			return nil, err
		}
		video.Large = item
	}
	for _, v := range []struct {
		name    string
		payload *videoItemPayload
		dst     *VideoItem
	}{
		{"medium", p.Videos.Medium, &video.Medium},
		{"small", p.Videos.Small, &video.Small},
		{"tiny", p.Videos.Tiny, &video.Tiny},
	} {
		item, err := newVideoItem("Video.videos."+v.name, v.payload)
		if err != nil {
			return nil, err
		}
		*v.dst = *item
	}
	return video, nil
}

func isEmptyItem(p *videoItemPayload) bool {
	return (p.URL == nil || *p.URL == "") && (p.Size == nil || *p.Size == 0)
}

// PreviewImage returns the URL of a still preview of the given size.
func (v Video) PreviewImage(size PreviewSize) string {
	return fmt.Sprintf(previewURLFormat, v.PictureID, size)
}

// PreviewImageFullHD returns the URL of the 1920x1080 preview.
func (v Video) PreviewImageFullHD() string { return v.PreviewImage(Preview1920x1080) }

// PreviewImage960x540 returns the URL of the 960x540 preview.
func (v Video) PreviewImage960x540() string { return v.PreviewImage(Preview960x540) }

// PreviewImage640x360 returns the URL of the 640x360 preview.
func (v Video) PreviewImage640x360() string { return v.PreviewImage(Preview640x360) }

// PreviewImage295x166 returns the URL of the 295x166 preview.
func (v Video) PreviewImage295x166() string { return v.PreviewImage(Preview295x166) }

// PreviewImage200x150 returns the URL of the 200x150 preview.
func (v Video) PreviewImage200x150() string { return v.PreviewImage(Preview200x150) }

// PreviewImage100x75 returns the URL of the 100x75 preview.
func (v Video) PreviewImage100x75() string { return v.PreviewImage(Preview100x75) }
