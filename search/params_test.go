package search

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YspCoder/pixabay/dto"
	"github.com/YspCoder/pixabay/validation"
)

func TestNewEmpty(t *testing.T) {
	p, err := New()
	require.NoError(t, err)

	_, ok := p.Query()
	assert.False(t, ok)
	assert.Nil(t, p.Colors())
	assert.Empty(t, p.WireForm().Map())
}

func TestNewWithOptions(t *testing.T) {
	p, err := New(
		WithQuery("yellow flowers"),
		WithLang(LangDE),
		WithImageType(ImageTypePhoto),
		WithOrientation(OrientationHorizontal),
		WithCategory(CategoryNature),
		WithMinWidth(0),
		WithColors(ColorYellow, ColorGreen),
		WithEditorsChoice(true),
		WithOrder(OrderLatest),
		WithPage(2),
		WithPerPage(50),
	)
	require.NoError(t, err)

	q, ok := p.Query()
	assert.True(t, ok)
	assert.Equal(t, "yellow flowers", q)

	lang, _ := p.Lang()
	assert.Equal(t, LangDE, lang)

	width, ok := p.MinWidth()
	assert.True(t, ok)
	assert.Equal(t, 0, width)

	assert.Equal(t, []Color{ColorYellow, ColorGreen}, p.Colors())

	perPage, _ := p.PerPage()
	assert.Equal(t, 50, perPage)
}

func TestPerPageBounds(t *testing.T) {
	tests := []struct {
		perPage int
		valid   bool
	}{
		{2, false},
		{3, true},
		{200, true},
		{201, false},
		{500, false},
	}

	for _, tt := range tests {
		_, err := New(WithPerPage(tt.perPage))
		if tt.valid {
			assert.NoError(t, err, "perPage=%d", tt.perPage)
			continue
		}
		var verr *validation.ValidationError
		require.ErrorAs(t, err, &verr, "perPage=%d", tt.perPage)
		assert.Equal(t, "SearchParams.perPage", verr.Name)
		assert.Equal(t, "Must be an integer, >= 3 and <= 200", verr.Reason)
	}
}

func TestInvalidOptions(t *testing.T) {
	tests := []struct {
		name  string
		opt   Option
		field string
	}{
		{"negative min width", WithMinWidth(-1), "SearchParams.minWidth"},
		{"negative min height", WithMinHeight(-10), "SearchParams.minHeight"},
		{"zero page", WithPage(0), "SearchParams.page"},
		{"unknown language", WithLang("xx"), "SearchParams.lang"},
		{"unknown image type", WithImageType("vector"), "SearchParams.imageType"},
		{"unknown video type", WithVideoType("clip"), "SearchParams.videoType"},
		{"unknown order", WithOrder("oldest"), "SearchParams.order"},
		{"unknown color", WithColors(ColorRed, "mauve"), "SearchParams.colors"},
		{"no colors", WithColors(), "SearchParams.colors"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := New(tt.opt)
			assert.Nil(t, p)

			var verr *validation.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Name)
			assert.Equal(t, dto.KindValidation, dto.KindOf(err))
		})
	}
}

func TestSetRuleMessage(t *testing.T) {
	_, err := New(WithOrientation("diagonal"))

	assert.EqualError(t, err, `value of SearchParams.orientation cannot be "diagonal": Must be one of the following: [all, horizontal, vertical]`)
}

func TestWithIsImmutable(t *testing.T) {
	base, err := New(WithQuery("cat"), WithColors(ColorRed))
	require.NoError(t, err)

	next, err := base.With(WithQuery("dog"), WithPage(3))
	require.NoError(t, err)

	q, _ := base.Query()
	assert.Equal(t, "cat", q)
	_, ok := base.Page()
	assert.False(t, ok)

	q, _ = next.Query()
	assert.Equal(t, "dog", q)
	assert.Equal(t, []Color{ColorRed}, next.Colors())

	colors := next.Colors()
	colors[0] = ColorBlue
	assert.Equal(t, []Color{ColorRed}, next.Colors())

	_, err = base.With(WithPerPage(1))
	require.Error(t, err)
	_, ok = base.PerPage()
	assert.False(t, ok)
}

func TestFromMapAliases(t *testing.T) {
	for _, key := range []string{"min_width", "MinWidth", "width", "minWidth", " WIDTH "} {
		t.Run(key, func(t *testing.T) {
			p, err := FromMap(map[string]interface{}{key: 100})
			require.NoError(t, err)

			width, ok := p.MinWidth()
			assert.True(t, ok)
			assert.Equal(t, 100, width)
		})
	}
}

func TestFromMap(t *testing.T) {
	p, err := FromMap(map[string]interface{}{
		"q":              "sunset",
		"image_type":     "illustration",
		"video":          "film",
		"colors":         "red, blue",
		"editors_choice": false,
		"safesearch":     true,
		"per_page":       uint8(20),
		"category":       nil,
	})
	require.NoError(t, err)

	imageType, _ := p.ImageType()
	assert.Equal(t, ImageTypeIllustration, imageType)
	videoType, _ := p.VideoType()
	assert.Equal(t, VideoTypeFilm, videoType)
	assert.Equal(t, []Color{ColorRed, ColorBlue}, p.Colors())

	editors, ok := p.EditorsChoice()
	assert.True(t, ok)
	assert.False(t, editors)

	perPage, _ := p.PerPage()
	assert.Equal(t, 20, perPage)

	_, ok = p.Category()
	assert.False(t, ok)
}

func TestFromMapUnsupportedKey(t *testing.T) {
	p, err := FromMap(map[string]interface{}{"q": "cat", "bogus": 1})
	assert.Nil(t, p)

	var derr *dto.Error
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, dto.KindUnsupportedParameter, derr.Kind)
	assert.Equal(t, "bogus", derr.Param)
	assert.True(t, errors.Is(err, dto.ErrUnsupportedParameter))
}

func TestFromMapTypeMismatch(t *testing.T) {
	tests := []struct {
		key   string
		value interface{}
		field string
	}{
		{"page", "2", "SearchParams.page"},
		{"safesearch", "yes", "SearchParams.safeSearch"},
		{"q", 42, "SearchParams.query"},
		{"per_page", 2.5, "SearchParams.perPage"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			_, err := FromMap(map[string]interface{}{tt.key: tt.value})

			var verr *validation.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Name)
		})
	}
}

func TestFromMapReportsFirstSortedError(t *testing.T) {
	_, err := FromMap(map[string]interface{}{"page": 0, "lang": "xx"})

	var verr *validation.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "SearchParams.lang", verr.Name)
}
