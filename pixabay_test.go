package pixabay

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YspCoder/pixabay/dto"
	"github.com/YspCoder/pixabay/search"
	"github.com/YspCoder/pixabay/utils"
)

func newServer(t *testing.T, status int, body string, headers map[string]string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		for name, value := range headers {
			w.Header().Set(name, value)
		}
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

const imageHit = `{"id":1,"pageURL":"https://pixabay.com/p-1/","type":"photo","tags":"a, b",
	"previewURL":"https://cdn.pixabay.com/x_150.png","previewWidth":150,"previewHeight":100,
	"webformatURL":"https://pixabay.com/get/x_640.png","webformatWidth":640,"webformatHeight":426,
	"views":1,"downloads":0,"favorites":0,"likes":0,"comments":0,
	"user_id":2,"user":"u","userImageURL":""}`

// videoHit fills in every field of a video hit around the given encodes.
func videoHit(videos string) string {
	return `{"id":7,"pageURL":"https://pixabay.com/videos/id-7/","type":"film","tags":"sea","duration":12,
	"picture_id":"abc123","views":1,"downloads":0,"favorites":0,"likes":0,"comments":0,
	"user_id":2,"user":"u","userImageURL":"","videos":` + videos + `}`
}

func TestNewImageAPIRequiresKey(t *testing.T) {
	t.Setenv("PIXABAY_API_KEY", "")

	client, err := NewImageAPI()
	assert.Nil(t, client)
	assert.True(t, errors.Is(err, dto.ErrInvalidCredentials))
}

func TestImageFetch(t *testing.T) {
	server := newServer(t, http.StatusOK,
		`{"total":1,"totalHits":1,"hits":[`+imageHit+`]}`,
		map[string]string{"X-Ratelimit-Limit": "100", "X-Ratelimit-Remaining": "42"})

	client, err := NewImageAPI(SetAPIKey("secret"), SetEndpoint(server.URL), SetLogLevel(utils.LogLevelOff))
	require.NoError(t, err)

	params, err := search.New(search.WithQuery("flowers"))
	require.NoError(t, err)

	page, err := client.Fetch(context.Background(), params)
	require.NoError(t, err)
	require.Len(t, page.Hits, 1)
	assert.Equal(t, []string{"a", "b"}, page.Hits[0].Tags)
	assert.Equal(t, "https://pixabay.com/get/x_960.png", page.Hits[0].URLForSize960())

	rl, ok := page.RateLimit()
	require.True(t, ok)
	assert.Equal(t, 42, rl.Remaining)
}

func TestImageFetchRateLimited(t *testing.T) {
	server := newServer(t, http.StatusTooManyRequests, "", nil)

	client, err := NewImageAPI(SetAPIKey("secret"), SetEndpoint(server.URL), SetLogLevel(utils.LogLevelOff))
	require.NoError(t, err)

	page, err := client.Fetch(context.Background(), nil)
	assert.Nil(t, page)
	assert.True(t, errors.Is(err, dto.ErrRateLimited))
}

func TestImageFetchInvalidCredentials(t *testing.T) {
	server := newServer(t, http.StatusBadRequest, "[ERROR 400] API key is invalid", nil)

	client, err := NewImageAPI(SetAPIKey("wrong"), SetEndpoint(server.URL), SetLogLevel(utils.LogLevelOff))
	require.NoError(t, err)

	_, err = client.Fetch(context.Background(), nil)
	assert.True(t, errors.Is(err, dto.ErrInvalidCredentials))
}

func TestVideoFetch(t *testing.T) {
	var path string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		_, _ = w.Write([]byte(`{"total":1,"totalHits":1,"hits":[` + videoHit(`{
			"medium":{"url":"m.mp4","width":1280,"height":720,"size":10},
			"small":{"url":"s.mp4","width":960,"height":540,"size":5},
			"tiny":{"url":"t.mp4","width":640,"height":360,"size":2}}`) + `]}`))
	}))
	defer server.Close()

	client, err := NewVideoAPI(SetAPIKey("secret"), SetEndpoint(server.URL), SetHTTPClient(server.Client()), SetLogLevel(utils.LogLevelOff))
	require.NoError(t, err)

	page, err := client.FetchMap(context.Background(), map[string]interface{}{"q": "sea"})
	require.NoError(t, err)

	assert.Equal(t, "/videos/", path)
	require.Len(t, page.Hits, 1)
	assert.Nil(t, page.Hits[0].Large)
	assert.Equal(t, "https://i.vimeocdn.com/video/abc123_295x166.jpg", page.Hits[0].PreviewImage295x166())
}

func TestVideoFetchMissingEncode(t *testing.T) {
	server := newServer(t, http.StatusOK, `{"total":1,"totalHits":1,"hits":[`+
		videoHit(`{"small":{"url":"s","width":1,"height":1,"size":1},"tiny":{"url":"t","width":1,"height":1,"size":1}}`)+`]}`, nil)

	client, err := NewVideoAPI(SetAPIKey("secret"), SetEndpoint(server.URL), SetLogLevel(utils.LogLevelOff))
	require.NoError(t, err)

	_, err = client.Fetch(context.Background(), nil)
	assert.Equal(t, dto.KindValidation, dto.KindOf(err))
	assert.Contains(t, err.Error(), "Video.videos.medium")
}

func TestImageFetchIncompleteHit(t *testing.T) {
	server := newServer(t, http.StatusOK, `{"total":1,"totalHits":1,"hits":[{"id":1,"tags":"a"}]}`, nil)

	client, err := NewImageAPI(SetAPIKey("secret"), SetEndpoint(server.URL), SetLogLevel(utils.LogLevelOff))
	require.NoError(t, err)

	page, err := client.Fetch(context.Background(), nil)
	assert.Nil(t, page)
	assert.Equal(t, dto.KindValidation, dto.KindOf(err))
	assert.Contains(t, err.Error(), "Image.pageURL")
}
