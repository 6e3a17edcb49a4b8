package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	defaultBaseURL = "https://www.googleapis.com/youtube/v3"

	// maxPageSize is the largest page the playlistItems endpoint allows.
	maxPageSize = 50
)

// FetchError is any failure to reach or receive a successful response from
// the YouTube API. The request as a whole fails; no partial results survive.
type FetchError struct {
	Endpoint string
	Status   int
	Err      error
}

func (e *FetchError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("youtube %s: status %d", e.Endpoint, e.Status)
	}
	return fmt.Sprintf("youtube %s: %v", e.Endpoint, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// YouTubeClient talks to the YouTube Data API v3.
type YouTubeClient struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

func NewYouTubeClient(apiKey, baseURL string) *YouTubeClient {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &YouTubeClient{
		apiKey:  apiKey,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type ytThumbnail struct {
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type ytThumbnails struct {
	Default ytThumbnail `json:"default"`
	Medium  ytThumbnail `json:"medium"`
	High    ytThumbnail `json:"high"`
}

func (t ytThumbnails) toSet() ThumbnailSet {
	return ThumbnailSet{
		Default: Thumbnail(t.Default),
		Medium:  Thumbnail(t.Medium),
		High:    Thumbnail(t.High),
	}
}

type ytPlaylistsResponse struct {
	Items []struct {
		ID      string `json:"id"`
		Snippet struct {
			Title        string       `json:"title"`
			Description  string       `json:"description"`
			ChannelTitle string       `json:"channelTitle"`
			Thumbnails   ytThumbnails `json:"thumbnails"`
		} `json:"snippet"`
		ContentDetails struct {
			ItemCount int `json:"itemCount"`
		} `json:"contentDetails"`
	} `json:"items"`
}

// FetchPlaylists resolves live metadata for all ids in a single batched
// request. Ids the platform no longer knows are simply absent from the
// result, not an error.
func (c *YouTubeClient) FetchPlaylists(ctx context.Context, ids []string) ([]PlaylistInfo, error) {
	val := url.Values{}
	val.Set("part", "snippet,contentDetails")
	val.Set("id", strings.Join(ids, ","))
	val.Set("key", c.apiKey)

	var body ytPlaylistsResponse
	if err := c.getJSON(ctx, "playlists", val, &body); err != nil {
		return nil, err
	}

	out := make([]PlaylistInfo, 0, len(body.Items))
	for _, it := range body.Items {
		out = append(out, PlaylistInfo{
			ID:           it.ID,
			Title:        it.Snippet.Title,
			Description:  it.Snippet.Description,
			ChannelTitle: it.Snippet.ChannelTitle,
			Thumbnails:   it.Snippet.Thumbnails.toSet(),
			ItemCount:    it.ContentDetails.ItemCount,
		})
	}
	return out, nil
}

type ytPlaylistItemsResponse struct {
	Items []struct {
		Snippet struct {
			Title       string       `json:"title"`
			Description string       `json:"description"`
			Thumbnails  ytThumbnails `json:"thumbnails"`
			Position    int          `json:"position"`
			ResourceID  struct {
				VideoID string `json:"videoId"`
			} `json:"resourceId"`
		} `json:"snippet"`
	} `json:"items"`
	NextPageToken string `json:"nextPageToken"`
}

// FetchPlaylistItems fetches every video of a playlist, following the
// continuation cursor page by page and concatenating in page order. Pages
// are requested sequentially; a failure on any page discards everything.
func (c *YouTubeClient) FetchPlaylistItems(ctx context.Context, playlistID string) ([]Lesson, error) {
	var all []Lesson
	pageToken := ""

	for {
		val := url.Values{}
		val.Set("part", "snippet")
		val.Set("maxResults", fmt.Sprint(maxPageSize))
		val.Set("playlistId", playlistID)
		val.Set("key", c.apiKey)
		if pageToken != "" {
			val.Set("pageToken", pageToken)
		}

		var body ytPlaylistItemsResponse
		if err := c.getJSON(ctx, "playlistItems", val, &body); err != nil {
			return nil, err
		}

		for _, it := range body.Items {
			all = append(all, Lesson{
				ID:          it.Snippet.ResourceID.VideoID,
				Title:       it.Snippet.Title,
				Description: it.Snippet.Description,
				Thumbnails:  it.Snippet.Thumbnails.toSet(),
				Position:    it.Snippet.Position,
			})
		}

		if body.NextPageToken == "" {
			return all, nil
		}
		pageToken = body.NextPageToken
	}
}

func (c *YouTubeClient) getJSON(ctx context.Context, endpoint string, val url.Values, out any) error {
	reqURL := c.baseURL + "/" + endpoint + "?" + val.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return &FetchError{Endpoint: endpoint, Err: err}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &FetchError{Endpoint: endpoint, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &FetchError{Endpoint: endpoint, Status: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &FetchError{Endpoint: endpoint, Err: err}
	}
	return nil
}

// EmbedURL builds the player embed URL for a video. Pure string
// construction, no I/O.
func EmbedURL(videoID string) string {
	return "https://www.youtube.com/embed/" + videoID + "?rel=0&modestbranding=1"
}
