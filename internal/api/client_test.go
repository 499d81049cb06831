package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedRequest struct {
	method  string
	path    string
	rawPath string
	query   string
	header  http.Header
	body    string
}

func newTestServer(t *testing.T, status int, body string) (*Client, *recordedRequest) {
	t.Helper()

	var rec recordedRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		rec = recordedRequest{
			method:  r.Method,
			path:    r.URL.Path,
			rawPath: r.URL.EscapedPath(),
			query:   r.URL.RawQuery,
			header:  r.Header.Clone(),
			body:    string(b),
		}

		w.WriteHeader(status)
		io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)

	client := NewClient(ClientOptions{
		BaseURL:   srv.URL + "/",
		Headers:   map[string]string{"X-Custom": "custom"},
		UserAgent: "pinectl/test",
	})

	return client, &rec
}

func TestClient_Headers(t *testing.T) {
	client, rec := newTestServer(t, http.StatusOK, `true`)
	client.SetAPIKey("secret-key")

	_, err := client.GuestStatus(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "custom", rec.header.Get("X-Custom"))
	assert.Equal(t, "secret-key", rec.header.Get("Api-Key"))
	assert.Equal(t, "pinectl/test", rec.header.Get("User-Agent"))
}

func TestClient_NoAPIKeyHeaderByDefault(t *testing.T) {
	client, rec := newTestServer(t, http.StatusOK, `true`)

	_, err := client.GuestStatus(context.Background())
	require.NoError(t, err)

	assert.Empty(t, rec.header.Get("Api-Key"))
}

func TestClient_StatusError(t *testing.T) {
	for _, status := range []int{
		http.StatusCreated,
		http.StatusNoContent,
		http.StatusNotFound,
		http.StatusInternalServerError,
	} {
		client, _ := newTestServer(t, status, `{"detail":"nope"}`)

		_, err := client.GuestStatus(context.Background())
		require.Error(t, err)

		code, ok := StatusCode(err)
		assert.True(t, ok)
		assert.Equal(t, status, code)

		var serr *StatusError
		require.ErrorAs(t, err, &serr)
		if status != http.StatusNoContent {
			assert.Contains(t, string(serr.Body), "nope")
		}
	}
}

func TestClient_MalformedJSON(t *testing.T) {
	client, _ := newTestServer(t, http.StatusOK, `{not json`)

	_, err := client.GetTheme(context.Background(), "1")
	require.Error(t, err)

	_, ok := StatusCode(err)
	assert.False(t, ok)
}

func TestClient_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	client := NewClient(ClientOptions{BaseURL: srv.URL})

	_, err := client.GuestStatus(context.Background())
	require.Error(t, err)

	_, ok := StatusCode(err)
	assert.False(t, ok)
}

func TestClient_Endpoints(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name   string
		reply  string
		call   func(c *Client) error
		method string
		path   string
		query  string
		body   string
	}{
		{
			name:   "clean expired sessions",
			reply:  `{"status":"ok"}`,
			call:   func(c *Client) error { _, err := c.CleanExpiredSessions(ctx); return err },
			method: http.MethodPost,
			path:   "/clean_expired_sessions/",
		},
		{
			name:   "check saved session",
			reply:  `42`,
			call:   func(c *Client) error { _, err := c.CheckSavedSession(ctx); return err },
			method: http.MethodGet,
			path:   "/check_saved_session/",
		},
		{
			name:   "guest status",
			reply:  `false`,
			call:   func(c *Client) error { _, err := c.GuestStatus(ctx); return err },
			method: http.MethodGet,
			path:   "/guest_status",
		},
		{
			name:   "user details",
			reply:  `{"Username":"alice"}`,
			call:   func(c *Client) error { _, err := c.GetUserDetails(ctx, "alice"); return err },
			method: http.MethodGet,
			path:   "/user_details/alice",
		},
		{
			name:   "user details by id",
			reply:  `{"UserID":7}`,
			call:   func(c *Client) error { _, err := c.GetUserDetailsByID(ctx, "7"); return err },
			method: http.MethodGet,
			path:   "/user_details_id/7",
		},
		{
			name:   "create session",
			reply:  `null`,
			call:   func(c *Client) error { return c.CreateSession(ctx, "7") },
			method: http.MethodPost,
			path:   "/create_session/7",
		},
		{
			name:   "verify password",
			reply:  `{"is_password_valid":true}`,
			call:   func(c *Client) error { _, err := c.VerifyPassword(ctx, "alice", "s3cret"); return err },
			method: http.MethodPost,
			path:   "/verify_password/",
			body:   `{"username":"alice","password":"s3cret"}`,
		},
		{
			name:   "return episodes",
			reply:  `{"episodes":[]}`,
			call:   func(c *Client) error { _, err := c.ReturnEpisodes(ctx, "7"); return err },
			method: http.MethodGet,
			path:   "/return_episodes/7",
		},
		{
			name:  "check episode playback",
			reply: `{"playback_position":30}`,
			call: func(c *Client) error {
				_, err := c.CheckEpisodePlayback(ctx, "7", "Pilot", "https://example.com/ep1.mp3")
				return err
			},
			method: http.MethodPost,
			path:   "/check_episode_playback",
			body:   `{"user_id":7,"episode_title":"Pilot","episode_url":"https://example.com/ep1.mp3"}`,
		},
		{
			name:   "get theme",
			reply:  `"nordic"`,
			call:   func(c *Client) error { _, err := c.GetTheme(ctx, "7"); return err },
			method: http.MethodGet,
			path:   "/get_theme/7",
		},
		{
			name:   "check podcast",
			reply:  `{"exists":true}`,
			call:   func(c *Client) error { _, err := c.CheckPodcast(ctx, "7", "Go Time"); return err },
			method: http.MethodGet,
			path:   "/check_podcast",
			query:  "podcast_name=Go+Time&user_id=7",
		},
		{
			name:   "download all podcast",
			reply:  `{"detail":"queued"}`,
			call:   func(c *Client) error { _, err := c.DownloadAllPodcast(ctx, "7", "12"); return err },
			method: http.MethodPost,
			path:   "/download_all_podcast",
			body:   `{"podcast_id":12,"user_id":7}`,
		},
		{
			name:   "enable auto download",
			reply:  `{"detail":"ok"}`,
			call:   func(c *Client) error { _, err := c.EnableAutoDownload(ctx, "7", "12", true); return err },
			method: http.MethodPost,
			path:   "/enable_auto_download",
			body:   `{"podcast_id":12,"user_id":7,"auto_download":true}`,
		},
		{
			name:   "get auto download status",
			reply:  `{"auto_download":false}`,
			call:   func(c *Client) error { _, err := c.GetAutoDownloadStatus(ctx, "7", "12"); return err },
			method: http.MethodPost,
			path:   "/get_auto_download_status",
			body:   `{"podcast_id":12,"user_id":7}`,
		},
		{
			name:  "adjust skip times",
			reply: `{"detail":"ok"}`,
			call: func(c *Client) error {
				_, err := c.AdjustSkipTimes(ctx, "7", "12", SkipTimes{Start: 30, End: 15})
				return err
			},
			method: http.MethodPost,
			path:   "/adjust_skip_times",
			body:   `{"podcast_id":12,"user_id":7,"start_skip":30,"end_skip":15}`,
		},
		{
			name:   "get auto skip times",
			reply:  `{"start_skip":30,"end_skip":15}`,
			call:   func(c *Client) error { _, err := c.GetAutoSkipTimes(ctx, "7", "12"); return err },
			method: http.MethodPost,
			path:   "/get_auto_skip_times",
			body:   `{"podcast_id":12,"user_id":7}`,
		},
		{
			name:   "mfa settings",
			reply:  `{"mfa_enabled":true}`,
			call:   func(c *Client) error { _, err := c.GetMFASettings(ctx, "7"); return err },
			method: http.MethodGet,
			path:   "/mfa_settings/7",
		},
		{
			name:   "save mfa secret",
			reply:  `{"status":"ok"}`,
			call:   func(c *Client) error { _, err := c.SaveMFASecret(ctx, "7", "ABCDEF"); return err },
			method: http.MethodPost,
			path:   "/save_mfa_secret",
			body:   `{"user_id":7,"mfa_secret":"ABCDEF"}`,
		},
		{
			name:  "add podcast",
			reply: `{"success":true}`,
			call: func(c *Client) error {
				_, err := c.AddPodcast(ctx, "7", PodcastValues{Title: "Go Time", FeedURL: "https://example.com/feed"})
				return err
			},
			method: http.MethodPost,
			path:   "/add_podcast",
			body: `{"podcast_values":{"pod_title":"Go Time","pod_artwork":"","pod_author":"","categories":"",` +
				`"pod_description":"","pod_episode_count":0,"pod_feed_url":"https://example.com/feed",` +
				`"pod_website":"","pod_explicit":false,"user_id":7},"user_id":7}`,
		},
		{
			name:  "remove podcast by name",
			reply: `{"success":true}`,
			call: func(c *Client) error {
				_, err := c.RemovePodcastByName(ctx, "7", "Go Time", "https://example.com/feed")
				return err
			},
			method: http.MethodPost,
			path:   "/remove_podcast_name",
			body:   `{"user_id":7,"podcast_name":"Go Time","podcast_url":"https://example.com/feed"}`,
		},
		{
			name:   "podcast id from episode",
			reply:  `{"podcast_id":12}`,
			call:   func(c *Client) error { _, err := c.GetPodcastIDFromEpisode(ctx, "7", "300"); return err },
			method: http.MethodGet,
			path:   "/get_podcast_id_from_ep/300",
			query:  "user_id=7",
		},
		{
			name:  "podcast id from episode name",
			reply: `{"podcast_id":12}`,
			call: func(c *Client) error {
				_, err := c.GetPodcastIDFromEpisodeName(ctx, "7", "Pilot", "https://example.com/1.mp3")
				return err
			},
			method: http.MethodGet,
			path:   "/get_podcast_id_from_ep_name",
			query:  "episode_name=Pilot&episode_url=https%3A%2F%2Fexample.com%2F1.mp3&user_id=7",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, rec := newTestServer(t, http.StatusOK, tt.reply)

			require.NoError(t, tt.call(client))

			assert.Equal(t, tt.method, rec.method)
			assert.Equal(t, tt.path, rec.path)
			assert.Equal(t, tt.query, rec.query)
			if tt.body != "" {
				assert.JSONEq(t, tt.body, rec.body)
				assert.Equal(t, "application/json", rec.header.Get("Content-Type"))
			} else {
				assert.Empty(t, rec.body)
			}
		})
	}
}

func TestClient_PathParamsAreEscaped(t *testing.T) {
	client, rec := newTestServer(t, http.StatusOK, `{}`)

	_, err := client.GetUserDetails(context.Background(), "jane doe/admin")
	require.NoError(t, err)

	assert.Equal(t, "/user_details/jane doe/admin", rec.path)
	assert.Equal(t, "/user_details/jane%20doe%2Fadmin", rec.rawPath)
}

func TestClient_DerivedValues(t *testing.T) {
	ctx := context.Background()

	client, _ := newTestServer(t, http.StatusOK, `{"is_password_valid":true}`)
	valid, err := client.VerifyPassword(ctx, "alice", "pw")
	require.NoError(t, err)
	assert.True(t, valid)

	client, _ = newTestServer(t, http.StatusOK, `{"episodes":[{"episodetitle":"Pilot"}],"other":1}`)
	episodes, err := client.ReturnEpisodes(ctx, "7")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"episodetitle":"Pilot"}]`, string(episodes))

	client, _ = newTestServer(t, http.StatusOK, `{"start_skip":30,"end_skip":15}`)
	times, err := client.GetAutoSkipTimes(ctx, "7", "12")
	require.NoError(t, err)
	assert.Equal(t, &SkipTimes{Start: 30, End: 15}, times)

	client, _ = newTestServer(t, http.StatusOK, `{"episodes":[]}`)
	episodes, err = client.ReturnEpisodes(ctx, "7")
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(episodes))

	client, _ = newTestServer(t, http.StatusOK, `{"podcast_id":"abc"}`)
	podcastID, err := client.GetPodcastIDFromEpisode(ctx, "7", "300")
	require.NoError(t, err)
	assert.JSONEq(t, `"abc"`, string(podcastID))
}

func TestClient_MissingDerivedField(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name  string
		field string
		reply string
		call  func(c *Client) error
	}{
		{
			name:  "verify password",
			field: "is_password_valid",
			reply: `{"unexpected":1}`,
			call:  func(c *Client) error { _, err := c.VerifyPassword(ctx, "alice", "pw"); return err },
		},
		{
			name:  "verify password null",
			field: "is_password_valid",
			reply: `{"is_password_valid":null}`,
			call:  func(c *Client) error { _, err := c.VerifyPassword(ctx, "alice", "pw"); return err },
		},
		{
			name:  "return episodes",
			field: "episodes",
			reply: `{}`,
			call:  func(c *Client) error { _, err := c.ReturnEpisodes(ctx, "7"); return err },
		},
		{
			name:  "return episodes null",
			field: "episodes",
			reply: `{"episodes":null}`,
			call:  func(c *Client) error { _, err := c.ReturnEpisodes(ctx, "7"); return err },
		},
		{
			name:  "check podcast",
			field: "exists",
			reply: `{}`,
			call:  func(c *Client) error { _, err := c.CheckPodcast(ctx, "7", "Go Time"); return err },
		},
		{
			name:  "auto download status",
			field: "auto_download",
			reply: `{}`,
			call:  func(c *Client) error { _, err := c.GetAutoDownloadStatus(ctx, "7", "12"); return err },
		},
		{
			name:  "skip times without end",
			field: "end_skip",
			reply: `{"start_skip":30}`,
			call:  func(c *Client) error { _, err := c.GetAutoSkipTimes(ctx, "7", "12"); return err },
		},
		{
			name:  "mfa settings",
			field: "mfa_enabled",
			reply: `{}`,
			call:  func(c *Client) error { _, err := c.GetMFASettings(ctx, "7"); return err },
		},
		{
			name:  "podcast id",
			field: "podcast_id",
			reply: `{}`,
			call:  func(c *Client) error { _, err := c.GetPodcastIDFromEpisode(ctx, "7", "300"); return err },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestServer(t, http.StatusOK, tt.reply)

			err := tt.call(client)
			require.ErrorIs(t, err, ErrUnexpectedResponse)
			assert.Equal(t, `unexpected response: missing "`+tt.field+`"`, err.Error())

			_, ok := StatusCode(err)
			assert.False(t, ok)
		})
	}
}

func TestDecodeEpisodes(t *testing.T) {
	episodes, err := DecodeEpisodes(json.RawMessage(`[
		{"episodeid": 3, "podcastname": "Go Time", "episodetitle": "Pilot",
		 "episodepubdate": "2024-01-02T03:04:05", "episodeurl": "https://example.com/1.mp3",
		 "episodeduration": 3600, "listenduration": 120}
	]`))
	require.NoError(t, err)
	require.Len(t, episodes, 1)

	ep := episodes[0]
	assert.Equal(t, int64(3), ep.ID)
	assert.Equal(t, "Go Time", ep.PodcastName)
	assert.Equal(t, "Pilot", ep.Title)
	assert.Equal(t, 3600, ep.Duration)
	require.NotNil(t, ep.ListenDuration)
	assert.Equal(t, 120, *ep.ListenDuration)

	episodes, err = DecodeEpisodes(json.RawMessage(`null`))
	require.NoError(t, err)
	assert.Empty(t, episodes)

	_, err = DecodeEpisodes(json.RawMessage(`"not a list"`))
	assert.Error(t, err)
}

func TestBodyID(t *testing.T) {
	assert.Equal(t, json.Number("42"), bodyID("42"))
	assert.Equal(t, "042", bodyID("042"))
	assert.Equal(t, "0", bodyID("0").(json.Number).String())
	assert.Equal(t, "abc-1", bodyID("abc-1"))
	assert.Equal(t, "", bodyID(""))
}
