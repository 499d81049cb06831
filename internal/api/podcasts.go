package api

import (
	"context"
	"encoding/json"
	"net/url"
)

type podcastRequest struct {
	PodcastID any `json:"podcast_id"`
	UserID    any `json:"user_id"`
}

func newPodcastRequest(userID, podcastID string) podcastRequest {
	return podcastRequest{
		PodcastID: bodyID(podcastID),
		UserID:    bodyID(userID),
	}
}

type checkPodcastResponse struct {
	Exists *bool `json:"exists"`
}

func (c *Client) CheckPodcast(ctx context.Context, userID, podcastName string) (bool, error) {
	query := url.Values{
		"user_id":      []string{userID},
		"podcast_name": []string{podcastName},
	}

	var resp checkPodcastResponse
	if err := c.GetInto(ctx, "/check_podcast", query, nil, &resp); err != nil {
		return false, err
	}
	if resp.Exists == nil {
		return false, missingField("exists")
	}
	return *resp.Exists, nil
}

func (c *Client) DownloadAllPodcast(ctx context.Context, userID, podcastID string) (json.RawMessage, error) {
	var v json.RawMessage
	if err := c.postJSON(ctx, "/download_all_podcast", newPodcastRequest(userID, podcastID), &v); err != nil {
		return nil, err
	}
	return v, nil
}

type autoDownloadRequest struct {
	podcastRequest
	AutoDownload bool `json:"auto_download"`
}

type autoDownloadResponse struct {
	AutoDownload *bool `json:"auto_download"`
}

func (c *Client) EnableAutoDownload(ctx context.Context, userID, podcastID string, enabled bool) (json.RawMessage, error) {
	var v json.RawMessage
	if err := c.postJSON(ctx, "/enable_auto_download", autoDownloadRequest{
		podcastRequest: newPodcastRequest(userID, podcastID),
		AutoDownload:   enabled,
	}, &v); err != nil {
		return nil, err
	}
	return v, nil
}

func (c *Client) GetAutoDownloadStatus(ctx context.Context, userID, podcastID string) (bool, error) {
	var resp autoDownloadResponse
	if err := c.postJSON(ctx, "/get_auto_download_status", newPodcastRequest(userID, podcastID), &resp); err != nil {
		return false, err
	}
	if resp.AutoDownload == nil {
		return false, missingField("auto_download")
	}
	return *resp.AutoDownload, nil
}

// SkipTimes are in seconds from the start and from the end of an episode.
type SkipTimes struct {
	Start int `json:"start_skip" yaml:"start"`
	End   int `json:"end_skip" yaml:"end"`
}

type adjustSkipTimesRequest struct {
	podcastRequest
	SkipTimes
}

func (c *Client) AdjustSkipTimes(ctx context.Context, userID, podcastID string, times SkipTimes) (json.RawMessage, error) {
	var v json.RawMessage
	if err := c.postJSON(ctx, "/adjust_skip_times", adjustSkipTimesRequest{
		podcastRequest: newPodcastRequest(userID, podcastID),
		SkipTimes:      times,
	}, &v); err != nil {
		return nil, err
	}
	return v, nil
}

type skipTimesResponse struct {
	Start *int `json:"start_skip"`
	End   *int `json:"end_skip"`
}

func (c *Client) GetAutoSkipTimes(ctx context.Context, userID, podcastID string) (*SkipTimes, error) {
	var resp skipTimesResponse
	if err := c.postJSON(ctx, "/get_auto_skip_times", newPodcastRequest(userID, podcastID), &resp); err != nil {
		return nil, err
	}
	if resp.Start == nil {
		return nil, missingField("start_skip")
	}
	if resp.End == nil {
		return nil, missingField("end_skip")
	}
	return &SkipTimes{Start: *resp.Start, End: *resp.End}, nil
}

// PodcastValues describes a feed to subscribe a user to.
type PodcastValues struct {
	Title        string `json:"pod_title"`
	Artwork      string `json:"pod_artwork"`
	Author       string `json:"pod_author"`
	Categories   string `json:"categories"`
	Description  string `json:"pod_description"`
	EpisodeCount int    `json:"pod_episode_count"`
	FeedURL      string `json:"pod_feed_url"`
	Website      string `json:"pod_website"`
	Explicit     bool   `json:"pod_explicit"`
}

type podcastValuesBody struct {
	PodcastValues
	UserID any `json:"user_id"`
}

type addPodcastRequest struct {
	PodcastValues podcastValuesBody `json:"podcast_values"`
	UserID        any               `json:"user_id"`
}

func (c *Client) AddPodcast(ctx context.Context, userID string, podcast PodcastValues) (json.RawMessage, error) {
	var v json.RawMessage
	if err := c.postJSON(ctx, "/add_podcast", addPodcastRequest{
		PodcastValues: podcastValuesBody{
			PodcastValues: podcast,
			UserID:        bodyID(userID),
		},
		UserID: bodyID(userID),
	}, &v); err != nil {
		return nil, err
	}
	return v, nil
}

type removePodcastNameRequest struct {
	UserID      any    `json:"user_id"`
	PodcastName string `json:"podcast_name"`
	PodcastURL  string `json:"podcast_url"`
}

// RemovePodcastByName unsubscribes a user from the podcast with the given
// title and feed URL.
func (c *Client) RemovePodcastByName(ctx context.Context, userID, podcastName, feedURL string) (json.RawMessage, error) {
	var v json.RawMessage
	if err := c.postJSON(ctx, "/remove_podcast_name", removePodcastNameRequest{
		UserID:      bodyID(userID),
		PodcastName: podcastName,
		PodcastURL:  feedURL,
	}, &v); err != nil {
		return nil, err
	}
	return v, nil
}

type podcastIDResponse struct {
	PodcastID *json.RawMessage `json:"podcast_id"`
}

func (c *Client) GetPodcastIDFromEpisode(ctx context.Context, userID, episodeID string) (json.RawMessage, error) {
	query := url.Values{
		"user_id": []string{userID},
	}
	return c.getPodcastID(ctx, "/get_podcast_id_from_ep"+pathID(episodeID), query)
}

func (c *Client) GetPodcastIDFromEpisodeName(ctx context.Context, userID, episodeTitle, episodeURL string) (json.RawMessage, error) {
	query := url.Values{
		"user_id":      []string{userID},
		"episode_name": []string{episodeTitle},
		"episode_url":  []string{episodeURL},
	}
	return c.getPodcastID(ctx, "/get_podcast_id_from_ep_name", query)
}

func (c *Client) getPodcastID(ctx context.Context, path string, query url.Values) (json.RawMessage, error) {
	var resp podcastIDResponse
	if err := c.GetInto(ctx, path, query, nil, &resp); err != nil {
		return nil, err
	}
	if resp.PodcastID == nil {
		return nil, missingField("podcast_id")
	}
	return *resp.PodcastID, nil
}
