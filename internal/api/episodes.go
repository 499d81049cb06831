package api

import (
	"context"
	"encoding/json"
	"fmt"
)

type Episode struct {
	ID int64 `json:"episodeid,omitempty" yaml:"id,omitempty"`

	PodcastName string `json:"podcastname" yaml:"podcastName"`

	Title string `json:"episodetitle" yaml:"title"`

	PubDate string `json:"episodepubdate" yaml:"pubDate"`

	Description string `json:"episodedescription,omitempty" yaml:"description,omitempty"`

	Artwork string `json:"episodeartwork,omitempty" yaml:"artwork,omitempty"`

	URL string `json:"episodeurl" yaml:"url"`

	// Seconds.
	Duration int `json:"episodeduration" yaml:"duration"`

	ListenDuration *int `json:"listenduration,omitempty" yaml:"listenDuration,omitempty"`
}

type returnEpisodesResponse struct {
	Episodes *json.RawMessage `json:"episodes"`
}

// ReturnEpisodes returns the raw "episodes" field of the reply. A reply
// without the field, or with a null one, is an ErrUnexpectedResponse.
func (c *Client) ReturnEpisodes(ctx context.Context, userID string) (json.RawMessage, error) {
	var resp returnEpisodesResponse
	if err := c.GetInto(ctx, "/return_episodes"+pathID(userID), nil, nil, &resp); err != nil {
		return nil, err
	}
	if resp.Episodes == nil {
		return nil, missingField("episodes")
	}
	return *resp.Episodes, nil
}

// DecodeEpisodes interprets a ReturnEpisodes payload. A null payload means
// no episodes.
func DecodeEpisodes(raw json.RawMessage) ([]Episode, error) {
	var episodes []Episode
	if len(raw) == 0 {
		return episodes, nil
	}
	if err := json.Unmarshal(raw, &episodes); err != nil {
		return nil, fmt.Errorf("unexpected episodes payload: %w", err)
	}
	return episodes, nil
}

type episodePlaybackRequest struct {
	UserID       any    `json:"user_id"`
	EpisodeTitle string `json:"episode_title"`
	EpisodeURL   string `json:"episode_url"`
}

func (c *Client) CheckEpisodePlayback(
	ctx context.Context,
	userID string,
	episodeTitle string,
	episodeURL string,
) (json.RawMessage, error) {
	var data json.RawMessage
	if err := c.postJSON(ctx, "/check_episode_playback", episodePlaybackRequest{
		UserID:       bodyID(userID),
		EpisodeTitle: episodeTitle,
		EpisodeURL:   episodeURL,
	}, &data); err != nil {
		return nil, err
	}
	return data, nil
}
