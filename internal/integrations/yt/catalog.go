package yt

import (
	"context"
	"errors"
	"fmt"

	"github.com/vlatan/transcript-api/internal/models"
)

// ListTracks enumerates the video's caption catalog
// through the YouTube Data API.
func (s *Service) ListTracks(ctx context.Context, videoID string) ([]models.CaptionTrack, error) {

	if s.youtube == nil {
		return nil, errors.New("caption catalog lookup requires a YouTube API key")
	}

	response, err := s.youtube.Captions.List([]string{"snippet"}, videoID).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list the caption catalog: %w", err)
	}

	var tracks []models.CaptionTrack
	for _, item := range response.Items {
		if item.Snippet == nil {
			continue
		}
		tracks = append(tracks, models.CaptionTrack{
			Language: item.Snippet.Language,
			Auto:     item.Snippet.TrackKind == "asr",
		})
	}

	return tracks, nil
}
