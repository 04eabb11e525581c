package yt

import (
	"context"

	"github.com/vlatan/transcript-api/internal/config"

	"github.com/horiagug/youtube-transcript-api-go/pkg/yt_transcript"
	"github.com/horiagug/youtube-transcript-api-go/pkg/yt_transcript_models"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

// Signature of the transcript client call we depend on
type fetchFunc func(
	videoID string,
	languages []string,
	preserveFormatting bool,
) ([]yt_transcript_models.Transcript, error)

type Service struct {
	config  *config.Config
	youtube *youtube.Service
	fetch   fetchFunc
}

// Create new YouTube service
func New(ctx context.Context, config *config.Config) (*Service, error) {

	// The transcript client does the actual caption fetching
	client := yt_transcript.NewClient()

	s := &Service{
		config: config,
		fetch: func(videoID string, languages []string, preserveFormatting bool) ([]yt_transcript_models.Transcript, error) {
			return client.GetTranscripts(videoID, languages)
		},
	}

	// The Data API client is optional; without a key the caption
	// catalog lookup is unavailable and reports an error when asked.
	if config.YouTubeAPIKey != "" {
		var co option.ClientOption = option.WithAPIKey(config.YouTubeAPIKey)
		youtube, err := youtube.NewService(ctx, co)
		if err != nil {
			return nil, err
		}
		s.youtube = youtube
	}

	return s, nil
}
