package yt

import (
	"context"
	"fmt"
	"strings"

	"github.com/vlatan/transcript-api/internal/models"

	"github.com/horiagug/youtube-transcript-api-go/pkg/yt_transcript_models"
)

// FetchCaptions asks the transcript client for the video's caption
// tracks, restricted to the given languages, and selects one honoring
// the preference order. A nil langs slice means no restriction.
// The timed lines of the selected track pass through unchanged.
func (s *Service) FetchCaptions(
	ctx context.Context,
	videoID string,
	langs []string,
) (models.Transcript, error) {

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	transcripts, err := s.fetch(videoID, langs, false)
	if err != nil {
		return nil, classifyFetchError(err)
	}

	track, err := pickTranscript(transcripts, langs)
	if err != nil {
		return nil, err
	}

	transcript := make(models.Transcript, 0, len(track.Lines))
	for _, line := range track.Lines {
		transcript = append(transcript, models.CaptionEntry{
			Text:     line.Text,
			Start:    line.Start,
			Duration: line.Duration,
		})
	}

	if len(transcript) == 0 {
		return nil, ErrNoTranscript
	}

	return transcript, nil
}

// Select a transcript for the given language preferences,
// manually created tracks before auto-generated ones.
func pickTranscript(
	transcripts []yt_transcript_models.Transcript,
	langs []string,
) (yt_transcript_models.Transcript, error) {

	var zero yt_transcript_models.Transcript

	if len(transcripts) == 0 {
		return zero, ErrNoTranscript
	}

	// No restriction, prefer any manually created track
	if len(langs) == 0 {
		for _, t := range transcripts {
			if !t.IsGenerated {
				return t, nil
			}
		}
		return transcripts[0], nil
	}

	// Manually created track in a preferred language
	for _, lang := range langs {
		for _, t := range transcripts {
			if t.LanguageCode == lang && !t.IsGenerated {
				return t, nil
			}
		}
	}

	// Auto-generated track in a preferred language
	for _, lang := range langs {
		for _, t := range transcripts {
			if t.LanguageCode == lang {
				return t, nil
			}
		}
	}

	return zero, ErrNoTranscript
}

// The transcript client reports failures as plain messages.
// Translate the two well-known ones into our typed categories right
// at this boundary, so the rest of the code branches on errors.Is
// and never looks at message text.
func classifyFetchError(err error) error {

	msg := strings.ToLower(err.Error())

	switch {
	case strings.Contains(msg, "disabled"):
		return fmt.Errorf("%w; %v", ErrCaptionsDisabled, err)
	case strings.Contains(msg, "no transcript"),
		strings.Contains(msg, "not found"),
		strings.Contains(msg, "could not find"):
		return fmt.Errorf("%w; %v", ErrNoTranscript, err)
	}

	return fmt.Errorf("transcript lookup failed: %w", err)
}
