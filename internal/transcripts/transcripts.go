// Package transcripts retrieves video captions through an ordered
// language fallback chain.
package transcripts

import (
	"context"
	"errors"
	"log"

	"github.com/vlatan/transcript-api/internal/config"
	"github.com/vlatan/transcript-api/internal/integrations/yt"
	"github.com/vlatan/transcript-api/internal/models"
)

// Provider is the external caption source consulted by the fallback chain.
type Provider interface {
	// Fetch the captions, restricted to the given languages.
	// A nil langs slice means no restriction.
	FetchCaptions(ctx context.Context, videoID string, langs []string) (models.Transcript, error)

	// Enumerate the video's caption catalog
	ListTracks(ctx context.Context, videoID string) ([]models.CaptionTrack, error)
}

// One step of the fallback chain
type attempt struct {
	langs   []string // nil means provider default
	catalog bool     // consult the caption catalog to choose a language
}

// The fallback chain, tried strictly in order. Each step runs only
// after the previous one failed; the first success short-circuits.
var attempts = []attempt{
	{langs: []string{"ko"}},
	{langs: []string{"en"}},
	{langs: nil},
	{catalog: true},
}

type Service struct {
	config   *config.Config
	provider Provider
}

// Create new transcripts service
func New(config *config.Config, provider Provider) *Service {
	return &Service{
		config:   config,
		provider: provider,
	}
}

// Retrieve walks the fallback chain until one attempt yields a
// transcript. When every step fails the errors are aggregated into
// a single one, so callers can still branch on the typed categories
// with errors.Is.
func (s *Service) Retrieve(ctx context.Context, videoID string) (models.Transcript, error) {

	ctx, cancel := context.WithTimeout(ctx, s.config.RetrieveTimeout)
	defer cancel()

	var errs []error
	for _, att := range attempts {

		transcript, err := s.try(ctx, videoID, att)
		if err == nil {
			return transcript, nil
		}

		log.Printf("Transcript attempt %v failed for video '%s': %v", att.langs, videoID, err)
		errs = append(errs, err)

		// The overall deadline is spent, later attempts are pointless
		if ctx.Err() != nil {
			break
		}
	}

	return nil, errors.Join(errs...)
}

// Run a single fallback step under its own timeout
func (s *Service) try(ctx context.Context, videoID string, att attempt) (models.Transcript, error) {

	ctx, cancel := context.WithTimeout(ctx, s.config.AttemptTimeout)
	defer cancel()

	if !att.catalog {
		return s.provider.FetchCaptions(ctx, videoID, att.langs)
	}

	// Ask the catalog which languages exist and request the first
	// available one, manually created tracks before auto-generated
	tracks, err := s.provider.ListTracks(ctx, videoID)
	if err != nil {
		return nil, err
	}

	if len(tracks) == 0 {
		return nil, yt.ErrNoTranscript
	}

	track := tracks[0]
	for _, t := range tracks {
		if !t.Auto {
			track = t
			break
		}
	}

	return s.provider.FetchCaptions(ctx, videoID, []string{track.Language})
}
