package models

import (
	"regexp"
	"strings"
)

var extraSpace = regexp.MustCompile(`\s+`)

// CaptionEntry is one timed caption line as returned by the provider.
// The service never mutates these fields, only reorders/concatenates them.
type CaptionEntry struct {
	Text     string  `json:"text"`
	Start    float64 `json:"start"`
	Duration float64 `json:"duration"`
}

// Transcript is an ordered sequence of caption entries for one video.
// Constructed per request, never stored.
type Transcript []CaptionEntry

// CaptionTrack is one entry in a video's caption catalog.
type CaptionTrack struct {
	Language string
	Auto     bool // auto-generated (asr) as opposed to manually created
}

// Flatten concatenates the entry texts in original order into
// continuous prose: single-space separators, runs of whitespace
// collapsed to one space, no leading/trailing whitespace.
func (t Transcript) Flatten() string {

	var sb strings.Builder
	for _, entry := range t {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(entry.Text)
	}

	flat := extraSpace.ReplaceAllString(sb.String(), " ")
	return strings.TrimSpace(flat)
}
