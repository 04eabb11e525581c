// Package videoid extracts a YouTube video ID out of a raw URL or a bare ID.
package videoid

import "regexp"

// The URL shapes we recognize, tried in this order.
// Each captures an 11-character video ID.
var patterns = []*regexp.Regexp{
	regexp.MustCompile(`v=([A-Za-z0-9_-]{11})`),
	regexp.MustCompile(`youtu\.be/([A-Za-z0-9_-]{11})`),
	regexp.MustCompile(`embed/([A-Za-z0-9_-]{11})`),
	regexp.MustCompile(`^([A-Za-z0-9_-]{11})$`),
}

// Extract pulls a video ID out of the input.
// The first pattern that matches wins. The captured token is
// returned as is, without checking it belongs to a real video.
func Extract(input string) (string, bool) {
	for _, re := range patterns {
		if m := re.FindStringSubmatch(input); m != nil {
			return m[1], true
		}
	}
	return "", false
}
