package yt

import "errors"

// Distinguishable failure categories, so callers can branch on
// errors.Is instead of matching substrings of provider messages.
var (
	// The video exists but its captions are turned off
	ErrCaptionsDisabled = errors.New("captions are disabled for this video")

	// No caption track satisfies the requested languages
	ErrNoTranscript = errors.New("no usable caption track found")
)
