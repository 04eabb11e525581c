package server

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/vlatan/transcript-api/internal/integrations/yt"
	"github.com/vlatan/transcript-api/internal/models"
	"github.com/vlatan/transcript-api/internal/videoid"
)

// User-facing messages, localized like the original service
const (
	msgWelcome          = "YouTube 자막 추출 API에 오신 것을 환영합니다"
	msgInvalidURL       = "올바르지 않은 YouTube URL입니다."
	msgMissingVideoID   = "videoId가 필요합니다."
	msgCaptionsDisabled = "이 동영상은 자막이 비활성화되어 있습니다."
	msgNoTranscript     = "이 동영상에서 사용 가능한 자막을 찾을 수 없습니다."
	msgRetrieveFailed   = "자막을 가져오는 중 오류 발생: %v"
)

type welcomeResponse struct {
	Message string `json:"message"`
	DocsURL string `json:"docs_url"`
}

type flatTranscriptResponse struct {
	VideoID    string `json:"video_id"`
	Transcript string `json:"transcript"`
}

type timedTranscriptResponse struct {
	Transcript models.Transcript `json:"transcript"`
}

// Static welcome payload with a pointer to the API docs
func (s *Server) homeHandler(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, r, welcomeResponse{
		Message: msgWelcome,
		DocsURL: "/docs/",
	})
}

type endpointDoc struct {
	Method      string `json:"method"`
	Path        string `json:"path"`
	Query       string `json:"query,omitempty"`
	Description string `json:"description"`
}

// Plain JSON description of the API surface
func (s *Server) docsHandler(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, r, map[string][]endpointDoc{
		"endpoints": {
			{
				Method:      http.MethodGet,
				Path:        "/transcript",
				Query:       "url",
				Description: "Transcript as continuous text for a YouTube video URL or ID",
			},
			{
				Method:      http.MethodGet,
				Path:        "/api/v1/youtube/transcript",
				Query:       "videoId",
				Description: "Transcript as timestamped lines for a YouTube video ID",
			},
			{
				Method:      http.MethodGet,
				Path:        "/health/",
				Description: "Service health",
			},
		},
	})
}

// Flattened mode: accepts a video URL, answers with continuous prose
func (s *Server) transcriptHandler(w http.ResponseWriter, r *http.Request) {

	// Extract the video ID before touching the provider
	id, ok := videoid.Extract(r.URL.Query().Get("url"))
	if !ok {
		s.JSONError(w, r, http.StatusBadRequest, msgInvalidURL)
		return
	}

	transcript, err := s.transcripts.Retrieve(r.Context(), id)
	if err != nil {
		s.retrieveError(w, r, err)
		return
	}

	s.writeJSON(w, r, flatTranscriptResponse{
		VideoID:    id,
		Transcript: transcript.Flatten(),
	})
}

// Timestamped mode: accepts a pre-extracted video ID,
// answers with the timed entries unchanged
func (s *Server) apiTranscriptHandler(w http.ResponseWriter, r *http.Request) {

	id := r.URL.Query().Get("videoId")
	if id == "" {
		s.JSONError(w, r, http.StatusBadRequest, msgMissingVideoID)
		return
	}

	transcript, err := s.transcripts.Retrieve(r.Context(), id)
	if err != nil {
		s.retrieveError(w, r, err)
		return
	}

	s.writeJSON(w, r, timedTranscriptResponse{Transcript: transcript})
}

// Minimal health check
func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, r, map[string]any{
		"status": "ok",
		"uptime": time.Since(s.started).Round(time.Second).String(),
	})
}

// Map a retrieval failure to a status code and a localized message.
// Captions turned off or absent after exhausting the fallback chain
// is a 404; anything else is a provider-side 500.
func (s *Server) retrieveError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, yt.ErrCaptionsDisabled):
		s.JSONError(w, r, http.StatusNotFound, msgCaptionsDisabled)
	case errors.Is(err, yt.ErrNoTranscript):
		s.JSONError(w, r, http.StatusNotFound, msgNoTranscript)
	default:
		s.JSONError(w, r, http.StatusInternalServerError, fmt.Sprintf(msgRetrieveFailed, err))
	}
}
