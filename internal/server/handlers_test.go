package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/vlatan/transcript-api/internal/config"
	"github.com/vlatan/transcript-api/internal/integrations/yt"
	"github.com/vlatan/transcript-api/internal/models"
	"github.com/vlatan/transcript-api/internal/transcripts"

	"github.com/google/go-cmp/cmp"
)

var testCfg = &config.Config{
	Host:            "localhost",
	Port:            5000,
	AttemptTimeout:  time.Second,
	RetrieveTimeout: 5 * time.Second,
}

// fakeProvider answers every fetch with one canned result or error
// and counts how many times the provider was consulted.
type fakeProvider struct {
	transcript models.Transcript
	err        error
	calls      int
}

func (f *fakeProvider) FetchCaptions(
	ctx context.Context,
	videoID string,
	langs []string,
) (models.Transcript, error) {
	f.calls++
	return f.transcript, f.err
}

func (f *fakeProvider) ListTracks(
	ctx context.Context,
	videoID string,
) ([]models.CaptionTrack, error) {
	f.calls++
	return nil, errors.New("catalog unavailable")
}

func newTestServer(provider transcripts.Provider) *Server {
	return New(testCfg, transcripts.New(testCfg, provider))
}

func serve(s *Server, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	s.HttpServer.Handler.ServeHTTP(rec, req)
	return rec
}

func TestHomeHandler(t *testing.T) {

	s := newTestServer(&fakeProvider{})
	rec := serve(s, "/")

	if rec.Code != http.StatusOK {
		t.Fatalf("got status %d, want %d", rec.Code, http.StatusOK)
	}

	var body welcomeResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if body.Message != msgWelcome || body.DocsURL != "/docs/" {
		t.Errorf("unexpected welcome payload: %+v", body)
	}
}

func TestDocsHandler(t *testing.T) {

	s := newTestServer(&fakeProvider{})
	rec := serve(s, "/")

	var welcome welcomeResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &welcome); err != nil {
		t.Fatalf("failed to decode welcome response: %v", err)
	}

	// The advertised docs URL must be served
	rec = serve(s, welcome.DocsURL)
	if rec.Code != http.StatusOK {
		t.Fatalf("got status %d for %q, want %d", rec.Code, welcome.DocsURL, http.StatusOK)
	}

	var body map[string][]endpointDoc
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if len(body["endpoints"]) == 0 {
		t.Error("expected at least one documented endpoint")
	}
}

func TestTranscriptHandlerBadURL(t *testing.T) {

	tests := []struct {
		name   string
		target string
	}{
		{"missing url param", "/transcript"},
		{"unparsable url", "/transcript?url=not+a+youtube+url"},
		{"too short id", "/transcript?url=abcdefghij"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := &fakeProvider{}
			rec := serve(newTestServer(provider), tt.target)

			if rec.Code != http.StatusBadRequest {
				t.Errorf("got status %d, want %d", rec.Code, http.StatusBadRequest)
			}

			// The provider must not be consulted for invalid input
			if provider.calls != 0 {
				t.Errorf("provider consulted %d times, want 0", provider.calls)
			}
		})
	}
}

func TestTranscriptHandlerFlattened(t *testing.T) {

	provider := &fakeProvider{
		transcript: models.Transcript{
			{Text: "hello  ", Start: 0, Duration: 1},
			{Text: " world", Start: 1, Duration: 1},
		},
	}

	rec := serve(newTestServer(provider), "/transcript?url=https://youtube.com/watch?v=abcdefghijk")

	if rec.Code != http.StatusOK {
		t.Fatalf("got status %d, want %d; body: %s", rec.Code, http.StatusOK, rec.Body)
	}

	var body flatTranscriptResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	want := flatTranscriptResponse{VideoID: "abcdefghijk", Transcript: "hello world"}
	if diff := cmp.Diff(want, body); diff != "" {
		t.Errorf("response mismatch (-want +got):\n%s", diff)
	}
}

func TestAPITranscriptHandlerMissingVideoID(t *testing.T) {

	provider := &fakeProvider{}
	rec := serve(newTestServer(provider), "/api/v1/youtube/transcript")

	if rec.Code != http.StatusBadRequest {
		t.Errorf("got status %d, want %d", rec.Code, http.StatusBadRequest)
	}

	if provider.calls != 0 {
		t.Errorf("provider consulted %d times, want 0", provider.calls)
	}
}

func TestAPITranscriptHandlerTimestamped(t *testing.T) {

	transcript := models.Transcript{
		{Text: "first line", Start: 0.5, Duration: 1.2},
		{Text: "second line", Start: 1.7, Duration: 2.4},
	}

	rec := serve(
		newTestServer(&fakeProvider{transcript: transcript}),
		"/api/v1/youtube/transcript?videoId=abcdefghijk",
	)

	if rec.Code != http.StatusOK {
		t.Fatalf("got status %d, want %d; body: %s", rec.Code, http.StatusOK, rec.Body)
	}

	var body timedTranscriptResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if diff := cmp.Diff(transcript, body.Transcript); diff != "" {
		t.Errorf("transcript mismatch (-want +got):\n%s", diff)
	}
}

func TestRetrieveErrorMapping(t *testing.T) {

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantError  string
	}{
		{"captions disabled", yt.ErrCaptionsDisabled, http.StatusNotFound, msgCaptionsDisabled},
		{"no transcript", yt.ErrNoTranscript, http.StatusNotFound, msgNoTranscript},
		{"provider failure", errors.New("quota exceeded"), http.StatusInternalServerError, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(
				newTestServer(&fakeProvider{err: tt.err}),
				"/api/v1/youtube/transcript?videoId=abcdefghijk",
			)

			if rec.Code != tt.wantStatus {
				t.Fatalf("got status %d, want %d", rec.Code, tt.wantStatus)
			}

			var body jsonErrorData
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}

			if tt.wantError != "" && body.Error != tt.wantError {
				t.Errorf("got error message %q, want %q", body.Error, tt.wantError)
			}

			if body.Code != tt.wantStatus {
				t.Errorf("got error code %d, want %d", body.Code, tt.wantStatus)
			}
		})
	}
}

func TestHealthHandler(t *testing.T) {

	rec := serve(newTestServer(&fakeProvider{}), "/health/")

	if rec.Code != http.StatusOK {
		t.Fatalf("got status %d, want %d", rec.Code, http.StatusOK)
	}

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if body["status"] != "ok" {
		t.Errorf("got status %v, want ok", body["status"])
	}
}

func TestSecurityHeaders(t *testing.T) {

	rec := serve(newTestServer(&fakeProvider{}), "/")

	if got := rec.Header().Get("X-Content-Type-Options"); got != "nosniff" {
		t.Errorf("got X-Content-Type-Options %q, want nosniff", got)
	}
}
