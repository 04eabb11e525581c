package server

import (
	"encoding/json"
	"log"
	"net/http"
)

type jsonErrorData struct {
	Error string `json:"error"`
	Code  int    `json:"code"`
}

// Write JSON to buffer first and then if succesfull to the response writer
func (s *Server) writeJSON(w http.ResponseWriter, r *http.Request, data any) {

	// Encode data to JSON
	jsonData, err := json.Marshal(data)
	if err != nil {
		log.Printf("Failed to encode JSON response on URI '%s': %v", r.RequestURI, err)
		status := http.StatusInternalServerError
		http.Error(w, http.StatusText(status), status)
		return
	}

	// Write to response
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if _, err := w.Write(jsonData); err != nil {
		// Too late for recovery here, just log the error
		log.Printf("Failed to write JSON to response on URI '%s': %v", r.RequestURI, err)
	}
}

// Write JSON error to response
func (s *Server) JSONError(w http.ResponseWriter, r *http.Request, statusCode int, message string) {

	data := jsonErrorData{
		Error: message,
		Code:  statusCode,
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		log.Printf("Failed to encode JSON error on URI '%s': %v", r.RequestURI, err)
		http.Error(w, http.StatusText(statusCode), statusCode)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)
	if _, err := w.Write(jsonData); err != nil {
		// Too late for recovery here, just log the error
		log.Printf("Failed to write JSON error to response on URI '%s': %v", r.RequestURI, err)
	}
}
