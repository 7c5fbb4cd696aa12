package utils

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

// Response is the envelope every JSON endpoint answers with.
type Response struct {
	Success  bool        `json:"success"`
	Message  string      `json:"message,omitempty"`
	Data     interface{} `json:"data,omitempty"`
	Fallback string      `json:"fallback,omitempty"`
}

func WriteJSON(w http.ResponseWriter, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(Response{Success: code < http.StatusBadRequest, Data: data})
}

func WriteJSONMessage(w http.ResponseWriter, code int, message string, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(Response{Success: code < http.StatusBadRequest, Message: message, Data: data})
}

func WriteJSONError(w http.ResponseWriter, message string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(Response{Success: false, Message: message})
}

// WriteJSONNotFound tells the client which list page to fall back to.
func WriteJSONNotFound(w http.ResponseWriter, message, fallback string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	_ = json.NewEncoder(w).Encode(Response{Success: false, Message: message, Fallback: fallback})
}

func ParseUUID(s string) (uuid.UUID, bool) {
	id, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
