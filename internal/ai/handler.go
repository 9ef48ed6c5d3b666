package ai

import (
	"encoding/json"
	"net/http"
)

// Placeholder endpoints until real inference is wired in: the outputs are
// derived from the input by fixed truncation rules only.

const (
	titleLimit   = 20
	summaryLimit = 50
)

type contentRequest struct {
	Content string `json:"content"`
}

func SuggestTitle(w http.ResponseWriter, r *http.Request) {
	var req contentRequest
	_ = json.NewDecoder(r.Body).Decode(&req) // Missing fields default to empty

	writeJSON(w, map[string]string{"title": truncate(req.Content, titleLimit)})
}

func Summarize(w http.ResponseWriter, r *http.Request) {
	var req contentRequest
	_ = json.NewDecoder(r.Body).Decode(&req)

	writeJSON(w, map[string]string{"summary": truncate(req.Content, summaryLimit)})
}

func Tags(w http.ResponseWriter, r *http.Request) {
	var req contentRequest
	_ = json.NewDecoder(r.Body).Decode(&req)

	writeJSON(w, map[string][]string{"tags": {"example", "tags", "from", "ai"}})
}

// truncate keeps the first limit characters and always appends an ellipsis.
// It cuts on rune boundaries so multi-byte text is never split mid-character.
func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) > limit {
		runes = runes[:limit]
	}
	return string(runes) + "..."
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}
