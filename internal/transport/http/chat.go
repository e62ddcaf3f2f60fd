package http

import (
	"encoding/json"
	"net/http"
)

// Replier answers a single chat message. It is total: it never fails.
type Replier interface {
	Answer(text string) string
}

// HandleChat returns the HTTP handler for the chat exchange:
// {"message": ...} in, {"reply": ...} out.
func HandleChat(svc Replier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
			return
		}

		// A missing or garbled body degrades to an empty message, which the
		// service turns into its usual prompt reply. Bad input is never a
		// client error here.
		var req chatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			req.Message = ""
		}

		resp := chatResponse{Reply: svc.Answer(req.Message)}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}
}

type chatRequest struct {
	Message string `json:"message"`
}

type chatResponse struct {
	Reply string `json:"reply"`
}
