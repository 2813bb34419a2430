// blogsum/routes/summarize.go
package routes

import (
	"encoding/json"
	"errors"
	"net/http"

	"blogsum/blogsum/controllers"
	"blogsum/blogsum/services/fetcher"
	"blogsum/blogsum/utils/types"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// summarizeHandler implements the wire contract: 400 with a fixed message for
// bad input, 200 with the result object, 500 for pipeline failures with a
// details flag only on fetch timeouts.
func summarizeHandler(ctrl *controllers.SummarizeController) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.SummarizeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, types.ErrorResponse{Error: "Invalid URL provided"})
			return
		}
		rawURL, ok := req.URL.(string)
		if !ok || rawURL == "" {
			writeJSON(w, http.StatusBadRequest, types.ErrorResponse{Error: "Invalid URL provided"})
			return
		}

		result, err := ctrl.Summarize(r.Context(), rawURL)
		if err != nil {
			var validationErr *controllers.ValidationError
			var timeoutErr *fetcher.TimeoutError
			switch {
			case errors.As(err, &validationErr):
				writeJSON(w, http.StatusBadRequest, types.ErrorResponse{Error: "Invalid URL provided"})
			case errors.As(err, &timeoutErr):
				writeJSON(w, http.StatusInternalServerError, types.ErrorResponse{
					Error:   err.Error(),
					Details: "Request timed out",
				})
			default:
				writeJSON(w, http.StatusInternalServerError, types.ErrorResponse{Error: err.Error()})
			}
			return
		}

		writeJSON(w, http.StatusOK, types.SummarizeResponse{
			Success:     true,
			Title:       result.Title,
			Content:     result.Content,
			Summary:     result.Summary,
			UrduSummary: result.UrduSummary,
		})
	}
}
