// blogsum/routes/history.go
package routes

import (
	"net/http"
	"strconv"

	"blogsum/blogsum/controllers"
	"blogsum/blogsum/sources/psql/models"

	"github.com/go-chi/chi/v5"
)

func handleJSON(handler func(r *http.Request) (any, int, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, status, err := handler(r)
		if err != nil {
			http.Error(w, err.Error(), status)
			return
		}
		writeJSON(w, status, res)
	}
}

func listSummariesHandler(ctrl *controllers.HistoryController) http.HandlerFunc {
	return handleJSON(func(r *http.Request) (any, int, error) {
		summaries, err := ctrl.GetAllSummaries(r.Context())
		if err != nil {
			return nil, http.StatusInternalServerError, err
		}
		if summaries == nil {
			summaries = []models.Summary{}
		}
		return summaries, http.StatusOK, nil
	})
}

func getSummaryHandler(ctrl *controllers.HistoryController) http.HandlerFunc {
	return handleJSON(func(r *http.Request) (any, int, error) {
		id, err := parseID(r)
		if err != nil {
			return nil, http.StatusBadRequest, err
		}
		summary, err := ctrl.GetSummaryByID(r.Context(), id)
		if err != nil {
			return nil, http.StatusInternalServerError, err
		}
		if summary == nil {
			return nil, http.StatusNotFound, nil
		}
		return summary, http.StatusOK, nil
	})
}

func deleteSummaryHandler(ctrl *controllers.HistoryController) http.HandlerFunc {
	return handleJSON(func(r *http.Request) (any, int, error) {
		id, err := parseID(r)
		if err != nil {
			return nil, http.StatusBadRequest, err
		}
		if err := ctrl.DeleteSummary(r.Context(), id); err != nil {
			return nil, http.StatusInternalServerError, err
		}
		return map[string]string{"status": "deleted"}, http.StatusOK, nil
	})
}

// summaryHistoryHandler serves the shape the dashboard history hook expects:
// a wrapper object with a "summaries" array.
func summaryHistoryHandler(ctrl *controllers.HistoryController) http.HandlerFunc {
	return handleJSON(func(r *http.Request) (any, int, error) {
		summaries, err := ctrl.GetAllSummaries(r.Context())
		if err != nil {
			return nil, http.StatusInternalServerError, err
		}
		if summaries == nil {
			summaries = []models.Summary{}
		}
		return map[string]any{"summaries": summaries}, http.StatusOK, nil
	})
}

func parseID(r *http.Request) (uint, error) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
