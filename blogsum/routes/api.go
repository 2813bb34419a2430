// blogsum/routes/api.go
package routes

import (
	"blogsum/blogsum/controllers"

	"github.com/go-chi/chi/v5"
)

// APIRoutes mounts the summarize pipeline and the history read path under one
// subrouter. History routes are only registered when the row store is wired.
func APIRoutes(sum *controllers.SummarizeController, hist *controllers.HistoryController) chi.Router {
	r := chi.NewRouter()

	r.Post("/summarize", summarizeHandler(sum))

	if hist != nil {
		r.Get("/summaries", listSummariesHandler(hist))
		r.Get("/summaries/{id}", getSummaryHandler(hist))
		r.Delete("/summaries/{id}", deleteSummaryHandler(hist))
		r.Get("/summary-history", summaryHistoryHandler(hist))
	}

	return r
}
