package assessment

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers assessment session and record routes
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Route("/assessment-sessions", func(r chi.Router) {
		r.Post("/", h.StartSession)
		r.Get("/{id}", h.GetSession)
		r.Post("/{id}/answer", h.SubmitAnswer)
		r.Post("/{id}/advance", h.Advance)
		r.Post("/{id}/back", h.Back)
		r.Post("/{id}/exit", h.ExitSession)
		r.Get("/{id}/result", h.GetResult)
	})

	r.Route("/assessments", func(r chi.Router) {
		r.Get("/", h.ListRecords)
		r.Get("/{id}", h.GetRecord)
		r.Delete("/{id}", h.DeleteRecord)
		r.Get("/{id}/report", h.ExportReport)
	})
}
