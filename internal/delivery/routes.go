package delivery

import (
	"time"

	"github.com/Vovarama1992/go-utils/httputil"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
)

func RegisterRoutes(r chi.Router, h *ConvertHandler) {
	// --- informational ---
	r.With(httputil.RecoverMiddleware).Get("/", h.Home)
	r.With(httputil.RecoverMiddleware).Get("/health", h.Health)

	// --- conversion ---
	r.Group(func(pr chi.Router) {
		pr.Use(
			httputil.RecoverMiddleware,
			httprate.LimitByIP(30, time.Minute),
		)

		pr.Post("/convert", h.HandleConvert)
		pr.Post("/word-to-pdf", h.HandleWordToPdf)
	})
}
