package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"scripturesketch/internal/handlers"
	"scripturesketch/internal/service"
)

// Deps holds dependencies for the HTTP router.
type Deps struct {
	ArtworkService service.ArtworkService
	CatalogService service.CatalogService
	DB             handlers.Pinger
}

// NewRouter creates a new HTTP router with the provided dependencies.
func NewRouter(deps *Deps) http.Handler {
	r := chi.NewRouter()

	// Add chi middleware
	r.Use(middleware.RequestID)
	r.Use(LoggerMiddleware)
	r.Use(RequestLogger)
	r.Use(middleware.Recoverer)

	// Add CORS middleware
	r.Use(CORS)

	sketchHandler := handlers.NewSketchHandler(deps.ArtworkService)
	catalogHandler := handlers.NewCatalogHandler(deps.CatalogService)
	healthHandler := handlers.NewHealthHandler(deps.DB)

	// Register API routes
	r.Route("/api", func(r chi.Router) {
		r.Method(http.MethodGet, "/health", healthHandler)
		r.Get("/books", catalogHandler.Books)
		r.Get("/verses", catalogHandler.Verses)
		r.Get("/words", catalogHandler.Words)
		r.Get("/words/{word}", catalogHandler.Word)

		r.Route("/sketches", func(r chi.Router) {
			r.Post("/", sketchHandler.Create)
			r.Delete("/{id}", sketchHandler.Delete)
			r.Put("/{id}/artwork", sketchHandler.UpdateArtwork)
			r.Get("/{id}/image", sketchHandler.Image)
		})

		r.Post("/groups/{groupID}/references", sketchHandler.LinkReference)
	})

	r.Get("/export", catalogHandler.Export)

	// The root shows the catalog as a page
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/export?format=html", http.StatusFound)
	})

	return r
}
