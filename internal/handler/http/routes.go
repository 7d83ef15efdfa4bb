package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withCORS)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/user/register", h.register)
		r.Post("/api/user/login", h.login)
		r.Get("/api/user/exists", h.checkUserExists)

		r.Get("/api/poems", h.listPoems)
		r.Get("/api/poems/tags", h.listTags)
		r.Get("/api/poems/dynasties", h.listDynasties)
		r.Get("/api/poems/authors", h.listAuthors)

		// POST-only relay; method checking lives inside the handler so
		// non-POST requests get 405 with CORS headers attached
		r.HandleFunc("/api/relay", h.relay)

		r.Get("/api/version", h.getServerVersion)
	})

	// routes requiring a valid session token
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/user/info", h.getUserInfo)
		r.Put("/api/user/info", h.updateUserInfo)
		r.Get("/api/users", h.listUsers)

		r.Post("/api/poems", h.addPoem)
		r.Put("/api/poems/{id}", h.updatePoem)
		r.Delete("/api/poems/{id}", h.deletePoem)

		r.Get("/api/favorites", h.listFavorites)
		r.Get("/api/favorites/poems", h.listFavoritePoems)
		r.Post("/api/favorites/{poemID}", h.addFavorite)
		r.Delete("/api/favorites/{poemID}", h.removeFavorite)
		r.Get("/api/favorites/{poemID}/status", h.favoriteStatus)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
