package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/WD-Technology/muzagrouppingpong/handlers"
)

// SetupRoutes wires the API. staticDir, when set, is served at the site root
// for the polling frontend.
func SetupRoutes(
	router *chi.Mux,
	playerHandler *handlers.PlayerHandler,
	tournamentHandler *handlers.TournamentHandler,
	matchHandler *handlers.MatchHandler,
	staticDir string,
) {
	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	router.Route("/api", func(r chi.Router) {
		r.Route("/players", func(r chi.Router) {
			r.Get("/", playerHandler.ListHandler)
			r.Post("/", playerHandler.CreateHandler)
			r.Delete("/", playerHandler.DeleteAllHandler)
			r.Delete("/{playerID}", playerHandler.DeleteHandler)
			r.Post("/{playerID}/avatar", playerHandler.UploadAvatarHandler)
		})

		r.Route("/tournaments", func(r chi.Router) {
			r.Post("/", tournamentHandler.StartHandler)
			r.Get("/active", tournamentHandler.ActiveHandler)
			r.Post("/reset", tournamentHandler.ResetHandler)
		})

		r.Route("/matches", func(r chi.Router) {
			r.Get("/{matchID}", matchHandler.GetHandler)
			r.Post("/{matchID}/points", matchHandler.AwardPointHandler)
			r.Post("/{matchID}/points/undo", matchHandler.UndoPointHandler)
			r.Post("/{matchID}/sets/next", matchHandler.StartNextSetHandler)
			r.Post("/{matchID}/finish", matchHandler.FinishHandler)
		})
	})

	router.Get("/swagger/*", httpSwagger.WrapHandler)

	if staticDir != "" {
		fileServer := http.FileServer(http.Dir(staticDir))
		router.Handle("/*", fileServer)
	}
}
