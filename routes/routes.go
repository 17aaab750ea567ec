package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/Dosada05/tournament-league/docs"
	"github.com/Dosada05/tournament-league/handlers"
	"github.com/Dosada05/tournament-league/middleware"
	"github.com/Dosada05/tournament-league/models"
)

type Handlers struct {
	Auth        *handlers.AuthHandler
	Tournament  *handlers.TournamentHandler
	Participant *handlers.ParticipantHandler
	Team        *handlers.TeamHandler
	Dashboard   *handlers.DashboardHandler
	Transfer    *handlers.TransferHandler
	WebSocket   *handlers.WebSocketHandler
}

type Options struct {
	JWTSecret      string
	AllowedOrigins []string
}

func SetupRoutes(router chi.Router, h Handlers, opts Options) {
	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.RealIP)
	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)

	allowedOrigins := opts.AllowedOrigins
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Disposition"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	router.Get("/ws", h.WebSocket.ServeWs)

	organizerOnly := func(r chi.Router) {
		r.Use(middleware.Authenticate([]byte(opts.JWTSecret)))
		r.Use(middleware.Authorize(models.RoleOrganizer))
	}

	router.Post("/auth/login", h.Auth.Login)

	router.Route("/tournament", func(r chi.Router) {
		r.Get("/", h.Tournament.GetTournament)
		r.Get("/overview", h.Dashboard.Overview)
		r.Get("/preview", h.Tournament.PreviewMatchCount)

		r.Group(func(r chi.Router) {
			organizerOnly(r)
			r.Patch("/settings", h.Tournament.UpdateSettings)
			r.Post("/create", h.Tournament.CreateTournament)
			r.Post("/reset", h.Tournament.ResetTournament)
		})
	})

	router.Route("/competitors", func(r chi.Router) {
		r.Get("/", h.Participant.ListCompetitors)

		r.Group(func(r chi.Router) {
			organizerOnly(r)
			r.Post("/", h.Participant.AddCompetitor)
			r.Delete("/{competitorID}", h.Participant.RemoveCompetitor)
		})
	})

	router.Route("/teams", func(r chi.Router) {
		r.Get("/", h.Team.ListTeams)

		r.Group(func(r chi.Router) {
			organizerOnly(r)
			r.Post("/", h.Team.AddTeam)
			r.Post("/draw", h.Team.DrawTeams)
			r.Delete("/{teamID}", h.Team.RemoveTeam)
		})
	})

	router.Route("/matches", func(r chi.Router) {
		r.Get("/", h.Tournament.ListMatches)

		r.Group(func(r chi.Router) {
			organizerOnly(r)
			r.Put("/{matchID}/result", h.Tournament.RecordResult)
		})
	})

	router.Get("/standings", h.Dashboard.Standings)

	router.Get("/export", h.Transfer.Export)
	router.Group(func(r chi.Router) {
		organizerOnly(r)
		r.Post("/export/archive", h.Transfer.ArchiveExport)
		r.Post("/import", h.Transfer.Import)
	})
}
