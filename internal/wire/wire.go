package wire

import (
	"net/http"

	"real-estate-backend/internal/adaptor"
	"real-estate-backend/internal/data/repository"
	"real-estate-backend/internal/usecase"
	"real-estate-backend/pkg/middleware"
	"real-estate-backend/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
	"go.uber.org/zap"
)

// App holds the wired HTTP surface.
type App struct {
	Router *chi.Mux
}

// Wiring initializes services, handlers and the router.
func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, config, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, config, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware. Verifier only parses tokens; enforcement
	// happens per route group.
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS(config.App.AllowedOrigins))
	r.Use(jwtauth.Verifier(utils.TokenAuth))

	// Apply routes
	wireAuth(r, handler.Auth, logger)
	wireProperty(r, handler.Property, logger)
	wireFilter(r, handler.Filter)
	wireHero(r, handler.Hero)
	wireAgent(r, handler.Agent, logger)
	wireLookup(r, handler.Lookup, logger)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
