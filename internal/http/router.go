package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/pribylovaa/wikinow/internal/auth"
	"github.com/pribylovaa/wikinow/internal/http/handlers"
	"github.com/pribylovaa/wikinow/internal/http/middleware"
	"github.com/pribylovaa/wikinow/internal/service"
)

// Options — параметры сборки HTTP-роутера.
type Options struct {
	Logger   *slog.Logger
	Timeout  time.Duration
	BasePath string // например, "/api"; если пустой — роуты регистрируются на корне.
}

// NewRouter собирает http.Handler с chi и подключёнными middleware/роутами.
func NewRouter(repo service.Repository, checker handlers.AuthenticityChecker, verifier *auth.TokenVerifier, opts Options) http.Handler {
	root := chi.NewRouter()

	// Middleware (внешний -> внутренний).
	root.Use(
		middleware.Recover(),            // безопасно ловим паники
		middleware.RequestID(),          // формируем/прокидываем X-Request-Id (до логирования!)
		middleware.Logging(opts.Logger), // кладём request-scoped логгер в контекст и логируем
		middleware.AuthBearer(verifier), // резолвим Bearer-токен в личность запроса
	)
	if opts.Timeout > 0 {
		root.Use(middleware.Timeout(opts.Timeout)) // общий дедлайн запроса
	}

	h := handlers.New(repo, checker)

	if opts.BasePath != "" {
		sub := chi.NewRouter()
		registerRoutes(sub, h)
		root.Mount(opts.BasePath, sub)
		return root
	}

	registerRoutes(root, h)
	return root
}

// registerRoutes — единая точка регистрации всех REST-эндпойнтов.
func registerRoutes(r chi.Router, h *handlers.Handlers) {
	// контент Wikipedia
	r.Get("/featured", h.Featured)
	r.Get("/search", h.Search)

	// посты
	r.Post("/posts", h.CreatePost)
	r.Get("/posts", h.AllPosts)
	r.Get("/posts/mine", h.UserPosts)
}
