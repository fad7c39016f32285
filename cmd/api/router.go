package main

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/remindme/handler"
	"github.com/dmitrymomot/remindme/modules/account"
	"github.com/dmitrymomot/remindme/modules/session"
	"github.com/dmitrymomot/remindme/pkg/cors"
	"github.com/dmitrymomot/remindme/pkg/httpserver"
	"github.com/dmitrymomot/remindme/pkg/logger"
	"github.com/dmitrymomot/remindme/pkg/ratelimit"
	"github.com/dmitrymomot/remindme/pkg/requestid"
)

// Mountable is a module serving its own sub-routes.
type Mountable interface {
	Handle() http.Handler
}

type routes struct {
	log      *slog.Logger
	cors     cors.Config
	limiter  ratelimit.Limiter
	respond  handler.Responder
	sessions *session.Service
	accounts session.AccountFinder
	ready    []func(context.Context) error

	account  *account.Service
	oauth    Mountable
	profile  Mountable
	reminder Mountable
	message  Mountable
	image    Mountable
}

func newRouter(rt routes) http.Handler {
	r := chi.NewRouter()

	r.Use(
		requestid.Middleware,
		logger.Middleware(rt.log),
		middleware.Recoverer,
		cors.Middleware(rt.cors),
	)
	r.NotFound(handler.NotFound)
	r.MethodNotAllowed(handler.NotFound)

	r.Get("/health", httpserver.HealthCheckHandler(rt.log))
	r.Get("/ready", httpserver.HealthCheckHandler(rt.log, rt.ready...))

	r.Route("/api", func(api chi.Router) {
		api.Group(func(public chi.Router) {
			public.Use(ratelimit.Middleware(rt.limiter,
				ratelimit.WithPrefix("auth", ratelimit.ClientIP),
				ratelimit.WithLogger(rt.log),
			))
			public.Post("/signup", rt.account.Signup())
			public.Get("/login", rt.account.Login())
			public.Mount("/oauth/google", rt.oauth.Handle())
		})

		api.Group(func(private chi.Router) {
			private.Use(session.Authenticator(rt.sessions, rt.accounts, rt.respond))
			private.Mount("/profiles", rt.profile.Handle())
			private.Mount("/reminders", rt.reminder.Handle())
			private.Mount("/messages", rt.message.Handle())
			private.Mount("/images", rt.image.Handle())
		})
	})

	return r
}
