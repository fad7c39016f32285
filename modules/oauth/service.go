package oauth

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/dmitrymomot/remindme/handler"
	"github.com/dmitrymomot/remindme/pkg/binder"
	"github.com/dmitrymomot/remindme/pkg/cookie"
	"github.com/dmitrymomot/remindme/pkg/logger"
)

// StateCookieName holds the state issued by the login route.
const StateCookieName = "X-401d25-OAuth-State"

// SessionWriter delivers an issued session token to the client.
type SessionWriter interface {
	SetCookie(w http.ResponseWriter, token string) error
}

// Service serves the Google sign-in routes.
type Service struct {
	flow         *Flow
	sessions     SessionWriter
	cookies      *cookie.Manager
	clientURL    string
	stateTTL     int
	log          *slog.Logger
	errorHandler handler.ErrorHandler[handler.Context]
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithLogger sets the service logger.
func WithLogger(log *slog.Logger) ServiceOption {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// WithCookieManager sets the manager used for the state cookie.
func WithCookieManager(m *cookie.Manager) ServiceOption {
	return func(s *Service) {
		if m != nil {
			s.cookies = m
		}
	}
}

// NewService returns a Service that redirects to the flow's client URL.
func NewService(
	flow *Flow,
	sessions SessionWriter,
	errorHandler handler.ErrorHandler[handler.Context],
	opts ...ServiceOption,
) *Service {
	s := &Service{
		flow:         flow,
		sessions:     sessions,
		cookies:      cookie.New(),
		clientURL:    flow.cfg.ClientURL,
		stateTTL:     int(flow.cfg.StateTTL.Seconds()),
		log:          slog.Default(),
		errorHandler: errorHandler,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handle returns a router serving the callback at / and the consent redirect at /login.
func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()

	r.Get("/", handler.Wrap(s.callback,
		handler.WithBinders[handler.Context, CallbackRequest](binder.Query()),
		handler.WithErrorHandler[handler.Context, CallbackRequest](s.errorHandler),
	))

	r.Get("/login", handler.Wrap(s.login,
		handler.WithErrorHandler[handler.Context, struct{}](s.errorHandler),
	))

	return r
}

// CallbackRequest is what Google sends back to the redirect URI.
type CallbackRequest struct {
	Code  string `query:"code"`
	State string `query:"state"`
}

func (s *Service) callback(ctx handler.Context, req CallbackRequest) handler.Response {
	if err := s.checkState(ctx, req.State); err != nil {
		return handler.RedirectWithError(s.clientURL, err)
	}

	res, err := s.flow.Exchange(ctx, req.Code)
	switch {
	case errors.Is(err, ErrMissingCode):
		s.log.ErrorContext(ctx, "google callback without code", logger.Component("oauth"))
		return handler.RedirectWithError(s.clientURL, err)
	case errors.Is(err, ErrNoAccessToken):
		return handler.Redirect(s.clientURL)
	case err != nil:
		return handler.Error(err)
	}

	if err := s.sessions.SetCookie(ctx.ResponseWriter(), res.Token); err != nil {
		return handler.Error(err)
	}
	return handler.Redirect(s.clientURL)
}

// checkState compares the echoed state with the state cookie. Callbacks that
// did not start at the login route carry no cookie and are not checked.
func (s *Service) checkState(ctx handler.Context, state string) error {
	expected, err := s.cookies.Get(ctx.Request(), StateCookieName)
	if err != nil {
		return nil
	}
	s.cookies.Delete(ctx.ResponseWriter(), StateCookieName)
	if state != expected {
		return ErrStateMismatch
	}
	return nil
}

func (s *Service) login(ctx handler.Context, _ struct{}) handler.Response {
	state := uuid.NewString()
	if err := s.cookies.Set(ctx.ResponseWriter(), StateCookieName, state,
		cookie.WithMaxAge(s.stateTTL),
		cookie.WithHTTPOnly(true),
	); err != nil {
		return handler.Error(err)
	}
	return handler.Redirect(s.flow.AuthCodeURL(state))
}
