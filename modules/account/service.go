package account

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrymomot/remindme/core"
	"github.com/dmitrymomot/remindme/handler"
	"github.com/dmitrymomot/remindme/pkg/binder"
	"github.com/dmitrymomot/remindme/pkg/logger"
	"github.com/dmitrymomot/remindme/pkg/validator"
)

// Storage defines the account operations needed by the password endpoints.
type Storage interface {
	FindByUsername(ctx context.Context, username string) (*Account, error)
	Insert(ctx context.Context, acc *Account) error
	Save(ctx context.Context, acc *Account) error
}

// Sessions issues session tokens and hands them to the client.
type Sessions interface {
	Issue(tokenSeed string) (string, error)
	SetCookie(w http.ResponseWriter, token string) error
}

// Service serves password signup and Basic-auth login.
type Service struct {
	storage      Storage
	sessions     Sessions
	secretKey    string
	bcryptCost   int
	log          *slog.Logger
	errorHandler handler.ErrorHandler[handler.Context]
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithBcryptCost overrides the bcrypt cost used for new password hashes.
func WithBcryptCost(cost int) ServiceOption {
	return func(s *Service) {
		s.bcryptCost = cost
	}
}

// WithLogger sets the service logger.
func WithLogger(log *slog.Logger) ServiceOption {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// NewService returns a Service hashing passwords with bcrypt.DefaultCost
// unless WithBcryptCost says otherwise.
func NewService(
	storage Storage,
	sessions Sessions,
	secretKey string,
	errorHandler handler.ErrorHandler[handler.Context],
	opts ...ServiceOption,
) *Service {
	s := &Service{
		storage:      storage,
		sessions:     sessions,
		secretKey:    secretKey,
		bcryptCost:   bcrypt.DefaultCost,
		log:          slog.Default(),
		errorHandler: errorHandler,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handle returns a router serving /signup and /login.
func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()
	r.Post("/signup", s.Signup())
	r.Get("/login", s.Login())
	return r
}

// Signup creates a password account.
func (s *Service) Signup() http.HandlerFunc {
	return handler.Wrap(s.signup,
		handler.WithBinders[handler.Context, SignupRequest](binder.JSON()),
		handler.WithErrorHandler[handler.Context, SignupRequest](s.errorHandler),
	)
}

// Login exchanges Basic credentials for a fresh session token.
func (s *Service) Login() http.HandlerFunc {
	return handler.Wrap(s.login,
		handler.WithErrorHandler[handler.Context, struct{}](s.errorHandler),
	)
}

// SignupRequest is the signup payload.
type SignupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r SignupRequest) Validate() error {
	return validator.Apply(
		validator.Required("username", r.Username),
		validator.When(r.Username != "", validator.MinLen("username", r.Username, 3)),
		validator.MaxLen("username", r.Username, 64),
		validator.Required("email", r.Email),
		validator.When(r.Email != "", validator.ValidEmail("email", r.Email)),
		validator.Required("password", r.Password),
		validator.When(r.Password != "", validator.MinLen("password", r.Password, 8)),
	)
}

// TokenResponse carries an issued session token.
type TokenResponse struct {
	Token string `json:"token"`
}

func (s *Service) signup(ctx handler.Context, req SignupRequest) handler.Response {
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	if err := req.Validate(); err != nil {
		return handler.Error(err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		return handler.Error(fmt.Errorf("hash password: %w", err))
	}
	seed, err := NewTokenSeed(s.secretKey)
	if err != nil {
		return handler.Error(err)
	}

	acc := &Account{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
		TokenSeed:    seed,
	}
	if err := s.storage.Insert(ctx, acc); err != nil {
		return handler.Error(err)
	}

	s.log.InfoContext(ctx, "account created",
		logger.Event("signup"),
		logger.AccountID(acc.ID.Hex()),
		logger.Email(acc.Email),
	)

	return s.respondWithToken(ctx, acc.TokenSeed)
}

func (s *Service) login(ctx handler.Context, _ struct{}) handler.Response {
	username, password, ok := ctx.Request().BasicAuth()
	if !ok || username == "" || password == "" {
		return handler.Error(ErrMissingCredentials)
	}

	acc, err := s.storage.FindByUsername(ctx, username)
	if err != nil {
		if core.KindOf(err) == core.KindNotFound {
			return handler.Error(ErrInvalidCredentials)
		}
		return handler.Error(err)
	}
	if acc.PasswordHash == "" {
		return handler.Error(ErrInvalidCredentials)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(acc.PasswordHash), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return handler.Error(ErrInvalidCredentials)
		}
		return handler.Error(fmt.Errorf("compare password: %w", err))
	}

	seed, err := NewTokenSeed(s.secretKey)
	if err != nil {
		return handler.Error(err)
	}
	acc.TokenSeed = seed
	if err := s.storage.Save(ctx, acc); err != nil {
		return handler.Error(err)
	}

	s.log.InfoContext(ctx, "account logged in",
		logger.Event("login"),
		logger.AccountID(acc.ID.Hex()),
	)

	return s.respondWithToken(ctx, acc.TokenSeed)
}

func (s *Service) respondWithToken(ctx handler.Context, tokenSeed string) handler.Response {
	token, err := s.sessions.Issue(tokenSeed)
	if err != nil {
		return handler.Error(err)
	}
	if err := s.sessions.SetCookie(ctx.ResponseWriter(), token); err != nil {
		return handler.Error(err)
	}
	return handler.JSON(TokenResponse{Token: token})
}
