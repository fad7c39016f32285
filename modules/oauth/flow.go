package oauth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/dmitrymomot/remindme/core"
	"github.com/dmitrymomot/remindme/modules/account"
	"github.com/dmitrymomot/remindme/pkg/logger"
)

// maxResponseBytes bounds how much of a provider response is read.
const maxResponseBytes = 1 << 20

// Accounts is the account storage used by the flow.
type Accounts interface {
	FindByEmail(ctx context.Context, email string) (*account.Account, error)
	Create(ctx context.Context, username, email, tokenSeed string) (*account.Account, error)
	Save(ctx context.Context, acc *account.Account) error
}

// TokenIssuer signs session tokens.
type TokenIssuer interface {
	Issue(tokenSeed string) (string, error)
}

// Result is the outcome of a successful exchange.
type Result struct {
	Account *account.Account
	Token   string
	Created bool
}

// Flow runs the Google code exchange.
type Flow struct {
	cfg        Config
	conf       *oauth2.Config
	httpClient *http.Client
	accounts   Accounts
	tokens     TokenIssuer
	log        *slog.Logger
}

// FlowOption configures a Flow.
type FlowOption func(*Flow)

// WithHTTPClient sets the client used for both provider calls.
func WithHTTPClient(c *http.Client) FlowOption {
	return func(f *Flow) {
		if c != nil {
			f.httpClient = c
		}
	}
}

// WithFlowLogger sets the flow logger.
func WithFlowLogger(log *slog.Logger) FlowOption {
	return func(f *Flow) {
		if log != nil {
			f.log = log
		}
	}
}

// NewFlow validates cfg and builds a Flow.
func NewFlow(cfg Config, accounts Accounts, tokens TokenIssuer, opts ...FlowOption) (*Flow, error) {
	if cfg.ClientID == "" || cfg.ClientSecret == "" || cfg.ClientURL == "" || cfg.APIURL == "" || cfg.SecretKey == "" {
		return nil, ErrMissingConfig
	}
	if cfg.AuthURL == "" {
		cfg.AuthURL = google.Endpoint.AuthURL
	}
	if cfg.TokenURL == "" {
		cfg.TokenURL = google.Endpoint.TokenURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.StateTTL <= 0 {
		cfg.StateTTL = 10 * time.Minute
	}

	f := &Flow{
		cfg: cfg,
		conf: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL(),
			Scopes:       cfg.Scopes,
			Endpoint: oauth2.Endpoint{
				AuthURL:   cfg.AuthURL,
				TokenURL:  cfg.TokenURL,
				AuthStyle: oauth2.AuthStyleInParams,
			},
		},
		httpClient: http.DefaultClient,
		accounts:   accounts,
		tokens:     tokens,
		log:        slog.Default(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f, nil
}

// AuthCodeURL returns the Google consent page address.
func (f *Flow) AuthCodeURL(state string) string {
	return f.conf.AuthCodeURL(state, oauth2.AccessTypeOnline)
}

// Exchange turns an authorization code into a session token.
//
// It returns ErrMissingCode for an empty code and ErrNoAccessToken when the
// token endpoint omits the access token; the account store is not touched in
// either case.
func (f *Flow) Exchange(ctx context.Context, code string) (*Result, error) {
	if code == "" {
		return nil, ErrMissingCode
	}

	accessToken, err := f.exchangeCode(ctx, code)
	if err != nil {
		return nil, err
	}

	email, err := f.lookupEmail(ctx, accessToken)
	if err != nil {
		return nil, err
	}

	acc, created, err := f.resolveAccount(ctx, email, accessToken)
	if err != nil {
		return nil, err
	}

	token, err := f.tokens.Issue(acc.TokenSeed)
	if err != nil {
		return nil, err
	}

	return &Result{Account: acc, Token: token, Created: created}, nil
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
	IDToken     string `json:"id_token"`
}

// exchangeCode posts the code to the token endpoint as a form.
func (f *Flow) exchangeCode(ctx context.Context, code string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, f.cfg.Timeout)
	defer cancel()

	form := url.Values{
		"code":          {code},
		"grant_type":    {"authorization_code"},
		"client_id":     {f.conf.ClientID},
		"client_secret": {f.conf.ClientSecret},
		"redirect_uri":  {f.conf.RedirectURL},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.conf.Endpoint.TokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrTokenExchange, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrTokenExchange, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("%w: token endpoint returned status %d", ErrTokenExchange, resp.StatusCode)
	}

	var body tokenResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&body); err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("%w: decode response: %w", ErrTokenExchange, err)
	}
	if body.AccessToken == "" {
		f.log.WarnContext(ctx, "google token response without access token",
			logger.Component("oauth"),
			logger.Event("token_missing"),
		)
		return "", ErrNoAccessToken
	}

	f.log.DebugContext(ctx, "received google access token",
		logger.Component("oauth"),
		slog.String("token_type", body.TokenType),
		slog.Int64("expires_in", body.ExpiresIn),
	)
	return body.AccessToken, nil
}

type identity struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
}

// lookupEmail reads the user's email with the access token as bearer credentials.
func (f *Flow) lookupEmail(ctx context.Context, accessToken string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, f.cfg.Timeout)
	defer cancel()

	client := f.conf.Client(context.WithValue(ctx, oauth2.HTTPClient, f.httpClient), &oauth2.Token{
		AccessToken: accessToken,
		TokenType:   "Bearer",
	})

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.cfg.IdentityURL, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrIdentityLookup, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrIdentityLookup, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: identity endpoint returned status %d", ErrIdentityLookup, resp.StatusCode)
	}

	var id identity
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&id); err != nil {
		return "", fmt.Errorf("%w: decode response: %w", ErrIdentityLookup, err)
	}
	if id.Email == "" {
		return "", ErrMissingEmail
	}
	return id.Email, nil
}

// resolveAccount returns the account for email, creating it on first login.
// A new account ends up with accessToken as its seed; an existing one is
// returned as stored.
func (f *Flow) resolveAccount(ctx context.Context, email, accessToken string) (*account.Account, bool, error) {
	acc, err := f.accounts.FindByEmail(ctx, email)
	if err == nil {
		f.log.InfoContext(ctx, "google login for existing account",
			logger.Component("oauth"),
			logger.Event("login"),
			logger.AccountID(acc.ID.Hex()),
		)
		return acc, false, nil
	}
	if core.KindOf(err) != core.KindNotFound {
		return nil, false, err
	}

	secret, err := account.NewTokenSeed(f.cfg.SecretKey)
	if err != nil {
		return nil, false, err
	}
	acc, err = f.accounts.Create(ctx, email, email, secret)
	if err != nil {
		return nil, false, err
	}

	acc.TokenSeed = accessToken
	if err := f.accounts.Save(ctx, acc); err != nil {
		return nil, false, err
	}

	f.log.InfoContext(ctx, "account created from google login",
		logger.Component("oauth"),
		logger.Event("signup"),
		logger.AccountID(acc.ID.Hex()),
		logger.Email(email),
	)
	return acc, true, nil
}
