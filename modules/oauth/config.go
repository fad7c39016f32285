package oauth

import "time"

// Config holds the Google client credentials and the application URLs.
type Config struct {
	ClientID     string        `env:"GOOGLE_OAUTH_ID,required"`
	ClientSecret string        `env:"GOOGLE_OAUTH_SECRET,required"`
	AuthURL      string        `env:"GOOGLE_OAUTH_AUTH_URL" envDefault:"https://accounts.google.com/o/oauth2/auth"`
	TokenURL     string        `env:"GOOGLE_OAUTH_TOKEN_URL" envDefault:"https://www.googleapis.com/oauth2/v4/token"`
	IdentityURL  string        `env:"GOOGLE_OAUTH_IDENTITY_URL" envDefault:"https://www.googleapis.com/oauth2/v2/userinfo"`
	Scopes       []string      `env:"GOOGLE_OAUTH_SCOPES" envSeparator:"," envDefault:"openid,email,profile"`
	Timeout      time.Duration `env:"GOOGLE_OAUTH_TIMEOUT" envDefault:"10s"`
	StateTTL     time.Duration `env:"GOOGLE_OAUTH_STATE_TTL" envDefault:"10m"`
	ClientURL    string        `env:"CLIENT_URL,required"`
	APIURL       string        `env:"API_URL,required"`
	SecretKey    string        `env:"SECRET_KEY,required"`
}

// RedirectURL is the callback address registered with Google.
func (c Config) RedirectURL() string {
	return c.APIURL + "/oauth/google"
}
