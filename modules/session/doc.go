// Package session issues and verifies session tokens and authenticates
// requests with them.
//
// A session token is an HS256 JWT whose only custom claim is the account's
// tokenSeed. Tokens are not stored server-side: a token is valid while its
// signature verifies and an account still holds the embedded seed.
//
// Clients present the token either as "Authorization: Bearer <token>" or in
// the X-401d25-Token cookie set at login.
//
//	svc, err := session.New(cfg, cookies)
//	token, err := svc.Issue(acc.TokenSeed)
//
//	r.Use(session.Authenticator(svc, accounts, handler.NewResponder(log)))
//	acc, ok := session.AccountFromContext(r.Context())
package session
