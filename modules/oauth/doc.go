// Package oauth implements sign-in with Google.
//
// The callback route receives an authorization code, trades it for an access
// token at the token endpoint, reads the user's email from the identity
// endpoint, finds or creates the matching account and answers with a session
// cookie plus a redirect to the client application.
//
// Failure branches:
//
//   - no code: redirect to the client and report ErrMissingCode
//   - token response without access_token: redirect to the client, nothing reported
//   - anything later: the error goes to the error handler and no redirect happens
//
// A first login stores the provider access token as the new account's
// tokenSeed. Returning accounts keep their stored seed.
//
// Concurrent first logins for one email are not serialized; the unique email
// index rejects the loser with a conflict.
package oauth
