// Package account owns user accounts: the Mongo-backed store and the
// password signup and login endpoints.
//
// An account is identified by its unique email and username. Its tokenSeed is
// the secret embedded in every session token issued for it; replacing the seed
// invalidates all previously issued tokens.
//
// # Routes
//
//	POST /signup   JSON {username, email, password}  -> {"token": "..."}
//	GET  /login    Basic auth                        -> {"token": "..."}
//
// Both routes also set the session cookie through the Sessions collaborator.
//
// # Usage
//
//	store := account.NewMongoStore(db)
//	if err := store.EnsureIndexes(ctx); err != nil {
//		return err
//	}
//	svc := account.NewService(store, sessions, secretKey, errorHandler)
//	r.Post("/api/signup", svc.Signup())
//	r.Get("/api/login", svc.Login())
package account
