// Package cookie sets, reads and clears HTTP cookies with shared defaults.
//
// A Manager carries the attributes every cookie of the service should have
// (path, domain, secure, same-site). Per-call options override them:
//
//	mgr := cookie.NewFromConfig(cfg)
//	mgr.Set(w, "X-401d25-Token", token, cookie.WithMaxAge(7*24*60*60))
//	token, err := mgr.Get(r, "X-401d25-Token")
package cookie
