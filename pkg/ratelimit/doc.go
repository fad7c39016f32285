// Package ratelimit implements a fixed-window request limiter with
// pluggable counter stores.
//
// FixedWindow counts requests per key inside a window; the first request of a
// window starts its expiry. MemoryStore keeps counters in-process and
// RedisStore shares them between replicas. Middleware applies a limiter to an
// http.Handler, keyed by KeyFunc (ClientIP by default), and answers 429 once
// the window is exhausted. Store failures fail open.
//
//	store := ratelimit.NewMemoryStore()
//	defer store.Close()
//	limiter, err := ratelimit.NewFixedWindow(store, 20, time.Minute)
//	r.With(ratelimit.Middleware(limiter, ratelimit.ClientIP)).Post("/signup", h)
package ratelimit
