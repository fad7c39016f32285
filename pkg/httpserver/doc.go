// Package httpserver runs an http.Server behind an explicit lifecycle handle.
//
// Start binds the listener synchronously, so address errors are returned to
// the caller, and serves in a background goroutine. The returned *Server is
// the only reference to the running server: pass it to Stop to shut down
// gracefully within the configured timeout. Done reports an unexpected
// serve failure.
//
//	srv, err := httpserver.StartFromConfig(ctx, cfg, router, httpserver.WithLogger(log))
//	if err != nil {
//		return err
//	}
//	select {
//	case <-ctx.Done():
//	case err := <-srv.Done():
//		log.Error("server stopped", logger.Error(err))
//	}
//	return srv.Stop(context.Background())
//
// HealthCheckHandler serves liveness and readiness probes.
package httpserver
