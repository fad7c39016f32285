package httpserver

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"sync"
)

// Server is the handle of a running HTTP server.
type Server struct {
	cfg  *config
	srv  *http.Server
	addr string
	done chan error
	once sync.Once
	err  error
}

// Start binds the listen address and serves handler in the background.
// Bind failures are returned wrapped with ErrListen.
func Start(ctx context.Context, handler http.Handler, opts ...Option) (*Server, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.logger == nil {
		cfg.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if handler == nil {
		handler = http.NotFoundHandler()
	}

	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", cfg.addr)
	if err != nil {
		return nil, errors.Join(ErrListen, err)
	}

	s := &Server{
		cfg:  cfg,
		addr: ln.Addr().String(),
		done: make(chan error, 1),
		srv: &http.Server{
			Handler:      handler,
			ReadTimeout:  cfg.readTimeout,
			WriteTimeout: cfg.writeTimeout,
			IdleTimeout:  cfg.idleTimeout,
			BaseContext:  func(net.Listener) context.Context { return context.WithoutCancel(ctx) },
		},
	}

	go func() {
		err := s.srv.Serve(ln)
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.done <- errors.Join(ErrServe, err)
		}
		close(s.done)
	}()

	cfg.logger.Info("http server started", slog.String("addr", s.addr))
	return s, nil
}

// Addr returns the address the server is bound to.
func (s *Server) Addr() string {
	return s.addr
}

// Done is closed when the server stops serving. It yields an error first if
// serving failed for any reason other than Stop.
func (s *Server) Done() <-chan error {
	return s.done
}

// Stop shuts the server down gracefully, waiting at most the configured
// shutdown timeout. Repeated calls return the result of the first one.
func (s *Server) Stop(ctx context.Context) error {
	s.once.Do(func() {
		ctx, cancel := context.WithTimeout(ctx, s.cfg.shutdownTimeout)
		defer cancel()

		if err := s.srv.Shutdown(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.err = errors.Join(ErrStop, err)
		}
		s.cfg.logger.Info("http server stopped", slog.String("addr", s.addr))
	})
	return s.err
}
