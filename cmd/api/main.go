package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dmitrymomot/remindme/handler"
	"github.com/dmitrymomot/remindme/modules/account"
	"github.com/dmitrymomot/remindme/modules/image"
	"github.com/dmitrymomot/remindme/modules/message"
	"github.com/dmitrymomot/remindme/modules/oauth"
	"github.com/dmitrymomot/remindme/modules/profile"
	"github.com/dmitrymomot/remindme/modules/reminder"
	"github.com/dmitrymomot/remindme/modules/session"
	"github.com/dmitrymomot/remindme/pkg/config"
	"github.com/dmitrymomot/remindme/pkg/cookie"
	"github.com/dmitrymomot/remindme/pkg/httpserver"
	"github.com/dmitrymomot/remindme/pkg/logger"
	"github.com/dmitrymomot/remindme/pkg/mongo"
	"github.com/dmitrymomot/remindme/pkg/ratelimit"
	"github.com/dmitrymomot/remindme/pkg/redis"
	"github.com/dmitrymomot/remindme/pkg/requestid"
	"github.com/dmitrymomot/remindme/pkg/storage"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "remindme: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return err
	}

	log, err := logger.NewFromConfig(cfg.Logger, logger.WithContextExtractors(requestid.LoggerExtractor()))
	if err != nil {
		return err
	}
	logger.SetAsDefault(log)

	db, err := mongo.NewWithDatabase(ctx, cfg.Mongo)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Client().Disconnect(context.Background()); err != nil {
			log.Error("mongo disconnect failed", logger.Error(err))
		}
	}()
	ready := []func(context.Context) error{mongo.Healthcheck(db.Client())}

	accounts := account.NewMongoStore(db)
	profiles := profile.NewMongoStore(db)
	reminders := reminder.NewMongoStore(db)
	messages := message.NewMongoStore(db)
	images := image.NewMongoStore(db)
	if err := errors.Join(
		accounts.EnsureIndexes(ctx),
		profiles.EnsureIndexes(ctx),
		reminders.EnsureIndexes(ctx),
		messages.EnsureIndexes(ctx),
		images.EnsureIndexes(ctx),
	); err != nil {
		return fmt.Errorf("ensure indexes: %w", err)
	}

	var limitStore ratelimit.Store
	if cfg.Redis.Enabled() {
		client, err := redis.Connect(ctx, cfg.Redis)
		if err != nil {
			return err
		}
		defer func() { _ = client.Close() }()
		limitStore = ratelimit.NewRedisStore(client)
		ready = append(ready, redis.Healthcheck(client))
	} else {
		memory := ratelimit.NewMemoryStore()
		defer func() { _ = memory.Close() }()
		limitStore = memory
		log.Info("REDIS_URL not set, rate limits are kept in memory")
	}
	limiter, err := ratelimit.NewFromConfig(limitStore, cfg.RateLimit)
	if err != nil {
		return err
	}

	objects, err := storage.New(ctx, cfg.Storage)
	if err != nil {
		return err
	}

	cookies := cookie.NewFromConfig(cfg.Cookie)
	sessions, err := session.New(cfg.Session, cookies)
	if err != nil {
		return err
	}

	errorHandler := handler.NewErrorHandler(log)

	flow, err := oauth.NewFlow(cfg.OAuth, accounts, sessions,
		oauth.WithHTTPClient(&http.Client{Timeout: cfg.OAuth.Timeout}),
		oauth.WithFlowLogger(log),
	)
	if err != nil {
		return err
	}

	router := newRouter(routes{
		log:      log,
		cors:     cfg.CORS,
		limiter:  limiter,
		respond:  handler.NewResponder(log),
		sessions: sessions,
		accounts: accounts,
		ready:    ready,

		account:  account.NewService(accounts, sessions, cfg.Session.SecretKey, errorHandler, account.WithLogger(log)),
		oauth:    oauth.NewService(flow, sessions, errorHandler, oauth.WithLogger(log), oauth.WithCookieManager(cookies)),
		profile:  profile.NewService(profiles, errorHandler),
		reminder: reminder.NewService(reminders, errorHandler),
		message:  message.NewService(messages, reminders, errorHandler),
		image:    image.NewService(images, objects, log, errorHandler),
	})

	srv, err := httpserver.StartFromConfig(ctx, cfg.HTTP, router, httpserver.WithLogger(log))
	if err != nil {
		return err
	}

	select {
	case <-ctx.Done():
	case err, ok := <-srv.Done():
		if ok && err != nil {
			return err
		}
	}

	stopCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout+time.Second)
	defer cancel()
	if err := srv.Stop(stopCtx); err != nil {
		return err
	}
	log.Info("server stopped")
	return nil
}
