package main

import (
	"github.com/dmitrymomot/remindme/modules/oauth"
	"github.com/dmitrymomot/remindme/modules/session"
	"github.com/dmitrymomot/remindme/pkg/cookie"
	"github.com/dmitrymomot/remindme/pkg/cors"
	"github.com/dmitrymomot/remindme/pkg/httpserver"
	"github.com/dmitrymomot/remindme/pkg/logger"
	"github.com/dmitrymomot/remindme/pkg/mongo"
	"github.com/dmitrymomot/remindme/pkg/ratelimit"
	"github.com/dmitrymomot/remindme/pkg/redis"
	"github.com/dmitrymomot/remindme/pkg/storage"
)

// Config aggregates the settings of every component.
type Config struct {
	Logger    logger.Config
	HTTP      httpserver.Config
	Mongo     mongo.Config
	Redis     redis.Config
	RateLimit ratelimit.Config
	Storage   storage.Config
	Session   session.Config
	OAuth     oauth.Config
	Cookie    cookie.Config
	CORS      cors.Config
}
