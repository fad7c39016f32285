// Package config loads application configuration from environment variables.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
// the default `.env` file in the working directory is read once per process
// (a missing file is not an error), then the environment is parsed into any
// struct annotated with `env` tags.
//
// Every package in this module owns its own Config struct; the binary
// aggregates them and calls Load once at startup. A missing `required`
// variable is a startup failure, never a per-request one.
//
// # Usage
//
//	type Config struct {
//		SecretKey string `env:"SECRET_KEY,required"`
//		Port      int    `env:"PORT" envDefault:"3000"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		log.Fatal(err)
//	}
//
// Tests can bypass the process environment with LoadFrom:
//
//	err := config.LoadFrom(&cfg, map[string]string{"SECRET_KEY": "test"})
package config
