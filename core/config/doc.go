// Package config loads the few runtime settings the dev server accepts.
//
// Values come from an optional .env file in the working directory (via
// godotenv) and from environment variables (via Viper). Defaults are declared
// with `default` struct tags on the section types.
//
// Only logging is configurable. The listen address, the served directory and
// the browser target page are constants.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    return err
//	}
//	log, err := logger.New(&cfg.Log)
package config
