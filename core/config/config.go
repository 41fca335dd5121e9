package config

import (
	"fmt"
	"path/filepath"
	"reflect"
	"strings"

	"scrabble-devserver/core/logger"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the runtime settings that may come from the environment.
// The listening address, document root and browser target are fixed and live
// in core/server and core/browser instead.
type Config struct {
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
}

// LoadConfig reads dir/.env (when present) into the environment and decodes
// the LOG_* variables on top of the struct tag defaults.
func LoadConfig(dir string) (*Config, error) {
	// A missing .env is the common case.
	_ = godotenv.Overload(filepath.Join(dir, ".env"))

	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, value := range tagDefaults(reflect.TypeOf((*Config)(nil)).Elem(), "") {
		v.SetDefault(key, value)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode configuration: %w", err)
	}
	return &cfg, nil
}

// tagDefaults flattens t into dotted mapstructure keys (log.level) mapped to
// their `default` tag. Every key is returned, empty defaults included, since
// AutomaticEnv only resolves keys Viper already knows about.
func tagDefaults(t reflect.Type, prefix string) map[string]string {
	out := make(map[string]string)
	for _, field := range reflect.VisibleFields(t) {
		name := field.Tag.Get("mapstructure")
		if name == "" {
			continue
		}
		if prefix != "" {
			name = prefix + "." + name
		}

		if field.Type.Kind() == reflect.Struct {
			for k, v := range tagDefaults(field.Type, name) {
				out[k] = v
			}
			continue
		}
		out[name] = field.Tag.Get("default")
	}
	return out
}
