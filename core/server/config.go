package server

import (
	"net"
	"strconv"
	"strings"
)

const (
	DefaultHost = "localhost"
	DefaultPort = 8000
	// DefaultRoot is the process working directory.
	DefaultRoot = "."
	// IndexFile is served for directory requests when present.
	IndexFile = "index.html"
)

// Config holds configuration for the HTTP server. It is a value type; pass
// copies around rather than sharing a pointer.
type Config struct {
	// Host is the interface name or address to bind.
	Host string
	// Port is the TCP port to bind.
	Port int
	// Root is the directory files are served from.
	Root string
}

// DefaultConfig returns the fixed configuration: localhost:8000 serving the
// working directory.
func DefaultConfig() Config {
	return Config{
		Host: DefaultHost,
		Port: DefaultPort,
		Root: DefaultRoot,
	}
}

// Addr returns the host:port pair to listen on.
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// URL returns the absolute http URL of path on this server.
func (c Config) URL(path string) string {
	u := "http://" + c.Addr()
	if path == "" {
		return u
	}
	return u + "/" + strings.TrimPrefix(path, "/")
}
