package server

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"scrabble-devserver/core/logger"
	"scrabble-devserver/core/middleware/isolation"
	"scrabble-devserver/core/middleware/rayid"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/utils"
	"go.uber.org/zap"
)

// Server serves the files under Config.Root with the isolation headers applied.
type Server struct {
	cfg Config
	app *fiber.App
	log *zap.Logger
}

// New builds the Fiber application for cfg. Nothing is bound until Bind or
// Listen is called.
func New(cfg Config, log *zap.Logger) *Server {
	s := &Server{cfg: cfg, log: log}

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler:          s.handleError,
	})

	// Isolation must wrap everything else, recover included, so that 500s
	// produced from a panic still carry the headers.
	app.Use(isolation.New())
	app.Use(recover.New())
	app.Use(rayid.New())
	app.Use(s.logRequest)
	app.Use(allowReadOnly)
	app.Use(filesystem.New(filesystem.Config{
		Root:   http.Dir(cfg.Root),
		Index:  IndexFile,
		Browse: true,
	}))

	s.app = app
	return s
}

// Config returns the configuration the server was built with.
func (s *Server) Config() Config {
	return s.cfg
}

// Handler exposes the underlying Fiber app, mainly for app.Test.
func (s *Server) Handler() *fiber.App {
	return s.app
}

// StartupMessage is the line printed once the listener is bound.
func (s *Server) StartupMessage() string {
	return "Server running on " + s.cfg.URL("")
}

// Bind opens the TCP listener. A failure here (typically the port being taken)
// is final; there is no retry and no fallback port.
func (s *Server) Bind() (net.Listener, error) {
	ln, err := net.Listen("tcp", s.cfg.Addr())
	if err != nil {
		return nil, fmt.Errorf("bind %s: %w", s.cfg.Addr(), err)
	}
	return ln, nil
}

// Serve runs the accept loop on ln and blocks until the process ends or the
// listener fails.
func (s *Server) Serve(ln net.Listener) error {
	s.log.Info("Serving files",
		zap.String("addr", ln.Addr().String()),
		zap.String("root", s.cfg.Root),
	)
	return s.app.Listener(ln)
}

// Listen binds and serves.
func (s *Server) Listen() error {
	ln, err := s.Bind()
	if err != nil {
		return err
	}
	return s.Serve(ln)
}

func (s *Server) logRequest(c *fiber.Ctx) error {
	start := time.Now()
	err := c.Next()

	fields := []zap.Field{
		zap.String("method", c.Method()),
		zap.String("path", c.Path()),
		zap.String("ip", c.IP()),
		zap.Int("status", c.Response().StatusCode()),
		zap.Duration("duration", time.Since(start)),
	}
	if err != nil {
		fields = append(fields, zap.Error(err))
	}
	logger.WithRayID(s.log, c).Debug("Request served", fields...)
	return err
}

// allowReadOnly answers 501 for anything but GET and HEAD.
func allowReadOnly(c *fiber.Ctx) error {
	switch c.Method() {
	case fiber.MethodGet, fiber.MethodHead:
		return c.Next()
	default:
		return fiber.ErrNotImplemented
	}
}

// handleError writes a plain-text status page with the isolation headers.
// Errors raised by fasthttp while parsing the request arrive here without
// having gone through any middleware.
func (s *Server) handleError(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}

	if code >= fiber.StatusInternalServerError {
		logger.WithRayID(s.log, c).Error("Request failed",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Error(err),
		)
	}

	isolation.Apply(c)
	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.Status(code).SendString(utils.StatusMessage(code))
}
