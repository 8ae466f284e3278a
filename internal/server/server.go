/*
Responsibilities
- Expose the render pipeline over HTTP
- Bound per-client request rates
- Keep handlers thin: parse, delegate, encode

The server owns no render state; every request goes straight through the
pipeline, which is safe for concurrent use.
*/
package server

import (
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/rohmanhakim/msgrender/internal/build"
	"github.com/rohmanhakim/msgrender/internal/pipeline"
	"go.uber.org/zap"
)

type Server struct {
	app      *fiber.App
	pipeline *pipeline.MessagePipeline
	logger   *zap.Logger
	addr     string
}

type Param struct {
	ListenAddr        string
	RequestsPerMinute int
}

func New(p *pipeline.MessagePipeline, logger *zap.Logger, param Param) *Server {
	app := fiber.New(fiber.Config{
		AppName:               "msgrender " + build.FullVersion(),
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		DisableStartupMessage: true,
	})

	s := &Server{
		app:      app,
		pipeline: p,
		logger:   logger,
		addr:     param.ListenAddr,
	}

	if param.RequestsPerMinute > 0 {
		app.Use(limiter.New(limiter.Config{
			Max:        param.RequestsPerMinute,
			Expiration: time.Minute,
		}))
	}

	app.Get("/healthz", s.handleHealth)
	app.Post("/v1/render", s.handleRender)

	return s
}

func (s *Server) Listen() error {
	s.logger.Info("listening", zap.String("addr", s.addr))
	return s.app.Listen(s.addr)
}

func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// App exposes the fiber app for in-process testing.
func (s *Server) App() *fiber.App {
	return s.app
}
