package http

import (
	"context"
	"errors"
	"io"

	"github.com/gofiber/fiber/v2"

	"github.com/melih/lighthouse-bot/internal/core/domain"
)

const (
	defaultLogTail = 100
	maxLogTail     = 5000
)

// Lifecycle is the controller surface the HTTP API drives.
type Lifecycle interface {
	Execute(ctx context.Context, cmd domain.Command) domain.Outcome
	Logs(ctx context.Context, tail int) (io.ReadCloser, error)
}

type ServerHandler struct {
	lifecycle Lifecycle
}

func NewServerHandler(lifecycle Lifecycle) *ServerHandler {
	return &ServerHandler{lifecycle: lifecycle}
}

// Register mounts the control routes on router.
func (h *ServerHandler) Register(router fiber.Router) {
	router.Get("/healthz", h.Health)

	server := router.Group("/api/v1/server")
	server.Get("/", h.GetStatus)
	server.Get("/info", h.GetInfo)
	server.Get("/logs", h.GetLogs)
	server.Post("/:action", h.PostAction)
}

func (h *ServerHandler) Health(c *fiber.Ctx) error {
	return c.SendString("ok")
}

func (h *ServerHandler) GetStatus(c *fiber.Ctx) error {
	return h.respond(c, h.lifecycle.Execute(c.Context(), domain.CommandStatus))
}

func (h *ServerHandler) GetInfo(c *fiber.Ctx) error {
	return h.respond(c, h.lifecycle.Execute(c.Context(), domain.CommandInfo))
}

var actions = map[string]domain.Command{
	"start":   domain.CommandStart,
	"stop":    domain.CommandStop,
	"restart": domain.CommandRestart,
}

func (h *ServerHandler) PostAction(c *fiber.Ctx) error {
	cmd, ok := actions[c.Params("action")]
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "action must be one of start, stop, restart",
		})
	}
	return h.respond(c, h.lifecycle.Execute(c.Context(), cmd))
}

func (h *ServerHandler) GetLogs(c *fiber.Ctx) error {
	tail := c.QueryInt("tail", defaultLogTail)
	if tail <= 0 || tail > maxLogTail {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "tail must be between 1 and 5000",
		})
	}

	logs, err := h.lifecycle.Logs(c.Context(), tail)
	if err != nil {
		return c.Status(statusFor(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	// fasthttp closes the stream once the body is written.
	c.Set("Content-Type", "text/plain")
	return c.SendStream(logs)
}

func (h *ServerHandler) respond(c *fiber.Ctx, out domain.Outcome) error {
	if out.Result == domain.ResultFailure {
		return c.Status(statusFor(out.Err)).JSON(out)
	}
	return c.JSON(out)
}

func statusFor(err error) int {
	if errors.Is(err, domain.ErrContainerNotFound) {
		return fiber.StatusNotFound
	}
	return fiber.StatusBadGateway
}
