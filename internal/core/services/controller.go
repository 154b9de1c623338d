package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/melih/lighthouse-bot/internal/core/domain"
	"github.com/melih/lighthouse-bot/internal/core/ports"
)

// DefaultGracePeriod is how long stop and restart wait for a clean shutdown
// before the runtime kills the container.
const DefaultGracePeriod = 30 * time.Second

// Controller drives the lifecycle of one named container.
type Controller struct {
	runtime ports.ContainerRuntime
	name    string
	grace   time.Duration
	log     logrus.FieldLogger
}

// NewController creates a controller for the container called name.
// A non-positive grace falls back to DefaultGracePeriod.
func NewController(runtime ports.ContainerRuntime, name string, grace time.Duration, log logrus.FieldLogger) *Controller {
	if grace <= 0 {
		grace = DefaultGracePeriod
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Controller{runtime: runtime, name: name, grace: grace, log: log}
}

// Execute runs cmd against the container. The container is looked up again on
// every call, so it may be recreated or renamed between commands.
func (c *Controller) Execute(ctx context.Context, cmd domain.Command) domain.Outcome {
	log := c.log.WithFields(logrus.Fields{"container": c.name, "command": cmd})

	switch cmd {
	case domain.CommandStatus, domain.CommandInfo, domain.CommandStart, domain.CommandStop, domain.CommandRestart:
	default:
		return domain.Failure(cmd, fmt.Errorf("unsupported command %q", cmd))
	}

	ctr, err := c.runtime.InspectContainer(ctx, c.name)
	if err != nil {
		if errors.Is(err, domain.ErrContainerNotFound) {
			log.Info("container not found")
			return domain.Failure(cmd, domain.ErrContainerNotFound)
		}
		log.WithError(err).Warn("inspect failed")
		return domain.Failure(cmd, err)
	}
	log = log.WithField("state", ctr.State)

	switch cmd {
	case domain.CommandInfo:
		return domain.Success(cmd, fmt.Sprintf("id=%s image=%s state=%s", ctr.ShortID(), ctr.Image, ctr.State))

	case domain.CommandStart:
		if ctr.Running() {
			return domain.NoOp(cmd, "already running")
		}
		if err := c.runtime.StartContainer(ctx, ctr.ID); err != nil {
			log.WithError(err).Warn("start failed")
			return domain.Failure(cmd, err)
		}
		log.Info("container started")
		return domain.Success(cmd, "started")

	case domain.CommandStop:
		if !ctr.Running() {
			return domain.NoOp(cmd, "already stopped")
		}
		if err := c.runtime.StopContainer(ctx, ctr.ID, c.grace); err != nil {
			log.WithError(err).Warn("stop failed")
			return domain.Failure(cmd, err)
		}
		log.Info("container stopped")
		return domain.Success(cmd, "stopped")

	case domain.CommandRestart:
		// No running check: a restart is always attempted.
		if err := c.runtime.RestartContainer(ctx, ctr.ID, c.grace); err != nil {
			log.WithError(err).Warn("restart failed")
			return domain.Failure(cmd, err)
		}
		log.Info("container restarted")
		return domain.Success(cmd, "restarted")

	default: // status
		return domain.Success(cmd, ctr.State)
	}
}

// Logs returns the last tail lines written by the container.
func (c *Controller) Logs(ctx context.Context, tail int) (io.ReadCloser, error) {
	ctr, err := c.runtime.InspectContainer(ctx, c.name)
	if err != nil {
		return nil, err
	}
	return c.runtime.GetContainerLogs(ctx, ctr.ID, tail)
}
