package ports

import (
	"context"
	"io"
	"time"

	"github.com/melih/lighthouse-bot/internal/core/domain"
)

// ContainerRuntime defines the lifecycle operations the bot needs on a single
// named container. Keeping it behind an interface lets us swap Docker for
// Podman or a fake without touching the controller.
type ContainerRuntime interface {
	// InspectContainer resolves a container by name. It returns
	// domain.ErrContainerNotFound (possibly wrapped) when nothing matches.
	InspectContainer(ctx context.Context, name string) (domain.Container, error)
	StartContainer(ctx context.Context, id string) error
	// StopContainer asks the container to exit, killing it after grace.
	StopContainer(ctx context.Context, id string, grace time.Duration) error
	RestartContainer(ctx context.Context, id string, grace time.Duration) error
	// GetContainerLogs returns the last tail lines of combined stdout/stderr.
	GetContainerLogs(ctx context.Context, id string, tail int) (io.ReadCloser, error)
}
