package docker

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/docker/docker/api/types"
	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/client"
	"github.com/docker/docker/errdefs"
	"github.com/docker/docker/pkg/stdcopy"

	"github.com/melih/lighthouse-bot/internal/core/domain"
)

// dockerAPI is the part of the Docker SDK client the adapter uses.
type dockerAPI interface {
	ContainerInspect(ctx context.Context, containerID string) (types.ContainerJSON, error)
	ContainerStart(ctx context.Context, containerID string, options container.StartOptions) error
	ContainerStop(ctx context.Context, containerID string, options container.StopOptions) error
	ContainerRestart(ctx context.Context, containerID string, options container.StopOptions) error
	ContainerLogs(ctx context.Context, containerID string, options container.LogsOptions) (io.ReadCloser, error)
	Close() error
}

// Adapter implements ports.ContainerRuntime using Docker SDK
type Adapter struct {
	cli dockerAPI
}

// NewAdapter creates a Docker adapter configured from DOCKER_HOST and friends.
func NewAdapter() (*Adapter, error) {
	cli, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		return nil, fmt.Errorf("failed to create docker client: %w", err)
	}
	return &Adapter{cli: cli}, nil
}

func (a *Adapter) Close() error {
	return a.cli.Close()
}

// InspectContainer looks the container up by name.
func (a *Adapter) InspectContainer(ctx context.Context, name string) (domain.Container, error) {
	info, err := a.cli.ContainerInspect(ctx, name)
	if err != nil {
		if errdefs.IsNotFound(err) {
			return domain.Container{}, fmt.Errorf("%w: %s", domain.ErrContainerNotFound, name)
		}
		return domain.Container{}, fmt.Errorf("failed to inspect container: %w", err)
	}
	return toDomain(info), nil
}

func (a *Adapter) StartContainer(ctx context.Context, id string) error {
	if err := a.cli.ContainerStart(ctx, id, container.StartOptions{}); err != nil {
		return fmt.Errorf("failed to start container: %w", err)
	}
	return nil
}

// StopContainer sends the stop signal and waits up to grace before Docker kills it.
func (a *Adapter) StopContainer(ctx context.Context, id string, grace time.Duration) error {
	if err := a.cli.ContainerStop(ctx, id, stopOptions(grace)); err != nil {
		return fmt.Errorf("failed to stop container: %w", err)
	}
	return nil
}

func (a *Adapter) RestartContainer(ctx context.Context, id string, grace time.Duration) error {
	if err := a.cli.ContainerRestart(ctx, id, stopOptions(grace)); err != nil {
		return fmt.Errorf("failed to restart container: %w", err)
	}
	return nil
}

// GetContainerLogs returns the last tail lines of stdout and stderr as plain
// text. Non-TTY streams are demultiplexed.
func (a *Adapter) GetContainerLogs(ctx context.Context, id string, tail int) (io.ReadCloser, error) {
	info, err := a.cli.ContainerInspect(ctx, id)
	if err != nil {
		if errdefs.IsNotFound(err) {
			return nil, fmt.Errorf("%w: %s", domain.ErrContainerNotFound, id)
		}
		return nil, fmt.Errorf("failed to inspect container: %w", err)
	}

	options := container.LogsOptions{
		ShowStdout: true,
		ShowStderr: true,
		Follow:     false,
		Tail:       strconv.Itoa(tail),
	}
	logs, err := a.cli.ContainerLogs(ctx, id, options)
	if err != nil {
		return nil, fmt.Errorf("failed to read container logs: %w", err)
	}
	if info.Config != nil && info.Config.Tty {
		return logs, nil
	}

	pr, pw := io.Pipe()
	go func() {
		_, err := stdcopy.StdCopy(pw, pw, logs)
		logs.Close()
		pw.CloseWithError(err)
	}()
	return pr, nil
}

func stopOptions(grace time.Duration) container.StopOptions {
	secs := int(grace / time.Second)
	return container.StopOptions{Timeout: &secs}
}

func toDomain(info types.ContainerJSON) domain.Container {
	var c domain.Container
	if info.ContainerJSONBase != nil {
		c.ID = info.ID
		// Names come back with a leading slash
		c.Name = strings.TrimPrefix(info.Name, "/")
		if info.State != nil {
			c.State = info.State.Status
		}
	}
	if info.Config != nil {
		c.Image = info.Config.Image
	}
	return c
}
