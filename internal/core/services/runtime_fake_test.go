package services

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/melih/lighthouse-bot/internal/core/domain"
)

type stopCall struct {
	id    string
	grace time.Duration
}

// fakeRuntime is an in-memory ContainerRuntime that records mutations.
type fakeRuntime struct {
	ctr     *domain.Container
	inspErr error

	startErr   error
	stopErr    error
	restartErr error

	inspects int
	starts   []string
	stops    []stopCall
	restarts []stopCall
}

func newFakeRuntime(state string) *fakeRuntime {
	return &fakeRuntime{ctr: &domain.Container{
		ID:    "4f1c2a9be07d55aa1b2c",
		Name:  "gameserver",
		Image: "itzg/minecraft-server:latest",
		State: state,
	}}
}

func (f *fakeRuntime) InspectContainer(_ context.Context, name string) (domain.Container, error) {
	f.inspects++
	if f.inspErr != nil {
		return domain.Container{}, f.inspErr
	}
	if f.ctr == nil || f.ctr.Name != name {
		return domain.Container{}, domain.ErrContainerNotFound
	}
	return *f.ctr, nil
}

func (f *fakeRuntime) StartContainer(_ context.Context, id string) error {
	f.starts = append(f.starts, id)
	if f.startErr != nil {
		return f.startErr
	}
	f.ctr.State = domain.StateRunning
	return nil
}

func (f *fakeRuntime) StopContainer(_ context.Context, id string, grace time.Duration) error {
	f.stops = append(f.stops, stopCall{id, grace})
	if f.stopErr != nil {
		return f.stopErr
	}
	f.ctr.State = "exited"
	return nil
}

func (f *fakeRuntime) RestartContainer(_ context.Context, id string, grace time.Duration) error {
	f.restarts = append(f.restarts, stopCall{id, grace})
	if f.restartErr != nil {
		return f.restartErr
	}
	f.ctr.State = domain.StateRunning
	return nil
}

func (f *fakeRuntime) GetContainerLogs(_ context.Context, _ string, _ int) (io.ReadCloser, error) {
	return io.NopCloser(strings.NewReader("[Server thread/INFO]: Done (3.2s)!\n")), nil
}

func (f *fakeRuntime) mutations() int {
	return len(f.starts) + len(f.stops) + len(f.restarts)
}
