package domain

import "errors"

// ErrContainerNotFound is returned by a ContainerRuntime when no container
// matches the configured name.
var ErrContainerNotFound = errors.New("container not found")

// StateRunning is the only state the controller treats specially. Every
// other value reported by the runtime (exited, created, paused, restarting...)
// counts as "not running".
const StateRunning = "running"

// Container represents the managed game-server container as seen by the runtime.
type Container struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image"`
	State string `json:"state"` // running, exited, etc.
}

// Running reports whether the runtime considers the container running.
func (c Container) Running() bool {
	return c.State == StateRunning
}

// ShortID returns the 12 character form of the container ID.
func (c Container) ShortID() string {
	if len(c.ID) > 12 {
		return c.ID[:12]
	}
	return c.ID
}
