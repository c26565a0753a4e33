package runtime

import (
	"context"
	"errors"
	"time"
)

// DefaultHealthLogLines bounds the health-probe log excerpt kept per container.
const DefaultHealthLogLines = 5

// ErrNotFound is returned by Inspect when the target does not exist.
var ErrNotFound = errors.New("container not found")

// LifecycleState is the engine's coarse status for a container,
// distinct from the health-check state.
type LifecycleState uint8

const (
	StateUnknown LifecycleState = iota
	StateCreated
	StateRunning
	StatePaused
	StateRestarting
	StateRemoving
	StateExited
	StateDead
)

func (s LifecycleState) String() string {
	switch s {
	case StateCreated:
		return "created"
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateRestarting:
		return "restarting"
	case StateRemoving:
		return "removing"
	case StateExited:
		return "exited"
	case StateDead:
		return "dead"
	default:
		return "unknown"
	}
}

// ParseLifecycleState maps an engine status string onto the closed state set.
// Unrecognized strings map to StateUnknown.
func ParseLifecycleState(s string) LifecycleState {
	switch s {
	case "created":
		return StateCreated
	case "running":
		return StateRunning
	case "paused":
		return StatePaused
	case "restarting":
		return StateRestarting
	case "removing":
		return StateRemoving
	case "exited":
		return StateExited
	case "dead":
		return StateDead
	default:
		return StateUnknown
	}
}

// HealthState is the result of a container-defined health probe,
// independent of the lifecycle state.
type HealthState uint8

const (
	HealthNone HealthState = iota // no health check defined
	HealthStarting
	HealthHealthy
	HealthUnhealthy
)

func (h HealthState) String() string {
	switch h {
	case HealthStarting:
		return "starting"
	case HealthHealthy:
		return "healthy"
	case HealthUnhealthy:
		return "unhealthy"
	default:
		return "none"
	}
}

// ParseHealthState maps an engine health status string onto the closed
// health set. Unrecognized or empty strings map to HealthNone.
func ParseHealthState(s string) HealthState {
	switch s {
	case "starting":
		return HealthStarting
	case "healthy":
		return HealthHealthy
	case "unhealthy":
		return HealthUnhealthy
	default:
		return HealthNone
	}
}

// PortMapping is one published port of a container.
type PortMapping struct {
	HostPort      string
	ContainerPort string
	Protocol      string
}

// Container is the descriptor fetched fresh per target. It carries
// everything the classifier and the report need.
type Container struct {
	ID           string
	Name         string
	Image        string
	CreatedAt    time.Time
	StartedAt    time.Time
	State        LifecycleState
	Health       HealthState
	PID          int
	RestartCount int
	Ports        []PortMapping

	// HealthLog holds the most recent health-probe output lines,
	// bounded by the runtime's configured depth. Empty when the
	// container has no health check or the probe produced no output.
	HealthLog []string
}

// Stats is an instantaneous resource sample for a running container.
// A nil sample means the data was unavailable, which is never an error
// condition for the caller.
type Stats struct {
	CPUPercent float64
	MemUsage   uint64
	MemLimit   uint64
	MemPercent float64
	NetRx      uint64
	NetTx      uint64
}

// Runtime is the narrow query surface over the container engine.
// All methods are blocking; callers own timeouts via ctx.
type Runtime interface {
	// Name returns the runtime identifier (e.g. "docker")
	Name() string

	// Ping verifies the engine is reachable. Used as the pre-flight check.
	Ping(ctx context.Context) error

	// ListRunning returns identifiers of all currently running containers.
	ListRunning(ctx context.Context) ([]string, error)

	// Inspect fetches a full descriptor for one target.
	// Returns an error wrapping ErrNotFound when the target does not exist.
	Inspect(ctx context.Context, id string) (*Container, error)

	// Stats samples instantaneous resource usage. Only meaningful for
	// running containers; failure means "unavailable", never "unhealthy".
	Stats(ctx context.Context, id string) (*Stats, error)
}
