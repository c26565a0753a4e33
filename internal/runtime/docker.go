package runtime

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/containerd/errdefs"
	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/client"
	"github.com/docker/go-connections/nat"

	"dockvitals/internal/logging"
)

var _ Runtime = (*DockerRuntime)(nil)

// DockerRuntime implements Runtime using the Docker Engine API.
type DockerRuntime struct {
	cli *client.Client

	// HealthLogLines bounds the probe log excerpt kept on descriptors.
	HealthLogLines int
}

// NewDockerRuntime creates a DockerRuntime with a new client from the
// environment (DOCKER_HOST and friends).
func NewDockerRuntime() (*DockerRuntime, error) {
	cli, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		return nil, fmt.Errorf("create docker client: %w", err)
	}
	return &DockerRuntime{cli: cli, HealthLogLines: DefaultHealthLogLines}, nil
}

// NewDockerRuntimeFromClient wraps an existing Docker client.
func NewDockerRuntimeFromClient(cli *client.Client) *DockerRuntime {
	return &DockerRuntime{cli: cli, HealthLogLines: DefaultHealthLogLines}
}

// Name returns the runtime identifier
func (r *DockerRuntime) Name() string {
	return "docker"
}

// Ping verifies the engine is reachable.
func (r *DockerRuntime) Ping(ctx context.Context) error {
	if _, err := r.cli.Ping(ctx); err != nil {
		return fmt.Errorf("ping docker daemon: %w", err)
	}
	return nil
}

// ListRunning returns the names (or short ids) of all running containers.
func (r *DockerRuntime) ListRunning(ctx context.Context) ([]string, error) {
	list, err := r.cli.ContainerList(ctx, container.ListOptions{})
	if err != nil {
		return nil, fmt.Errorf("list containers: %w", err)
	}
	ids := make([]string, 0, len(list))
	for _, c := range list {
		ids = append(ids, summaryIdentifier(c.Names, c.ID))
	}
	return ids, nil
}

// Inspect fetches a full descriptor for one target.
func (r *DockerRuntime) Inspect(ctx context.Context, id string) (*Container, error) {
	info, err := r.cli.ContainerInspect(ctx, id)
	if err != nil {
		if errdefs.IsNotFound(err) {
			return nil, fmt.Errorf("container %q: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("inspect container %q: %w", id, err)
	}
	return descriptor(info, r.HealthLogLines), nil
}

// Stats samples instantaneous resource usage for one container.
func (r *DockerRuntime) Stats(ctx context.Context, id string) (*Stats, error) {
	// Stream=false makes the daemon take two samples so the precpu
	// window is populated and a CPU percentage can be derived.
	resp, err := r.cli.ContainerStats(ctx, id, false)
	if err != nil {
		return nil, fmt.Errorf("stats %q: %w", id, err)
	}
	defer resp.Body.Close()

	var v container.StatsResponse
	if err := json.NewDecoder(resp.Body).Decode(&v); err != nil {
		return nil, fmt.Errorf("decode stats %q: %w", id, err)
	}
	return sample(&v), nil
}

// Close releases the underlying client.
func (r *DockerRuntime) Close() error {
	return r.cli.Close()
}

// summaryIdentifier prefers the container name over the raw id.
// Engine names carry a leading slash.
func summaryIdentifier(names []string, id string) string {
	if len(names) > 0 && names[0] != "" {
		return strings.TrimPrefix(names[0], "/")
	}
	if len(id) > 12 {
		return id[:12]
	}
	return id
}

// descriptor converts an engine inspect response into a Container.
func descriptor(info container.InspectResponse, healthLogLines int) *Container {
	c := &Container{
		ID:           info.ID,
		Name:         strings.TrimPrefix(info.Name, "/"),
		RestartCount: info.RestartCount,
	}
	if info.Config != nil {
		c.Image = info.Config.Image
	}
	if t, err := time.Parse(time.RFC3339Nano, info.Created); err == nil {
		c.CreatedAt = t
	}
	if info.State != nil {
		c.State = ParseLifecycleState(string(info.State.Status))
		c.PID = info.State.Pid
		if t, err := time.Parse(time.RFC3339Nano, info.State.StartedAt); err == nil {
			c.StartedAt = t
		}
		if info.State.Health != nil {
			c.Health = ParseHealthState(string(info.State.Health.Status))
			c.HealthLog = healthTail(info.State.Health.Log, healthLogLines)
		}
	}
	if info.NetworkSettings != nil {
		c.Ports = portMappings(info.NetworkSettings.Ports)
	}
	logging.Debug("inspected container",
		"name", c.Name, "state", c.State.String(), "health", c.Health.String())
	return c
}

// portMappings flattens a nat.PortMap into sorted, deduplicated mappings.
// Docker publishes one binding per host address; the report only cares
// about the port pair, so IPv4/IPv6 twins collapse into one entry.
func portMappings(ports nat.PortMap) []PortMapping {
	seen := make(map[PortMapping]bool)
	var out []PortMapping
	for port, bindings := range ports {
		for _, b := range bindings {
			if b.HostPort == "" {
				continue
			}
			m := PortMapping{
				HostPort:      b.HostPort,
				ContainerPort: port.Port(),
				Protocol:      port.Proto(),
			}
			if seen[m] {
				continue
			}
			seen[m] = true
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].ContainerPort != out[j].ContainerPort {
			return out[i].ContainerPort < out[j].ContainerPort
		}
		if out[i].HostPort != out[j].HostPort {
			return out[i].HostPort < out[j].HostPort
		}
		return out[i].Protocol < out[j].Protocol
	})
	return out
}

// healthTail extracts the last n non-empty probe output lines.
func healthTail(log []*container.HealthcheckResult, n int) []string {
	if n <= 0 {
		n = DefaultHealthLogLines
	}
	var lines []string
	for _, entry := range log {
		if entry == nil {
			continue
		}
		for _, line := range strings.Split(entry.Output, "\n") {
			line = strings.TrimSpace(line)
			if line != "" {
				lines = append(lines, line)
			}
		}
	}
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return lines
}

// sample converts an engine stats response into a Stats value.
// CPU percentage follows the engine's own formula: usage delta over the
// system delta, scaled by online CPUs.
func sample(v *container.StatsResponse) *Stats {
	s := &Stats{
		MemUsage: v.MemoryStats.Usage,
		MemLimit: v.MemoryStats.Limit,
	}
	if s.MemLimit > 0 {
		s.MemPercent = float64(s.MemUsage) / float64(s.MemLimit) * 100
	}

	cpuDelta := float64(v.CPUStats.CPUUsage.TotalUsage) - float64(v.PreCPUStats.CPUUsage.TotalUsage)
	sysDelta := float64(v.CPUStats.SystemUsage) - float64(v.PreCPUStats.SystemUsage)
	online := float64(v.CPUStats.OnlineCPUs)
	if online == 0 {
		online = float64(len(v.CPUStats.CPUUsage.PercpuUsage))
	}
	if sysDelta > 0 && cpuDelta > 0 {
		s.CPUPercent = cpuDelta / sysDelta * online * 100
	}

	for _, nw := range v.Networks {
		s.NetRx += nw.RxBytes
		s.NetTx += nw.TxBytes
	}
	return s
}
