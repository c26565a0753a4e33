package report

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/docker/go-units"

	"dockvitals/internal/health"
	"dockvitals/internal/runtime"
)

// notAvailable marks fields whose best-effort data could not be sampled.
const notAvailable = "n/a"

// styles holds the visual emphasis for states and markers.
type styles struct {
	running   lipgloss.Style
	paused    lipgloss.Style
	stopped   lipgloss.Style
	healthy   lipgloss.Style
	unhealthy lipgloss.Style
	starting  lipgloss.Style
	noCheck   lipgloss.Style
	name      lipgloss.Style
	faint     lipgloss.Style
}

func colorStyles() styles {
	return styles{
		running:   lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		paused:    lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		stopped:   lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		healthy:   lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		unhealthy: lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		starting:  lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		noCheck:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		name:      lipgloss.NewStyle().Bold(true),
		faint:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

// plainStyles renders without any emphasis, for terminals without color
// support or when --no-color is set.
func plainStyles() styles {
	return styles{}
}

// Printer renders per-container blocks and the run summary to a stream.
// It is purely presentational: nothing here influences classification,
// and rendering never returns an error to the caller.
type Printer struct {
	w  io.Writer
	st styles
}

var _ health.Reporter = (*Printer)(nil)

// Option configures a Printer.
type Option func(*Printer)

// WithColor toggles visual emphasis.
func WithColor(enabled bool) Option {
	return func(p *Printer) {
		if enabled {
			p.st = colorStyles()
		} else {
			p.st = plainStyles()
		}
	}
}

// NewPrinter creates a Printer writing to w, with color enabled.
func NewPrinter(w io.Writer, opts ...Option) *Printer {
	p := &Printer{w: w, st: colorStyles()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Container renders one per-container block.
func (p *Printer) Container(res health.Result) {
	if res.Container == nil {
		if res.Err != nil && !errors.Is(res.Err, runtime.ErrNotFound) {
			p.printf("%s %s: lookup failed: %v\n\n", p.st.stopped.Render("✗"), p.st.name.Render(res.Target), res.Err)
		} else {
			p.printf("%s %s: not found\n\n", p.st.stopped.Render("✗"), p.st.name.Render(res.Target))
		}
		return
	}

	c := res.Container

	marker := p.st.stopped.Render("✗")
	switch res.Outcome {
	case health.OutcomeHealthy:
		marker = p.st.healthy.Render("✓")
	case health.OutcomeWarning:
		marker = p.st.unhealthy.Render("⚠")
	}

	p.printf("%s %s  %s\n", marker, p.st.name.Render(c.Name), p.st.faint.Render("("+c.Image+")"))
	p.printf("    state:     %s\n", p.stateLine(c))
	p.printf("    health:    %s\n", p.healthString(c.Health))
	p.printf("    created:   %s\n", p.createdString(c))
	p.printf("    pid:       %d\n", c.PID)
	p.printf("    restarts:  %d\n", c.RestartCount)
	p.printf("    cpu:       %s\n", cpuString(res.Stats))
	p.printf("    memory:    %s\n", memString(res.Stats))
	p.printf("    network:   %s\n", netString(res.Stats))
	p.printf("    ports:     %s\n", PortSummary(c.Ports))

	if c.Health == runtime.HealthUnhealthy {
		p.printf("    last health probes:\n")
		if len(c.HealthLog) == 0 {
			p.printf("      %s\n", p.st.faint.Render("(no probe output)"))
		}
		for _, line := range c.HealthLog {
			p.printf("      %s\n", line)
		}
	}
	p.printf("\n")
}

// Summary renders the end-of-run counters, omitting empty buckets.
func (p *Printer) Summary(sum health.Summary) {
	p.printf("Checked %d container(s)\n", sum.Total)
	if sum.Healthy > 0 {
		p.printf("  %s %d healthy\n", p.st.healthy.Render("✓"), sum.Healthy)
	}
	if sum.Warnings > 0 {
		p.printf("  %s %d warning(s)\n", p.st.unhealthy.Render("⚠"), sum.Warnings)
	}
	if sum.Problems > 0 {
		p.printf("  %s %d problem(s)\n", p.st.stopped.Render("✗"), sum.Problems)
	}
}

// NoContainers renders the empty-discovery notice.
func (p *Printer) NoContainers() {
	p.printf("ℹ No running containers found\n")
}

// printf swallows write errors: a broken report stream must never
// change the run's outcome.
func (p *Printer) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(p.w, format, args...)
}

func (p *Printer) stateLine(c *runtime.Container) string {
	var st lipgloss.Style
	switch c.State {
	case runtime.StateRunning:
		st = p.st.running
	case runtime.StatePaused, runtime.StateRestarting:
		st = p.st.paused
	default:
		st = p.st.stopped
	}
	line := st.Render(c.State.String())
	if c.State == runtime.StateRunning && !c.StartedAt.IsZero() {
		line += p.st.faint.Render(" (up " + Uptime(c.StartedAt) + ")")
	}
	return line
}

func (p *Printer) healthString(h runtime.HealthState) string {
	switch h {
	case runtime.HealthHealthy:
		return p.st.healthy.Render("healthy")
	case runtime.HealthUnhealthy:
		return p.st.unhealthy.Render("unhealthy")
	case runtime.HealthStarting:
		return p.st.starting.Render("starting")
	default:
		return p.st.noCheck.Render("none")
	}
}

func (p *Printer) createdString(c *runtime.Container) string {
	if c.CreatedAt.IsZero() {
		return p.st.faint.Render(notAvailable)
	}
	// calendar-date precision only
	return c.CreatedAt.Format("2006-01-02")
}

func cpuString(s *runtime.Stats) string {
	if s == nil {
		return notAvailable
	}
	return fmt.Sprintf("%.1f%%", s.CPUPercent)
}

func memString(s *runtime.Stats) string {
	if s == nil {
		return notAvailable
	}
	out := units.BytesSize(float64(s.MemUsage))
	if s.MemLimit > 0 {
		out += fmt.Sprintf(" / %s (%.1f%%)", units.BytesSize(float64(s.MemLimit)), s.MemPercent)
	}
	return out
}

func netString(s *runtime.Stats) string {
	if s == nil {
		return notAvailable
	}
	return fmt.Sprintf("rx %s / tx %s",
		units.HumanSize(float64(s.NetRx)), units.HumanSize(float64(s.NetTx)))
}

// PortSummary renders published ports as "host → container/proto" pairs.
func PortSummary(ports []runtime.PortMapping) string {
	if len(ports) == 0 {
		return "none"
	}
	out := ""
	for i, m := range ports {
		if i > 0 {
			out += ", "
		}
		out += fmt.Sprintf("%s → %s/%s", m.HostPort, m.ContainerPort, m.Protocol)
	}
	return out
}

// Uptime renders the time since start in human-readable form.
func Uptime(started time.Time) string {
	return units.HumanDuration(time.Since(started))
}
