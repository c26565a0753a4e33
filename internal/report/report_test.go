package report

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
	"time"

	"dockvitals/internal/health"
	"dockvitals/internal/runtime"
)

func plainPrinter() (*Printer, *bytes.Buffer) {
	var buf bytes.Buffer
	return NewPrinter(&buf, WithColor(false)), &buf
}

func TestPrinter_HealthyBlock(t *testing.T) {
	p, buf := plainPrinter()

	p.Container(health.Result{
		Target:  "web",
		Outcome: health.OutcomeHealthy,
		Container: &runtime.Container{
			Name:         "web",
			Image:        "nginx:1.27",
			CreatedAt:    time.Date(2026, 8, 20, 10, 30, 0, 0, time.UTC),
			State:        runtime.StateRunning,
			Health:       runtime.HealthHealthy,
			PID:          4242,
			RestartCount: 1,
			Ports: []runtime.PortMapping{
				{HostPort: "8080", ContainerPort: "80", Protocol: "tcp"},
			},
		},
		Stats: &runtime.Stats{
			CPUPercent: 12.34,
			MemUsage:   512 * 1024 * 1024,
			MemLimit:   1024 * 1024 * 1024,
			MemPercent: 50,
			NetRx:      1200,
			NetTx:      3400,
		},
	})

	out := buf.String()
	for _, want := range []string{
		"✓ web", "(nginx:1.27)",
		"state:     running",
		"health:    healthy",
		"created:   2026-08-20",
		"pid:       4242",
		"restarts:  1",
		"cpu:       12.3%",
		"memory:    512MiB / 1GiB (50.0%)",
		"ports:     8080 → 80/tcp",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "last health probes") {
		t.Error("healthy block should not carry the probe log")
	}
}

func TestPrinter_UnhealthyBlockShowsProbeLog(t *testing.T) {
	p, buf := plainPrinter()

	p.Container(health.Result{
		Target:  "api",
		Outcome: health.OutcomeWarning,
		Container: &runtime.Container{
			Name:      "api",
			Image:     "api:latest",
			State:     runtime.StateRunning,
			Health:    runtime.HealthUnhealthy,
			HealthLog: []string{"connection refused", "timeout after 5s"},
		},
	})

	out := buf.String()
	for _, want := range []string{
		"⚠ api",
		"health:    unhealthy",
		"last health probes:",
		"connection refused",
		"timeout after 5s",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestPrinter_UnhealthyWithoutProbeOutput(t *testing.T) {
	p, buf := plainPrinter()

	p.Container(health.Result{
		Target:  "api",
		Outcome: health.OutcomeWarning,
		Container: &runtime.Container{
			Name:   "api",
			State:  runtime.StateRunning,
			Health: runtime.HealthUnhealthy,
		},
	})

	if !strings.Contains(buf.String(), "(no probe output)") {
		t.Errorf("missing probe log placeholder:\n%s", buf.String())
	}
}

func TestPrinter_StatsUnavailable(t *testing.T) {
	p, buf := plainPrinter()

	p.Container(health.Result{
		Target:  "web",
		Outcome: health.OutcomeHealthy,
		Container: &runtime.Container{
			Name:  "web",
			State: runtime.StateRunning,
		},
	})

	out := buf.String()
	for _, want := range []string{
		"cpu:       n/a",
		"memory:    n/a",
		"network:   n/a",
		"ports:     none",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestPrinter_FetchFailure(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		p, buf := plainPrinter()
		p.Container(health.Result{
			Target:  "ghost",
			Outcome: health.OutcomeProblem,
			Err:     fmt.Errorf("container %q: %w", "ghost", runtime.ErrNotFound),
		})

		if !strings.Contains(buf.String(), "✗ ghost: not found") {
			t.Errorf("missing not-found notice:\n%s", buf.String())
		}
	})

	t.Run("other lookup error", func(t *testing.T) {
		p, buf := plainPrinter()
		p.Container(health.Result{
			Target:  "web",
			Outcome: health.OutcomeProblem,
			Err:     fmt.Errorf("daemon hiccup"),
		})

		if !strings.Contains(buf.String(), "✗ web: lookup failed: daemon hiccup") {
			t.Errorf("missing lookup failure notice:\n%s", buf.String())
		}
	})
}

func TestPrinter_SummaryOmitsEmptyBuckets(t *testing.T) {
	tests := []struct {
		name    string
		sum     health.Summary
		want    []string
		wantNot []string
	}{
		{
			name:    "all buckets",
			sum:     health.Summary{Total: 3, Healthy: 1, Warnings: 1, Problems: 1},
			want:    []string{"Checked 3 container(s)", "1 healthy", "1 warning(s)", "1 problem(s)"},
			wantNot: nil,
		},
		{
			name:    "only healthy",
			sum:     health.Summary{Total: 2, Healthy: 2},
			want:    []string{"Checked 2 container(s)", "2 healthy"},
			wantNot: []string{"warning", "problem"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, buf := plainPrinter()
			p.Summary(tt.sum)
			out := buf.String()
			for _, w := range tt.want {
				if !strings.Contains(out, w) {
					t.Errorf("output missing %q:\n%s", w, out)
				}
			}
			for _, w := range tt.wantNot {
				if strings.Contains(out, w) {
					t.Errorf("output should omit %q:\n%s", w, out)
				}
			}
		})
	}
}

func TestPrinter_NoContainers(t *testing.T) {
	p, buf := plainPrinter()
	p.NoContainers()

	if !strings.Contains(buf.String(), "No running containers found") {
		t.Errorf("missing notice:\n%s", buf.String())
	}
}

func TestPortSummary(t *testing.T) {
	tests := []struct {
		name  string
		ports []runtime.PortMapping
		want  string
	}{
		{"empty", nil, "none"},
		{
			"single",
			[]runtime.PortMapping{{HostPort: "8080", ContainerPort: "80", Protocol: "tcp"}},
			"8080 → 80/tcp",
		},
		{
			"multiple",
			[]runtime.PortMapping{
				{HostPort: "8080", ContainerPort: "80", Protocol: "tcp"},
				{HostPort: "53", ContainerPort: "53", Protocol: "udp"},
			},
			"8080 → 80/tcp, 53 → 53/udp",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PortSummary(tt.ports); got != tt.want {
				t.Errorf("PortSummary() = %q, want %q", got, tt.want)
			}
		})
	}
}
