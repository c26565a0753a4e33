// Package app provides the application context for dockvitals.
// It allows dependency injection for testing.
package app

import (
	"io"
	"os"

	"dockvitals/internal/logging"
	"dockvitals/internal/runtime"
)

// App holds the application dependencies
type App struct {
	// Runtime is the container runtime query surface
	Runtime runtime.Runtime

	// Out is the report stream
	Out io.Writer
}

// Option is a function that configures the App
type Option func(*App)

// WithRuntime sets a custom runtime
func WithRuntime(r runtime.Runtime) Option {
	return func(a *App) {
		a.Runtime = r
	}
}

// WithOutput sets a custom report stream
func WithOutput(w io.Writer) Option {
	return func(a *App) {
		a.Out = w
	}
}

// New creates a new App with the given options.
// If a runtime is not provided via WithRuntime, the Docker Engine
// client is constructed from the environment.
func New(opts ...Option) *App {
	app := &App{
		Out: os.Stdout,
	}

	for _, opt := range opts {
		opt(app)
	}

	if app.Runtime == nil {
		rt, err := runtime.NewDockerRuntime()
		if err != nil {
			// Left nil; the pre-flight check reports this to the user.
			logging.Debug("failed to initialize runtime", "error", err)
		} else {
			app.Runtime = rt
		}
	}

	return app
}

// Default is the default application instance
var Default = New()

// SetDefault sets the default application instance (used for testing)
func SetDefault(app *App) {
	Default = app
}

// ResetDefault resets to the default application instance
func ResetDefault() {
	Default = New()
}
