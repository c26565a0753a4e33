package cmd

import (
	"io"

	"dockvitals/internal/app"
	"dockvitals/internal/runtime"
)

// getRuntime returns the application runtime.
func getRuntime() runtime.Runtime {
	return app.Default.Runtime
}

// reportStream returns the writer the report is rendered to.
func reportStream() io.Writer {
	return app.Default.Out
}
