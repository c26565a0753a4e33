// Package report renders classified containers as human-readable text.
//
// Printer implements health.Reporter: one block per container (name,
// image, created date, lifecycle state, health state, pid, restarts,
// resource strings, port summary, and the probe log excerpt when
// unhealthy), followed by a summary with one line per non-empty bucket.
//
// Rendering is a side effect only. Write errors are swallowed and color
// degrades to plain text, so the report stream can never change the
// run's outcome or exit code.
package report
