package app

import (
	"bytes"
	"testing"

	"dockvitals/internal/runtime"
)

func TestNew_WithOptions(t *testing.T) {
	m := runtime.NewMockRuntime()
	var buf bytes.Buffer

	a := New(WithRuntime(m), WithOutput(&buf))

	if a.Runtime != runtime.Runtime(m) {
		t.Error("WithRuntime should install the provided runtime")
	}
	if a.Out != &buf {
		t.Error("WithOutput should install the provided writer")
	}
}

func TestSetDefault(t *testing.T) {
	orig := Default
	defer SetDefault(orig)

	m := runtime.NewMockRuntime()
	SetDefault(New(WithRuntime(m)))

	if Default.Runtime != runtime.Runtime(m) {
		t.Error("SetDefault should replace the default instance")
	}
}
