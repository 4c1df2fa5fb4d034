// pkg/render/renderer_test.go
package render

import (
	"testing"

	"github.com/opd-ai/go-slingshot/pkg/engine"
)

func TestNewNullRenderer_CreatesValidRenderer(t *testing.T) {
	renderer := NewNullRenderer()
	if renderer == nil {
		t.Fatal("NewNullRenderer() returned nil")
	}
	if renderer.logger == nil {
		t.Error("logger not initialized")
	}
}

func TestNullRenderer_Frame_HandlesNilSnapshot(t *testing.T) {
	renderer := NewNullRenderer()
	// Must not panic.
	renderer.Frame(nil, nil)
}

func TestNullRenderer_Frame_AcceptsSnapshot(t *testing.T) {
	renderer := NewNullRenderer()
	snap := &engine.Snapshot{Mode: engine.ModeIdle, Level: 1}
	renderer.Frame(snap, nil)
}

func TestNullRendererInstance_ImplementsRenderer(t *testing.T) {
	if NullRendererInstance == nil {
		t.Fatal("NullRendererInstance is nil")
	}
}
