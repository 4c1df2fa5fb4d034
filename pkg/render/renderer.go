// pkg/render/renderer.go
package render

import (
	"context"

	"github.com/opd-ai/go-slingshot/pkg/effects"
	"github.com/opd-ai/go-slingshot/pkg/engine"
	"github.com/opd-ai/go-slingshot/pkg/logging"
)

// Renderer consumes one frame's worth of game state. The engine never
// draws; it hands a snapshot to whichever Renderer the process runs with.
type Renderer interface {
	// Frame draws one complete frame from the snapshot. The effects field
	// may be nil when the front end carries no particle layer.
	Frame(snap *engine.Snapshot, field *effects.Field)
}

// NullRenderer discards every frame, logging at debug level. Used by the
// headless driver and as a stand-in wherever a Renderer is required but no
// display exists.
type NullRenderer struct {
	logger *logging.Logger
}

// NewNullRenderer creates a NullRenderer with structured logging.
func NewNullRenderer() *NullRenderer {
	return &NullRenderer{
		logger: logging.NewLogger(),
	}
}

// Frame implements Renderer.
func (d *NullRenderer) Frame(snap *engine.Snapshot, field *effects.Field) {
	if snap == nil {
		return
	}
	ctx := context.Background()
	d.logger.Debug(ctx, "Frame called",
		"tick", snap.Tick,
		"mode", snap.Mode.String(),
		"bodies", len(snap.Bodies),
	)
}

// NullRendererInstance is a global instance of NullRenderer for convenience.
var NullRendererInstance Renderer = NewNullRenderer()
