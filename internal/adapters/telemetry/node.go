package telemetry

import (
	"context"

	"github.com/Guardsquare/proguard-sub005/internal/core/ports"
	"github.com/grindlemire/graft"
)

// TracerNodeID is the unique identifier for the telemetry adapter Graft node.
const TracerNodeID graft.ID = "adapter.telemetry"

// InstrumentationName identifies the spans of this module.
const InstrumentationName = "github.com/Guardsquare/proguard-sub005"

func init() {
	graft.Register(graft.Node[ports.Tracer]{
		ID:        TracerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Tracer, error) {
			return NewOTelTracer(InstrumentationName), nil
		},
	})
}
