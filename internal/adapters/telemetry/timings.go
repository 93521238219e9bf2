package telemetry

import (
	"context"
	"fmt"
	"time"

	"github.com/Guardsquare/proguard-sub005/internal/core/ports"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

var _ sdktrace.SpanProcessor = (*TimingProcessor)(nil)

// TimingProcessor logs the duration of every span when it ends.
type TimingProcessor struct {
	logger ports.Logger
}

// NewTimingProcessor creates a TimingProcessor reporting to logger.
func NewTimingProcessor(logger ports.Logger) *TimingProcessor {
	return &TimingProcessor{logger: logger}
}

// OnStart does nothing.
func (p *TimingProcessor) OnStart(context.Context, sdktrace.ReadWriteSpan) {}

// OnEnd logs the span name, its duration and its error status.
func (p *TimingProcessor) OnEnd(s sdktrace.ReadOnlySpan) {
	d := s.EndTime().Sub(s.StartTime()).Round(time.Microsecond)
	msg := fmt.Sprintf("%s finished in %s", s.Name(), d)
	if st := s.Status(); st.Code == codes.Error {
		msg += " (failed: " + st.Description + ")"
	}
	p.logger.Info(msg)
}

// Shutdown does nothing.
func (p *TimingProcessor) Shutdown(context.Context) error { return nil }

// ForceFlush does nothing.
func (p *TimingProcessor) ForceFlush(context.Context) error { return nil }

// Install registers a global tracer provider that reports span timings to
// logger. The returned provider must be shut down by the caller.
func Install(logger ports.Logger) *sdktrace.TracerProvider {
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSpanProcessor(NewTimingProcessor(logger)),
	)
	otel.SetTracerProvider(tp)
	return tp
}
