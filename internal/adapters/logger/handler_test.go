package logger_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/Guardsquare/proguard-sub005/internal/adapters/logger"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
)

func newTestHandler(t *testing.T) (*logger.PrettyHandler, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	return logger.NewPrettyHandler(buf, &slog.HandlerOptions{Level: slog.LevelInfo}), buf
}

func TestPrettyHandler_Handle_Levels(t *testing.T) {
	tests := []struct {
		name       string
		level      slog.Level
		msg        string
		goldenName string
	}{
		{name: "info level", level: slog.LevelInfo, msg: "information message", goldenName: "handler_info"},
		{name: "warn level", level: slog.LevelWarn, msg: "warning message", goldenName: "handler_warn"},
		{name: "error level", level: slog.LevelError, msg: "error message", goldenName: "handler_error"},
		{name: "debug level filtered", level: slog.LevelDebug, msg: "debug message", goldenName: "handler_debug_filtered"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, buf := newTestHandler(t)
			slog.New(handler).Log(t.Context(), tt.level, tt.msg)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestPrettyHandler_WithAttrs(t *testing.T) {
	tests := []struct {
		name       string
		attrs      []slog.Attr
		msg        string
		goldenName string
	}{
		{
			name:       "single attribute",
			attrs:      []slog.Attr{slog.String("key", "value")},
			msg:        "single attr message",
			goldenName: "handler_attrs_single",
		},
		{
			name:       "multiple attributes",
			attrs:      []slog.Attr{slog.String("a", "1"), slog.Int("b", 2)},
			msg:        "multi attr message",
			goldenName: "handler_attrs_multi",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, buf := newTestHandler(t)
			slog.New(handler.WithAttrs(tt.attrs)).Info(tt.msg)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestPrettyHandler_WithGroup(t *testing.T) {
	tests := []struct {
		name       string
		groups     []string
		msg        string
		key, value string
		goldenName string
	}{
		{
			name:       "single group",
			groups:     []string{"request"},
			msg:        "single group message",
			key:        "id",
			value:      "123",
			goldenName: "handler_group_single",
		},
		{
			name:       "nested groups",
			groups:     []string{"a", "b"},
			msg:        "nested group message",
			key:        "key",
			value:      "val",
			goldenName: "handler_group_nested",
		},
		{
			name:       "empty group name",
			groups:     []string{""},
			msg:        "empty group test",
			key:        "key",
			value:      "val",
			goldenName: "handler_group_empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, buf := newTestHandler(t)

			var handler slog.Handler = h
			for _, g := range tt.groups {
				handler = handler.WithGroup(g)
			}
			slog.New(handler).Info(tt.msg, tt.key, tt.value)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestPrettyHandler_RecordAttrs(t *testing.T) {
	handler, buf := newTestHandler(t)
	slog.New(handler).Info("int attr", "count", 42)

	g := goldie.New(t)
	g.Assert(t, "handler_record_int", buf.Bytes())
}

func TestPrettyHandler_Enabled(t *testing.T) {
	tests := []struct {
		name         string
		handlerLevel slog.Level
		recordLevel  slog.Level
		want         bool
	}{
		{name: "debug below info", handlerLevel: slog.LevelInfo, recordLevel: slog.LevelDebug, want: false},
		{name: "info at info", handlerLevel: slog.LevelInfo, recordLevel: slog.LevelInfo, want: true},
		{name: "warn above info", handlerLevel: slog.LevelInfo, recordLevel: slog.LevelWarn, want: true},
		{name: "warn below error", handlerLevel: slog.LevelError, recordLevel: slog.LevelWarn, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := logger.NewPrettyHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: tt.handlerLevel})
			assert.Equal(t, tt.want, handler.Enabled(t.Context(), tt.recordLevel))
		})
	}
}

func TestPrettyHandler_NilOptions(t *testing.T) {
	handler := logger.NewPrettyHandler(nil, nil)
	assert.True(t, handler.Enabled(t.Context(), slog.LevelInfo))
	assert.False(t, handler.Enabled(t.Context(), slog.LevelDebug))
}
