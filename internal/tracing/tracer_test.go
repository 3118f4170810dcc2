package tracing

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	require.False(t, cfg.Enabled, "tracing should be disabled by default")
	require.Equal(t, ExporterFile, cfg.Exporter)
	require.Equal(t, "vimlite-traces.jsonl", cfg.FilePath)
	require.Equal(t, "localhost:4317", cfg.OTLPEndpoint)
	require.Equal(t, 1.0, cfg.SampleRate)
	require.Equal(t, "vimlite", cfg.ServiceName)
}

func TestNewProvider_Disabled(t *testing.T) {
	provider, err := NewProvider(Config{Enabled: false})
	require.NoError(t, err)
	require.NotNil(t, provider)
	require.False(t, provider.Enabled())

	// Spans from the no-op tracer are safe to create and end.
	ctx, span := provider.Tracer().Start(context.Background(), SpanExecute)
	require.NotNil(t, ctx)
	require.False(t, span.SpanContext().IsValid())
	span.End()

	require.NoError(t, provider.Shutdown(context.Background()))
}

func TestNewProvider_FileExporter(t *testing.T) {
	tracePath := filepath.Join(t.TempDir(), "traces.jsonl")

	provider, err := NewProvider(Config{
		Enabled:     true,
		Exporter:    ExporterFile,
		FilePath:    tracePath,
		SampleRate:  1.0,
		ServiceName: "test-service",
	})
	require.NoError(t, err)
	require.True(t, provider.Enabled())

	ctx, parent := provider.Tracer().Start(context.Background(), SpanExecute)
	_, child := provider.Tracer().Start(ctx, SpanMacroPlay)
	require.True(t, parent.SpanContext().IsValid())
	require.Equal(t, parent.SpanContext().TraceID(), child.SpanContext().TraceID(),
		"child span should share the parent's trace ID")
	child.End()
	parent.End()

	// Shutdown flushes the batcher.
	require.NoError(t, provider.Shutdown(context.Background()))

	data, err := os.ReadFile(tracePath)
	require.NoError(t, err)
	require.Contains(t, string(data), SpanExecute)
	require.Contains(t, string(data), SpanMacroPlay)
}

func TestNewProvider_StdoutExporterUsesWriter(t *testing.T) {
	var buf bytes.Buffer

	provider, err := NewProvider(Config{
		Enabled:  true,
		Exporter: ExporterStdout,
	}, WithWriter(&buf))
	require.NoError(t, err)

	_, span := provider.Tracer().Start(context.Background(), SpanExecute)
	span.End()
	require.NoError(t, provider.Shutdown(context.Background()))

	require.Contains(t, buf.String(), SpanExecute)
}

func TestNewProvider_NoExporter(t *testing.T) {
	provider, err := NewProvider(Config{Enabled: true, Exporter: ExporterNone})
	require.NoError(t, err)
	require.True(t, provider.Enabled())

	_, span := provider.Tracer().Start(context.Background(), SpanExecute)
	require.True(t, span.SpanContext().IsValid(), "spans are real even without an exporter")
	span.End()

	require.NoError(t, provider.Shutdown(context.Background()))
}

func TestNewProvider_FileExporter_MissingPath(t *testing.T) {
	provider, err := NewProvider(Config{Enabled: true, Exporter: ExporterFile})
	require.Error(t, err)
	require.Nil(t, provider)
	require.Contains(t, err.Error(), "file_path required")
}

func TestNewProvider_UnsupportedExporter(t *testing.T) {
	provider, err := NewProvider(Config{Enabled: true, Exporter: "carrier-pigeon"})
	require.Error(t, err)
	require.Nil(t, provider)
	require.Contains(t, err.Error(), "unsupported exporter")
}

func TestNewProvider_DefaultsForZeroValues(t *testing.T) {
	tracePath := filepath.Join(t.TempDir(), "traces.jsonl")

	provider, err := NewProvider(Config{
		Enabled:  true,
		Exporter: ExporterFile,
		FilePath: tracePath,
		// SampleRate 0 and empty ServiceName fall back to defaults.
	})
	require.NoError(t, err)
	require.NotNil(t, provider)

	_, span := provider.Tracer().Start(context.Background(), SpanExecute)
	require.True(t, span.SpanContext().IsSampled(), "zero sample rate should default to sampling everything")
	span.End()

	require.NoError(t, provider.Shutdown(context.Background()))
}
