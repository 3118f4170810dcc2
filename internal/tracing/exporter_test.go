package tracing

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestNewFileExporter_CreatesParentDirectories(t *testing.T) {
	tracePath := filepath.Join(t.TempDir(), "nested", "dir", "traces.jsonl")

	exporter, err := NewFileExporter(tracePath)
	require.NoError(t, err)

	_, err = os.Stat(tracePath)
	require.NoError(t, err, "trace file should be created with parent dirs")

	require.NoError(t, exporter.Shutdown(context.Background()))
}

func TestFileExporter_AppendsToExistingFile(t *testing.T) {
	tracePath := filepath.Join(t.TempDir(), "traces.jsonl")
	require.NoError(t, os.WriteFile(tracePath, []byte(`{"existing": "data"}`+"\n"), 0644))

	exporter, err := NewFileExporter(tracePath)
	require.NoError(t, err)

	stub := tracetest.SpanStub{
		Name:      SpanExecute,
		StartTime: time.Now(),
		EndTime:   time.Now().Add(time.Millisecond),
	}
	require.NoError(t, exporter.ExportSpans(context.Background(), []sdktrace.ReadOnlySpan{stub.Snapshot()}))
	require.NoError(t, exporter.Shutdown(context.Background()))

	content, err := os.ReadFile(tracePath)
	require.NoError(t, err)
	require.Contains(t, string(content), `{"existing": "data"}`)
	require.Contains(t, string(content), SpanExecute)
}

func TestFileExporter_WritesSpanRecord(t *testing.T) {
	tracePath := filepath.Join(t.TempDir(), "traces.jsonl")

	exporter, err := NewFileExporter(tracePath)
	require.NoError(t, err)

	start := time.Now()
	stub := tracetest.SpanStub{
		Name:      SpanMacroPlay,
		StartTime: start,
		EndTime:   start.Add(100 * time.Millisecond),
		Status: sdktrace.Status{
			Code:        codes.Error,
			Description: "tried to execute macro (z) but that macro has not been recorded",
		},
		Attributes: []attribute.KeyValue{
			attribute.String(AttrMacroName, "z"),
			attribute.Int(AttrMacroDepth, 2),
		},
		Events: []sdktrace.Event{
			{
				Name:       "exception",
				Time:       start,
				Attributes: []attribute.KeyValue{attribute.String("exception.message", "boom")},
			},
		},
	}
	require.NoError(t, exporter.ExportSpans(context.Background(), []sdktrace.ReadOnlySpan{stub.Snapshot()}))
	require.NoError(t, exporter.Shutdown(context.Background()))

	file, err := os.Open(tracePath)
	require.NoError(t, err)
	defer file.Close()

	var record SpanRecord
	require.NoError(t, json.NewDecoder(file).Decode(&record))

	require.Equal(t, SpanMacroPlay, record.Name)
	require.Equal(t, "ERROR", record.Status)
	require.Contains(t, record.StatusMsg, "(z)")
	require.InDelta(t, 100.0, record.DurationMs, 0.001)
	require.Equal(t, "z", record.Attributes[AttrMacroName])
	require.Equal(t, "z", record.MacroName)
	require.Empty(t, record.EngineID)
	require.EqualValues(t, 2, record.Attributes[AttrMacroDepth])
	require.Len(t, record.Events, 1)
	require.Equal(t, "boom", record.Events[0].Attributes["exception.message"])
	require.Empty(t, record.Commands)
}

func TestFileExporter_LiftsEditorFields(t *testing.T) {
	tracePath := filepath.Join(t.TempDir(), "traces.jsonl")

	exporter, err := NewFileExporter(tracePath)
	require.NoError(t, err)

	start := time.Now()
	command := func(id, key string) sdktrace.Event {
		return sdktrace.Event{
			Name: EventCommand,
			Time: start,
			Attributes: []attribute.KeyValue{
				attribute.String(AttrCommandID, id),
				attribute.String(AttrKey, key),
			},
		}
	}
	stub := tracetest.SpanStub{
		Name:      SpanExecute,
		StartTime: start,
		EndTime:   start.Add(time.Millisecond),
		Attributes: []attribute.KeyValue{
			attribute.String(AttrEngineID, "eng-1"),
			attribute.String(AttrMode, "INSERT"),
			attribute.Int(AttrKeysCount, 2),
		},
		Events: []sdktrace.Event{
			command("move.right", "l"),
			{Name: "exception", Time: start},
			command("mode.insert", "i"),
		},
	}
	require.NoError(t, exporter.ExportSpans(context.Background(), []sdktrace.ReadOnlySpan{stub.Snapshot()}))
	require.NoError(t, exporter.Shutdown(context.Background()))

	content, err := os.ReadFile(tracePath)
	require.NoError(t, err)
	require.Contains(t, string(content), `"editor_id":"eng-1"`)

	var record SpanRecord
	require.NoError(t, json.Unmarshal(content, &record))
	require.Equal(t, "eng-1", record.EngineID)
	require.Equal(t, "INSERT", record.Mode)
	require.Empty(t, record.MacroName)
	require.Equal(t, []string{"move.right", "mode.insert"}, record.Commands)
	require.Len(t, record.Events, 3)
}

func TestFileExporter_ExportEmptySpans(t *testing.T) {
	tracePath := filepath.Join(t.TempDir(), "traces.jsonl")

	exporter, err := NewFileExporter(tracePath)
	require.NoError(t, err)
	require.NoError(t, exporter.ExportSpans(context.Background(), nil))
	require.NoError(t, exporter.Shutdown(context.Background()))

	info, err := os.Stat(tracePath)
	require.NoError(t, err)
	require.Zero(t, info.Size())
}

func TestFileExporter_ShutdownIsIdempotent(t *testing.T) {
	exporter, err := NewFileExporter(filepath.Join(t.TempDir(), "traces.jsonl"))
	require.NoError(t, err)

	require.NoError(t, exporter.Shutdown(context.Background()))
	require.NoError(t, exporter.Shutdown(context.Background()))

	stub := tracetest.SpanStub{Name: SpanExecute}
	err = exporter.ExportSpans(context.Background(), []sdktrace.ReadOnlySpan{stub.Snapshot()})
	require.Error(t, err, "exporting after shutdown should fail")
}
