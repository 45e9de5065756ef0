package logger

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewLogger_RoleField verifies that every log entry produced by a logger
// created with NewLogger contains the expected "role" and "time" fields.
func TestNewLogger_RoleField(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("test-role")
	l.Logger = l.Output(&buf)

	l.Info().Msg("hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "test-role", entry["role"])
	assert.Contains(t, entry, "time")
}

func TestNewLogger_CallerFieldName(t *testing.T) {
	NewLogger("caller-role")
	assert.Equal(t, "func", zerolog.CallerFieldName)
}

func TestNewHostLogger_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "host.log")

	l := NewHostLogger("host", path)
	require.True(t, l.HasFileSink())

	l.Info().Str("component", "test").Msg("first")
	l.Warn().Msg("second")
	require.NoError(t, l.Close())

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var lines []map[string]any
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		var entry map[string]any
		require.NoError(t, json.Unmarshal(sc.Bytes(), &entry))
		lines = append(lines, entry)
	}
	require.Len(t, lines, 2)
	assert.Equal(t, "first", lines[0]["message"])
	assert.Equal(t, "host", lines[0]["role"])
	assert.Equal(t, "warn", lines[1]["level"])
}

func TestNewHostLogger_FallsBackWhenFileCannotBeOpened(t *testing.T) {
	dir := t.TempDir()
	// a directory where the log file should be makes OpenFile fail
	path := filepath.Join(dir, "host.log")
	require.NoError(t, os.Mkdir(path, 0o700))

	l := NewHostLogger("host", path)

	assert.False(t, l.HasFileSink())
	assert.NoError(t, l.Close())
}

func TestClose_Idempotent(t *testing.T) {
	l := NewHostLogger("host", filepath.Join(t.TempDir(), "host.log"))

	require.NoError(t, l.Close())
	assert.NoError(t, l.Close())
	assert.NoError(t, Nop().Close())
}

func TestSetLevel(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.DebugLevel)

	SetLevel("WARN")
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())

	SetLevel("not-a-level")
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())

	SetLevel("")
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())
}

func TestNop_DiscardsOutput(t *testing.T) {
	l := Nop()
	require.NotNil(t, l)
	assert.Equal(t, zerolog.Disabled, l.GetLevel())
}

// TestGetChildLogger_InheritsFields verifies that the child logger inherits
// context fields (e.g. "role") from the parent without owning its sink.
func TestGetChildLogger_InheritsFields(t *testing.T) {
	var buf bytes.Buffer
	parent := NewLogger("inherited-role")
	parent.Logger = parent.Output(&buf)

	child := parent.GetChildLogger()
	assert.NotSame(t, parent, child)
	assert.False(t, child.HasFileSink())

	child.Info().Msg("child message")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "inherited-role", entry["role"])
}

func TestFromContext_ReturnsAttachedLogger(t *testing.T) {
	var buf bytes.Buffer
	zl := zerolog.New(&buf).With().Str("ctx-key", "ctx-value").Logger()
	ctx := zl.WithContext(context.Background())

	l := FromContext(ctx)
	require.NotNil(t, l)
	l.Info().Msg("from context")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "ctx-value", entry["ctx-key"])
}

func TestFromRequest_ReturnsAttachedLogger(t *testing.T) {
	var buf bytes.Buffer
	zl := zerolog.New(&buf).With().Str("req-key", "req-value").Logger()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(zl.WithContext(req.Context()))

	l := FromRequest(req)
	l.Info().Msg("from request")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "req-value", entry["req-key"])
}

func TestFromContextOr(t *testing.T) {
	var ctxBuf, fallbackBuf bytes.Buffer
	fallback := &Logger{Logger: zerolog.New(&fallbackBuf)}

	l := FromContextOr(context.Background(), fallback)
	assert.Same(t, fallback, l)

	zl := zerolog.New(&ctxBuf).With().Str("trace_id", "abc").Logger()
	l = FromContextOr(zl.WithContext(context.Background()), fallback)
	l.Info().Msg("scoped")

	assert.Empty(t, fallbackBuf.String())
	var entry map[string]any
	require.NoError(t, json.Unmarshal(ctxBuf.Bytes(), &entry))
	assert.Equal(t, "abc", entry["trace_id"])
}
