package bridge

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"runtime"
	"testing"

	"github.com/MKhiriev/toolbox-vault/internal/config"
	"github.com/MKhiriev/toolbox-vault/internal/logger"
	"github.com/MKhiriev/toolbox-vault/internal/mock"
	"github.com/MKhiriev/toolbox-vault/internal/store"
	"github.com/MKhiriev/toolbox-vault/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testMetadata = models.AppMetadata{Name: "Toolbox", Version: "1.0.0", Platform: "linux", Arch: "amd64"}

type bridgeMocks struct {
	store  *mock.MockCredentialStore
	guard  *mock.MockPathGuard
	opener *mock.MockOpener
}

func newTestBridge(t *testing.T) (*Bridge, bridgeMocks) {
	ctrl := gomock.NewController(t)
	m := bridgeMocks{
		store:  mock.NewMockCredentialStore(ctrl),
		guard:  mock.NewMockPathGuard(ctrl),
		opener: mock.NewMockOpener(ctrl),
	}
	return New(m.store, m.guard, m.opener, testMetadata, logger.Nop()), m
}

func dispatch(t *testing.T, b *Bridge, op string, payload string) models.BridgeResponse {
	t.Helper()
	req := models.BridgeRequest{Operation: op}
	if payload != "" {
		req.Payload = json.RawMessage(payload)
	}
	resp, err := b.Dispatch(context.Background(), req)
	require.NoError(t, err)
	return resp
}

// ── allowlist ─────────────────────────────────────────────────────────────────

func TestOperations(t *testing.T) {
	b, _ := newTestBridge(t)

	assert.Equal(t, []string{
		models.OpGetAppMetadata,
		models.OpGetStoragePath,
		models.OpOpenPathExternally,
		models.OpPing,
		models.OpReadAllCredentials,
		models.OpReplaceAllCredentials,
	}, b.Operations())

	for _, op := range b.Operations() {
		assert.True(t, b.Allowed(op), op)
	}
}

func TestOperations_ReturnsCopy(t *testing.T) {
	b, _ := newTestBridge(t)

	ops := b.Operations()
	ops[0] = "delete-everything"

	assert.False(t, b.Allowed("delete-everything"))
	assert.Len(t, b.Operations(), 6)
}

// TestDispatch_UnknownOperation verifies refused operations never reach the
// store: the mock has no expectations, so any call fails the test.
func TestDispatch_UnknownOperation(t *testing.T) {
	b, _ := newTestBridge(t)

	for _, op := range []string{"", "delete-everything", "READ-ALL-CREDENTIALS", "read-all-credentials ", "fs.readFile", "../get-storage-path"} {
		t.Run(fmt.Sprintf("%q", op), func(t *testing.T) {
			resp, err := b.Dispatch(context.Background(), models.BridgeRequest{Operation: op, Payload: json.RawMessage(`[]`)})
			assert.ErrorIs(t, err, ErrOperationNotAllowed)
			assert.Equal(t, models.BridgeResponse{}, resp)
			assert.False(t, b.Allowed(op))
		})
	}
}

// TestDispatch_UnknownOperationNoFilesystemAccess wires a real file store over
// a filesystem and locator mock without expectations.
func TestDispatch_UnknownOperationNoFilesystemAccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := store.NewFileStore(mock.NewMockFS(ctrl), mock.NewMockPathLocator(ctrl), logger.Nop())
	b := New(st, mock.NewMockPathGuard(ctrl), mock.NewMockOpener(ctrl), testMetadata, logger.Nop())

	_, err := b.Dispatch(context.Background(), models.BridgeRequest{Operation: "write-file", Payload: json.RawMessage(`{"path":"/etc/passwd"}`)})
	assert.ErrorIs(t, err, ErrOperationNotAllowed)
}

// ── read-all-credentials ──────────────────────────────────────────────────────

func TestReadAllCredentials(t *testing.T) {
	b, m := newTestBridge(t)
	collection := models.CredentialCollection{{ID: "1", Title: "Mail"}}
	m.store.EXPECT().Load(gomock.Any()).Return(collection, nil)

	resp := dispatch(t, b, models.OpReadAllCredentials, "")

	require.True(t, resp.Success)
	assert.Empty(t, resp.Code)
	var got models.CredentialCollection
	require.NoError(t, json.Unmarshal(resp.Data, &got))
	assert.Equal(t, collection, got)
}

func TestReadAllCredentials_CorruptStoreRecovered(t *testing.T) {
	b, m := newTestBridge(t)
	m.store.EXPECT().Load(gomock.Any()).Return(models.CredentialCollection{}, fmt.Errorf("%w: bad json", store.ErrCorruptStore))

	resp := dispatch(t, b, models.OpReadAllCredentials, "")

	assert.True(t, resp.Success)
	assert.Equal(t, models.CodeCorruptStore, resp.Code)
	assert.JSONEq(t, `[]`, string(resp.Data))
	assert.NotEmpty(t, resp.Error)
}

func TestReadAllCredentials_StorageUnavailable(t *testing.T) {
	b, m := newTestBridge(t)
	m.store.EXPECT().Load(gomock.Any()).Return(nil, store.ErrStorageUnavailable)

	resp := dispatch(t, b, models.OpReadAllCredentials, "")

	assert.False(t, resp.Success)
	assert.Equal(t, models.CodeStorageUnavailable, resp.Code)
	assert.Nil(t, resp.Data)
}

// ── replace-all-credentials ───────────────────────────────────────────────────

func TestReplaceAllCredentials(t *testing.T) {
	b, m := newTestBridge(t)
	payload := `[{"title":"Mail"}]`
	saved := models.CredentialCollection{{ID: "gen", Title: "Mail"}}
	m.store.EXPECT().Save(gomock.Any(), json.RawMessage(payload)).Return(saved, nil)

	resp := dispatch(t, b, models.OpReplaceAllCredentials, payload)

	require.True(t, resp.Success)
	var got models.CredentialCollection
	require.NoError(t, json.Unmarshal(resp.Data, &got))
	assert.Equal(t, saved, got)
}

func TestReplaceAllCredentials_Failures(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code string
	}{
		{name: "invalid input", err: fmt.Errorf("%w: expected a JSON array", store.ErrInvalidInput), code: models.CodeInvalidInput},
		{name: "write failure", err: fmt.Errorf("%w: disk full", store.ErrWriteFailure), code: models.CodeWriteFailure},
		{name: "busy", err: fmt.Errorf("%w: lock", store.ErrStoreBusy), code: models.CodeStoreBusy},
		{name: "unavailable", err: store.ErrStorageUnavailable, code: models.CodeStorageUnavailable},
		{name: "unknown", err: errors.New("boom"), code: models.CodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, m := newTestBridge(t)
			m.store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil, tt.err)

			resp := dispatch(t, b, models.OpReplaceAllCredentials, `{}`)

			assert.False(t, resp.Success)
			assert.Equal(t, tt.code, resp.Code)
			assert.Equal(t, tt.err.Error(), resp.Error)
		})
	}
}

// ── get-storage-path ──────────────────────────────────────────────────────────

func TestGetStoragePath(t *testing.T) {
	b, m := newTestBridge(t)
	location := models.StorageLocation{FilePath: "/data/passwords/passwords.json", Directory: "/data/passwords", Strategy: models.StrategyHome}
	m.store.EXPECT().StoragePath(gomock.Any()).Return(location, nil)

	resp := dispatch(t, b, models.OpGetStoragePath, "")

	require.True(t, resp.Success)
	assert.JSONEq(t, `{"filePath":"/data/passwords/passwords.json","directory":"/data/passwords","strategy":"home"}`, string(resp.Data))
}

// ── open-path-externally ──────────────────────────────────────────────────────

func TestOpenPathExternally(t *testing.T) {
	b, m := newTestBridge(t)
	gomock.InOrder(
		m.guard.EXPECT().Contains(gomock.Any(), "/data/passwords").Return(true, nil),
		m.opener.EXPECT().Open(gomock.Any(), "/data/passwords").Return(nil),
	)

	resp := dispatch(t, b, models.OpOpenPathExternally, `{"path":"/data/passwords/"}`)

	require.True(t, resp.Success)
	assert.JSONEq(t, `{"opened":"/data/passwords"}`, string(resp.Data))
}

func TestOpenPathExternally_Refused(t *testing.T) {
	t.Run("outside the root", func(t *testing.T) {
		b, m := newTestBridge(t)
		m.guard.EXPECT().Contains(gomock.Any(), "/etc").Return(false, nil)

		resp := dispatch(t, b, models.OpOpenPathExternally, `{"path":"/etc"}`)
		assert.False(t, resp.Success)
		assert.Equal(t, models.CodePathNotAllowed, resp.Code)
	})

	for name, payload := range map[string]string{
		"relative path": `{"path":"passwords"}`,
		"empty path":    `{"path":""}`,
		"not an object": `"/data"`,
		"no payload":    ``,
	} {
		t.Run(name, func(t *testing.T) {
			b, _ := newTestBridge(t)

			resp := dispatch(t, b, models.OpOpenPathExternally, payload)
			assert.False(t, resp.Success)
			assert.Equal(t, models.CodeInvalidInput, resp.Code)
		})
	}

	t.Run("opener fails", func(t *testing.T) {
		b, m := newTestBridge(t)
		m.guard.EXPECT().Contains(gomock.Any(), "/data").Return(true, nil)
		m.opener.EXPECT().Open(gomock.Any(), "/data").Return(errors.New("xdg-open not found"))

		resp := dispatch(t, b, models.OpOpenPathExternally, `{"path":"/data"}`)
		assert.False(t, resp.Success)
		assert.Equal(t, models.CodeOpenFailed, resp.Code)
	})

	t.Run("storage unavailable", func(t *testing.T) {
		b, m := newTestBridge(t)
		m.guard.EXPECT().Contains(gomock.Any(), "/data").Return(false, store.ErrStorageUnavailable)

		resp := dispatch(t, b, models.OpOpenPathExternally, `{"path":"/data"}`)
		assert.False(t, resp.Success)
		assert.Equal(t, models.CodeStorageUnavailable, resp.Code)
	})
}

// ── get-app-metadata / ping ───────────────────────────────────────────────────

func TestGetAppMetadata(t *testing.T) {
	b, _ := newTestBridge(t)

	resp := dispatch(t, b, models.OpGetAppMetadata, "")

	require.True(t, resp.Success)
	var got models.AppMetadata
	require.NoError(t, json.Unmarshal(resp.Data, &got))
	assert.Equal(t, testMetadata, got)
}

func TestPing(t *testing.T) {
	b, _ := newTestBridge(t)

	resp := dispatch(t, b, models.OpPing, "")

	require.True(t, resp.Success)
	assert.JSONEq(t, `"pong"`, string(resp.Data))
}

// ── NewAppMetadata ────────────────────────────────────────────────────────────

func TestNewAppMetadata(t *testing.T) {
	meta, err := NewAppMetadata(config.App{Name: "Toolbox", Version: "1.2.3"}, models.NewAppBuildInfo("1.2.3", "2026-01-01", "abc123"))
	require.NoError(t, err)

	assert.Equal(t, "Toolbox", meta.Name)
	assert.Equal(t, "1.2.3", meta.Version)
	assert.Equal(t, runtime.GOOS, meta.Platform)
	assert.Equal(t, runtime.GOARCH, meta.Arch)
	assert.Equal(t, "2026-01-01", meta.BuildDate)
	assert.Equal(t, "abc123", meta.BuildCommit)
	assert.NotEmpty(t, meta.AppPath)
}

func TestNewAppMetadata_EmptyVersion(t *testing.T) {
	_, err := NewAppMetadata(config.App{Name: "Toolbox"}, models.NewAppBuildInfo("", "", ""))
	assert.ErrorIs(t, err, ErrVersionIsNotSpecified)
}

func TestDispatch_LogsWithRequestLogger(t *testing.T) {
	b, _ := newTestBridge(t)

	var buf bytes.Buffer
	reqLogger := zerolog.New(&buf).With().Str("trace_id", "trace-1").Logger()
	ctx := reqLogger.WithContext(context.Background())

	_, err := b.Dispatch(ctx, models.BridgeRequest{Operation: models.OpPing})
	require.NoError(t, err)
	_, err = b.Dispatch(ctx, models.BridgeRequest{Operation: "delete-everything"})
	require.ErrorIs(t, err, ErrOperationNotAllowed)

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)
	for _, line := range lines {
		var entry map[string]any
		require.NoError(t, json.Unmarshal(line, &entry))
		assert.Equal(t, "trace-1", entry["trace_id"])
	}
}
