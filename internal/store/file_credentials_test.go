package store

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/toolbox-vault/internal/config"
	"github.com/MKhiriev/toolbox-vault/internal/fsys"
	"github.com/MKhiriev/toolbox-vault/internal/locator"
	"github.com/MKhiriev/toolbox-vault/internal/logger"
	"github.com/MKhiriev/toolbox-vault/internal/mock"
	"github.com/MKhiriev/toolbox-vault/models"
	"github.com/gofrs/flock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

const fixedStamp = "2026-03-01T12:00:00.000Z"

type seqIDs struct{ n int }

func (s *seqIDs) Generate() string {
	s.n++
	return fmt.Sprintf("gen-%d", s.n)
}

func newTestLocator(t *testing.T) *locator.Locator {
	t.Helper()
	base := t.TempDir()
	return locator.New(fsys.OS(), config.Storage{PrimaryDir: filepath.Join(base, "data")}, logger.Nop(),
		locator.WithHomeBase(filepath.Join(base, "home")))
}

func newTestFileStore(t *testing.T, loc PathLocator, opts ...Option) CredentialStore {
	t.Helper()
	opts = append([]Option{WithClock(func() time.Time { return fixedNow }), WithIDGenerator(&seqIDs{})}, opts...)
	return NewFileStore(fsys.OS(), loc, logger.Nop(), opts...)
}

func credentialFile(t *testing.T, loc PathLocator) string {
	t.Helper()
	path, err := loc.CredentialFile(context.Background())
	require.NoError(t, err)
	return path
}

func fileHash(t *testing.T, path string) [32]byte {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return sha256.Sum256(data)
}

// ── Load ──────────────────────────────────────────────────────────────────────

func TestLoad_MissingFile(t *testing.T) {
	loc := newTestLocator(t)
	s := newTestFileStore(t, loc)

	got, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
	assert.NoFileExists(t, credentialFile(t, loc))
	assert.NoFileExists(t, credentialFile(t, loc)+lockSuffix)
}

func TestLoad_StatFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	path := filepath.Join(t.TempDir(), "passwords.json")

	loc := mock.NewMockPathLocator(ctrl)
	loc.EXPECT().CredentialFile(gomock.Any()).Return(path, nil)

	fs := mock.NewMockFS(ctrl)
	fs.EXPECT().Stat(path).Return(nil, os.ErrPermission)

	got, err := NewFileStore(fs, loc, logger.Nop()).Load(context.Background())
	require.ErrorIs(t, err, ErrStorageUnavailable)
	assert.ErrorIs(t, err, os.ErrPermission)
	assert.Empty(t, got)
	assert.NoFileExists(t, path+lockSuffix)
}

func TestLoad_CorruptFile(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: "definitely not json"},
		{name: "empty file", body: ""},
		{name: "object instead of array", body: `{"id":"1"}`},
		{name: "array of scalars", body: `[1, 2, 3]`},
		{name: "null element", body: `[null]`},
		{name: "nested field", body: `[{"id":"1","title":{"nested":true}}]`},
		{name: "truncated", body: `[{"id":"1","title":"a"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc := newTestLocator(t)
			path := credentialFile(t, loc)
			require.NoError(t, os.WriteFile(path, []byte(tt.body), 0o600))
			before := fileHash(t, path)

			got, err := newTestFileStore(t, loc).Load(context.Background())
			require.ErrorIs(t, err, ErrCorruptStore)
			assert.NotNil(t, got)
			assert.Empty(t, got)
			assert.Equal(t, before, fileHash(t, path), "corrupt file must be left untouched")
		})
	}
}

func TestLoad_AcceptsHandEditedFile(t *testing.T) {
	loc := newTestLocator(t)
	path := credentialFile(t, loc)
	body := `[
		{"id": "a", "title": "Mail", "password": 1234, "extra": "dropped"},
		{"id": "b", "notes": null}
	]`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	got, err := newTestFileStore(t, loc).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.CredentialCollection{
		{ID: "a", Title: "Mail", Password: "1234"},
		{ID: "b"},
	}, got)
}

func TestLoad_StorageUnavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	loc := mock.NewMockPathLocator(ctrl)
	loc.EXPECT().CredentialFile(gomock.Any()).Return("", locator.ErrStorageUnavailable)

	s := NewFileStore(mock.NewMockFS(ctrl), loc, logger.Nop())

	got, err := s.Load(context.Background())
	assert.ErrorIs(t, err, ErrStorageUnavailable)
	assert.Empty(t, got)
}

// ── Save ──────────────────────────────────────────────────────────────────────

// TestSave_RoundTrip checks that a fresh load returns exactly what save
// returned.
func TestSave_RoundTrip(t *testing.T) {
	loc := newTestLocator(t)
	ctx := context.Background()

	payload := json.RawMessage(`[
		{"id":"1","title":"Mail","username":"me","password":"p<&>w","website":"https://mail.example","notes":"n","createdAt":"2025-01-01T00:00:00.000Z","updatedAt":"2025-02-01T00:00:00.000Z"},
		{"title":"Bank","password":"s3cr3t"},
		{"id":"3","title":"Юникод 🔑"}
	]`)

	saved, err := newTestFileStore(t, loc).Save(ctx, payload)
	require.NoError(t, err)
	require.Len(t, saved, 3)

	loaded, err := newTestFileStore(t, loc).Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, saved, loaded)

	// saving what was loaded changes nothing
	again, err := newTestFileStore(t, loc).Save(ctx, mustJSON(t, loaded))
	require.NoError(t, err)
	assert.Equal(t, loaded, again)
}

func TestSave_Sanitization(t *testing.T) {
	loc := newTestLocator(t)

	saved, err := newTestFileStore(t, loc).Save(context.Background(), json.RawMessage(`[
		{"title":"No notes or website","username":"u","password":"p"},
		{"id":"keep","title":null,"password":false,"website":42,"unknown":"x","createdAt":"2024-05-05T05:05:05.005Z"}
	]`))
	require.NoError(t, err)

	first := saved[0]
	assert.Equal(t, "gen-1", first.ID)
	assert.Equal(t, "", first.Notes)
	assert.Equal(t, "", first.Website)
	assert.Equal(t, fixedStamp, first.CreatedAt)
	assert.Equal(t, fixedStamp, first.UpdatedAt)
	_, err = time.Parse(models.TimestampLayout, first.CreatedAt)
	assert.NoError(t, err)

	second := saved[1]
	assert.Equal(t, "keep", second.ID)
	assert.Equal(t, "", second.Title)
	assert.Equal(t, "false", second.Password)
	assert.Equal(t, "42", second.Website)
	assert.Equal(t, "2024-05-05T05:05:05.005Z", second.CreatedAt)
	assert.Equal(t, fixedStamp, second.UpdatedAt)

	// every field is present on disk, even the empty ones
	var onDisk []map[string]any
	data, err := os.ReadFile(credentialFile(t, loc))
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &onDisk))
	for _, rec := range onDisk {
		assert.Len(t, rec, 8)
		for _, key := range recordFields {
			assert.IsType(t, "", rec[key], key)
		}
		assert.NotContains(t, rec, "unknown")
	}
}

func TestSave_FileFormat(t *testing.T) {
	loc := newTestLocator(t)
	_, err := newTestFileStore(t, loc).Save(context.Background(), json.RawMessage(`[{"id":"1","password":"a<b"}]`))
	require.NoError(t, err)

	path := credentialFile(t, loc)
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	text := string(data)
	assert.True(t, strings.HasPrefix(text, "[\n  {\n    \"id\": \"1\",\n"), text)
	assert.Contains(t, text, `"password": "a<b"`)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestSave_EmptyCollection(t *testing.T) {
	loc := newTestLocator(t)

	saved, err := newTestFileStore(t, loc).Save(context.Background(), json.RawMessage(`[]`))
	require.NoError(t, err)
	assert.Empty(t, saved)

	data, err := os.ReadFile(credentialFile(t, loc))
	require.NoError(t, err)
	assert.Equal(t, "[]", strings.TrimSpace(string(data)))
}

func TestSave_DuplicateIDsKept(t *testing.T) {
	loc := newTestLocator(t)

	saved, err := newTestFileStore(t, loc).Save(context.Background(), json.RawMessage(`[{"id":"x","title":"a"},{"id":"x","title":"b"}]`))
	require.NoError(t, err)
	require.Len(t, saved, 2)
	assert.Equal(t, []string{"x"}, saved.DuplicateIDs())
}

func TestSave_InvalidInputLeavesFileUnchanged(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{name: "object", payload: `{"id":"1"}`},
		{name: "string", payload: `"not a list"`},
		{name: "number", payload: `7`},
		{name: "null", payload: `null`},
		{name: "empty", payload: ``},
		{name: "scalar element", payload: `[{"id":"1"}, "two"]`},
		{name: "nested field", payload: `[{"id":"1","notes":["a"]}]`},
		{name: "malformed", payload: `[{"id":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc := newTestLocator(t)
			s := newTestFileStore(t, loc)
			_, err := s.Save(context.Background(), json.RawMessage(`[{"id":"orig"}]`))
			require.NoError(t, err)

			path := credentialFile(t, loc)
			before := fileHash(t, path)

			got, err := s.Save(context.Background(), json.RawMessage(tt.payload))
			require.ErrorIs(t, err, ErrInvalidInput)
			assert.Nil(t, got)
			assert.Equal(t, before, fileHash(t, path))
		})
	}
}

// TestSave_InvalidInputTouchesNothing uses mocks without expectations: any
// locator or filesystem call fails the test.
func TestSave_InvalidInputTouchesNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := NewFileStore(mock.NewMockFS(ctrl), mock.NewMockPathLocator(ctrl), logger.Nop())

	_, err := s.Save(context.Background(), json.RawMessage(`{"not":"an array"}`))
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestSave_WriteFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	path := filepath.Join(t.TempDir(), "passwords.json")

	loc := mock.NewMockPathLocator(ctrl)
	loc.EXPECT().CredentialFile(gomock.Any()).Return(path, nil)

	fs := mock.NewMockFS(ctrl)
	fs.EXPECT().WriteFile(path, gomock.Any(), os.FileMode(0o600)).Return(os.ErrPermission)

	s := NewFileStore(fs, loc, logger.Nop())

	got, err := s.Save(context.Background(), json.RawMessage(`[{"id":"1"}]`))
	require.ErrorIs(t, err, ErrWriteFailure)
	assert.ErrorIs(t, err, os.ErrPermission)
	assert.Nil(t, got)
}

func TestSave_StoreBusy(t *testing.T) {
	loc := newTestLocator(t)
	path := credentialFile(t, loc)

	held := flock.New(path + lockSuffix)
	require.NoError(t, held.Lock())
	defer held.Unlock()

	s := newTestFileStore(t, loc, WithLockTimeout(50*time.Millisecond))

	_, err := s.Save(context.Background(), json.RawMessage(`[]`))
	assert.ErrorIs(t, err, ErrStoreBusy)
	assert.NoFileExists(t, path)

	require.NoError(t, os.WriteFile(path, []byte(`[]`), 0o600))
	_, err = s.Load(context.Background())
	assert.ErrorIs(t, err, ErrStoreBusy)
}

// ── StoragePath ───────────────────────────────────────────────────────────────

func TestStoragePath(t *testing.T) {
	loc := newTestLocator(t)
	root, err := loc.Resolve(context.Background())
	require.NoError(t, err)

	got, err := newTestFileStore(t, loc).StoragePath(context.Background())
	require.NoError(t, err)

	assert.Equal(t, models.StorageLocation{
		FilePath:  filepath.Join(root.Dir, "passwords", "passwords.json"),
		Directory: filepath.Join(root.Dir, "passwords"),
		Strategy:  models.StrategyPrimary,
	}, got)
	assert.DirExists(t, got.Directory)
}

func mustJSON(t *testing.T, v any) json.RawMessage {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return data
}
