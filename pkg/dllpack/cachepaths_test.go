package dllpack

import (
	"net/url"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeURLIsReversible(t *testing.T) {
	raw := "https://example.com/a/b?c=d&e=f"
	encoded := encodeURL(raw)
	decoded, err := url.QueryUnescape(encoded)
	assert.NoError(t, err)
	assert.Equal(t, raw, decoded)
}

func TestNewManifestInfoPath(t *testing.T) {
	info := newManifestInfo("https://example.com/a.dllpack", "/work")
	assert.Equal(t, "https://example.com/a.dllpack", info.URL)
	assert.Equal(t, filepath.Join("/work", "_manifests", encodeURL(info.URL)), info.OnDiskPath)
}

func TestNewDllInfoDefaultsNameFromURL(t *testing.T) {
	info := newDllInfo("https://example.com/a/libfoo.so", "", "/work")
	assert.Equal(t, "libfoo.so", info.Name)
	assert.Equal(t, filepath.Join("/work", encodeURL(info.URL)), info.CacheDir)
	assert.Equal(t, filepath.Join(info.CacheDir, "libfoo.so"), info.OnDiskPath)
}

func TestNewDllInfoExplicitName(t *testing.T) {
	info := newDllInfo("https://example.com/a/artifact", "libfoo.so", "/work")
	assert.Equal(t, "libfoo.so", info.Name)
}

func TestWasmModuleCacheDir(t *testing.T) {
	info := newDllInfo("https://example.com/a.wasm", "a.wasm", "/work")
	assert.Equal(t, filepath.Join(info.CacheDir, "module-cache-a.wasm"), info.wasmModuleCacheDir())
}

func TestExistCacheDir(t *testing.T) {
	tmp := t.TempDir()
	info := newDllInfo("https://example.com/a/libfoo.so", "libfoo.so", tmp)

	_, ok := info.existCacheDir()
	assert.False(t, ok)

	require.NoError(t, os.MkdirAll(info.CacheDir, 0o755))

	dir, ok := info.existCacheDir()
	assert.True(t, ok)
	assert.Equal(t, info.CacheDir, dir)
}
