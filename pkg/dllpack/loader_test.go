package dllpack

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// minimalWasmModule is the smallest valid WebAssembly module: the magic
// number and version fields with no sections at all.
var minimalWasmModule = []byte{0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00}

func withFakeDlopen(t *testing.T, order *[]string) {
	t.Helper()
	prevOpen, prevSym := dlopenImpl, dlsymImpl
	dlopenImpl = func(path string, mode int) (uintptr, error) {
		*order = append(*order, path)
		return uintptr(len(*order)), nil
	}
	dlsymImpl = func(handle uintptr, name string) (uintptr, error) {
		return handle, nil
	}
	t.Cleanup(func() {
		dlopenImpl = prevOpen
		dlsymImpl = prevSym
	})
}

func TestLoadNativeOpensDependenciesBeforePrimary(t *testing.T) {
	workDir := t.TempDir()
	const platform = "p1"

	baseManifestURL := "https://example.com/base.dllpack"
	depManifestURL := "https://example.com/dep.dllpack"
	baseArt := "https://example.com/base.bin"
	depArt := "https://example.com/dep.bin"

	writeManifestFile(t, workDir, baseManifestURL, singlePlatformManifest(platform, baseArt, "base.bin",
		Dependency{Kind: DependencyDllPack, URL: depManifestURL},
	))
	writeManifestFile(t, workDir, depManifestURL, singlePlatformManifest(platform, depArt, "dep.bin"))

	writeBinaryFile(t, workDir, baseArt, "base.bin", []byte("base"))
	writeBinaryFile(t, workDir, depArt, "dep.bin", []byte("dep"))

	var order []string
	withFakeDlopen(t, &order)

	lib, err := LoadWithPlatform(context.Background(), baseManifestURL, workDir, platform)
	require.NoError(t, err)
	require.Equal(t, nativeBackend, lib.kind)

	require.Len(t, order, 2)
	assert.Contains(t, order[0], "dep.bin")
	assert.Contains(t, order[1], "base.bin")
}

func TestLoadWithPlatformDispatchesWasmByPlatformSubstring(t *testing.T) {
	workDir := t.TempDir()
	const platform = "wasm32-wasip1"

	baseManifestURL := "https://example.com/base.dllpack"
	baseArt := "https://example.com/base.wasm"
	writeManifestFile(t, workDir, baseManifestURL, singlePlatformManifest(platform, baseArt, "base.wasm"))
	writeBinaryFile(t, workDir, baseArt, "base.wasm", minimalWasmModule)

	lib, err := LoadWithPlatform(context.Background(), baseManifestURL, workDir, platform)
	require.NoError(t, err)
	assert.Equal(t, wasmBackend, lib.kind)
	require.NoError(t, lib.Close(context.Background()))
}

func TestLoadWasmRejectsNonEmptyDependencies(t *testing.T) {
	workDir := t.TempDir()
	const platform = "wasm32-wasip1"

	baseManifestURL := "https://example.com/base.dllpack"
	depManifestURL := "https://example.com/dep.dllpack"
	writeManifestFile(t, workDir, baseManifestURL, singlePlatformManifest(platform, "https://example.com/base.wasm", "base.wasm",
		Dependency{Kind: DependencyDllPack, URL: depManifestURL},
	))
	writeManifestFile(t, workDir, depManifestURL, singlePlatformManifest(platform, "https://example.com/dep.wasm", "dep.wasm"))
	writeBinaryFile(t, workDir, "https://example.com/dep.wasm", "dep.wasm", minimalWasmModule)

	_, err := LoadWithPlatform(context.Background(), baseManifestURL, workDir, platform)
	require.Error(t, err)
	var withDeps *WasmWithDependenciesError
	assert.ErrorAs(t, err, &withDeps)
}

func TestLoadWasmWritesModuleCache(t *testing.T) {
	workDir := t.TempDir()
	const platform = "wasm32-wasip1"

	baseManifestURL := "https://example.com/base.dllpack"
	baseArt := "https://example.com/base.wasm"
	writeManifestFile(t, workDir, baseManifestURL, singlePlatformManifest(platform, baseArt, "base.wasm"))
	writeBinaryFile(t, workDir, baseArt, "base.wasm", minimalWasmModule)

	lib, err := LoadWithPlatform(context.Background(), baseManifestURL, workDir, platform)
	require.NoError(t, err)
	require.NoError(t, lib.Close(context.Background()))

	info := newDllInfo(baseArt, "base.wasm", workDir)
	assert.DirExists(t, info.wasmModuleCacheDir())

	// Second load reuses the compiled module cache directory rather than
	// failing; both handles are functionally equivalent.
	lib2, err := LoadWithPlatform(context.Background(), baseManifestURL, workDir, platform)
	require.NoError(t, err)
	require.NoError(t, lib2.Close(context.Background()))
}

func TestLoadFallsBackToWasmOnUnsupportedHostPlatform(t *testing.T) {
	workDir := t.TempDir()

	baseManifestURL := "https://example.com/base.dllpack"
	wasmArt := "https://example.com/base.wasm"
	writeManifestFile(t, workDir, baseManifestURL, singlePlatformManifest("wasm32-wasip1", wasmArt, "base.wasm"))
	writeBinaryFile(t, workDir, wasmArt, "base.wasm", minimalWasmModule)

	lib, err := Load(context.Background(), baseManifestURL, workDir)
	require.NoError(t, err)
	assert.Equal(t, wasmBackend, lib.kind)
	require.NoError(t, lib.Close(context.Background()))
}

func TestLoadPropagatesNonFallbackErrors(t *testing.T) {
	workDir := t.TempDir()
	_, err := Load(context.Background(), "ftp://example.com/unsupported-scheme.dllpack", workDir)
	require.Error(t, err)
	var notSupported *PlatformNotSupportedError
	assert.NotErrorAs(t, err, &notSupported, "an unsupported-scheme failure must not be mistaken for PlatformNotSupportedError")
	var unsupportedScheme *UnsupportedSchemeError
	assert.ErrorAs(t, err, &unsupportedScheme)
}
