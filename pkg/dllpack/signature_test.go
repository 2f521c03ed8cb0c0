package dllpack

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// wasmAddModule is a hand-assembled WebAssembly module exporting a single
// function "add(i32, i32) -> i32", used to exercise GetFunctionN/Call
// against a real wazero instance without needing a prebuilt .wasm fixture.
var wasmAddModule = []byte{
	0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00, // magic, version
	0x01, 0x07, 0x01, 0x60, 0x02, 0x7f, 0x7f, 0x01, 0x7f, // type section: (i32,i32)->i32
	0x03, 0x02, 0x01, 0x00, // function section: fn 0 uses type 0
	0x07, 0x07, 0x01, 0x03, 0x61, 0x64, 0x64, 0x00, 0x00, // export section: "add" -> func 0
	0x0a, 0x09, 0x01, 0x07, 0x00, 0x20, 0x00, 0x20, 0x01, 0x6a, 0x0b, // code: local.get 0; local.get 1; i32.add
}

func loadWasmAddLibrary(t *testing.T) *Library {
	t.Helper()
	workDir := t.TempDir()
	manifestURL := "https://example.com/signature-add.dllpack"
	artifactURL := "https://example.com/signature-add.wasm"
	writeManifestFile(t, workDir, manifestURL, singlePlatformManifest("wasm32-wasip1", artifactURL, "add.wasm"))
	writeBinaryFile(t, workDir, artifactURL, "add.wasm", wasmAddModule)

	lib, err := LoadWithPlatform(context.Background(), manifestURL, workDir, "wasm32-wasip1")
	require.NoError(t, err)
	t.Cleanup(func() { _ = lib.Close(context.Background()) })
	return lib
}

func TestGetFunction2WasmCallsExportedFunction(t *testing.T) {
	lib := loadWasmAddLibrary(t)

	fn, err := GetFunction2[int32, int32, int32](lib, "add")
	require.NoError(t, err)

	sum, err := fn.Call(lib, 2, 3)
	require.NoError(t, err)
	assert.Equal(t, int32(5), sum)
}

func TestGetFunction2WasmSymbolNotFound(t *testing.T) {
	lib := loadWasmAddLibrary(t)

	_, err := GetFunction2[int32, int32, int32](lib, "nonexistent")
	require.Error(t, err)
	var notFound *SymbolNotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestFunc2CallBackendMismatch(t *testing.T) {
	wasmLib := loadWasmAddLibrary(t)

	fn, err := GetFunction2[int32, int32, int32](wasmLib, "add")
	require.NoError(t, err)

	nativeLib := &Library{kind: nativeBackend, native: &nativeLibrary{}}
	_, err = fn.Call(nativeLib, 1, 1)
	require.Error(t, err)
	var mismatch *BackendMismatchError
	assert.ErrorAs(t, err, &mismatch)
}
